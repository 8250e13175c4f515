package main

import (
	"os"

	"hotelfront/cmd/cli"

	"github.com/gin-gonic/gin"
)

func init() {
	// Never expose debug output because of a config mistake.
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           hotelfront
// @version         1.0
// @description     Guest-facing gateway for hotel content, reservations and booking acknowledgements.

// @BasePath  /
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
