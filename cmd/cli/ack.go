package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"hotelfront/internal/domain/booking"
	"hotelfront/internal/handler/middleware"
	"hotelfront/internal/pkg/clock"
	"hotelfront/internal/pkg/config"
	"hotelfront/internal/usecase/acknowledgement"

	"github.com/spf13/cobra"
)

func newAckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ack",
		Short: "Booking acknowledgement documents",
	}
	cmd.AddCommand(newAckRenderCommand())
	return cmd
}

func newAckRenderCommand() *cobra.Command {
	var (
		bookingType string
		input       string
		outDir      string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a booking record file to a PDF acknowledgement",
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := booking.ParseType(bookingType)
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(input)
			if err != nil {
				return fmt.Errorf("failed to read booking record: %w", err)
			}
			var rec booking.Record
			if err := json.Unmarshal(raw, &rec); err != nil {
				return fmt.Errorf("failed to decode booking record: %w", err)
			}

			ackCfg, err := config.LoadSection[config.AckConfig]()
			if err != nil {
				return err
			}
			logCfg, err := config.LoadSection[config.LogConfig]()
			if err != nil {
				return err
			}
			logger := middleware.NewLogger(logCfg).GetSlogLogger()

			gen := acknowledgement.NewGenerator(ackCfg, clock.NewRealClock(), logger)
			name, doc, err := gen.Download(rec, t)
			if err != nil {
				return err
			}

			path := filepath.Join(outDir, name)
			if err := os.WriteFile(path, doc, 0o644); err != nil {
				return fmt.Errorf("failed to write acknowledgement: %w", err)
			}
			cmd.Println(path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&bookingType, "type", "t", "", "booking type: accommodation, restaurant or meeting")
	cmd.Flags().StringVarP(&input, "in", "i", "", "path to a JSON booking record")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}
