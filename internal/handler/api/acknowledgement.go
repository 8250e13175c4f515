package api

import (
	"fmt"
	"net/http"
	"strconv"

	"hotelfront/internal/domain/booking"
	resdto "hotelfront/internal/handler/dto/response"
	"hotelfront/internal/handler/httperr"
	"hotelfront/internal/usecase/acknowledgement"

	"github.com/gin-gonic/gin"
)

type AcknowledgementHandler struct {
	generator acknowledgement.Generator
}

func NewAcknowledgementHandler(generator acknowledgement.Generator) *AcknowledgementHandler {
	return &AcknowledgementHandler{
		generator: generator,
	}
}

// @Summary Booking acknowledgement
// @Description Renders the acknowledgement PDF. With preview=true the document is returned as a data URI.
// @Tags acknowledgements
// @Accept json
// @Produce application/pdf
// @Produce json
// @Param type path string true "accommodation | restaurant | meeting"
// @Param preview query bool false "Return a data URI instead of a download"
// @Param request body booking.Record true "Booking to acknowledge"
// @Success 200 {file} binary
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/acknowledgements/{type} [post]
func (h *AcknowledgementHandler) Render(c *gin.Context) {
	bookingType, err := booking.ParseType(c.Param("type"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking type", nil)
		return
	}

	var rec booking.Record
	if bindErr := c.ShouldBindJSON(&rec); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	if preview, _ := strconv.ParseBool(c.Query("preview")); preview {
		uri, err := h.generator.Preview(rec, bookingType)
		if err != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to generate acknowledgement", nil)
			return
		}
		c.JSON(http.StatusOK, resdto.AcknowledgementPreviewResponse{
			FileName: h.generator.FileName(bookingType),
			DataURI:  uri,
		})
		return
	}

	name, doc, err := h.generator.Download(rec, bookingType)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to generate acknowledgement", nil)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, "application/pdf", doc)
}
