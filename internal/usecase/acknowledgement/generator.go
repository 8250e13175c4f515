// Package acknowledgement renders the booking acknowledgement PDF handed to a
// guest after a reservation has been submitted.
package acknowledgement

//go:generate mockgen -source=generator.go -destination=../../mock/acknowledgement/mock_generator.go -package=mock_acknowledgement

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"hotelfront/internal/domain/booking"
	"hotelfront/internal/pkg/clock"
	"hotelfront/internal/pkg/config"
	"hotelfront/internal/pkg/errs"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

const (
	pageWidth  = 210.0
	fontFamily = "Helvetica"
	title      = "BOOKING ACKNOWLEDGEMENT"

	dataURIPrefix = "data:application/pdf;filename=generated.pdf;base64,"
)

var messages = []string{
	"Thank you for choosing %s. This is an acknowledgement of your booking.",
	"Your reservation is now pending confirmation by our staff. You will receive a confirmation receipt when approved.",
}

type Generator interface {
	Render(rec booking.Record, t booking.Type) ([]byte, error)
	Preview(rec booking.Record, t booking.Type) (string, error)
	Download(rec booking.Record, t booking.Type) (string, []byte, error)
	FileName(t booking.Type) string
}

type Option func(*generatorImpl)

// WithoutCompression leaves page streams readable, mostly useful in tests.
func WithoutCompression() Option {
	return func(g *generatorImpl) { g.compress = false }
}

type generatorImpl struct {
	hotel    config.AckConfig
	clock    clock.Clock
	logger   *slog.Logger
	compress bool
}

func NewGenerator(cfg config.AckConfig, clk clock.Clock, logger *slog.Logger, opts ...Option) Generator {
	g := &generatorImpl{
		hotel:    cfg,
		clock:    clk,
		logger:   logger,
		compress: true,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *generatorImpl) FileName(t booking.Type) string {
	return fmt.Sprintf("SAP_%s_ACKNOWLEDGEMENT_%s.pdf", t.Upper(), g.clock.Now().UTC().Format("2006-01-02"))
}

func (g *generatorImpl) Preview(rec booking.Record, t booking.Type) (string, error) {
	doc, err := g.Render(rec, t)
	if err != nil {
		return "", err
	}
	return dataURIPrefix + base64.StdEncoding.EncodeToString(doc), nil
}

func (g *generatorImpl) Download(rec booking.Record, t booking.Type) (string, []byte, error) {
	doc, err := g.Render(rec, t)
	if err != nil {
		return "", nil, err
	}
	return g.FileName(t), doc, nil
}

func (g *generatorImpl) Render(rec booking.Record, t booking.Type) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(g.compress)
	pdf.SetCreationDate(g.clock.Now())
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(title, true)
	pdf.SetAuthor(g.hotel.HotelName, true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	g.drawHeader(pdf, tr)
	y := g.drawGreeting(pdf, tr, rec)
	g.drawSummary(pdf, tr, rec, t, y)
	g.drawFooter(pdf, tr)

	if pdf.Err() {
		return nil, errs.Wrap(pdf.Error(), "failed to render acknowledgement")
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errs.Wrap(err, "failed to write acknowledgement")
	}
	return buf.Bytes(), nil
}

func (g *generatorImpl) drawHeader(pdf *gofpdf.Fpdf, tr func(string) string) {
	pdf.SetFillColor(20, 20, 20)
	pdf.Rect(0, 0, pageWidth, 30, "F")
	pdf.SetFont(fontFamily, "B", 18)
	pdf.SetTextColor(255, 255, 255)
	centerText(pdf, 18, tr(title))
	g.drawLogo(pdf)
}

// drawLogo places the configured logo in the header band. A missing or
// unreadable logo leaves the band without one.
func (g *generatorImpl) drawLogo(pdf *gofpdf.Fpdf) {
	if g.hotel.LogoPath == "" {
		return
	}
	raw, err := os.ReadFile(g.hotel.LogoPath)
	if err != nil {
		g.logger.Warn("acknowledgement logo unavailable", "path", g.hotel.LogoPath, "error", err)
		return
	}
	opts := gofpdf.ImageOptions{ImageType: imageType(g.hotel.LogoPath)}
	pdf.RegisterImageOptionsReader("logo", opts, bytes.NewReader(raw))
	if pdf.Err() {
		g.logger.Warn("acknowledgement logo rejected", "path", g.hotel.LogoPath, "error", pdf.Error())
		pdf.ClearError()
		return
	}
	pdf.ImageOptions("logo", 15, 5, 20, 20, false, opts, 0, "")
}

func (g *generatorImpl) drawGreeting(pdf *gofpdf.Fpdf, tr func(string) string, rec booking.Record) float64 {
	name := "Guest"
	if rec.GuestInfo != nil && strings.TrimSpace(rec.GuestInfo.Name) != "" {
		name = rec.GuestInfo.Name
	}

	y := 45.0
	pdf.SetTextColor(50, 50, 50)
	pdf.SetFont(fontFamily, "", 12)
	pdf.Text(15, y, tr(fmt.Sprintf("Dear %s,", name)))
	y += 8

	y = wrapText(pdf, 15, y, 180, 5, tr(fmt.Sprintf(messages[0], g.hotel.HotelName)))
	y += 8
	y = wrapText(pdf, 15, y, 180, 5, tr(messages[1]))
	return y + 20
}

func (g *generatorImpl) drawSummary(pdf *gofpdf.Fpdf, tr func(string) string, rec booking.Record, t booking.Type, y float64) {
	pdf.SetFont(fontFamily, "B", 13)
	pdf.Text(15, y, "BOOKING SUMMARY")
	g.drawQR(pdf, rec, t, y)
	y += 10

	pdf.SetFontSize(11)
	for _, row := range Summary(rec, t) {
		switch row.Kind {
		case RowHeading:
			pdf.SetFont(fontFamily, "B", 11)
			pdf.Text(20, y, tr(row.Label+":"))
			y += 8
		case RowItem:
			pdf.SetFont(fontFamily, "", 11)
			pdf.Text(25, y, tr(row.Value))
			y += 6
		default:
			pdf.SetFont(fontFamily, "B", 11)
			pdf.Text(20, y, tr(row.Label+":"))
			pdf.SetFont(fontFamily, "", 11)
			y = wrapText(pdf, 70, y, 125, 5, tr(row.Value))
			y += 8
		}
	}
}

// drawQR prints a scannable <TYPE>:<id> reference beside the summary.
func (g *generatorImpl) drawQR(pdf *gofpdf.Fpdf, rec booking.Record, t booking.Type, y float64) {
	if rec.ID == "" {
		return
	}
	png, err := qrcode.Encode(fmt.Sprintf("%s:%s", t.Upper(), rec.ID), qrcode.Medium, 256)
	if err != nil {
		g.logger.Warn("failed to encode booking qr", "bookingId", rec.ID, "error", err)
		return
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("booking-qr", opts, bytes.NewReader(png))
	pdf.ImageOptions("booking-qr", 160, y-5, 35, 35, false, opts, 0, "")
}

func (g *generatorImpl) drawFooter(pdf *gofpdf.Fpdf, tr func(string) string) {
	pdf.SetFillColor(20, 20, 20)
	pdf.Rect(0, 270, pageWidth, 20, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont(fontFamily, "", 10)
	centerText(pdf, 278, tr(fmt.Sprintf("%s • %s", g.hotel.HotelName, g.hotel.Address)))
	centerText(pdf, 285, tr(fmt.Sprintf("Phone: %s | Email: %s", g.hotel.Phone, g.hotel.Email)))
}

func centerText(pdf *gofpdf.Fpdf, y float64, s string) {
	pdf.Text((pageWidth-pdf.GetStringWidth(s))/2, y, s)
}

// wrapText writes s in lines no wider than w and returns the baseline of the
// last line.
func wrapText(pdf *gofpdf.Fpdf, x, y, w, lineHeight float64, s string) float64 {
	lines := pdf.SplitLines([]byte(s), w)
	for i, line := range lines {
		if i > 0 {
			y += lineHeight
		}
		pdf.Text(x, y, string(line))
	}
	return y
}

func imageType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "JPG"
	case ".gif":
		return "GIF"
	default:
		return "PNG"
	}
}
