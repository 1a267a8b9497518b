package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"premium_motors/internal/domain/models"
	"premium_motors/internal/lib/logger/sl"

	"github.com/go-pdf/fpdf"
)

var pdfColumns = []struct {
	title string
	width float64
	align string
}{
	{"Modelo", 50, "L"},
	{"Placa", 25, "C"},
	{"Cor", 20, "C"},
	{"Ano Fab.", 20, "C"},
	{"Ano Modelo", 20, "C"},
	{"Valor", 30, "R"},
}

// ExportCarsPDF renders the same stock listing as ExportCars as a printable
// PDF: a document header, then one table per brand under an uppercase brand
// title. The consigned filter and ordering are identical to the spreadsheet.
func (s *ExportService) ExportCarsPDF(ctx context.Context, consigned *bool) ([]byte, string, error) {
	const op = "service.ExportService.ExportCarsPDF"

	log := s.log.With(slog.String("op", op))

	cars, err := s.repo.GetCarsForExport(ctx, consigned)
	if err != nil {
		log.Error("failed to load cars for export", sl.Err(err))
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(15, 20, "PREMIUM MOTORS")
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(15, 28, "Estoque")
	pdf.SetLineWidth(0.5)
	pdf.Line(15, 35, 195, 35)
	pdf.SetY(45)

	for start := 0; start < len(cars); {
		end := start
		for end < len(cars) && cars[end].Brand == cars[start].Brand {
			end++
		}

		// Keep a brand title from landing at the very bottom of a page.
		if pdf.GetY() > 250 {
			pdf.AddPage()
		}

		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetX(15)
		pdf.CellFormat(0, 8, tr(strings.ToUpper(cars[start].Brand)), "", 1, "L", false, 0, "")

		writeBrandTable(pdf, tr, cars[start:end])
		pdf.Ln(6)

		start = end
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Error("failed to write pdf", sl.Err(err))
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	log.Info("stock exported", slog.Int("cars", len(cars)))

	return buf.Bytes(), pdfExportName(consigned, time.Now()), nil
}

func writeBrandTable(pdf *fpdf.Fpdf, tr func(string) string, cars []models.Car) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(41, 128, 185)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetX(15)
	for _, col := range pdfColumns {
		pdf.CellFormat(col.width, 6, tr(col.title), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	for _, car := range cars {
		values := []string{
			carModelLabel(car),
			stringOr(car.Plate, placeholderNoPlate),
			stringOr(car.Color, placeholderNone),
			car.Year,
			stringOr(car.ModelYear, car.Year),
			formatBRL(car.Price),
		}
		pdf.SetX(15)
		for i, col := range pdfColumns {
			pdf.CellFormat(col.width, 6, tr(values[i]), "1", 0, col.align, false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func pdfExportName(consigned *bool, now time.Time) string {
	name := "carros-disponiveis"
	switch {
	case consigned == nil:
	case *consigned:
		name = "carros-consignados"
	default:
		name = "carros-nao-consignados"
	}
	return name + "-" + now.Format("2006-01-02") + ".pdf"
}

// formatBRL renders 123456.7 as "R$ 123.456,70".
func formatBRL(v float64) string {
	raw := strconv.FormatFloat(v, 'f', 2, 64)
	intPart, frac, _ := strings.Cut(raw, ".")

	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	return "R$ " + b.String() + "," + frac
}
