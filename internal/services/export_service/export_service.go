package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"premium_motors/internal/domain/models"
	"premium_motors/internal/lib/logger/sl"
	"premium_motors/internal/repository"

	"github.com/xuri/excelize/v2"
)

type ExportService struct {
	log  *slog.Logger
	repo repository.CarRepository
}

func NewExportService(log *slog.Logger, repo repository.CarRepository) *ExportService {
	return &ExportService{
		log:  log,
		repo: repo,
	}
}

// ParseConsignedFilter maps the consignado query value onto the repo filter.
// "sim" and "nao" select one side; anything else means no filter.
func ParseConsignedFilter(value string) *bool {
	switch strings.ToLower(value) {
	case "sim":
		v := true
		return &v
	case "nao":
		v := false
		return &v
	}
	return nil
}

const (
	placeholderNoPlate = "Sem placa"
	placeholderNone    = "N/I"
)

// ExportCars renders the current AVAILABLE stock as a spreadsheet grouped by
// brand: one uppercase brand row, then one row per car, a blank row between
// brands. Returns the file content and the filename for the download header.
func (s *ExportService) ExportCars(ctx context.Context, consigned *bool) ([]byte, string, error) {
	const op = "service.ExportService.ExportCars"

	log := s.log.With(slog.String("op", op))

	cars, err := s.repo.GetCarsForExport(ctx, consigned)
	if err != nil {
		log.Error("failed to load cars for export", sl.Err(err))
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	sheet, filename := exportNames(consigned)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDDDDD"}},
	})
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	brandStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	brlFormat := `"R$" #,##0.00`
	priceStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &brlFormat})
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	header := []string{"Modelo", "Placa", "Cor", "Ano Fab.", "Ano Mod.", "Preço"}
	for i, title := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, "", fmt.Errorf("%s: %w", op, err)
		}
	}
	if err := f.SetCellStyle(sheet, "A1", "F1", headerStyle); err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	row := 2
	currentBrand := ""
	for _, car := range cars {
		if car.Brand != currentBrand {
			if currentBrand != "" {
				row++ // blank row between brands
			}
			currentBrand = car.Brand

			cell, _ := excelize.CoordinatesToCellName(1, row)
			if err := f.SetCellValue(sheet, cell, strings.ToUpper(car.Brand)); err != nil {
				return nil, "", fmt.Errorf("%s: %w", op, err)
			}
			if err := f.SetCellStyle(sheet, cell, cell, brandStyle); err != nil {
				return nil, "", fmt.Errorf("%s: %w", op, err)
			}
			row++
		}

		values := []interface{}{
			carModelLabel(car),
			stringOr(car.Plate, placeholderNoPlate),
			stringOr(car.Color, placeholderNone),
			car.Year,
			stringOr(car.ModelYear, placeholderNone),
			car.Price,
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, "", fmt.Errorf("%s: %w", op, err)
			}
		}

		priceCell, _ := excelize.CoordinatesToCellName(6, row)
		if err := f.SetCellStyle(sheet, priceCell, priceCell, priceStyle); err != nil {
			return nil, "", fmt.Errorf("%s: %w", op, err)
		}

		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Error("failed to write spreadsheet", sl.Err(err))
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	log.Info("stock exported", slog.Int("cars", len(cars)))

	return buf.Bytes(), filename, nil
}

func exportNames(consigned *bool) (sheet, filename string) {
	switch {
	case consigned == nil:
		return "Estoque Completo", "estoque_completo.xlsx"
	case *consigned:
		return "Consignados", "estoque_consignados.xlsx"
	default:
		return "Estoque Próprio", "estoque_proprio.xlsx"
	}
}

func carModelLabel(car models.Car) string {
	if car.Version != nil && *car.Version != "" {
		return car.Model + " " + *car.Version
	}
	return car.Model
}

func stringOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
