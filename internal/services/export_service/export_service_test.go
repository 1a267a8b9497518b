package services

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"premium_motors/internal/domain/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type MockCarRepository struct {
	mock.Mock
}

func (m *MockCarRepository) SaveCar(ctx context.Context, car models.Car) (uuid.UUID, error) {
	args := m.Called(ctx, car)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockCarRepository) UpdateCar(ctx context.Context, car models.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}

func (m *MockCarRepository) UpdateStatus(ctx context.Context, carID uuid.UUID, status models.CarStatus) error {
	args := m.Called(ctx, carID, status)
	return args.Error(0)
}

func (m *MockCarRepository) DeleteCar(ctx context.Context, carID uuid.UUID) error {
	args := m.Called(ctx, carID)
	return args.Error(0)
}

func (m *MockCarRepository) GetCarByID(ctx context.Context, carID uuid.UUID) (models.Car, error) {
	args := m.Called(ctx, carID)
	return args.Get(0).(models.Car), args.Error(1)
}

func (m *MockCarRepository) GetCatalog(ctx context.Context, filter models.CatalogFilter, limit, offset uint64) ([]models.Car, int, error) {
	args := m.Called(ctx, filter, limit, offset)
	return args.Get(0).([]models.Car), args.Int(1), args.Error(2)
}

func (m *MockCarRepository) GetAllCars(ctx context.Context) ([]models.Car, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Car), args.Error(1)
}

func (m *MockCarRepository) GetBrands(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCarRepository) GetCarsForExport(ctx context.Context, consigned *bool) ([]models.Car, error) {
	args := m.Called(ctx, consigned)
	return args.Get(0).([]models.Car), args.Error(1)
}

func TestParseConsignedFilter(t *testing.T) {
	tests := []struct {
		value    string
		expected *bool
	}{
		{"sim", boolPtr(true)},
		{"SIM", boolPtr(true)},
		{"nao", boolPtr(false)},
		{"", nil},
		{"todos", nil},
	}

	for _, tt := range tests {
		t.Run("value "+tt.value, func(t *testing.T) {
			got := ParseConsignedFilter(tt.value)
			if tt.expected == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, *tt.expected, *got)
			}
		})
	}
}

func boolPtr(v bool) *bool { return &v }

func strPtr(s string) *string { return &s }

func TestExportService_ExportCars(t *testing.T) {
	ctx := context.Background()

	// Repo returns cars already sorted by brand then model.
	cars := []models.Car{
		{
			Brand: "Honda", Model: "Civic", Version: strPtr("EXL"),
			Year: "2021", ModelYear: strPtr("2022"),
			Plate: strPtr("ABC1D23"), Color: strPtr("Preto"), Price: 120000,
		},
		{
			Brand: "Honda", Model: "Fit",
			Year: "2019", Price: 75000,
		},
		{
			Brand: "Toyota", Model: "Corolla",
			Year: "2020", ModelYear: strPtr("2020"),
			Plate: strPtr("XYZ9A87"), Color: strPtr("Prata"), Price: 98000,
		},
	}

	repo := new(MockCarRepository)
	service := NewExportService(slog.Default(), repo)

	repo.On("GetCarsForExport", ctx, (*bool)(nil)).Return(cars, nil).Once()

	content, filename, err := service.ExportCars(ctx, nil)

	require.NoError(t, err)
	assert.Equal(t, "estoque_completo.xlsx", filename)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	const sheet = "Estoque Completo"

	header, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Modelo", header)

	// Row 2: uppercase brand, row 3-4 its cars, row 5 blank, row 6 next brand.
	get := func(cell string) string {
		v, err := f.GetCellValue(sheet, cell)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "HONDA", get("A2"))
	assert.Equal(t, "Civic EXL", get("A3"))
	assert.Equal(t, "ABC1D23", get("B3"))
	assert.Equal(t, "Preto", get("C3"))
	assert.Equal(t, "2021", get("D3"))
	assert.Equal(t, "2022", get("E3"))

	assert.Equal(t, "Fit", get("A4"))
	assert.Equal(t, "Sem placa", get("B4"))
	assert.Equal(t, "N/I", get("C4"))
	assert.Equal(t, "N/I", get("E4"))

	assert.Equal(t, "", get("A5"))
	assert.Equal(t, "TOYOTA", get("A6"))
	assert.Equal(t, "Corolla", get("A7"))

	repo.AssertExpectations(t)
}

func TestExportService_ExportCars_ConsignedFilter(t *testing.T) {
	ctx := context.Background()

	repo := new(MockCarRepository)
	service := NewExportService(slog.Default(), repo)

	consigned := true
	repo.On("GetCarsForExport", ctx, &consigned).Return([]models.Car{}, nil).Once()

	content, filename, err := service.ExportCars(ctx, &consigned)

	require.NoError(t, err)
	assert.Equal(t, "estoque_consignados.xlsx", filename)
	assert.NotEmpty(t, content)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "Consignados", f.GetSheetName(0))

	repo.AssertExpectations(t)
}

func TestExportService_ExportCars_RepoError(t *testing.T) {
	ctx := context.Background()

	repo := new(MockCarRepository)
	service := NewExportService(slog.Default(), repo)

	repo.On("GetCarsForExport", ctx, (*bool)(nil)).
		Return([]models.Car(nil), errors.New("db down")).Once()

	_, _, err := service.ExportCars(ctx, nil)

	assert.Error(t, err)
}

func TestExportNames(t *testing.T) {
	own := false
	consigned := true

	tests := []struct {
		name     string
		filter   *bool
		sheet    string
		filename string
	}{
		{"no filter", nil, "Estoque Completo", "estoque_completo.xlsx"},
		{"consigned", &consigned, "Consignados", "estoque_consignados.xlsx"},
		{"own stock", &own, "Estoque Próprio", "estoque_proprio.xlsx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet, filename := exportNames(tt.filter)
			assert.Equal(t, tt.sheet, sheet)
			assert.Equal(t, tt.filename, filename)
		})
	}
}
