package repository

import (
	"testing"

	"premium_motors/internal/domain/models"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func conditionsToSQL(t *testing.T, conds []squirrel.Sqlizer) string {
	t.Helper()

	builder := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select("id").From("cars")
	for _, cond := range conds {
		builder = builder.Where(cond)
	}

	query, _, err := builder.ToSql()
	require.NoError(t, err)
	return query
}

func TestCatalogConditions(t *testing.T) {
	t.Run("empty filter still pins status", func(t *testing.T) {
		query := conditionsToSQL(t, CatalogConditions(models.CatalogFilter{}))
		assert.Contains(t, query, "status = $1")
	})

	t.Run("search combines substring fields with exact year", func(t *testing.T) {
		conds := CatalogConditions(models.CatalogFilter{Search: "2021"})
		query := conditionsToSQL(t, conds)

		assert.Contains(t, query, "brand ILIKE")
		assert.Contains(t, query, "model ILIKE")
		assert.Contains(t, query, "plate ILIKE")
		assert.Contains(t, query, "year =")
	})

	t.Run("all filters AND together", func(t *testing.T) {
		conds := CatalogConditions(models.CatalogFilter{
			Search:   "civic",
			Brand:    "honda",
			YearMin:  "2019",
			YearMax:  "2022",
			PriceMin: 50000,
			PriceMax: 150000,
		})

		// status + search OR-group + brand + 2 year bounds + 2 price bounds
		assert.Len(t, conds, 7)

		query := conditionsToSQL(t, conds)
		assert.Contains(t, query, "year >=")
		assert.Contains(t, query, "year <=")
		assert.Contains(t, query, "price >=")
		assert.Contains(t, query, "price <=")
	})

	t.Run("zero prices add no bounds", func(t *testing.T) {
		conds := CatalogConditions(models.CatalogFilter{PriceMin: 0, PriceMax: 0})
		assert.Len(t, conds, 1)
	})
}
