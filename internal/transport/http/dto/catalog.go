package dto

import "premium_motors/internal/domain/models"

// CatalogQuery mirrors the public catalog query string. The parameter names
// are the Portuguese ones the storefront sends.
type CatalogQuery struct {
	Search   string  `query:"search"`
	Marca    string  `query:"marca"`
	AnoMin   string  `query:"anoMin"`
	AnoMax   string  `query:"anoMax"`
	PrecoMin float64 `query:"precoMin"`
	PrecoMax float64 `query:"precoMax"`
	Page     int     `query:"page"`
	Limit    int     `query:"limit"`
	ShowAll  bool    `query:"showAll"`
}

func (q CatalogQuery) ToFilter() models.CatalogFilter {
	return models.CatalogFilter{
		Search:   q.Search,
		Brand:    q.Marca,
		YearMin:  q.AnoMin,
		YearMax:  q.AnoMax,
		PriceMin: q.PrecoMin,
		PriceMax: q.PrecoMax,
	}
}

type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalCount int  `json:"totalCount"`
	TotalPages int  `json:"totalPages"`
	HasMore    bool `json:"hasMore"`
}

type CatalogResponse struct {
	Cars       []models.Car `json:"cars"`
	Pagination Pagination   `json:"pagination"`
}
