package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"premium_motors/internal/domain/models"
	"premium_motors/internal/lib/logger/sl"
	"premium_motors/internal/metrics"
	"premium_motors/internal/transport/http/dto"

	gocache "github.com/patrickmn/go-cache"
)

var (
	ErrPlateNotFound = errors.New("plate not found")
	ErrInvalidPlate  = errors.New("invalid plate")
	ErrLookupFailed  = errors.New("plate lookup failed")
)

// PlateService queries the external vehicle-data provider and caches answers
// in-process for the configured TTL.
type PlateService struct {
	log     *slog.Logger
	client  *http.Client
	baseURL string
	token   string
	cache   *gocache.Cache
}

func NewPlateService(log *slog.Logger, baseURL, token string, timeout, cacheTTL time.Duration) *PlateService {
	return &PlateService{
		log:     log,
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		token:   token,
		cache:   gocache.New(cacheTTL, 2*cacheTTL),
	}
}

// providerResponse is the subset of the provider payload we map into the
// admin form pre-fill.
type providerResponse struct {
	Marca       string `json:"marca"`
	Modelo      string `json:"modelo"`
	Ano         string `json:"ano"`
	AnoModelo   string `json:"anoModelo"`
	Versao      string `json:"versao"`
	Cambio      string `json:"cambio"`
	Portas      any    `json:"portas"`
	Combustivel string `json:"combustivel"`
	Cor         string `json:"cor"`
}

// Lookup fetches vehicle data for a plate. Single attempt against the
// provider; upstream failures come back as ErrLookupFailed with no retry.
func (s *PlateService) Lookup(ctx context.Context, plate string) (dto.PlateInfo, error) {
	const op = "service.PlateService.Lookup"

	normalized := models.NormalizePlate(plate)
	if len(normalized) < 7 {
		return dto.PlateInfo{}, ErrInvalidPlate
	}

	log := s.log.With(
		slog.String("op", op),
		slog.String("plate", normalized),
	)

	if cached, ok := s.cache.Get(normalized); ok {
		metrics.PlateLookupsTotal.WithLabelValues("cache_hit").Inc()
		return cached.(dto.PlateInfo), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/"+normalized, nil)
	if err != nil {
		return dto.PlateInfo{}, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := s.client.Do(req)
	if err != nil {
		metrics.PlateLookupsTotal.WithLabelValues("error").Inc()
		log.Error("provider request failed", sl.Err(err))
		return dto.PlateInfo{}, fmt.Errorf("%s: %w", op, ErrLookupFailed)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		metrics.PlateLookupsTotal.WithLabelValues("not_found").Inc()
		return dto.PlateInfo{}, fmt.Errorf("%s: %w", op, ErrPlateNotFound)
	case resp.StatusCode != http.StatusOK:
		metrics.PlateLookupsTotal.WithLabelValues("error").Inc()
		log.Error("provider returned unexpected status", slog.Int("status", resp.StatusCode))
		return dto.PlateInfo{}, fmt.Errorf("%s: %w", op, ErrLookupFailed)
	}

	var payload providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		metrics.PlateLookupsTotal.WithLabelValues("error").Inc()
		log.Error("failed to decode provider response", sl.Err(err))
		return dto.PlateInfo{}, fmt.Errorf("%s: %w", op, ErrLookupFailed)
	}

	info := dto.PlateInfo{
		Plate:        normalized,
		Brand:        payload.Marca,
		Model:        payload.Modelo,
		Year:         payload.Ano,
		ModelYear:    payload.AnoModelo,
		Version:      payload.Versao,
		Transmission: payload.Cambio,
		Doors:        doorsToString(payload.Portas),
		Fuel:         payload.Combustivel,
		Color:        payload.Cor,
	}

	s.cache.SetDefault(normalized, info)
	metrics.PlateLookupsTotal.WithLabelValues("ok").Inc()
	log.Info("plate resolved", slog.String("brand", info.Brand), slog.String("model", info.Model))

	return info, nil
}

// doorsToString tolerates the provider sending doors as either a number or a
// string.
func doorsToString(v any) string {
	switch d := v.(type) {
	case string:
		return d
	case float64:
		return strconv.Itoa(int(d))
	}
	return ""
}
