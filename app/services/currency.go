package services

import (
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// FallbackRate is returned when the rate API is unreachable and no cached
// value exists yet.
const FallbackRate = 227.5567

const rateCacheTTL = time.Hour

// DolarAPIResponse mirrors the ve.dolarapi.com payload.
type DolarAPIResponse struct {
	Fuente             string   `json:"fuente"`
	Nombre             string   `json:"nombre"`
	Compra             *float64 `json:"compra"`
	Venta              *float64 `json:"venta"`
	Promedio           float64  `json:"promedio"`
	FechaActualizacion string   `json:"fechaActualizacion"`
}

type cachedRate struct {
	rate      float64
	fetchedAt time.Time
}

// RateResolver fetches the USD/BSF exchange rate and caches it in process
// memory for an hour. GetRate never fails: on fetch errors it serves the
// stale cached value, or FallbackRate when nothing was ever fetched.
type RateResolver struct {
	client *resty.Client
	logger *zap.Logger
	now    func() time.Time

	mu     sync.Mutex
	cached *cachedRate
}

func NewRateResolver(baseURL string, logger *zap.Logger) *RateResolver {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetHeader("Accept", "application/json")

	return &RateResolver{
		client: client,
		logger: logger,
		now:    time.Now,
	}
}

// GetRate returns the current USD/BSF rate.
func (r *RateResolver) GetRate() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cached != nil && r.now().Sub(r.cached.fetchedAt) < rateCacheTTL {
		return r.cached.rate
	}

	var payload DolarAPIResponse
	resp, err := r.client.R().
		SetResult(&payload).
		Get("/v1/dolares/oficial")

	if err != nil || resp.IsError() {
		if err != nil {
			r.logger.Warn("dollar rate fetch failed", zap.Error(err))
		} else {
			r.logger.Warn("dollar rate fetch failed", zap.Int("status", resp.StatusCode()))
		}
		if r.cached != nil {
			return r.cached.rate
		}
		return FallbackRate
	}

	r.cached = &cachedRate{rate: payload.Promedio, fetchedAt: r.now()}
	return payload.Promedio
}

// ConvertUSDToBSF converts a dollar amount to bolívares at the current rate.
func (r *RateResolver) ConvertUSDToBSF(usdAmount float64) float64 {
	return usdAmount * r.GetRate()
}
