package estimate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/adapters"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/models/api"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/models/domain"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/models/store"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/services/config"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/services/estimation"
	"github.com/ahmedrashadmoahmed-lang/TSC-CRM-github-sub000/pkg/services/prediction"
)

const maxBodyBytes = 10 << 20

// HistoryStore is the persistence the handlers read comparable records from
type HistoryStore interface {
	Add(ctx context.Context, tenant string, records []store.HistoryRecord) error
	GetRecords(ctx context.Context, tenant string, filter store.HistoryFilter) ([]store.HistoryRecord, error)
	GetStats(ctx context.Context, tenant string) (*store.HistoryStats, error)
}

type Handler struct {
	history   HistoryStore
	profiles  config.Registry
	estimator *estimation.Estimator
	predictor *prediction.Predictor
}

func NewHandler(
	history HistoryStore,
	profiles config.Registry,
	estimator *estimation.Estimator,
	predictor *prediction.Predictor,
) *Handler {
	return &Handler{
		history:   history,
		profiles:  profiles,
		estimator: estimator,
		predictor: predictor,
	}
}

func (h *Handler) EstimateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	tenant := chi.URLParam(r, "tenant")

	var req api.ItemEstimateRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Item.ProductName == "" {
		writeError(w, r, http.StatusBadRequest, "item.product_name is required")
		return
	}

	opts, pool, ok := h.prepare(w, r, tenant, req.Options)
	if !ok {
		return
	}

	estimate := h.estimator.EstimateItemCost(adapters.MapRequestedItemApiToDomain(req.Item), pool, opts)
	logger.Debug().
		Str("tenant", tenant).
		Str("product", req.Item.ProductName).
		Int("based_on", estimate.BasedOn).
		Msg("estimated item")

	writeJSON(w, r, http.StatusOK, adapters.MapItemEstimateDomainToApi(estimate))
}

func (h *Handler) EstimateRFQ(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	tenant := chi.URLParam(r, "tenant")

	var req api.RFQEstimateRequest
	if !decode(w, r, &req) {
		return
	}
	for _, item := range req.Items {
		if item.ProductName == "" {
			writeError(w, r, http.StatusBadRequest, "every item needs a product_name")
			return
		}
	}

	opts, pool, ok := h.prepare(w, r, tenant, req.Options)
	if !ok {
		return
	}

	estimate, err := h.estimator.EstimateRFQCost(ctx, adapters.MapRequestedItemsApiToDomain(req.Items), pool, opts)
	if err != nil {
		logger.Error().Err(err).Str("tenant", tenant).Msg("failed to estimate rfq")
		writeError(w, r, http.StatusInternalServerError, "failed to estimate rfq")
		return
	}

	response := adapters.MapRFQEstimateDomainToApi(estimate)
	if req.Budget != nil {
		comparison := adapters.MapBudgetComparisonDomainToApi(
			estimation.CompareTotalWithBudget(response.TotalEstimate, *req.Budget))
		response.Budget = &comparison
	}

	writeJSON(w, r, http.StatusOK, response)
}

func (h *Handler) PredictPrice(w http.ResponseWriter, r *http.Request) {
	tenant := chi.URLParam(r, "tenant")

	var req api.PredictionRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Item.ProductName == "" {
		writeError(w, r, http.StatusBadRequest, "item.product_name is required")
		return
	}

	opts, pool, ok := h.prepare(w, r, tenant, req.Options)
	if !ok {
		return
	}

	result := h.predictor.PredictItemPrice(adapters.MapRequestedItemApiToDomain(req.Item), pool, opts)
	writeJSON(w, r, http.StatusOK, adapters.MapPricePredictionDomainToApi(result))
}

func (h *Handler) CompareBudget(w http.ResponseWriter, r *http.Request) {
	var req api.BudgetRequest
	if !decode(w, r, &req) {
		return
	}

	comparison := estimation.CompareTotalWithBudget(req.TotalEstimate, req.Budget)
	writeJSON(w, r, http.StatusOK, adapters.MapBudgetComparisonDomainToApi(comparison))
}

func (h *Handler) IngestHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	tenant := chi.URLParam(r, "tenant")

	var req api.HistoryIngestRequest
	if !decode(w, r, &req) {
		return
	}

	records := make([]domain.HistoricalRecord, 0, len(req.Records))
	for _, rec := range req.Records {
		if rec.ProductName == "" {
			writeError(w, r, http.StatusBadRequest, "every record needs a product_name")
			return
		}
		records = append(records, adapters.MapHistoricalRecordApiToDomain(rec))
	}

	if err := h.history.Add(ctx, tenant, adapters.MapDomainHistoricalRecordsToStore(tenant, records)); err != nil {
		logger.Error().Err(err).Str("tenant", tenant).Msg("failed to store history")
		writeError(w, r, http.StatusInternalServerError, "failed to store history")
		return
	}

	writeJSON(w, r, http.StatusCreated, api.IngestResult{Imported: len(records)})
}

func (h *Handler) GetHistoryStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	tenant := chi.URLParam(r, "tenant")

	stats, err := h.history.GetStats(ctx, tenant)
	if err != nil {
		logger.Error().Err(err).Str("tenant", tenant).Msg("failed to get history stats")
		writeError(w, r, http.StatusInternalServerError, "failed to get history stats")
		return
	}

	writeJSON(w, r, http.StatusOK, adapters.MapHistoryStatsStoreToApi(stats))
}

// prepare resolves tenant defaults and loads the tenant history. It writes the
// error response itself and reports whether the handler may continue.
func (h *Handler) prepare(
	w http.ResponseWriter,
	r *http.Request,
	tenant string,
	requested api.Options,
) (domain.Options, []domain.HistoricalRecord, bool) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	opts := adapters.MapOptionsApiToDomain(requested)

	profile, err := h.profiles.GetProfile(ctx, tenant)
	switch {
	case err == nil:
		opts = profile.Apply(opts)
	case errors.Is(err, config.ErrProfileNotFound):
		logger.Debug().Str("tenant", tenant).Msg("no tenant profile, using request options")
	default:
		logger.Error().Err(err).Str("tenant", tenant).Msg("failed to get tenant profile")
		writeError(w, r, http.StatusInternalServerError, "failed to resolve tenant profile")
		return domain.Options{}, nil, false
	}

	records, err := h.history.GetRecords(ctx, tenant, store.HistoryFilter{})
	if err != nil {
		logger.Error().Err(err).Str("tenant", tenant).Msg("failed to load history")
		writeError(w, r, http.StatusInternalServerError, "failed to load history")
		return domain.Options{}, nil, false
	}

	return opts, adapters.MapStoreHistoryRecordsToDomain(records), true
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, api.Error{Error: msg})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to encode response")
	}
}
