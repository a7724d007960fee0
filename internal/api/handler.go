package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/config"
	"github.com/rpgo/investment-calculator/internal/domain"
	"github.com/rpgo/investment-calculator/internal/output"
)

const maxBodyBytes = 1 << 20

// CacheHeader reports whether a response was served from the cache ("HIT") or computed ("MISS").
const CacheHeader = "X-Cache"

type Handler struct {
	engine *calculation.CalculationEngine
	cache  CacheRepository
	logger calculation.Logger

	// Locale renders amounts in formatted /scenarios reports; ?locale= overrides its tag.
	Locale output.ReportLocale
}

// NewHandler builds the API handler. cache may be nil to disable caching.
func NewHandler(engine *calculation.CalculationEngine, cache CacheRepository, logger calculation.Logger) *Handler {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	return &Handler{engine: engine, cache: cache, logger: logger}
}

// CompareResponse pairs a comparison with its recommendation.
type CompareResponse struct {
	Comparison     *domain.ScenarioComparison `json:"comparison"`
	Recommendation output.Recommendation      `json:"recommendation"`
}

// SweepRequest is the body of POST /sweep.
type SweepRequest struct {
	Parameters domain.CalculationParameters `json:"parameters"`
	Field      string                       `json:"field"`
	From       float64                      `json:"from"`
	To         float64                      `json:"to"`
	Steps      int                          `json:"steps"`
}

// Calculate handles POST /calculate with a CalculationParameters body.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var params domain.CalculationParameters
	if !h.decode(w, r, &params) {
		return
	}
	params = config.Sanitize(params)

	h.cached(w, r, "calculate", params, func() (any, error) {
		return h.engine.Calculate(params)
	})
}

// Compare handles POST /compare: one parameter set under every reinvestment period.
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	var params domain.CalculationParameters
	if !h.decode(w, r, &params) {
		return
	}
	params = config.Sanitize(params)

	h.cached(w, r, "compare", params, func() (any, error) {
		cmp, err := h.engine.CompareReinvestmentPeriods(params)
		if err != nil {
			return nil, err
		}
		return CompareResponse{Comparison: cmp, Recommendation: output.AnalyzeScenarios(cmp)}, nil
	})
}

// Sweep handles POST /sweep.
func (h *Handler) Sweep(w http.ResponseWriter, r *http.Request) {
	var req SweepRequest
	if !h.decode(w, r, &req) {
		return
	}
	req.Parameters = config.Sanitize(req.Parameters)

	h.cached(w, r, "sweep", req, func() (any, error) {
		field, err := calculation.ParseSweepField(req.Field)
		if err != nil {
			return nil, err
		}
		return h.engine.Sweep(req.Parameters, field, req.From, req.To, req.Steps)
	})
}

// Scenarios handles POST /scenarios with a scenario file body. The optional format query
// parameter selects a report formatter; without it the response is JSON.
func (h *Handler) Scenarios(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	cfg, err := config.NewInputParser().Parse(body, "json")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	cmp, err := h.engine.RunScenarios(cfg)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		writeJSON(w, http.StatusOK, CompareResponse{Comparison: cmp, Recommendation: output.AnalyzeScenarios(cmp)})
		return
	}
	loc := h.Locale
	if tag := r.URL.Query().Get("locale"); tag != "" {
		loc.Tag = tag
	}
	f := output.GetLocalizedFormatter(format, loc)
	if f == nil {
		http.Error(w, output.UnsupportedFormatError(format).Error(), http.StatusBadRequest)
		return
	}
	data, err := f.Format(cmp)
	if err != nil {
		h.logger.Errorf("request %s: format %s: %v", RequestIDFromContext(r.Context()), f.Name(), err)
		http.Error(w, "report generation failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType(f.Name()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// Health handles GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decode enforces POST and decodes a JSON body into v, writing the error response itself.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return false
	}
	return true
}

// cached serves key from the cache when possible, otherwise computes, stores and writes it.
func (h *Handler) cached(w http.ResponseWriter, r *http.Request, endpoint string, request any, compute func() (any, error)) {
	ctx := r.Context()
	reqID := RequestIDFromContext(ctx)

	var key string
	if h.cache != nil {
		var err error
		if key, err = CacheKey(endpoint, request); err != nil {
			h.logger.Warnf("request %s: %v", reqID, err)
		} else if hit, ok := h.cache.Get(ctx, key); ok {
			w.Header().Set(CacheHeader, "HIT")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(hit))
			return
		}
	}

	result, err := compute()
	if err != nil {
		h.logger.Infof("request %s: %s rejected: %v", reqID, endpoint, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		h.logger.Errorf("request %s: encode %s: %v", reqID, endpoint, err)
		http.Error(w, "encoding failed", http.StatusInternalServerError)
		return
	}
	if key != "" {
		if err := h.cache.Set(ctx, key, string(data)); err != nil {
			h.logger.Warnf("request %s: cache set: %v", reqID, err)
		}
	}
	h.logger.Debugf("request %s: %s computed", reqID, endpoint)

	if h.cache != nil {
		w.Header().Set(CacheHeader, "MISS")
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func contentType(format string) string {
	switch format {
	case "json":
		return "application/json"
	case "yaml":
		return "application/yaml"
	case "csv", "detailed-csv":
		return "text/csv; charset=utf-8"
	case "html":
		return "text/html; charset=utf-8"
	case "pdf":
		return "application/pdf"
	default:
		return "text/plain; charset=utf-8"
	}
}
