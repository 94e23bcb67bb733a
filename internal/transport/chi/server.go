// Package chi implements the HTTP API over the chi router.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/prodsearch/internal/domain"
	"github.com/kailas-cloud/prodsearch/internal/domain/search/mode"
	"github.com/kailas-cloud/prodsearch/internal/domain/search/request"
	"github.com/kailas-cloud/prodsearch/internal/metrics"
	cataloguc "github.com/kailas-cloud/prodsearch/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/prodsearch/internal/usecase/health"
	searchuc "github.com/kailas-cloud/prodsearch/internal/usecase/search"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server holds the API handlers.
type Server struct {
	catalog       *cataloguc.Service
	search        *searchuc.Service
	engine        EngineClient
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server. engine may be nil when the external
// engine is not configured.
func NewServer(
	catalog *cataloguc.Service,
	search *searchuc.Service,
	engine EngineClient,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		catalog: catalog,
		search:  search,
		engine:  engine,
		health:  health,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		dimensionMismatchHandler,
		sentinelHandler(domain.ErrValidation, http.StatusBadRequest, CodeValidationFailed),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, CodeProductNotFound),
		sentinelHandler(domain.ErrEngineUnavailable, http.StatusBadGateway, CodeEngineUnavailable),
	}
	return s
}

// Register mounts all API routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/search", s.SearchProducts)
		r.Post("/products", s.CreateProduct)
		r.Get("/products", s.ListProducts)
		r.Get("/products/{id}", s.GetProduct)
		r.Get("/engine/status", s.EngineStatus)
		r.Post("/engine/query", s.EngineQuery)
	})
}

// SearchProducts handles POST /api/v1/search.
func (s *Server) SearchProducts(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	searchReq, err := request.New(req.Query, mode.Mode(req.Mode), req.QueryVector, req.TopK, req.Limit)
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues(req.Mode, "error").Inc()
		s.handleDomainError(w, err)
		return
	}

	start := time.Now()
	results, err := s.search.Search(r.Context(), &searchReq)
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues(string(searchReq.Mode()), "error").Inc()
		s.handleDomainError(w, err)
		return
	}

	m := string(searchReq.Mode())
	metrics.SearchRequestsTotal.WithLabelValues(m, "success").Inc()
	metrics.SearchDuration.WithLabelValues(m).Observe(time.Since(start).Seconds())
	metrics.SearchResultsReturned.WithLabelValues(m).Observe(float64(len(results)))

	items := make([]SearchResultItem, len(results))
	for i := range results {
		items[i] = resultToDTO(&results[i])
	}

	writeJSON(w, http.StatusOK, SearchResponse{Items: items, Count: len(items)})
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	p, err := s.catalog.Add(r.Context(), req.Title, req.Description, req.Category, req.Price)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.Header().Set("Location", "/api/v1/products/"+p.ID())
	writeJSON(w, http.StatusCreated, productToDTO(&p))
}

// ListProducts handles GET /api/v1/products.
func (s *Server) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.catalog.List(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]ProductResponse, len(products))
	for i := range products {
		items[i] = productToDTO(&products[i])
	}

	writeJSON(w, http.StatusOK, ProductListResponse{Items: items, Count: len(items)})
}

// GetProduct handles GET /api/v1/products/{id}.
func (s *Server) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := s.catalog.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, productToDTO(&p))
}

// EngineStatus handles GET /api/v1/engine/status. Always 200: an
// unreachable or unconfigured engine reports connected=false.
func (s *Server) EngineStatus(w http.ResponseWriter, r *http.Request) {
	if s.engine == nil {
		writeJSON(w, http.StatusOK, EngineStatusResponse{
			Connected: false,
			Detail:    "engine not configured",
		})
		return
	}

	writeJSON(w, http.StatusOK, engineStatusToDTO(s.engine.Status(r.Context())))
}

// EngineQuery handles POST /api/v1/engine/query, a raw passthrough to the
// external engine.
func (s *Server) EngineQuery(w http.ResponseWriter, r *http.Request) {
	if s.engine == nil {
		writeError(w, http.StatusBadGateway, CodeEngineUnavailable, "engine not configured")
		return
	}

	var req EngineQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	res, err := s.engine.Query(r.Context(), req.Index, req.Query, req.TopK)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	hits := make([]EngineQueryHit, len(res.Hits))
	for i, h := range res.Hits {
		hits[i] = EngineQueryHit{Key: h.Key, Score: h.Score}
	}

	writeJSON(w, http.StatusOK, EngineQueryResponse{Total: res.Total, Hits: hits})
}

// HealthCheck handles GET /health. A degraded engine or embedding provider
// does not fail the endpoint: the retrieval core works without them.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())
	writeJSON(w, http.StatusOK, healthToDTO(report))
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns the sentinel error message for the client
// without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrValidation,
		domain.ErrNotFound,
		domain.ErrDimensionMismatch,
		domain.ErrEngineUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return err.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// dimensionMismatchHandler handles ErrDimensionMismatch with got/want fields.
func dimensionMismatchHandler(w http.ResponseWriter, err error, msg string) bool {
	if !errors.Is(err, domain.ErrDimensionMismatch) {
		return false
	}
	var dme *domain.DimensionMismatchError
	if errors.As(err, &dme) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"code":    CodeDimensionMismatch,
			"message": msg,
			"got":     dme.Got,
			"want":    dme.Want,
		})
		return true
	}
	writeError(w, http.StatusBadRequest, CodeDimensionMismatch, msg)
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}
