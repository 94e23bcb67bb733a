package chi

import (
	"github.com/kailas-cloud/prodsearch/internal/domain/product"
	"github.com/kailas-cloud/prodsearch/internal/domain/search/result"
	"github.com/kailas-cloud/prodsearch/internal/engine"
	healthuc "github.com/kailas-cloud/prodsearch/internal/usecase/health"
)

// ErrorCode identifies the error class in API responses.
type ErrorCode string

// API error codes.
const (
	CodeBadRequest        ErrorCode = "bad_request"
	CodeValidationFailed  ErrorCode = "validation_failed"
	CodeDimensionMismatch ErrorCode = "vector_dim_mismatch"
	CodeProductNotFound   ErrorCode = "product_not_found"
	CodeEngineUnavailable ErrorCode = "engine_unavailable"
	CodeInternalError     ErrorCode = "internal_error"
)

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// CreateProductRequest is the body of POST /api/v1/products.
type CreateProductRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
}

// ProductResponse is a product in API responses. Vectors are not exposed.
type ProductResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
}

// ProductListResponse is the body of GET /api/v1/products.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Count int               `json:"count"`
}

// SearchRequest is the body of POST /api/v1/search.
type SearchRequest struct {
	Query       string    `json:"query"`
	Mode        string    `json:"mode"`
	QueryVector []float32 `json:"query_vector,omitempty"`
	TopK        int       `json:"top_k,omitempty"`
	Limit       int       `json:"limit,omitempty"`
}

// SearchResultItem is a single scored hit.
type SearchResultItem struct {
	Product      ProductResponse `json:"product"`
	Score        float64         `json:"score"`
	LexicalMatch bool            `json:"lexical_match"`
	MatchedField string          `json:"matched_field,omitempty"`
}

// SearchResponse is the body of a successful search.
type SearchResponse struct {
	Items []SearchResultItem `json:"items"`
	Count int                `json:"count"`
}

// EngineQueryRequest is the body of POST /api/v1/engine/query.
type EngineQueryRequest struct {
	Index string `json:"index"`
	Query string `json:"query"`
	TopK  int    `json:"top_k,omitempty"`
}

// EngineQueryHit is a raw engine hit.
type EngineQueryHit struct {
	Key   string  `json:"key"`
	Score float64 `json:"score"`
}

// EngineQueryResponse is the body of a successful engine passthrough query.
type EngineQueryResponse struct {
	Total int              `json:"total"`
	Hits  []EngineQueryHit `json:"hits"`
}

// EngineStatusResponse is the body of GET /api/v1/engine/status.
type EngineStatusResponse struct {
	Connected bool   `json:"connected"`
	Detail    string `json:"detail"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func productToDTO(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID(),
		Title:       p.Title(),
		Description: p.Description(),
		Category:    p.Category(),
		Price:       p.Price(),
	}
}

func resultToDTO(r *result.Result) SearchResultItem {
	p := r.Product()
	return SearchResultItem{
		Product:      productToDTO(&p),
		Score:        r.Score(),
		LexicalMatch: r.Lexical(),
		MatchedField: string(r.MatchedField()),
	}
}

func engineStatusToDTO(st engine.Status) EngineStatusResponse {
	return EngineStatusResponse{Connected: st.Connected, Detail: st.Detail}
}

func healthToDTO(report healthuc.Report) HealthResponse {
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthResponse{Status: string(report.Status), Checks: checks}
}
