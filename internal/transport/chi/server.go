// Package chi exposes the collection schema service over HTTP.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ucasfl/milvus/internal/domain"
	"github.com/ucasfl/milvus/internal/domain/schema"
	"github.com/ucasfl/milvus/internal/metrics"
	collectionuc "github.com/ucasfl/milvus/internal/usecase/collection"
	healthuc "github.com/ucasfl/milvus/internal/usecase/health"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server holds the HTTP handlers for the collection API.
type Server struct {
	collections   *collectionuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(collections *collectionuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	s := &Server{
		collections: collections,
		health:      health,
		logger:      logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidCollectionName, http.StatusBadRequest, codeInvalidCollectionName),
		sentinelHandler(domain.ErrMissingField, http.StatusBadRequest, codeMissingField),
		sentinelHandler(domain.ErrInvalidEnumValue, http.StatusBadRequest, codeInvalidEnumValue),
		sentinelHandler(domain.ErrInvalidSchema, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeCollectionNotFound),
		sentinelHandler(domain.ErrAlreadyExists, http.StatusConflict, codeAlreadyExists),
	}
	return s
}

// Register mounts the API routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Post("/api/v1/hybrid_collections", s.CreateHybridCollection)
	r.Get("/api/v1/collections", s.ListCollections)
	r.Get("/api/v1/collections/{collection}", s.GetCollection)
	r.Delete("/api/v1/collections/{collection}", s.DropCollection)
	r.Get("/api/v1/collections/{collection}/exists", s.HasCollection)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// CreateHybridCollection handles POST /api/v1/hybrid_collections.
func (s *Server) CreateHybridCollection(w http.ResponseWriter, r *http.Request) {
	var req createHybridCollectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.CollectionName == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "Collection name is required")
		return
	}
	if len(req.FieldTypes) == 0 {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "At least one field is required")
		return
	}

	fieldTypes := make(map[string]schema.DataType, len(req.FieldTypes))
	for name, typeName := range req.FieldTypes {
		dt, err := schema.ParseDataType(typeName)
		if err != nil {
			s.handleDomainError(w, err)
			return
		}
		fieldTypes[name] = dt
	}

	col, err := s.collections.Create(
		r.Context(), req.CollectionName,
		fieldTypes, req.FieldIndexParams, req.FieldParams, req.ExtraParams,
	)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	metrics.CollectionCreated()
	writeJSON(w, http.StatusCreated, collectionToResponse(col, nil))
}

// ListCollections handles GET /api/v1/collections.
func (s *Server) ListCollections(w http.ResponseWriter, r *http.Request) {
	cols, err := s.collections.List(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]collectionResponse, len(cols))
	for i, c := range cols {
		items[i] = collectionToResponse(c, nil)
	}

	writeJSON(w, http.StatusOK, collectionListResponse{Collections: items, Count: len(items)})
}

// GetCollection handles GET /api/v1/collections/{collection}.
func (s *Server) GetCollection(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "collection")

	col, fields, err := s.collections.Get(r.Context(), name)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, collectionToResponse(col, fields))
}

// DropCollection handles DELETE /api/v1/collections/{collection}.
func (s *Server) DropCollection(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "collection")

	if err := s.collections.Drop(r.Context(), name); err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HasCollection handles GET /api/v1/collections/{collection}/exists.
func (s *Server) HasCollection(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "collection")

	exists, err := s.collections.Has(r.Context(), name)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, hasCollectionResponse{Exists: exists})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{Status: string(report.Status), Checks: checks})
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

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
// The error message is passed through: the service layer already phrases its
// failures for the client (including the remapped "already exists" text).
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, err.Error())
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	for _, h := range s.errorHandlers {
		if h(w, err) {
			s.logger.Warn("request failed", zap.Error(err))
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
