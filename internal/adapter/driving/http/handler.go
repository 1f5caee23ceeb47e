// Package httphandler is the HTTP driving adapter that serves the REST API.
package httphandler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dockhand/dockhand/internal/domain/model"
)

// CredentialManager is the slice of the credential service the HTTP layer
// uses for first-time setup.
type CredentialManager interface {
	CreateIfAbsent(ctx context.Context, username, password string) (bool, error)
}

// TokenIssuer is the slice of the token authority that mints sessions.
// An empty token with a nil error means the credentials were wrong.
type TokenIssuer interface {
	Issue(ctx context.Context, username, password string) (string, error)
}

// WorkloadManager exposes the container and image operations served by the
// protected routes.
type WorkloadManager interface {
	Ping(ctx context.Context) error
	Info(ctx context.Context) (*model.SystemInfo, error)
	ListContainers(ctx context.Context) ([]model.Container, error)
	StartContainer(ctx context.Context, id string) error
	StopContainer(ctx context.Context, id string) error
	DeleteContainer(ctx context.Context, id string) error
	ListImages(ctx context.Context) ([]model.Image, error)
	DeleteImage(ctx context.Context, id string) error
}

// StoreHealth reports persistence reachability for the health endpoint.
type StoreHealth interface {
	Health(ctx context.Context) error
}

// Handler aggregates the services behind the REST API.
type Handler struct {
	credentials CredentialManager
	issuer      TokenIssuer
	workloads   WorkloadManager
	store       StoreHealth
	logger      *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(
	credentials CredentialManager,
	issuer TokenIssuer,
	workloads WorkloadManager,
	store StoreHealth,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		credentials: credentials,
		issuer:      issuer,
		workloads:   workloads,
		store:       store,
		logger:      logger,
	}
}

// NewServeMux creates an http.Handler with all routes registered. The auth
// routes and health check are public; everything under /api/v1 except
// health sits behind the bearer-token gate. The full chain is
// request-id -> logging -> recovery -> mux.
func NewServeMux(h *Handler, validator TokenValidator, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/setup", h.Setup)
	mux.HandleFunc("POST /auth/token", h.IssueToken)
	mux.HandleFunc("GET /api/v1/health", h.Health)

	protect := func(hf http.HandlerFunc) http.Handler {
		return requireAuth(validator, logger, hf)
	}

	mux.Handle("GET /api/v1/system/info", protect(h.SystemInfo))
	mux.Handle("GET /api/v1/containers", protect(h.ListContainers))
	mux.Handle("POST /api/v1/containers/{id}/start", protect(h.StartContainer))
	mux.Handle("POST /api/v1/containers/{id}/stop", protect(h.StopContainer))
	mux.Handle("DELETE /api/v1/containers/{id}", protect(h.DeleteContainer))
	mux.Handle("GET /api/v1/images", protect(h.ListImages))
	mux.Handle("DELETE /api/v1/images/{id}", protect(h.DeleteImage))

	// Recovery innermost so panics are caught before logging.
	wrapped := recoveryMiddleware(logger, mux)
	wrapped = loggingMiddleware(logger, wrapped)
	wrapped = requestIDMiddleware(wrapped)

	return wrapped
}

// Setup performs first-time creation of the administrator credential.
// Responds 409 when a credential already exists; the existing record is
// never touched in that case.
func (h *Handler) Setup(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	created, err := h.credentials.CreateIfAbsent(r.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.Error("credential setup failed", "error", err, "request_id", requestIDFrom(r.Context()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if !created {
		writeError(w, http.StatusConflict, "administrator credential already exists")
		return
	}

	writeJSON(w, http.StatusOK, SetupResponse{Status: "created"})
}

// IssueToken exchanges valid credentials for a fresh bearer token,
// invalidating any previously issued token. The 401 message is deliberately
// generic: it must not reveal whether the username or the password was wrong.
func (h *Handler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.issuer.Issue(r.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.Error("token issuance failed", "error", err, "request_id", requestIDFrom(r.Context()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if token == "" {
		writeError(w, http.StatusUnauthorized, "invalid username or password")
		return
	}

	writeJSON(w, http.StatusOK, TokenResponse{Token: token})
}

// Health reports service status along with store and daemon reachability.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC().Format(time.RFC3339)

	if err := h.store.Health(r.Context()); err != nil {
		h.logger.Error("store health failed", "error", err, "request_id", requestIDFrom(r.Context()))
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "degraded", Time: now})
		return
	}
	if err := h.workloads.Ping(r.Context()); err != nil {
		h.logger.Error("daemon health failed", "error", err, "request_id", requestIDFrom(r.Context()))
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "degraded", Time: now})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{Status: "online", Time: now})
}

// SystemInfo returns the condensed daemon state.
func (h *Handler) SystemInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.workloads.Info(r.Context())
	if err != nil {
		h.logger.Error("failed to get system info", "error", err, "request_id", requestIDFrom(r.Context()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toSystemInfoResponse(*info))
}

// ListContainers returns summaries of all containers.
func (h *Handler) ListContainers(w http.ResponseWriter, r *http.Request) {
	containers, err := h.workloads.ListContainers(r.Context())
	if err != nil {
		h.logger.Error("failed to list containers", "error", err, "request_id", requestIDFrom(r.Context()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := make([]ContainerResponse, 0, len(containers))
	for _, c := range containers {
		resp = append(resp, toContainerResponse(c))
	}

	writeJSON(w, http.StatusOK, resp)
}

// StartContainer starts a container by id.
func (h *Handler) StartContainer(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.workloads.StartContainer(r.Context(), id); err != nil {
		h.writeWorkloadError(w, r, "start container", id, err)
		return
	}

	writeJSON(w, http.StatusOK, StatusResponse{Status: "started", ID: id})
}

// StopContainer stops a container by id.
func (h *Handler) StopContainer(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.workloads.StopContainer(r.Context(), id); err != nil {
		h.writeWorkloadError(w, r, "stop container", id, err)
		return
	}

	writeJSON(w, http.StatusOK, StatusResponse{Status: "stopped", ID: id})
}

// DeleteContainer removes a container by id. Running containers respond 409.
func (h *Handler) DeleteContainer(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.workloads.DeleteContainer(r.Context(), id); err != nil {
		h.writeWorkloadError(w, r, "delete container", id, err)
		return
	}

	writeJSON(w, http.StatusOK, StatusResponse{Status: "deleted", ID: id})
}

// ListImages returns summaries of all stored images.
func (h *Handler) ListImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.workloads.ListImages(r.Context())
	if err != nil {
		h.logger.Error("failed to list images", "error", err, "request_id", requestIDFrom(r.Context()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := make([]ImageResponse, 0, len(images))
	for _, img := range images {
		resp = append(resp, toImageResponse(img))
	}

	writeJSON(w, http.StatusOK, resp)
}

// DeleteImage removes an image by id. Images in use respond 409.
func (h *Handler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.workloads.DeleteImage(r.Context(), id); err != nil {
		h.writeWorkloadError(w, r, "delete image", id, err)
		return
	}

	writeJSON(w, http.StatusOK, StatusResponse{Status: "deleted", ID: id})
}

// writeWorkloadError maps domain sentinels onto status codes: not found ->
// 404, in use -> 409, anything else -> 500.
func (h *Handler) writeWorkloadError(w http.ResponseWriter, r *http.Request, op, id string, err error) {
	switch {
	case errors.Is(err, model.ErrWorkloadNotFound), errors.Is(err, model.ErrImageNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrWorkloadInUse), errors.Is(err, model.ErrImageInUse):
		writeError(w, http.StatusConflict, err.Error())
	default:
		h.logger.Error("workload operation failed",
			"op", op,
			"id", id,
			"error", err,
			"request_id", requestIDFrom(r.Context()),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
