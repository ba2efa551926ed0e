package handler

import (
	"net/http"

	"github.com/roamly/api/internal/middleware"
	"github.com/roamly/api/internal/model"
	"github.com/roamly/api/internal/service"
)

// UploadHandler handles image upload requests
type UploadHandler struct {
	svc *service.UploadService
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(svc *service.UploadService) *UploadHandler {
	return &UploadHandler{svc: svc}
}

// UploadRequest carries a base64 data URL in the request body
type UploadRequest struct {
	Image string `json:"image"`
}

// Upload handles POST /v1/uploads - store an image and return its URL
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req UploadRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	result, err := h.svc.UploadImage(r.Context(), req.Image)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, result)
}
