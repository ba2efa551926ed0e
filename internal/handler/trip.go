package handler

import (
	"errors"
	"net/http"

	"github.com/roamly/api/internal/middleware"
	"github.com/roamly/api/internal/model"
	"github.com/roamly/api/internal/service"
)

// TripHandler handles trip HTTP requests
type TripHandler struct {
	svc *service.TripService
}

// NewTripHandler creates a new trip handler
func NewTripHandler(svc *service.TripService) *TripHandler {
	return &TripHandler{svc: svc}
}

// List handles GET /v1/trips - list the caller's trips
func (h *TripHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	trips, err := h.svc.List(ctx, userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, trips)
}

// Create handles POST /v1/trips - create a new trip
func (h *TripHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req model.CreateTripRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	trip, err := h.svc.Create(ctx, userID, &req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, trip)
}

// Get handles GET /v1/trips/{tripId} - get trip details
func (h *TripHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	tripID := r.PathValue("tripId")
	if tripID == "" {
		WriteError(w, model.NewBadRequestError("trip ID required"))
		return
	}

	trip, err := h.svc.Get(ctx, userID, tripID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, trip)
}

// Update handles PATCH /v1/trips/{tripId} - partially update a trip
func (h *TripHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	tripID := r.PathValue("tripId")
	if tripID == "" {
		WriteError(w, model.NewBadRequestError("trip ID required"))
		return
	}

	var req model.UpdateTripRequest
	if err := DecodeJSONPartial(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	trip, err := h.svc.Update(ctx, userID, tripID, &req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, trip)
}

// Delete handles DELETE /v1/trips/{tripId} - delete a trip
func (h *TripHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	tripID := r.PathValue("tripId")
	if tripID == "" {
		WriteError(w, model.NewBadRequestError("trip ID required"))
		return
	}

	if err := h.svc.Delete(ctx, userID, tripID); err != nil {
		h.handleError(w, err)
		return
	}

	WriteNoContent(w)
}

// Summary handles GET /v1/trips/{tripId}/summary - derived trip figures
func (h *TripHandler) Summary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	tripID := r.PathValue("tripId")
	if tripID == "" {
		WriteError(w, model.NewBadRequestError("trip ID required"))
		return
	}

	summary, err := h.svc.Summary(ctx, userID, tripID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, summary)
}

// AddChecklistItem handles POST /v1/trips/{tripId}/checklist
func (h *TripHandler) AddChecklistItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	tripID := r.PathValue("tripId")
	if tripID == "" {
		WriteError(w, model.NewBadRequestError("trip ID required"))
		return
	}

	var req model.AddChecklistItemRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	trip, err := h.svc.AddChecklistItem(ctx, userID, tripID, &req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, trip)
}

// UpdateChecklistItem handles PATCH /v1/trips/{tripId}/checklist/{itemId}
func (h *TripHandler) UpdateChecklistItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	tripID := r.PathValue("tripId")
	itemID := r.PathValue("itemId")
	if tripID == "" || itemID == "" {
		WriteError(w, model.NewBadRequestError("trip ID and item ID required"))
		return
	}

	var req model.UpdateChecklistItemRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	trip, err := h.svc.UpdateChecklistItem(ctx, userID, tripID, itemID, &req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, trip)
}

// RemoveChecklistItem handles DELETE /v1/trips/{tripId}/checklist/{itemId}
func (h *TripHandler) RemoveChecklistItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	tripID := r.PathValue("tripId")
	itemID := r.PathValue("itemId")
	if tripID == "" || itemID == "" {
		WriteError(w, model.NewBadRequestError("trip ID and item ID required"))
		return
	}

	trip, err := h.svc.RemoveChecklistItem(ctx, userID, tripID, itemID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, trip)
}

// AddExpense handles POST /v1/trips/{tripId}/expenses
func (h *TripHandler) AddExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	tripID := r.PathValue("tripId")
	if tripID == "" {
		WriteError(w, model.NewBadRequestError("trip ID required"))
		return
	}

	var req model.AddExpenseRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	trip, err := h.svc.AddExpense(ctx, userID, tripID, &req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, trip)
}

// UpdateExpense handles PATCH /v1/trips/{tripId}/expenses/{expenseId}
func (h *TripHandler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	tripID := r.PathValue("tripId")
	expenseID := r.PathValue("expenseId")
	if tripID == "" || expenseID == "" {
		WriteError(w, model.NewBadRequestError("trip ID and expense ID required"))
		return
	}

	var req model.UpdateExpenseRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	trip, err := h.svc.UpdateExpense(ctx, userID, tripID, expenseID, &req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, trip)
}

// RemoveExpense handles DELETE /v1/trips/{tripId}/expenses/{expenseId}
func (h *TripHandler) RemoveExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	tripID := r.PathValue("tripId")
	expenseID := r.PathValue("expenseId")
	if tripID == "" || expenseID == "" {
		WriteError(w, model.NewBadRequestError("trip ID and expense ID required"))
		return
	}

	trip, err := h.svc.RemoveExpense(ctx, userID, tripID, expenseID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	WriteData(w, http.StatusOK, trip)
}

// handleError maps service errors to HTTP responses
func (h *TripHandler) handleError(w http.ResponseWriter, err error) {
	var problem *model.ProblemDetails
	if errors.As(err, &problem) {
		WriteError(w, problem)
		return
	}

	switch {
	case errors.Is(err, service.ErrTripNotFound):
		WriteError(w, model.NewNotFoundError("trip"))
	case errors.Is(err, service.ErrNotTripOwner):
		WriteError(w, model.NewForbiddenError("not authorized to access this trip"))
	case errors.Is(err, service.ErrChecklistItemNotFound):
		WriteError(w, model.NewNotFoundError("checklist item"))
	case errors.Is(err, service.ErrExpenseNotFound):
		WriteError(w, model.NewNotFoundError("expense"))
	default:
		WriteError(w, model.NewInternalError("trip operation failed"))
	}
}
