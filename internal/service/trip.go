package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/roamly/api/internal/model"
)

// TripRepository defines the interface for trip storage
type TripRepository interface {
	Create(ctx context.Context, trip *model.Trip) error
	GetByID(ctx context.Context, id string) (*model.Trip, error)
	GetByOwner(ctx context.Context, ownerID string) ([]*model.Trip, error)
	Replace(ctx context.Context, trip *model.Trip) error
	Delete(ctx context.Context, id string) error
}

// TripService handles trip business logic.
//
// Every operation that touches an existing trip loads it, checks that
// the caller is the owner, applies the change in memory and writes the
// whole document back. Concurrent writers of the same trip resolve as
// last write wins.
type TripService struct {
	repo TripRepository
}

// NewTripService creates a new trip service
func NewTripService(repo TripRepository) *TripService {
	return &TripService{repo: repo}
}

// List retrieves all trips owned by the user, newest first
func (s *TripService) List(ctx context.Context, userID string) ([]*model.Trip, error) {
	trips, err := s.repo.GetByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	return trips, nil
}

// Create creates a new trip owned by the user. Unset optional fields
// default to empty strings, one traveler and a zero budget; the trip
// always starts with empty itinerary, checklist and expenses, whatever
// the client sent.
func (s *TripService) Create(ctx context.Context, userID string, req *model.CreateTripRequest) (*model.Trip, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	trip := &model.Trip{
		OwnerID:       userID,
		Title:         req.Title,
		Destination:   req.Destination,
		Travelers:     1,
		Highlights:    emptyIfNilSlice(req.Highlights),
		Inclusions:    emptyIfNilSlice(req.Inclusions),
		Exclusions:    emptyIfNilSlice(req.Exclusions),
		ThingsToCarry: emptyIfNilSlice(req.ThingsToCarry),
		Itinerary:     []string{},
		Checklist:     []model.ChecklistItem{},
		Expenses:      []model.Expense{},
	}

	if req.Description != nil {
		trip.Description = *req.Description
	}
	if req.ImageURL != nil {
		trip.ImageURL = *req.ImageURL
	}
	if req.StartDate != nil {
		trip.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		trip.EndDate = *req.EndDate
	}
	if req.Travelers != nil {
		trip.Travelers = *req.Travelers
	}
	if req.Budget != nil {
		trip.Budget = *req.Budget
	}
	if req.About != nil {
		trip.About = *req.About
	}
	if req.Plan != nil {
		trip.Plan = *req.Plan
	}

	if err := s.repo.Create(ctx, trip); err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}

	return trip, nil
}

// Get retrieves a single trip. The caller must be the owner.
func (s *TripService) Get(ctx context.Context, userID, tripID string) (*model.Trip, error) {
	return s.getOwned(ctx, userID, tripID)
}

// Update applies a partial update to a trip. Fields absent from the
// request keep their stored values. When the checklist or expenses
// arrays are present they replace the stored arrays wholesale; incoming
// items without IDs get fresh ones.
func (s *TripService) Update(ctx context.Context, userID, tripID string, req *model.UpdateTripRequest) (*model.Trip, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	trip, err := s.getOwned(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		trip.Title = *req.Title
	}
	if req.Destination != nil {
		trip.Destination = *req.Destination
	}
	if req.Description != nil {
		trip.Description = *req.Description
	}
	if req.ImageURL != nil {
		trip.ImageURL = *req.ImageURL
	}
	if req.StartDate != nil {
		trip.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		trip.EndDate = *req.EndDate
	}
	if req.Travelers != nil {
		trip.Travelers = *req.Travelers
	}
	if req.Budget != nil {
		trip.Budget = *req.Budget
	}
	if req.About != nil {
		trip.About = *req.About
	}
	if req.Plan != nil {
		trip.Plan = *req.Plan
	}
	if req.Highlights != nil {
		trip.Highlights = emptyIfNilSlice(*req.Highlights)
	}
	if req.Inclusions != nil {
		trip.Inclusions = emptyIfNilSlice(*req.Inclusions)
	}
	if req.Exclusions != nil {
		trip.Exclusions = emptyIfNilSlice(*req.Exclusions)
	}
	if req.ThingsToCarry != nil {
		trip.ThingsToCarry = emptyIfNilSlice(*req.ThingsToCarry)
	}
	if req.Itinerary != nil {
		trip.Itinerary = emptyIfNilSlice(*req.Itinerary)
	}
	if req.Checklist != nil {
		items := make([]model.ChecklistItem, len(*req.Checklist))
		copy(items, *req.Checklist)
		for i := range items {
			if items[i].ID == "" {
				items[i].ID = uuid.NewString()
			}
		}
		trip.Checklist = items
	}
	if req.Expenses != nil {
		expenses := make([]model.Expense, len(*req.Expenses))
		copy(expenses, *req.Expenses)
		for i := range expenses {
			if expenses[i].ID == "" {
				expenses[i].ID = uuid.NewString()
			}
		}
		trip.Expenses = expenses
	}

	if err := s.repo.Replace(ctx, trip); err != nil {
		return nil, fmt.Errorf("failed to update trip: %w", err)
	}

	return trip, nil
}

// Delete removes a trip. The caller must be the owner.
func (s *TripService) Delete(ctx context.Context, userID, tripID string) error {
	if _, err := s.getOwned(ctx, userID, tripID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, tripID); err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	return nil
}

// Summary computes the derived budget and checklist figures for a trip
func (s *TripService) Summary(ctx context.Context, userID, tripID string) (*model.TripSummary, error) {
	trip, err := s.getOwned(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}
	summary := model.Summarize(trip)
	return &summary, nil
}

// AddChecklistItem appends one checklist item and returns the updated trip
func (s *TripService) AddChecklistItem(ctx context.Context, userID, tripID string, req *model.AddChecklistItemRequest) (*model.Trip, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	trip, err := s.getOwned(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	trip.Checklist = append(trip.Checklist, model.ChecklistItem{
		ID:       uuid.NewString(),
		Category: req.Category,
		Text:     req.Text,
		Done:     false,
	})

	if err := s.repo.Replace(ctx, trip); err != nil {
		return nil, fmt.Errorf("failed to add checklist item: %w", err)
	}
	return trip, nil
}

// UpdateChecklistItem updates one checklist item by ID and returns the updated trip
func (s *TripService) UpdateChecklistItem(ctx context.Context, userID, tripID, itemID string, req *model.UpdateChecklistItemRequest) (*model.Trip, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	trip, err := s.getOwned(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	idx := trip.ChecklistIndex(itemID)
	if idx < 0 {
		return nil, ErrChecklistItemNotFound
	}

	item := &trip.Checklist[idx]
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Text != nil {
		item.Text = *req.Text
	}
	if req.Done != nil {
		item.Done = *req.Done
	}

	if err := s.repo.Replace(ctx, trip); err != nil {
		return nil, fmt.Errorf("failed to update checklist item: %w", err)
	}
	return trip, nil
}

// RemoveChecklistItem deletes one checklist item by ID and returns the updated trip
func (s *TripService) RemoveChecklistItem(ctx context.Context, userID, tripID, itemID string) (*model.Trip, error) {
	trip, err := s.getOwned(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	idx := trip.ChecklistIndex(itemID)
	if idx < 0 {
		return nil, ErrChecklistItemNotFound
	}

	trip.Checklist = append(trip.Checklist[:idx], trip.Checklist[idx+1:]...)

	if err := s.repo.Replace(ctx, trip); err != nil {
		return nil, fmt.Errorf("failed to remove checklist item: %w", err)
	}
	return trip, nil
}

// AddExpense appends one expense and returns the updated trip.
// The date defaults to today when absent.
func (s *TripService) AddExpense(ctx context.Context, userID, tripID string, req *model.AddExpenseRequest) (*model.Trip, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	trip, err := s.getOwned(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	expense := model.Expense{
		ID:       uuid.NewString(),
		Category: req.Category,
		Name:     req.Name,
		Amount:   req.Amount,
		Date:     time.Now().Format(model.DateLayout),
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.Date != nil && *req.Date != "" {
		expense.Date = *req.Date
	}

	trip.Expenses = append(trip.Expenses, expense)

	if err := s.repo.Replace(ctx, trip); err != nil {
		return nil, fmt.Errorf("failed to add expense: %w", err)
	}
	return trip, nil
}

// UpdateExpense updates one expense by ID and returns the updated trip
func (s *TripService) UpdateExpense(ctx context.Context, userID, tripID, expenseID string, req *model.UpdateExpenseRequest) (*model.Trip, error) {
	if errs := req.Validate(); len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	trip, err := s.getOwned(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	idx := trip.ExpenseIndex(expenseID)
	if idx < 0 {
		return nil, ErrExpenseNotFound
	}

	expense := &trip.Expenses[idx]
	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.Name != nil {
		expense.Name = *req.Name
	}
	if req.Amount != nil {
		expense.Amount = *req.Amount
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.Date != nil {
		expense.Date = *req.Date
	}

	if err := s.repo.Replace(ctx, trip); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}
	return trip, nil
}

// RemoveExpense deletes one expense by ID and returns the updated trip
func (s *TripService) RemoveExpense(ctx context.Context, userID, tripID, expenseID string) (*model.Trip, error) {
	trip, err := s.getOwned(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	idx := trip.ExpenseIndex(expenseID)
	if idx < 0 {
		return nil, ErrExpenseNotFound
	}

	trip.Expenses = append(trip.Expenses[:idx], trip.Expenses[idx+1:]...)

	if err := s.repo.Replace(ctx, trip); err != nil {
		return nil, fmt.Errorf("failed to remove expense: %w", err)
	}
	return trip, nil
}

// getOwned loads a trip and verifies the caller owns it
func (s *TripService) getOwned(ctx context.Context, userID, tripID string) (*model.Trip, error) {
	trip, err := s.repo.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	if trip == nil {
		return nil, ErrTripNotFound
	}
	if !trip.IsOwnedBy(userID) {
		return nil, ErrNotTripOwner
	}
	return trip, nil
}

func emptyIfNilSlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
