package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/roamly/api/internal/database"
	"github.com/roamly/api/internal/model"
)

// TripRepository handles trip data access.
//
// Trips are stored as single SurrealDB documents with the checklist and
// expense arrays inlined. Replace writes the whole document back, which
// gives last-write-wins semantics for concurrent edits of the same trip.
type TripRepository struct {
	db database.Database
}

// NewTripRepository creates a new trip repository
func NewTripRepository(db database.Database) *TripRepository {
	return &TripRepository{db: db}
}

// Create persists a new trip and fills in its generated ID and timestamps
func (r *TripRepository) Create(ctx context.Context, trip *model.Trip) error {
	query := `
		CREATE trip CONTENT {
			owner: $owner,
			title: $title,
			destination: $destination,
			description: $description,
			image_url: $image_url,
			start_date: $start_date,
			end_date: $end_date,
			travelers: $travelers,
			budget: $budget,
			about: $about,
			plan: $plan,
			highlights: $highlights,
			inclusions: $inclusions,
			exclusions: $exclusions,
			things_to_carry: $things_to_carry,
			itinerary: $itinerary,
			checklist: $checklist,
			expenses: $expenses,
			created_on: time::now(),
			updated_on: time::now()
		}
	`

	result, err := r.db.QueryOne(ctx, query, tripVars(trip))
	if err != nil {
		return err
	}

	created, err := parseTripResult(result)
	if err != nil {
		return err
	}

	trip.ID = created.ID
	trip.CreatedOn = created.CreatedOn
	trip.UpdatedOn = created.UpdatedOn
	return nil
}

// GetByID retrieves a trip by ID. Returns (nil, nil) when the trip does
// not exist so callers can distinguish absence from storage failures.
func (r *TripRepository) GetByID(ctx context.Context, id string) (*model.Trip, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	trip, err := parseTripResult(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return trip, nil
}

// GetByOwner retrieves all trips owned by a user, newest first
func (r *TripRepository) GetByOwner(ctx context.Context, ownerID string) ([]*model.Trip, error) {
	query := `SELECT * FROM trip WHERE owner = $owner ORDER BY created_on DESC`
	vars := map[string]interface{}{"owner": ownerID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records, ok := extractQueryResults(result)
	if !ok {
		return []*model.Trip{}, nil
	}

	trips := make([]*model.Trip, 0, len(records))
	for _, record := range records {
		trip, err := parseTripResult(record)
		if err != nil {
			continue
		}
		trips = append(trips, trip)
	}
	return trips, nil
}

// Replace writes the whole trip document back under its existing ID.
// The stored record is overwritten field for field; timestamps on the
// passed trip are refreshed from the database response.
func (r *TripRepository) Replace(ctx context.Context, trip *model.Trip) error {
	query := `
		UPDATE type::record($id) CONTENT {
			owner: $owner,
			title: $title,
			destination: $destination,
			description: $description,
			image_url: $image_url,
			start_date: $start_date,
			end_date: $end_date,
			travelers: $travelers,
			budget: $budget,
			about: $about,
			plan: $plan,
			highlights: $highlights,
			inclusions: $inclusions,
			exclusions: $exclusions,
			things_to_carry: $things_to_carry,
			itinerary: $itinerary,
			checklist: $checklist,
			expenses: $expenses,
			created_on: $created_on,
			updated_on: time::now()
		} RETURN AFTER
	`

	vars := tripVars(trip)
	vars["id"] = trip.ID
	vars["created_on"] = trip.CreatedOn

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return err
	}

	updated, err := parseTripResult(result)
	if err != nil {
		return err
	}

	trip.UpdatedOn = updated.UpdatedOn
	return nil
}

// Delete removes a trip
func (r *TripRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE type::record($id)`
	vars := map[string]interface{}{"id": id}

	return r.db.Execute(ctx, query, vars)
}

// ImageURLs lists the image URLs referenced by any trip
func (r *TripRepository) ImageURLs(ctx context.Context) ([]string, error) {
	query := `SELECT image_url FROM trip WHERE image_url != ""`

	result, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query image urls: %w", err)
	}

	records, ok := extractQueryResults(result)
	if !ok {
		return []string{}, nil
	}

	urls := make([]string, 0, len(records))
	for _, record := range records {
		row, ok := record.(map[string]interface{})
		if !ok {
			continue
		}
		if u := getString(row, "image_url"); u != "" {
			urls = append(urls, u)
		}
	}
	return urls, nil
}

// tripVars builds the query variable map shared by Create and Replace
func tripVars(trip *model.Trip) map[string]interface{} {
	checklist := make([]interface{}, 0, len(trip.Checklist))
	for _, item := range trip.Checklist {
		checklist = append(checklist, map[string]interface{}{
			"id":       item.ID,
			"category": string(item.Category),
			"text":     item.Text,
			"done":     item.Done,
		})
	}

	expenses := make([]interface{}, 0, len(trip.Expenses))
	for _, e := range trip.Expenses {
		expenses = append(expenses, map[string]interface{}{
			"id":          e.ID,
			"category":    string(e.Category),
			"name":        e.Name,
			"amount":      e.Amount,
			"description": e.Description,
			"date":        e.Date,
		})
	}

	return map[string]interface{}{
		"owner":           trip.OwnerID,
		"title":           trip.Title,
		"destination":     trip.Destination,
		"description":     trip.Description,
		"image_url":       trip.ImageURL,
		"start_date":      trip.StartDate,
		"end_date":        trip.EndDate,
		"travelers":       trip.Travelers,
		"budget":          trip.Budget,
		"about":           trip.About,
		"plan":            trip.Plan,
		"highlights":      stringSliceVar(trip.Highlights),
		"inclusions":      stringSliceVar(trip.Inclusions),
		"exclusions":      stringSliceVar(trip.Exclusions),
		"things_to_carry": stringSliceVar(trip.ThingsToCarry),
		"itinerary":       stringSliceVar(trip.Itinerary),
		"checklist":       checklist,
		"expenses":        expenses,
	}
}

// stringSliceVar normalizes a nil slice to an empty array so the stored
// document always has the field
func stringSliceVar(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func parseTripResult(result interface{}) (*model.Trip, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	// Navigate through SurrealDB response structure
	if resp, ok := result.(map[string]interface{}); ok {
		if status, ok := resp["status"].(string); ok && status == "OK" {
			if resultData, ok := resp["result"].([]interface{}); ok {
				if len(resultData) == 0 {
					return nil, database.ErrNotFound
				}
				result = resultData[0]
			}
		}
	}

	// Handle array wrapper
	if arr, ok := result.([]interface{}); ok {
		if len(arr) == 0 {
			return nil, database.ErrNotFound
		}
		result = arr[0]
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	trip := &model.Trip{
		ID:            convertSurrealID(data["id"]),
		OwnerID:       getString(data, "owner"),
		Title:         getString(data, "title"),
		Destination:   getString(data, "destination"),
		Description:   getString(data, "description"),
		ImageURL:      getString(data, "image_url"),
		StartDate:     getString(data, "start_date"),
		EndDate:       getString(data, "end_date"),
		Travelers:     getInt(data, "travelers"),
		Budget:        getFloat(data, "budget"),
		About:         getString(data, "about"),
		Plan:          getString(data, "plan"),
		Highlights:    emptyIfNil(getStringSlice(data, "highlights")),
		Inclusions:    emptyIfNil(getStringSlice(data, "inclusions")),
		Exclusions:    emptyIfNil(getStringSlice(data, "exclusions")),
		ThingsToCarry: emptyIfNil(getStringSlice(data, "things_to_carry")),
		Itinerary:     emptyIfNil(getStringSlice(data, "itinerary")),
		Checklist:     parseChecklist(data),
		Expenses:      parseExpenses(data),
		CreatedOn:     getTime(data, "created_on"),
		UpdatedOn:     getTime(data, "updated_on"),
	}

	return trip, nil
}

func parseChecklist(data map[string]interface{}) []model.ChecklistItem {
	entries := getMapSlice(data, "checklist")
	items := make([]model.ChecklistItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, model.ChecklistItem{
			ID:       getString(entry, "id"),
			Category: model.ChecklistCategory(getString(entry, "category")),
			Text:     getString(entry, "text"),
			Done:     getBool(entry, "done"),
		})
	}
	return items
}

func parseExpenses(data map[string]interface{}) []model.Expense {
	entries := getMapSlice(data, "expenses")
	expenses := make([]model.Expense, 0, len(entries))
	for _, entry := range entries {
		expenses = append(expenses, model.Expense{
			ID:          getString(entry, "id"),
			Category:    model.ExpenseCategory(getString(entry, "category")),
			Name:        getString(entry, "name"),
			Amount:      getFloat(entry, "amount"),
			Description: getString(entry, "description"),
			Date:        getString(entry, "date"),
		})
	}
	return expenses
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
