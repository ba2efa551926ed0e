// Package fixtures provides test data factories for e2e testing.
//
// Each factory method creates entities with sensible defaults while
// allowing customization via option functions. Factories insert through
// the production repositories and return fully populated models.
//
// Usage:
//
//	f := fixtures.New(tdb.DB)
//	user := f.CreateUser(t)
//	trip := f.CreateTrip(t, user)
package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/roamly/api/internal/database"
	"github.com/roamly/api/internal/model"
	"github.com/roamly/api/internal/repository"
)

// Factory creates test entities in the database
type Factory struct {
	users *repository.UserRepository
	trips *repository.TripRepository
}

// New creates a new fixture factory
func New(db database.Database) *Factory {
	return &Factory{
		users: repository.NewUserRepository(db),
		trips: repository.NewTripRepository(db),
	}
}

// randomID generates a random hex ID
func randomID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// ============================================================================
// User Fixtures
// ============================================================================

// UserOpts customizes user creation
type UserOpts struct {
	Email    string
	Name     string
	Password string
}

// WithEmail sets the user email
func WithEmail(email string) func(*UserOpts) {
	return func(o *UserOpts) { o.Email = email }
}

// WithPassword sets the user password
func WithPassword(password string) func(*UserOpts) {
	return func(o *UserOpts) { o.Password = password }
}

// CreateUser creates a user with optional customizations
func (f *Factory) CreateUser(t *testing.T, opts ...func(*UserOpts)) *model.User {
	t.Helper()

	o := &UserOpts{
		Email:    fmt.Sprintf("user_%s@test.local", randomID()),
		Name:     fmt.Sprintf("User %s", randomID()),
		Password: "testpass123",
	}
	for _, fn := range opts {
		fn(o)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(o.Password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("fixtures: failed to hash password: %v", err)
	}

	user := &model.User{
		Email: o.Email,
		Name:  o.Name,
		Hash:  string(hash),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := f.users.Create(ctx, user); err != nil {
		t.Fatalf("fixtures: failed to create user: %v", err)
	}
	return user
}

// ============================================================================
// Trip Fixtures
// ============================================================================

// TripOpts customizes trip creation
type TripOpts struct {
	Title       string
	Destination string
	Budget      float64
	Travelers   int
	StartDate   string
	EndDate     string
	Checklist   []model.ChecklistItem
	Expenses    []model.Expense
}

// WithTitle sets the trip title
func WithTitle(title string) func(*TripOpts) {
	return func(o *TripOpts) { o.Title = title }
}

// WithBudget sets the trip budget
func WithBudget(budget float64) func(*TripOpts) {
	return func(o *TripOpts) { o.Budget = budget }
}

// WithDates sets the trip start and end dates
func WithDates(start, end string) func(*TripOpts) {
	return func(o *TripOpts) {
		o.StartDate = start
		o.EndDate = end
	}
}

// WithChecklist sets the trip checklist
func WithChecklist(items ...model.ChecklistItem) func(*TripOpts) {
	return func(o *TripOpts) { o.Checklist = items }
}

// WithExpenses sets the trip expenses
func WithExpenses(expenses ...model.Expense) func(*TripOpts) {
	return func(o *TripOpts) { o.Expenses = expenses }
}

// CreateTrip creates a trip owned by the given user
func (f *Factory) CreateTrip(t *testing.T, owner *model.User, opts ...func(*TripOpts)) *model.Trip {
	t.Helper()

	o := &TripOpts{
		Title:       fmt.Sprintf("Trip %s", randomID()),
		Destination: "Lisbon, Portugal",
		Budget:      1000,
		Travelers:   1,
	}
	for _, fn := range opts {
		fn(o)
	}

	trip := &model.Trip{
		OwnerID:       owner.ID,
		Title:         o.Title,
		Destination:   o.Destination,
		Budget:        o.Budget,
		Travelers:     o.Travelers,
		StartDate:     o.StartDate,
		EndDate:       o.EndDate,
		Highlights:    []string{},
		Inclusions:    []string{},
		Exclusions:    []string{},
		ThingsToCarry: []string{},
		Itinerary:     []string{},
		Checklist:     o.Checklist,
		Expenses:      o.Expenses,
	}
	if trip.Checklist == nil {
		trip.Checklist = []model.ChecklistItem{}
	}
	if trip.Expenses == nil {
		trip.Expenses = []model.Expense{}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := f.trips.Create(ctx, trip); err != nil {
		t.Fatalf("fixtures: failed to create trip: %v", err)
	}
	return trip
}
