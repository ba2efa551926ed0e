package model

import (
	"strings"
	"time"
)

// ChecklistCategory groups checklist items on the trip detail view
type ChecklistCategory string

const (
	ChecklistCategoryPacking   ChecklistCategory = "Packing"
	ChecklistCategoryDocuments ChecklistCategory = "Documents"
	ChecklistCategoryTasks     ChecklistCategory = "Tasks"
)

// ChecklistCategories lists all valid checklist categories in display order
var ChecklistCategories = []ChecklistCategory{
	ChecklistCategoryPacking,
	ChecklistCategoryDocuments,
	ChecklistCategoryTasks,
}

// IsValid reports whether the category is one of the known checklist categories
func (c ChecklistCategory) IsValid() bool {
	switch c {
	case ChecklistCategoryPacking, ChecklistCategoryDocuments, ChecklistCategoryTasks:
		return true
	}
	return false
}

// ExpenseCategory groups expenses for the budget breakdown
type ExpenseCategory string

const (
	ExpenseCategoryTransportation ExpenseCategory = "Transportation"
	ExpenseCategoryFood           ExpenseCategory = "Food"
	ExpenseCategoryAccommodation  ExpenseCategory = "Accommodation"
	ExpenseCategoryMisc           ExpenseCategory = "Misc"
)

// ExpenseCategories lists all valid expense categories in display order
var ExpenseCategories = []ExpenseCategory{
	ExpenseCategoryTransportation,
	ExpenseCategoryFood,
	ExpenseCategoryAccommodation,
	ExpenseCategoryMisc,
}

// IsValid reports whether the category is one of the known expense categories
func (c ExpenseCategory) IsValid() bool {
	switch c {
	case ExpenseCategoryTransportation, ExpenseCategoryFood, ExpenseCategoryAccommodation, ExpenseCategoryMisc:
		return true
	}
	return false
}

// ChecklistItem is a completable to-do entry attached to a trip.
// Items carry a generated stable ID so concurrent edits and deletions
// target the correct item even when the array is reordered.
type ChecklistItem struct {
	ID       string            `json:"id"`
	Category ChecklistCategory `json:"category"`
	Text     string            `json:"text"`
	Done     bool              `json:"done"`
}

// Expense is a categorized monetary entry attached to a trip
type Expense struct {
	ID          string          `json:"id"`
	Category    ExpenseCategory `json:"category"`
	Name        string          `json:"name"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description,omitempty"`
	Date        string          `json:"date"` // YYYY-MM-DD
}

// Trip is the aggregate root for one planned journey, owned by exactly
// one user. Sub-collections are stored inline in the trip document;
// checklist and expenses are fully replaced on updates that touch them.
type Trip struct {
	ID          string `json:"id"`
	OwnerID     string `json:"ownerId"`
	Title       string `json:"title"`
	Destination string `json:"destination"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	StartDate   string `json:"startDate"` // YYYY-MM-DD, empty when unset
	EndDate     string `json:"endDate"`   // YYYY-MM-DD, empty when unset
	Travelers   int    `json:"travelers"`
	Budget      float64 `json:"budget"`
	About       string  `json:"about"`
	Plan        string  `json:"plan"`

	Highlights    []string `json:"highlights"`
	Inclusions    []string `json:"inclusions"`
	Exclusions    []string `json:"exclusions"`
	ThingsToCarry []string `json:"thingsToCarry"`

	Itinerary []string        `json:"itinerary"`
	Checklist []ChecklistItem `json:"checklist"`
	Expenses  []Expense       `json:"expenses"`

	CreatedOn time.Time `json:"createdOn"`
	UpdatedOn time.Time `json:"updatedOn"`
}

// IsOwnedBy reports whether userID is the trip's owner
func (t *Trip) IsOwnedBy(userID string) bool {
	return t.OwnerID == userID
}

// ChecklistIndex returns the position of the checklist item with the
// given id, or -1 when absent.
func (t *Trip) ChecklistIndex(itemID string) int {
	for i, item := range t.Checklist {
		if item.ID == itemID {
			return i
		}
	}
	return -1
}

// ExpenseIndex returns the position of the expense with the given id,
// or -1 when absent.
func (t *Trip) ExpenseIndex(itemID string) int {
	for i, e := range t.Expenses {
		if e.ID == itemID {
			return i
		}
	}
	return -1
}

// Constraints
const (
	MaxTripTitleLength       = 120
	MaxTripDestinationLength = 120
	MaxTripDescLength        = 2000
	MaxChecklistTextLength   = 300
	MaxExpenseNameLength     = 120
	MaxExpenseDescLength     = 500
)

// DateLayout is the wire format for trip and expense dates
const DateLayout = "2006-01-02"

func validDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// CreateTripRequest represents a request to create a trip.
// Sub-collections are intentionally absent: new trips always start with
// empty itinerary, checklist and expenses.
type CreateTripRequest struct {
	Title         string   `json:"title"`
	Destination   string   `json:"destination"`
	Description   *string  `json:"description,omitempty"`
	ImageURL      *string  `json:"imageUrl,omitempty"`
	StartDate     *string  `json:"startDate,omitempty"`
	EndDate       *string  `json:"endDate,omitempty"`
	Travelers     *int     `json:"travelers,omitempty"`
	Budget        *float64 `json:"budget,omitempty"`
	About         *string  `json:"about,omitempty"`
	Plan          *string  `json:"plan,omitempty"`
	Highlights    []string `json:"highlights,omitempty"`
	Inclusions    []string `json:"inclusions,omitempty"`
	Exclusions    []string `json:"exclusions,omitempty"`
	ThingsToCarry []string `json:"thingsToCarry,omitempty"`
}

// Validate checks if the create request is valid
func (r *CreateTripRequest) Validate() []FieldError {
	var errors []FieldError

	if strings.TrimSpace(r.Title) == "" {
		errors = append(errors, FieldError{Field: "title", Message: "title is required"})
	} else if len(r.Title) > MaxTripTitleLength {
		errors = append(errors, FieldError{Field: "title", Message: "title must be 120 characters or less"})
	}
	if strings.TrimSpace(r.Destination) == "" {
		errors = append(errors, FieldError{Field: "destination", Message: "destination is required"})
	} else if len(r.Destination) > MaxTripDestinationLength {
		errors = append(errors, FieldError{Field: "destination", Message: "destination must be 120 characters or less"})
	}
	if r.Description != nil && len(*r.Description) > MaxTripDescLength {
		errors = append(errors, FieldError{Field: "description", Message: "description must be 2000 characters or less"})
	}
	if r.StartDate != nil && *r.StartDate != "" && !validDate(*r.StartDate) {
		errors = append(errors, FieldError{Field: "startDate", Message: "startDate must be YYYY-MM-DD"})
	}
	if r.EndDate != nil && *r.EndDate != "" && !validDate(*r.EndDate) {
		errors = append(errors, FieldError{Field: "endDate", Message: "endDate must be YYYY-MM-DD"})
	}
	if r.Travelers != nil && *r.Travelers < 1 {
		errors = append(errors, FieldError{Field: "travelers", Message: "travelers must be at least 1"})
	}
	if r.Budget != nil && *r.Budget < 0 {
		errors = append(errors, FieldError{Field: "budget", Message: "budget must not be negative"})
	}

	return errors
}

// UpdateTripRequest represents a partial update to a trip. Only fields
// present in the request are applied; checklist and expenses fully
// replace the stored sequence when present.
type UpdateTripRequest struct {
	Title         *string          `json:"title,omitempty"`
	Destination   *string          `json:"destination,omitempty"`
	Description   *string          `json:"description,omitempty"`
	ImageURL      *string          `json:"imageUrl,omitempty"`
	StartDate     *string          `json:"startDate,omitempty"`
	EndDate       *string          `json:"endDate,omitempty"`
	Travelers     *int             `json:"travelers,omitempty"`
	Budget        *float64         `json:"budget,omitempty"`
	About         *string          `json:"about,omitempty"`
	Plan          *string          `json:"plan,omitempty"`
	Highlights    *[]string        `json:"highlights,omitempty"`
	Inclusions    *[]string        `json:"inclusions,omitempty"`
	Exclusions    *[]string        `json:"exclusions,omitempty"`
	ThingsToCarry *[]string        `json:"thingsToCarry,omitempty"`
	Itinerary     *[]string        `json:"itinerary,omitempty"`
	Checklist     *[]ChecklistItem `json:"checklist,omitempty"`
	Expenses      *[]Expense       `json:"expenses,omitempty"`
}

// Validate checks if the update request is valid
func (r *UpdateTripRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Title != nil {
		if strings.TrimSpace(*r.Title) == "" {
			errors = append(errors, FieldError{Field: "title", Message: "title must not be empty"})
		} else if len(*r.Title) > MaxTripTitleLength {
			errors = append(errors, FieldError{Field: "title", Message: "title must be 120 characters or less"})
		}
	}
	if r.Destination != nil {
		if strings.TrimSpace(*r.Destination) == "" {
			errors = append(errors, FieldError{Field: "destination", Message: "destination must not be empty"})
		} else if len(*r.Destination) > MaxTripDestinationLength {
			errors = append(errors, FieldError{Field: "destination", Message: "destination must be 120 characters or less"})
		}
	}
	if r.Description != nil && len(*r.Description) > MaxTripDescLength {
		errors = append(errors, FieldError{Field: "description", Message: "description must be 2000 characters or less"})
	}
	if r.StartDate != nil && *r.StartDate != "" && !validDate(*r.StartDate) {
		errors = append(errors, FieldError{Field: "startDate", Message: "startDate must be YYYY-MM-DD"})
	}
	if r.EndDate != nil && *r.EndDate != "" && !validDate(*r.EndDate) {
		errors = append(errors, FieldError{Field: "endDate", Message: "endDate must be YYYY-MM-DD"})
	}
	if r.Travelers != nil && *r.Travelers < 1 {
		errors = append(errors, FieldError{Field: "travelers", Message: "travelers must be at least 1"})
	}
	if r.Budget != nil && *r.Budget < 0 {
		errors = append(errors, FieldError{Field: "budget", Message: "budget must not be negative"})
	}
	if r.Checklist != nil {
		for _, item := range *r.Checklist {
			errors = append(errors, validateChecklistFields(item.Category, item.Text)...)
		}
	}
	if r.Expenses != nil {
		for _, e := range *r.Expenses {
			errors = append(errors, validateExpenseFields(e.Category, e.Name, e.Amount, e.Date)...)
		}
	}

	return errors
}

// AddChecklistItemRequest adds one checklist item to a trip
type AddChecklistItemRequest struct {
	Category ChecklistCategory `json:"category"`
	Text     string            `json:"text"`
}

// Validate checks if the request is valid
func (r *AddChecklistItemRequest) Validate() []FieldError {
	return validateChecklistFields(r.Category, r.Text)
}

// UpdateChecklistItemRequest updates one checklist item by id
type UpdateChecklistItemRequest struct {
	Category *ChecklistCategory `json:"category,omitempty"`
	Text     *string            `json:"text,omitempty"`
	Done     *bool              `json:"done,omitempty"`
}

// Validate checks if the request is valid
func (r *UpdateChecklistItemRequest) Validate() []FieldError {
	var errors []FieldError
	if r.Category != nil && !r.Category.IsValid() {
		errors = append(errors, FieldError{Field: "category", Message: "category must be Packing, Documents or Tasks"})
	}
	if r.Text != nil {
		if strings.TrimSpace(*r.Text) == "" {
			errors = append(errors, FieldError{Field: "text", Message: "text must not be empty"})
		} else if len(*r.Text) > MaxChecklistTextLength {
			errors = append(errors, FieldError{Field: "text", Message: "text must be 300 characters or less"})
		}
	}
	return errors
}

// AddExpenseRequest adds one expense to a trip
type AddExpenseRequest struct {
	Category    ExpenseCategory `json:"category"`
	Name        string          `json:"name"`
	Amount      float64         `json:"amount"`
	Description *string         `json:"description,omitempty"`
	Date        *string         `json:"date,omitempty"` // defaults to today
}

// Validate checks if the request is valid
func (r *AddExpenseRequest) Validate() []FieldError {
	date := ""
	if r.Date != nil {
		date = *r.Date
	}
	errors := validateExpenseFields(r.Category, r.Name, r.Amount, date)
	if r.Description != nil && len(*r.Description) > MaxExpenseDescLength {
		errors = append(errors, FieldError{Field: "description", Message: "description must be 500 characters or less"})
	}
	return errors
}

// UpdateExpenseRequest updates one expense by id
type UpdateExpenseRequest struct {
	Category    *ExpenseCategory `json:"category,omitempty"`
	Name        *string          `json:"name,omitempty"`
	Amount      *float64         `json:"amount,omitempty"`
	Description *string          `json:"description,omitempty"`
	Date        *string          `json:"date,omitempty"`
}

// Validate checks if the request is valid
func (r *UpdateExpenseRequest) Validate() []FieldError {
	var errors []FieldError
	if r.Category != nil && !r.Category.IsValid() {
		errors = append(errors, FieldError{Field: "category", Message: "category must be Transportation, Food, Accommodation or Misc"})
	}
	if r.Name != nil {
		if strings.TrimSpace(*r.Name) == "" {
			errors = append(errors, FieldError{Field: "name", Message: "name must not be empty"})
		} else if len(*r.Name) > MaxExpenseNameLength {
			errors = append(errors, FieldError{Field: "name", Message: "name must be 120 characters or less"})
		}
	}
	if r.Amount != nil && *r.Amount < 0 {
		errors = append(errors, FieldError{Field: "amount", Message: "amount must not be negative"})
	}
	if r.Description != nil && len(*r.Description) > MaxExpenseDescLength {
		errors = append(errors, FieldError{Field: "description", Message: "description must be 500 characters or less"})
	}
	if r.Date != nil && *r.Date != "" && !validDate(*r.Date) {
		errors = append(errors, FieldError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	return errors
}

func validateChecklistFields(category ChecklistCategory, text string) []FieldError {
	var errors []FieldError
	if !category.IsValid() {
		errors = append(errors, FieldError{Field: "category", Message: "category must be Packing, Documents or Tasks"})
	}
	if strings.TrimSpace(text) == "" {
		errors = append(errors, FieldError{Field: "text", Message: "text is required"})
	} else if len(text) > MaxChecklistTextLength {
		errors = append(errors, FieldError{Field: "text", Message: "text must be 300 characters or less"})
	}
	return errors
}

func validateExpenseFields(category ExpenseCategory, name string, amount float64, date string) []FieldError {
	var errors []FieldError
	if !category.IsValid() {
		errors = append(errors, FieldError{Field: "category", Message: "category must be Transportation, Food, Accommodation or Misc"})
	}
	if strings.TrimSpace(name) == "" {
		errors = append(errors, FieldError{Field: "name", Message: "name is required"})
	} else if len(name) > MaxExpenseNameLength {
		errors = append(errors, FieldError{Field: "name", Message: "name must be 120 characters or less"})
	}
	if amount < 0 {
		errors = append(errors, FieldError{Field: "amount", Message: "amount must not be negative"})
	}
	if date != "" && !validDate(date) {
		errors = append(errors, FieldError{Field: "date", Message: "date must be YYYY-MM-DD"})
	}
	return errors
}
