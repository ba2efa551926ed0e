package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Authentication Errors =====
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrNameRequired       = errors.New("name is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong    = errors.New("password must be at most 128 characters")
	ErrInvalidEmail       = errors.New("invalid email format")
)

// ===== Trip Errors =====
var (
	ErrTripNotFound = errors.New("trip not found")
	ErrNotTripOwner = errors.New("not the owner of this trip")
)

// ===== Trip Item Errors =====
var (
	ErrChecklistItemNotFound = errors.New("checklist item not found")
	ErrExpenseNotFound       = errors.New("expense not found")
)

// ===== Upload Errors =====
var (
	ErrNoImage      = errors.New("no image provided")
	ErrInvalidImage = errors.New("invalid image data")
)
