// Package player provides persistence for the player profile and the
// snooze-penalty ledger. The ledger is an owned field behind this
// interface; nothing else in the engine touches its storage key.
package player

//go:generate mockgen -destination=mock/mock_repository.go -package=playermock github.com/statmaxer/statmaxer/internal/repositories/player Repository

import (
	"context"
)

// Repository defines the interface for player state persistence
type Repository interface {
	// GetName retrieves the display name, defaulting when unset
	GetName(ctx context.Context, input GetNameInput) (*GetNameOutput, error)

	// SetName stores the display name
	// Returns errors.InvalidArgument for an empty name
	SetName(ctx context.Context, input SetNameInput) (*SetNameOutput, error)

	// GetPenalty retrieves the accumulated snooze penalty, zero when unset
	GetPenalty(ctx context.Context, input GetPenaltyInput) (*GetPenaltyOutput, error)

	// AddPenalty increments the snooze penalty and returns the new total
	// Returns errors.InvalidArgument for non-positive amounts
	AddPenalty(ctx context.Context, input AddPenaltyInput) (*AddPenaltyOutput, error)

	// Reset clears the display name and the penalty ledger
	Reset(ctx context.Context, input ResetInput) (*ResetOutput, error)
}

// GetNameInput defines the input for reading the display name
type GetNameInput struct{}

// GetNameOutput defines the output for reading the display name
type GetNameOutput struct {
	Name string
}

// SetNameInput defines the input for storing the display name
type SetNameInput struct {
	Name string
}

// SetNameOutput defines the output for storing the display name
type SetNameOutput struct{}

// GetPenaltyInput defines the input for reading the penalty ledger
type GetPenaltyInput struct{}

// GetPenaltyOutput defines the output for reading the penalty ledger
type GetPenaltyOutput struct {
	Penalty int
}

// AddPenaltyInput defines the input for incrementing the penalty ledger
type AddPenaltyInput struct {
	Amount int
}

// AddPenaltyOutput defines the output for incrementing the penalty ledger
type AddPenaltyOutput struct {
	Penalty int
}

// ResetInput defines the input for clearing player state
type ResetInput struct{}

// ResetOutput defines the output for clearing player state
type ResetOutput struct{}
