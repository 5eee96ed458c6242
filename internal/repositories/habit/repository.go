// Package habit provides the interface for habit persistence
package habit

//go:generate mockgen -destination=mock/mock_repository.go -package=habitmock github.com/statmaxer/statmaxer/internal/repositories/habit Repository

import (
	"context"

	"github.com/statmaxer/statmaxer/internal/entities"
)

// Repository defines the interface for habit persistence
type Repository interface {
	// Create creates a new habit
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a habit with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a habit by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the habit doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing habit's stored snapshot
	// Returns errors.NotFound if the habit doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete deletes a habit by ID
	// Returns errors.NotFound if the habit doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List retrieves all habits in insertion order
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// DeleteAll removes every habit and the index
	// Returns errors.Internal for storage failures
	DeleteAll(ctx context.Context, input DeleteAllInput) (*DeleteAllOutput, error)
}

// CreateInput defines the input for creating a habit
type CreateInput struct {
	Habit *entities.Habit
}

// CreateOutput defines the output for creating a habit
type CreateOutput struct {
	Habit *entities.Habit
}

// GetInput defines the input for getting a habit
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a habit
type GetOutput struct {
	Habit *entities.Habit
}

// UpdateInput defines the input for updating a habit
type UpdateInput struct {
	Habit *entities.Habit
}

// UpdateOutput defines the output for updating a habit
type UpdateOutput struct {
	Habit *entities.Habit
}

// DeleteInput defines the input for deleting a habit
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a habit
type DeleteOutput struct{}

// ListInput defines the input for listing habits
type ListInput struct{}

// ListOutput defines the output for listing habits
type ListOutput struct {
	Habits []*entities.Habit
}

// DeleteAllInput defines the input for clearing the collection
type DeleteAllInput struct{}

// DeleteAllOutput defines the output for clearing the collection
type DeleteAllOutput struct {
	Deleted int
}
