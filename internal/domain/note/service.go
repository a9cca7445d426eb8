package note

import (
	"context"
	"fmt"
)

// Service is the durable store of Notes.
//
// Every mutation is visible to subsequent reads from any process talking to the same
// backend; nothing is cached in-process.
type Service interface {

	// Create persists a NewNote. The store assigns the Id and both timestamps.
	//
	// Returns InvalidNote if the title or content is blank
	Create(ctx context.Context, newNote *NewNote) (*Note, error)

	// List returns a page of Notes sorted by Id ascending.
	//
	// A page past the end is an empty slice, not an error
	List(ctx context.Context, page Page) ([]Note, error)

	// Get retrieves a single Note
	//
	// Errors with NotFound if there is no such Note
	Get(ctx context.Context, id Id) (*Note, error)

	// Patch replaces only the fields present in the patch and refreshes UpdatedAt.
	//
	// Errors with NotFound if there is no such Note
	Patch(ctx context.Context, id Id, patch *NotePatch) (*Note, error)

	// Delete hard-deletes a Note.
	//
	// Errors with NotFound if there is no such Note, including when it was already deleted
	Delete(ctx context.Context, id Id) error

	// Ping checks that the backend can be used
	Ping(ctx context.Context) error
}

// <-- Domain Errors

// NotFound is returned when there is no Note with the given Id
type NotFound struct {
	ID Id
}

func (e NotFound) Error() string {
	return fmt.Sprintf("Could not find note [%v]", e.ID)
}

func (e NotFound) Id() Id {
	return e.ID
}

// InvalidNote is returned when the data handed to the store breaks a Note invariant
type InvalidNote struct {
	Reason string
}

func (e InvalidNote) Error() string {
	return fmt.Sprintf("Invalid note: %s", e.Reason)
}

// StoreUnavailable wraps any failure coming from the backend: lost connections,
// an exhausted pool, constraint violations.
//
// Error() deliberately leaves out the Cause so it can be shown to clients as is.
type StoreUnavailable struct {
	Op    string
	Cause error
}

func (e StoreUnavailable) Error() string {
	return fmt.Sprintf("Note store unavailable during [%s]", e.Op)
}

func (e StoreUnavailable) Unwrap() error {
	return e.Cause
}

//     Errors -->
