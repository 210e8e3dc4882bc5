package datastores

import (
	"context"
	"errors"

	"github.com/oaiiae/address-book/contacts"
)

type AddStatus int

const (
	AddCreated AddStatus = iota + 1
	AddMerged
	AddDuplicatePhone
	AddUnchanged
)

// ContactsStore holds records keyed by name in insertion order.
type ContactsStore interface {
	// Add inserts a record under a new name. For a known name only the first
	// phone of r is merged into the stored record, other phones are dropped.
	Add(ctx context.Context, r *contacts.Record) (AddStatus, error)
	Get(ctx context.Context, name string) (*contacts.Record, error)
	List(ctx context.Context) ([]*contacts.Record, error)
	Delete(ctx context.Context, name string) error
	// Save persists the current state.
	Save(ctx context.Context) error
}

var (
	ErrContactNotFound = errors.New("store: contact not found")
	ErrStorageCorrupt  = errors.New("store: storage corrupt")
)
