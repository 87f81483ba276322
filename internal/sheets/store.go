// Package sheets wraps the tabular record store behind a narrow append-only
// capability interface.
package sheets

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnavailable covers any failure to append; the pipeline reports the
// record as pending rather than retrying.
var ErrUnavailable = errors.New("record store unavailable")

// RecordStore appends one structured record to the tabular backend.
type RecordStore interface {
	Append(ctx context.Context, row []interface{}) error
}

// Disabled returns a RecordStore that always fails, used when credentials
// are not configured. Complaints still get a reference ID; the caller is
// told persistence is pending.
func Disabled() RecordStore {
	return disabledStore{}
}

type disabledStore struct{}

func (disabledStore) Append(context.Context, []interface{}) error {
	return fmt.Errorf("%w: credentials not configured", ErrUnavailable)
}
