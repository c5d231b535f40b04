// Package lifecycle defines the stages of a cogpn run. Implementations
// receive configuration at construction and live in internal packages.
package lifecycle

import "context"

// Inspector builds the place hierarchy from the reference list and
// reports on it.
type Inspector interface {
	// Inspect builds the hierarchy and prints its summary. Every name in
	// find is looked up and reported together with its ancestry.
	Inspect(ctx context.Context, find []string) error
}

// Trainer learns the association model from addresses labelled with
// postal codes and saves it.
type Trainer interface {
	// Train reads the address file at path, builds the model and writes
	// it to the configured model file.
	Train(ctx context.Context, path string) error
}

// Annotator resolves addresses to gazetteer places and writes the
// resolved and needs-review streams.
//
// Resolution of one address never fails. Only missing or unreadable
// inputs and unwritable outputs are errors.
type Annotator interface {
	// Annotate reads the address file at path and writes both output
	// streams.
	Annotate(ctx context.Context, path string) error
}
