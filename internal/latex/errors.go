// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package latex

import (
	"errors"
	"fmt"

	"github.com/pdiddy/mdtex/pkg/types"
)

// ErrUnsupported is wrapped by every UnsupportedError.
var ErrUnsupported = errors.New("unsupported construct")

// UnsupportedError reports the first event the transcoder has no LaTeX
// mapping for. Conversion stops at that event.
type UnsupportedError struct {
	Event types.Event
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported construct: %s", e.Event)
}

func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupported
}

func unsupported(ev types.Event) error {
	return &UnsupportedError{Event: ev}
}
