package exsite

import (
	"errors"
	"fmt"

	"github.com/ukaji3/exsite-go/pkg/exsite/discovery"
	"github.com/ukaji3/exsite-go/pkg/exsite/parser"
	"github.com/ukaji3/exsite-go/pkg/exsite/variables"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = parser.ErrFileNotFound

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = parser.ErrInvalidFormat

// ErrInvalidIdentifier indicates a target identifier too short to be matched.
var ErrInvalidIdentifier = errors.New("invalid site id")

type (
	// SheetReadError reports a skipped sheet.
	SheetReadError = parser.SheetReadError
	// NotFoundError reports an identifier missing from every lookup sheet.
	NotFoundError = discovery.NotFoundError
	// TemplateUnavailableError reports a missing variable template sheet.
	TemplateUnavailableError = variables.TemplateUnavailableError
)

func invalidIdentifier(id string, minLength int) error {
	return fmt.Errorf("%w: %q is shorter than %d characters", ErrInvalidIdentifier, id, minLength)
}
