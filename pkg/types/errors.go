package types

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the model and the persistence layer. Callers
// match with errors.Is; call sites wrap these with %w to add context.
var (
	// ErrValidation covers any schema violation: unknown field, wrong
	// value kind, missing required value, select value outside options.
	ErrValidation = errors.New("validation failed")

	// ErrFormat indicates a file whose content does not match the
	// expected structure (missing delimiter, malformed metadata,
	// unparseable table).
	ErrFormat = errors.New("invalid collection file")

	// ErrNotFound indicates a collection name with no backing file.
	ErrNotFound = errors.New("collection not found")

	// ErrItemNotFound indicates an item id not present in the collection.
	ErrItemNotFound = errors.New("item not found")
)

// Specific validation failures. Each wraps ErrValidation, so
// errors.Is(err, ErrValidation) holds for all of them.
var (
	ErrEmptyName        = fmt.Errorf("%w: name must not be empty", ErrValidation)
	ErrDuplicateField   = fmt.Errorf("%w: duplicate field name", ErrValidation)
	ErrInvalidFieldType = fmt.Errorf("%w: invalid field type", ErrValidation)
	ErrUnknownField     = fmt.Errorf("%w: unknown field", ErrValidation)
	ErrMissingRequired  = fmt.Errorf("%w: missing required value", ErrValidation)
	ErrKindMismatch     = fmt.Errorf("%w: value kind does not match field type", ErrValidation)
	ErrNotAnOption      = fmt.Errorf("%w: value is not one of the declared options", ErrValidation)
	ErrNoOptions        = fmt.Errorf("%w: select field must declare options", ErrValidation)
)
