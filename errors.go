package watchface

import (
	"errors"
	"fmt"
)

// Fatal errors. A parse failing with one of these produces no document.
var (
	// ErrInvalidDescriptor is returned when the descriptor stream cannot be
	// read or is not a JSON object with the expected shape.
	ErrInvalidDescriptor = errors.New("watchface: invalid descriptor")

	// ErrInvalidSize is returned when width or height is missing, not an
	// integer, or not positive.
	ErrInvalidSize = errors.New("watchface: invalid canvas size")
)

// Item errors. A record failing with one of these is skipped and parsing
// continues with the next record.
var (
	// ErrMalformedGeometry is returned when type, center_x or center_y is
	// missing or not an integer, or an optional rotation field is malformed.
	ErrMalformedGeometry = errors.New("watchface: malformed item geometry")

	// ErrUnsupportedType is returned for type codes without an implementation,
	// whether or not the code is recognized.
	ErrUnsupportedType = errors.New("watchface: unsupported item type")

	// ErrMissingRotatableType is returned when a rotatable record has no
	// rotatable_type.
	ErrMissingRotatableType = errors.New("watchface: missing rotatable type")

	// ErrUnsupportedRotatableType is returned for unknown rotatable_type codes.
	ErrUnsupportedRotatableType = errors.New("watchface: unsupported rotatable type")

	// ErrMalformedTapAction is returned when packageName, className or range
	// is missing or has the wrong type.
	ErrMalformedTapAction = errors.New("watchface: malformed tap action")
)

// DocumentError is a fatal parse failure.
type DocumentError struct {
	// Field names the offending top-level field, empty for stream errors.
	Field string
	// Kind is ErrInvalidDescriptor or ErrInvalidSize.
	Kind error
	// Err is the underlying cause, may be nil.
	Err error
}

func (e *DocumentError) Error() string {
	msg := e.Kind.Error()
	if e.Field != "" {
		msg += ": " + e.Field
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DocumentError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// ItemError records why an item record was skipped.
type ItemError struct {
	// Index is the record's position in the descriptor's items array.
	Index int
	// Type is the record's type code when it could be read, else -1.
	Type ItemType
	// Field names the offending field, if any.
	Field string
	// Kind is one of the item sentinel errors.
	Kind error
	// Err is the underlying cause, may be nil.
	Err error
}

func (e *ItemError) Error() string {
	msg := fmt.Sprintf("%v (item %d", e.Kind, e.Index)
	if e.Type >= 0 {
		msg += ", type " + e.Type.String()
	}
	msg += ")"
	if e.Field != "" {
		msg += ": " + e.Field
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ItemError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Field-level causes wrapped by item and document errors.
var (
	errMissingField = errors.New("missing field")
	errWrongType    = errors.New("wrong type")
)
