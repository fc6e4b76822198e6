package iso8583

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedHeader            = errors.New("malformed header")
	ErrBufferUnderrun             = errors.New("buffer underrun")
	ErrUnrecognizedRepresentation = errors.New("unrecognized representation")
	ErrInvalidBitmap              = errors.New("invalid bitmap")
	ErrInvalidBitmapHex           = errors.New("invalid bitmap hex")
	ErrFieldNotConfigured         = errors.New("field not configured")
	ErrInvalidFieldNumber         = errors.New("invalid field number")
	ErrDuplicateField             = errors.New("duplicate field number")
	ErrInvalidLength              = errors.New("invalid field length")
	ErrInvalidMTI                 = errors.New("invalid MTI")
	ErrInvalidRoutingPrefix       = errors.New("invalid routing prefix")
	ErrFamilyNotFound             = errors.New("message family not found")
	ErrMessageTooLong             = errors.New("message too long")
)

// FieldError reports a failure while building or parsing one field.
type FieldError struct {
	Field int
	Err   error
}

func (fe *FieldError) Error() string {
	return fmt.Sprintf("field %d: %v", fe.Field, fe.Err)
}

func (fe *FieldError) Unwrap() error {
	return fe.Err
}

// CatalogError reports a field definition that cannot be bound into a
// registry. It is raised while the registry is built, never during message
// processing.
type CatalogError struct {
	Family         string
	Field          int
	Representation string
	Err            error
}

func (ce *CatalogError) Error() string {
	return fmt.Sprintf("catalog %s: field %d (%q): %v", ce.Family, ce.Field, ce.Representation, ce.Err)
}

func (ce *CatalogError) Unwrap() error {
	return ce.Err
}

// BatchError identifies which input of a batch failed.
type BatchError struct {
	Index int
	Err   error
}

func (be *BatchError) Error() string {
	return fmt.Sprintf("message %d: %v", be.Index, be.Err)
}

func (be *BatchError) Unwrap() error {
	return be.Err
}
