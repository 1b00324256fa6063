// Package validate holds the Portuguese identifier validators used across
// client, vehicle and contract forms: NIF, IBAN, VIN and matrícula, plus the
// smaller bound checks (year, mileage, citizen card number).
//
// All validators are pure functions over strings. They never return Go
// errors to be thrown; callers check Result.Valid and surface Result.Err
// inline on the offending field.
package validate

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat means the value has the wrong shape: wrong length,
	// disallowed characters, unknown pattern.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrChecksumMismatch means the value is well-formed but its check
	// digit(s) do not match.
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// FieldError pairs a sentinel error with the user-facing message shown
// inline on the form field.
type FieldError struct {
	Err     error
	Message string
}

func (e *FieldError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Message)
	}

	return e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Result is the outcome of validating a single field. Normalized holds the
// canonical form of the value and is only meaningful when Valid is true.
type Result struct {
	Valid      bool
	Normalized string
	Err        error
}

func ok(normalized string) Result {
	return Result{Valid: true, Normalized: normalized}
}

func fail(sentinel error, message string) Result {
	return Result{Err: &FieldError{Err: sentinel, Message: message}}
}

// Kind selects which identifier rule applies.
type Kind int

const (
	KindNIF Kind = iota
	KindIBAN
	KindVIN
	KindLicensePlate
)

func (k Kind) String() string {
	switch k {
	case KindNIF:
		return "nif"
	case KindIBAN:
		return "iban"
	case KindVIN:
		return "vin"
	case KindLicensePlate:
		return "license_plate"
	}

	return "unknown"
}

// Field dispatches raw to the validator for the given kind.
func Field(kind Kind, raw string) Result {
	switch kind {
	case KindNIF:
		return NIF(raw)
	case KindIBAN:
		return IBAN(raw)
	case KindVIN:
		return VIN(raw)
	case KindLicensePlate:
		return LicensePlate(raw)
	}

	return fail(ErrInvalidFormat, "campo desconhecido")
}
