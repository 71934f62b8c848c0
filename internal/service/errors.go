package service

import "fmt"

// ValidationError is a locally detected input problem. No upstream call
// is made when one is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// MissingFieldError means upstream answered 200 but without a field the
// response mapping requires.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("upstream response is missing field %q", e.Field)
}

// fieldReader dereferences optional payload fields and remembers the first
// one that was absent.
type fieldReader struct {
	missing string
}

func (f *fieldReader) miss(name string) {
	if f.missing == "" {
		f.missing = name
	}
}

func (f *fieldReader) float(name string, v *float64) float64 {
	if v == nil {
		f.miss(name)
		return 0
	}
	return *v
}

func (f *fieldReader) str(name string, v *string) string {
	if v == nil {
		f.miss(name)
		return ""
	}
	return *v
}

func (f *fieldReader) err() error {
	if f.missing == "" {
		return nil
	}
	return &MissingFieldError{Field: f.missing}
}
