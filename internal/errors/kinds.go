package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies the failures the catalog tool can report.
type Kind int

const (
	KindUnknown Kind = iota
	KindSourceUnavailable
	KindMalformedRecord
	KindDanglingPrerequisite
	KindNotFound
	KindInvalidMenuInput
)

func (k Kind) String() string {
	switch k {
	case KindSourceUnavailable:
		return "SourceUnavailable"
	case KindMalformedRecord:
		return "MalformedRecord"
	case KindDanglingPrerequisite:
		return "DanglingPrerequisite"
	case KindNotFound:
		return "NotFound"
	case KindInvalidMenuInput:
		return "InvalidMenuInput"
	default:
		return "Unknown"
	}
}

// Code maps the kind onto the ErrorMessage table.
func (k Kind) Code() int {
	switch k {
	case KindSourceUnavailable:
		return ErrSourceUnavailable.Code
	case KindMalformedRecord:
		return ErrMalformedRecord.Code
	case KindDanglingPrerequisite:
		return ErrDanglingPrerequisite.Code
	case KindNotFound:
		return ErrCourseNotFound.Code
	case KindInvalidMenuInput:
		return ErrInvalidChoice.Code
	default:
		return 0
	}
}

// kinded is implemented by every error type in this package.
type kinded interface {
	Kind() Kind
}

// KindOf returns the kind of the first classified error in err's chain.
func KindOf(err error) Kind {
	var k kinded
	if stderrors.As(err, &k) {
		return k.Kind()
	}
	return KindUnknown
}

// Is reports whether err carries the given kind anywhere in its chain.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// LoadError is returned when a catalog source cannot be opened or read.
// Read is set when the source opened but failed part way through.
type LoadError struct {
	Source string
	Read   bool
	Err    error
}

func (e *LoadError) message() ErrorMessage {
	if e.Read {
		return ErrSourceRead
	}
	return ErrSourceUnavailable
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.message().Message, e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
func (e *LoadError) Kind() Kind    { return KindSourceUnavailable }
func (e *LoadError) Code() int     { return e.message().Code }

// ParseError describes a line that could not be turned into a course record.
type ParseError struct {
	Line   int
	Raw    string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
	}
	return e.Reason
}

func (e *ParseError) Kind() Kind { return KindMalformedRecord }
func (e *ParseError) Code() int  { return ErrMalformedRecord.Code }

// DanglingPrerequisiteError names a prerequisite that is not itself a course.
type DanglingPrerequisiteError struct {
	CourseID     string
	Prerequisite string
}

func (e *DanglingPrerequisiteError) Error() string {
	return fmt.Sprintf("Prerequisite %s of %s does not exist as a course", e.Prerequisite, e.CourseID)
}

func (e *DanglingPrerequisiteError) Kind() Kind { return KindDanglingPrerequisite }
func (e *DanglingPrerequisiteError) Code() int  { return ErrDanglingPrerequisite.Code }

// NotFoundError is returned by lookups for an ID that is not in the catalog.
type NotFoundError struct {
	CourseID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Course %s not found", e.CourseID)
}

func (e *NotFoundError) Kind() Kind { return KindNotFound }
func (e *NotFoundError) Code() int  { return ErrCourseNotFound.Code }

type invalidMenuInput struct{}

func (invalidMenuInput) Error() string { return ErrInvalidChoice.Message }
func (invalidMenuInput) Kind() Kind    { return KindInvalidMenuInput }
func (invalidMenuInput) Code() int     { return ErrInvalidChoice.Code }

// ErrInvalidMenuInput is returned for unrecognised or non-numeric menu choices.
var ErrInvalidMenuInput error = invalidMenuInput{}
