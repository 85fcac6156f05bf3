package sqltemplate

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by the concrete error types below through
// errors.Is. Callers that only care about the category can compare against
// these instead of type-asserting.
var (
	ErrIncompatible = errors.New("sqltemplate: incompatible parameter type")
	ErrUndefined    = errors.New("sqltemplate: undefined type")
	ErrMissing      = errors.New("sqltemplate: missing argument")
	ErrTemplate     = errors.New("sqltemplate: malformed template")
)

// ErrIncompatibleType is returned when an argument does not satisfy the
// contract of the placeholder it is bound to.
type ErrIncompatibleType struct {
	Placeholder Placeholder
	Kind        Kind
	// Position is the zero-based index of the offending argument.
	Position int
}

func (e *ErrIncompatibleType) Error() string {
	return fmt.Sprintf("sqltemplate: incompatible parameter type: %s value for %s placeholder (argument %d)",
		e.Kind, e.Placeholder, e.Position)
}

func (e *ErrIncompatibleType) Unwrap() error { return ErrIncompatible }

// NewErrIncompatibleType constructs a new ErrIncompatibleType.
func NewErrIncompatibleType(p Placeholder, k Kind, position int) error {
	return &ErrIncompatibleType{Placeholder: p, Kind: k, Position: position}
}

// ErrUndefinedType is returned when a value is outside the supported value
// space and cannot be formatted.
type ErrUndefinedType struct {
	Type string
}

func (e *ErrUndefinedType) Error() string {
	return fmt.Sprintf("sqltemplate: undefined type %s", e.Type)
}

func (e *ErrUndefinedType) Unwrap() error { return ErrUndefined }

// NewErrUndefinedType constructs a new ErrUndefinedType for the given type name.
func NewErrUndefinedType(typ string) error {
	return &ErrUndefinedType{Type: typ}
}

// ErrMissingArgument is returned when the template holds more placeholders
// than there are arguments.
type ErrMissingArgument struct {
	Position int
	Count    int
}

func (e *ErrMissingArgument) Error() string {
	return fmt.Sprintf("sqltemplate: missing argument for placeholder %d (%d arguments given)", e.Position, e.Count)
}

func (e *ErrMissingArgument) Unwrap() error { return ErrMissing }

// NewErrMissingArgument constructs a new ErrMissingArgument.
func NewErrMissingArgument(position, count int) error {
	return &ErrMissingArgument{Position: position, Count: count}
}

// ErrExtraArguments is returned by a strict Renderer when arguments are left
// over after every placeholder has been bound.
type ErrExtraArguments struct {
	Expected int
	Got      int
}

func (e *ErrExtraArguments) Error() string {
	return fmt.Sprintf("sqltemplate: template uses %d arguments, %d given", e.Expected, e.Got)
}

// NewErrExtraArguments constructs a new ErrExtraArguments.
func NewErrExtraArguments(expected, got int) error {
	return &ErrExtraArguments{Expected: expected, Got: got}
}

// ErrNestedBlock is returned when a conditional block opens inside another.
type ErrNestedBlock struct {
	Offset int
}

func (e *ErrNestedBlock) Error() string {
	return fmt.Sprintf("sqltemplate: nested conditional block at offset %d", e.Offset)
}

func (e *ErrNestedBlock) Unwrap() error { return ErrTemplate }

// NewErrNestedBlock constructs a new ErrNestedBlock at the given byte offset.
func NewErrNestedBlock(offset int) error {
	return &ErrNestedBlock{Offset: offset}
}

// ErrUnbalancedBlock is returned for a closing brace with no open block, or
// a block still open at the end of the template.
type ErrUnbalancedBlock struct {
	Offset int
}

func (e *ErrUnbalancedBlock) Error() string {
	return fmt.Sprintf("sqltemplate: unbalanced conditional block at offset %d", e.Offset)
}

func (e *ErrUnbalancedBlock) Unwrap() error { return ErrTemplate }

// NewErrUnbalancedBlock constructs a new ErrUnbalancedBlock at the given byte offset.
func NewErrUnbalancedBlock(offset int) error {
	return &ErrUnbalancedBlock{Offset: offset}
}

// ErrOmitOutsideBlock is returned when the omit sentinel is bound to a
// placeholder that is not inside a conditional block.
type ErrOmitOutsideBlock struct {
	Position int
}

func (e *ErrOmitOutsideBlock) Error() string {
	return fmt.Sprintf("sqltemplate: omit value for argument %d is not inside a conditional block", e.Position)
}

func (e *ErrOmitOutsideBlock) Unwrap() error { return ErrTemplate }

// NewErrOmitOutsideBlock constructs a new ErrOmitOutsideBlock.
func NewErrOmitOutsideBlock(position int) error {
	return &ErrOmitOutsideBlock{Position: position}
}

// IsIncompatibleTypeErr returns true if err is or wraps ErrIncompatible.
func IsIncompatibleTypeErr(err error) bool {
	return errors.Is(err, ErrIncompatible)
}

// IsUndefinedTypeErr returns true if err is or wraps ErrUndefined.
func IsUndefinedTypeErr(err error) bool {
	return errors.Is(err, ErrUndefined)
}
