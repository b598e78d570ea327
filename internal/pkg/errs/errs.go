package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrVersionIsInvalid  = errors.New("version is invalid")
	ErrValueIsNotUnique  = errors.New("value is not unique")
	ErrCorruptExtension  = errors.New("extension is corrupt")
	ErrDependencyFailed  = errors.New("dependency failed")
)

var newlineSanitizer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

func sanitize(v any) string {
	return newlineSanitizer.Replace(fmt.Sprintf("%v", v))
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %v)", msg, cause)
}

// ObjectNotFoundError reports that a lookup matched nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a value that failed a business rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	return withCause(msg, e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError reports an unsupported schema or format version.
type VersionIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewVersionIsInvalidError(paramName string) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName}
}

func NewVersionIsInvalidErrorWithCause(paramName string, cause error) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *VersionIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrVersionIsInvalid, e.ParamName), e.Cause)
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// ValueIsNotUniqueError reports a write rejected by a uniqueness constraint.
type ValueIsNotUniqueError struct {
	ParamName string
	Cause     error
}

func NewValueIsNotUniqueErrorWithCause(paramName string, cause error) *ValueIsNotUniqueError {
	return &ValueIsNotUniqueError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsNotUniqueError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsNotUnique, e.ParamName), e.Cause)
}

func (e *ValueIsNotUniqueError) Unwrap() error {
	return ErrValueIsNotUnique
}

// CorruptExtensionError reports a stored extension blob that does not match
// the extension schema. The zero extension is never returned alongside it.
type CorruptExtensionError struct {
	Reason string
	Cause  error
}

func NewCorruptExtensionError(reason string) *CorruptExtensionError {
	return &CorruptExtensionError{Reason: reason}
}

func NewCorruptExtensionErrorWithCause(reason string, cause error) *CorruptExtensionError {
	return &CorruptExtensionError{Reason: reason, Cause: cause}
}

func (e *CorruptExtensionError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrCorruptExtension, e.Reason), e.Cause)
}

// Unwrap exposes both the class sentinel and the cause, so errors.Is matches
// ErrCorruptExtension as well as e.g. ErrVersionIsInvalid.
func (e *CorruptExtensionError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrCorruptExtension}
	}
	return []error{ErrCorruptExtension, e.Cause}
}

// DependencyFailedError reports that an external collaborator (catalog,
// store, directory) could not serve a call. Nothing in this service retries.
type DependencyFailedError struct {
	Dependency string
	Cause      error
}

func NewDependencyFailedErrorWithCause(dependency string, cause error) *DependencyFailedError {
	return &DependencyFailedError{Dependency: dependency, Cause: cause}
}

func (e *DependencyFailedError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrDependencyFailed, e.Dependency), e.Cause)
}

func (e *DependencyFailedError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrDependencyFailed}
	}
	return []error{ErrDependencyFailed, e.Cause}
}
