package errors

import (
	stderrors "errors"
	"fmt"
)

// Entity names the aggregate member an error refers to.
type Entity string

const (
	EntityFranchise Entity = "Franchise"
	EntityBranch    Entity = "Branch"
	EntityProduct   Entity = "Product"
)

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if stderrors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// NotFoundError reports an id that does not exist in its expected scope.
type NotFoundError struct {
	Entity Entity
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id: %s not found", e.Entity, e.ID)
}

func NewNotFoundError(entity Entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func IsNotFoundError(err error) (*NotFoundError, bool) {
	var nf *NotFoundError
	if stderrors.As(err, &nf) {
		return nf, true
	}
	return nil, false
}

// DuplicateError reports a name already taken within its scope. Container is
// the name of the enclosing entity and is empty for franchises.
type DuplicateError struct {
	Entity    Entity
	Name      string
	Container string
}

func (e *DuplicateError) Error() string {
	switch e.Entity {
	case EntityBranch:
		return fmt.Sprintf("Branch with name: %s already exists in Franchise: %s", e.Name, e.Container)
	case EntityProduct:
		return fmt.Sprintf("Product with name: %s already exists in Branch: %s", e.Name, e.Container)
	default:
		return fmt.Sprintf("%s with name <%s> already exists", e.Entity, e.Name)
	}
}

func NewDuplicateError(entity Entity, name, container string) *DuplicateError {
	return &DuplicateError{Entity: entity, Name: name, Container: container}
}

func IsDuplicateError(err error) (*DuplicateError, bool) {
	var de *DuplicateError
	if stderrors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// UniqueViolationError is raised by stores when a unique index rejects a write.
type UniqueViolationError struct {
	Field string
	Cause error
}

func (e *UniqueViolationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("unique constraint violated on %s: %v", e.Field, e.Cause)
	}
	return fmt.Sprintf("unique constraint violated on %s", e.Field)
}

func (e *UniqueViolationError) Unwrap() error {
	return e.Cause
}

func NewUniqueViolationError(field string, cause error) *UniqueViolationError {
	return &UniqueViolationError{Field: field, Cause: cause}
}

func IsUniqueViolationError(err error) (*UniqueViolationError, bool) {
	var ue *UniqueViolationError
	if stderrors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

// ConflictError reports a write rejected because the stored aggregate changed
// since it was read.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

func IsConflictError(err error) (*ConflictError, bool) {
	var ce *ConflictError
	if stderrors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

func NewInternalError(message string, cause error) *InternalError {
	return &InternalError{
		Message: message,
		Cause:   cause,
	}
}

func IsInternalError(err error) (*InternalError, bool) {
	var ie *InternalError
	if stderrors.As(err, &ie) {
		return ie, true
	}
	return nil, false
}
