package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error kinds. Every error returned by the core matches exactly one of these
// with errors.Is.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
	ErrConflict  = errors.New("conflict")
	ErrBusiness  = errors.New("business rule violated")
	ErrStorage   = errors.New("storage failure")
)

type NotFoundError struct {
	Resource string
	Field    string
	Value    any
}

func NewNotFoundError(resource string, id uint) *NotFoundError {
	return &NotFoundError{Resource: resource, Field: "ID", Value: id}
}

func (e *NotFoundError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}

	return fmt.Sprintf("%s with %s %v not found", e.Resource, e.Field, e.Value)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

type ForbiddenError struct {
	UserID uint
	Action string
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("user %d is not allowed to %s", e.UserID, e.Action)
}

func (e *ForbiddenError) Is(target error) bool { return target == ErrForbidden }

type ConflictReason string

const (
	ConflictTicketNotFound         ConflictReason = "TICKET_NOT_FOUND"
	ConflictTicketNotAvailable     ConflictReason = "TICKET_NOT_AVAILABLE"
	ConflictTicketWrongAssociation ConflictReason = "TICKET_WRONG_ASSOCIATION"
	ConflictTicketNotInCart        ConflictReason = "TICKET_NOT_IN_CART"
	ConflictTicketNotReserved      ConflictReason = "TICKET_NOT_RESERVED"
	ConflictTicketNotSold          ConflictReason = "TICKET_NOT_SOLD"
	ConflictTicketWrongRaffle      ConflictReason = "TICKET_WRONG_RAFFLE"
)

// ConflictError reports a batch of tickets that are not in the state the
// operation expects. The whole batch is rejected.
type ConflictError struct {
	Reason    ConflictReason
	TicketIDs []uint
}

func NewConflictError(reason ConflictReason, ids []uint) *ConflictError {
	sorted := append([]uint(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	return &ConflictError{Reason: reason, TicketIDs: sorted}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("ticket conflict (%s): %s", e.Reason, joinIDs(e.TicketIDs))
}

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

type BusinessError struct {
	Rule      string
	TicketIDs []uint
}

func NewBusinessError(rule string) *BusinessError {
	return &BusinessError{Rule: rule}
}

func (e *BusinessError) Error() string {
	if len(e.TicketIDs) == 0 {
		return e.Rule
	}

	return fmt.Sprintf("%s: %s", e.Rule, joinIDs(e.TicketIDs))
}

func (e *BusinessError) Is(target error) bool { return target == ErrBusiness }

type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s -> %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

func (e *StorageError) Is(target error) bool { return target == ErrStorage }

func joinIDs(ids []uint) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}

	return strings.Join(parts, ", ")
}
