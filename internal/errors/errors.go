package errors

import "fmt"

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
	if ve, ok := err.(*ValidationError); ok {
		return ve, true
	}
	return nil, false
}

type RejectReason string

const (
	ReasonItemNotFound     RejectReason = "ITEM_NOT_FOUND"
	ReasonItemNotAvailable RejectReason = "ITEM_NOT_AVAILABLE"
)

// ItemRejectedError is a negative determination from catalog validation:
// the order itself is wrong, retrying will not help.
type ItemRejectedError struct {
	ItemID string
	Reason RejectReason
}

func (e *ItemRejectedError) Error() string {
	if e.Reason == ReasonItemNotAvailable {
		return fmt.Sprintf("item not available: %s", e.ItemID)
	}
	return fmt.Sprintf("item not found: %s", e.ItemID)
}

func NewItemRejectedError(itemID string, reason RejectReason) *ItemRejectedError {
	return &ItemRejectedError{
		ItemID: itemID,
		Reason: reason,
	}
}

func IsItemRejectedError(err error) (*ItemRejectedError, bool) {
	if re, ok := err.(*ItemRejectedError); ok {
		return re, true
	}
	return nil, false
}

type UnavailableCause string

const (
	CauseTimeout UnavailableCause = "timeout"
	CauseNetwork UnavailableCause = "network"
)

// CatalogUnavailableError means validity could not be determined at all:
// the catalog never answered. Kept distinct from ItemRejectedError so
// callers can tell "your order is wrong" from "try again later".
type CatalogUnavailableError struct {
	Cause UnavailableCause
	Err   error
}

func (e *CatalogUnavailableError) Error() string {
	if e.Cause == CauseTimeout {
		return "catalog service unavailable (timeout)"
	}
	return fmt.Sprintf("catalog service unavailable: network: %v", e.Err)
}

func (e *CatalogUnavailableError) Unwrap() error {
	return e.Err
}

func NewCatalogUnavailableError(cause UnavailableCause, err error) *CatalogUnavailableError {
	return &CatalogUnavailableError{
		Cause: cause,
		Err:   err,
	}
}

func IsCatalogUnavailableError(err error) (*CatalogUnavailableError, bool) {
	if ue, ok := err.(*CatalogUnavailableError); ok {
		return ue, true
	}
	return nil, false
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func IsNotFoundError(err error) (*NotFoundError, bool) {
	if nfe, ok := err.(*NotFoundError); ok {
		return nfe, true
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
	if ie, ok := err.(*InternalError); ok {
		return ie, true
	}
	return nil, false
}
