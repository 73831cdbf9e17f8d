package billing

import "errors"

var (
	// ErrDuplicateLineItem is returned when an item is added to a draft
	// that already contains a line for the same catalog item.
	ErrDuplicateLineItem = errors.New("item already added to document")

	// ErrEmptyDocument is returned when a draft with no line items is submitted.
	ErrEmptyDocument = errors.New("document has no line items")

	// ErrInvalidDiscount is returned when the discount percentage is outside [0,100].
	ErrInvalidDiscount = errors.New("discount must be between 0 and 100")

	// ErrMissingRequiredField is returned when a required client or date field is absent.
	ErrMissingRequiredField = errors.New("required field missing")

	// ErrInvalidDueDate is returned when the due date falls before the document date.
	ErrInvalidDueDate = errors.New("due date cannot be before document date")

	// ErrInsufficientStock is returned at submit time when a draft contains a line
	// whose quantity exceeded the item's remaining stock at selection time.
	ErrInsufficientStock = errors.New("quantity exceeds remaining stock")

	// ErrInvalidQuantity is returned for a zero or negative line quantity.
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrInvalidAmount is returned when a money string cannot be parsed.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrOverPayment is returned when recording a payment would push an
	// invoice's pending balance below zero.
	ErrOverPayment = errors.New("payment exceeds pending amount")

	// ErrDuplicateIdentifier is reported when the database rejects a document
	// number that already exists. The caller retries with a fresh sequence.
	ErrDuplicateIdentifier = errors.New("document number already exists")
)
