package handlers

import (
	"errors"
	"net/http"

	"billsoft-backend/internal/billing"
	"billsoft-backend/pkg/utils"
)

// billingErrorStatus maps the billing sentinels to an HTTP status and a
// stable error kind for the response body.
var billingErrors = []struct {
	err    error
	status int
	kind   string
}{
	{billing.ErrDuplicateIdentifier, http.StatusConflict, "DuplicateIdentifier"},
	{billing.ErrOverPayment, http.StatusUnprocessableEntity, "OverPayment"},
	{billing.ErrInsufficientStock, http.StatusUnprocessableEntity, "InsufficientStock"},
	{billing.ErrEmptyDocument, http.StatusBadRequest, "EmptyDocument"},
	{billing.ErrDuplicateLineItem, http.StatusBadRequest, "DuplicateLineItem"},
	{billing.ErrInvalidDiscount, http.StatusBadRequest, "InvalidDiscount"},
	{billing.ErrMissingRequiredField, http.StatusBadRequest, "MissingRequiredField"},
	{billing.ErrInvalidDueDate, http.StatusBadRequest, "InvalidDueDate"},
	{billing.ErrInvalidQuantity, http.StatusBadRequest, "InvalidQuantity"},
	{billing.ErrInvalidAmount, http.StatusBadRequest, "InvalidAmount"},
}

// writeError renders a service error. Billing sentinels get their mapped
// status and kind; anything else is a generic 500.
func writeError(w http.ResponseWriter, err error) {
	for _, be := range billingErrors {
		if errors.Is(err, be.err) {
			utils.Error(w, be.status, be.kind, err.Error())
			return
		}
	}
	utils.Error(w, http.StatusInternalServerError, "Internal", err.Error())
}
