// Package billing holds the document totals engine and payment
// reconciliation rules shared by invoices and quotations. Everything in
// this package is pure and synchronous: drafts are plain values mutated
// only through the reducer-style operations below, and no function here
// performs I/O. Services call into it before and after repository calls.
package billing

import "time"

// CatalogItem is the snapshot of a catalog item at selection time.
// Line items copy price and tax from it rather than holding a live
// reference, so later catalog edits never change historical documents.
type CatalogItem struct {
	ItemID       int
	ItemName     string
	SellingPrice float64
	TaxRate      float64
	RemainingQty float64
}

// LineItem is one row of a document. Amount and TaxAmount are derived at
// creation and immutable afterwards; changing a line means removing and
// re-adding it.
type LineItem struct {
	ItemID               int     `json:"item_id"`
	ItemName             string  `json:"item_name"`
	UnitPrice            float64 `json:"unit_price"`
	Quantity             float64 `json:"quantity"`
	TaxRate              float64 `json:"tax_rate"`
	Amount               float64 `json:"amount"`
	TaxAmount            float64 `json:"tax_amount"`
	QuantityExceedsStock bool    `json:"quantity_exceeds_stock,omitempty"`
}

// Draft is the in-memory state of a document being edited. Each form
// instance owns its draft exclusively; there is no shared mutable state
// between concurrent edits of different documents.
type Draft struct {
	ClientID        int
	Date            time.Time
	DueDate         time.Time
	DiscountPercent float64
	Items           []LineItem
}

// Totals are the derived figures of a draft, recomputed from scratch on
// every item or discount change. Total is never independently editable.
type Totals struct {
	SubTotal       float64 `json:"sub_total"`
	DiscountAmount float64 `json:"discount_amount"`
	Total          float64 `json:"total"`
}

// AddItem appends a line built from a catalog snapshot. Adding the same
// catalog item twice fails with ErrDuplicateLineItem and leaves the draft
// unchanged. A quantity above the remaining stock only flags the line;
// Validate rejects flagged drafts at submit time.
func (d *Draft) AddItem(item CatalogItem, quantity float64) (LineItem, error) {
	if quantity <= 0 {
		return LineItem{}, ErrInvalidQuantity
	}
	for _, li := range d.Items {
		if li.ItemID == item.ItemID {
			return LineItem{}, ErrDuplicateLineItem
		}
	}

	amount := Round2(item.SellingPrice * quantity)
	line := LineItem{
		ItemID:               item.ItemID,
		ItemName:             item.ItemName,
		UnitPrice:            item.SellingPrice,
		Quantity:             quantity,
		TaxRate:              item.TaxRate,
		Amount:               amount,
		TaxAmount:            Round2(amount * item.TaxRate / 100),
		QuantityExceedsStock: quantity > item.RemainingQty,
	}
	d.Items = append(d.Items, line)
	return line, nil
}

// RemoveItem deletes the line with the given catalog item id. Removing an
// absent item is a no-op, not an error.
func (d *Draft) RemoveItem(itemID int) {
	for i, li := range d.Items {
		if li.ItemID == itemID {
			d.Items = append(d.Items[:i], d.Items[i+1:]...)
			return
		}
	}
}

// SetDiscount updates the draft discount percentage. Out-of-range values
// are stored as-is and rejected by Validate, not clamped.
func (d *Draft) SetDiscount(percent float64) {
	d.DiscountPercent = percent
}

// Totals recomputes subtotal, discount amount and total from the current
// lines. An empty draft yields all zeros.
func (d *Draft) Totals() Totals {
	return ComputeTotals(d.Items, d.DiscountPercent)
}

// ComputeTotals derives document figures from a line list and a discount
// percentage. Pure function; calling it twice with the same inputs yields
// identical output.
func ComputeTotals(items []LineItem, discountPercent float64) Totals {
	var subTotal float64
	for _, li := range items {
		subTotal += li.Amount
	}
	subTotal = Round2(subTotal)
	discountAmount := Round2(subTotal * discountPercent / 100)
	return Totals{
		SubTotal:       subTotal,
		DiscountAmount: discountAmount,
		Total:          Round2(subTotal - discountAmount),
	}
}

// Validate checks a draft for submission. It never mutates the draft;
// on failure the document stays in its draft state.
func (d *Draft) Validate() error {
	if len(d.Items) == 0 {
		return ErrEmptyDocument
	}
	if d.DiscountPercent < 0 || d.DiscountPercent > 100 {
		return ErrInvalidDiscount
	}
	if d.ClientID == 0 || d.Date.IsZero() || d.DueDate.IsZero() {
		return ErrMissingRequiredField
	}
	if d.DueDate.Before(d.Date) {
		return ErrInvalidDueDate
	}
	for _, li := range d.Items {
		if li.QuantityExceedsStock {
			return ErrInsufficientStock
		}
	}
	return nil
}
