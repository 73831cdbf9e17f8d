package models

import "time"

// DocumentItem is a stored document line. Amount and tax are snapshots
// computed at creation; they are never recalculated from the catalog.
type DocumentItem struct {
	ID         int     `json:"id"`
	DocumentID int     `json:"document_id"`
	ItemID     int     `json:"item_id"`
	ItemName   string  `json:"item_name"`
	UnitPrice  float64 `json:"unit_price"`
	Quantity   float64 `json:"quantity"`
	TaxRate    float64 `json:"tax_rate"`
	Amount     float64 `json:"amount"`
	TaxAmount  float64 `json:"tax_amount"`
}

// ClientSnapshot is the denormalized client block captured on a document
// at creation time for display and print stability.
type ClientSnapshot struct {
	ClientID      int    `json:"client_id"`
	Name          string `json:"client_name"`
	GSTIN         string `json:"client_gstin"`
	Address       string `json:"client_address"`
	Email         string `json:"client_email"`
	ContactNumber string `json:"client_contact_number"`
}

// Invoice is a persisted invoice with derived totals. Totals are always
// recomputed from the items and discount before storage, never accepted
// from the caller.
type Invoice struct {
	ID              int            `json:"id"`
	DocumentNumber  string         `json:"document_number"`
	Date            time.Time      `json:"date"`
	DueDate         time.Time      `json:"due_date"`
	Client          ClientSnapshot `json:"client"`
	DiscountPercent float64        `json:"discount_percent"`
	SubTotal        float64        `json:"sub_total"`
	DiscountAmount  float64        `json:"discount_amount"`
	Total           float64        `json:"total"`
	PendingAmount   float64        `json:"pending_amount"`
	Status          string         `json:"status"`
	Items           []DocumentItem `json:"items"`
	Payments        []Payment      `json:"payments,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// Quotation shares the invoice's totals model but carries no payments
// and does not move stock.
type Quotation struct {
	ID              int            `json:"id"`
	DocumentNumber  string         `json:"document_number"`
	Date            time.Time      `json:"date"`
	DueDate         time.Time      `json:"due_date"`
	Client          ClientSnapshot `json:"client"`
	DiscountPercent float64        `json:"discount_percent"`
	SubTotal        float64        `json:"sub_total"`
	DiscountAmount  float64        `json:"discount_amount"`
	Total           float64        `json:"total"`
	Items           []DocumentItem `json:"items"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// LineItemInput is one requested document line: a catalog reference plus
// a quantity. Price and tax are snapshotted server-side from the catalog.
type LineItemInput struct {
	ItemID   int     `json:"item_id"`
	Quantity float64 `json:"quantity"`
}

type CreateDocumentRequest struct {
	ClientID        int             `json:"client_id"`
	Date            string          `json:"date"`
	DueDate         string          `json:"due_date"`
	DiscountPercent float64         `json:"discount_percent"`
	Items           []LineItemInput `json:"items"`
}

// UpdateDocumentRequest replaces a document wholesale; the stored
// document number is reused verbatim and never reformatted.
type UpdateDocumentRequest struct {
	ID int `json:"id"`
	CreateDocumentRequest
}
