package models

import "time"

// Item is a catalog/inventory entry. RemainingQty tracks stock: purchases
// increase it, invoice lines decrease it, invoice deletion restores it.
type Item struct {
	ID           int       `json:"id"`
	ItemName     string    `json:"item_name"`
	Category     string    `json:"category"`
	SupplierName string    `json:"supplier_name"`
	SellingPrice float64   `json:"selling_price"`
	Measurement  string    `json:"measurement"`
	TaxRate      float64   `json:"tax_rate"`
	Description  string    `json:"description"`
	RemainingQty float64   `json:"remaining_qty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreateItemRequest struct {
	ItemName     string  `json:"item_name"`
	Category     string  `json:"category"`
	SupplierName string  `json:"supplier_name"`
	SellingPrice float64 `json:"selling_price"`
	Measurement  string  `json:"measurement"`
	TaxRate      float64 `json:"tax_rate"`
	Description  string  `json:"description"`
	OpeningQty   float64 `json:"opening_qty"`
}

// Purchase is a stock-in record against a catalog item.
type Purchase struct {
	ID            int       `json:"id"`
	ItemID        int       `json:"item_id"`
	ItemName      string    `json:"item_name,omitempty"`
	Date          time.Time `json:"date"`
	PurchasePrice float64   `json:"purchase_price"`
	Quantity      float64   `json:"quantity"`
	Amount        float64   `json:"amount"`
	PaymentType   string    `json:"payment_type"`
	TransactionRef string   `json:"transaction_ref"`
	CreatedAt     time.Time `json:"created_at"`
}

type CreatePurchaseRequest struct {
	ItemID         int     `json:"item_id"`
	Date           string  `json:"date"`
	PurchasePrice  float64 `json:"purchase_price"`
	Quantity       float64 `json:"quantity"`
	PaymentType    string  `json:"payment_type"`
	TransactionRef string  `json:"transaction_ref"`
}
