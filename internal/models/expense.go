package models

import "time"

type Expense struct {
	ID             int       `json:"id"`
	ExpenseNumber  string    `json:"expense_number"`
	Title          string    `json:"title"`
	Date           time.Time `json:"date"`
	Category       string    `json:"category"`
	Amount         float64   `json:"amount"`
	AmountInWords  string    `json:"amount_in_words"`
	PaymentType    string    `json:"payment_type"`
	TransactionRef string    `json:"transaction_ref"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CreateExpenseRequest struct {
	Title          string  `json:"title"`
	Date           string  `json:"date"`
	Category       string  `json:"category"`
	Amount         float64 `json:"amount"`
	PaymentType    string  `json:"payment_type"`
	TransactionRef string  `json:"transaction_ref"`
	Description    string  `json:"description"`
}

type UpdateExpenseRequest struct {
	ID int `json:"id"`
	CreateExpenseRequest
}
