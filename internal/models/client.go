package models

import "time"

// Client is a billed party. Name, GSTIN and contact details are copied
// onto documents at creation time so later edits here never change what
// was printed.
type Client struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	BranchName    string    `json:"branch_name"`
	GSTIN         string    `json:"gstin"`
	ContactPerson string    `json:"contact_person"`
	Email         string    `json:"email"`
	ContactNumber string    `json:"contact_number"`
	Address       string    `json:"address"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	Pincode       string    `json:"pincode"`
	CreditLimit   float64   `json:"credit_limit"`
	Outstanding   float64   `json:"outstanding"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CreateClientRequest struct {
	Name          string  `json:"name"`
	BranchName    string  `json:"branch_name"`
	GSTIN         string  `json:"gstin"`
	ContactPerson string  `json:"contact_person"`
	Email         string  `json:"email"`
	ContactNumber string  `json:"contact_number"`
	Address       string  `json:"address"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	Pincode       string  `json:"pincode"`
	CreditLimit   float64 `json:"credit_limit"`
}
