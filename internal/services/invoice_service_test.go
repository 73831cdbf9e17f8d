package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"billsoft-backend/internal/billing"
	"billsoft-backend/internal/models"
)

func invoiceFixture() (*InvoiceService, *memInvoiceStore, *memItemStore, *memSequenceStore) {
	items := newMemItemStore(
		&models.Item{ID: 1, ItemName: "Basmati Rice", SellingPrice: 40, TaxRate: 5, RemainingQty: 100},
		&models.Item{ID: 2, ItemName: "Mustard Oil", SellingPrice: 25, TaxRate: 12, RemainingQty: 10},
	)
	clients := newMemClientStore(
		&models.Client{ID: 1, Name: "Sharma Traders", GSTIN: "09AAACS1234A1Z5", Address: "Kanpur", ContactNumber: "9876543210"},
	)
	invoices := newMemInvoiceStore(items)
	sequences := newMemSequenceStore(7, 1, 1)
	return NewInvoiceService(invoices, clients, items, sequences), invoices, items, sequences
}

func TestCreateInvoiceDerivesTotalsAndNumber(t *testing.T) {
	svc, invoices, items, sequences := invoiceFixture()

	inv, err := svc.CreateInvoice(context.Background(), &models.CreateDocumentRequest{
		ClientID:        1,
		Date:            "2026-03-15",
		DueDate:         "2026-04-14",
		DiscountPercent: 10,
		Items: []models.LineItemInput{
			{ItemID: 1, Quantity: 5},
			{ItemID: 2, Quantity: 2},
		},
	})
	require.NoError(t, err)

	require.Equal(t, "INV-7/3/26", inv.DocumentNumber)
	require.Equal(t, 250.0, inv.SubTotal)
	require.Equal(t, 25.0, inv.DiscountAmount)
	require.Equal(t, 225.0, inv.Total)
	require.Equal(t, 225.0, inv.PendingAmount)
	require.Equal(t, billing.StatusUnpaid, inv.Status)
	require.Equal(t, "Sharma Traders", inv.Client.Name)
	require.Len(t, inv.Items, 2)
	require.Equal(t, 40.0, inv.Items[0].UnitPrice)
	require.Equal(t, 200.0, inv.Items[0].Amount)

	require.Len(t, invoices.invoices, 1)
	require.Equal(t, 8, sequences.counters[models.SequenceInvoice])
	require.Equal(t, 95.0, items.items[1].RemainingQty)
	require.Equal(t, 8.0, items.items[2].RemainingQty)
}

func TestCreateInvoiceRejectsEmptyDocument(t *testing.T) {
	svc, invoices, _, sequences := invoiceFixture()

	_, err := svc.CreateInvoice(context.Background(), &models.CreateDocumentRequest{
		ClientID: 1,
		Date:     "2026-03-15",
		DueDate:  "2026-04-14",
	})
	require.ErrorIs(t, err, billing.ErrEmptyDocument)
	require.Empty(t, invoices.invoices)
	require.Equal(t, 7, sequences.counters[models.SequenceInvoice])
}

func TestCreateInvoiceRejectsInsufficientStock(t *testing.T) {
	svc, invoices, items, sequences := invoiceFixture()

	_, err := svc.CreateInvoice(context.Background(), &models.CreateDocumentRequest{
		ClientID: 1,
		Date:     "2026-03-15",
		DueDate:  "2026-04-14",
		Items:    []models.LineItemInput{{ItemID: 2, Quantity: 11}},
	})
	require.ErrorIs(t, err, billing.ErrInsufficientStock)
	require.Empty(t, invoices.invoices)
	require.Equal(t, 10.0, items.items[2].RemainingQty)
	require.Equal(t, 7, sequences.counters[models.SequenceInvoice])
}

func TestCreateInvoiceRejectsDuplicateLine(t *testing.T) {
	svc, invoices, _, _ := invoiceFixture()

	_, err := svc.CreateInvoice(context.Background(), &models.CreateDocumentRequest{
		ClientID: 1,
		Date:     "2026-03-15",
		DueDate:  "2026-04-14",
		Items: []models.LineItemInput{
			{ItemID: 1, Quantity: 2},
			{ItemID: 1, Quantity: 3},
		},
	})
	require.ErrorIs(t, err, billing.ErrDuplicateLineItem)
	require.Empty(t, invoices.invoices)
}

func TestCreateInvoiceRejectsDueDateBeforeDate(t *testing.T) {
	svc, _, _, _ := invoiceFixture()

	_, err := svc.CreateInvoice(context.Background(), &models.CreateDocumentRequest{
		ClientID: 1,
		Date:     "2026-03-15",
		DueDate:  "2026-03-14",
		Items:    []models.LineItemInput{{ItemID: 1, Quantity: 1}},
	})
	require.ErrorIs(t, err, billing.ErrInvalidDueDate)
}

func TestCreateInvoiceDuplicateNumberSurfaces(t *testing.T) {
	svc, invoices, _, sequences := invoiceFixture()

	req := &models.CreateDocumentRequest{
		ClientID: 1,
		Date:     "2026-03-15",
		DueDate:  "2026-04-14",
		Items:    []models.LineItemInput{{ItemID: 1, Quantity: 1}},
	}
	_, err := svc.CreateInvoice(context.Background(), req)
	require.NoError(t, err)

	// Rewind the counter to simulate a stale sequence: the next create
	// formats an already-taken number and the insert rejects it.
	sequences.counters[models.SequenceInvoice] = 7

	_, err = svc.CreateInvoice(context.Background(), req)
	require.ErrorIs(t, err, billing.ErrDuplicateIdentifier)
	require.Len(t, invoices.invoices, 1)
	require.Equal(t, 7, sequences.counters[models.SequenceInvoice])
}

func TestUpdateInvoiceKeepsNumberAndRecomputesPending(t *testing.T) {
	svc, invoices, items, _ := invoiceFixture()

	inv, err := svc.CreateInvoice(context.Background(), &models.CreateDocumentRequest{
		ClientID: 1,
		Date:     "2026-03-15",
		DueDate:  "2026-04-14",
		Items:    []models.LineItemInput{{ItemID: 1, Quantity: 5}},
	})
	require.NoError(t, err)
	require.Equal(t, 95.0, items.items[1].RemainingQty)

	invoices.invoices[inv.ID].Payments = []models.Payment{{ID: 1, Amount: 100}}

	updated, err := svc.UpdateInvoice(context.Background(), &models.UpdateDocumentRequest{
		ID: inv.ID,
		CreateDocumentRequest: models.CreateDocumentRequest{
			ClientID:        1,
			Date:            "2026-03-15",
			DueDate:         "2026-04-14",
			DiscountPercent: 10,
			Items: []models.LineItemInput{
				{ItemID: 1, Quantity: 5},
				{ItemID: 2, Quantity: 2},
			},
		},
	})
	require.NoError(t, err)

	require.Equal(t, inv.DocumentNumber, updated.DocumentNumber)
	require.Equal(t, 225.0, updated.Total)
	require.Equal(t, 125.0, updated.PendingAmount)
	require.Equal(t, billing.StatusPartial, updated.Status)
	require.Equal(t, 95.0, items.items[1].RemainingQty)
	require.Equal(t, 8.0, items.items[2].RemainingQty)
}

func TestUpdateInvoiceRejectsTotalBelowPaid(t *testing.T) {
	svc, invoices, _, _ := invoiceFixture()

	inv, err := svc.CreateInvoice(context.Background(), &models.CreateDocumentRequest{
		ClientID: 1,
		Date:     "2026-03-15",
		DueDate:  "2026-04-14",
		Items:    []models.LineItemInput{{ItemID: 1, Quantity: 5}},
	})
	require.NoError(t, err)

	invoices.invoices[inv.ID].Payments = []models.Payment{{ID: 1, Amount: 200}}

	_, err = svc.UpdateInvoice(context.Background(), &models.UpdateDocumentRequest{
		ID: inv.ID,
		CreateDocumentRequest: models.CreateDocumentRequest{
			ClientID: 1,
			Date:     "2026-03-15",
			DueDate:  "2026-04-14",
			Items:    []models.LineItemInput{{ItemID: 2, Quantity: 2}},
		},
	})
	require.ErrorIs(t, err, billing.ErrOverPayment)
	require.Equal(t, 200.0, invoices.invoices[inv.ID].Total)
}

func TestDeleteInvoiceRestoresStock(t *testing.T) {
	svc, invoices, items, _ := invoiceFixture()

	inv, err := svc.CreateInvoice(context.Background(), &models.CreateDocumentRequest{
		ClientID: 1,
		Date:     "2026-03-15",
		DueDate:  "2026-04-14",
		Items:    []models.LineItemInput{{ItemID: 1, Quantity: 5}},
	})
	require.NoError(t, err)
	require.Equal(t, 95.0, items.items[1].RemainingQty)

	require.NoError(t, svc.DeleteInvoice(context.Background(), inv.ID))
	require.Empty(t, invoices.invoices)
	require.Equal(t, 100.0, items.items[1].RemainingQty)
}
