package services

import (
	"context"
	"fmt"
	"log"

	"billsoft-backend/internal/billing"
	"billsoft-backend/internal/cache"
	"billsoft-backend/internal/metrics"
	"billsoft-backend/internal/models"
	"billsoft-backend/internal/timeutil"
)

type InvoiceService struct {
	Invoices  InvoiceStore
	Clients   ClientStore
	Items     ItemStore
	Sequences SequenceStore
}

func NewInvoiceService(invoices InvoiceStore, clients ClientStore, items ItemStore, sequences SequenceStore) *InvoiceService {
	return &InvoiceService{
		Invoices:  invoices,
		Clients:   clients,
		Items:     items,
		Sequences: sequences,
	}
}

// buildDraft assembles and validates a draft from a document request,
// pulling current prices and stock from the catalog. Nothing is written
// if any step fails.
func (s *InvoiceService) buildDraft(ctx context.Context, req *models.CreateDocumentRequest) (*billing.Draft, error) {
	date, err := timeutil.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}
	dueDate, err := timeutil.ParseDate(req.DueDate)
	if err != nil {
		return nil, fmt.Errorf("invalid due date: %w", err)
	}

	draft := &billing.Draft{
		ClientID:        req.ClientID,
		Date:            date,
		DueDate:         dueDate,
		DiscountPercent: req.DiscountPercent,
	}

	for _, line := range req.Items {
		item, err := s.Items.Get(ctx, line.ItemID)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", line.ItemID, err)
		}
		catalog := billing.CatalogItem{
			ItemID:       item.ID,
			ItemName:     item.ItemName,
			SellingPrice: item.SellingPrice,
			TaxRate:      item.TaxRate,
			RemainingQty: item.RemainingQty,
		}
		if _, err := draft.AddItem(catalog, line.Quantity); err != nil {
			return nil, err
		}
	}

	if err := draft.Validate(); err != nil {
		return nil, err
	}
	return draft, nil
}

func snapshotClient(c *models.Client) models.ClientSnapshot {
	return models.ClientSnapshot{
		ClientID:      c.ID,
		Name:          c.Name,
		GSTIN:         c.GSTIN,
		Address:       c.Address,
		Email:         c.Email,
		ContactNumber: c.ContactNumber,
	}
}

func draftLines(draft *billing.Draft) []models.DocumentItem {
	items := make([]models.DocumentItem, 0, len(draft.Items))
	for _, li := range draft.Items {
		items = append(items, models.DocumentItem{
			ItemID:    li.ItemID,
			ItemName:  li.ItemName,
			UnitPrice: li.UnitPrice,
			Quantity:  li.Quantity,
			TaxRate:   li.TaxRate,
			Amount:    li.Amount,
			TaxAmount: li.TaxAmount,
		})
	}
	return items
}

// CreateInvoice validates the request, derives totals, assigns the next
// invoice number and persists everything. The sequence counter advances
// only after the insert succeeds, so a rejected draft never burns a
// number.
func (s *InvoiceService) CreateInvoice(ctx context.Context, req *models.CreateDocumentRequest) (*models.Invoice, error) {
	draft, err := s.buildDraft(ctx, req)
	if err != nil {
		return nil, err
	}

	client, err := s.Clients.Get(ctx, req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("client %d: %w", req.ClientID, err)
	}

	seq, err := s.Sequences.PeekSequence(ctx, models.SequenceInvoice)
	if err != nil {
		return nil, err
	}

	totals := draft.Totals()
	inv := &models.Invoice{
		DocumentNumber:  billing.FormatDocumentNumber(billing.PrefixInvoice, seq, draft.Date),
		Date:            draft.Date,
		DueDate:         draft.DueDate,
		Client:          snapshotClient(client),
		DiscountPercent: draft.DiscountPercent,
		SubTotal:        totals.SubTotal,
		DiscountAmount:  totals.DiscountAmount,
		Total:           totals.Total,
		PendingAmount:   totals.Total,
		Status:          billing.StatusUnpaid,
		Items:           draftLines(draft),
	}

	if err := s.Invoices.Create(ctx, inv); err != nil {
		return nil, err
	}

	if _, err := s.Sequences.NextSequence(ctx, models.SequenceInvoice); err != nil {
		// The invoice is already stored; a stale counter surfaces as a
		// duplicate number on the next create, which the insert rejects.
		log.Printf("[Invoice] sequence advance failed: %v", err)
	}

	metrics.DocumentsCreatedTotal.WithLabelValues("invoice").Inc()
	cache.InvalidateItemCaches(ctx)
	cache.InvalidateSettingCaches(ctx)
	return inv, nil
}

func (s *InvoiceService) GetInvoice(ctx context.Context, id int) (*models.Invoice, error) {
	return s.Invoices.Get(ctx, id)
}

func (s *InvoiceService) ListInvoices(ctx context.Context) ([]*models.Invoice, error) {
	return s.Invoices.List(ctx)
}

// UpdateInvoice replaces an invoice's lines and header. The stored
// document number is kept verbatim, and the pending amount is
// re-derived from the new total minus payments already on record.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, req *models.UpdateDocumentRequest) (*models.Invoice, error) {
	existing, err := s.Invoices.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	draft, err := s.buildDraft(ctx, &req.CreateDocumentRequest)
	if err != nil {
		return nil, err
	}

	client, err := s.Clients.Get(ctx, req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("client %d: %w", req.ClientID, err)
	}

	var paid float64
	for _, p := range existing.Payments {
		paid += p.Amount
	}

	totals := draft.Totals()
	pending := billing.Round2(totals.Total - paid)
	if pending < 0 {
		return nil, billing.ErrOverPayment
	}

	inv := &models.Invoice{
		ID:              existing.ID,
		DocumentNumber:  existing.DocumentNumber,
		Date:            draft.Date,
		DueDate:         draft.DueDate,
		Client:          snapshotClient(client),
		DiscountPercent: draft.DiscountPercent,
		SubTotal:        totals.SubTotal,
		DiscountAmount:  totals.DiscountAmount,
		Total:           totals.Total,
		PendingAmount:   pending,
		Status:          billing.StatusForPending(pending, totals.Total),
		Items:           draftLines(draft),
	}

	if err := s.Invoices.Update(ctx, inv); err != nil {
		return nil, err
	}

	cache.InvalidateItemCaches(ctx)
	return inv, nil
}

// DeleteInvoice removes an invoice and restores its line quantities to
// stock. Payments against it are deleted with it.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id int) error {
	if err := s.Invoices.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateItemCaches(ctx)
	return nil
}
