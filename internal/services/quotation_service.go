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

// QuotationService mirrors the invoice flow without any stock movement or
// payment tracking.
type QuotationService struct {
	Quotations QuotationStore
	Clients    ClientStore
	Items      ItemStore
	Sequences  SequenceStore
}

func NewQuotationService(quotations QuotationStore, clients ClientStore, items ItemStore, sequences SequenceStore) *QuotationService {
	return &QuotationService{
		Quotations: quotations,
		Clients:    clients,
		Items:      items,
		Sequences:  sequences,
	}
}

func (s *QuotationService) buildDraft(ctx context.Context, req *models.CreateDocumentRequest) (*billing.Draft, error) {
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
			// Quotations do not reserve stock, so the line can never be
			// flagged as exceeding it.
			RemainingQty: line.Quantity,
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

func (s *QuotationService) CreateQuotation(ctx context.Context, req *models.CreateDocumentRequest) (*models.Quotation, error) {
	draft, err := s.buildDraft(ctx, req)
	if err != nil {
		return nil, err
	}

	client, err := s.Clients.Get(ctx, req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("client %d: %w", req.ClientID, err)
	}

	seq, err := s.Sequences.PeekSequence(ctx, models.SequenceQuotation)
	if err != nil {
		return nil, err
	}

	totals := draft.Totals()
	q := &models.Quotation{
		DocumentNumber:  billing.FormatDocumentNumber(billing.PrefixQuotation, seq, draft.Date),
		Date:            draft.Date,
		DueDate:         draft.DueDate,
		Client:          snapshotClient(client),
		DiscountPercent: draft.DiscountPercent,
		SubTotal:        totals.SubTotal,
		DiscountAmount:  totals.DiscountAmount,
		Total:           totals.Total,
		Items:           draftLines(draft),
	}

	if err := s.Quotations.Create(ctx, q); err != nil {
		return nil, err
	}

	if _, err := s.Sequences.NextSequence(ctx, models.SequenceQuotation); err != nil {
		log.Printf("[Quotation] sequence advance failed: %v", err)
	}

	metrics.DocumentsCreatedTotal.WithLabelValues("quotation").Inc()
	cache.InvalidateSettingCaches(ctx)
	return q, nil
}

func (s *QuotationService) GetQuotation(ctx context.Context, id int) (*models.Quotation, error) {
	return s.Quotations.Get(ctx, id)
}

func (s *QuotationService) ListQuotations(ctx context.Context) ([]*models.Quotation, error) {
	return s.Quotations.List(ctx)
}

func (s *QuotationService) UpdateQuotation(ctx context.Context, req *models.UpdateDocumentRequest) (*models.Quotation, error) {
	existing, err := s.Quotations.Get(ctx, req.ID)
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

	totals := draft.Totals()
	q := &models.Quotation{
		ID:              existing.ID,
		DocumentNumber:  existing.DocumentNumber,
		Date:            draft.Date,
		DueDate:         draft.DueDate,
		Client:          snapshotClient(client),
		DiscountPercent: draft.DiscountPercent,
		SubTotal:        totals.SubTotal,
		DiscountAmount:  totals.DiscountAmount,
		Total:           totals.Total,
		Items:           draftLines(draft),
	}

	if err := s.Quotations.Update(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuotationService) DeleteQuotation(ctx context.Context, id int) error {
	return s.Quotations.Delete(ctx, id)
}
