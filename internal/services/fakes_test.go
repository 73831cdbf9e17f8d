package services

import (
	"context"
	"errors"

	"billsoft-backend/internal/billing"
	"billsoft-backend/internal/models"
)

// In-memory stores backing the service tests. Behavior mirrors the pgx
// repositories: duplicate document numbers are rejected, stock moves
// with invoice lines, counters advance post-create.

type memClientStore struct {
	clients map[int]*models.Client
}

func newMemClientStore(clients ...*models.Client) *memClientStore {
	s := &memClientStore{clients: make(map[int]*models.Client)}
	for _, c := range clients {
		s.clients[c.ID] = c
	}
	return s
}

func (s *memClientStore) Get(_ context.Context, id int) (*models.Client, error) {
	c, ok := s.clients[id]
	if !ok {
		return nil, errors.New("no rows in result set")
	}
	return c, nil
}

type memItemStore struct {
	items map[int]*models.Item
}

func newMemItemStore(items ...*models.Item) *memItemStore {
	s := &memItemStore{items: make(map[int]*models.Item)}
	for _, it := range items {
		s.items[it.ID] = it
	}
	return s
}

func (s *memItemStore) Get(_ context.Context, id int) (*models.Item, error) {
	it, ok := s.items[id]
	if !ok {
		return nil, errors.New("no rows in result set")
	}
	return it, nil
}

type memInvoiceStore struct {
	nextID   int
	invoices map[int]*models.Invoice
	items    *memItemStore
}

func newMemInvoiceStore(items *memItemStore) *memInvoiceStore {
	return &memInvoiceStore{nextID: 1, invoices: make(map[int]*models.Invoice), items: items}
}

func (s *memInvoiceStore) Create(_ context.Context, inv *models.Invoice) error {
	for _, existing := range s.invoices {
		if existing.DocumentNumber == inv.DocumentNumber {
			return billing.ErrDuplicateIdentifier
		}
	}
	inv.ID = s.nextID
	s.nextID++
	if s.items != nil {
		for _, li := range inv.Items {
			s.items.items[li.ItemID].RemainingQty -= li.Quantity
		}
	}
	cp := *inv
	s.invoices[inv.ID] = &cp
	return nil
}

func (s *memInvoiceStore) Get(_ context.Context, id int) (*models.Invoice, error) {
	inv, ok := s.invoices[id]
	if !ok {
		return nil, errors.New("no rows in result set")
	}
	cp := *inv
	return &cp, nil
}

func (s *memInvoiceStore) List(_ context.Context) ([]*models.Invoice, error) {
	var out []*models.Invoice
	for _, inv := range s.invoices {
		cp := *inv
		out = append(out, &cp)
	}
	return out, nil
}

func (s *memInvoiceStore) Update(_ context.Context, inv *models.Invoice) error {
	old, ok := s.invoices[inv.ID]
	if !ok {
		return errors.New("no rows in result set")
	}
	if s.items != nil {
		for _, li := range old.Items {
			s.items.items[li.ItemID].RemainingQty += li.Quantity
		}
		for _, li := range inv.Items {
			s.items.items[li.ItemID].RemainingQty -= li.Quantity
		}
	}
	cp := *inv
	cp.Payments = old.Payments
	s.invoices[inv.ID] = &cp
	return nil
}

func (s *memInvoiceStore) Delete(_ context.Context, id int) error {
	old, ok := s.invoices[id]
	if !ok {
		return errors.New("no rows in result set")
	}
	if s.items != nil {
		for _, li := range old.Items {
			s.items.items[li.ItemID].RemainingQty += li.Quantity
		}
	}
	delete(s.invoices, id)
	return nil
}

type memSequenceStore struct {
	counters map[models.SequenceKind]int
}

func newMemSequenceStore(invoice, quotation, expense int) *memSequenceStore {
	return &memSequenceStore{counters: map[models.SequenceKind]int{
		models.SequenceInvoice:   invoice,
		models.SequenceQuotation: quotation,
		models.SequenceExpense:   expense,
	}}
}

func (s *memSequenceStore) PeekSequence(_ context.Context, kind models.SequenceKind) (int, error) {
	return s.counters[kind], nil
}

func (s *memSequenceStore) NextSequence(_ context.Context, kind models.SequenceKind) (int, error) {
	cur := s.counters[kind]
	s.counters[kind] = cur + 1
	return cur, nil
}

type memPaymentStore struct {
	nextID   int
	payments map[int]*models.Payment
	invoices *memInvoiceStore
}

func newMemPaymentStore(invoices *memInvoiceStore) *memPaymentStore {
	return &memPaymentStore{nextID: 1, payments: make(map[int]*models.Payment), invoices: invoices}
}

func (s *memPaymentStore) applyBalance(invoiceID int, pending float64, status string) error {
	inv, ok := s.invoices.invoices[invoiceID]
	if !ok {
		return errors.New("no rows in result set")
	}
	inv.PendingAmount = pending
	inv.Status = status
	return nil
}

func (s *memPaymentStore) Create(_ context.Context, p *models.Payment, pending float64, status string) error {
	p.ID = s.nextID
	s.nextID++
	cp := *p
	s.payments[p.ID] = &cp
	return s.applyBalance(p.InvoiceID, pending, status)
}

func (s *memPaymentStore) Get(_ context.Context, id int) (*models.Payment, error) {
	p, ok := s.payments[id]
	if !ok {
		return nil, errors.New("no rows in result set")
	}
	cp := *p
	return &cp, nil
}

func (s *memPaymentStore) List(_ context.Context) ([]*models.Payment, error) {
	var out []*models.Payment
	for _, p := range s.payments {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (s *memPaymentStore) ListByInvoice(_ context.Context, invoiceID int) ([]*models.Payment, error) {
	var out []*models.Payment
	for id := 1; id < s.nextID; id++ {
		if p, ok := s.payments[id]; ok && p.InvoiceID == invoiceID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *memPaymentStore) Update(_ context.Context, p *models.Payment, pending float64, status string) error {
	if _, ok := s.payments[p.ID]; !ok {
		return errors.New("no rows in result set")
	}
	cp := *p
	s.payments[p.ID] = &cp
	return s.applyBalance(p.InvoiceID, pending, status)
}

func (s *memPaymentStore) Delete(_ context.Context, id int, pending float64, status string) error {
	p, ok := s.payments[id]
	if !ok {
		return errors.New("no rows in result set")
	}
	delete(s.payments, id)
	return s.applyBalance(p.InvoiceID, pending, status)
}
