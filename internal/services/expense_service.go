package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"billsoft-backend/internal/billing"
	"billsoft-backend/internal/metrics"
	"billsoft-backend/internal/models"
	"billsoft-backend/internal/repositories"
	"billsoft-backend/internal/timeutil"
	"billsoft-backend/pkg/utils"
)

type ExpenseService struct {
	Repo      *repositories.ExpenseRepository
	Sequences SequenceStore
}

func NewExpenseService(repo *repositories.ExpenseRepository, sequences SequenceStore) *ExpenseService {
	return &ExpenseService{Repo: repo, Sequences: sequences}
}

// CreateExpense records a voucher with an EXP-numbered identifier drawn
// from the expense sequence.
func (s *ExpenseService) CreateExpense(ctx context.Context, req *models.CreateExpenseRequest) (*models.Expense, error) {
	if req.Title == "" {
		return nil, errors.New("expense title is required")
	}
	if req.Amount <= 0 {
		return nil, billing.ErrInvalidAmount
	}

	date, err := timeutil.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	seq, err := s.Sequences.PeekSequence(ctx, models.SequenceExpense)
	if err != nil {
		return nil, err
	}

	amount := billing.Round2(req.Amount)
	expense := &models.Expense{
		ExpenseNumber:  billing.FormatDocumentNumber(billing.PrefixExpense, seq, date),
		Title:          req.Title,
		Date:           date,
		Category:       req.Category,
		Amount:         amount,
		AmountInWords:  utils.AmountInWords(amount),
		PaymentType:    req.PaymentType,
		TransactionRef: req.TransactionRef,
		Description:    req.Description,
	}
	if err := s.Repo.Create(ctx, expense); err != nil {
		return nil, err
	}

	if _, err := s.Sequences.NextSequence(ctx, models.SequenceExpense); err != nil {
		log.Printf("[Expense] sequence advance failed: %v", err)
	}

	metrics.DocumentsCreatedTotal.WithLabelValues("expense").Inc()
	return expense, nil
}

func (s *ExpenseService) GetExpense(ctx context.Context, id int) (*models.Expense, error) {
	return s.Repo.Get(ctx, id)
}

func (s *ExpenseService) ListExpenses(ctx context.Context) ([]*models.Expense, error) {
	return s.Repo.List(ctx)
}

// UpdateExpense edits a voucher in place. The expense number is never
// regenerated.
func (s *ExpenseService) UpdateExpense(ctx context.Context, req *models.UpdateExpenseRequest) (*models.Expense, error) {
	if req.Amount <= 0 {
		return nil, billing.ErrInvalidAmount
	}

	expense, err := s.Repo.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	date, err := timeutil.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	amount := billing.Round2(req.Amount)
	expense.Title = req.Title
	expense.Date = date
	expense.Category = req.Category
	expense.Amount = amount
	expense.AmountInWords = utils.AmountInWords(amount)
	expense.PaymentType = req.PaymentType
	expense.TransactionRef = req.TransactionRef
	expense.Description = req.Description

	if err := s.Repo.Update(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *ExpenseService) DeleteExpense(ctx context.Context, id int) error {
	return s.Repo.Delete(ctx, id)
}
