package services

import (
	"context"
	"errors"

	"billsoft-backend/internal/billing"
	"billsoft-backend/internal/cache"
	"billsoft-backend/internal/models"
	"billsoft-backend/internal/repositories"
	"billsoft-backend/internal/timeutil"
)

type ItemService struct {
	Repo      *repositories.ItemRepository
	Purchases *repositories.PurchaseRepository
}

func NewItemService(repo *repositories.ItemRepository, purchases *repositories.PurchaseRepository) *ItemService {
	return &ItemService{Repo: repo, Purchases: purchases}
}

func (s *ItemService) CreateItem(ctx context.Context, req *models.CreateItemRequest) (*models.Item, error) {
	if req.ItemName == "" {
		return nil, errors.New("item name is required")
	}
	if req.SellingPrice < 0 {
		return nil, billing.ErrInvalidAmount
	}
	if req.TaxRate < 0 || req.TaxRate > 100 {
		return nil, errors.New("tax rate must be between 0 and 100")
	}

	item := &models.Item{
		ItemName:     req.ItemName,
		Category:     req.Category,
		SupplierName: req.SupplierName,
		SellingPrice: billing.Round2(req.SellingPrice),
		Measurement:  req.Measurement,
		TaxRate:      req.TaxRate,
		Description:  req.Description,
		RemainingQty: req.OpeningQty,
	}
	if err := s.Repo.Create(ctx, item); err != nil {
		return nil, err
	}

	cache.InvalidateItemCaches(ctx)
	return item, nil
}

func (s *ItemService) GetItem(ctx context.Context, id int) (*models.Item, error) {
	return s.Repo.Get(ctx, id)
}

func (s *ItemService) ListItems(ctx context.Context) ([]*models.Item, error) {
	return s.Repo.List(ctx)
}

func (s *ItemService) UpdateItem(ctx context.Context, item *models.Item) error {
	if item.ItemName == "" {
		return errors.New("item name is required")
	}
	if err := s.Repo.Update(ctx, item); err != nil {
		return err
	}
	cache.InvalidateItemCaches(ctx)
	return nil
}

func (s *ItemService) DeleteItem(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateItemCaches(ctx)
	return nil
}

// RecordPurchase logs a stock-in against an item and bumps its remaining
// quantity.
func (s *ItemService) RecordPurchase(ctx context.Context, req *models.CreatePurchaseRequest) (*models.Purchase, error) {
	if req.Quantity <= 0 {
		return nil, billing.ErrInvalidQuantity
	}
	if req.PurchasePrice < 0 {
		return nil, billing.ErrInvalidAmount
	}
	if _, err := s.Repo.Get(ctx, req.ItemID); err != nil {
		return nil, errors.New("item not found")
	}

	date, err := timeutil.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	purchase := &models.Purchase{
		ItemID:         req.ItemID,
		Date:           date,
		PurchasePrice:  billing.Round2(req.PurchasePrice),
		Quantity:       req.Quantity,
		Amount:         billing.Round2(req.PurchasePrice * req.Quantity),
		PaymentType:    req.PaymentType,
		TransactionRef: req.TransactionRef,
	}
	if err := s.Purchases.Create(ctx, purchase); err != nil {
		return nil, err
	}

	cache.InvalidateItemCaches(ctx)
	return purchase, nil
}

func (s *ItemService) ListPurchases(ctx context.Context, itemID int) ([]*models.Purchase, error) {
	if itemID > 0 {
		return s.Purchases.ListByItem(ctx, itemID)
	}
	return s.Purchases.List(ctx)
}

// DeletePurchase removes a stock-in record and reverses its quantity.
func (s *ItemService) DeletePurchase(ctx context.Context, id int) error {
	if err := s.Purchases.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateItemCaches(ctx)
	return nil
}
