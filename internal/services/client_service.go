package services

import (
	"context"
	"errors"

	"billsoft-backend/internal/cache"
	"billsoft-backend/internal/models"
	"billsoft-backend/internal/repositories"
)

type ClientService struct {
	Repo *repositories.ClientRepository
}

func NewClientService(repo *repositories.ClientRepository) *ClientService {
	return &ClientService{Repo: repo}
}

func (s *ClientService) CreateClient(ctx context.Context, req *models.CreateClientRequest) (*models.Client, error) {
	if req.Name == "" {
		return nil, errors.New("client name is required")
	}

	client := &models.Client{
		Name:          req.Name,
		BranchName:    req.BranchName,
		GSTIN:         req.GSTIN,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		ContactNumber: req.ContactNumber,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		Pincode:       req.Pincode,
		CreditLimit:   req.CreditLimit,
	}
	if err := s.Repo.Create(ctx, client); err != nil {
		return nil, err
	}

	cache.InvalidateClientCaches(ctx)
	return client, nil
}

func (s *ClientService) GetClient(ctx context.Context, id int) (*models.Client, error) {
	return s.Repo.Get(ctx, id)
}

func (s *ClientService) ListClients(ctx context.Context) ([]*models.Client, error) {
	return s.Repo.List(ctx)
}

func (s *ClientService) UpdateClient(ctx context.Context, client *models.Client) error {
	if client.Name == "" {
		return errors.New("client name is required")
	}
	if err := s.Repo.Update(ctx, client); err != nil {
		return err
	}
	cache.InvalidateClientCaches(ctx)
	return nil
}

func (s *ClientService) DeleteClient(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidateClientCaches(ctx)
	return nil
}
