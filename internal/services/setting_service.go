package services

import (
	"context"
	"encoding/json"
	"time"

	"billsoft-backend/internal/cache"
	"billsoft-backend/internal/models"
	"billsoft-backend/internal/repositories"
)

type SettingService struct {
	Repo *repositories.SettingRepository
}

func NewSettingService(repo *repositories.SettingRepository) *SettingService {
	return &SettingService{Repo: repo}
}

// GetSettings returns the company profile, served from Redis when warm.
// Sequence counters ride along but PeekSequence always hits the
// database so a concurrently advanced counter is never reported stale.
func (s *SettingService) GetSettings(ctx context.Context) (*models.Settings, error) {
	if data, ok := cache.GetCached(ctx, cache.SettingsKey); ok {
		var settings models.Settings
		if err := json.Unmarshal(data, &settings); err == nil {
			return &settings, nil
		}
	}

	settings, err := s.Repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(settings); err == nil {
		cache.SetCached(ctx, cache.SettingsKey, data, time.Hour)
	}
	return settings, nil
}

func (s *SettingService) UpdateSettings(ctx context.Context, req *models.UpdateSettingsRequest) (*models.Settings, error) {
	settings, err := s.Repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	settings.CompanyName = req.CompanyName
	settings.Address = req.Address
	settings.ContactNumber = req.ContactNumber
	settings.AlternateContact = req.AlternateContact
	settings.Email = req.Email
	settings.Website = req.Website
	settings.GSTIN = req.GSTIN
	settings.HSN = req.HSN
	settings.BankName = req.BankName
	settings.AccountNumber = req.AccountNumber
	settings.IFSC = req.IFSC

	if err := s.Repo.Update(ctx, settings); err != nil {
		return nil, err
	}

	cache.InvalidateSettingCaches(ctx)
	return settings, nil
}

// PeekSequence exposes the next document number's counter value for
// forms, without advancing it.
func (s *SettingService) PeekSequence(ctx context.Context, kind models.SequenceKind) (int, error) {
	return s.Repo.PeekSequence(ctx, kind)
}
