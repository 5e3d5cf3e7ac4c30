package usecase

import (
	"context"
	"errors"
	"net/http"

	"gallery/internal/domain/dto"
	"gallery/internal/domain/model"
	"gallery/internal/domain/repository/database"
	"gallery/pkg/logger"
	"gallery/pkg/utils"
)

// SettingsManager reads and edits the site settings.
type SettingsManager struct {
	store     database.SettingsStore
	defaults  model.Settings
	validator *utils.Validator
}

func NewSettingsManager(store database.SettingsStore, defaults SettingsDefault,
	validator *utils.Validator,
) *SettingsManager {
	return &SettingsManager{
		store:     store,
		defaults:  defaults.model(),
		validator: validator,
	}
}

// Get never exposes the admin pin, only whether one is set.
func (s *SettingsManager) Get(ctx context.Context) (*dto.SettingsDescriptor, int, error) {
	settings, err := s.store.Get(ctx, s.defaults)
	if err != nil {
		logger.Error("failed to read settings", "err", err)

		return nil, http.StatusInternalServerError, errors.New("failed to read settings")
	}

	categories := settings.Categories
	if categories == nil {
		categories = []string{}
	}

	return &dto.SettingsDescriptor{
		SiteName:    settings.SiteName,
		Categories:  categories,
		AdminPinSet: settings.AdminPin != "",
	}, http.StatusOK, nil
}

// UpdateSiteName sets the site name; nil leaves the settings unchanged.
func (s *SettingsManager) UpdateSiteName(ctx context.Context, siteName *string) (int, error) {
	if siteName == nil {
		if _, err := s.store.Get(ctx, s.defaults); err != nil {
			logger.Error("failed to read settings", "err", err)

			return http.StatusInternalServerError, errors.New("failed to update settings")
		}

		return http.StatusOK, nil
	}

	if err := s.validator.Var(*siteName, "max=100"); err != nil {
		return http.StatusBadRequest, errors.New("site name is too long")
	}

	if err := s.store.SetSiteName(ctx, s.defaults, *siteName); err != nil {
		logger.Error("failed to update site name", "err", err)

		return http.StatusInternalServerError, errors.New("failed to update settings")
	}

	return http.StatusOK, nil
}
