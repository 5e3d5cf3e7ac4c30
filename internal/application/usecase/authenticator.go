package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"

	"gallery/internal/domain/model"
	"gallery/internal/domain/repository/database"
	"gallery/pkg/logger"
)

// Authenticator checks admin pins against the stored settings.
type Authenticator struct {
	store    database.SettingsStore
	defaults model.Settings
}

func NewAuthenticator(store database.SettingsStore, defaults SettingsDefault) *Authenticator {
	return &Authenticator{
		store:    store,
		defaults: defaults.model(),
	}
}

// CheckPin reports whether pin matches the admin pin. A wrong pin is not an
// error. An empty stored pin never matches.
func (a *Authenticator) CheckPin(ctx context.Context, pin string) (bool, int, error) {
	settings, err := a.store.Get(ctx, a.defaults)
	if err != nil {
		logger.Error("failed to read settings for login", "err", err)

		return false, http.StatusInternalServerError, errors.New("login failed")
	}

	if settings.AdminPin == "" {
		return false, http.StatusOK, nil
	}

	ok := subtle.ConstantTimeCompare([]byte(pin), []byte(settings.AdminPin)) == 1

	return ok, http.StatusOK, nil
}
