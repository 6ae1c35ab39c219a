package service

import (
	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
)

type Services struct {
	AuthService AuthService
	PostService PostService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, views ViewsObserver, logger *logger.Logger) *Services {
	hasher := NewPasswordHasher(cfg.App.PasswordHashKey, cfg.App.PasswordHashCost)

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, hasher, cfg.App, logger),
		PostService: NewPostValidationService(cfg.App.MaxPageLimit).Wrap(
			NewPostService(storages.PostRepository, views, logger),
		),
	}
}
