package service

import (
	"github.com/MKhiriev/go-account-service/internal/config"
	"github.com/MKhiriev/go-account-service/internal/crypto"
	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/internal/store"
)

type Services struct {
	AuthService    AuthService
	AccountService AccountService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	hasher := crypto.NewPasswordHasher(cfg.Auth.BcryptCost)

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, hasher, cfg.Auth, logger),
		AccountService: NewAccountService(storages.UserRepository, storages.ProfilePictures, hasher, logger),
		AppInfoService: appInfoService,
	}, nil
}
