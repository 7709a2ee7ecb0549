// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/MKhiriev/go-account-service/internal/config"
	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/internal/service"
	"github.com/MKhiriev/go-account-service/internal/utils"
	"github.com/MKhiriev/go-account-service/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn    func(ctx context.Context, credentials models.Credentials) (models.User, error)
	loginFn       func(ctx context.Context, credentials models.Credentials) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return m.registerFn(ctx, credentials)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return m.loginFn(ctx, credentials)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockAccountService implements service.AccountService for unit tests.
type mockAccountService struct {
	getProfileFn     func(ctx context.Context, userID int64) (models.User, error)
	getUserByIDFn    func(ctx context.Context, userID int64) (models.User, error)
	listUsersFn      func(ctx context.Context) ([]models.User, error)
	updateProfileFn  func(ctx context.Context, update service.ProfileUpdate) (models.User, error)
	changePasswordFn func(ctx context.Context, userID int64, currentPassword, newPassword string) error
	deleteAccountFn  func(ctx context.Context, userID int64) error
}

func (m *mockAccountService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	return m.getProfileFn(ctx, userID)
}

func (m *mockAccountService) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	return m.getUserByIDFn(ctx, userID)
}

func (m *mockAccountService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFn(ctx)
}

func (m *mockAccountService) UpdateProfile(ctx context.Context, update service.ProfileUpdate) (models.User, error) {
	return m.updateProfileFn(ctx, update)
}

func (m *mockAccountService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	return m.changePasswordFn(ctx, userID, currentPassword, newPassword)
}

func (m *mockAccountService) DeleteAccount(ctx context.Context, userID int64) error {
	return m.deleteAccountFn(ctx, userID)
}

// mockAppInfoService implements service.AppInfoService for unit tests.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(ctx context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the given mocks with test defaults.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()

	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test"}
	}

	cfg := config.StructuredConfig{}
	cfg.Storage.Files.ProfilePictureDir = t.TempDir()

	return NewHandler(svcs, cfg, logger.Nop())
}

// decodeResponse unmarshals the uniform envelope from a recorded response.
func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) models.Response {
	t.Helper()
	var resp models.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

// stubToken returns a models.Token carrying the given signed string and
// subject claim.
func stubToken(signed string, userID int64) models.Token {
	return models.Token{
		SignedString: signed,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: strconv.FormatInt(userID, 10),
		},
		UserID: userID,
	}
}

// withUserID attaches an authenticated user ID to the request context, the
// way the auth middleware does for downstream handlers.
func withUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, utils.UserIDCtxKey, userID)
}
