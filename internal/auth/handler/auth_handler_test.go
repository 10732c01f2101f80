package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/darshakkanani/Honeypot-Setup-sub001/config"
	"github.com/darshakkanani/Honeypot-Setup-sub001/internal/auth/domain"
	"github.com/darshakkanani/Honeypot-Setup-sub001/internal/auth/dto"
	"github.com/darshakkanani/Honeypot-Setup-sub001/internal/auth/handler"
	"github.com/darshakkanani/Honeypot-Setup-sub001/internal/auth/service"
	"github.com/darshakkanani/Honeypot-Setup-sub001/internal/mocks"
	"github.com/darshakkanani/Honeypot-Setup-sub001/pkg/constant"
	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestApp(t *testing.T, ctrl *gomock.Controller) (*fiber.App, *mocks.MockUserRepository, *mocks.MockTokenGenerator) {
	t.Helper()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockTokenService := mocks.NewMockTokenGenerator(ctrl)
	cfg := &config.Config{LockoutMaxAttempts: 5, LockoutDurationMin: 15}
	userService := service.NewUserService(mockRepo, mockTokenService, cfg)
	authHandler := handler.NewAuthHandler(userService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	return app, mockRepo, mockTokenService
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, mockRepo, mockTokenService := newTestApp(t, ctrl)

	t.Run("missing fields", func(t *testing.T) {
		for _, payload := range []string{`{}`, `{"username":"admin"}`, `{"password":"pw"}`} {
			req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader([]byte(payload)))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		mockRepo.EXPECT().GetActiveByUsername(gomock.Any(), "ghost").Return(nil, nil)

		body, _ := json.Marshal(dto.LoginInput{Username: "ghost", Password: "pw"})
		req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

		var out map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, "Invalid credentials", out["error"])
	})

	t.Run("locked account", func(t *testing.T) {
		lockedUntil := time.Now().Add(10 * time.Minute)
		user := &domain.AdminUser{
			ID:                 "user-123",
			Username:           "admin",
			IsActive:           true,
			AccountLockedUntil: &lockedUntil,
		}
		mockRepo.EXPECT().GetActiveByUsername(gomock.Any(), "admin").Return(user, nil)

		body, _ := json.Marshal(dto.LoginInput{Username: "admin", Password: "pw"})
		req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusLocked, resp.StatusCode)
	})

	t.Run("success", func(t *testing.T) {
		hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)
		require.NoError(t, err)
		user := &domain.AdminUser{
			ID:           "user-123",
			Username:     "admin",
			Email:        "admin@honeynet.local",
			PasswordHash: string(hash),
			Role:         constant.RoleAdmin,
			IsActive:     true,
		}

		mockRepo.EXPECT().GetActiveByUsername(gomock.Any(), "admin").Return(user, nil)
		mockRepo.EXPECT().ResetLoginState(gomock.Any(), user.ID, gomock.Any()).Return(nil)
		mockTokenService.EXPECT().Generate(user.ID, user.Username, user.Role).
			Return("signed-token", time.Now().Add(24*time.Hour), nil)

		body, _ := json.Marshal(dto.LoginInput{Username: "admin", Password: "correct-horse"})
		req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var out dto.LoginResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, "signed-token", out.Token)
		assert.Equal(t, "admin", out.User.Role)
		assert.Equal(t, "admin@honeynet.local", out.User.Email)
	})

	t.Run("store failure is a generic 500", func(t *testing.T) {
		mockRepo.EXPECT().GetActiveByUsername(gomock.Any(), "admin").Return(nil, errors.New("connection refused"))

		body, _ := json.Marshal(dto.LoginInput{Username: "admin", Password: "pw"})
		req := httptest.NewRequest("POST", "/auth/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

		var out map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		// Internal detail must not leak to the caller.
		assert.Equal(t, "Internal server error", out["error"])
	})
}

func TestLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, _, _ := newTestApp(t, ctrl)

	req := httptest.NewRequest("POST", "/auth/logout", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.NotEmpty(t, out["message"])
}

func TestVerify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	app, mockRepo, mockTokenService := newTestApp(t, ctrl)

	t.Run("no authorization header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/auth/verify", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

		var out map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, "No token provided", out["error"])
	})

	t.Run("malformed header", func(t *testing.T) {
		for _, header := range []string{"Token abc", "Bearer", "Bearer "} {
			req := httptest.NewRequest("GET", "/auth/verify", nil)
			req.Header.Set("Authorization", header)
			resp, err := app.Test(req)
			require.NoError(t, err)

			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

			var out map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
			assert.Equal(t, "No token provided", out["error"])
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		mockTokenService.EXPECT().VerifyAccessToken("bad-token").Return(nil, errors.New("signature is invalid"))

		req := httptest.NewRequest("GET", "/auth/verify", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

		var out map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, "Invalid token", out["error"])
	})

	t.Run("subject deactivated", func(t *testing.T) {
		claims := &service.JWTCustomClaims{UserID: "user-123", Username: "admin", Role: "admin"}
		mockTokenService.EXPECT().VerifyAccessToken("stale-token").Return(claims, nil)
		mockRepo.EXPECT().GetByID(gomock.Any(), "user-123").
			Return(&domain.AdminUser{ID: "user-123", IsActive: false}, nil)

		req := httptest.NewRequest("GET", "/auth/verify", nil)
		req.Header.Set("Authorization", "Bearer stale-token")
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

		var out map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		// Indistinguishable from a bad token so account state cannot be probed.
		assert.Equal(t, "Invalid token", out["error"])
	})

	t.Run("success returns live record", func(t *testing.T) {
		claims := &service.JWTCustomClaims{UserID: "user-123", Username: "admin", Role: "admin"}
		user := &domain.AdminUser{
			ID:       "user-123",
			Username: "admin",
			Email:    "admin@honeynet.local",
			Role:     "admin",
			IsActive: true,
		}
		mockTokenService.EXPECT().VerifyAccessToken("good-token").Return(claims, nil)
		mockRepo.EXPECT().GetByID(gomock.Any(), "user-123").Return(user, nil)

		req := httptest.NewRequest("GET", "/auth/verify", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var out struct {
			User dto.UserOutput `json:"user"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, "admin", out.User.Username)
		assert.Equal(t, "admin@honeynet.local", out.User.Email)
	})
}
