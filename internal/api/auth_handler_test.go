package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdulaziz-cybers/ToDoKirano/internal/api"
	"github.com/Abdulaziz-cybers/ToDoKirano/internal/api/shared"
	"github.com/Abdulaziz-cybers/ToDoKirano/internal/config"
	"github.com/Abdulaziz-cybers/ToDoKirano/internal/mocks"
	"github.com/Abdulaziz-cybers/ToDoKirano/internal/service/auth"
	"github.com/Abdulaziz-cybers/ToDoKirano/internal/store"
)

const testJWTSecret = "test-secret-key-that-is-long-enough-for-hmac"

func newTestJWTService(t *testing.T) auth.JWTService {
	t.Helper()

	svc, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:                   testJWTSecret,
		TokenLifetimeMinutes:        60,
		RefreshTokenLifetimeMinutes: 10080,
	})
	require.NoError(t, err)
	return svc
}

func newAuthRouter(t *testing.T, userStore store.UserStore) (http.Handler, auth.JWTService) {
	t.Helper()

	jwtService := newTestJWTService(t)
	handler := api.NewAuthHandler(
		userStore,
		jwtService,
		auth.NewBcryptHasher(),
		auth.NewBcryptVerifier(),
		discardLogger(),
	)

	r := chi.NewRouter()
	r.Post("/api/auth/register", handler.Register)
	r.Post("/api/auth/login", handler.Login)
	r.Post("/api/auth/refresh", handler.RefreshToken)
	return r, jwtService
}

func registerUser(t *testing.T, router http.Handler, email, password string) api.AuthResponse {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register",
		`{"email":"`+email+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	return decodeBody[api.AuthResponse](t, rec)
}

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("registers user and issues token pair", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		router, jwtService := newAuthRouter(t, userStore)

		resp := registerUser(t, router, "alice@example.com", "correct-horse-battery")

		assert.NotEqual(t, uuid.Nil, resp.UserID)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.NotEmpty(t, resp.ExpiresAt)

		claims, err := jwtService.ValidateToken(context.Background(), resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, resp.UserID, claims.UserID)

		// Stored user carries only the hash.
		stored, err := userStore.GetByEmail(context.Background(), "alice@example.com")
		require.NoError(t, err)
		assert.Empty(t, stored.Password)
		assert.NotEmpty(t, stored.HashedPassword)
		assert.NotEqual(t, "correct-horse-battery", stored.HashedPassword)
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		router, _ := newAuthRouter(t, userStore)

		registerUser(t, router, "alice@example.com", "correct-horse-battery")
		rec := doJSON(t, router, http.MethodPost, "/api/auth/register",
			`{"email":"alice@example.com","password":"correct-horse-battery"}`)

		require.Equal(t, http.StatusConflict, rec.Code)
		resp := decodeBody[shared.ErrorResponse](t, rec)
		assert.Equal(t, "Email already exists", resp.Error)
	})

	validationTests := []struct {
		name      string
		body      string
		wantField string
	}{
		{
			name:      "missing email",
			body:      `{"password":"correct-horse-battery"}`,
			wantField: "email",
		},
		{
			name:      "invalid email",
			body:      `{"email":"not-an-email","password":"correct-horse-battery"}`,
			wantField: "email",
		},
		{
			name:      "password too short",
			body:      `{"email":"alice@example.com","password":"short"}`,
			wantField: "password",
		},
	}

	for _, tc := range validationTests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			router, _ := newAuthRouter(t, mocks.NewMockUserStore())
			rec := doJSON(t, router, http.MethodPost, "/api/auth/register", tc.body)

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			resp := decodeBody[shared.ErrorResponse](t, rec)
			assert.Contains(t, resp.Fields, tc.wantField)
		})
	}

	t.Run("malformed JSON body", func(t *testing.T) {
		t.Parallel()

		router, _ := newAuthRouter(t, mocks.NewMockUserStore())
		rec := doJSON(t, router, http.MethodPost, "/api/auth/register", `{"email"`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("valid credentials", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		router, jwtService := newAuthRouter(t, userStore)

		registered := registerUser(t, router, "alice@example.com", "correct-horse-battery")

		rec := doJSON(t, router, http.MethodPost, "/api/auth/login",
			`{"email":"alice@example.com","password":"correct-horse-battery"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeBody[api.AuthResponse](t, rec)
		assert.Equal(t, registered.UserID, resp.UserID)

		_, err := jwtService.ValidateToken(context.Background(), resp.AccessToken)
		assert.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		router, _ := newAuthRouter(t, userStore)
		registerUser(t, router, "alice@example.com", "correct-horse-battery")

		rec := doJSON(t, router, http.MethodPost, "/api/auth/login",
			`{"email":"alice@example.com","password":"wrong-password-entirely"}`)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		resp := decodeBody[shared.ErrorResponse](t, rec)
		assert.Equal(t, "Invalid credentials", resp.Error)
	})

	t.Run("unknown email matches wrong password response", func(t *testing.T) {
		t.Parallel()

		router, _ := newAuthRouter(t, mocks.NewMockUserStore())

		rec := doJSON(t, router, http.MethodPost, "/api/auth/login",
			`{"email":"ghost@example.com","password":"correct-horse-battery"}`)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		resp := decodeBody[shared.ErrorResponse](t, rec)
		assert.Equal(t, "Invalid credentials", resp.Error)
	})
}

func TestRefreshToken(t *testing.T) {
	t.Parallel()

	t.Run("exchanges refresh token for new pair", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		router, jwtService := newAuthRouter(t, userStore)

		registered := registerUser(t, router, "alice@example.com", "correct-horse-battery")

		rec := doJSON(t, router, http.MethodPost, "/api/auth/refresh",
			`{"refresh_token":"`+registered.RefreshToken+`"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeBody[api.RefreshTokenResponse](t, rec)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)

		claims, err := jwtService.ValidateToken(context.Background(), resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, registered.UserID, claims.UserID)
	})

	t.Run("rejects access token in place of refresh token", func(t *testing.T) {
		t.Parallel()

		userStore := mocks.NewMockUserStore()
		router, _ := newAuthRouter(t, userStore)
		registered := registerUser(t, router, "alice@example.com", "correct-horse-battery")

		rec := doJSON(t, router, http.MethodPost, "/api/auth/refresh",
			`{"refresh_token":"`+registered.AccessToken+`"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects garbage token", func(t *testing.T) {
		t.Parallel()

		router, _ := newAuthRouter(t, mocks.NewMockUserStore())
		rec := doJSON(t, router, http.MethodPost, "/api/auth/refresh",
			`{"refresh_token":"not.a.token"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects token for deleted user", func(t *testing.T) {
		t.Parallel()

		jwtService := newTestJWTService(t)
		refreshToken, err := jwtService.GenerateRefreshToken(context.Background(), uuid.New())
		require.NoError(t, err)

		// The user behind the token never existed in this store.
		router, _ := newAuthRouter(t, mocks.NewMockUserStore())
		rec := doJSON(t, router, http.MethodPost, "/api/auth/refresh",
			`{"refresh_token":"`+refreshToken+`"}`)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		resp := decodeBody[shared.ErrorResponse](t, rec)
		assert.Equal(t, "Invalid refresh token", resp.Error)
	})

	t.Run("missing refresh token field", func(t *testing.T) {
		t.Parallel()

		router, _ := newAuthRouter(t, mocks.NewMockUserStore())
		rec := doJSON(t, router, http.MethodPost, "/api/auth/refresh", `{}`)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		resp := decodeBody[shared.ErrorResponse](t, rec)
		assert.Contains(t, resp.Fields, "refresh_token")
	})
}
