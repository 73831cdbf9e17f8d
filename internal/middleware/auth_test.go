package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"billsoft-backend/internal/auth"
	"billsoft-backend/internal/config"
	"billsoft-backend/internal/models"
)

type fakeUserGetter struct {
	users map[int]*models.User
}

func (f *fakeUserGetter) Get(_ context.Context, id int) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, errors.New("no rows in result set")
	}
	return u, nil
}

func authFixture(t *testing.T) (*AuthMiddleware, *auth.JWTManager) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "billsoft-backend"

	jwtManager := auth.NewJWTManager(cfg)
	users := &fakeUserGetter{users: map[int]*models.User{
		1: {ID: 1, Email: "admin@billsoft.in", Role: "admin", IsActive: true},
		2: {ID: 2, Email: "staff@billsoft.in", Role: "staff", IsActive: true},
		3: {ID: 3, Email: "gone@billsoft.in", Role: "staff", IsActive: false},
	}}
	return NewAuthMiddleware(jwtManager, users), jwtManager
}

func bearerRequest(t *testing.T, jwtManager *auth.JWTManager, user *models.User) *http.Request {
	t.Helper()
	token, err := jwtManager.GenerateToken(user)
	require.NoError(t, err)

	req := httptest.NewRequest("PUT", "/api/settings", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func okHandler() (http.Handler, *bool) {
	called := false
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}), &called
}

func TestAuthenticateRejectsMissingToken(t *testing.T) {
	m, _ := authFixture(t)
	next, called := okHandler()

	rec := httptest.NewRecorder()
	m.Authenticate(next).ServeHTTP(rec, httptest.NewRequest("GET", "/api/clients", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, *called)
}

func TestAuthenticateRejectsInactiveAccount(t *testing.T) {
	m, jwtManager := authFixture(t)
	next, called := okHandler()

	rec := httptest.NewRecorder()
	req := bearerRequest(t, jwtManager, &models.User{ID: 3, Email: "gone@billsoft.in", Role: "staff"})
	m.Authenticate(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.False(t, *called)
}

func TestRequireAdminForbidsStaff(t *testing.T) {
	m, jwtManager := authFixture(t)
	next, called := okHandler()

	rec := httptest.NewRecorder()
	req := bearerRequest(t, jwtManager, &models.User{ID: 2, Email: "staff@billsoft.in", Role: "staff"})
	m.RequireAdmin(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.False(t, *called)
}

func TestRequireAdminPassesAdmin(t *testing.T) {
	m, jwtManager := authFixture(t)
	next, called := okHandler()

	rec := httptest.NewRecorder()
	req := bearerRequest(t, jwtManager, &models.User{ID: 1, Email: "admin@billsoft.in", Role: "admin"})
	m.RequireAdmin(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, *called)
}
