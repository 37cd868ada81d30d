package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"matchapp/config"
	"matchapp/model"
	"matchapp/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserStore backs the authorization-gate tests. Only GetByID matters
// here; the rest satisfies the interface.
type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newFakeUserStore(users ...*model.User) *fakeUserStore {
	s := &fakeUserStore{users: make(map[string]*model.User)}
	for _, u := range users {
		s.users[u.UserID] = u
	}
	return s
}

func (s *fakeUserStore) setRole(userID, role string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[userID].Role = role
}

func (s *fakeUserStore) GetByID(_ context.Context, userID string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return nil, services.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *fakeUserStore) Create(_ context.Context, user *model.User) error { return nil }
func (s *fakeUserStore) FindByEmailOrPhone(_ context.Context, email, phone string) (*model.User, error) {
	return nil, services.ErrUserNotFound
}
func (s *fakeUserStore) List(_ context.Context) ([]model.User, error)          { return nil, nil }
func (s *fakeUserStore) Delete(_ context.Context, userID string) error         { return nil }
func (s *fakeUserStore) SetPassword(_ context.Context, _, _ string) error      { return nil }
func (s *fakeUserStore) SetProfilePic(_ context.Context, _, _ string) error    { return nil }
func (s *fakeUserStore) SetLastLogin(_ context.Context, _ string, _ time.Time) error {
	return nil
}
func (s *fakeUserStore) AddProfileID(_ context.Context, _, _ string) error    { return nil }
func (s *fakeUserStore) RemoveProfileID(_ context.Context, _, _ string) error { return nil }
func (s *fakeUserStore) ActivateMembership(_ context.Context, _, _ string) error {
	return nil
}

func testTokens() *services.TokenService {
	return services.NewTokenService(&config.Config{
		JWTSecret:       "middleware-test-secret",
		JWTIssuer:       "matchapp-test",
		SessionDuration: time.Hour,
	})
}

func protectedRouter(tokens *services.TokenService, users services.UserStore, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers := []gin.HandlerFunc{SessionAuth(tokens)}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRole(users, roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": c.MustGet("userId")})
	})
	router.GET("/protected", handlers...)
	return router
}

func doRequest(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestSessionAuthMissingCookie(t *testing.T) {
	router := protectedRouter(testTokens(), nil)

	recorder := doRequest(router, "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "No token provided")
}

func TestSessionAuthInvalidToken(t *testing.T) {
	router := protectedRouter(testTokens(), nil)

	recorder := doRequest(router, "garbage-token")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestSessionAuthExpiredToken(t *testing.T) {
	expired := services.NewTokenService(&config.Config{
		JWTSecret:       "middleware-test-secret",
		JWTIssuer:       "matchapp-test",
		SessionDuration: -time.Minute,
	})
	token, err := expired.CreateSessionToken("user-1")
	require.NoError(t, err)

	router := protectedRouter(testTokens(), nil)
	recorder := doRequest(router, token)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestSessionAuthValidToken(t *testing.T) {
	tokens := testTokens()
	token, err := tokens.CreateSessionToken("user-1")
	require.NoError(t, err)

	router := protectedRouter(tokens, nil)
	recorder := doRequest(router, token)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "user-1")
}

func TestRequireRoleAllowsCurrentRole(t *testing.T) {
	tokens := testTokens()
	users := newFakeUserStore(&model.User{UserID: "admin-1", Role: model.RoleAdmin})
	token, err := tokens.CreateSessionToken("admin-1")
	require.NoError(t, err)

	router := protectedRouter(tokens, users, model.RoleAdmin, model.RoleSuperAdmin)
	recorder := doRequest(router, token)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRequireRoleForbidsWrongRole(t *testing.T) {
	tokens := testTokens()
	users := newFakeUserStore(&model.User{UserID: "cust-1", Role: model.RoleCustomer})
	token, err := tokens.CreateSessionToken("cust-1")
	require.NoError(t, err)

	router := protectedRouter(tokens, users, model.RoleAdmin, model.RoleSuperAdmin)
	recorder := doRequest(router, token)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestRequireRoleUnknownUser(t *testing.T) {
	tokens := testTokens()
	users := newFakeUserStore()
	token, err := tokens.CreateSessionToken("ghost")
	require.NoError(t, err)

	router := protectedRouter(tokens, users, model.RoleAdmin)
	recorder := doRequest(router, token)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

// Demotion must bite on the very next request with the same token: the
// gate reads the stored role, never the token.
func TestRequireRoleDemotionTakesEffectImmediately(t *testing.T) {
	tokens := testTokens()
	users := newFakeUserStore(&model.User{UserID: "admin-1", Role: model.RoleAdmin})
	token, err := tokens.CreateSessionToken("admin-1")
	require.NoError(t, err)

	router := protectedRouter(tokens, users, model.RoleAdmin, model.RoleSuperAdmin)

	recorder := doRequest(router, token)
	require.Equal(t, http.StatusOK, recorder.Code)

	users.setRole("admin-1", model.RoleCustomer)

	recorder = doRequest(router, token)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}
