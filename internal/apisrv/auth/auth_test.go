package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/printline/printline-manager/internal/entity"
	gerr "github.com/printline/printline-manager/internal/errors"
	"github.com/printline/printline-manager/internal/roles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMembers struct {
	byUsername map[string]*entity.Member
}

func (f *fakeMembers) AddMember(ctx context.Context, m *entity.MemberInsert) (int, error) {
	return 0, nil
}

func (f *fakeMembers) GetMemberByUsername(ctx context.Context, username string) (*entity.Member, error) {
	m, ok := f.byUsername[username]
	if !ok {
		return nil, gerr.ErrMemberNotFound
	}
	return m, nil
}

func (f *fakeMembers) GetMemberById(ctx context.Context, id int) (*entity.Member, error) {
	return nil, gerr.ErrMemberNotFound
}

func (f *fakeMembers) ListMembers(ctx context.Context, activeOnly bool) ([]entity.Member, error) {
	return nil, nil
}

func (f *fakeMembers) UpdateMember(ctx context.Context, id int, m *entity.MemberInsert) error {
	return nil
}

func (f *fakeMembers) ChangePassword(ctx context.Context, username, newHash string) error {
	if m, ok := f.byUsername[username]; ok {
		m.PasswordHash = newHash
	}
	return nil
}

func (f *fakeMembers) SetMemberActive(ctx context.Context, id int, active bool) error {
	return nil
}

func testConfig() *Config {
	return &Config{
		JWTSecret:                "test-secret",
		MasterPassword:           "master-pass",
		PasswordHasherSaltSize:   16,
		PasswordHasherIterations: 1000,
		JWTTTL:                   "1h",
	}
}

func newTestAuth(t *testing.T) (*Server, *fakeMembers) {
	t.Helper()
	members := &fakeMembers{byUsername: map[string]*entity.Member{}}
	srv, err := New(testConfig(), members)
	require.NoError(t, err)

	hash, err := srv.HashPassword("somsri-pass")
	require.NoError(t, err)
	members.byUsername["somsri"] = &entity.Member{
		ID:           1,
		UserName:     "somsri",
		RoleCode:     roles.Admin,
		Active:       true,
		PasswordHash: hash,
	}
	return srv, members
}

func TestLogin(t *testing.T) {
	srv, _ := newTestAuth(t)
	ctx := context.Background()

	token, m, err := srv.Login(ctx, "somsri", "somsri-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, roles.Admin, m.RoleCode)

	// Usernames are case-insensitive on login.
	_, _, err = srv.Login(ctx, "SomSri", "somsri-pass")
	assert.NoError(t, err)

	_, _, err = srv.Login(ctx, "somsri", "wrong")
	assert.Error(t, err)

	_, _, err = srv.Login(ctx, "nobody", "somsri-pass")
	assert.Error(t, err)
}

func TestLoginInactiveMember(t *testing.T) {
	srv, members := newTestAuth(t)
	members.byUsername["somsri"].Active = false

	_, _, err := srv.Login(context.Background(), "somsri", "somsri-pass")
	assert.Error(t, err)
}

func TestChangePassword(t *testing.T) {
	srv, _ := newTestAuth(t)
	ctx := context.Background()

	// With the current password.
	require.NoError(t, srv.ChangePassword(ctx, "somsri", "somsri-pass", "new-pass"))
	_, _, err := srv.Login(ctx, "somsri", "new-pass")
	assert.NoError(t, err)

	// With the master password.
	require.NoError(t, srv.ChangePassword(ctx, "somsri", "master-pass", "other-pass"))
	_, _, err = srv.Login(ctx, "somsri", "other-pass")
	assert.NoError(t, err)

	// With neither.
	assert.Error(t, srv.ChangePassword(ctx, "somsri", "wrong", "x"))
}

func TestHandleLogin(t *testing.T) {
	srv, _ := newTestAuth(t)
	r := chi.NewRouter()
	r.Route("/auth", srv.Routes)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"username":"somsri","password":"somsri-pass"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		AuthToken string `json:"authToken"`
		Username  string `json:"username"`
		RoleCode  string `json:"roleCode"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.AuthToken)
	assert.Equal(t, "somsri", body.Username)
	assert.Equal(t, roles.Admin, body.RoleCode)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"username":"somsri","password":"wrong"}`)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWithMemberAndRequirePermission(t *testing.T) {
	srv, _ := newTestAuth(t)

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(srv.WithMember)
		r.With(RequirePermission(roles.OrdersEdit)).Get("/edit", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(UsernameFromContext(r.Context())))
		})
		r.With(RequirePermission(roles.OrdersDelete)).Get("/delete", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})

	token, _, err := srv.Login(context.Background(), "somsri", "somsri-pass")
	require.NoError(t, err)

	// Without a token.
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/edit", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Admin may edit orders.
	req := httptest.NewRequest(http.MethodGet, "/edit", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "somsri", rec.Body.String())

	// But not delete them.
	req = httptest.NewRequest(http.MethodGet, "/delete", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
