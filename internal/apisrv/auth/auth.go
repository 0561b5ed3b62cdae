// Package auth issues and checks member tokens for the admin API.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/go-chi/render"
	"github.com/printline/printline-manager/internal/apisrv/respond"
	"github.com/printline/printline-manager/internal/auth/jwt"
	"github.com/printline/printline-manager/internal/auth/pwhash"
	"github.com/printline/printline-manager/internal/dependency"
	"github.com/printline/printline-manager/internal/entity"
	"github.com/printline/printline-manager/internal/roles"
)

const authHeader = "Authorization"

type ctxKey int

const (
	ctxUsername ctxKey = iota
	ctxRole
)

// Server implements login, account management and the route guards.
type Server struct {
	members    dependency.Members
	pwhash     *pwhash.PasswordHasher
	JwtAuth    *jwtauth.JWTAuth
	jwtTTL     time.Duration
	c          *Config
	masterHash string
}

// Config contains the configuration for the auth server.
type Config struct {
	JWTSecret                string `mapstructure:"jwt_secret"`
	MasterPassword           string `mapstructure:"master_password"`
	PasswordHasherSaltSize   int    `mapstructure:"password_hasher_salt_size"`
	PasswordHasherIterations int    `mapstructure:"password_hasher_iterations"`
	JWTTTL                   string `mapstructure:"jwt_ttl"`
}

// New creates a new auth server.
func New(c *Config, members dependency.Members) (*Server, error) {
	ph, err := pwhash.New(c.PasswordHasherSaltSize, c.PasswordHasherIterations)
	if err != nil {
		return nil, err
	}
	hash, err := ph.HashPassword(c.MasterPassword)
	if err != nil {
		return nil, err
	}
	if err := ph.Validate(c.MasterPassword, hash); err != nil {
		return nil, err
	}

	ttl, err := time.ParseDuration(c.JWTTTL)
	if err != nil {
		return nil, err
	}
	return &Server{
		members:    members,
		pwhash:     ph,
		JwtAuth:    jwtauth.New("HS256", []byte(c.JWTSecret), nil),
		c:          c,
		jwtTTL:     ttl,
		masterHash: hash,
	}, nil
}

// HashPassword exposes the configured hasher for member management.
func (s *Server) HashPassword(password string) (string, error) {
	return s.pwhash.HashPassword(password)
}

// Login checks the credentials and issues a token carrying the member's
// role. Inactive members cannot log in.
func (s *Server) Login(ctx context.Context, username, password string) (string, *entity.Member, error) {
	username = strings.ToLower(username)

	m, err := s.members.GetMemberByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if !m.Active {
		return "", nil, fmt.Errorf("member is inactive")
	}
	if err := s.pwhash.Validate(password, m.PasswordHash); err != nil {
		return "", nil, fmt.Errorf("not authenticated: %w", err)
	}

	token, err := jwt.NewMemberToken(s.JwtAuth, s.jwtTTL, m.UserName, m.RoleCode)
	if err != nil {
		return "", nil, err
	}
	return token, m, nil
}

// ChangePassword changes a member's password given either the current one
// or the master password.
func (s *Server) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error {
	username = strings.ToLower(username)

	m, err := s.members.GetMemberByUsername(ctx, username)
	if err != nil {
		return err
	}

	if err := s.pwhash.Validate(currentPassword, s.masterHash); err != nil {
		if err := s.pwhash.Validate(currentPassword, m.PasswordHash); err != nil {
			return fmt.Errorf("neither master nor current password matched")
		}
	}

	newHash, err := s.pwhash.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.members.ChangePassword(ctx, username, newHash)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AuthToken string `json:"authToken"`
	Username  string `json:"username"`
	RoleCode  string `json:"roleCode"`
}

func (lr *loginResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

type changePasswordRequest struct {
	Username        string `json:"username"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// Routes mounts the auth endpoints.
func (s *Server) Routes(r chi.Router) {
	r.Post("/login", s.handleLogin)
	r.Post("/change-password", s.handleChangePassword)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(err))
		return
	}
	token, m, err := s.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		render.Render(w, r, respond.ErrUnauthorized(fmt.Errorf("invalid credentials")))
		return
	}
	render.Render(w, r, &loginResponse{
		AuthToken: token,
		Username:  m.UserName,
		RoleCode:  m.RoleCode,
	})
}

func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		render.Render(w, r, respond.ErrInvalidRequest(err))
		return
	}
	if err := s.ChangePassword(r.Context(), req.Username, req.CurrentPassword, req.NewPassword); err != nil {
		render.Render(w, r, respond.ErrUnauthorized(fmt.Errorf("password change refused")))
		return
	}
	render.Status(r, http.StatusNoContent)
	render.NoContent(w, r)
}

// WithMember verifies the bearer token and stores the member claims on the
// request context.
func (s *Server) WithMember(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get(authHeader), "Bearer ")
		username, role, err := jwt.VerifyTokenClaims(s.JwtAuth, token)
		if err != nil {
			render.Render(w, r, respond.ErrUnauthorized(fmt.Errorf("invalid token")))
			return
		}
		ctx := context.WithValue(r.Context(), ctxUsername, username)
		ctx = context.WithValue(ctx, ctxRole, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequirePermission guards a route subtree with one permission.
func RequirePermission(p roles.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !roles.HasPermission(RoleFromContext(r.Context()), p) {
				render.Render(w, r, respond.ErrForbidden())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UsernameFromContext returns the authenticated member's username.
func UsernameFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ctxUsername).(string); ok {
		return v
	}
	return ""
}

// RoleFromContext returns the authenticated member's role code.
func RoleFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ctxRole).(string); ok {
		return v
	}
	return ""
}
