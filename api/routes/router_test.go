package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/quintech/quintech-backend/api/controllers"
	"github.com/quintech/quintech-backend/internal/auth"
	"github.com/quintech/quintech-backend/internal/profiles"
	pkgAuth "github.com/quintech/quintech-backend/pkg/auth"
	"github.com/quintech/quintech-backend/pkg/auth/session"
	"github.com/quintech/quintech-backend/pkg/config"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubRegisterService struct {
	calls int
}

func (s *stubRegisterService) Register(_ context.Context, _ auth.RegisterRequest) (*auth.TokenResponse, error) {
	s.calls++
	return &auth.TokenResponse{Token: "signup-token"}, nil
}

type stubAuthService struct{}

func (stubAuthService) Login(_ context.Context, _ auth.LoginRequest) (*auth.TokenResponse, error) {
	return &auth.TokenResponse{Token: "login-token"}, nil
}

type stubProfileService struct{}

func (stubProfileService) Get(_ context.Context, handle string) (*profiles.ProfileDTO, error) {
	return &profiles.ProfileDTO{Handle: handle}, nil
}

func (stubProfileService) GetOwn(_ context.Context, handle string) (*profiles.OwnProfile, error) {
	return &profiles.OwnProfile{Credentials: &profiles.ProfileDTO{Handle: handle}}, nil
}

type stubSessionChecker struct{}

func (stubSessionChecker) HasSession(_ context.Context, _ string) (bool, error) {
	return true, nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Env = config.AppEnvDev
	cfg.JWT = config.JWTConfig{Secret: "secret", Issuer: "quintech", ExpirationMinutes: 60}
	cfg.Media.MaxUploadMB = 10
	return cfg
}

func newTestRouter(t *testing.T, reg *stubRegisterService) http.Handler {
	t.Helper()
	return NewRouter(RouterParams{
		Config:          testConfig(),
		SessionManager:  stubSessionChecker{},
		RegisterService: reg,
		AuthService:     stubAuthService{},
		ProfileService:  stubProfileService{},
		ReadyChecks:     map[string]controllers.Pinger{"db": stubPinger{}},
	})
}

func TestRouterHealthEndpoints(t *testing.T) {
	router := newTestRouter(t, &stubRegisterService{})

	for _, path := range []string{"/health/live", "/health/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s got %d", path, rec.Code)
		}
	}
}

func TestRouterSignupIsPublic(t *testing.T) {
	reg := &stubRegisterService{}
	router := newTestRouter(t, reg)

	body := `{"email":"rivka@example.com","password":"pass-1234","confirmPassword":"pass-1234","handle":"rivka","name":"Rivka Stern"}`
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rec.Code, rec.Body.String())
	}
	if reg.calls != 1 {
		t.Fatalf("expected register service call, got %d", reg.calls)
	}
}

func TestRouterLoginIsPublic(t *testing.T) {
	router := newTestRouter(t, &stubRegisterService{})

	body := `{"email":"rivka@example.com","password":"pass-1234"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouterPublicProfileByHandle(t *testing.T) {
	router := newTestRouter(t, &stubRegisterService{})

	req := httptest.NewRequest(http.MethodGet, "/user/dora", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
}

func TestRouterOwnProfileRequiresAuth(t *testing.T) {
	router := newTestRouter(t, &stubRegisterService{})

	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
}

func TestRouterOwnProfileWithToken(t *testing.T) {
	router := newTestRouter(t, &stubRegisterService{})

	cfg := testConfig()
	token, err := pkgAuth.MintAccessToken(cfg.JWT, time.Now().UTC(), pkgAuth.AccessTokenPayload{
		AccountID: uuid.New(),
		Handle:    "rivka",
		JTI:       session.NewAccessID(),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
}
