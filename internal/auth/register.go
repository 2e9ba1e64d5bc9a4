package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	pkgAuth "github.com/quintech/quintech-backend/pkg/auth"
	"github.com/quintech/quintech-backend/pkg/auth/session"
	"github.com/quintech/quintech-backend/pkg/config"
	"github.com/quintech/quintech-backend/pkg/db"
	"github.com/quintech/quintech-backend/pkg/db/models"
	pkgerrors "github.com/quintech/quintech-backend/pkg/errors"
	"github.com/quintech/quintech-backend/pkg/security"
	"gorm.io/gorm"
)

// RegisterService handles new user onboarding.
type RegisterService interface {
	Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error)
}

type accountCreator interface {
	Create(ctx context.Context, email, passwordHash string) (*models.Account, error)
}

type profileWriter interface {
	FindByHandle(ctx context.Context, handle string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
}

// RegisterServiceParams packages the dependencies for the registration flow.
type RegisterServiceParams struct {
	AccountRepo    accountCreator
	ProfileRepo    profileWriter
	SessionManager sessionManager
	PasswordConfig config.PasswordConfig
	JWTConfig      config.JWTConfig
	PlaceholderURL string
}

type registerService struct {
	accounts       accountCreator
	profiles       profileWriter
	session        sessionManager
	passwordCfg    config.PasswordConfig
	jwtCfg         config.JWTConfig
	placeholderURL string
}

// NewRegisterService builds a registration service with the provided dependencies.
func NewRegisterService(params RegisterServiceParams) (RegisterService, error) {
	if params.AccountRepo == nil {
		return nil, fmt.Errorf("account repository is required")
	}
	if params.ProfileRepo == nil {
		return nil, fmt.Errorf("profile repository is required")
	}
	if params.SessionManager == nil {
		return nil, fmt.Errorf("session manager is required")
	}
	return &registerService{
		accounts:       params.AccountRepo,
		profiles:       params.ProfileRepo,
		session:        params.SessionManager,
		passwordCfg:    params.PasswordConfig,
		jwtCfg:         params.JWTConfig,
		placeholderURL: params.PlaceholderURL,
	}, nil
}

// Register checks handle availability, creates the account, mints the session
// token, and writes the profile, in that order. The account write and the
// profile write are separate operations on purpose: the identity record is
// owned by a different layer than the profile document, and a profile failure
// after the account exists surfaces as an error without undoing the account.
func (s *registerService) Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	handle := strings.TrimSpace(req.Handle)
	name := strings.TrimSpace(req.Name)
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	if handle == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "handle is required")
	}
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if req.Password != req.ConfirmPassword {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "passwords must match")
	}

	if _, err := s.profiles.FindByHandle(ctx, handle); err == nil {
		return nil, pkgerrors.New(pkgerrors.CodeHandleTaken, "handle already taken")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check handle")
	}

	passwordHash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	account, err := s.accounts.Create(ctx, email, passwordHash)
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeEmailTaken, "email already in use")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create account")
	}

	now := time.Now().UTC()
	accessID := session.NewAccessID()
	token, err := pkgAuth.MintAccessToken(s.jwtCfg, now, pkgAuth.AccessTokenPayload{
		AccountID: account.ID,
		Handle:    handle,
		JTI:       accessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint jwt")
	}
	if err := s.session.Register(ctx, accessID); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "register session")
	}

	profile := &models.User{
		Handle:    handle,
		Email:     email,
		Name:      name,
		ImageURL:  s.placeholderURL,
		Points:    0,
		Level:     1,
		Admin:     false,
		AccountID: account.ID,
		CreatedAt: now,
	}
	if _, err := s.profiles.Create(ctx, profile); err != nil {
		// Two signups can pass the availability check with the same handle;
		// the primary key turns the loser's insert into a conflict.
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeHandleTaken, "handle already taken")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create profile")
	}

	return &TokenResponse{Token: token}, nil
}
