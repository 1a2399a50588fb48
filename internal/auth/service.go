package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/firstcode/wishlist-backend/internal/users"
	pkgAuth "github.com/firstcode/wishlist-backend/pkg/auth"
	"github.com/firstcode/wishlist-backend/pkg/auth/session"
	"github.com/firstcode/wishlist-backend/pkg/config"
	"github.com/firstcode/wishlist-backend/pkg/db"
	"github.com/firstcode/wishlist-backend/pkg/db/models"
	pkgerrors "github.com/firstcode/wishlist-backend/pkg/errors"
	"github.com/firstcode/wishlist-backend/pkg/security"
)

const invalidCredentialsMessage = "invalid credentials"

// Service defines the behavior needed by the auth controller.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Register(ctx context.Context, req RegisterRequest) (users.UserDTO, error)
	Account(ctx context.Context, userID string) (users.UserDTO, error)
}

type userRepository interface {
	Create(ctx context.Context, dto users.CreateUserDTO) (*models.User, error)
	FindByLogin(ctx context.Context, login string) (*models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type sessionOpener interface {
	Open(ctx context.Context, accessID string) error
}

type service struct {
	users       userRepository
	session     sessionOpener
	jwtCfg      config.JWTConfig
	passwordCfg config.PasswordConfig
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	UserRepo       userRepository
	SessionManager sessionOpener
	JWTConfig      config.JWTConfig
	PasswordConfig config.PasswordConfig
}

// NewService constructs an auth service with the provided dependencies.
// SessionManager may be nil when session tracking is disabled.
func NewService(params ServiceParams) (Service, error) {
	if params.UserRepo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	return &service{
		users:       params.UserRepo,
		session:     params.SessionManager,
		jwtCfg:      params.JWTConfig,
		passwordCfg: params.PasswordConfig,
	}, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, err := s.authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update last login")
	}

	accessID := session.NewAccessID()
	token, err := pkgAuth.MintAccessToken(s.jwtCfg, now, pkgAuth.AccessTokenPayload{
		UserID: user.ID,
		Login:  user.Login,
		JTI:    accessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint jwt")
	}

	if s.session != nil {
		if err := s.session.Open(ctx, accessID); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "open session")
		}
	}

	return &LoginResponse{IDToken: token}, nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (users.UserDTO, error) {
	login := strings.ToLower(strings.TrimSpace(req.Login))
	if login == "" {
		return users.UserDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "login is required")
	}

	hash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return users.UserDTO{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	user, err := s.users.Create(ctx, users.CreateUserDTO{Login: login, PasswordHash: hash})
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return users.UserDTO{}, pkgerrors.New(pkgerrors.CodeConflict, "login already in use")
		}
		return users.UserDTO{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
	}

	return users.FromModel(user), nil
}

func (s *service) Account(ctx context.Context, userID string) (users.UserDTO, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return users.UserDTO{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials")
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return users.UserDTO{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "account unavailable")
		}
		return users.UserDTO{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup user")
	}
	return users.FromModel(user), nil
}

func (s *service) authenticate(ctx context.Context, login, password string) (*models.User, error) {
	input := strings.TrimSpace(login)
	if input == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}
	user, err := s.users.FindByLogin(ctx, strings.ToLower(input))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup user")
	}

	valid, err := security.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !valid {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}
	return user, nil
}
