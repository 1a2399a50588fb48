package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/firstcode/wishlist-backend/internal/users"
	pkgAuth "github.com/firstcode/wishlist-backend/pkg/auth"
	"github.com/firstcode/wishlist-backend/pkg/config"
	"github.com/firstcode/wishlist-backend/pkg/db/models"
	pkgerrors "github.com/firstcode/wishlist-backend/pkg/errors"
	"github.com/firstcode/wishlist-backend/pkg/security"
)

type fakeUserRepo struct {
	byLogin   map[string]*models.User
	lastLogin map[uuid.UUID]time.Time
}

func newFakeUserRepo(seed ...*models.User) *fakeUserRepo {
	repo := &fakeUserRepo{
		byLogin:   map[string]*models.User{},
		lastLogin: map[uuid.UUID]time.Time{},
	}
	for _, user := range seed {
		repo.byLogin[user.Login] = user
	}
	return repo
}

func (f *fakeUserRepo) Create(ctx context.Context, dto users.CreateUserDTO) (*models.User, error) {
	if _, exists := f.byLogin[dto.Login]; exists {
		return nil, gorm.ErrDuplicatedKey
	}
	user := &models.User{ID: uuid.New(), Login: dto.Login, PasswordHash: dto.PasswordHash}
	f.byLogin[dto.Login] = user
	return user, nil
}

func (f *fakeUserRepo) FindByLogin(ctx context.Context, login string) (*models.User, error) {
	if user, ok := f.byLogin[login]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	for _, user := range f.byLogin {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	f.lastLogin[id] = at
	return nil
}

type fakeSessionOpener struct {
	opened []string
}

func (f *fakeSessionOpener) Open(ctx context.Context, accessID string) error {
	f.opened = append(f.opened, accessID)
	return nil
}

func testPasswordConfig() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    8 * 1024,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "secret", Issuer: "firstcode", ExpirationMinutes: 30}
}

func mustHashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := security.HashPassword(password, testPasswordConfig())
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return hash
}

func TestServiceLoginMintsToken(t *testing.T) {
	password := "hunter22"
	user := &models.User{ID: uuid.New(), Login: "alice", PasswordHash: mustHashPassword(t, password)}
	repo := newFakeUserRepo(user)
	opener := &fakeSessionOpener{}

	svc, err := NewService(ServiceParams{
		UserRepo:       repo,
		SessionManager: opener,
		JWTConfig:      testJWTConfig(),
		PasswordConfig: testPasswordConfig(),
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	resp, err := svc.Login(context.Background(), LoginRequest{Username: "Alice", Password: password})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.IDToken == "" {
		t.Fatalf("expected id token")
	}

	claims, err := pkgAuth.ParseAccessToken(testJWTConfig(), resp.IDToken)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("expected user id %s got %s", user.ID, claims.UserID)
	}
	if claims.Login != "alice" {
		t.Fatalf("expected login alice got %s", claims.Login)
	}

	if len(opener.opened) != 1 || opener.opened[0] != claims.ID {
		t.Fatalf("expected session opened for jti %s, got %v", claims.ID, opener.opened)
	}
	if _, ok := repo.lastLogin[user.ID]; !ok {
		t.Fatalf("expected last login to be recorded")
	}
}

func TestServiceLoginWrongPassword(t *testing.T) {
	user := &models.User{ID: uuid.New(), Login: "alice", PasswordHash: mustHashPassword(t, "correct")}
	svc, err := NewService(ServiceParams{
		UserRepo:       newFakeUserRepo(user),
		JWTConfig:      testJWTConfig(),
		PasswordConfig: testPasswordConfig(),
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	_, err = svc.Login(context.Background(), LoginRequest{Username: "alice", Password: "wrong"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestServiceLoginUnknownUser(t *testing.T) {
	svc, err := NewService(ServiceParams{
		UserRepo:       newFakeUserRepo(),
		JWTConfig:      testJWTConfig(),
		PasswordConfig: testPasswordConfig(),
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	_, err = svc.Login(context.Background(), LoginRequest{Username: "ghost", Password: "whatever"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestServiceRegisterAndAccount(t *testing.T) {
	repo := newFakeUserRepo()
	svc, err := NewService(ServiceParams{
		UserRepo:       repo,
		JWTConfig:      testJWTConfig(),
		PasswordConfig: testPasswordConfig(),
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	dto, err := svc.Register(context.Background(), RegisterRequest{Login: "  Bob ", Password: "secret99"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if dto.Login != "bob" {
		t.Fatalf("expected normalized login bob, got %q", dto.Login)
	}

	stored := repo.byLogin["bob"]
	if stored == nil || strings.Contains(stored.PasswordHash, "secret99") {
		t.Fatalf("expected hashed password to be stored")
	}

	account, err := svc.Account(context.Background(), dto.ID.String())
	if err != nil {
		t.Fatalf("account: %v", err)
	}
	if account.Login != "bob" {
		t.Fatalf("expected account login bob, got %q", account.Login)
	}
}

func TestServiceAccountBadID(t *testing.T) {
	svc, err := NewService(ServiceParams{
		UserRepo:       newFakeUserRepo(),
		JWTConfig:      testJWTConfig(),
		PasswordConfig: testPasswordConfig(),
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	_, err = svc.Account(context.Background(), "not-a-uuid")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}
