package service

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"testing"
	"time"

	"github.com/roamly/api/internal/model"
	"github.com/roamly/api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// ============================================================================
// Mock Repository
// ============================================================================

type mockUserRepo struct {
	createFunc     func(ctx context.Context, user *model.User) error
	getByIDFunc    func(ctx context.Context, id string) (*model.User, error)
	getByEmailFunc func(ctx context.Context, email string) (*model.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	user.ID = "user:created"
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.getByEmailFunc != nil {
		return m.getByEmailFunc(ctx, email)
	}
	return nil, nil
}

// ============================================================================
// Helper Functions
// ============================================================================

func newTestAuthService(t *testing.T, userRepo *mockUserRepo) *AuthService {
	t.Helper()
	if userRepo == nil {
		userRepo = &mockUserRepo{}
	}
	_, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	return NewAuthService(AuthServiceConfig{
		UserRepo:   userRepo,
		JWTService: jwt.NewTestService(privateKey, "test-issuer", 15*time.Minute),
	})
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return string(hash)
}

// ============================================================================
// Register Tests
// ============================================================================

func TestRegister_InvalidEmail_ReturnsErrInvalidEmail(t *testing.T) {
	t.Parallel()
	svc := newTestAuthService(t, nil)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "not-an-email",
		Password: "password123",
		Name:     "Ada",
	})

	if !errors.Is(err, ErrInvalidEmail) {
		t.Errorf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestRegister_EmptyName_ReturnsErrNameRequired(t *testing.T) {
	t.Parallel()
	svc := newTestAuthService(t, nil)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "ada@example.com",
		Password: "password123",
		Name:     "   ",
	})

	if !errors.Is(err, ErrNameRequired) {
		t.Errorf("expected ErrNameRequired, got %v", err)
	}
}

func TestRegister_ShortPassword_ReturnsErrPasswordTooShort(t *testing.T) {
	t.Parallel()
	svc := newTestAuthService(t, nil)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "ada@example.com",
		Password: "short",
		Name:     "Ada",
	})

	if !errors.Is(err, ErrPasswordTooShort) {
		t.Errorf("expected ErrPasswordTooShort, got %v", err)
	}
}

func TestRegister_DuplicateEmail_ReturnsErrEmailAlreadyExists(t *testing.T) {
	t.Parallel()
	svc := newTestAuthService(t, &mockUserRepo{
		getByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{ID: "user:existing", Email: email}, nil
		},
	})

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "ada@example.com",
		Password: "password123",
		Name:     "Ada",
	})

	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestRegister_Success_HashesPasswordAndIssuesToken(t *testing.T) {
	t.Parallel()
	var created *model.User
	svc := newTestAuthService(t, &mockUserRepo{
		createFunc: func(ctx context.Context, user *model.User) error {
			user.ID = "user:new"
			created = user
			return nil
		},
	})

	result, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "Ada@Example.com",
		Password: "password123",
		Name:     "Ada Lovelace",
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil {
		t.Fatal("expected user to be created")
	}
	if created.Email != "ada@example.com" {
		t.Errorf("expected lowercased email, got %q", created.Email)
	}
	if created.Hash == "" || created.Hash == "password123" {
		t.Error("password must be stored as a bcrypt hash")
	}
	if bcrypt.CompareHashAndPassword([]byte(created.Hash), []byte("password123")) != nil {
		t.Error("stored hash does not match the password")
	}
	if result.Token == "" {
		t.Error("expected a signed token")
	}
	if result.ExpiresIn != int64((15 * time.Minute).Seconds()) {
		t.Errorf("unexpected expiry %d", result.ExpiresIn)
	}
}

// ============================================================================
// Login Tests
// ============================================================================

func TestLogin_UnknownEmail_ReturnsErrInvalidCredentials(t *testing.T) {
	t.Parallel()
	svc := newTestAuthService(t, nil)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "password123",
	})

	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_WrongPassword_ReturnsErrInvalidCredentials(t *testing.T) {
	t.Parallel()
	svc := newTestAuthService(t, &mockUserRepo{
		getByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{
				ID:    "user:1",
				Email: email,
				Name:  "Ada",
				Hash:  hashFor(t, "correct-password"),
			}, nil
		},
	})

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong-password",
	})

	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_Success_ReturnsTokenForUser(t *testing.T) {
	t.Parallel()
	svc := newTestAuthService(t, &mockUserRepo{
		getByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return &model.User{
				ID:    "user:1",
				Email: email,
				Name:  "Ada",
				Hash:  hashFor(t, "password123"),
			}, nil
		},
	})

	result, err := svc.Login(context.Background(), LoginRequest{
		Email:    "Ada@example.com",
		Password: "password123",
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.User.ID != "user:1" {
		t.Errorf("unexpected user: %+v", result.User)
	}

	identity, err := svc.ResolveIdentity(result.Token)
	if err != nil {
		t.Fatalf("issued token should validate: %v", err)
	}
	if identity.ID != "user:1" || identity.Name != "Ada" {
		t.Errorf("unexpected identity: %+v", identity)
	}
}

// ============================================================================
// ResolveIdentity Tests
// ============================================================================

func TestResolveIdentity_InvalidToken_ReturnsError(t *testing.T) {
	t.Parallel()
	svc := newTestAuthService(t, nil)

	_, err := svc.ResolveIdentity("garbage.token.here")

	if err == nil {
		t.Error("expected error for an invalid token")
	}
}

// ============================================================================
// GetUserByID Tests
// ============================================================================

func TestGetUserByID_NotFound_ReturnsErrUserNotFound(t *testing.T) {
	t.Parallel()
	svc := newTestAuthService(t, nil)

	_, err := svc.GetUserByID(context.Background(), "user:missing")

	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
