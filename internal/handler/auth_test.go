package handler

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/roamly/api/internal/middleware"
	"github.com/roamly/api/internal/model"
	"github.com/roamly/api/internal/service"
	"github.com/roamly/api/pkg/jwt"
)

// ============================================================================
// Mock UserRepository
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
// Test Helpers
// ============================================================================

func newAuthHandler(t *testing.T, repo *mockUserRepo) *AuthHandler {
	t.Helper()
	_, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	svc := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:   repo,
		JWTService: jwt.NewTestService(privateKey, "test-issuer", 15*time.Minute),
	})
	return NewAuthHandler(svc)
}

func newTestUser(t *testing.T) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("securepassword123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	now := time.Now()
	return &model.User{
		ID:        "user:123",
		Email:     "test@example.com",
		Name:      "Test User",
		Hash:      string(hash),
		CreatedOn: now,
		UpdatedOn: now,
	}
}

func makeJSONRequest(method, path string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withUserContext(req *http.Request, userID string) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
	return req.WithContext(ctx)
}

func parseErrorResponse(t *testing.T, body []byte) *model.ProblemDetails {
	t.Helper()
	var problem model.ProblemDetails
	if err := json.Unmarshal(body, &problem); err != nil {
		t.Fatalf("failed to parse error response: %v", err)
	}
	return &problem
}

// ============================================================================
// Register Tests
// ============================================================================

func TestRegister_ValidInput_ReturnsCreated(t *testing.T) {
	t.Parallel()

	repo := &mockUserRepo{
		createFunc: func(ctx context.Context, user *model.User) error {
			user.ID = "user:new"
			return nil
		},
	}
	h := newAuthHandler(t, repo)

	req := makeJSONRequest(http.MethodPost, "/v1/auth/register", RegisterRequest{
		Email:    "new@example.com",
		Password: "securepassword123",
		Name:     "New User",
	})
	rr := httptest.NewRecorder()
	h.Register(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rr.Code, rr.Body.String())
	}

	data := decodeData(t, rr.Body.Bytes())
	user, ok := data["user"].(map[string]interface{})
	if !ok {
		t.Fatal("expected 'user' in response")
	}
	if user["email"] != "new@example.com" {
		t.Errorf("expected email new@example.com, got %v", user["email"])
	}
	token, ok := data["token"].(map[string]interface{})
	if !ok {
		t.Fatal("expected 'token' in response")
	}
	if token["token_type"] != "Bearer" {
		t.Errorf("expected token_type Bearer, got %v", token["token_type"])
	}
	if token["access_token"] == "" {
		t.Error("expected non-empty access token")
	}
}

func TestRegister_DuplicateEmail_ReturnsConflict(t *testing.T) {
	t.Parallel()

	existing := newTestUser(t)
	repo := &mockUserRepo{
		getByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return existing, nil
		},
	}
	h := newAuthHandler(t, repo)

	req := makeJSONRequest(http.MethodPost, "/v1/auth/register", RegisterRequest{
		Email:    "test@example.com",
		Password: "securepassword123",
		Name:     "Test User",
	})
	rr := httptest.NewRecorder()
	h.Register(rr, req)

	if rr.Code != http.StatusConflict {
		t.Errorf("expected status %d, got %d", http.StatusConflict, rr.Code)
	}
}

func TestRegister_InvalidEmail_ReturnsValidationError(t *testing.T) {
	t.Parallel()

	h := newAuthHandler(t, &mockUserRepo{})

	req := makeJSONRequest(http.MethodPost, "/v1/auth/register", RegisterRequest{
		Email:    "not-an-email",
		Password: "securepassword123",
		Name:     "Test User",
	})
	rr := httptest.NewRecorder()
	h.Register(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, rr.Code)
	}
}

func TestRegister_PasswordTooShort_ReturnsValidationError(t *testing.T) {
	t.Parallel()

	h := newAuthHandler(t, &mockUserRepo{})

	req := makeJSONRequest(http.MethodPost, "/v1/auth/register", RegisterRequest{
		Email:    "new@example.com",
		Password: "short",
		Name:     "Test User",
	})
	rr := httptest.NewRecorder()
	h.Register(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, rr.Code)
	}
}

func TestRegister_InvalidJSON_ReturnsBadRequest(t *testing.T) {
	t.Parallel()

	h := newAuthHandler(t, &mockUserRepo{})

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", bytes.NewBufferString("{not json"))
	rr := httptest.NewRecorder()
	h.Register(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}

// ============================================================================
// Login Tests
// ============================================================================

func TestLogin_ValidCredentials_ReturnsOK(t *testing.T) {
	t.Parallel()

	existing := newTestUser(t)
	repo := &mockUserRepo{
		getByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return existing, nil
		},
	}
	h := newAuthHandler(t, repo)

	req := makeJSONRequest(http.MethodPost, "/v1/auth/login", LoginRequest{
		Email:    "test@example.com",
		Password: "securepassword123",
	})
	rr := httptest.NewRecorder()
	h.Login(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}

	data := decodeData(t, rr.Body.Bytes())
	if _, ok := data["token"]; !ok {
		t.Error("expected 'token' in response")
	}
}

func TestLogin_WrongPassword_ReturnsUnauthorized(t *testing.T) {
	t.Parallel()

	existing := newTestUser(t)
	repo := &mockUserRepo{
		getByEmailFunc: func(ctx context.Context, email string) (*model.User, error) {
			return existing, nil
		},
	}
	h := newAuthHandler(t, repo)

	req := makeJSONRequest(http.MethodPost, "/v1/auth/login", LoginRequest{
		Email:    "test@example.com",
		Password: "wrongpassword",
	})
	rr := httptest.NewRecorder()
	h.Login(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestLogin_NonexistentUser_ReturnsUnauthorized(t *testing.T) {
	t.Parallel()

	h := newAuthHandler(t, &mockUserRepo{})

	req := makeJSONRequest(http.MethodPost, "/v1/auth/login", LoginRequest{
		Email:    "nobody@example.com",
		Password: "securepassword123",
	})
	rr := httptest.NewRecorder()
	h.Login(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}

// ============================================================================
// Me Tests
// ============================================================================

func TestMe_Authenticated_ReturnsUserData(t *testing.T) {
	t.Parallel()

	existing := newTestUser(t)
	repo := &mockUserRepo{
		getByIDFunc: func(ctx context.Context, id string) (*model.User, error) {
			if id != "user:123" {
				t.Errorf("expected lookup of user:123, got %s", id)
			}
			return existing, nil
		},
	}
	h := newAuthHandler(t, repo)

	req := withUserContext(httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil), "user:123")
	rr := httptest.NewRecorder()
	h.Me(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	data := decodeData(t, rr.Body.Bytes())
	if data["name"] != "Test User" {
		t.Errorf("expected name 'Test User', got %v", data["name"])
	}
}

func TestMe_Unauthenticated_ReturnsUnauthorized(t *testing.T) {
	t.Parallel()

	h := newAuthHandler(t, &mockUserRepo{})

	req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
	rr := httptest.NewRecorder()
	h.Me(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}
