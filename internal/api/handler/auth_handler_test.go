package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"newgen_backend/internal/app/service"
	"newgen_backend/internal/common/security"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func setupAuthRouter(userRepo *fakeUserRepo, notifier *fakeNotifier) *chi.Mux {
	authService := service.NewAuthService(userRepo, security.NewBcryptHasher(), notifier)
	r := chi.NewRouter()
	NewAuthHandler(authService).RegisterRoutes(r)
	return r
}

func postJSON(t *testing.T, router http.Handler, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	assert.NoError(t, err)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestSignupAndLogin(t *testing.T) {
	userRepo := &fakeUserRepo{}
	notifier := &fakeNotifier{}
	router := setupAuthRouter(userRepo, notifier)

	w := postJSON(t, router, "/signup", service.SignupRequest{
		Name: "Ann", Email: "a@x.com", Password: "p",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "User registered successfully")

	// The welcome notification is queued off the request path.
	assert.Eventually(t, func() bool { return notifier.count() == 1 }, time.Second, 10*time.Millisecond)

	// Login with the same name/password returns the stored id.
	w = postJSON(t, router, "/login", service.LoginRequest{Username: "Ann", Password: "p"})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp service.LoginResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, "Ann", resp.User.Name)
	assert.Equal(t, "a@x.com", resp.User.Email)
	assert.NotEmpty(t, resp.User.ID)

	// A second login sees the same id.
	w = postJSON(t, router, "/login", service.LoginRequest{Username: "Ann", Password: "p"})
	var again service.LoginResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &again))
	assert.Equal(t, resp.User.ID, again.User.ID)
}

func TestSignupDuplicateEmail(t *testing.T) {
	userRepo := &fakeUserRepo{}
	notifier := &fakeNotifier{}
	router := setupAuthRouter(userRepo, notifier)

	body := service.SignupRequest{Name: "Ann", Email: "a@x.com", Password: "p"}
	w := postJSON(t, router, "/signup", body)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, router, "/signup", body)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Email already registered")

	// Exactly one stored row survives both attempts.
	assert.Equal(t, 1, userRepo.count())
}

func TestSignupMissingFields(t *testing.T) {
	router := setupAuthRouter(&fakeUserRepo{}, &fakeNotifier{})

	for _, payload := range []service.SignupRequest{
		{Email: "a@x.com", Password: "p"},
		{Name: "Ann", Password: "p"},
		{Name: "Ann", Email: "a@x.com"},
	} {
		w := postJSON(t, router, "/signup", payload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Missing required fields")
	}
}

func TestLoginFailures(t *testing.T) {
	userRepo := &fakeUserRepo{}
	router := setupAuthRouter(userRepo, &fakeNotifier{})

	w := postJSON(t, router, "/signup", service.SignupRequest{
		Name: "Ann", Email: "a@x.com", Password: "right",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Wrong password and unknown name fail identically.
	w = postJSON(t, router, "/login", service.LoginRequest{Username: "Ann", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")

	w = postJSON(t, router, "/login", service.LoginRequest{Username: "Nobody", Password: "right"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")

	w = postJSON(t, router, "/login", service.LoginRequest{Username: "Ann"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing username or password")
}
