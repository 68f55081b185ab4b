package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/rifkifakhrudin2004/campus-portal/domain"
	"github.com/rifkifakhrudin2004/campus-portal/internal/infrastructure/store"
	"github.com/rifkifakhrudin2004/campus-portal/internal/mocks"
)

// setupSessionService wires a session service over a real cookie store and an
// in-memory Redis so the durable side effects can be asserted directly.
func setupSessionService(t *testing.T, authAPI *mocks.MockAuthAPI) (domain.SessionService, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(func() { mr.Close() })

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	ss := store.NewSessionStore(
		store.NewCookieTokenStore("auth_token", time.Hour, false),
		store.NewUserCache(client, "usercache:", time.Hour),
	)
	return NewSessionService(ss, authAPI), mr
}

func requestWithToken(token string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		r.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
	}
	return r
}

func tokenCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == "auth_token" {
			return c
		}
	}
	return nil
}

func TestSessionService_Login_RoleRedirects(t *testing.T) {
	tests := []struct {
		name         string
		role         string
		expectedPath string
	}{
		{"admin lands on admin area", domain.RoleAdmin, "/admin"},
		{"dosen lands on dosen area", domain.RoleDosen, "/dosen"},
		{"mahasiswa lands on mahasiswa area", domain.RoleMahasiswa, "/mahasiswa"},
		{"unknown role lands on root", "staff", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authAPI := mocks.NewMockAuthAPI()
			authAPI.LoginFunc = func(ctx context.Context, creds domain.Credentials) (*domain.AuthPayload, error) {
				return &domain.AuthPayload{
					User:      domain.User{ID: 1, Name: "Tester", Role: tt.role},
					Token:     "tok-" + tt.role,
					TokenType: "Bearer",
				}, nil
			}
			svc, mr := setupSessionService(t, authAPI)

			w := httptest.NewRecorder()
			path, err := svc.Login(context.Background(), w, domain.Credentials{Login: "a@b.com", Password: "secret"})
			if err != nil {
				t.Fatalf("Login: %v", err)
			}
			if path != tt.expectedPath {
				t.Errorf("redirect = %q, want %q", path, tt.expectedPath)
			}

			c := tokenCookie(w)
			if c == nil || c.Value != "tok-"+tt.role {
				t.Fatalf("expected token cookie, got %+v", c)
			}
			if !mr.Exists("usercache:tok-" + tt.role) {
				t.Error("expected cached user for the new token")
			}
		})
	}
}

func TestSessionService_Login_FailureLeavesStoreUntouched(t *testing.T) {
	authAPI := mocks.NewMockAuthAPI()
	authAPI.LoginFunc = func(ctx context.Context, creds domain.Credentials) (*domain.AuthPayload, error) {
		return nil, &domain.APIError{StatusCode: 401, Message: "Invalid credentials"}
	}
	svc, mr := setupSessionService(t, authAPI)

	w := httptest.NewRecorder()
	_, err := svc.Login(context.Background(), w, domain.Credentials{Login: "a@b.com", Password: "wrong"})
	if err == nil {
		t.Fatal("expected login error")
	}

	apiErr, ok := domain.AsAPIError(err)
	if !ok || apiErr.Message != "Invalid credentials" {
		t.Errorf("error should propagate unchanged, got %v", err)
	}
	if tokenCookie(w) != nil {
		t.Error("failed login must not set the cookie")
	}
	if len(mr.Keys()) != 0 {
		t.Error("failed login must not write the cache")
	}
}

func TestSessionService_Register_PersistsAndRedirects(t *testing.T) {
	authAPI := mocks.NewMockAuthAPI()
	authAPI.RegisterFunc = func(ctx context.Context, data domain.Registration) (*domain.AuthPayload, error) {
		return &domain.AuthPayload{
			User:  domain.User{ID: 9, Name: data.Name, Role: data.Role, NIM: data.NIM},
			Token: "tok-reg",
		}, nil
	}
	svc, mr := setupSessionService(t, authAPI)

	w := httptest.NewRecorder()
	path, err := svc.Register(context.Background(), w, domain.Registration{
		Name: "Siti", Email: "siti@kampus.ac.id", Role: domain.RoleMahasiswa, NIM: "2110511002",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if path != "/mahasiswa" {
		t.Errorf("redirect = %q, want /mahasiswa", path)
	}
	if c := tokenCookie(w); c == nil || c.Value != "tok-reg" {
		t.Error("expected token cookie after registration")
	}
	if !mr.Exists("usercache:tok-reg") {
		t.Error("expected cached user after registration")
	}
}

func TestSessionService_Logout_ClearsEvenWhenEndpointFails(t *testing.T) {
	authAPI := mocks.NewMockAuthAPI()
	authAPI.LogoutFunc = func(ctx context.Context, token string) error {
		return errors.New("network down")
	}
	svc, mr := setupSessionService(t, authAPI)

	mr.Set("usercache:tok-1", `{"id":1,"role":"dosen"}`)

	w := httptest.NewRecorder()
	path := svc.Logout(context.Background(), w, requestWithToken("tok-1"))
	if path != "/login" {
		t.Errorf("redirect = %q, want /login", path)
	}
	if authAPI.LogoutCalls != 1 {
		t.Errorf("logout endpoint calls = %d, want 1", authAPI.LogoutCalls)
	}
	if mr.Exists("usercache:tok-1") {
		t.Error("cache entry should be cleared despite the endpoint failure")
	}
	if c := tokenCookie(w); c == nil || c.MaxAge != -1 {
		t.Error("cookie should be expired despite the endpoint failure")
	}
}

func TestSessionService_Logout_NoTokenSkipsEndpoint(t *testing.T) {
	authAPI := mocks.NewMockAuthAPI()
	svc, _ := setupSessionService(t, authAPI)

	w := httptest.NewRecorder()
	path := svc.Logout(context.Background(), w, requestWithToken(""))
	if path != "/login" {
		t.Errorf("redirect = %q, want /login", path)
	}
	if authAPI.LogoutCalls != 0 {
		t.Error("logout endpoint should not be called without a token")
	}
}

func TestSessionService_LogoutAll_CallsLogoutAllEndpoint(t *testing.T) {
	authAPI := mocks.NewMockAuthAPI()
	svc, mr := setupSessionService(t, authAPI)

	mr.Set("usercache:tok-2", `{"id":2,"role":"admin"}`)

	w := httptest.NewRecorder()
	path := svc.LogoutAll(context.Background(), w, requestWithToken("tok-2"))
	if path != "/login" {
		t.Errorf("redirect = %q, want /login", path)
	}
	if authAPI.LogoutAllCalls != 1 {
		t.Errorf("logout-all endpoint calls = %d, want 1", authAPI.LogoutAllCalls)
	}
	if authAPI.LogoutCalls != 0 {
		t.Error("plain logout endpoint should not be called")
	}
	if mr.Exists("usercache:tok-2") {
		t.Error("cache should be cleared")
	}
}

func TestSessionService_Hydrate_NoTokenIsAnonymousWithoutNetwork(t *testing.T) {
	authAPI := mocks.NewMockAuthAPI()
	svc, _ := setupSessionService(t, authAPI)

	w := httptest.NewRecorder()
	sess := svc.Hydrate(context.Background(), w, requestWithToken(""))

	if sess.Authenticated() {
		t.Error("session should be anonymous")
	}
	if sess.Loading {
		t.Error("loading flag should be cleared")
	}
	if authAPI.MeCalls != 0 {
		t.Error("no network call expected without a token")
	}
}

func TestSessionService_Hydrate_TokenWithoutCacheIsAnonymous(t *testing.T) {
	authAPI := mocks.NewMockAuthAPI()
	svc, _ := setupSessionService(t, authAPI)

	w := httptest.NewRecorder()
	sess := svc.Hydrate(context.Background(), w, requestWithToken("tok-x"))

	if sess.Authenticated() {
		t.Error("token without cached user should resolve anonymous")
	}
	if authAPI.MeCalls != 0 {
		t.Error("inconsistent store should not trigger validation")
	}
}

func TestSessionService_Hydrate_ValidTokenRefreshesCache(t *testing.T) {
	authAPI := mocks.NewMockAuthAPI()
	authAPI.MeFunc = func(ctx context.Context, token string) (*domain.User, error) {
		return &domain.User{ID: 1, Name: "Budi Baru", Role: domain.RoleDosen, NIP: "1980"}, nil
	}
	svc, mr := setupSessionService(t, authAPI)

	mr.Set("usercache:tok-1", `{"id":1,"name":"Budi Lama","role":"dosen"}`)

	w := httptest.NewRecorder()
	sess := svc.Hydrate(context.Background(), w, requestWithToken("tok-1"))

	if !sess.Authenticated() || sess.User.Name != "Budi Baru" {
		t.Fatalf("session should hold the fresh record, got %+v", sess.User)
	}
	if sess.Loading {
		t.Error("loading flag should be cleared")
	}

	raw, err := mr.Get("usercache:tok-1")
	if err != nil {
		t.Fatalf("cache entry missing after refresh: %v", err)
	}
	var cached domain.User
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		t.Fatalf("cache entry not valid JSON: %v", err)
	}
	if cached.Name != "Budi Baru" {
		t.Errorf("cache should hold the refreshed record, got %q", cached.Name)
	}
}

func TestSessionService_Hydrate_InvalidTokenClearsStore(t *testing.T) {
	authAPI := mocks.NewMockAuthAPI()
	authAPI.MeFunc = func(ctx context.Context, token string) (*domain.User, error) {
		return nil, &domain.APIError{StatusCode: 401, Message: "Unauthenticated."}
	}
	svc, mr := setupSessionService(t, authAPI)

	mr.Set("usercache:tok-stale", `{"id":1,"role":"admin"}`)

	w := httptest.NewRecorder()
	sess := svc.Hydrate(context.Background(), w, requestWithToken("tok-stale"))

	if sess.Authenticated() {
		t.Error("stale token should resolve anonymous")
	}
	if sess.Loading {
		t.Error("loading flag should be cleared")
	}
	if mr.Exists("usercache:tok-stale") {
		t.Error("stale cache entry should be deleted")
	}
	if c := tokenCookie(w); c == nil || c.MaxAge != -1 {
		t.Error("stale cookie should be expired")
	}
}
