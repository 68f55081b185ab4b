package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rifkifakhrudin2004/campus-portal/domain"
)

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)

	var out domain.APIResponse[any]
	require.NoError(t, c.Get(context.Background(), "/auth/me", "abc", &out))
	assert.Equal(t, "Bearer abc", gotAuth)
	assert.Equal(t, "application/json", gotAccept)

	require.NoError(t, c.Get(context.Background(), "/auth/me", "", &out))
	assert.Empty(t, gotAuth, "no Authorization header without a token")
}

func TestClient_DecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"message":"ok","data":{"user":{"id":1,"name":"Budi","role":"dosen"},"token":"abc","token_type":"Bearer"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)

	var out domain.APIResponse[domain.AuthPayload]
	err := c.Post(context.Background(), "/auth/login", "", domain.Credentials{Login: "a@b.com", Password: "secret"}, &out)
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, "abc", out.Data.Token)
	assert.Equal(t, domain.RoleDosen, out.Data.User.Role)
}

func TestClient_ValidationErrorCarriesFieldMap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"success":false,"message":"The given data was invalid.","errors":{"nim":["The nim field is required."]}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)

	err := c.Post(context.Background(), "/auth/register", "", domain.Registration{Role: domain.RoleMahasiswa}, nil)
	require.Error(t, err)

	apiErr, ok := domain.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Equal(t, "The given data was invalid.", apiErr.Message)
	assert.Equal(t, "The nim field is required.", apiErr.FieldError("nim"))
}

func TestClient_NonJSONErrorBecomesGenericMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)

	err := c.Get(context.Background(), "/users", "abc", nil)
	require.Error(t, err)

	apiErr, ok := domain.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "request failed with status 502", apiErr.Message)
	assert.False(t, apiErr.HasFieldErrors())
}
