package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fahadsheikh/rescuepoint/internal/client/models"
	"github.com/fahadsheikh/rescuepoint/internal/common"
)

func TestHTTPClient_LoginSuccess(t *testing.T) {
	var got authRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, pathLogin, r.URL.Path)
		require.Equal(t, "install-1", r.Header.Get(common.ClientIDHeaderName))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		json.NewEncoder(w).Encode(authResponse{
			AccessToken: "tok-1",
			User:        models.User{ID: "u1", Phone: "0300123"},
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "install-1", nil)
	token, user, err := c.Login(context.Background(), "0300123", "secret")
	require.NoError(t, err)
	require.Equal(t, "tok-1", token)
	require.Equal(t, "u1", user.ID)

	// identifier without '@' goes out as phone
	require.Equal(t, "0300123", got.Phone)
	require.Empty(t, got.Email)
	require.Equal(t, "secret", got.Password)
}

func TestHTTPClient_LoginEmailIdentifier(t *testing.T) {
	var got authRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(authResponse{AccessToken: "t", User: models.User{ID: "u"}})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "", nil)
	_, _, err := c.Login(context.Background(), "ali@example.com", "pw")
	require.NoError(t, err)
	require.Equal(t, "ali@example.com", got.Email)
	require.Empty(t, got.Phone)
}

func TestHTTPClient_LoginRejectedUsesServerReason(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "wrong password"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "", nil)
	_, _, err := c.Login(context.Background(), "0300123", "bad")

	var ae *AuthError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, "wrong password", ae.Reason)
}

func TestHTTPClient_LoginMalformedErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("<html>oops</html>"))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "", nil)
	_, _, err := c.Login(context.Background(), "0300123", "bad")

	var ae *AuthError
	require.ErrorAs(t, err, &ae)
	require.Equal(t, genericAuthReason, ae.Reason)
}

func TestHTTPClient_RegisterSendsProfile(t *testing.T) {
	var got authRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, pathRegister, r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(authResponse{AccessToken: "t", User: models.User{ID: "u"}})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "", nil)
	_, _, err := c.Register(context.Background(), Registration{Name: "Sara", Email: "s@x.pk"}, "pw")
	require.NoError(t, err)
	require.Equal(t, "Sara", got.Name)
	require.Equal(t, "s@x.pk", got.Email)
}

func TestHTTPClient_MeValid(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, pathMe, r.URL.Path)
		require.Equal(t, "Bearer tok-9", r.Header.Get(common.AuthHeaderName))
		json.NewEncoder(w).Encode(models.User{ID: "u9"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "", nil)
	u, err := c.Me(context.Background(), "tok-9")
	require.NoError(t, err)
	require.Equal(t, "u9", u.ID)
}

func TestHTTPClient_MeFailuresAreUniform(t *testing.T) {
	for _, status := range []int{401, 403, 500, 503} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		c := NewHTTPClient(srv.URL, "", nil)
		_, err := c.Me(context.Background(), "tok")
		require.ErrorIs(t, err, common.ErrUnauthorized, "status %d", status)
		srv.Close()
	}
}

func TestHTTPClient_MeNetworkErrorIsUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := NewHTTPClient(srv.URL, "", nil)
	_, err := c.Me(context.Background(), "tok")
	require.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestHTTPClient_NearbyQueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, pathNearby, r.URL.Path)
		q := r.URL.Query()
		require.Equal(t, "24.8607", q.Get("lat"))
		require.Equal(t, "67.0011", q.Get("lng"))
		require.Equal(t, "5", q.Get("radius_km"))
		require.Equal(t, "medical", q.Get("service_type"))

		json.NewEncoder(w).Encode(nearbyResponse{Vendors: []vendorRecord{
			{ID: "v1", Name: "City Hospital", Category: "medical", Latitude: 24.86, Longitude: 67.0},
		}})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "", nil)
	vendors, err := c.Nearby(context.Background(), VendorQuery{
		Position: models.Position{Latitude: 24.8607, Longitude: 67.0011},
		RadiusKm: 5,
		Category: models.CategoryMedical,
	})
	require.NoError(t, err)
	require.Len(t, vendors, 1)
	require.Equal(t, "City Hospital", vendors[0].Name)
	require.Equal(t, models.CategoryMedical, vendors[0].Category)
	require.InDelta(t, 24.86, vendors[0].Location.Latitude, 1e-9)
}

func TestHTTPClient_NearbyAllCategoryOmitsParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.URL.Query()["service_type"]
		require.False(t, present)
		json.NewEncoder(w).Encode(nearbyResponse{})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "", nil)
	_, err := c.Nearby(context.Background(), VendorQuery{RadiusKm: 5})
	require.NoError(t, err)
}

func TestHTTPClient_NearbyServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "", nil)
	_, err := c.Nearby(context.Background(), VendorQuery{RadiusKm: 5})
	require.Error(t, err)
	require.False(t, errors.Is(err, common.ErrUnauthorized))
}
