package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/fahadsheikh/rescuepoint/internal/client/models"
	"github.com/fahadsheikh/rescuepoint/internal/common"
)

const (
	pathRegister = "/api/auth/register"
	pathLogin    = "/api/auth/login"
	pathMe       = "/api/auth/me"
	pathNearby   = "/api/vendors/nearby"
)

// HTTPClient talks JSON over HTTP to the RescuePoint backend.
type HTTPClient struct {
	baseURL  string
	clientID string
	httpc    *http.Client
}

// NewHTTPClient builds a client for the given base URL. clientID is sent on
// every request as an install identifier; httpc may be nil for defaults
// (timeouts are the transport's concern, not set here).
func NewHTTPClient(baseURL, clientID string, httpc *http.Client) *HTTPClient {
	if httpc == nil {
		httpc = &http.Client{}
	}
	return &HTTPClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		clientID: clientID,
		httpc:    httpc,
	}
}

type authRequest struct {
	Name     string `json:"name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

type authResponse struct {
	AccessToken string      `json:"access_token"`
	User        models.User `json:"user"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var buf *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		buf = bytes.NewReader(b)
	} else {
		buf = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.clientID != "" {
		req.Header.Set(common.ClientIDHeaderName, c.clientID)
	}
	return req, nil
}

// authReason extracts a displayable failure reason from an auth response
// body, falling back to a generic message when the body is malformed.
func authReason(body []byte) string {
	var er errorResponse
	if err := json.Unmarshal(body, &er); err == nil {
		if er.Error != "" {
			return er.Error
		}
		if er.Message != "" {
			return er.Message
		}
	}
	return genericAuthReason
}

func (c *HTTPClient) doAuth(ctx context.Context, path string, reqBody authRequest) (string, *models.User, error) {
	req, err := c.newRequest(ctx, http.MethodPost, path, reqBody)
	if err != nil {
		return "", nil, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var body bytes.Buffer
		_, _ = body.ReadFrom(resp.Body)
		return "", nil, &AuthError{Reason: authReason(body.Bytes())}
	}

	var ar authResponse
	if err := json.NewDecoder(resp.Body).Decode(&ar); err != nil || ar.AccessToken == "" {
		return "", nil, &AuthError{Reason: genericAuthReason}
	}
	return ar.AccessToken, &ar.User, nil
}

// Register creates an account and returns the issued token and profile.
func (c *HTTPClient) Register(ctx context.Context, reg Registration, password string) (string, *models.User, error) {
	return c.doAuth(ctx, pathRegister, authRequest{
		Name:     reg.Name,
		Phone:    reg.Phone,
		Email:    reg.Email,
		Password: password,
	})
}

// Login authenticates with a phone number or an email address; anything
// containing '@' is treated as an email.
func (c *HTTPClient) Login(ctx context.Context, identifier, password string) (string, *models.User, error) {
	body := authRequest{Password: password}
	if strings.Contains(identifier, "@") {
		body.Email = identifier
	} else {
		body.Phone = identifier
	}
	return c.doAuth(ctx, pathLogin, body)
}

// Me checks token against the session endpoint. Every failure mode — network
// error, any non-2xx status, an unreadable body — is reported identically as
// common.ErrUnauthorized.
func (c *HTTPClient) Me(ctx context.Context, token string) (*models.User, error) {
	req, err := c.newRequest(ctx, http.MethodGet, pathMe, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(common.AuthHeaderName, "Bearer "+token)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrUnauthorized, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", common.ErrUnauthorized, resp.StatusCode)
	}

	var u models.User
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrUnauthorized, err)
	}
	return &u, nil
}

type nearbyResponse struct {
	Vendors []vendorRecord `json:"vendors"`
}

type vendorRecord struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"service_type"`
	Longitude float64 `json:"lng"`
	Latitude  float64 `json:"lat"`
	Address   string  `json:"address"`
	Phone     string  `json:"phone"`
}

// Nearby fetches vendors around the query position.
func (c *HTTPClient) Nearby(ctx context.Context, q VendorQuery) ([]models.Vendor, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(q.Position.Latitude, 'f', -1, 64))
	params.Set("lng", strconv.FormatFloat(q.Position.Longitude, 'f', -1, 64))
	params.Set("radius_km", strconv.FormatFloat(q.RadiusKm, 'f', -1, 64))
	if q.Category != models.CategoryAll {
		params.Set("service_type", string(q.Category))
	}

	req, err := c.newRequest(ctx, http.MethodGet, pathNearby+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("vendor query failed: status %d", resp.StatusCode)
	}

	var nr nearbyResponse
	if err := json.NewDecoder(resp.Body).Decode(&nr); err != nil {
		return nil, fmt.Errorf("vendor query failed: %w", err)
	}

	vendors := make([]models.Vendor, 0, len(nr.Vendors))
	for _, v := range nr.Vendors {
		vendors = append(vendors, models.Vendor{
			ID:       v.ID,
			Name:     v.Name,
			Category: models.Category(v.Category),
			Location: models.Position{Latitude: v.Latitude, Longitude: v.Longitude},
			Address:  v.Address,
			Phone:    v.Phone,
		})
	}
	return vendors, nil
}
