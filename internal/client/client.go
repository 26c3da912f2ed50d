// Package client provides an HTTP client for the field-sales visit API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/maparra/rutero/internal/evidence"
	"github.com/maparra/rutero/internal/logging"
	"github.com/maparra/rutero/internal/visit"
)

// Client is an HTTP client for the visit API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a new API client.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{
			Timeout:   30 * time.Second,
			Transport: &logging.Transport{},
		},
	}
}

// RouteQuery selects a seller's route for one day. Lat/Lon, when set, let
// the backend compute the first stop's cue from the seller's position.
type RouteQuery struct {
	Date     string // YYYY-MM-DD
	SellerID string
	Lat      *float64
	Lon      *float64
}

// Route returns the seller's ordered stop list for the given day.
func (c *Client) Route(ctx context.Context, q RouteQuery) ([]visit.RouteStop, error) {
	path := fmt.Sprintf("/api/visits?fecha=%s&vendedor=%s", q.Date, q.SellerID)
	path += geoParams(q.Lat, q.Lon)

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	var stops []visit.RouteStop
	if err := c.do(req, &stops); err != nil {
		return nil, err
	}
	return stops, nil
}

// Visit returns the full detail for one visit, including prior-visit
// notes and preferred products.
func (c *Client) Visit(ctx context.Context, id string, lat, lon *float64) (*visit.Detail, error) {
	path := "/api/visits/" + id
	if g := geoParams(lat, lon); g != "" {
		path += "?" + g[1:]
	}

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	var d visit.Detail
	if err := c.do(req, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Register submits an outcome registration for a visit as a multipart
// form and returns the fresh authoritative detail. The evidence part is
// omitted entirely when the registration carries no file. Each call sends
// a fresh idempotency key so a manual retry after an ambiguous failure
// cannot double-register.
func (c *Client) Register(ctx context.Context, id string, reg visit.Registration) (*visit.Detail, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	fields := map[string]string{
		"detail":           reg.Detail,
		"cliente_contacto": reg.Contact,
		"inicio":           reg.Start,
		"fin":              reg.End,
		"estado":           string(reg.Target),
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("writing form field %s: %w", name, err)
		}
	}

	if reg.EvidencePath != "" {
		if err := evidence.Attach(w, "evidencia", reg.EvidencePath); err != nil {
			return nil, err
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalizing form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "PUT", c.baseURL+"/api/visits/"+id+"/registro", &body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("X-Idempotency-Key", uuid.NewString())

	var d visit.Detail
	if err := c.do(req, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// geoParams renders optional coordinates as query parameters.
func geoParams(lat, lon *float64) string {
	if lat == nil || lon == nil {
		return ""
	}
	return "&lat=" + strconv.FormatFloat(*lat, 'f', -1, 64) +
		"&lon=" + strconv.FormatFloat(*lon, 'f', -1, 64)
}

// do executes an HTTP request with the auth header and maps the outcome:
// transport failure to ConnectivityError, non-2xx to RemoteError, and a
// 2xx body into result.
func (c *Client) do(req *http.Request, result interface{}) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &ConnectivityError{Err: err}
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			fmt.Printf("warning: closing response body: %v\n", cerr)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RemoteError{
			StatusCode: resp.StatusCode,
			Message:    rejectionMessage(resp.StatusCode, respBody),
		}
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

// rejectionMessage extracts the server-supplied message from an error
// response: the {"error": ...} convention first, then the raw body, then
// the status text.
func rejectionMessage(status int, body []byte) string {
	var errResp struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
		return errResp.Error
	}
	if msg := string(bytes.TrimSpace(body)); msg != "" {
		return msg
	}
	return http.StatusText(status)
}
