package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vloureiro/garagem/internal/checklist"
)

const (
	defaultAPIBind   = "127.0.0.1:8000"
	defaultUserAgent = "garagem/0.1"
	requestTimeout   = 10 * time.Second
)

// Client talks to the workshop HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

// Ensure Client implements Service at compile time.
var _ Service = (*Client)(nil)

// NewClient builds a Client using the provided apiBind host:port value.
func NewClient(apiBind string) (*Client, error) {
	base, err := parseBaseURL(apiBind)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchByID implements Service.
func (c *Client) FetchByID(ctx context.Context, id int64) (*checklist.Checklist, error) {
	return c.roundTrip(ctx, http.MethodGet, fmt.Sprintf("/api/checklists/%d", id), id, nil)
}

// Create implements Service.
func (c *Client) Create(ctx context.Context, req CreateRequest) (*checklist.Checklist, error) {
	return c.roundTrip(ctx, http.MethodPost, "/api/checklists", 0, req)
}

// AppendItem implements Service.
func (c *Client) AppendItem(ctx context.Context, id int64, draft ItemDraft) (*checklist.Checklist, error) {
	return c.roundTrip(ctx, http.MethodPost, fmt.Sprintf("/api/checklists/%d/itens", id), id, draft)
}

// UpdateItem implements Service.
func (c *Client) UpdateItem(ctx context.Context, id int64, index int, patch ItemPatch) (*checklist.Checklist, error) {
	return c.roundTrip(ctx, http.MethodPut, fmt.Sprintf("/api/checklists/%d/itens/%d", id, index), id, patch)
}

// UpdateStatus implements Service.
func (c *Client) UpdateStatus(ctx context.Context, id int64, patch StatusPatch) (*checklist.Checklist, error) {
	return c.roundTrip(ctx, http.MethodPut, fmt.Sprintf("/api/checklists/%d/status", id), id, patch)
}

// roundTrip executes one API call and maps failures onto the error taxonomy:
// transport failures become NetworkError, 404 NotFoundError, other 4xx
// ValidationError, 5xx ServerError.
func (c *Client) roundTrip(ctx context.Context, method, path string, id int64, body any) (*checklist.Checklist, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: fmt.Sprintf("%s %s", method, path), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, &NotFoundError{ID: id}
	case resp.StatusCode >= 500:
		return nil, &ServerError{Op: fmt.Sprintf("%s %s", method, path), Status: resp.StatusCode}
	case resp.StatusCode >= 400:
		return nil, &ValidationError{Reason: decodeAPIError(resp)}
	}

	var payload checklist.Checklist
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &payload, nil
}

// decodeAPIError extracts the server's detail message when present.
func decodeAPIError(resp *http.Response) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Detail != "" {
		return body.Detail
	}
	return fmt.Sprintf("requisição rejeitada: status %d", resp.StatusCode)
}

func parseBaseURL(apiBind string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBind)
	if trimmed == "" {
		trimmed = defaultAPIBind
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_bind %q: %w", apiBind, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
