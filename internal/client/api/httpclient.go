package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/prepshare/prepshare/internal/client/models"
	"github.com/prepshare/prepshare/internal/common"
)

// HTTPClient implements Client against the prepshare REST backend.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient builds a client for the given base URL (scheme://host[:port]).
// timeout bounds each round trip; pass 0 to rely on context deadlines only.
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: scheme and host required", baseURL)
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}, nil
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// do issues one request and decodes a JSON response into out (when non-nil).
// Every call carries a fresh correlation id; token, when non-empty, is sent
// as a bearer credential.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(nil))
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeader, uuid.NewString())
	if token != "" {
		req.Header.Set(common.AuthorizationHeader, "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// checkStatus maps non-2xx responses onto the package error taxonomy,
// preserving the server's structured {"error": "..."} message when present.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	_ = json.Unmarshal(raw, &body)
	msg := body.Error
	if msg == "" {
		msg = body.Message
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		if msg != "" {
			return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
		}
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return &StatusError{StatusCode: resp.StatusCode, Message: msg}
	}
}

func (c *HTTPClient) ListExperiences(ctx context.Context, token string) ([]models.Experience, error) {
	var list []models.Experience
	if err := c.do(ctx, http.MethodGet, "/interview/all", token, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) GetExperience(ctx context.Context, id string) (*models.Experience, error) {
	var exp models.Experience
	if err := c.do(ctx, http.MethodGet, "/interview/"+url.PathEscape(id), "", &exp); err != nil {
		return nil, err
	}
	return &exp, nil
}

func (c *HTTPClient) ToggleUpvote(ctx context.Context, token string, id string) (*models.VoteResult, error) {
	var res models.VoteResult
	path := "/interview/" + url.PathEscape(id) + "/upvote"
	if err := c.do(ctx, http.MethodPatch, path, token, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) ListScreeningQuestions(ctx context.Context, token string) ([]models.ScreeningQuestion, error) {
	var list []models.ScreeningQuestion
	if err := c.do(ctx, http.MethodGet, "/oa/all", token, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) ResolveModeration(ctx context.Context, token string, category models.Category, id string, decision models.Decision) error {
	if !category.Valid() {
		return fmt.Errorf("unknown category %q", category)
	}
	if !decision.Valid() {
		return fmt.Errorf("unknown decision %q", decision)
	}
	path := "/" + string(category) + "/" + url.PathEscape(id) + "/" + string(decision)
	return c.do(ctx, http.MethodPatch, path, token, nil)
}
