package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/louisbranch/reclaim.space/internal/platform/timeouts"
)

// DefaultTimeout bounds every backend call. There is no retry anywhere in
// this client: each operation is a single attempt and recovery is always
// user-driven resubmission.
const DefaultTimeout = timeouts.Backend

const maxErrorBodyBytes = 4096

// Client is the HTTP implementation of the backend contract.
type Client struct {
	baseURL string
	hc      *http.Client
}

var _ AuthClient = (*Client)(nil)
var _ ItemClient = (*Client)(nil)
var _ MessageClient = (*Client)(nil)

// NewClient builds a backend client for the given base URL.
//
// A non-positive timeout falls back to DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("backend base URL is required")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		hc: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
	}, nil
}

// Login exchanges identifier/password for a credential and subject.
func (c *Client) Login(ctx context.Context, identifier, password string) (Session, error) {
	payload := struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}{Identifier: identifier, Password: password}

	var session Session
	if err := c.do(ctx, http.MethodPost, "/auth", "", payload, &session); err != nil {
		return Session{}, err
	}
	if strings.TrimSpace(session.Credential) == "" {
		return Session{}, fmt.Errorf("auth response is missing a credential")
	}
	return session, nil
}

// Register creates an account and returns the resulting session.
func (c *Client) Register(ctx context.Context, username, email, password string) (Session, error) {
	payload := struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Username: username, Email: email, Password: password}

	var session Session
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", payload, &session); err != nil {
		return Session{}, err
	}
	if strings.TrimSpace(session.Credential) == "" {
		return Session{}, fmt.Errorf("register response is missing a credential")
	}
	return session, nil
}

// Profile resolves the subject behind a credential.
func (c *Client) Profile(ctx context.Context, credential string) (Subject, error) {
	var subject Subject
	if err := c.do(ctx, http.MethodGet, "/profile", credential, nil, &subject); err != nil {
		return Subject{}, err
	}
	return subject, nil
}

// ListOwned returns the records owned by the given subject.
func (c *Client) ListOwned(ctx context.Context, credential string, ownerID int64) ([]Item, error) {
	path := "/items?owner=" + url.QueryEscape(strconv.FormatInt(ownerID, 10))
	var items []Item
	if err := c.do(ctx, http.MethodGet, path, credential, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Create submits a new record for the owning subject.
func (c *Client) Create(ctx context.Context, credential string, ownerID int64, draft ItemDraft) (Item, error) {
	payload := struct {
		ItemDraft
		OwnerSubjectID int64 `json:"ownerSubjectId"`
	}{ItemDraft: draft, OwnerSubjectID: ownerID}

	var item Item
	if err := c.do(ctx, http.MethodPost, "/items", credential, payload, &item); err != nil {
		return Item{}, err
	}
	if strings.TrimSpace(item.Locator) == "" {
		return Item{}, fmt.Errorf("create item response is missing a public locator")
	}
	return item, nil
}

// GetByLocator resolves a public locator to its record view.
func (c *Client) GetByLocator(ctx context.Context, locator string) (Item, error) {
	locator = strings.TrimSpace(locator)
	if locator == "" {
		return Item{}, fmt.Errorf("public locator is required")
	}
	var item Item
	if err := c.do(ctx, http.MethodGet, "/items/"+url.PathEscape(locator), "", nil, &item); err != nil {
		return Item{}, err
	}
	return item, nil
}

// Relay forwards a contact message for the record behind the locator.
func (c *Client) Relay(ctx context.Context, msg Message) error {
	return c.do(ctx, http.MethodPost, "/messages/by-locator", "", msg, nil)
}

// do performs one backend round trip with typed encode/decode.
//
// credential, when non-empty, rides as a bearer header. A nil out discards
// the response body; a non-2xx status decodes the backend error envelope
// into *Error; transport failures wrap ErrUnreachable.
func (c *Client) do(ctx context.Context, method, path, credential string, in, out any) error {
	var body io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if credential = strings.TrimSpace(credential); credential != "" {
		req.Header.Set("Authorization", "Bearer "+credential)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrUnreachable, method, path, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// decodeError reads the backend error envelope {"error":{"message":...}}.
// An undecodable body still yields a typed status error.
func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	message := ""
	if json.Unmarshal(raw, &envelope) == nil {
		message = strings.TrimSpace(envelope.Error.Message)
	}
	return &Error{StatusCode: resp.StatusCode, Message: message}
}
