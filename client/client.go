package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httputil"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

// --------------------------------------------------------------------
// Public errors
// --------------------------------------------------------------------

// ErrNotAuthenticated is returned when an operation requires a signed-in
// session and none is held. Task and journal operations fall back to the
// local guest store instead of returning this.
var ErrNotAuthenticated = errors.New("not authenticated")

// ErrNoLocalStore is returned when a guest-mode operation is attempted
// without a configured local store.
var ErrNoLocalStore = errors.New("no local store configured")

// APIError carries the status and message of a failed API call.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// --------------------------------------------------------------------
// debugTransport – optional HTTP round-trip logger
// --------------------------------------------------------------------

type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}
	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}
	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client talks to a FocusFlow server. When no session is held, task and
// journal operations are served from the configured local guest store.
type Client struct {
	baseURL string
	http    *http.Client
	session *SessionManager
	local   GuestStore
}

// New constructs a Client with optional functional arguments.
func New(base string, opts ...Option) (*Client, error) {
	c := &Client{
		baseURL: base,
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if os.Getenv("FOCUSFLOW_DEBUG") == "true" || os.Getenv("DEBUG") == "true" {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.session == nil {
		c.session = NewSessionManager(nil)
	}
	return c, nil
}

// Session returns the client's session manager.
func (c *Client) Session() *SessionManager { return c.session }

// doJSON performs one API round trip. Out may be nil when the response
// body is not needed.
func (c *Client) doJSON(ctx context.Context, method, path string, in, out interface{}, authed bool) error {
	var body *bytes.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if authed {
		token, ok := c.session.Token()
		if !ok {
			return ErrNotAuthenticated
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		msg := apiErr.Message
		if msg == "" {
			msg = apiErr.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
