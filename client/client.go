package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
	"github.com/velostats/raceadmin/auth"
	"github.com/velostats/raceadmin/auth/store"
	"github.com/velostats/raceadmin/client/transport"
)

// Client is the single entry point for backend calls. Every request goes
// through the auth round tripper; each service decodes its own response
// envelope because total-count field names vary per resource.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      store.Store
	logger     zerolog.Logger
	expired    func()

	Races  *RaceService
	Riders *RiderService
	Teams  *TeamService
	Stages *StageService
	Admin  *AdminService
}

func New(baseURL string, options ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("client: base URL is required")
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		store:   store.NewMemory(),
		logger:  zerolog.Nop(),
	}
	for _, opt := range options {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	base := c.httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.httpClient.Transport = transport.New(
		transport.WithStore(c.store),
		transport.WithTransport(base),
		transport.WithSessionExpired(c.expired),
		transport.WithLogger(c.logger),
	)

	c.Races = &RaceService{client: c}
	c.Riders = &RiderService{client: c}
	c.Teams = &TeamService{client: c}
	c.Stages = &StageService{client: c}
	c.Admin = &AdminService{client: c}
	return c, nil
}

// Store returns the credential store backing this client.
func (c *Client) Store() store.Store {
	return c.store
}

// Guard returns an access guard over this client's credential store.
func (c *Client) Guard() *auth.Guard {
	return auth.NewGuard(c.store)
}

// Request performs one backend call. body may be nil, a JSON-serializable
// value, or a *Multipart payload; query keys are appended as a flat query
// string. On success the raw response body is returned for the caller to
// decode; on failure the error is always a *Error.
func (c *Client) Request(ctx context.Context, method, path string, body any, query url.Values) (json.RawMessage, error) {
	var reader io.Reader
	contentType := ""
	switch payload := body.(type) {
	case nil:
	case *Multipart:
		var err error
		if reader, contentType, err = payload.Encode(); err != nil {
			return nil, &Error{Message: err.Error()}
		}
	default:
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, &Error{Message: err.Error()}
		}
		reader = bytes.NewReader(data)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, strings.ToUpper(method), endpoint, reader)
	if err != nil {
		return nil, &Error{Message: err.Error()}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Str("path", path).Err(err).Msg("request failed")
		return nil, normalizeTransport(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, normalizeTransport(err)
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return data, nil
	}
	c.logger.Debug().Str("path", path).Int("status", resp.StatusCode).Msg("request rejected")
	return nil, normalizeFailure(path, resp.StatusCode, data)
}
