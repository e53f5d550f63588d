// Package kudu is a client for the per-app Kudu (SCM) sidecar service,
// reachable at a site's repository host name. It covers the deployment and
// admin operations the main management API does not.
package kudu

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Azure/go-autorest/autorest"
	"go.uber.org/zap"
)

// RestrictedTokenHeader is the per-request header the management sidecar of
// Linux consumption apps requires.
const RestrictedTokenHeader = "x-ms-site-restricted-token"

// TokenProvider supplies the current restricted token, fetching a fresh one
// when the cached one has expired.
type TokenProvider func(ctx context.Context) (string, error)

// Client issues authenticated requests against one site's Kudu endpoint.
type Client struct {
	baseURL    string
	authorizer autorest.Authorizer
	sender     autorest.Sender
}

// Option configures a Client.
type Option func(*Client)

// WithTokenProvider decorates every outbound request with the restricted
// token header. A request is never sent without the header: when the
// provider fails, the request is aborted with the provider's error.
func WithTokenProvider(provider TokenProvider) Option {
	return func(c *Client) {
		c.sender = restrictedTokenSender(c.sender, provider)
	}
}

// NewClient creates a Client for the given Kudu base URL. A nil sender falls
// back to http.DefaultClient.
func NewClient(baseURL string, authorizer autorest.Authorizer, sender autorest.Sender, opts ...Option) *Client {
	if sender == nil {
		sender = http.DefaultClient
	}
	c := &Client{baseURL: baseURL, authorizer: authorizer, sender: sender}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// restrictedTokenSender wraps a sender so every request carries the current
// restricted token.
func restrictedTokenSender(inner autorest.Sender, provider TokenProvider) autorest.Sender {
	return autorest.SenderFunc(func(req *http.Request) (*http.Response, error) {
		token, err := provider(req.Context())
		if err != nil {
			return nil, fmt.Errorf("failed to obtain site restricted token: %w", err)
		}
		req.Header.Set(RestrictedTokenHeader, token)
		return inner.Do(req)
	})
}

// Deployment is one entry of the Kudu deployment log.
type Deployment struct {
	ID         string     `json:"id"`
	Status     int        `json:"status"`
	Message    string     `json:"message,omitempty"`
	Author     string     `json:"author,omitempty"`
	Deployer   string     `json:"deployer,omitempty"`
	Active     bool       `json:"active"`
	IsTemp     bool       `json:"is_temp,omitempty"`
	ReceivedAt *time.Time `json:"received_time,omitempty"`
	EndAt      *time.Time `json:"end_time,omitempty"`
}

// CommandResult is the outcome of a command executed on the app host.
type CommandResult struct {
	Output   string `json:"Output"`
	Error    string `json:"Error"`
	ExitCode int    `json:"ExitCode"`
}

// ListDeployments fetches the deployment history.
func (c *Client) ListDeployments(ctx context.Context) ([]Deployment, error) {
	var deployments []Deployment
	if err := c.do(ctx, http.MethodGet, "/api/deployments", nil, &deployments); err != nil {
		return nil, err
	}
	return deployments, nil
}

// GetDeployment fetches one deployment by id.
func (c *Client) GetDeployment(ctx context.Context, id string) (Deployment, error) {
	var deployment Deployment
	if err := c.do(ctx, http.MethodGet, "/api/deployments/"+id, nil, &deployment); err != nil {
		return Deployment{}, err
	}
	return deployment, nil
}

// RunCommand executes a shell command in the given directory on the app host.
func (c *Client) RunCommand(ctx context.Context, command, dir string) (CommandResult, error) {
	body := map[string]string{"command": command, "dir": dir}
	var result CommandResult
	if err := c.do(ctx, http.MethodPost, "/api/command", body, &result); err != nil {
		return CommandResult{}, err
	}
	return result, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	decorators := []autorest.PrepareDecorator{
		autorest.WithBaseURL(c.baseURL),
		autorest.WithPath(path),
		autorest.WithMethod(method),
	}
	if body != nil {
		decorators = append(decorators,
			autorest.AsContentType("application/json; charset=utf-8"),
			autorest.WithJSON(body))
	}
	if c.authorizer != nil {
		decorators = append(decorators, c.authorizer.WithAuthorization())
	}

	req, err := autorest.CreatePreparer(decorators...).Prepare((&http.Request{}).WithContext(ctx))
	if err != nil {
		return err
	}

	zap.L().Debug("kudu request", zap.String("method", method), zap.String("path", path))

	resp, err := c.sender.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("kudu %s %s failed with status %d: %s", method, path, resp.StatusCode, string(raw))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
