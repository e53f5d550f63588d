// Package arm is a thin authenticated JSON client for the Azure Resource
// Manager endpoint. It exists for operations the structured management
// client does not expose; callers address resources by their full ARM
// resource-ID path and pin an api-version per call.
package arm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/Azure/go-autorest/autorest"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultEndpoint is the public-cloud resource manager endpoint.
const DefaultEndpoint = "https://management.azure.com"

// Client issues signed JSON requests against a resource manager endpoint.
type Client struct {
	baseURL    string
	authorizer autorest.Authorizer
	sender     autorest.Sender
}

// NewClient creates a Client for the given endpoint. A nil sender falls back
// to http.DefaultClient.
func NewClient(baseURL string, authorizer autorest.Authorizer, sender autorest.Sender) *Client {
	if baseURL == "" {
		baseURL = DefaultEndpoint
	}
	if sender == nil {
		sender = http.DefaultClient
	}
	return &Client{baseURL: baseURL, authorizer: authorizer, sender: sender}
}

// GetJSON issues a GET against the resource path and decodes the body into out.
func (c *Client) GetJSON(ctx context.Context, path, apiVersion string, out any) error {
	return c.do(ctx, http.MethodGet, path, apiVersion, nil, nil, out)
}

// PostJSON issues a POST against the resource path. Both body and out may be
// nil.
func (c *Client) PostJSON(ctx context.Context, path, apiVersion string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, apiVersion, nil, body, out)
}

// PutJSON issues a PUT against the resource path and decodes the response
// into out when out is non-nil.
func (c *Client) PutJSON(ctx context.Context, path, apiVersion string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, apiVersion, nil, body, out)
}

// GetJSONByURL issues a GET against an absolute URL, as returned in paging
// links; the URL already carries its own api-version.
func (c *Client) GetJSONByURL(ctx context.Context, rawURL string, out any) error {
	decorators := []autorest.PrepareDecorator{
		autorest.WithBaseURL(rawURL),
		autorest.WithMethod(http.MethodGet),
		autorest.WithHeader("x-ms-client-request-id", uuid.New().String()),
	}
	if c.authorizer != nil {
		decorators = append(decorators, c.authorizer.WithAuthorization())
	}
	req, err := autorest.CreatePreparer(decorators...).Prepare((&http.Request{}).WithContext(ctx))
	if err != nil {
		return err
	}
	resp, err := autorest.SendWithSender(c.sender, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newRequestError(http.MethodGet, rawURL, resp)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// Delete issues a DELETE against the resource path with optional extra query
// parameters.
func (c *Client) Delete(ctx context.Context, path, apiVersion string, query map[string]string) error {
	return c.do(ctx, http.MethodDelete, path, apiVersion, query, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path, apiVersion string, query map[string]string, body, out any) error {
	params := map[string]interface{}{"api-version": apiVersion}
	for k, v := range query {
		params[k] = v
	}

	requestID := uuid.New().String()
	decorators := []autorest.PrepareDecorator{
		autorest.WithBaseURL(c.baseURL),
		autorest.WithPath(path),
		autorest.WithQueryParameters(params),
		autorest.WithHeader("x-ms-client-request-id", requestID),
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

	zap.L().Debug("arm request",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID))
	start := time.Now()

	resp, err := autorest.SendWithSender(c.sender, req)
	if err != nil {
		zap.L().Error("arm request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	zap.L().Debug("arm response",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newRequestError(method, path, resp)
	}

	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// newRequestError reads the response body and extracts the ARM error
// envelope when one is present.
func newRequestError(method, path string, resp *http.Response) *RequestError {
	reqErr := &RequestError{Method: method, Path: path, StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 16*1024))
	if err != nil {
		return reqErr
	}

	var envelope armErrorEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		reqErr.Message = string(raw)
		return reqErr
	}
	if envelope.Error != nil {
		reqErr.Code = envelope.Error.Code
		reqErr.Message = envelope.Error.Message
	} else {
		reqErr.Code = envelope.Code
		reqErr.Message = envelope.Message
	}
	return reqErr
}
