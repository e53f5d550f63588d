package appservice

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/Azure/go-autorest/autorest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tokenSender answers every restricted-token request with a fresh token and
// records what was asked of it.
type tokenSender struct {
	requests []*http.Request
}

func (ts *tokenSender) Do(req *http.Request) (*http.Response, error) {
	ts.requests = append(ts.requests, req)
	body := fmt.Sprintf("%q", fmt.Sprintf("tok-%d", len(ts.requests)))
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    req,
	}, nil
}

func newTokenTestSession(t *testing.T, sender autorest.Sender) *Session {
	t.Helper()
	s, err := New(testSite(), &Subscription{
		SubscriptionID: "sub-1",
		Sender:         sender,
		NewClient:      func() (WebSiteClient, error) { return &fakeClient{}, nil },
	})
	require.NoError(t, err)
	return s
}

func TestRestrictedTokenRequestShape(t *testing.T) {
	t.Parallel()

	sender := &tokenSender{}
	s := newTokenTestSession(t, sender)

	token, err := s.RestrictedToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	require.Len(t, sender.requests, 1)
	req := sender.requests[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, s.ID+"/hostruntime/admin/host/token", req.URL.Path)
	assert.Equal(t, "2015-08-01", req.URL.Query().Get("api-version"))
}

func TestRestrictedTokenReusedWithinLifetime(t *testing.T) {
	t.Parallel()

	sender := &tokenSender{}
	s := newTokenTestSession(t, sender)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := base
	s.now = func() time.Time { return clock }

	token, err := s.RestrictedToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	// Still inside the four-minute window, including the boundary itself.
	for _, offset := range []time.Duration{time.Minute, 4*time.Minute - time.Second, 4 * time.Minute} {
		clock = base.Add(offset)
		token, err = s.RestrictedToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "tok-1", token)
	}
	assert.Len(t, sender.requests, 1)
}

func TestRestrictedTokenRefetchedAfterExpiry(t *testing.T) {
	t.Parallel()

	sender := &tokenSender{}
	s := newTokenTestSession(t, sender)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := base
	s.now = func() time.Time { return clock }

	token, err := s.RestrictedToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	clock = base.Add(4*time.Minute + time.Second)
	token, err = s.RestrictedToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-2", token)
	assert.Len(t, sender.requests, 2)

	// The new expiry is anchored at the refetch time, so the second token is
	// good for another full window.
	clock = clock.Add(4 * time.Minute)
	token, err = s.RestrictedToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-2", token)
	assert.Len(t, sender.requests, 2)
}

func TestRestrictedTokenFetchFailure(t *testing.T) {
	t.Parallel()

	sender := autorest.SenderFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusUnauthorized,
			Body:       io.NopCloser(strings.NewReader(`{"error":{"code":"Unauthorized","message":"bad credentials"}}`)),
			Request:    req,
		}, nil
	})
	s := newTokenTestSession(t, sender)

	_, err := s.RestrictedToken(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch site restricted token")
}
