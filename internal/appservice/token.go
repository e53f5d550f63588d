package appservice

import (
	"context"
	"fmt"
	"time"
)

const restrictedTokenAPIVersion = "2015-08-01"

// restrictedTokenLifetime is how long a fetched token is reused. The
// platform issues tokens valid for five minutes; one minute of safety margin
// is subtracted so a token is never presented near its real expiry.
const restrictedTokenLifetime = 4 * time.Minute

// RestrictedToken returns the app-scoped token the Linux consumption
// management sidecar requires, fetching a fresh one when none is cached or
// the cached one has expired. Concurrent callers inside the refresh window
// may each fetch; the fetch is side-effect free and the last write wins.
func (s *Session) RestrictedToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	token, expiry := s.token, s.tokenExpiry
	s.mu.Unlock()

	if token != "" && !s.now().After(expiry) {
		return token, nil
	}

	fetchedAt := s.now()
	var fresh string
	if err := s.arm.PostJSON(ctx, s.ID+"/hostruntime/admin/host/token", restrictedTokenAPIVersion, nil, &fresh); err != nil {
		return "", fmt.Errorf("failed to fetch site restricted token: %w", err)
	}

	s.mu.Lock()
	s.token = fresh
	s.tokenExpiry = fetchedAt.Add(restrictedTokenLifetime)
	s.mu.Unlock()
	return fresh, nil
}
