package appservice

import (
	"context"

	"github.com/khenritz/azsite/internal/kudu"
)

// KuduClient builds a client for the site's Kudu (SCM) endpoint. It fails
// with ErrNoRepositoryHostName when the descriptor carried no repository
// host binding.
//
// Linux consumption apps additionally need the short-lived restricted token
// on every sidecar request; for those the returned client stamps each
// request through the session's token cache, refetching transparently on
// expiry.
func (s *Session) KuduClient(ctx context.Context) (*kudu.Client, error) {
	if s.KuduHostName == "" {
		return nil, ErrNoRepositoryHostName
	}

	var opts []kudu.Option
	if s.IsLinux {
		consumption, err := s.IsConsumption(ctx)
		if err != nil {
			return nil, err
		}
		if consumption {
			opts = append(opts, kudu.WithTokenProvider(s.RestrictedToken))
		}
	}

	return kudu.NewClient(s.KuduURL, s.sub.Authorizer, s.sub.Sender, opts...), nil
}
