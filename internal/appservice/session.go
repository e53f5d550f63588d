// Package appservice implements sessions against hosted web and function
// apps. A Session is constructed once from a site descriptor and a
// subscription context and then exposes a uniform operation surface that
// dispatches to the production or slot variant of each management-API
// operation as appropriate.
package appservice

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/Azure/go-autorest/autorest"

	"github.com/khenritz/azsite/internal/appservice/models"
	"github.com/khenritz/azsite/internal/arm"
)

// Subscription supplies the credential context a Session operates under: a
// factory for the structured management client, and the authorizer/sender
// pair used to sign raw requests against the management endpoint.
//
// The factory is re-invoked on every operation rather than cached, so a
// rotated credential takes effect without rebuilding sessions.
type Subscription struct {
	// SubscriptionID is the target subscription.
	SubscriptionID string
	// DisplayName is used for diagnostics only.
	DisplayName string
	// Endpoint is the resource manager endpoint; empty selects the public
	// cloud endpoint.
	Endpoint string
	// Authorizer signs raw HTTP requests.
	Authorizer autorest.Authorizer
	// Sender transports raw HTTP requests; nil falls back to the default
	// HTTP client.
	Sender autorest.Sender
	// NewClient produces a management client scoped to the current
	// credentials.
	NewClient func() (WebSiteClient, error)
}

// serverFarmIDPattern extracts the plan's resource group and name from a
// serverFarmId resource path.
var serverFarmIDPattern = regexp.MustCompile(`/subscriptions/([^/]+)/resourceGroups/([^/]+)/providers/Microsoft\.Web/serverfarms/([^/]+)`)

// Session wraps one web app or deployment slot. Identity fields are fixed at
// construction; only the plan and restricted-token caches mutate afterwards.
type Session struct {
	ID            string
	SiteName      string
	SlotName      string
	IsSlot        bool
	FullName      string
	ResourceGroup string
	Location      string
	ServerFarmID  string
	Kind          string
	InitialState  string

	IsFunctionApp bool
	IsLinux       bool

	PlanResourceGroup string
	PlanName          string

	DefaultHostName string
	DefaultHostURL  string

	// Kudu fields stay empty when the descriptor had no repository host
	// binding; they are never re-derived.
	KuduHostName string
	KuduURL      string
	GitURL       string

	sub *Subscription
	arm *arm.Client
	now func() time.Time

	// mu guards the two caches below. It is never held across a remote
	// fetch, so concurrent callers may race into redundant fetches; every
	// fetched value is equally valid and the last write wins.
	mu          sync.Mutex
	plan        *models.AppServicePlan
	planFetched bool
	token       string
	tokenExpiry time.Time
}

// New derives a Session from a site descriptor and subscription context. It
// fails when a required descriptor field is missing or the serverFarmId does
// not parse; a session is never returned partially constructed.
func New(site models.Site, sub *Subscription) (*Session, error) {
	if sub == nil {
		return nil, errors.New("subscription context is required")
	}
	for field, value := range map[string]string{
		"id":              site.ID,
		"name":            site.Name,
		"kind":            site.Kind,
		"resourceGroup":   site.Properties.ResourceGroup,
		"serverFarmId":    site.Properties.ServerFarmID,
		"defaultHostName": site.Properties.DefaultHostName,
	} {
		if value == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingDescriptorField, field)
		}
	}

	match := serverFarmIDPattern.FindStringSubmatch(site.Properties.ServerFarmID)
	if match == nil {
		return nil, fmt.Errorf("%w: %q", ErrMalformedServerFarmID, site.Properties.ServerFarmID)
	}

	s := &Session{
		ID:                site.ID,
		ResourceGroup:     site.Properties.ResourceGroup,
		Location:          site.Location,
		ServerFarmID:      site.Properties.ServerFarmID,
		Kind:              site.Kind,
		InitialState:      site.Properties.State,
		IsFunctionApp:     strings.Contains(site.Kind, "functionapp"),
		IsLinux:           strings.Contains(strings.ToLower(site.Kind), "linux"),
		PlanResourceGroup: match[2],
		PlanName:          match[3],
		DefaultHostName:   site.Properties.DefaultHostName,
		DefaultHostURL:    "https://" + site.Properties.DefaultHostName,
		sub:               sub,
		arm:               arm.NewClient(sub.Endpoint, sub.Authorizer, sub.Sender),
		now:               time.Now,
	}

	// A slot descriptor carries its name as "site/slot".
	s.SiteName, s.SlotName, s.IsSlot = splitSiteName(site.Name)
	s.FullName = s.SiteName
	if s.IsSlot {
		s.FullName = s.SiteName + "-" + s.SlotName
	}

	// The repository host binding, when present, locates the Kudu endpoint.
	for _, state := range site.Properties.HostNameSslStates {
		if strings.EqualFold(state.HostType, models.HostTypeRepository) {
			s.KuduHostName = state.Name
			s.KuduURL = "https://" + state.Name
			s.GitURL = state.Name + ":443/" + s.SiteName + ".git"
			break
		}
	}

	return s, nil
}

func splitSiteName(name string) (site, slot string, isSlot bool) {
	parts := strings.SplitN(name, "/", 2)
	if len(parts) == 2 && parts[1] != "" {
		return parts[0], parts[1], true
	}
	return parts[0], "", false
}

// Subscription returns the credential context the session was built with.
func (s *Session) Subscription() *Subscription {
	return s.sub
}

// client obtains a fresh management client from the subscription context.
func (s *Session) client() (WebSiteClient, error) {
	if s.sub.NewClient == nil {
		return nil, errors.New("subscription context has no management client factory")
	}
	return s.sub.NewClient()
}
