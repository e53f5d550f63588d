package cmd

import (
	"context"
	"fmt"

	"github.com/Azure/go-autorest/autorest/azure/auth"

	"github.com/khenritz/azsite/internal/appservice"
	"github.com/khenritz/azsite/internal/appservice/models"
	"github.com/khenritz/azsite/internal/arm"
	"github.com/khenritz/azsite/internal/cache"
	"github.com/khenritz/azsite/internal/config"
)

// target is one fully resolved site address.
type target struct {
	subscription  string
	resourceGroup string
	site          string
	slot          string
}

// armName is the site name as ARM spells it: "site" or "site/slot".
func (t target) armName() string {
	if t.slot != "" {
		return t.site + "/" + t.slot
	}
	return t.site
}

// resolveTarget combines persistent flags, an optional alias argument, and
// config defaults into a target. Flags win over the alias.
func resolveTarget(cfg *config.Config, args []string) (target, error) {
	t := target{
		subscription:  flagSubscription,
		resourceGroup: flagResourceGroup,
		site:          flagSite,
		slot:          flagSlot,
	}

	if len(args) > 0 {
		alias, ok := cfg.Aliases[args[0]]
		if !ok {
			return target{}, fmt.Errorf("unknown alias %q", args[0])
		}
		if t.subscription == "" {
			t.subscription = alias.Subscription
		}
		if t.resourceGroup == "" {
			t.resourceGroup = alias.ResourceGroup
		}
		if t.site == "" {
			t.site = alias.Site
		}
		if t.slot == "" {
			t.slot = alias.Slot
		}
	}

	if t.subscription == "" {
		t.subscription = cfg.DefaultSubscription
	}
	if t.subscription == "" {
		return target{}, fmt.Errorf("no subscription: pass --subscription or set default_subscription in the config")
	}
	if t.resourceGroup == "" || t.site == "" {
		return target{}, fmt.Errorf("a resource group and site are required: pass --resource-group and --site or use an alias")
	}

	return t, nil
}

// newSubscription builds the credential context for a target using
// environment credentials.
func newSubscription(cfg *config.Config, t target) (*appservice.Subscription, error) {
	authorizer, err := auth.NewAuthorizerFromEnvironment()
	if err != nil {
		return nil, fmt.Errorf("failed to build credentials from environment: %w", err)
	}

	endpoint := cfg.Environment
	if endpoint == "" {
		endpoint = arm.DefaultEndpoint
	}

	sub := &appservice.Subscription{
		SubscriptionID: t.subscription,
		DisplayName:    t.subscription,
		Endpoint:       endpoint,
		Authorizer:     authorizer,
	}
	sub.NewClient = func() (appservice.WebSiteClient, error) {
		return appservice.NewARMWebSiteClient(sub.SubscriptionID, arm.NewClient(sub.Endpoint, sub.Authorizer, sub.Sender)), nil
	}
	return sub, nil
}

// sessionBuilder resolves the target and constructs a session. Swapped out
// in tests.
var sessionBuilder = buildSession

// buildSession loads config, resolves the target descriptor (through the
// short-TTL disk cache), and constructs the session.
func buildSession(ctx context.Context, args []string) (*appservice.Session, error) {
	cfgPath, err := config.ConfigPath()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	t, err := resolveTarget(cfg, args)
	if err != nil {
		return nil, err
	}

	sub, err := newSubscription(cfg, t)
	if err != nil {
		return nil, err
	}

	site, err := resolveSite(ctx, cfg, sub, t)
	if err != nil {
		return nil, err
	}

	return appservice.New(site, sub)
}

// resolveSite fetches the site descriptor, consulting the disk cache first.
func resolveSite(ctx context.Context, cfg *config.Config, sub *appservice.Subscription, t target) (models.Site, error) {
	var store *cache.Store
	if dir, err := cache.CacheDir(); err == nil {
		store = cache.NewStore(dir, cfg.ParsedCacheTTL())
		if site, ok := cache.GetSite(store, sub.SubscriptionID, t.resourceGroup, t.armName()); ok {
			return site, nil
		}
	}

	client, err := sub.NewClient()
	if err != nil {
		return models.Site{}, err
	}

	var site models.Site
	if t.slot != "" {
		site, err = client.GetSlot(ctx, t.resourceGroup, t.site, t.slot)
	} else {
		site, err = client.Get(ctx, t.resourceGroup, t.site)
	}
	if err != nil {
		return models.Site{}, fmt.Errorf("failed to resolve site %q: %w", t.armName(), err)
	}

	if store != nil {
		// Best effort; a failed write only costs a re-fetch next run.
		_ = cache.PutSite(store, sub.SubscriptionID, t.resourceGroup, site)
	}
	return site, nil
}
