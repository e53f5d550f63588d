package appservice

import (
	"context"
	"strings"

	"github.com/khenritz/azsite/internal/appservice/models"
)

// consumptionTier is the pricing tier name of the pay-per-execution plan.
const consumptionTier = "dynamic"

// AppServicePlan returns the hosting plan backing the app, memoized for the
// session's lifetime. The first successful fetch is stored and returned
// verbatim to every later caller, including a not-found (nil) outcome; the
// cache is never invalidated. Callers that need fresh data should use
// FetchAppServicePlan.
func (s *Session) AppServicePlan(ctx context.Context) (*models.AppServicePlan, error) {
	s.mu.Lock()
	if s.planFetched {
		plan := s.plan
		s.mu.Unlock()
		return plan, nil
	}
	s.mu.Unlock()

	plan, err := s.FetchAppServicePlan(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.plan = plan
	s.planFetched = true
	s.mu.Unlock()
	return plan, nil
}

// FetchAppServicePlan fetches the hosting plan without touching the cache.
// Returns nil without error when the plan does not exist. Plans are
// addressed by the parsed planResourceGroup/planName and never dispatch by
// slot.
func (s *Session) FetchAppServicePlan(ctx context.Context) (*models.AppServicePlan, error) {
	c, err := s.client()
	if err != nil {
		return nil, err
	}
	return c.GetAppServicePlan(ctx, s.PlanResourceGroup, s.PlanName)
}

// IsConsumption reports whether the app runs on the consumption plan. Only
// function apps can be consumption; for those the cached plan's tier
// decides. A missing plan, an unreadable tier, or a failed fetch all count
// as consumption: brand-new plans sometimes report no tier, and consumption
// is the common default for function apps.
func (s *Session) IsConsumption(ctx context.Context) (bool, error) {
	if !s.IsFunctionApp {
		return false, nil
	}
	plan, err := s.AppServicePlan(ctx)
	if err != nil || plan == nil || plan.SKU == nil || plan.SKU.Tier == "" {
		return true, nil
	}
	return strings.EqualFold(plan.SKU.Tier, consumptionTier), nil
}
