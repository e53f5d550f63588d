package appservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khenritz/azsite/internal/appservice/models"
)

func planWithTier(tier string) *models.AppServicePlan {
	return &models.AppServicePlan{
		Name: "plan-1",
		SKU:  &models.SkuDescription{Name: "Y1", Tier: tier},
	}
}

func TestAppServicePlanMemoized(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fake := &fakeClient{plan: planWithTier("Dynamic")}
	s := newTestSession(t, testSite(), fake)

	first, err := s.AppServicePlan(ctx)
	require.NoError(t, err)
	require.NotNil(t, first)

	// Later fetches never reach the client, even when it would now return
	// something else.
	fake.plan = planWithTier("PremiumV2")
	second, err := s.AppServicePlan(ctx)
	require.NoError(t, err)
	assert.Same(t, first, second)

	planCalls := 0
	for _, c := range fake.calls {
		if c.name == "GetAppServicePlan" {
			planCalls++
		}
	}
	assert.Equal(t, 1, planCalls)
	assert.Equal(t, []string{"plan-rg", "plan-1"}, fake.calls[0].args)
}

func TestAppServicePlanMemoizesNotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fake := &fakeClient{plan: nil}
	s := newTestSession(t, testSite(), fake)

	plan, err := s.AppServicePlan(ctx)
	require.NoError(t, err)
	assert.Nil(t, plan)

	fake.plan = planWithTier("Standard")
	plan, err = s.AppServicePlan(ctx)
	require.NoError(t, err)
	assert.Nil(t, plan)
	assert.Len(t, fake.calls, 1)
}

func TestAppServicePlanFetchErrorNotCached(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fetchErr := errors.New("throttled")
	fake := &fakeClient{planErr: fetchErr}
	s := newTestSession(t, testSite(), fake)

	_, err := s.AppServicePlan(ctx)
	require.ErrorIs(t, err, fetchErr)

	// A failed fetch leaves the cache empty; the next call retries.
	fake.planErr = nil
	fake.plan = planWithTier("Standard")
	plan, err := s.AppServicePlan(ctx)
	require.NoError(t, err)
	require.NotNil(t, plan)
	assert.Len(t, fake.calls, 2)
}

func TestFetchAppServicePlanBypassesCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	fake := &fakeClient{plan: planWithTier("Dynamic")}
	s := newTestSession(t, testSite(), fake)

	_, err := s.AppServicePlan(ctx)
	require.NoError(t, err)

	fake.plan = planWithTier("PremiumV2")
	fresh, err := s.FetchAppServicePlan(ctx)
	require.NoError(t, err)
	require.NotNil(t, fresh)
	assert.Equal(t, "PremiumV2", fresh.SKU.Tier)

	// The direct fetch does not overwrite the memoized value.
	cached, err := s.AppServicePlan(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Dynamic", cached.SKU.Tier)
}

func TestIsConsumption(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		kind    string
		plan    *models.AppServicePlan
		planErr error
		want    bool
	}{
		{name: "web app never consumption", kind: "app", plan: planWithTier("Dynamic"), want: false},
		{name: "dynamic tier", kind: "functionapp", plan: planWithTier("Dynamic"), want: true},
		{name: "dynamic tier lowercase", kind: "functionapp,linux", plan: planWithTier("dynamic"), want: true},
		{name: "dedicated tier", kind: "functionapp", plan: planWithTier("PremiumV2"), want: false},
		{name: "missing plan", kind: "functionapp", plan: nil, want: true},
		{name: "plan without sku", kind: "functionapp", plan: &models.AppServicePlan{Name: "plan-1"}, want: true},
		{name: "empty tier", kind: "functionapp", plan: planWithTier(""), want: true},
		{name: "fetch failure", kind: "functionapp", planErr: errors.New("throttled"), want: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			site := testSite()
			site.Kind = tt.kind
			fake := &fakeClient{plan: tt.plan, planErr: tt.planErr}
			s := newTestSession(t, site, fake)

			got, err := s.IsConsumption(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// A non-function app answers without consulting the plan at all.
func TestIsConsumptionWebAppSkipsPlanLookup(t *testing.T) {
	t.Parallel()

	fake := &fakeClient{planErr: errors.New("must not be called")}
	s := newTestSession(t, testSite(), fake)

	got, err := s.IsConsumption(context.Background())
	require.NoError(t, err)
	assert.False(t, got)
	assert.Empty(t, fake.calls)
}
