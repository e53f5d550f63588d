package appservice

import (
	"context"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/khenritz/azsite/internal/appservice/models"
)

// Every operation below follows the same dispatch rule: a slot session calls
// the slot variant with the slot name as the trailing argument, a production
// session calls the production variant and never passes a slot name.

// Start brings the app (or slot) into the running state.
func (s *Session) Start(ctx context.Context) error {
	c, err := s.client()
	if err != nil {
		return err
	}
	zap.L().Debug("starting site", zap.String("site", s.FullName))
	if s.IsSlot {
		return c.StartSlot(ctx, s.ResourceGroup, s.SiteName, s.SlotName)
	}
	return c.Start(ctx, s.ResourceGroup, s.SiteName)
}

// Stop halts the app (or slot).
func (s *Session) Stop(ctx context.Context) error {
	c, err := s.client()
	if err != nil {
		return err
	}
	zap.L().Debug("stopping site", zap.String("site", s.FullName))
	if s.IsSlot {
		return c.StopSlot(ctx, s.ResourceGroup, s.SiteName, s.SlotName)
	}
	return c.Stop(ctx, s.ResourceGroup, s.SiteName)
}

// State fetches the current runtime state, e.g. "Running" or "Stopped".
func (s *Session) State(ctx context.Context) (string, error) {
	c, err := s.client()
	if err != nil {
		return "", err
	}
	var site models.Site
	if s.IsSlot {
		site, err = c.GetSlot(ctx, s.ResourceGroup, s.SiteName, s.SlotName)
	} else {
		site, err = c.Get(ctx, s.ResourceGroup, s.SiteName)
	}
	if err != nil {
		return "", err
	}
	return site.Properties.State, nil
}

// Delete removes the app (or slot). Options control whether metrics, an
// emptied hosting plan, and the DNS registration go with it.
func (s *Session) Delete(ctx context.Context, opts DeleteOptions) error {
	c, err := s.client()
	if err != nil {
		return err
	}
	zap.L().Debug("deleting site", zap.String("site", s.FullName))
	if s.IsSlot {
		return c.DeleteSlot(ctx, s.ResourceGroup, s.SiteName, s.SlotName, opts)
	}
	return c.Delete(ctx, s.ResourceGroup, s.SiteName, opts)
}

// PublishingCredentials fetches the site-scoped deployment credentials.
func (s *Session) PublishingCredentials(ctx context.Context) (models.PublishingCredentials, error) {
	c, err := s.client()
	if err != nil {
		return models.PublishingCredentials{}, err
	}
	if s.IsSlot {
		return c.ListPublishingCredentialsSlot(ctx, s.ResourceGroup, s.SiteName, s.SlotName)
	}
	return c.ListPublishingCredentials(ctx, s.ResourceGroup, s.SiteName)
}

// UpdatePublishingCredentials replaces the site-scoped deployment credentials.
func (s *Session) UpdatePublishingCredentials(ctx context.Context, creds models.PublishingCredentials) (models.PublishingCredentials, error) {
	c, err := s.client()
	if err != nil {
		return models.PublishingCredentials{}, err
	}
	if s.IsSlot {
		return c.UpdatePublishingCredentialsSlot(ctx, s.ResourceGroup, s.SiteName, creds, s.SlotName)
	}
	return c.UpdatePublishingCredentials(ctx, s.ResourceGroup, s.SiteName, creds)
}

// SiteConfig fetches the site's runtime configuration.
func (s *Session) SiteConfig(ctx context.Context) (models.SiteConfig, error) {
	c, err := s.client()
	if err != nil {
		return models.SiteConfig{}, err
	}
	if s.IsSlot {
		return c.GetConfigurationSlot(ctx, s.ResourceGroup, s.SiteName, s.SlotName)
	}
	return c.GetConfiguration(ctx, s.ResourceGroup, s.SiteName)
}

// UpdateSiteConfig replaces the site's runtime configuration.
func (s *Session) UpdateSiteConfig(ctx context.Context, config models.SiteConfig) (models.SiteConfig, error) {
	c, err := s.client()
	if err != nil {
		return models.SiteConfig{}, err
	}
	if s.IsSlot {
		return c.UpdateConfigurationSlot(ctx, s.ResourceGroup, s.SiteName, config, s.SlotName)
	}
	return c.UpdateConfiguration(ctx, s.ResourceGroup, s.SiteName, config)
}

// LogsConfig fetches the diagnostic logs configuration.
func (s *Session) LogsConfig(ctx context.Context) (models.LogsConfig, error) {
	c, err := s.client()
	if err != nil {
		return models.LogsConfig{}, err
	}
	if s.IsSlot {
		return c.GetDiagnosticLogsConfigurationSlot(ctx, s.ResourceGroup, s.SiteName, s.SlotName)
	}
	return c.GetDiagnosticLogsConfiguration(ctx, s.ResourceGroup, s.SiteName)
}

// UpdateLogsConfig replaces the diagnostic logs configuration.
func (s *Session) UpdateLogsConfig(ctx context.Context, config models.LogsConfig) (models.LogsConfig, error) {
	c, err := s.client()
	if err != nil {
		return models.LogsConfig{}, err
	}
	if s.IsSlot {
		return c.UpdateDiagnosticLogsConfigurationSlot(ctx, s.ResourceGroup, s.SiteName, config, s.SlotName)
	}
	return c.UpdateDiagnosticLogsConfiguration(ctx, s.ResourceGroup, s.SiteName, config)
}

// SourceControl fetches the site's source control binding.
func (s *Session) SourceControl(ctx context.Context) (models.SiteSourceControl, error) {
	c, err := s.client()
	if err != nil {
		return models.SiteSourceControl{}, err
	}
	if s.IsSlot {
		return c.GetSourceControlSlot(ctx, s.ResourceGroup, s.SiteName, s.SlotName)
	}
	return c.GetSourceControl(ctx, s.ResourceGroup, s.SiteName)
}

// UpdateSourceControl replaces the site's source control binding.
func (s *Session) UpdateSourceControl(ctx context.Context, sc models.SiteSourceControl) (models.SiteSourceControl, error) {
	c, err := s.client()
	if err != nil {
		return models.SiteSourceControl{}, err
	}
	if s.IsSlot {
		return c.UpdateSourceControlSlot(ctx, s.ResourceGroup, s.SiteName, sc, s.SlotName)
	}
	return c.UpdateSourceControl(ctx, s.ResourceGroup, s.SiteName, sc)
}

// SyncRepository triggers a pull/redeploy from the bound repository.
func (s *Session) SyncRepository(ctx context.Context) error {
	c, err := s.client()
	if err != nil {
		return err
	}
	if s.IsSlot {
		return c.SyncRepositorySlot(ctx, s.ResourceGroup, s.SiteName, s.SlotName)
	}
	return c.SyncRepository(ctx, s.ResourceGroup, s.SiteName)
}

// ApplicationSettings lists the app settings.
func (s *Session) ApplicationSettings(ctx context.Context) (models.StringDict, error) {
	c, err := s.client()
	if err != nil {
		return models.StringDict{}, err
	}
	if s.IsSlot {
		return c.ListApplicationSettingsSlot(ctx, s.ResourceGroup, s.SiteName, s.SlotName)
	}
	return c.ListApplicationSettings(ctx, s.ResourceGroup, s.SiteName)
}

// UpdateApplicationSettings replaces the app settings.
func (s *Session) UpdateApplicationSettings(ctx context.Context, settings models.StringDict) (models.StringDict, error) {
	c, err := s.client()
	if err != nil {
		return models.StringDict{}, err
	}
	if s.IsSlot {
		return c.UpdateApplicationSettingsSlot(ctx, s.ResourceGroup, s.SiteName, settings, s.SlotName)
	}
	return c.UpdateApplicationSettings(ctx, s.ResourceGroup, s.SiteName, settings)
}

// SlotConfigurationNames lists the setting names that stick to a slot during
// a swap. The list lives on the production app, so a slot session reads its
// parent's list; there is no slot variant to dispatch to.
func (s *Session) SlotConfigurationNames(ctx context.Context) (models.SlotConfigNames, error) {
	c, err := s.client()
	if err != nil {
		return models.SlotConfigNames{}, err
	}
	return c.ListSlotConfigurationNames(ctx, s.ResourceGroup, s.SiteName)
}

// UpdateSlotConfigurationNames replaces the slot-sticky setting name list on
// the production app.
func (s *Session) UpdateSlotConfigurationNames(ctx context.Context, names models.SlotConfigNames) (models.SlotConfigNames, error) {
	c, err := s.client()
	if err != nil {
		return models.SlotConfigNames{}, err
	}
	return c.UpdateSlotConfigurationNames(ctx, s.ResourceGroup, s.SiteName, names)
}

// InstanceIdentifiers lists the identifiers of the site's running instances.
func (s *Session) InstanceIdentifiers(ctx context.Context) ([]string, error) {
	c, err := s.client()
	if err != nil {
		return nil, err
	}
	var instances []models.SiteInstance
	if s.IsSlot {
		instances, err = c.ListInstanceIdentifiersSlot(ctx, s.ResourceGroup, s.SiteName, s.SlotName)
	} else {
		instances, err = c.ListInstanceIdentifiers(ctx, s.ResourceGroup, s.SiteName)
	}
	if err != nil {
		return nil, err
	}
	return lo.Map(instances, func(instance models.SiteInstance, _ int) string {
		return instance.Name
	}), nil
}

// WebJobs lists the site's background jobs.
func (s *Session) WebJobs(ctx context.Context) ([]models.WebJob, error) {
	c, err := s.client()
	if err != nil {
		return nil, err
	}
	if s.IsSlot {
		return c.ListWebJobsSlot(ctx, s.ResourceGroup, s.SiteName, s.SlotName)
	}
	return c.ListWebJobs(ctx, s.ResourceGroup, s.SiteName)
}

// PublishingUser fetches the account-global publishing user. Not a per-site
// resource, so no slot dispatch.
func (s *Session) PublishingUser(ctx context.Context) (models.PublishingUser, error) {
	c, err := s.client()
	if err != nil {
		return models.PublishingUser{}, err
	}
	return c.GetPublishingUser(ctx)
}

// SourceControls lists the account-global source control registrations.
func (s *Session) SourceControls(ctx context.Context) ([]models.SourceControl, error) {
	c, err := s.client()
	if err != nil {
		return nil, err
	}
	return c.ListSourceControls(ctx)
}
