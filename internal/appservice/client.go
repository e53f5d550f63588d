package appservice

import (
	"context"

	"github.com/khenritz/azsite/internal/appservice/models"
)

// DeleteOptions controls what is removed alongside a site.
type DeleteOptions struct {
	// DeleteMetrics also removes the site's stored metrics.
	DeleteMetrics bool
	// DeleteEmptyServerFarm removes the hosting plan when the site was its
	// last remaining app.
	DeleteEmptyServerFarm bool
	// SkipDNSRegistration leaves the site's DNS registration in place.
	SkipDNSRegistration bool
}

// WebSiteClient is the structured management-API surface a Session
// dispatches to. Implementations are supplied through the Subscription's
// client factory; the session never holds on to one between operations.
//
// Every operation with a slot variant takes resource group and site name
// first and the slot name last. Methods without a slot variant apply to the
// production app or to the account as a whole.
type WebSiteClient interface {
	Get(ctx context.Context, resourceGroup, site string) (models.Site, error)
	GetSlot(ctx context.Context, resourceGroup, site, slot string) (models.Site, error)

	Start(ctx context.Context, resourceGroup, site string) error
	StartSlot(ctx context.Context, resourceGroup, site, slot string) error
	Stop(ctx context.Context, resourceGroup, site string) error
	StopSlot(ctx context.Context, resourceGroup, site, slot string) error

	Delete(ctx context.Context, resourceGroup, site string, opts DeleteOptions) error
	DeleteSlot(ctx context.Context, resourceGroup, site, slot string, opts DeleteOptions) error

	ListPublishingCredentials(ctx context.Context, resourceGroup, site string) (models.PublishingCredentials, error)
	ListPublishingCredentialsSlot(ctx context.Context, resourceGroup, site, slot string) (models.PublishingCredentials, error)
	UpdatePublishingCredentials(ctx context.Context, resourceGroup, site string, creds models.PublishingCredentials) (models.PublishingCredentials, error)
	UpdatePublishingCredentialsSlot(ctx context.Context, resourceGroup, site string, creds models.PublishingCredentials, slot string) (models.PublishingCredentials, error)

	GetConfiguration(ctx context.Context, resourceGroup, site string) (models.SiteConfig, error)
	GetConfigurationSlot(ctx context.Context, resourceGroup, site, slot string) (models.SiteConfig, error)
	UpdateConfiguration(ctx context.Context, resourceGroup, site string, config models.SiteConfig) (models.SiteConfig, error)
	UpdateConfigurationSlot(ctx context.Context, resourceGroup, site string, config models.SiteConfig, slot string) (models.SiteConfig, error)

	GetDiagnosticLogsConfiguration(ctx context.Context, resourceGroup, site string) (models.LogsConfig, error)
	GetDiagnosticLogsConfigurationSlot(ctx context.Context, resourceGroup, site, slot string) (models.LogsConfig, error)
	UpdateDiagnosticLogsConfiguration(ctx context.Context, resourceGroup, site string, config models.LogsConfig) (models.LogsConfig, error)
	UpdateDiagnosticLogsConfigurationSlot(ctx context.Context, resourceGroup, site string, config models.LogsConfig, slot string) (models.LogsConfig, error)

	GetSourceControl(ctx context.Context, resourceGroup, site string) (models.SiteSourceControl, error)
	GetSourceControlSlot(ctx context.Context, resourceGroup, site, slot string) (models.SiteSourceControl, error)
	UpdateSourceControl(ctx context.Context, resourceGroup, site string, sc models.SiteSourceControl) (models.SiteSourceControl, error)
	UpdateSourceControlSlot(ctx context.Context, resourceGroup, site string, sc models.SiteSourceControl, slot string) (models.SiteSourceControl, error)

	SyncRepository(ctx context.Context, resourceGroup, site string) error
	SyncRepositorySlot(ctx context.Context, resourceGroup, site, slot string) error

	ListApplicationSettings(ctx context.Context, resourceGroup, site string) (models.StringDict, error)
	ListApplicationSettingsSlot(ctx context.Context, resourceGroup, site, slot string) (models.StringDict, error)
	UpdateApplicationSettings(ctx context.Context, resourceGroup, site string, settings models.StringDict) (models.StringDict, error)
	UpdateApplicationSettingsSlot(ctx context.Context, resourceGroup, site string, settings models.StringDict, slot string) (models.StringDict, error)

	// Slot-sticky configuration names live on the production app only and
	// are never slot-dispatched.
	ListSlotConfigurationNames(ctx context.Context, resourceGroup, site string) (models.SlotConfigNames, error)
	UpdateSlotConfigurationNames(ctx context.Context, resourceGroup, site string, names models.SlotConfigNames) (models.SlotConfigNames, error)

	ListInstanceIdentifiers(ctx context.Context, resourceGroup, site string) ([]models.SiteInstance, error)
	ListInstanceIdentifiersSlot(ctx context.Context, resourceGroup, site, slot string) ([]models.SiteInstance, error)

	ListWebJobs(ctx context.Context, resourceGroup, site string) ([]models.WebJob, error)
	ListWebJobsSlot(ctx context.Context, resourceGroup, site, slot string) ([]models.WebJob, error)

	// Function listing and management have no slot variants on the platform.
	ListFunctions(ctx context.Context, resourceGroup, site string) (models.FunctionCollection, error)
	ListFunctionsNext(ctx context.Context, nextLink string) (models.FunctionCollection, error)
	GetFunction(ctx context.Context, resourceGroup, site, function string) (models.FunctionEnvelope, error)
	DeleteFunction(ctx context.Context, resourceGroup, site, function string) error

	ListFunctionSecrets(ctx context.Context, resourceGroup, site, function string) (models.FunctionSecrets, error)
	ListFunctionSecretsSlot(ctx context.Context, resourceGroup, site, function, slot string) (models.FunctionSecrets, error)

	SyncFunctionTriggers(ctx context.Context, resourceGroup, site string) error
	SyncFunctionTriggersSlot(ctx context.Context, resourceGroup, site, slot string) error

	// GetAppServicePlan returns (nil, nil) when the plan does not exist.
	GetAppServicePlan(ctx context.Context, resourceGroup, plan string) (*models.AppServicePlan, error)

	GetPublishingUser(ctx context.Context) (models.PublishingUser, error)
	ListSourceControls(ctx context.Context) ([]models.SourceControl, error)
}
