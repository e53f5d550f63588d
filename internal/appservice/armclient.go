package appservice

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/khenritz/azsite/internal/appservice/models"
	"github.com/khenritz/azsite/internal/arm"
)

// API versions of the Microsoft.Web resource types this client addresses.
const (
	sitesAPIVersion = "2016-08-01"
	plansAPIVersion = "2016-09-01"
)

// armWebSiteClient implements WebSiteClient directly against the resource
// manager REST API. It is the production implementation handed to sessions
// through the Subscription client factory; tests substitute fakes.
type armWebSiteClient struct {
	subscriptionID string
	arm            *arm.Client
}

// NewARMWebSiteClient returns a WebSiteClient backed by the given raw ARM
// client.
func NewARMWebSiteClient(subscriptionID string, client *arm.Client) WebSiteClient {
	return &armWebSiteClient{subscriptionID: subscriptionID, arm: client}
}

func (c *armWebSiteClient) sitePath(resourceGroup, site string) string {
	return fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/Microsoft.Web/sites/%s",
		c.subscriptionID, resourceGroup, site)
}

func (c *armWebSiteClient) slotPath(resourceGroup, site, slot string) string {
	return c.sitePath(resourceGroup, site) + "/slots/" + slot
}

func (c *armWebSiteClient) Get(ctx context.Context, resourceGroup, site string) (models.Site, error) {
	var out models.Site
	err := c.arm.GetJSON(ctx, c.sitePath(resourceGroup, site), sitesAPIVersion, &out)
	return out, err
}

func (c *armWebSiteClient) GetSlot(ctx context.Context, resourceGroup, site, slot string) (models.Site, error) {
	var out models.Site
	err := c.arm.GetJSON(ctx, c.slotPath(resourceGroup, site, slot), sitesAPIVersion, &out)
	return out, err
}

func (c *armWebSiteClient) Start(ctx context.Context, resourceGroup, site string) error {
	return c.arm.PostJSON(ctx, c.sitePath(resourceGroup, site)+"/start", sitesAPIVersion, nil, nil)
}

func (c *armWebSiteClient) StartSlot(ctx context.Context, resourceGroup, site, slot string) error {
	return c.arm.PostJSON(ctx, c.slotPath(resourceGroup, site, slot)+"/start", sitesAPIVersion, nil, nil)
}

func (c *armWebSiteClient) Stop(ctx context.Context, resourceGroup, site string) error {
	return c.arm.PostJSON(ctx, c.sitePath(resourceGroup, site)+"/stop", sitesAPIVersion, nil, nil)
}

func (c *armWebSiteClient) StopSlot(ctx context.Context, resourceGroup, site, slot string) error {
	return c.arm.PostJSON(ctx, c.slotPath(resourceGroup, site, slot)+"/stop", sitesAPIVersion, nil, nil)
}

// deleteQuery translates DeleteOptions into the query parameters the delete
// operation understands.
func deleteQuery(opts DeleteOptions) map[string]string {
	return map[string]string{
		"deleteMetrics":         strconv.FormatBool(opts.DeleteMetrics),
		"deleteEmptyServerFarm": strconv.FormatBool(opts.DeleteEmptyServerFarm),
		"skipDnsRegistration":   strconv.FormatBool(opts.SkipDNSRegistration),
	}
}

func (c *armWebSiteClient) Delete(ctx context.Context, resourceGroup, site string, opts DeleteOptions) error {
	return c.arm.Delete(ctx, c.sitePath(resourceGroup, site), sitesAPIVersion, deleteQuery(opts))
}

func (c *armWebSiteClient) DeleteSlot(ctx context.Context, resourceGroup, site, slot string, opts DeleteOptions) error {
	return c.arm.Delete(ctx, c.slotPath(resourceGroup, site, slot), sitesAPIVersion, deleteQuery(opts))
}

func (c *armWebSiteClient) ListPublishingCredentials(ctx context.Context, resourceGroup, site string) (models.PublishingCredentials, error) {
	var out models.PublishingCredentials
	err := c.arm.PostJSON(ctx, c.sitePath(resourceGroup, site)+"/config/publishingcredentials/list", sitesAPIVersion, nil, &out)
	return out, err
}

func (c *armWebSiteClient) ListPublishingCredentialsSlot(ctx context.Context, resourceGroup, site, slot string) (models.PublishingCredentials, error) {
	var out models.PublishingCredentials
	err := c.arm.PostJSON(ctx, c.slotPath(resourceGroup, site, slot)+"/config/publishingcredentials/list", sitesAPIVersion, nil, &out)
	return out, err
}

func (c *armWebSiteClient) UpdatePublishingCredentials(ctx context.Context, resourceGroup, site string, creds models.PublishingCredentials) (models.PublishingCredentials, error) {
	var out models.PublishingCredentials
	err := c.arm.PutJSON(ctx, c.sitePath(resourceGroup, site)+"/config/publishingcredentials", sitesAPIVersion, creds, &out)
	return out, err
}

func (c *armWebSiteClient) UpdatePublishingCredentialsSlot(ctx context.Context, resourceGroup, site string, creds models.PublishingCredentials, slot string) (models.PublishingCredentials, error) {
	var out models.PublishingCredentials
	err := c.arm.PutJSON(ctx, c.slotPath(resourceGroup, site, slot)+"/config/publishingcredentials", sitesAPIVersion, creds, &out)
	return out, err
}

func (c *armWebSiteClient) GetConfiguration(ctx context.Context, resourceGroup, site string) (models.SiteConfig, error) {
	var out models.SiteConfig
	err := c.arm.GetJSON(ctx, c.sitePath(resourceGroup, site)+"/config/web", sitesAPIVersion, &out)
	return out, err
}

func (c *armWebSiteClient) GetConfigurationSlot(ctx context.Context, resourceGroup, site, slot string) (models.SiteConfig, error) {
	var out models.SiteConfig
	err := c.arm.GetJSON(ctx, c.slotPath(resourceGroup, site, slot)+"/config/web", sitesAPIVersion, &out)
	return out, err
}

func (c *armWebSiteClient) UpdateConfiguration(ctx context.Context, resourceGroup, site string, config models.SiteConfig) (models.SiteConfig, error) {
	var out models.SiteConfig
	err := c.arm.PutJSON(ctx, c.sitePath(resourceGroup, site)+"/config/web", sitesAPIVersion, config, &out)
	return out, err
}

func (c *armWebSiteClient) UpdateConfigurationSlot(ctx context.Context, resourceGroup, site string, config models.SiteConfig, slot string) (models.SiteConfig, error) {
	var out models.SiteConfig
	err := c.arm.PutJSON(ctx, c.slotPath(resourceGroup, site, slot)+"/config/web", sitesAPIVersion, config, &out)
	return out, err
}

func (c *armWebSiteClient) GetDiagnosticLogsConfiguration(ctx context.Context, resourceGroup, site string) (models.LogsConfig, error) {
	var out models.LogsConfig
	err := c.arm.GetJSON(ctx, c.sitePath(resourceGroup, site)+"/config/logs", sitesAPIVersion, &out)
	return out, err
}

func (c *armWebSiteClient) GetDiagnosticLogsConfigurationSlot(ctx context.Context, resourceGroup, site, slot string) (models.LogsConfig, error) {
	var out models.LogsConfig
	err := c.arm.GetJSON(ctx, c.slotPath(resourceGroup, site, slot)+"/config/logs", sitesAPIVersion, &out)
	return out, err
}

func (c *armWebSiteClient) UpdateDiagnosticLogsConfiguration(ctx context.Context, resourceGroup, site string, config models.LogsConfig) (models.LogsConfig, error) {
	var out models.LogsConfig
	err := c.arm.PutJSON(ctx, c.sitePath(resourceGroup, site)+"/config/logs", sitesAPIVersion, config, &out)
	return out, err
}

func (c *armWebSiteClient) UpdateDiagnosticLogsConfigurationSlot(ctx context.Context, resourceGroup, site string, config models.LogsConfig, slot string) (models.LogsConfig, error) {
	var out models.LogsConfig
	err := c.arm.PutJSON(ctx, c.slotPath(resourceGroup, site, slot)+"/config/logs", sitesAPIVersion, config, &out)
	return out, err
}

func (c *armWebSiteClient) GetSourceControl(ctx context.Context, resourceGroup, site string) (models.SiteSourceControl, error) {
	var out models.SiteSourceControl
	err := c.arm.GetJSON(ctx, c.sitePath(resourceGroup, site)+"/sourcecontrols/web", sitesAPIVersion, &out)
	return out, err
}

func (c *armWebSiteClient) GetSourceControlSlot(ctx context.Context, resourceGroup, site, slot string) (models.SiteSourceControl, error) {
	var out models.SiteSourceControl
	err := c.arm.GetJSON(ctx, c.slotPath(resourceGroup, site, slot)+"/sourcecontrols/web", sitesAPIVersion, &out)
	return out, err
}

func (c *armWebSiteClient) UpdateSourceControl(ctx context.Context, resourceGroup, site string, sc models.SiteSourceControl) (models.SiteSourceControl, error) {
	var out models.SiteSourceControl
	err := c.arm.PutJSON(ctx, c.sitePath(resourceGroup, site)+"/sourcecontrols/web", sitesAPIVersion, sc, &out)
	return out, err
}

func (c *armWebSiteClient) UpdateSourceControlSlot(ctx context.Context, resourceGroup, site string, sc models.SiteSourceControl, slot string) (models.SiteSourceControl, error) {
	var out models.SiteSourceControl
	err := c.arm.PutJSON(ctx, c.slotPath(resourceGroup, site, slot)+"/sourcecontrols/web", sitesAPIVersion, sc, &out)
	return out, err
}

func (c *armWebSiteClient) SyncRepository(ctx context.Context, resourceGroup, site string) error {
	return c.arm.PostJSON(ctx, c.sitePath(resourceGroup, site)+"/sync", sitesAPIVersion, nil, nil)
}

func (c *armWebSiteClient) SyncRepositorySlot(ctx context.Context, resourceGroup, site, slot string) error {
	return c.arm.PostJSON(ctx, c.slotPath(resourceGroup, site, slot)+"/sync", sitesAPIVersion, nil, nil)
}

func (c *armWebSiteClient) ListApplicationSettings(ctx context.Context, resourceGroup, site string) (models.StringDict, error) {
	var out models.StringDict
	err := c.arm.PostJSON(ctx, c.sitePath(resourceGroup, site)+"/config/appsettings/list", sitesAPIVersion, nil, &out)
	return out, err
}

func (c *armWebSiteClient) ListApplicationSettingsSlot(ctx context.Context, resourceGroup, site, slot string) (models.StringDict, error) {
	var out models.StringDict
	err := c.arm.PostJSON(ctx, c.slotPath(resourceGroup, site, slot)+"/config/appsettings/list", sitesAPIVersion, nil, &out)
	return out, err
}

func (c *armWebSiteClient) UpdateApplicationSettings(ctx context.Context, resourceGroup, site string, settings models.StringDict) (models.StringDict, error) {
	var out models.StringDict
	err := c.arm.PutJSON(ctx, c.sitePath(resourceGroup, site)+"/config/appsettings", sitesAPIVersion, settings, &out)
	return out, err
}

func (c *armWebSiteClient) UpdateApplicationSettingsSlot(ctx context.Context, resourceGroup, site string, settings models.StringDict, slot string) (models.StringDict, error) {
	var out models.StringDict
	err := c.arm.PutJSON(ctx, c.slotPath(resourceGroup, site, slot)+"/config/appsettings", sitesAPIVersion, settings, &out)
	return out, err
}

func (c *armWebSiteClient) ListSlotConfigurationNames(ctx context.Context, resourceGroup, site string) (models.SlotConfigNames, error) {
	var out models.SlotConfigNames
	err := c.arm.GetJSON(ctx, c.sitePath(resourceGroup, site)+"/config/slotConfigNames", sitesAPIVersion, &out)
	return out, err
}

func (c *armWebSiteClient) UpdateSlotConfigurationNames(ctx context.Context, resourceGroup, site string, names models.SlotConfigNames) (models.SlotConfigNames, error) {
	var out models.SlotConfigNames
	err := c.arm.PutJSON(ctx, c.sitePath(resourceGroup, site)+"/config/slotConfigNames", sitesAPIVersion, names, &out)
	return out, err
}

func (c *armWebSiteClient) ListInstanceIdentifiers(ctx context.Context, resourceGroup, site string) ([]models.SiteInstance, error) {
	var out models.SiteInstanceCollection
	if err := c.arm.GetJSON(ctx, c.sitePath(resourceGroup, site)+"/instances", sitesAPIVersion, &out); err != nil {
		return nil, err
	}
	return out.Value, nil
}

func (c *armWebSiteClient) ListInstanceIdentifiersSlot(ctx context.Context, resourceGroup, site, slot string) ([]models.SiteInstance, error) {
	var out models.SiteInstanceCollection
	if err := c.arm.GetJSON(ctx, c.slotPath(resourceGroup, site, slot)+"/instances", sitesAPIVersion, &out); err != nil {
		return nil, err
	}
	return out.Value, nil
}

func (c *armWebSiteClient) ListWebJobs(ctx context.Context, resourceGroup, site string) ([]models.WebJob, error) {
	var out models.WebJobCollection
	if err := c.arm.GetJSON(ctx, c.sitePath(resourceGroup, site)+"/webjobs", sitesAPIVersion, &out); err != nil {
		return nil, err
	}
	return out.Value, nil
}

func (c *armWebSiteClient) ListWebJobsSlot(ctx context.Context, resourceGroup, site, slot string) ([]models.WebJob, error) {
	var out models.WebJobCollection
	if err := c.arm.GetJSON(ctx, c.slotPath(resourceGroup, site, slot)+"/webjobs", sitesAPIVersion, &out); err != nil {
		return nil, err
	}
	return out.Value, nil
}

func (c *armWebSiteClient) ListFunctions(ctx context.Context, resourceGroup, site string) (models.FunctionCollection, error) {
	var out models.FunctionCollection
	err := c.arm.GetJSON(ctx, c.sitePath(resourceGroup, site)+"/functions", sitesAPIVersion, &out)
	return out, err
}

func (c *armWebSiteClient) ListFunctionsNext(ctx context.Context, nextLink string) (models.FunctionCollection, error) {
	var out models.FunctionCollection
	err := c.arm.GetJSONByURL(ctx, nextLink, &out)
	return out, err
}

func (c *armWebSiteClient) GetFunction(ctx context.Context, resourceGroup, site, function string) (models.FunctionEnvelope, error) {
	var out models.FunctionEnvelope
	err := c.arm.GetJSON(ctx, c.sitePath(resourceGroup, site)+"/functions/"+function, sitesAPIVersion, &out)
	return out, err
}

func (c *armWebSiteClient) DeleteFunction(ctx context.Context, resourceGroup, site, function string) error {
	return c.arm.Delete(ctx, c.sitePath(resourceGroup, site)+"/functions/"+function, sitesAPIVersion, nil)
}

func (c *armWebSiteClient) ListFunctionSecrets(ctx context.Context, resourceGroup, site, function string) (models.FunctionSecrets, error) {
	var out models.FunctionSecrets
	err := c.arm.PostJSON(ctx, c.sitePath(resourceGroup, site)+"/functions/"+function+"/listsecrets", sitesAPIVersion, nil, &out)
	return out, err
}

func (c *armWebSiteClient) ListFunctionSecretsSlot(ctx context.Context, resourceGroup, site, function, slot string) (models.FunctionSecrets, error) {
	var out models.FunctionSecrets
	err := c.arm.PostJSON(ctx, c.slotPath(resourceGroup, site, slot)+"/functions/"+function+"/listsecrets", sitesAPIVersion, nil, &out)
	return out, err
}

func (c *armWebSiteClient) SyncFunctionTriggers(ctx context.Context, resourceGroup, site string) error {
	return c.arm.PostJSON(ctx, c.sitePath(resourceGroup, site)+"/syncfunctiontriggers", sitesAPIVersion, nil, nil)
}

func (c *armWebSiteClient) SyncFunctionTriggersSlot(ctx context.Context, resourceGroup, site, slot string) error {
	return c.arm.PostJSON(ctx, c.slotPath(resourceGroup, site, slot)+"/syncfunctiontriggers", sitesAPIVersion, nil, nil)
}

func (c *armWebSiteClient) GetAppServicePlan(ctx context.Context, resourceGroup, plan string) (*models.AppServicePlan, error) {
	path := fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/Microsoft.Web/serverfarms/%s",
		c.subscriptionID, resourceGroup, plan)
	var out models.AppServicePlan
	if err := c.arm.GetJSON(ctx, path, plansAPIVersion, &out); err != nil {
		var reqErr *arm.RequestError
		if errors.As(err, &reqErr) && reqErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

func (c *armWebSiteClient) GetPublishingUser(ctx context.Context) (models.PublishingUser, error) {
	var out models.PublishingUser
	err := c.arm.GetJSON(ctx, "/providers/Microsoft.Web/publishingUsers/web", sitesAPIVersion, &out)
	return out, err
}

func (c *armWebSiteClient) ListSourceControls(ctx context.Context) ([]models.SourceControl, error) {
	var out models.SourceControlCollection
	if err := c.arm.GetJSON(ctx, "/providers/Microsoft.Web/sourcecontrols", sitesAPIVersion, &out); err != nil {
		return nil, err
	}
	return out.Value, nil
}
