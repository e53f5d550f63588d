package appservice

import (
	"context"

	"github.com/khenritz/azsite/internal/appservice/models"
)

// call records one management-client invocation: the method name and its
// string arguments in the order they were passed (payloads excluded).
type call struct {
	name string
	args []string
}

// fakeClient implements WebSiteClient and records every call. A non-nil err
// is returned by every operation; plan/site/state fields feed the getters.
type fakeClient struct {
	calls []call

	err     error
	site    models.Site
	plan    *models.AppServicePlan
	planErr error
}

func (f *fakeClient) record(name string, args ...string) {
	f.calls = append(f.calls, call{name: name, args: args})
}

func (f *fakeClient) Get(_ context.Context, rg, site string) (models.Site, error) {
	f.record("Get", rg, site)
	return f.site, f.err
}

func (f *fakeClient) GetSlot(_ context.Context, rg, site, slot string) (models.Site, error) {
	f.record("GetSlot", rg, site, slot)
	return f.site, f.err
}

func (f *fakeClient) Start(_ context.Context, rg, site string) error {
	f.record("Start", rg, site)
	return f.err
}

func (f *fakeClient) StartSlot(_ context.Context, rg, site, slot string) error {
	f.record("StartSlot", rg, site, slot)
	return f.err
}

func (f *fakeClient) Stop(_ context.Context, rg, site string) error {
	f.record("Stop", rg, site)
	return f.err
}

func (f *fakeClient) StopSlot(_ context.Context, rg, site, slot string) error {
	f.record("StopSlot", rg, site, slot)
	return f.err
}

func (f *fakeClient) Delete(_ context.Context, rg, site string, _ DeleteOptions) error {
	f.record("Delete", rg, site)
	return f.err
}

func (f *fakeClient) DeleteSlot(_ context.Context, rg, site, slot string, _ DeleteOptions) error {
	f.record("DeleteSlot", rg, site, slot)
	return f.err
}

func (f *fakeClient) ListPublishingCredentials(_ context.Context, rg, site string) (models.PublishingCredentials, error) {
	f.record("ListPublishingCredentials", rg, site)
	return models.PublishingCredentials{}, f.err
}

func (f *fakeClient) ListPublishingCredentialsSlot(_ context.Context, rg, site, slot string) (models.PublishingCredentials, error) {
	f.record("ListPublishingCredentialsSlot", rg, site, slot)
	return models.PublishingCredentials{}, f.err
}

func (f *fakeClient) UpdatePublishingCredentials(_ context.Context, rg, site string, _ models.PublishingCredentials) (models.PublishingCredentials, error) {
	f.record("UpdatePublishingCredentials", rg, site)
	return models.PublishingCredentials{}, f.err
}

func (f *fakeClient) UpdatePublishingCredentialsSlot(_ context.Context, rg, site string, _ models.PublishingCredentials, slot string) (models.PublishingCredentials, error) {
	f.record("UpdatePublishingCredentialsSlot", rg, site, slot)
	return models.PublishingCredentials{}, f.err
}

func (f *fakeClient) GetConfiguration(_ context.Context, rg, site string) (models.SiteConfig, error) {
	f.record("GetConfiguration", rg, site)
	return models.SiteConfig{}, f.err
}

func (f *fakeClient) GetConfigurationSlot(_ context.Context, rg, site, slot string) (models.SiteConfig, error) {
	f.record("GetConfigurationSlot", rg, site, slot)
	return models.SiteConfig{}, f.err
}

func (f *fakeClient) UpdateConfiguration(_ context.Context, rg, site string, _ models.SiteConfig) (models.SiteConfig, error) {
	f.record("UpdateConfiguration", rg, site)
	return models.SiteConfig{}, f.err
}

func (f *fakeClient) UpdateConfigurationSlot(_ context.Context, rg, site string, _ models.SiteConfig, slot string) (models.SiteConfig, error) {
	f.record("UpdateConfigurationSlot", rg, site, slot)
	return models.SiteConfig{}, f.err
}

func (f *fakeClient) GetDiagnosticLogsConfiguration(_ context.Context, rg, site string) (models.LogsConfig, error) {
	f.record("GetDiagnosticLogsConfiguration", rg, site)
	return models.LogsConfig{}, f.err
}

func (f *fakeClient) GetDiagnosticLogsConfigurationSlot(_ context.Context, rg, site, slot string) (models.LogsConfig, error) {
	f.record("GetDiagnosticLogsConfigurationSlot", rg, site, slot)
	return models.LogsConfig{}, f.err
}

func (f *fakeClient) UpdateDiagnosticLogsConfiguration(_ context.Context, rg, site string, _ models.LogsConfig) (models.LogsConfig, error) {
	f.record("UpdateDiagnosticLogsConfiguration", rg, site)
	return models.LogsConfig{}, f.err
}

func (f *fakeClient) UpdateDiagnosticLogsConfigurationSlot(_ context.Context, rg, site string, _ models.LogsConfig, slot string) (models.LogsConfig, error) {
	f.record("UpdateDiagnosticLogsConfigurationSlot", rg, site, slot)
	return models.LogsConfig{}, f.err
}

func (f *fakeClient) GetSourceControl(_ context.Context, rg, site string) (models.SiteSourceControl, error) {
	f.record("GetSourceControl", rg, site)
	return models.SiteSourceControl{}, f.err
}

func (f *fakeClient) GetSourceControlSlot(_ context.Context, rg, site, slot string) (models.SiteSourceControl, error) {
	f.record("GetSourceControlSlot", rg, site, slot)
	return models.SiteSourceControl{}, f.err
}

func (f *fakeClient) UpdateSourceControl(_ context.Context, rg, site string, _ models.SiteSourceControl) (models.SiteSourceControl, error) {
	f.record("UpdateSourceControl", rg, site)
	return models.SiteSourceControl{}, f.err
}

func (f *fakeClient) UpdateSourceControlSlot(_ context.Context, rg, site string, _ models.SiteSourceControl, slot string) (models.SiteSourceControl, error) {
	f.record("UpdateSourceControlSlot", rg, site, slot)
	return models.SiteSourceControl{}, f.err
}

func (f *fakeClient) SyncRepository(_ context.Context, rg, site string) error {
	f.record("SyncRepository", rg, site)
	return f.err
}

func (f *fakeClient) SyncRepositorySlot(_ context.Context, rg, site, slot string) error {
	f.record("SyncRepositorySlot", rg, site, slot)
	return f.err
}

func (f *fakeClient) ListApplicationSettings(_ context.Context, rg, site string) (models.StringDict, error) {
	f.record("ListApplicationSettings", rg, site)
	return models.StringDict{}, f.err
}

func (f *fakeClient) ListApplicationSettingsSlot(_ context.Context, rg, site, slot string) (models.StringDict, error) {
	f.record("ListApplicationSettingsSlot", rg, site, slot)
	return models.StringDict{}, f.err
}

func (f *fakeClient) UpdateApplicationSettings(_ context.Context, rg, site string, _ models.StringDict) (models.StringDict, error) {
	f.record("UpdateApplicationSettings", rg, site)
	return models.StringDict{}, f.err
}

func (f *fakeClient) UpdateApplicationSettingsSlot(_ context.Context, rg, site string, _ models.StringDict, slot string) (models.StringDict, error) {
	f.record("UpdateApplicationSettingsSlot", rg, site, slot)
	return models.StringDict{}, f.err
}

func (f *fakeClient) ListSlotConfigurationNames(_ context.Context, rg, site string) (models.SlotConfigNames, error) {
	f.record("ListSlotConfigurationNames", rg, site)
	return models.SlotConfigNames{}, f.err
}

func (f *fakeClient) UpdateSlotConfigurationNames(_ context.Context, rg, site string, _ models.SlotConfigNames) (models.SlotConfigNames, error) {
	f.record("UpdateSlotConfigurationNames", rg, site)
	return models.SlotConfigNames{}, f.err
}

func (f *fakeClient) ListInstanceIdentifiers(_ context.Context, rg, site string) ([]models.SiteInstance, error) {
	f.record("ListInstanceIdentifiers", rg, site)
	return []models.SiteInstance{{Name: "inst-0"}, {Name: "inst-1"}}, f.err
}

func (f *fakeClient) ListInstanceIdentifiersSlot(_ context.Context, rg, site, slot string) ([]models.SiteInstance, error) {
	f.record("ListInstanceIdentifiersSlot", rg, site, slot)
	return []models.SiteInstance{{Name: "inst-0"}}, f.err
}

func (f *fakeClient) ListWebJobs(_ context.Context, rg, site string) ([]models.WebJob, error) {
	f.record("ListWebJobs", rg, site)
	return nil, f.err
}

func (f *fakeClient) ListWebJobsSlot(_ context.Context, rg, site, slot string) ([]models.WebJob, error) {
	f.record("ListWebJobsSlot", rg, site, slot)
	return nil, f.err
}

func (f *fakeClient) ListFunctions(_ context.Context, rg, site string) (models.FunctionCollection, error) {
	f.record("ListFunctions", rg, site)
	return models.FunctionCollection{}, f.err
}

func (f *fakeClient) ListFunctionsNext(_ context.Context, nextLink string) (models.FunctionCollection, error) {
	f.record("ListFunctionsNext", nextLink)
	return models.FunctionCollection{}, f.err
}

func (f *fakeClient) GetFunction(_ context.Context, rg, site, function string) (models.FunctionEnvelope, error) {
	f.record("GetFunction", rg, site, function)
	return models.FunctionEnvelope{}, f.err
}

func (f *fakeClient) DeleteFunction(_ context.Context, rg, site, function string) error {
	f.record("DeleteFunction", rg, site, function)
	return f.err
}

func (f *fakeClient) ListFunctionSecrets(_ context.Context, rg, site, function string) (models.FunctionSecrets, error) {
	f.record("ListFunctionSecrets", rg, site, function)
	return models.FunctionSecrets{}, f.err
}

func (f *fakeClient) ListFunctionSecretsSlot(_ context.Context, rg, site, function, slot string) (models.FunctionSecrets, error) {
	f.record("ListFunctionSecretsSlot", rg, site, function, slot)
	return models.FunctionSecrets{}, f.err
}

func (f *fakeClient) SyncFunctionTriggers(_ context.Context, rg, site string) error {
	f.record("SyncFunctionTriggers", rg, site)
	return f.err
}

func (f *fakeClient) SyncFunctionTriggersSlot(_ context.Context, rg, site, slot string) error {
	f.record("SyncFunctionTriggersSlot", rg, site, slot)
	return f.err
}

func (f *fakeClient) GetAppServicePlan(_ context.Context, rg, plan string) (*models.AppServicePlan, error) {
	f.record("GetAppServicePlan", rg, plan)
	return f.plan, f.planErr
}

func (f *fakeClient) GetPublishingUser(_ context.Context) (models.PublishingUser, error) {
	f.record("GetPublishingUser")
	return models.PublishingUser{}, f.err
}

func (f *fakeClient) ListSourceControls(_ context.Context) ([]models.SourceControl, error) {
	f.record("ListSourceControls")
	return nil, f.err
}

var _ WebSiteClient = (*fakeClient)(nil)
