package models

// SiteSourceControl is the web/sourcecontrols binding of one site.
type SiteSourceControl struct {
	ID         string                      `json:"id,omitempty"`
	Name       string                      `json:"name,omitempty"`
	Properties SiteSourceControlProperties `json:"properties"`
}

// SiteSourceControlProperties describes the repository bound to a site.
type SiteSourceControlProperties struct {
	RepoURL                   string `json:"repoUrl,omitempty"`
	Branch                    string `json:"branch,omitempty"`
	IsManualIntegration       bool   `json:"isManualIntegration,omitempty"`
	DeploymentRollbackEnabled bool   `json:"deploymentRollbackEnabled,omitempty"`
	IsMercurial               bool   `json:"isMercurial,omitempty"`
}

// SourceControl is one account-global source control token registration
// (GitHub, Bitbucket, ...).
type SourceControl struct {
	ID         string                  `json:"id,omitempty"`
	Name       string                  `json:"name"`
	Properties SourceControlProperties `json:"properties"`
}

// SourceControlProperties carries the OAuth token state of a SourceControl.
type SourceControlProperties struct {
	Token       string `json:"token,omitempty"`
	TokenSecret string `json:"tokenSecret,omitempty"`
}

// SourceControlCollection is the paged source control listing envelope.
type SourceControlCollection struct {
	Value    []SourceControl `json:"value"`
	NextLink *string         `json:"nextLink,omitempty"`
}

// PublishingUser is the account-global publishing user resource.
type PublishingUser struct {
	ID         string                   `json:"id,omitempty"`
	Name       string                   `json:"name,omitempty"`
	Properties PublishingUserProperties `json:"properties"`
}

// PublishingUserProperties holds the deployment user name and password.
type PublishingUserProperties struct {
	PublishingUserName string `json:"publishingUserName"`
	PublishingPassword string `json:"publishingPassword,omitempty"`
}

// PublishingCredentials are the per-site deployment credentials returned by
// the publishingcredentials/list operation.
type PublishingCredentials struct {
	ID         string                          `json:"id,omitempty"`
	Name       string                          `json:"name,omitempty"`
	Properties PublishingCredentialsProperties `json:"properties"`
}

// PublishingCredentialsProperties holds the site-scoped basic credentials
// and the SCM endpoint they authenticate against.
type PublishingCredentialsProperties struct {
	PublishingUserName string `json:"publishingUserName"`
	PublishingPassword string `json:"publishingPassword,omitempty"`
	ScmURI             string `json:"scmUri,omitempty"`
}
