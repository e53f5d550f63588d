// Package models holds the ARM wire types exchanged with the App Service
// management API. All types are plain JSON structs; nested "properties"
// envelopes mirror the resource shapes on the wire.
package models

// HostType values used in HostNameSslState.
const (
	HostTypeStandard   = "Standard"
	HostTypeRepository = "Repository"
)

// Site is the Microsoft.Web/sites resource descriptor. A deployment slot is
// the same resource shape with a "sitename/slotname" Name.
type Site struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Kind       string         `json:"kind"`
	Location   string         `json:"location"`
	Type       string         `json:"type,omitempty"`
	Properties SiteProperties `json:"properties"`
}

// SiteProperties is the nested properties envelope of a Site.
type SiteProperties struct {
	State             string             `json:"state,omitempty"`
	HostNames         []string           `json:"hostNames,omitempty"`
	ResourceGroup     string             `json:"resourceGroup"`
	ServerFarmID      string             `json:"serverFarmId"`
	Enabled           bool               `json:"enabled,omitempty"`
	DefaultHostName   string             `json:"defaultHostName"`
	HostNameSslStates []HostNameSslState `json:"hostNameSslStates,omitempty"`
}

// HostNameSslState describes one host binding of a site. The binding with
// HostType "Repository" is the Kudu (SCM) endpoint.
type HostNameSslState struct {
	Name     string `json:"name"`
	SslState string `json:"sslState,omitempty"`
	HostType string `json:"hostType,omitempty"`
}

// SiteInstance identifies one running instance of a site.
type SiteInstance struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// SiteInstanceCollection is the paged instance listing envelope.
type SiteInstanceCollection struct {
	Value    []SiteInstance `json:"value"`
	NextLink *string        `json:"nextLink,omitempty"`
}
