package models

// StringDict is the envelope used by application settings and similar
// name/value resources.
type StringDict struct {
	ID         string            `json:"id,omitempty"`
	Name       string            `json:"name,omitempty"`
	Properties map[string]string `json:"properties"`
}

// SlotConfigNames lists the setting and connection string names that stick
// to a slot during a swap. The resource only exists on the production app.
type SlotConfigNames struct {
	ID         string                    `json:"id,omitempty"`
	Name       string                    `json:"name,omitempty"`
	Properties SlotConfigNamesProperties `json:"properties"`
}

// SlotConfigNamesProperties is the nested properties envelope of
// SlotConfigNames.
type SlotConfigNamesProperties struct {
	ConnectionStringNames []string `json:"connectionStringNames,omitempty"`
	AppSettingNames       []string `json:"appSettingNames,omitempty"`
}
