package models

import "encoding/json"

// DefaultFunctionKeyName is the reserved key name present in every
// function's key set.
const DefaultFunctionKeyName = "default"

// FunctionEnvelope is one function inside a function app.
type FunctionEnvelope struct {
	ID         string             `json:"id,omitempty"`
	Name       string             `json:"name"`
	Properties FunctionProperties `json:"properties"`
}

// FunctionProperties carries the definition and file links of a function.
type FunctionProperties struct {
	ScriptRootPathHref string          `json:"script_root_path_href,omitempty"`
	ScriptHref         string          `json:"script_href,omitempty"`
	ConfigHref         string          `json:"config_href,omitempty"`
	SecretsFileHref    string          `json:"secrets_file_href,omitempty"`
	Href               string          `json:"href,omitempty"`
	Config             json.RawMessage `json:"config,omitempty"`
	TestData           string          `json:"test_data,omitempty"`
}

// FunctionCollection is one page of a function listing. NextLink, when set,
// is the opaque continuation URL for the following page.
type FunctionCollection struct {
	Value    []FunctionEnvelope `json:"value"`
	NextLink *string            `json:"nextLink,omitempty"`
}

// FunctionSecrets are the invocation secrets of one function.
type FunctionSecrets struct {
	ID         string                    `json:"id,omitempty"`
	Name       string                    `json:"name,omitempty"`
	Properties FunctionSecretsProperties `json:"properties"`
}

// FunctionSecretsProperties holds the key and trigger URL of a function.
type FunctionSecretsProperties struct {
	Key        string `json:"key,omitempty"`
	TriggerURL string `json:"trigger_url,omitempty"`
}

// HostKeys is the response of the host-level listkeys operation. Unlike the
// structured resources it carries no properties envelope.
type HostKeys struct {
	MasterKey    *string           `json:"masterKey,omitempty"`
	FunctionKeys map[string]string `json:"functionKeys,omitempty"`
	SystemKeys   map[string]string `json:"systemKeys,omitempty"`
}

// FunctionKeys maps key names (including DefaultFunctionKeyName) to values
// for one function. Returned by the per-function listKeys operation.
type FunctionKeys map[string]string
