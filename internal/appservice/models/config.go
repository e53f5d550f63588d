package models

// SiteConfig is the web/config resource of a site.
type SiteConfig struct {
	ID         string               `json:"id,omitempty"`
	Name       string               `json:"name,omitempty"`
	Properties SiteConfigProperties `json:"properties"`
}

// SiteConfigProperties carries the configurable runtime settings of a site.
type SiteConfigProperties struct {
	NumberOfWorkers   int     `json:"numberOfWorkers,omitempty"`
	LinuxFxVersion    string  `json:"linuxFxVersion,omitempty"`
	AppCommandLine    *string `json:"appCommandLine,omitempty"`
	AlwaysOn          *bool   `json:"alwaysOn,omitempty"`
	Http20Enabled     *bool   `json:"http20Enabled,omitempty"`
	ScmType           string  `json:"scmType,omitempty"`
	FtpsState         string  `json:"ftpsState,omitempty"`
	WebSocketsEnabled *bool   `json:"webSocketsEnabled,omitempty"`
}

// LogsConfig is the logs/config resource of a site.
type LogsConfig struct {
	ID         string               `json:"id,omitempty"`
	Name       string               `json:"name,omitempty"`
	Properties LogsConfigProperties `json:"properties"`
}

// LogsConfigProperties groups the diagnostic log destinations of a site.
type LogsConfigProperties struct {
	ApplicationLogs       *ApplicationLogsConfig `json:"applicationLogs,omitempty"`
	HTTPLogs              *HTTPLogsConfig        `json:"httpLogs,omitempty"`
	FailedRequestsTracing *EnabledConfig         `json:"failedRequestsTracing,omitempty"`
	DetailedErrorMessages *EnabledConfig         `json:"detailedErrorMessages,omitempty"`
}

// ApplicationLogsConfig controls application log capture.
type ApplicationLogsConfig struct {
	FileSystem *FileSystemApplicationLogsConfig `json:"fileSystem,omitempty"`
}

// FileSystemApplicationLogsConfig sets the filesystem application log level.
type FileSystemApplicationLogsConfig struct {
	Level string `json:"level,omitempty"`
}

// HTTPLogsConfig controls HTTP (web server) log capture.
type HTTPLogsConfig struct {
	FileSystem *FileSystemHTTPLogsConfig `json:"fileSystem,omitempty"`
}

// FileSystemHTTPLogsConfig sets filesystem HTTP log retention.
type FileSystemHTTPLogsConfig struct {
	RetentionInMb   int  `json:"retentionInMb,omitempty"`
	RetentionInDays int  `json:"retentionInDays,omitempty"`
	Enabled         bool `json:"enabled"`
}

// EnabledConfig is an on/off toggle shared by several log destinations.
type EnabledConfig struct {
	Enabled bool `json:"enabled"`
}
