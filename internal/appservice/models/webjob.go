package models

// WebJob is one background job hosted by a site.
type WebJob struct {
	ID         string           `json:"id,omitempty"`
	Name       string           `json:"name"`
	Kind       string           `json:"kind,omitempty"`
	Properties WebJobProperties `json:"properties"`
}

// WebJobProperties describes how a web job runs.
type WebJobProperties struct {
	RunCommand string `json:"run_command,omitempty"`
	URL        string `json:"url,omitempty"`
	WebJobType string `json:"web_job_type,omitempty"`
	UsingSdk   bool   `json:"using_sdk,omitempty"`
	Error      string `json:"error,omitempty"`
}

// WebJobCollection is the paged web job listing envelope.
type WebJobCollection struct {
	Value    []WebJob `json:"value"`
	NextLink *string  `json:"nextLink,omitempty"`
}
