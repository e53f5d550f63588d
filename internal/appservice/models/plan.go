package models

// AppServicePlan is the Microsoft.Web/serverfarms resource backing one or
// more sites.
type AppServicePlan struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Kind       string          `json:"kind,omitempty"`
	Location   string          `json:"location,omitempty"`
	SKU        *SkuDescription `json:"sku,omitempty"`
	Properties PlanProperties  `json:"properties"`
}

// SkuDescription is the pricing tier of a plan. A "Dynamic" tier is the
// consumption (pay-per-execution) plan.
type SkuDescription struct {
	Name     string `json:"name,omitempty"`
	Tier     string `json:"tier,omitempty"`
	Size     string `json:"size,omitempty"`
	Family   string `json:"family,omitempty"`
	Capacity int    `json:"capacity,omitempty"`
}

// PlanProperties is the nested properties envelope of an AppServicePlan.
type PlanProperties struct {
	Status        string `json:"status,omitempty"`
	NumberOfSites int    `json:"numberOfSites,omitempty"`
	Reserved      bool   `json:"reserved,omitempty"`
}
