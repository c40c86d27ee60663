package models

// ServiceResponse is one catalog service as exposed over the API.
// EffectiveValue already accounts for an active promotion.
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Value           float64 `json:"value"`
	EffectiveValue  float64 `json:"effectiveValue"`
	InPromotion     bool    `json:"inPromotion"`
	DurationMinutes int     `json:"durationMinutes"`
	Active          bool    `json:"active"`
}

// ServiceListResponse is the tenant's catalog.
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}
