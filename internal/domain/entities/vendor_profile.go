package entities

// VendorProfile is a read-only directory record used by ranking and quote generation.
type VendorProfile struct {
	ID                  string  `json:"id" yaml:"id"`
	Name                string  `json:"name" yaml:"name"`
	Rating              float64 `json:"rating" yaml:"rating"`
	ReviewCount         int     `json:"review_count" yaml:"review_count"`
	Premium             bool    `json:"premium" yaml:"premium"`
	Verified            bool    `json:"verified" yaml:"verified"`
	IsPreferredPartner  bool    `json:"is_preferred_partner" yaml:"is_preferred_partner"`
	ResponseTimeMinutes int     `json:"response_time_minutes" yaml:"response_time_minutes"`
	SuccessRate         float64 `json:"success_rate" yaml:"success_rate"`
	MinDeliveryDays     int     `json:"min_delivery_days" yaml:"min_delivery_days"`
	MaxDeliveryDays     int     `json:"max_delivery_days" yaml:"max_delivery_days"`
}
