package models

// DashboardStats holds per-entity row counts for the admin overview.
type DashboardStats struct {
	Managers int `json:"managers"`
	Teams    int `json:"teams"`
	Sports   int `json:"sports"`
	Students int `json:"students"`
	Coaches  int `json:"coaches"`
	Notices  int `json:"notices"`
}
