package models

import "time"

type Visit struct {
	Phone        string    `json:"phone"`
	Date         time.Time `json:"date"`
	HomesVisited string    `json:"homes_visited"`
	LeadOwner    string    `json:"lead_owner"`
	VAEmail      string    `json:"va_email"`
	Locality     string    `json:"locality"`
	Managed      bool      `json:"managed"`
	Completed    bool      `json:"completed"`
}

type OwnerLead struct {
	Phone     string    `json:"phone"`
	LeadOwner string    `json:"lead_owner"`
	Status    string    `json:"status"`
	Locality  string    `json:"locality"`
	CreatedAt time.Time `json:"created_at"`
}

type BuyerLead struct {
	Phone      string    `json:"phone"`
	PriceRange string    `json:"price_range"`
	Locality   string    `json:"locality"`
	CreatedAt  time.Time `json:"created_at"`
}

type Home struct {
	ID       string  `json:"id"`
	Status   string  `json:"status"`
	Locality string  `json:"locality"`
	AskPrice float64 `json:"ask_price"`
}

type CatalogueItem struct {
	HomeID       string `json:"home_id"`
	FloorPlanURL string `json:"floor_plan_url"`
}

type Inspection struct {
	PropertyID string    `json:"property_id"`
	VAName     string    `json:"va_name"`
	Date       time.Time `json:"date"`
}

type PriceHistoryEntry struct {
	PropertyID string    `json:"property_id"`
	Date       time.Time `json:"date"`
	Price      float64   `json:"price"`
}

type Offer struct {
	ID     string    `json:"id"`
	Status string    `json:"status"`
	Date   time.Time `json:"date"`
}

type Admin struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type Override struct {
	Person        string    `json:"person"`
	Tours         int       `json:"tours"`
	GoogleRatings int       `json:"google_ratings"`
	UpdatedAt     time.Time `json:"updated_at"`
}
