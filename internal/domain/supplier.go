package domain

import "time"

// SupplierStatus enumerates supplier lifecycle states.
type SupplierStatus string

const (
	SupplierStatusActive   SupplierStatus = "active"
	SupplierStatusInactive SupplierStatus = "inactive"
)

// Supplier is a vendor record. CreatedBy references the acting user at
// creation time and is never re-validated against the live user set.
type Supplier struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Contact          string         `json:"contact"`
	Email            string         `json:"email"`
	Address          string         `json:"address"`
	ProductsSupplied []string       `json:"productsSupplied"`
	Rating           float64        `json:"rating"`
	Status           SupplierStatus `json:"status"`
	CreatedBy        string         `json:"createdBy"`
	CreatedAt        time.Time      `json:"createdAt"`
}
