package domain

import "time"

// WarehouseStatus enumerates warehouse operational states.
type WarehouseStatus string

const (
	WarehouseStatusOperational WarehouseStatus = "operational"
	WarehouseStatusMaintenance WarehouseStatus = "maintenance"
	WarehouseStatusClosed      WarehouseStatus = "closed"
)

// Warehouse is a storage-site record.
type Warehouse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Location     string          `json:"location"`
	Capacity     float64         `json:"capacity"`
	CurrentStock float64         `json:"currentStock"`
	Manager      string          `json:"manager"`
	Contact      string          `json:"contact"`
	Status       WarehouseStatus `json:"status"`
	CreatedBy    string          `json:"createdBy"`
	CreatedAt    time.Time       `json:"createdAt"`
}
