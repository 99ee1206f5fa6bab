package dto

import (
	"time"

	"github.com/spec-kit/warehouse-service/internal/domain"
)

// CreateWarehouseRequest payload for new warehouses.
type CreateWarehouseRequest struct {
	Name         string                  `json:"name"`
	Location     string                  `json:"location"`
	Capacity     *float64                `json:"capacity"`
	CurrentStock *float64                `json:"currentStock"`
	Manager      string                  `json:"manager"`
	Contact      string                  `json:"contact"`
	Status       *domain.WarehouseStatus `json:"status"`
}

// UpdateWarehouseRequest is a partial payload; absent fields keep prior values.
type UpdateWarehouseRequest struct {
	Name         *string                 `json:"name"`
	Location     *string                 `json:"location"`
	Capacity     *float64                `json:"capacity"`
	CurrentStock *float64                `json:"currentStock"`
	Manager      *string                 `json:"manager"`
	Contact      *string                 `json:"contact"`
	Status       *domain.WarehouseStatus `json:"status"`
}

// WarehouseResponse is the wire form of a warehouse record.
type WarehouseResponse struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	Location     string                 `json:"location"`
	Capacity     float64                `json:"capacity"`
	CurrentStock float64                `json:"currentStock"`
	Manager      string                 `json:"manager"`
	Contact      string                 `json:"contact"`
	Status       domain.WarehouseStatus `json:"status"`
	CreatedBy    string                 `json:"createdBy"`
	CreatedAt    time.Time              `json:"createdAt"`
}
