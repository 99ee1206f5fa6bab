package dto

import (
	"time"

	"github.com/spec-kit/warehouse-service/internal/domain"
)

// CreateSupplierRequest payload for new suppliers.
type CreateSupplierRequest struct {
	Name             string                 `json:"name"`
	Contact          string                 `json:"contact"`
	Email            string                 `json:"email"`
	Address          string                 `json:"address"`
	ProductsSupplied []string               `json:"productsSupplied"`
	Rating           *float64               `json:"rating"`
	Status           *domain.SupplierStatus `json:"status"`
}

// UpdateSupplierRequest is a partial payload; absent fields keep prior values.
type UpdateSupplierRequest struct {
	Name             *string                `json:"name"`
	Contact          *string                `json:"contact"`
	Email            *string                `json:"email"`
	Address          *string                `json:"address"`
	ProductsSupplied *[]string              `json:"productsSupplied"`
	Rating           *float64               `json:"rating"`
	Status           *domain.SupplierStatus `json:"status"`
}

// SupplierResponse is the wire form of a supplier record.
type SupplierResponse struct {
	ID               string                `json:"id"`
	Name             string                `json:"name"`
	Contact          string                `json:"contact"`
	Email            string                `json:"email"`
	Address          string                `json:"address"`
	ProductsSupplied []string              `json:"productsSupplied"`
	Rating           float64               `json:"rating"`
	Status           domain.SupplierStatus `json:"status"`
	CreatedBy        string                `json:"createdBy"`
	CreatedAt        time.Time             `json:"createdAt"`
}
