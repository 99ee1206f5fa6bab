package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/warehouse-service/internal/api/dto"
	"github.com/spec-kit/warehouse-service/internal/domain"
	"github.com/spec-kit/warehouse-service/internal/service"
	apperrors "github.com/spec-kit/warehouse-service/pkg/util"
)

// SuppliersHandler manages supplier CRUD endpoints.
type SuppliersHandler struct {
	service *service.SupplierService
}

// NewSuppliersHandler constructs handler.
func NewSuppliersHandler(supplierService *service.SupplierService) *SuppliersHandler {
	return &SuppliersHandler{service: supplierService}
}

// List GET /api/suppliers.
func (h *SuppliersHandler) List(c *fiber.Ctx) error {
	suppliers, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		items = append(items, supplierResponse(&suppliers[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /api/suppliers/:id.
func (h *SuppliersHandler) Get(c *fiber.Ctx) error {
	supplier, err := h.service.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": supplierResponse(supplier)})
}

// Create POST /api/suppliers.
func (h *SuppliersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	supplier, err := h.service.Create(c.UserContext(), service.SupplierCreateInput{
		Name:             req.Name,
		Contact:          req.Contact,
		Email:            req.Email,
		Address:          req.Address,
		ProductsSupplied: req.ProductsSupplied,
		Rating:           req.Rating,
		Status:           req.Status,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": supplierResponse(supplier)})
}

// Update PUT /api/suppliers/:id.
func (h *SuppliersHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateSupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	supplier, err := h.service.Update(c.UserContext(), c.Params("id"), service.SupplierUpdateInput{
		Name:             req.Name,
		Contact:          req.Contact,
		Email:            req.Email,
		Address:          req.Address,
		ProductsSupplied: req.ProductsSupplied,
		Rating:           req.Rating,
		Status:           req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": supplierResponse(supplier)})
}

// Delete DELETE /api/suppliers/:id.
func (h *SuppliersHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "supplier deleted successfully"}})
}

func supplierResponse(supplier *domain.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{
		ID:               supplier.ID,
		Name:             supplier.Name,
		Contact:          supplier.Contact,
		Email:            supplier.Email,
		Address:          supplier.Address,
		ProductsSupplied: supplier.ProductsSupplied,
		Rating:           supplier.Rating,
		Status:           supplier.Status,
		CreatedBy:        supplier.CreatedBy,
		CreatedAt:        supplier.CreatedAt,
	}
}
