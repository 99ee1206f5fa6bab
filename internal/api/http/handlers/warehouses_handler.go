package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/warehouse-service/internal/api/dto"
	"github.com/spec-kit/warehouse-service/internal/domain"
	"github.com/spec-kit/warehouse-service/internal/service"
	apperrors "github.com/spec-kit/warehouse-service/pkg/util"
)

// WarehousesHandler manages warehouse CRUD endpoints.
type WarehousesHandler struct {
	service *service.WarehouseService
}

// NewWarehousesHandler constructs handler.
func NewWarehousesHandler(warehouseService *service.WarehouseService) *WarehousesHandler {
	return &WarehousesHandler{service: warehouseService}
}

// List GET /api/warehouses.
func (h *WarehousesHandler) List(c *fiber.Ctx) error {
	warehouses, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.WarehouseResponse, 0, len(warehouses))
	for i := range warehouses {
		items = append(items, warehouseResponse(&warehouses[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get GET /api/warehouses/:id.
func (h *WarehousesHandler) Get(c *fiber.Ctx) error {
	warehouse, err := h.service.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": warehouseResponse(warehouse)})
}

// Create POST /api/warehouses.
func (h *WarehousesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateWarehouseRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	warehouse, err := h.service.Create(c.UserContext(), service.WarehouseCreateInput{
		Name:         req.Name,
		Location:     req.Location,
		Capacity:     req.Capacity,
		CurrentStock: req.CurrentStock,
		Manager:      req.Manager,
		Contact:      req.Contact,
		Status:       req.Status,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": warehouseResponse(warehouse)})
}

// Update PUT /api/warehouses/:id.
func (h *WarehousesHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateWarehouseRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	warehouse, err := h.service.Update(c.UserContext(), c.Params("id"), service.WarehouseUpdateInput{
		Name:         req.Name,
		Location:     req.Location,
		Capacity:     req.Capacity,
		CurrentStock: req.CurrentStock,
		Manager:      req.Manager,
		Contact:      req.Contact,
		Status:       req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": warehouseResponse(warehouse)})
}

// Delete DELETE /api/warehouses/:id.
func (h *WarehousesHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "warehouse deleted successfully"}})
}

func warehouseResponse(warehouse *domain.Warehouse) dto.WarehouseResponse {
	return dto.WarehouseResponse{
		ID:           warehouse.ID,
		Name:         warehouse.Name,
		Location:     warehouse.Location,
		Capacity:     warehouse.Capacity,
		CurrentStock: warehouse.CurrentStock,
		Manager:      warehouse.Manager,
		Contact:      warehouse.Contact,
		Status:       warehouse.Status,
		CreatedBy:    warehouse.CreatedBy,
		CreatedAt:    warehouse.CreatedAt,
	}
}
