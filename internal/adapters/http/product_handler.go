package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/flexmobile/shop/internal/application/services"
	"github.com/flexmobile/shop/internal/domain/entities"
	"github.com/flexmobile/shop/internal/infrastructure/logger"
	"github.com/flexmobile/shop/internal/ports"
)

// ProductHandler handles product-related requests
type ProductHandler struct {
	catalog *services.CatalogService
	logger  *logger.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalog *services.CatalogService, logger *logger.Logger) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// ListPublic handles the storefront product listing with optional
// filters and sorting taken from the query string
func (h *ProductHandler) ListPublic(c echo.Context) error {
	filter := ports.ProductFilter{
		Query:    c.QueryParam("q"),
		Category: c.QueryParam("category"),
		Sort:     c.QueryParam("sort"),
	}

	if raw := c.QueryParam("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "minPrice must be a number")
		}
		filter.MinPrice = &v
	}
	if raw := c.QueryParam("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "maxPrice must be a number")
		}
		filter.MaxPrice = &v
	}

	products, err := h.catalog.ListPublic(c.Request().Context(), filter)
	if err != nil {
		h.logger.Error("List products failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list products")
	}

	return c.JSON(http.StatusOK, ProductListResponse{Products: products})
}

// ListAdmin handles the admin product listing, soft-deleted included
func (h *ProductHandler) ListAdmin(c echo.Context) error {
	products, err := h.catalog.ListAdmin(c.Request().Context())
	if err != nil {
		h.logger.Error("List products failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list products")
	}

	return c.JSON(http.StatusOK, ProductListResponse{Products: products})
}

// Create handles admin product creation
func (h *ProductHandler) Create(c echo.Context) error {
	var req ports.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.catalog.CreateProduct(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("Create product failed", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, ProductResponse{Product: product})
}

// Delete handles admin product soft-deletion
func (h *ProductHandler) Delete(c echo.Context) error {
	id := c.Param("id")

	if err := h.catalog.DeleteProduct(c.Request().Context(), id); err != nil {
		if errors.Is(err, entities.ErrProductNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Product not found")
		}
		h.logger.Error("Delete product failed", "error", err, "product_id", id)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete product")
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Product deleted"})
}
