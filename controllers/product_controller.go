package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"candle-shop/models"
	"candle-shop/services"
)

type ProductController struct {
	products *services.ProductService
}

func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{products: products}
}

func parseFilter(c *gin.Context) models.ProductFilter {
	filter := models.ProductFilter{
		Category:  c.Query("category"),
		Fragrance: c.Query("fragrance"),
		Search:    c.Query("search"),
	}

	if raw := c.Query("featured"); raw != "" {
		if featured, err := strconv.ParseBool(raw); err == nil {
			filter.Featured = &featured
		}
	}
	if raw := c.Query("minPrice"); raw != "" {
		if minPrice, err := strconv.Atoi(raw); err == nil {
			filter.MinPrice = &minPrice
		}
	}
	if raw := c.Query("maxPrice"); raw != "" {
		if maxPrice, err := strconv.Atoi(raw); err == nil {
			filter.MaxPrice = &maxPrice
		}
	}
	if raw := c.Query("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil {
			filter.Limit = limit
		}
	}
	return filter
}

// List godoc
// @Summary List products
// @Description List catalog products with optional filters
// @Tags Products
// @Produce json
// @Param category query string false "Exact category match"
// @Param fragrance query string false "Exact fragrance match"
// @Param search query string false "Substring match on name, description or category"
// @Param featured query bool false "Featured flag"
// @Param minPrice query int false "Minimum price (inclusive)"
// @Param maxPrice query int false "Maximum price (inclusive)"
// @Param limit query int false "Max results" default(50)
// @Success 200 {array} models.Product
// @Router /products [get]
func (ctrl *ProductController) List(c *gin.Context) {
	products, err := ctrl.products.List(c.Request.Context(), parseFilter(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to list products",
		})
		return
	}
	c.JSON(http.StatusOK, products)
}

// Get godoc
// @Summary Get product
// @Description Get product details by id
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) Get(c *gin.Context) {
	product, err := ctrl.products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Success: false,
				Message: "Product not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to load product",
		})
		return
	}
	c.JSON(http.StatusOK, product)
}

// Create godoc
// @Summary Create product
// @Description Create a new catalog product (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.ProductPayload true "Product"
// @Success 201 {object} models.Product
// @Failure 400 {object} models.ErrorResponse
// @Router /products [post]
func (ctrl *ProductController) Create(c *gin.Context) {
	var payload models.ProductPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	product, err := ctrl.products.Create(c.Request.Context(), payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to create product",
		})
		return
	}
	c.JSON(http.StatusCreated, product)
}

// Update godoc
// @Summary Update product
// @Description Replace a product document (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body models.ProductPayload true "Product"
// @Success 200 {object} models.Product
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [put]
func (ctrl *ProductController) Update(c *gin.Context) {
	var payload models.ProductPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	product, err := ctrl.products.Update(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Success: false,
				Message: "Product not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to update product",
		})
		return
	}
	c.JSON(http.StatusOK, product)
}

// Delete godoc
// @Summary Delete product
// @Description Remove a product from the catalog (Admin)
// @Tags Admin - Products
// @Security BearerAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [delete]
func (ctrl *ProductController) Delete(c *gin.Context) {
	err := ctrl.products.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Success: false,
				Message: "Product not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to delete product",
		})
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Product deleted successfully"})
}
