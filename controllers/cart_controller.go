package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"candle-shop/middleware"
	"candle-shop/models"
	"candle-shop/services"
)

type CartController struct {
	carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{carts: carts}
}

// Get godoc
// @Summary Get cart
// @Description Get the current user's cart; an empty cart is returned when none exists
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Cart
// @Failure 401 {object} models.ErrorResponse
// @Router /cart [get]
func (ctrl *CartController) Get(c *gin.Context) {
	user := middleware.CurrentUser(c)

	cart, err := ctrl.carts.Get(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to load cart",
		})
		return
	}
	c.JSON(http.StatusOK, cart)
}

// Replace godoc
// @Summary Replace cart
// @Description Overwrite the current user's cart with the supplied items
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body []models.CartItem true "Cart items"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /cart [post]
func (ctrl *CartController) Replace(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var items []models.CartItem
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	if err := ctrl.carts.Replace(c.Request.Context(), user.ID, items); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to update cart",
		})
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Cart updated successfully"})
}
