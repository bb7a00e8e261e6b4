package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"candle-shop/models"
	"candle-shop/services"
)

type AdminController struct {
	auth   *services.AuthService
	orders *services.OrderService
}

func NewAdminController(auth *services.AuthService, orders *services.OrderService) *AdminController {
	return &AdminController{auth: auth, orders: orders}
}

// Dashboard godoc
// @Summary Admin dashboard
// @Description Store-wide statistics, recomputed on every request
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.DashboardStats
// @Failure 403 {object} models.ErrorResponse
// @Router /admin/dashboard [get]
func (ctrl *AdminController) Dashboard(c *gin.Context) {
	stats, err := ctrl.orders.Dashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to load dashboard",
		})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Users godoc
// @Summary List users
// @Description List all accounts (Admin)
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.User
// @Failure 403 {object} models.ErrorResponse
// @Router /admin/users [get]
func (ctrl *AdminController) Users(c *gin.Context) {
	users, err := ctrl.auth.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to list users",
		})
		return
	}
	c.JSON(http.StatusOK, users)
}
