package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"mamanmange/internal/dashboard"
	"mamanmange/internal/lifecycle"
	"mamanmange/internal/mirror"
	"mamanmange/internal/models"
)

// GetAdminOrders serves the order list straight from the mirror, newest
// first. The mirror is what the realtime feed keeps current, so another
// admin's changes show up here without a refetch.
func GetAdminOrders(m *mirror.Mirror) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, m.Orders())
	}
}

type setStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// SetOrderStatus accepts any of the five status values. Transition rules live
// in the admin UI's buttons, not here.
func SetOrderStatus(ctrl *lifecycle.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		var req setStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		if err := ctrl.SetStatus(c.Request.Context(), orderID, req.Status); err != nil {
			if errors.Is(err, lifecycle.ErrInvalidStatus) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "status updated"})
	}
}

// DeleteOrder removes an order. The dashboard only shows the button on
// delivered or cancelled orders, but any order can be deleted.
func DeleteOrder(ctrl *lifecycle.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		if err := ctrl.Delete(c.Request.Context(), orderID); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "order deleted"})
	}
}

// GetStats recomputes the overview figures from the current mirror on every
// request.
func GetStats(m *mirror.Mirror) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats := dashboard.Compute(m.Orders(), m.Messages(), m.Reviews(), time.Now())
		c.JSON(http.StatusOK, stats)
	}
}
