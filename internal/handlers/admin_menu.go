package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"mamanmange/internal/models"
	"mamanmange/internal/store"
)

type dishCreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"required"`
	Image       string `json:"image"`
	Category    string `json:"category" binding:"required"`
	Available   *bool  `json:"available"`
}

type dishAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

// GetAllDishes returns the full menu for the admin screen, unavailable dishes
// included.
func GetAllDishes(dishes *store.DishStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := dishes.FetchAll(c.Request.Context(), false)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": list})
	}
}

func CreateDish(dishes *store.DishStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dishCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		name := strings.TrimSpace(req.Name)
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
			return
		}
		if req.Price <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price"})
			return
		}
		if !models.ValidDishCategory(req.Category) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category must be plat, dessert or boisson"})
			return
		}

		available := true
		if req.Available != nil {
			available = *req.Available
		}

		dish := models.Dish{
			Name:        name,
			Description: strings.TrimSpace(req.Description),
			Price:       req.Price,
			Image:       strings.TrimSpace(req.Image),
			Category:    req.Category,
			Available:   available,
			CreatedAt:   time.Now(),
		}

		created, err := dishes.Insert(c.Request.Context(), dish)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		c.JSON(http.StatusCreated, created)
	}
}

// UpdateDish rewrites every editable field of the dish. The admin form always
// submits the complete dish.
func UpdateDish(dishes *store.DishStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		var req dishCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		name := strings.TrimSpace(req.Name)
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
			return
		}
		if req.Price <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid price"})
			return
		}
		if !models.ValidDishCategory(req.Category) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "category must be plat, dessert or boisson"})
			return
		}

		available := true
		if req.Available != nil {
			available = *req.Available
		}

		dish := models.Dish{
			Name:        name,
			Description: strings.TrimSpace(req.Description),
			Price:       req.Price,
			Image:       strings.TrimSpace(req.Image),
			Category:    req.Category,
			Available:   available,
		}

		updated, err := dishes.Update(c.Request.Context(), id, dish)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.JSON(http.StatusNotFound, gin.H{"error": "dish not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

// SetDishAvailability hides or shows the dish on the public menu.
func SetDishAvailability(dishes *store.DishStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		var req dishAvailabilityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "available must be boolean"})
			return
		}

		updated, err := dishes.SetAvailability(c.Request.Context(), id, *req.Available)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.JSON(http.StatusNotFound, gin.H{"error": "dish not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

func DeleteDish(dishes *store.DishStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		if err := dishes.Delete(c.Request.Context(), id); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.JSON(http.StatusNotFound, gin.H{"error": "dish not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "dish deleted"})
	}
}
