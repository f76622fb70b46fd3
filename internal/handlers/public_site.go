package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"mamanmange/internal/mirror"
	"mamanmange/internal/models"
	"mamanmange/internal/store"
)

// GetDishes returns the public menu: available dishes only.
func GetDishes(dishes *store.DishStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /dishes"
		defer handlePanic(c, route)

		list, err := dishes.FetchAll(c.Request.Context(), true)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func GetSpecialties(specialties *store.SpecialtyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /specialties"
		defer handlePanic(c, route)

		list, err := specialties.FetchAll(c.Request.Context())
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func GetReviews(reviews *store.ReviewStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /reviews"
		defer handlePanic(c, route)

		list, err := reviews.FetchAll(c.Request.Context())
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func GetSettings(settings *store.SettingsStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /settings"
		defer handlePanic(c, route)

		current, err := settings.Get(c.Request.Context())
		if err != nil {
			// The site works before first configuration; the view falls
			// back to its built-in defaults.
			c.JSON(http.StatusOK, nil)
			return
		}
		c.JSON(http.StatusOK, current)
	}
}

func GetGallery(gallery *store.GalleryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /gallery"
		defer handlePanic(c, route)

		images, err := gallery.FetchAll(c.Request.Context())
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		c.JSON(http.StatusOK, images)
	}
}

type createMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// CreateMessage handles the public contact form.
func CreateMessage(messages *store.MessageStore, m *mirror.Mirror) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /messages"
		defer handlePanic(c, route)

		var req createMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		message := models.ContactMessage{
			Name:    strings.TrimSpace(req.Name),
			Phone:   strings.TrimSpace(req.Phone),
			Message: strings.TrimSpace(req.Message),
			Date:    time.Now(),
			Read:    false,
		}

		created, err := messages.Insert(c.Request.Context(), message)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "message could not be sent")
			return
		}

		m.InsertMessage(created)
		c.JSON(http.StatusCreated, created)
	}
}

type createReviewRequest struct {
	Author  string `json:"author" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment" binding:"required"`
}

// CreateReview handles the public review form. Ratings go from 1 to 5.
func CreateReview(reviews *store.ReviewStore, m *mirror.Mirror) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /reviews"
		defer handlePanic(c, route)

		var req createReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		if req.Rating < 1 || req.Rating > 5 {
			respondWithError(c, http.StatusBadRequest, route, "rating must be between 1 and 5")
			return
		}

		review := models.Review{
			Author:  strings.TrimSpace(req.Author),
			Rating:  req.Rating,
			Comment: strings.TrimSpace(req.Comment),
			Date:    time.Now(),
			Read:    false,
		}

		created, err := reviews.Insert(c.Request.Context(), review)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "review could not be saved")
			return
		}

		m.InsertReview(created)
		c.JSON(http.StatusCreated, created)
	}
}
