package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"mamanmange/internal/models"
	"mamanmange/internal/store"
)

type specialtyCreateRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

func GetAdminSpecialties(specialties *store.SpecialtyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := specialties.FetchAll(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": list})
	}
}

func CreateSpecialty(specialties *store.SpecialtyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req specialtyCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		specialty := models.Specialty{
			Title:       strings.TrimSpace(req.Title),
			Description: strings.TrimSpace(req.Description),
		}

		created, err := specialties.Insert(c.Request.Context(), specialty)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func UpdateSpecialty(specialties *store.SpecialtyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		var req specialtyCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		specialty := models.Specialty{
			Title:       strings.TrimSpace(req.Title),
			Description: strings.TrimSpace(req.Description),
		}

		updated, err := specialties.Update(c.Request.Context(), id, specialty)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.JSON(http.StatusNotFound, gin.H{"error": "specialty not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func DeleteSpecialty(specialties *store.SpecialtyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		if err := specialties.Delete(c.Request.Context(), id); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.JSON(http.StatusNotFound, gin.H{"error": "specialty not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// UpdateSettings replaces the settings singleton wholesale; the form always
// submits the complete object.
func UpdateSettings(settings *store.SettingsStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SiteSettings
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		if err := settings.Replace(c.Request.Context(), req); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "settings saved"})
	}
}

type galleryAddRequest struct {
	URL string `json:"url" binding:"required"`
}

func AddGalleryImage(gallery *store.GalleryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req galleryAddRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		url := strings.TrimSpace(req.URL)
		if url == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "url required"})
			return
		}

		image, err := gallery.Add(c.Request.Context(), url)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusCreated, image)
	}
}

// DeleteGalleryImage removes an image by its URL, matching how the gallery
// screen identifies images.
func DeleteGalleryImage(gallery *store.GalleryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		url := strings.TrimSpace(c.Query("url"))
		if url == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "url required"})
			return
		}

		if err := gallery.DeleteByURL(c.Request.Context(), url); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.JSON(http.StatusNotFound, gin.H{"error": "image not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "image deleted"})
	}
}
