package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"mamanmange/internal/mirror"
	"mamanmange/internal/store"
)

// Contact messages and reviews share the same simple admin lifecycle: list,
// mark as read, delete. Lists come from the mirror so other sessions'
// changes are already merged in.

func GetAdminMessages(m *mirror.Mirror) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, m.Messages())
	}
}

func MarkMessageRead(messages *store.MessageStore, m *mirror.Mirror) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		if err := messages.MarkRead(c.Request.Context(), id); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		if message, ok := m.Message(id); ok {
			message.Read = true
			m.UpdateMessage(message)
		}
		c.JSON(http.StatusOK, gin.H{"message": "marked as read"})
	}
}

func DeleteMessage(messages *store.MessageStore, m *mirror.Mirror) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		if err := messages.Delete(c.Request.Context(), id); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		m.DeleteMessage(id)
		c.JSON(http.StatusOK, gin.H{"message": "message deleted"})
	}
}

func GetAdminReviews(m *mirror.Mirror) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, m.Reviews())
	}
}

func MarkReviewRead(reviews *store.ReviewStore, m *mirror.Mirror) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		if err := reviews.MarkRead(c.Request.Context(), id); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		if review, ok := m.Review(id); ok {
			review.Read = true
			m.UpdateReview(review)
		}
		c.JSON(http.StatusOK, gin.H{"message": "marked as read"})
	}
}

func DeleteReview(reviews *store.ReviewStore, m *mirror.Mirror) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		if err := reviews.Delete(c.Request.Context(), id); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		m.DeleteReview(id)
		c.JSON(http.StatusOK, gin.H{"message": "review deleted"})
	}
}
