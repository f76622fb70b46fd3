package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mamanmange/internal/lifecycle"
)

// PlaceOrder is the customer-facing order action. The price is whatever the
// customer proposed in the order modal; the kitchen accepts it implicitly by
// taking the order.
func PlaceOrder(ctrl *lifecycle.Controller) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders"
		defer handlePanic(c, route)

		var draft lifecycle.OrderDraft
		if err := c.ShouldBindJSON(&draft); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		order, err := ctrl.PlaceOrder(c.Request.Context(), draft)
		if err != nil {
			if isDraftError(err) {
				respondWithError(c, http.StatusBadRequest, route, err.Error())
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "order could not be placed")
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"order":   order,
			"message": "order placed",
		})
	}
}

func isDraftError(err error) bool {
	return errors.Is(err, lifecycle.ErrCustomerNameRequired) ||
		errors.Is(err, lifecycle.ErrCustomerPhoneRequired) ||
		errors.Is(err, lifecycle.ErrAddressRequired) ||
		errors.Is(err, lifecycle.ErrInvalidQuantity) ||
		errors.Is(err, lifecycle.ErrInvalidPrice) ||
		errors.Is(err, lifecycle.ErrInvalidDeliveryMode)
}
