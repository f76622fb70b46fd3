package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mamanmange/internal/models"
)

func TestTotalRevenueExcludesCancelled(t *testing.T) {
	orders := []models.Order{
		{DishName: "Foufou Royal", TotalPrice: 7000, Status: models.StatusDelivered},
		{DishName: "Ndole", TotalPrice: 5000, Status: models.StatusPending},
		{DishName: "Eru", TotalPrice: 9000, Status: models.StatusCancelled},
	}

	assert.Equal(t, int64(12000), TotalRevenue(orders))
}

func TestTotalRevenueTracksCancelFlips(t *testing.T) {
	order := models.Order{DishName: "Foufou Royal", TotalPrice: 7000, Status: models.StatusPending}

	assert.Equal(t, int64(7000), TotalRevenue([]models.Order{order}))

	order.Status = models.StatusCancelled
	assert.Equal(t, int64(0), TotalRevenue([]models.Order{order}))

	order.Status = models.StatusPending
	assert.Equal(t, int64(7000), TotalRevenue([]models.Order{order}))
}

func TestPendingCount(t *testing.T) {
	orders := []models.Order{
		{Status: models.StatusPending},
		{Status: models.StatusCooking},
		{Status: models.StatusPending},
		{Status: models.StatusDelivered},
	}

	assert.Equal(t, 2, PendingCount(orders))
}

func TestPopularDishSumsQuantities(t *testing.T) {
	orders := []models.Order{
		{DishName: "Ndole", Quantity: 1},
		{DishName: "Poulet DG", Quantity: 2},
		{DishName: "Ndole", Quantity: 2},
	}

	assert.Equal(t, "Ndole", PopularDish(orders))
}

func TestPopularDishTieKeepsFirstEncountered(t *testing.T) {
	orders := []models.Order{
		{DishName: "Eru", Quantity: 2},
		{DishName: "Poulet DG", Quantity: 2},
	}

	assert.Equal(t, "Eru", PopularDish(orders))
}

func TestPopularDishEmpty(t *testing.T) {
	assert.Equal(t, NoPopularDish, PopularDish(nil))
}

func TestAverageRatingOneDecimal(t *testing.T) {
	reviews := []models.Review{
		{Rating: 5},
		{Rating: 3},
	}

	assert.Equal(t, "4.0", AverageRating(reviews))
}

func TestAverageRatingRounds(t *testing.T) {
	reviews := []models.Review{
		{Rating: 5},
		{Rating: 4},
		{Rating: 4},
	}

	assert.Equal(t, "4.3", AverageRating(reviews))
}

func TestAverageRatingNoReviews(t *testing.T) {
	assert.Equal(t, NoRating, AverageRating(nil))
}

func TestUnreadMessages(t *testing.T) {
	messages := []models.ContactMessage{
		{Read: false},
		{Read: true},
		{Read: false},
	}

	assert.Equal(t, 2, UnreadMessages(messages))
}

func TestRevenueLastDaysBuckets(t *testing.T) {
	now := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	orders := []models.Order{
		{TotalPrice: 7000, Status: models.StatusDelivered, Date: now},
		{TotalPrice: 5000, Status: models.StatusDelivered, Date: now.AddDate(0, 0, -1)},
		{TotalPrice: 9000, Status: models.StatusCancelled, Date: now},
		// Outside the window.
		{TotalPrice: 4000, Status: models.StatusDelivered, Date: now.AddDate(0, 0, -10)},
	}

	buckets := RevenueLastDays(orders, now, 7)
	require.Len(t, buckets, 7)

	assert.Equal(t, "2025-03-04", buckets[0].Day)
	assert.Equal(t, "2025-03-10", buckets[6].Day)
	assert.Equal(t, int64(7000), buckets[6].Revenue)
	assert.Equal(t, int64(5000), buckets[5].Revenue)
	assert.Equal(t, int64(0), buckets[0].Revenue)
}

func TestCompute(t *testing.T) {
	now := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	orders := []models.Order{
		{DishName: "Foufou Royal", Quantity: 1, TotalPrice: 7000, Status: models.StatusPending, Date: now},
		{DishName: "Ndole", Quantity: 3, TotalPrice: 15000, Status: models.StatusDelivered, Date: now},
		{DishName: "Eru", Quantity: 5, TotalPrice: 20000, Status: models.StatusCancelled, Date: now},
	}
	messages := []models.ContactMessage{{Read: false}, {Read: true}}
	reviews := []models.Review{{Rating: 5}, {Rating: 3}}

	stats := Compute(orders, messages, reviews, now)

	assert.Equal(t, int64(22000), stats.TotalRevenue)
	assert.Equal(t, 3, stats.OrderCount)
	assert.Equal(t, 1, stats.PendingOrders)
	assert.Equal(t, "Eru", stats.PopularDish)
	assert.Equal(t, 2, stats.MessageCount)
	assert.Equal(t, 1, stats.UnreadMessages)
	assert.Equal(t, 2, stats.ReviewCount)
	assert.Equal(t, "4.0", stats.AverageRating)
	assert.Len(t, stats.RevenueChart, 7)
}
