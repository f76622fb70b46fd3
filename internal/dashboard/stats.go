// Package dashboard derives the admin overview figures from mirror
// snapshots. Everything here is a pure function recomputed on every call;
// nothing is cached or persisted.
package dashboard

import (
	"strconv"
	"time"

	"github.com/montanaflynn/stats"

	"mamanmange/internal/models"
)

// NoPopularDish is shown when no order has been placed yet.
const NoPopularDish = "Aucun"

// NoRating marks the absence of reviews; the view shows it verbatim instead
// of a bogus number.
const NoRating = "N/A"

// TotalRevenue sums totalPrice over every non-cancelled order.
func TotalRevenue(orders []models.Order) int64 {
	var total int64
	for _, order := range orders {
		if order.Status != models.StatusCancelled {
			total += order.TotalPrice
		}
	}
	return total
}

// PendingCount counts orders still waiting to be taken.
func PendingCount(orders []models.Order) int {
	count := 0
	for _, order := range orders {
		if order.Status == models.StatusPending {
			count++
		}
	}
	return count
}

// PopularDish returns the dish name with the highest summed quantity across
// all orders. Ties keep the name encountered first in mirror order, which is
// newest-first.
func PopularDish(orders []models.Order) string {
	counts := make(map[string]int, len(orders))
	names := make([]string, 0, len(orders))
	for _, order := range orders {
		if _, seen := counts[order.DishName]; !seen {
			names = append(names, order.DishName)
		}
		counts[order.DishName] += order.Quantity
	}

	best := NoPopularDish
	bestCount := 0
	for _, name := range names {
		if counts[name] > bestCount {
			best = name
			bestCount = counts[name]
		}
	}
	return best
}

// AverageRating returns the mean review rating formatted to one decimal, or
// NoRating when no reviews exist.
func AverageRating(reviews []models.Review) string {
	if len(reviews) == 0 {
		return NoRating
	}

	ratings := make([]float64, 0, len(reviews))
	for _, review := range reviews {
		ratings = append(ratings, float64(review.Rating))
	}

	mean, err := stats.Mean(ratings)
	if err != nil {
		return NoRating
	}
	return strconv.FormatFloat(mean, 'f', 1, 64)
}

// UnreadMessages counts contact messages not yet opened by the admin.
func UnreadMessages(messages []models.ContactMessage) int {
	count := 0
	for _, message := range messages {
		if !message.Read {
			count++
		}
	}
	return count
}

// DailyRevenue is one bucket of the overview chart.
type DailyRevenue struct {
	Day     string `json:"day"`
	Revenue int64  `json:"revenue"`
}

// RevenueLastDays buckets non-cancelled order revenue per calendar day for
// the last n days, oldest first, ending at now's day.
func RevenueLastDays(orders []models.Order, now time.Time, n int) []DailyRevenue {
	buckets := make([]DailyRevenue, 0, n)
	byDay := make(map[string]int64, n)

	for i := n - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format("2006-01-02")
		byDay[day] = 0
		buckets = append(buckets, DailyRevenue{Day: day})
	}

	for _, order := range orders {
		if order.Status == models.StatusCancelled {
			continue
		}
		day := order.Date.Format("2006-01-02")
		if _, ok := byDay[day]; ok {
			byDay[day] += order.TotalPrice
		}
	}

	for i := range buckets {
		buckets[i].Revenue = byDay[buckets[i].Day]
	}
	return buckets
}

// Stats is the full overview payload.
type Stats struct {
	TotalRevenue   int64          `json:"totalRevenue"`
	OrderCount     int            `json:"orderCount"`
	PendingOrders  int            `json:"pendingOrders"`
	PopularDish    string         `json:"popularDish"`
	MessageCount   int            `json:"messageCount"`
	UnreadMessages int            `json:"unreadMessages"`
	ReviewCount    int            `json:"reviewCount"`
	AverageRating  string         `json:"averageRating"`
	RevenueChart   []DailyRevenue `json:"revenueChart"`
}

// Compute assembles every overview figure from the given snapshots.
func Compute(orders []models.Order, messages []models.ContactMessage, reviews []models.Review, now time.Time) Stats {
	return Stats{
		TotalRevenue:   TotalRevenue(orders),
		OrderCount:     len(orders),
		PendingOrders:  PendingCount(orders),
		PopularDish:    PopularDish(orders),
		MessageCount:   len(messages),
		UnreadMessages: UnreadMessages(messages),
		ReviewCount:    len(reviews),
		AverageRating:  AverageRating(reviews),
		RevenueChart:   RevenueLastDays(orders, now, 7),
	}
}
