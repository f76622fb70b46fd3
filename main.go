package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"mamanmange/internal/config"
	"mamanmange/internal/database"
	"mamanmange/internal/events"
	"mamanmange/internal/handlers"
	"mamanmange/internal/lifecycle"
	"mamanmange/internal/middleware"
	"mamanmange/internal/mirror"
	"mamanmange/internal/reconciler"
	"mamanmange/internal/store"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureUserIndexes(db); err != nil {
		log.Println("⚠️ user index warning:", err)
	}
	if err := database.EnsureOrderIndexes(db); err != nil {
		log.Println("⚠️ order index warning:", err)
	}
	if err := database.EnsureGalleryIndexes(db); err != nil {
		log.Println("⚠️ gallery index warning:", err)
	}

	// The change feed is best-effort: without it the process still serves
	// requests, it just stops seeing other sessions' writes.
	var pub events.Publisher
	if natsPub, err := events.NewNATSPublisher(config.AppEnv.NatsURL); err != nil {
		log.Println("⚠️ change feed publisher unavailable:", err)
	} else {
		pub = natsPub
		defer natsPub.Close()
	}

	orders := store.NewOrderStore(db, pub)
	messages := store.NewMessageStore(db, pub)
	reviews := store.NewReviewStore(db, pub)
	dishes := store.NewDishStore(db)
	specialties := store.NewSpecialtyStore(db)
	settings := store.NewSettingsStore(db)
	gallery := store.NewGalleryStore(db)

	m := mirror.New()
	warmMirror(m, orders, messages, reviews)

	ctrl := lifecycle.NewController(orders, m)

	if sub, err := events.NewNATSSubscriber(config.AppEnv.NatsURL); err != nil {
		log.Println("⚠️ change feed subscriber unavailable:", err)
	} else {
		defer sub.Close()
		if err := reconciler.New(sub, m).Start(context.Background()); err != nil {
			log.Println("⚠️ change feed subscriptions failed:", err)
		}
	}

	r := gin.Default()

	r.GET("/dishes", handlers.GetDishes(dishes))
	r.GET("/specialties", handlers.GetSpecialties(specialties))
	r.GET("/reviews", handlers.GetReviews(reviews))
	r.GET("/settings", handlers.GetSettings(settings))
	r.GET("/gallery", handlers.GetGallery(gallery))
	r.POST("/orders", handlers.PlaceOrder(ctrl))
	r.POST("/messages", handlers.CreateMessage(messages, m))
	r.POST("/reviews", handlers.CreateReview(reviews, m))

	r.POST("/auth/register", handlers.Register(
		db,
		config.AppEnv.JWTSecret,
		config.AppEnv.AccessTokenTTL,
		config.AppEnv.RefreshTokenTTL,
	))
	r.POST("/auth/login", handlers.Login(
		db,
		config.AppEnv.JWTSecret,
		config.AppEnv.AccessTokenTTL,
		config.AppEnv.RefreshTokenTTL,
	))
	r.POST("/auth/refresh", handlers.Refresh(
		db,
		config.AppEnv.JWTSecret,
		config.AppEnv.AccessTokenTTL,
		config.AppEnv.RefreshTokenTTL,
	))
	r.POST("/auth/logout", handlers.Logout(db))
	r.GET("/auth/me", middleware.AdminAuth(config.AppEnv.JWTSecret), handlers.Me(db))

	admin := r.Group("/admin/api")
	admin.Use(middleware.AdminAuth(config.AppEnv.JWTSecret))
	{
		admin.GET("/orders", handlers.GetAdminOrders(m))
		admin.PATCH("/orders/:id/status", handlers.SetOrderStatus(ctrl))
		admin.DELETE("/orders/:id", handlers.DeleteOrder(ctrl))
		admin.GET("/stats", handlers.GetStats(m))

		admin.GET("/dishes", handlers.GetAllDishes(dishes))
		admin.POST("/dishes", handlers.CreateDish(dishes))
		admin.PUT("/dishes/:id", handlers.UpdateDish(dishes))
		admin.PATCH("/dishes/:id/availability", handlers.SetDishAvailability(dishes))
		admin.DELETE("/dishes/:id", handlers.DeleteDish(dishes))

		admin.GET("/messages", handlers.GetAdminMessages(m))
		admin.PATCH("/messages/:id/read", handlers.MarkMessageRead(messages, m))
		admin.DELETE("/messages/:id", handlers.DeleteMessage(messages, m))

		admin.GET("/reviews", handlers.GetAdminReviews(m))
		admin.PATCH("/reviews/:id/read", handlers.MarkReviewRead(reviews, m))
		admin.DELETE("/reviews/:id", handlers.DeleteReview(reviews, m))

		admin.GET("/specialties", handlers.GetAdminSpecialties(specialties))
		admin.POST("/specialties", handlers.CreateSpecialty(specialties))
		admin.PUT("/specialties/:id", handlers.UpdateSpecialty(specialties))
		admin.DELETE("/specialties/:id", handlers.DeleteSpecialty(specialties))

		admin.GET("/settings", handlers.GetSettings(settings))
		admin.PUT("/settings", handlers.UpdateSettings(settings))

		admin.GET("/gallery", handlers.GetGallery(gallery))
		admin.POST("/gallery", handlers.AddGalleryImage(gallery))
		admin.DELETE("/gallery", handlers.DeleteGalleryImage(gallery))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}

// warmMirror does the initial bulk fetch. A failed fetch leaves that mirror
// empty rather than aborting startup; the change feed fills it in over time.
func warmMirror(m *mirror.Mirror, orders *store.OrderStore, messages *store.MessageStore, reviews *store.ReviewStore) {
	ctx := context.Background()

	if list, err := orders.FetchAll(ctx); err != nil {
		log.Println("⚠️ order mirror warm failed:", err)
	} else {
		m.WarmOrders(list)
		log.Printf("order mirror warmed with %d entries", len(list))
	}

	if list, err := messages.FetchAll(ctx); err != nil {
		log.Println("⚠️ message mirror warm failed:", err)
	} else {
		m.WarmMessages(list)
	}

	if list, err := reviews.FetchAll(ctx); err != nil {
		log.Println("⚠️ review mirror warm failed:", err)
	} else {
		m.WarmReviews(list)
	}
}
