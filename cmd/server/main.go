package main

import (
	"context"
	"log"
	"net/http"
	"os"

	firebase "firebase.google.com/go/v4"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"google.golang.org/api/option"

	"estudiodanza/internal/api"
	"estudiodanza/internal/auth"
	"estudiodanza/internal/repository"
	"estudiodanza/internal/service"
)

func main() {
	godotenv.Load()
	projectID := os.Getenv("FIREBASE_PROJECT_ID")
	if projectID == "" {
		log.Fatal("FIREBASE_PROJECT_ID not set")
	}

	ctx := context.Background()
	var opts []option.ClientOption
	if creds := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); creds != "" {
		opts = append(opts, option.WithCredentialsFile(creds))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase app: %v", err)
	}
	client, err := app.Firestore(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to Firestore: %v", err)
	}
	defer client.Close()
	authClient, err := app.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	availabilityRepo := repository.NewAvailabilityRepository(client)
	bookingRepo := repository.NewBookingRepository(client)
	jobRepo := repository.NewJobRepository(client)

	sender := service.NewSenderService()
	availabilitySvc := service.NewAvailabilityService(availabilityRepo, bookingRepo)
	bookingSvc := service.NewBookingService(bookingRepo, sender)
	adminSvc := service.NewAdminService(bookingRepo, availabilityRepo)
	jobSvc := service.NewJobService(jobRepo)

	bookingHandler := api.NewBookingHandler(bookingSvc, availabilitySvc)
	adminHandler := api.NewAdminHandler(adminSvc, bookingSvc, availabilitySvc)

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/availability", bookingHandler.ListAvailableDates).Methods("GET")
	r.HandleFunc("/api/availability/{date}", bookingHandler.ListTimesForDate).Methods("GET")
	r.HandleFunc("/api/bookings", bookingHandler.CreateBooking).Methods("POST")

	// Admin endpoints (protected)
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware(authClient))
	admin.HandleFunc("/bookings", adminHandler.ListBookings).Methods("GET")
	admin.HandleFunc("/bookings/{id}", adminHandler.CancelBooking).Methods("DELETE")
	admin.HandleFunc("/dashboard", adminHandler.Dashboard).Methods("GET")
	admin.HandleFunc("/calendar", adminHandler.ListCalendarDays).Methods("GET")
	admin.HandleFunc("/calendar", adminHandler.AddAvailability).Methods("POST")
	admin.HandleFunc("/calendar/seed", adminHandler.SeedCalendar).Methods("POST")
	admin.HandleFunc("/calendar/{date}", adminHandler.RemoveDate).Methods("DELETE")
	admin.HandleFunc("/calendar/{date}/{time}", adminHandler.RemoveTimeSlot).Methods("DELETE")

	c := cron.New()
	if _, err := c.AddFunc("0 3 * * *", func() {
		if err := jobSvc.CleanupPastDates(context.Background()); err != nil {
			log.Printf("Cron Job error: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule cleanup job: %v", err)
	}
	c.Start()
	defer c.Stop()

	origin := os.Getenv("FRONTEND_ORIGIN")
	if origin == "" {
		origin = "*"
	}
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{origin}),
		handlers.AllowedMethods([]string{"GET", "POST", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handlers.LoggingHandler(os.Stdout, cors(r))))
}
