package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"

	"hotelio/internal/api"
	"hotelio/internal/metrics"
	"hotelio/internal/repository"
	"hotelio/internal/service"
)

func main() {
	godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	chambreRepo := repository.NewChambreRepository(db)
	clientRepo := repository.NewClientRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	jobRepo := repository.NewJobRepository(db)

	sender := service.NewSenderService()
	chambreSvc := service.NewChambreService(chambreRepo)
	clientSvc := service.NewClientService(clientRepo)
	reservationSvc := service.NewReservationService(reservationRepo, chambreRepo, clientRepo, sender)
	jobSvc := service.NewJobService(jobRepo)

	chambreHandler := api.NewChambreHandler(chambreSvc)
	clientHandler := api.NewClientHandler(clientSvc)
	reservationHandler := api.NewReservationHandler(reservationSvc)

	r := mux.NewRouter()
	r.Use(metrics.Middleware)

	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	r.HandleFunc("/api/chambres/disponibles", reservationHandler.FindAvailableChambres).Methods("GET")
	r.HandleFunc("/api/chambres", chambreHandler.ListChambres).Methods("GET")
	r.HandleFunc("/api/chambres", chambreHandler.CreateChambre).Methods("POST")
	r.HandleFunc("/api/chambres/{id}", chambreHandler.UpdateChambre).Methods("PUT")
	r.HandleFunc("/api/chambres/{id}", chambreHandler.DeleteChambre).Methods("DELETE")

	r.HandleFunc("/api/reservations", reservationHandler.CreateReservation).Methods("POST")
	r.HandleFunc("/api/reservations/{id}", reservationHandler.GetReservation).Methods("GET")
	r.HandleFunc("/api/reservations/{id}", reservationHandler.CancelReservation).Methods("DELETE")

	r.HandleFunc("/api/clients", clientHandler.CreateClient).Methods("POST")

	c := cron.New()
	// Every night just after midnight, close out departed reservations.
	if _, err := c.AddFunc("5 0 * * *", func() {
		if err := jobSvc.UpdateFinishedReservations(); err != nil {
			log.Printf("Cron Job error: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule cron job: %v", err)
	}
	c.Start()

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
