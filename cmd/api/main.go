package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	gorillahandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/kylefourie/swiftpay-gobackend/internal/auth"
	"github.com/kylefourie/swiftpay-gobackend/internal/db"
	"github.com/kylefourie/swiftpay-gobackend/internal/handlers"
	"github.com/kylefourie/swiftpay-gobackend/internal/services"
)

func main() {
	// Load .env
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Error loading .env: %s", err)
	}

	uri := os.Getenv("MONGOURI")
	if uri == "" {
		log.Fatal("MONGOURI environment variable not set")
	}
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}

	// Connect to MongoDB
	client, err := db.Connect(context.Background(), uri)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()
	log.Println("Successfully connected to MongoDB")

	database := client.Database("swiftpay")

	// Initialize services and handlers
	tokenService := auth.NewTokenService(jwtSecret)
	customerService := services.NewCustomerService(database)
	employeeService, err := services.NewEmployeeService()
	if err != nil {
		log.Fatalf("Failed to build employee table: %v", err)
	}
	paymentService := services.NewPaymentService(database)

	customerHandler := handlers.NewCustomerHandler(customerService, employeeService, tokenService)
	paymentHandler := handlers.NewPaymentHandler(paymentService, customerService)
	middleware := handlers.NewMiddleware(tokenService)

	// Set up router
	router := mux.NewRouter()
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET", "HEAD")

	router.HandleFunc("/register", customerHandler.Register).Methods("POST")
	router.HandleFunc("/login", customerHandler.Login).Methods("POST")
	router.HandleFunc("/employeelogin", customerHandler.EmployeeLogin).Methods("POST")

	router.HandleFunc("/payment", middleware.RequireAuth(paymentHandler.CreatePayment)).Methods("POST")

	// Staff pipeline; employee-role tokens only.
	router.HandleFunc("/payments", middleware.RequireEmployee(paymentHandler.GetPayments)).Methods("GET")
	router.HandleFunc("/paymentverify", middleware.RequireEmployee(paymentHandler.VerifyPayment)).Methods("POST")
	router.HandleFunc("/submitAllToSWIFT", middleware.RequireEmployee(paymentHandler.SubmitAllToSWIFT)).Methods("POST")

	cors := gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins([]string{"*"}),
		gorillahandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		gorillahandlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
	)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	server := &http.Server{
		Addr:         "0.0.0.0:" + port,
		Handler:      cors(router),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	certFile := os.Getenv("SSL_CERT_FILE")
	keyFile := os.Getenv("SSL_KEY_FILE")
	if certFile != "" && keyFile != "" {
		log.Printf("Secure server running on port %s", port)
		log.Fatal(server.ListenAndServeTLS(certFile, keyFile))
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(server.ListenAndServe())
}
