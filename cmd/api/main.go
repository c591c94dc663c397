package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/alexmutale/stitcha-backend/internal/modules/catalog"
	"github.com/alexmutale/stitcha-backend/internal/modules/customer"
	"github.com/alexmutale/stitcha-backend/internal/modules/manufacturer"
	"github.com/alexmutale/stitcha-backend/internal/modules/order"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Successfully connected to the database!")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Catalog ─────────────────────────────────────────────
	catalogOpts := catalog.Options{
		MergeSpecifications: os.Getenv("CATALOG_MERGE_SPECIFICATIONS") == "true",
	}
	catalogRepo := catalog.NewPostgresRepository(db)
	catalogService := catalog.NewService(catalogRepo, catalogOpts)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	// ── Customers ───────────────────────────────────────────
	customerRepo := customer.NewPostgresRepository(db)
	customerService := customer.NewService(customerRepo)
	customer.NewHandler(customerService).RegisterRoutes(router)

	// ── Manufacturers ───────────────────────────────────────
	manufacturerRepo := manufacturer.NewPostgresRepository(db)
	manufacturerService := manufacturer.NewService(manufacturerRepo)
	manufacturer.NewHandler(manufacturerService).RegisterRoutes(router)

	// ── Orders ──────────────────────────────────────────────
	orderRepo := order.NewPostgresRepository(db)
	orderService := order.NewService(orderRepo)
	order.NewHandler(orderService).RegisterRoutes(router)

	// ── Start Server ────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("Stitcha API server starting on :%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
