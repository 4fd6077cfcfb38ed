package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"profitbuild/db/generated"
	_ "profitbuild/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var (
	pool    *pgxpool.Pool
	queries *generated.Queries
)

// getEnvOrDefault returns the environment variable value or a fallback
func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// @title ProfitBuild API
// @version 1.0
// @description Construction-business backend: projects, payees, clients, expense/revenue ledgers, and the transaction import engine.
// @BasePath /
func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	dbHost := getEnvOrDefault("DB_HOST", "localhost")
	dbPort := getEnvOrDefault("DB_PORT", "5432")
	dbUser := getEnvOrDefault("DB_USER", "postgres")
	dbPassword := getEnvOrDefault("DB_PASSWORD", "password")
	dbName := getEnvOrDefault("DB_NAME", "profitbuild")

	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPassword, dbName)

	// Connect to database with retry logic
	var err error
	maxRetries := 30
	retryInterval := time.Second * 2

	for i := 0; i < maxRetries; i++ {
		pool, err = pgxpool.New(context.Background(), connStr)
		if err != nil {
			log.Printf("Attempt %d: Error opening database: %v", i+1, err)
			time.Sleep(retryInterval)
			continue
		}

		if err = pool.Ping(context.Background()); err != nil {
			log.Printf("Attempt %d: Error connecting to database: %v", i+1, err)
			pool.Close()
			time.Sleep(retryInterval)
			continue
		}

		log.Println("Successfully connected to database")
		break
	}

	if err != nil {
		log.Fatal("Failed to connect to database after retries: ", err)
	}
	defer pool.Close()

	queries = generated.New(pool)

	// Run database migrations over a database/sql connection
	migrationsPath := filepath.Join(".", "db", "migrations")

	if _, err := os.Stat(migrationsPath); os.IsNotExist(err) {
		log.Printf("Migrations directory not found at %s, skipping migrations", migrationsPath)
	} else {
		migrationDB, err := sql.Open("postgres", connStr)
		if err != nil {
			log.Fatal("Error opening migration connection: ", err)
		}

		log.Println("Running database migrations...")
		if err := runMigrations(migrationDB, migrationsPath); err != nil {
			log.Fatal("Error running migrations: ", err)
		}

		if version, dirty, err := getMigrationVersion(migrationDB, migrationsPath); err == nil {
			if dirty {
				log.Printf("Current migration version: %d (DIRTY - migration failed)", version)
			} else {
				log.Printf("Current migration version: %d", version)
			}
		}
		migrationDB.Close()
		log.Println("Database migrations completed successfully")
	}

	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{getEnvOrDefault("CORS_ORIGIN", "http://localhost:3001")},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Routes
	r.POST("/api/import-transactions", importTransactions)
	r.GET("/api/payees", getPayees)
	r.POST("/api/payees", createPayee)
	r.GET("/api/clients", getClients)
	r.POST("/api/clients", createClient)
	r.GET("/api/projects", getProjects)
	r.POST("/api/projects", createProject)
	r.GET("/api/projects/:id/summary", getProjectSummary)
	r.GET("/api/account-mappings", getAccountMappings)
	r.POST("/api/account-mappings", createAccountMapping)
	r.DELETE("/api/account-mappings/:id", deleteAccountMapping)
	r.GET("/api/expenses", getExpenses)
	r.DELETE("/api/expenses/:id", deleteExpense)
	r.GET("/api/revenues", getRevenues)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := getEnvOrDefault("PORT", "8080")

	log.Printf("Server starting on port %s", port)
	r.Run(":" + port)
}
