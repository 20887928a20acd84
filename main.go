package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/brightforge/agency-site-backend/api"
	"github.com/brightforge/agency-site-backend/config"
	"github.com/brightforge/agency-site-backend/database"
	"github.com/brightforge/agency-site-backend/models"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	c := config.New()
	currentDB := connectDatabase(c)

	// If generating models, run generation and exit
	if config.GetBool(c, "GENERATE_MODELS", false) {
		if !currentDB.Configured() {
			fmt.Println("Cannot generate models without a database connection. Exiting...")
			os.Exit(1)
		}
		fmt.Println("Generating models and query helpers...")
		models.GenerateModels(currentDB.DB())
		return
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(currentDB)
	if err != nil {
		fmt.Printf("Error initializing server: %v\n", err)
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// databaseDSN builds the Postgres connection string. A full DATABASE_URL
// wins; otherwise the DSN is composed from the SUPABASE_DB_* variables.
// Returns the empty string when neither form is configured.
func databaseDSN(c map[string]string) string {
	if url := config.GetString(c, "DATABASE_URL", ""); url != "" {
		return url
	}

	if !config.HasAll(c, "SUPABASE_DB_HOST", "SUPABASE_DB_USER", "SUPABASE_DB_PASSWORD") {
		return ""
	}

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require",
		c["SUPABASE_DB_HOST"],
		c["SUPABASE_DB_USER"],
		c["SUPABASE_DB_PASSWORD"],
		config.GetString(c, "SUPABASE_DB_NAME", "postgres"),
		config.GetString(c, "SUPABASE_DB_PORT", "5432"),
	)
}

// connectDatabase opens the Supabase Postgres connection. A missing DSN is
// not fatal; the server starts in degraded mode and database-backed routes
// answer 503 until configured.
func connectDatabase(c map[string]string) database.Database {
	connStr := databaseDSN(c)
	if connStr == "" {
		fmt.Println("Warning: DATABASE_URL and SUPABASE_DB_* not set, starting without a database")
		return database.New(nil)
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	fmt.Println("Connecting to Supabase database...")
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: connStr,
		// Supabase's connection pooler doesn't support prepared statements
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      newLogger,
	})
	if err != nil {
		fmt.Printf("Warning: Error connecting to database, starting without one: %v\n", err)
		return database.New(nil)
	}

	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		fmt.Printf("Warning: Database connection test failed, starting without one: %v\n", err)
		return database.New(nil)
	}

	return database.New(db)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
