package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"fittrack/database"
	"fittrack/internal/utils"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file from project root
	if err := godotenv.Load(); err != nil {
		// Try loading from parent directory (in case running from cmd/seed/)
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	numUsers := seedCmd.Int("users", utils.DefaultNumUsers, "Number of demo users to create")

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "seed":
		seedCmd.Parse(os.Args[2:])

		database.ConnectDatabase()
		if err := database.MigrateDatabase(); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}

		log.Printf("Seeding %d demo users with profiles, weigh-ins and food logs", *numUsers)
		if err := utils.SeedDemoData(database.DB, *numUsers); err != nil {
			log.Fatalf("Error seeding demo data: %v", err)
		}
		log.Println("Seeding completed")

	case "clear":
		database.ConnectDatabase()

		log.Println("Clearing all demo data")
		if err := utils.ClearDemoData(database.DB); err != nil {
			log.Fatalf("Error clearing demo data: %v", err)
		}
		log.Println("Clear completed")

	case "stats":
		database.ConnectDatabase()

		counts, err := utils.CountRows(database.DB)
		if err != nil {
			log.Fatalf("Error getting stats: %v", err)
		}
		log.Println("Database statistics:")
		for table, count := range counts {
			log.Printf("   %s: %d rows", table, count)
		}

	case "help":
		printHelp()

	default:
		fmt.Printf("Unknown subcommand: %s\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Database utility tool for FitTrack")
	fmt.Println("\nUsage:")
	fmt.Println("  db-tool COMMAND [OPTIONS]")
	fmt.Println("\nCommands:")
	fmt.Println("  seed         Create demo users with profiles, weigh-ins and food logs")
	fmt.Println("               Options:")
	fmt.Println("                 --users=N  Number of demo users to create (default: 10)")
	fmt.Println("")
	fmt.Println("  clear        Clear all data from the database")
	fmt.Println("")
	fmt.Println("  stats        Show row counts per table")
	fmt.Println("")
	fmt.Println("  help         Show this help message")
	fmt.Println("")
	fmt.Println("Environment variables:")
	fmt.Println("  DB_HOST      Database host")
	fmt.Println("  DB_PORT      Database port")
	fmt.Println("  DB_USER      Database user")
	fmt.Println("  DB_PASSWORD  Database password")
	fmt.Println("  DB_NAME      Database name")
	fmt.Println("  DB_SSLMODE   Database SSL mode")
}
