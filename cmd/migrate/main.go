package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"

	"github.com/m0rzh/HMS-BookingService/internal/config"
	"github.com/m0rzh/HMS-BookingService/pkg/logger"
)

// Утилита миграций схемы: up/down/version поверх golang-migrate.
// Использует те же config.toml и переменные окружения, что и сервер.
func main() {
	var (
		configPath     string
		migrationsPath string
	)
	flag.StringVar(&configPath, "config", "config.toml", "path to config file")
	flag.StringVar(&migrationsPath, "path", "migrations", "path to migrations directory")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}
	command := args[0]

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		log.Fatal("Failed to create postgres driver: %v", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"postgres",
		driver,
	)
	if err != nil {
		log.Fatal("Failed to create migrate instance: %v", err)
	}

	switch command {
	case "up":
		if err := m.Up(); err != nil {
			if errors.Is(err, migrate.ErrNoChange) {
				log.Info("No pending migrations")
				return
			}
			log.Fatal("Migration up failed: %v", err)
		}
		log.Info("Migrations applied")

	case "down":
		steps := 1
		if len(args) > 1 {
			steps, err = strconv.Atoi(args[1])
			if err != nil || steps <= 0 {
				log.Fatal("Invalid number of steps: %q", args[1])
			}
		}
		if err := m.Steps(-steps); err != nil {
			log.Fatal("Migration down failed: %v", err)
		}
		log.Info("Rolled back %d migration(s)", steps)

	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			if errors.Is(err, migrate.ErrNilVersion) {
				log.Info("No migrations applied yet")
				return
			}
			log.Fatal("Failed to get version: %v", err)
		}
		log.Info("Current version: %d, dirty: %v", version, dirty)

	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Usage: migrate [flags] <command>

Commands:
  up              apply all pending migrations
  down [n]        roll back n migrations (default 1)
  version         print current schema version

Flags:
  -config string  path to config file (default "config.toml")
  -path string    path to migrations directory (default "migrations")`)
}
