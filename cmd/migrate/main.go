package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"hogwarts-night/internal/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Applies the SQL migrations AutoMigrate cannot express: the
// increment_house_points and duel deck functions plus seed data.
// Usage: migrate [-dir db/migrations] [up|down|version]
func main() {
	dir := flag.String("dir", "db/migrations", "migration source directory")
	flag.Parse()

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	m, err := migrate.New("file://"+*dir, dsn)
	if err != nil {
		log.Fatalf("migration setup failed: %v", err)
	}

	switch cmd := flag.Arg(0); cmd {
	case "", "up":
		err = m.Up()
	case "down":
		// one step at a time; dropping everything at a live party is
		// never the intent
		err = m.Steps(-1)
	case "version":
		version, dirty, verr := m.Version()
		if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
			log.Fatalf("reading migration version: %v", verr)
		}
		fmt.Printf("version=%d dirty=%v\n", version, dirty)
		return
	default:
		log.Fatalf("unknown command %q (want up, down, or version)", cmd)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalf("database migration failed: %v", err)
	}
	log.Println("database migrations applied")
}
