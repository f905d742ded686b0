package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"hogwarts-night/internal/config"
	"hogwarts-night/internal/db"
	"hogwarts-night/internal/server"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg := config.Load()

	conn, err := db.Open()
	if err != nil {
		// db-less runs keep every feature working in memory, which is
		// handy on the night if the database flakes
		log.Printf("running without a database: %v", err)
		conn = nil
	}
	if conn != nil {
		if err := db.ConfigurePool(conn,
			cfg.DBMaxOpenConns,
			cfg.DBMaxIdleConns,
			time.Duration(cfg.DBConnMaxLifetimeSeconds)*time.Second,
			time.Duration(cfg.DBConnMaxIdleTimeSeconds)*time.Second,
		); err != nil {
			log.Fatalf("database pool setup failed: %v", err)
		}
		if err := db.Migrate(conn); err != nil {
			log.Fatalf("database migration failed: %v", err)
		}
	}

	addr := ":8080"
	if env := os.Getenv("PORT"); env != "" {
		addr = ":" + env
	}

	srv := server.New(conn, cfg)
	log.Printf("hogwarts-night server listening on %s", addr)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		log.Fatal(err)
	}
}
