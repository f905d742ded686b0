package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

func main() {
	name := flag.String("name", "", "migration name")
	flag.Parse()

	if *name == "" || strings.ContainsAny(*name, " ") {
		log.Fatal("migration name is required and must not contain spaces")
	}

	version := time.Now().UTC().Format("20060102150405")
	dir := filepath.Join("db", "migrations")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatalf("create migrations dir: %v", err)
	}

	for _, direction := range []string{"up", "down"} {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.%s.sql", version, *name, direction))
		if _, err := os.Stat(path); err == nil {
			log.Fatalf("file already exists: %s", path)
		}
		if err := os.WriteFile(path, []byte("-- "+direction+" migration\n"), 0o644); err != nil {
			log.Fatalf("create %s migration: %v", direction, err)
		}
		log.Printf("created %s", path)
	}
}
