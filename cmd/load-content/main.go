// load-content loads the duel spell catalog and the horcrux hunt's steps
// from CSV files into the database. Loading is idempotent: existing rows
// are left alone.
package main

import (
	"encoding/csv"
	"flag"
	"log"
	"os"
	"strconv"
	"strings"

	"hogwarts-night/internal/config"
	"hogwarts-night/internal/db"
)

func main() {
	spellsPath := flag.String("spells", "", "path to spells csv (name,incantation,description,gesture)")
	stepsPath := flag.String("steps", "", "path to horcrux steps csv (step_order,code,clue,name,hint)")
	flag.Parse()

	if *spellsPath == "" && *stepsPath == "" {
		log.Fatal("nothing to load: pass -spells and/or -steps")
	}

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}

	conn, err := db.Open()
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	if *spellsPath != "" {
		rows, err := readCSV(*spellsPath, 2)
		if err != nil {
			log.Fatalf("failed to read spells: %v", err)
		}
		loaded := 0
		for _, row := range rows {
			entry := db.WizardSpell{
				Name:        row[0],
				Incantation: row[1],
				Description: field(row, 2),
				Gesture:     field(row, 3),
			}
			if err := conn.FirstOrCreate(&entry, db.WizardSpell{Name: entry.Name}).Error; err != nil {
				log.Fatalf("failed to upsert spell %q: %v", entry.Name, err)
			}
			loaded++
		}
		log.Printf("loaded %d spells", loaded)
	}

	if *stepsPath != "" {
		rows, err := readCSV(*stepsPath, 3)
		if err != nil {
			log.Fatalf("failed to read steps: %v", err)
		}
		loaded := 0
		for _, row := range rows {
			order, err := strconv.Atoi(row[0])
			if err != nil || order < 1 {
				log.Fatalf("bad step_order %q", row[0])
			}
			entry := db.HorcruxStep{
				StepOrder: order,
				Code:      strings.ToUpper(row[1]),
				Clue:      row[2],
				Name:      field(row, 3),
				Hint:      field(row, 4),
			}
			if err := conn.FirstOrCreate(&entry, db.HorcruxStep{StepOrder: entry.StepOrder}).Error; err != nil {
				log.Fatalf("failed to upsert step %d: %v", order, err)
			}
			loaded++
		}
		log.Printf("loaded %d horcrux steps", loaded)
	}
}

func field(row []string, index int) string {
	if index < len(row) {
		return row[index]
	}
	return ""
}

func readCSV(path string, minFields int) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	var out [][]string
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) < minFields {
			continue
		}
		trimmed := make([]string, len(row))
		for j, cell := range row {
			trimmed[j] = strings.TrimSpace(cell)
		}
		if trimmed[0] == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out, nil
}
