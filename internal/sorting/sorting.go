// Package sorting scores the sorting-hat quiz. The question set is static
// configuration compiled into the binary; scoring is a pure function so it
// can run on every submission without touching storage.
package sorting

import (
	_ "embed"
	"encoding/json"
	"log"

	"hogwarts-night/internal/db"
)

//go:embed questions.json
var rawQuestions []byte

type Option struct {
	ID      string         `json:"id"`
	Label   string         `json:"label"`
	Weights map[string]int `json:"weights"`
}

type Question struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []Option `json:"options"`
}

type Result struct {
	Tally  map[string]int `json:"tally"`
	Winner string         `json:"winner"`
}

var questions = func() []Question {
	var data struct {
		Questions []Question `json:"questions"`
	}
	if err := json.Unmarshal(rawQuestions, &data); err != nil {
		log.Fatalf("bad embedded sorting questions: %v", err)
	}
	return data.Questions
}()

// Questions returns the full question list for the quiz page.
func Questions() []Question {
	return questions
}

// Score tallies the chosen options' house weights and picks a winner.
// answers maps question id to option id. Unknown question ids, missing
// answers, and unknown option ids contribute nothing; Score never fails.
// Ties go to the house listed first in db.Houses, so an all-zero tally
// sorts the player into Gryffindor.
func Score(answers map[string]string) Result {
	tally := make(map[string]int, len(db.Houses))
	for _, house := range db.Houses {
		tally[house] = 0
	}
	for _, q := range questions {
		choiceID, ok := answers[q.ID]
		if !ok || choiceID == "" {
			continue
		}
		for _, opt := range q.Options {
			if opt.ID != choiceID {
				continue
			}
			for house, pts := range opt.Weights {
				if _, known := tally[house]; known {
					tally[house] += pts
				}
			}
			break
		}
	}
	winner := db.Houses[0]
	for _, house := range db.Houses[1:] {
		if tally[house] > tally[winner] {
			winner = house
		}
	}
	return Result{Tally: tally, Winner: winner}
}
