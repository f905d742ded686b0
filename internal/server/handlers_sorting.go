package server

import (
	"net/http"

	"hogwarts-night/internal/sorting"
)

type sortingScoreRequest struct {
	Answers map[string]string `json:"answers"`
}

func (s *Server) handleSortingQuestions(w http.ResponseWriter, r *http.Request) {
	writeOK(w, map[string]any{"data": sorting.Questions()})
}

func (s *Server) handleSortingScore(w http.ResponseWriter, r *http.Request) {
	var req sortingScoreRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	result := sorting.Score(req.Answers)
	writeOK(w, map[string]any{
		"tally":  result.Tally,
		"winner": result.Winner,
	})
}
