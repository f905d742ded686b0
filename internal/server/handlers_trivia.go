package server

import (
	"log"
	"net/http"

	"hogwarts-night/internal/db"
)

type triviaStartRequest struct {
	ID uint `json:"id"`
}

type buzzRequest struct {
	DisplayName string `json:"display_name"`
	House       string `json:"house"`
	QuestionID  uint   `json:"question_id"`
}

// sampleTriviaQuestions is the fixed seed set the admin console can insert
// on demand. Seeding is idempotent: questions already present are skipped.
var sampleTriviaQuestions = []db.TriviaQuestion{
	{Category: "Spells & Potions", Question: "What spell disarms an opponent?", Answer: "Expelliarmus", Difficulty: 1, SortOrder: 1, Active: true},
	{Category: "Magical Creatures", Question: "What creature guards Gringotts vaults?", Answer: "Dragon", Difficulty: 1, SortOrder: 2, Active: true},
	{Category: "Hogwarts", Question: "Who is headmaster in most of the series?", Answer: "Albus Dumbledore", Difficulty: 1, SortOrder: 3, Active: true},
}

func (s *Server) handleTriviaStart(w http.ResponseWriter, r *http.Request) {
	var req triviaStartRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ID == 0 {
		writeFail(w, http.StatusBadRequest, "missing question id")
		return
	}
	if err := s.store.StartTrivia(req.ID); err != nil {
		writeStoreError(w, err)
		return
	}
	log.Printf("trivia round started question_id=%d", req.ID)
	s.hub.Broadcast("trivia_session", map[string]any{"active": true, "question_id": req.ID})
	writeOK(w, map[string]any{"session_id": 1})
}

func (s *Server) handleTriviaStop(w http.ResponseWriter, r *http.Request) {
	if err := s.store.StopTrivia(); err != nil {
		writeStoreError(w, err)
		return
	}
	log.Printf("trivia round stopped")
	s.hub.Broadcast("trivia_session", map[string]any{"active": false})
	writeOK(w, nil)
}

func (s *Server) handleTriviaSeed(w http.ResponseWriter, r *http.Request) {
	inserted, err := s.store.SeedTriviaQuestions(sampleTriviaQuestions)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	log.Printf("trivia seed inserted=%d", inserted)
	writeOK(w, map[string]any{"inserted": inserted})
}

func (s *Server) handleTriviaQuestions(w http.ResponseWriter, r *http.Request) {
	noStore(w)
	questions, err := s.store.ListTriviaQuestions()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	type questionView struct {
		ID   uint   `json:"id"`
		Text string `json:"text"`
	}
	views := make([]questionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, questionView{ID: q.ID, Text: q.Question})
	}
	writeOK(w, map[string]any{"data": views})
}

func (s *Server) handleTriviaSession(w http.ResponseWriter, r *http.Request) {
	noStore(w)
	session, err := s.store.TriviaSession()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeOK(w, map[string]any{"data": session})
}

func (s *Server) handleTriviaBuzz(w http.ResponseWriter, r *http.Request) {
	var req buzzRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	name := cleanDisplayName(req.DisplayName)
	if name == "" {
		writeFail(w, http.StatusBadRequest, "missing name")
		return
	}
	house, ok := optionalHouse(req.House)
	if !ok {
		writeFail(w, http.StatusBadRequest, "invalid house")
		return
	}
	buzz, err := s.store.RecordTriviaBuzz(name, house, req.QuestionID)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	s.hub.Broadcast("trivia_buzz", buzz)
	writeOK(w, map[string]any{"data": buzz})
}

func (s *Server) handleTriviaBuzzes(w http.ResponseWriter, r *http.Request) {
	noStore(w)
	buzzes, err := s.store.ActiveTriviaBuzzes()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeOK(w, map[string]any{"data": buzzes})
}
