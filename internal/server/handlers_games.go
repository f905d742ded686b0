package server

import (
	"log"
	"net/http"

	"hogwarts-night/internal/db"
)

type socksRequest struct {
	DisplayName string `json:"display_name"`
	House       string `json:"house"`
	Guess       *int   `json:"guess"`
}

type checkinRequest struct {
	DisplayName string `json:"display_name"`
	House       string `json:"house"`
}

type checkinDeleteRequest struct {
	ID uint `json:"id"`
}

func (s *Server) handleSocksSubmit(w http.ResponseWriter, r *http.Request) {
	var req socksRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	name := cleanDisplayName(req.DisplayName)
	if name == "" {
		writeFail(w, http.StatusBadRequest, "missing name")
		return
	}
	if !db.ValidHouse(req.House) {
		writeFail(w, http.StatusBadRequest, "invalid house")
		return
	}
	if req.Guess == nil || *req.Guess < 0 {
		writeFail(w, http.StatusBadRequest, "invalid guess")
		return
	}
	// upsert so players can correct their guess; latest wins
	if err := s.store.UpsertSockGuess(name, req.House, *req.Guess); err != nil {
		writeStoreError(w, err)
		return
	}
	writeOK(w, nil)
}

func (s *Server) handleSocksGuesses(w http.ResponseWriter, r *http.Request) {
	noStore(w)
	guesses, err := s.store.ListSockGuesses()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeOK(w, map[string]any{"data": guesses})
}

func (s *Server) handleCheckin(w http.ResponseWriter, r *http.Request) {
	var req checkinRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	name := cleanDisplayName(req.DisplayName)
	if name == "" {
		writeFail(w, http.StatusBadRequest, "missing name")
		return
	}
	if !db.ValidHouse(req.House) {
		writeFail(w, http.StatusBadRequest, "invalid house")
		return
	}
	row, err := s.store.CreateCheckin(name, req.House)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	log.Printf("checkin name=%s house=%s", name, req.House)
	writeOK(w, map[string]any{"data": row})
}

func (s *Server) handleListCheckins(w http.ResponseWriter, r *http.Request) {
	noStore(w)
	rows, err := s.store.ListCheckins()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeOK(w, map[string]any{"data": rows})
}

func (s *Server) handleDeleteCheckin(w http.ResponseWriter, r *http.Request) {
	var req checkinDeleteRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ID == 0 {
		writeFail(w, http.StatusBadRequest, "missing id")
		return
	}
	if err := s.store.DeleteCheckin(req.ID); err != nil {
		writeStoreError(w, err)
		return
	}
	writeOK(w, nil)
}
