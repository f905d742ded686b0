package server

import (
	"log"
	"net/http"

	"hogwarts-night/internal/db"
)

// duelSessionRequest is a partial update: only fields present in the body
// are applied, everything else keeps its stored value. An empty
// current_spell or winner_house clears the column.
type duelSessionRequest struct {
	Active       *bool     `json:"active"`
	CurrentSpell *string   `json:"current_spell"`
	Options      *[]string `json:"options"`
	Reveal       *bool     `json:"reveal"`
	WinnerHouse  *string   `json:"winner_house"`
}

type duelBuzzRequest struct {
	DisplayName string `json:"display_name"`
	House       string `json:"house"`
	Round       uint   `json:"round"`
}

func (s *Server) handleDuelSession(w http.ResponseWriter, r *http.Request) {
	noStore(w)
	session, err := s.store.DuelSession()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeOK(w, map[string]any{"data": session})
}

func (s *Server) handleDuelSessionUpdate(w http.ResponseWriter, r *http.Request) {
	var req duelSessionRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.WinnerHouse != nil && *req.WinnerHouse != "" && !db.ValidHouse(*req.WinnerHouse) {
		writeFail(w, http.StatusBadRequest, "invalid winner house")
		return
	}
	session, err := s.store.UpdateDuelSession(DuelSessionPatch{
		Active:       req.Active,
		CurrentSpell: req.CurrentSpell,
		Options:      req.Options,
		Reveal:       req.Reveal,
		WinnerHouse:  req.WinnerHouse,
	})
	if err != nil {
		writeStoreError(w, err)
		return
	}
	s.hub.Broadcast("duel_session", session)
	writeOK(w, map[string]any{"data": session})
}

func (s *Server) handleDuelDraw(w http.ResponseWriter, r *http.Request) {
	spell, err := s.store.DrawSpell()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	if spell == nil {
		// deck exhausted; callers show an end-of-deck state
		writeOK(w, map[string]any{"spell": nil})
		return
	}
	log.Printf("duel spell drawn spell=%s", spell.Incantation)
	writeOK(w, map[string]any{"spell": spell})
}

func (s *Server) handleDuelReset(w http.ResponseWriter, r *http.Request) {
	if err := s.store.ResetDeck(); err != nil {
		writeStoreError(w, err)
		return
	}
	log.Printf("duel deck reset")
	writeOK(w, nil)
}

func (s *Server) handleDuelBuzz(w http.ResponseWriter, r *http.Request) {
	var req duelBuzzRequest
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
	buzz, err := s.store.RecordDuelBuzz(name, house, req.Round)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	s.hub.Broadcast("duel_buzz", buzz)
	writeOK(w, map[string]any{"data": buzz})
}

func (s *Server) handleDuelBuzzes(w http.ResponseWriter, r *http.Request) {
	noStore(w)
	buzzes, err := s.store.ActiveDuelBuzzes()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeOK(w, map[string]any{"data": buzzes})
}

func (s *Server) handleDuelSpells(w http.ResponseWriter, r *http.Request) {
	noStore(w)
	spells, err := s.store.ListSpells()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeOK(w, map[string]any{"data": spells})
}
