package server

import (
	"log"
	"net/http"
)

type horcruxSubmitRequest struct {
	DisplayName string `json:"display_name"`
	House       string `json:"house"`
	Code        string `json:"code"`
}

func (s *Server) handleHorcruxStart(w http.ResponseWriter, r *http.Request) {
	session, err := s.store.SetHorcruxActive(true)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	log.Printf("horcrux hunt started")
	s.hub.Broadcast("horcrux_session", session)
	writeOK(w, map[string]any{"data": session})
}

func (s *Server) handleHorcruxStop(w http.ResponseWriter, r *http.Request) {
	session, err := s.store.SetHorcruxActive(false)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	log.Printf("horcrux hunt stopped")
	s.hub.Broadcast("horcrux_session", session)
	writeOK(w, map[string]any{"data": session})
}

func (s *Server) handleHorcruxReset(w http.ResponseWriter, r *http.Request) {
	if err := s.store.ResetHorcruxProgress(); err != nil {
		writeStoreError(w, err)
		return
	}
	log.Printf("horcrux progress reset")
	writeOK(w, nil)
}

func (s *Server) handleHorcruxSession(w http.ResponseWriter, r *http.Request) {
	noStore(w)
	session, err := s.store.HorcruxSession()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeOK(w, map[string]any{"data": session})
}

// handleHorcruxSteps lists the hunt's steps without their codes; the
// server judges submissions, so codes never reach a player's browser.
func (s *Server) handleHorcruxSteps(w http.ResponseWriter, r *http.Request) {
	noStore(w)
	steps, err := s.store.ListHorcruxSteps()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	type stepView struct {
		StepOrder int    `json:"step_order"`
		Clue      string `json:"clue"`
		Name      string `json:"name,omitempty"`
		Hint      string `json:"hint,omitempty"`
	}
	views := make([]stepView, 0, len(steps))
	for _, step := range steps {
		views = append(views, stepView{
			StepOrder: step.StepOrder,
			Clue:      step.Clue,
			Name:      step.Name,
			Hint:      step.Hint,
		})
	}
	writeOK(w, map[string]any{"data": views})
}

func (s *Server) handleHorcruxProgress(w http.ResponseWriter, r *http.Request) {
	noStore(w)
	name := cleanDisplayName(r.URL.Query().Get("name"))
	if name == "" {
		writeFail(w, http.StatusBadRequest, "missing name")
		return
	}
	house, ok := optionalHouse(r.URL.Query().Get("house"))
	if !ok {
		writeFail(w, http.StatusBadRequest, "invalid house")
		return
	}
	progress, err := s.store.HorcruxProgressFor(name, house)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeOK(w, map[string]any{"data": progress})
}

func (s *Server) handleHorcruxSubmit(w http.ResponseWriter, r *http.Request) {
	var req horcruxSubmitRequest
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
	code := cleanCode(req.Code)
	if code == "" {
		writeFail(w, http.StatusBadRequest, "missing code")
		return
	}

	result, err := s.store.SubmitHorcruxStep(name, house, code)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	log.Printf("horcrux step accepted player=%s step=%d", name, result.Step.StepOrder)

	payload := map[string]any{
		"step_order": result.Step.StepOrder,
		"name":       result.Step.Name,
		"completed":  result.Completed,
	}
	if result.NextStep != nil {
		payload["next_clue"] = result.NextStep.Clue
		payload["next_step_order"] = result.NextStep.StepOrder
	}
	writeOK(w, payload)
}
