package server

import (
	"log"
	"net/http"

	"hogwarts-night/internal/db"
)

type awardRequest struct {
	House       string `json:"house"`
	Delta       *int   `json:"delta"`
	Reason      string `json:"reason"`
	DisplayName string `json:"display_name"`
}

func (s *Server) handleAwardPoints(w http.ResponseWriter, r *http.Request) {
	var req awardRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeFail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !db.ValidHouse(req.House) {
		writeFail(w, http.StatusBadRequest, "invalid house")
		return
	}
	if req.Delta == nil {
		writeFail(w, http.StatusBadRequest, "invalid delta")
		return
	}

	reason := cleanReason(req.Reason)
	name := cleanDisplayName(req.DisplayName)
	if reason == "" {
		reason = "Points award"
	}
	if name != "" {
		reason = truncateRunes(reason+" - "+name, maxLogReasonLength)
	}

	total, err := s.store.Award(req.House, *req.Delta, reason)
	if err != nil {
		log.Printf("award failed house=%s delta=%d: %v", req.House, *req.Delta, err)
		writeStoreError(w, err)
		return
	}
	log.Printf("points awarded house=%s delta=%d total=%d", req.House, *req.Delta, total)
	s.hub.Broadcast("points", map[string]any{"house": req.House, "total": total})
	writeOK(w, map[string]any{
		"house": req.House,
		"total": total,
	})
}

func (s *Server) handlePointsTotals(w http.ResponseWriter, r *http.Request) {
	noStore(w)
	totals, err := s.store.HouseTotals()
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeOK(w, map[string]any{"data": totals})
}

func (s *Server) handlePointsRecent(w http.ResponseWriter, r *http.Request) {
	noStore(w)
	entries, err := s.store.RecentPointsLog(s.cfg.RecentLogLimit)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeOK(w, map[string]any{"data": entries})
}
