package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

func readJSON(body io.Reader, dest any) error {
	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dest)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeOK wraps a payload in the {ok: true, ...} envelope every mutation
// and read endpoint uses.
func writeOK(w http.ResponseWriter, payload map[string]any) {
	if payload == nil {
		payload = map[string]any{}
	}
	payload["ok"] = true
	writeJSON(w, http.StatusOK, payload)
}

func writeFail(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"ok":    false,
		"error": message,
	})
}

// writeStoreError maps store failures onto the error taxonomy: game-state
// rejections are 409s with their message passed through, everything else
// is an infrastructure 500.
func writeStoreError(w http.ResponseWriter, err error) {
	var outOfOrder *OutOfOrderError
	switch {
	case errors.Is(err, ErrRoundInactive),
		errors.Is(err, ErrStaleRound),
		errors.Is(err, ErrUnknownCode),
		errors.As(err, &outOfOrder):
		writeFail(w, http.StatusConflict, err.Error())
	default:
		writeFail(w, http.StatusInternalServerError, err.Error())
	}
}

// noStore marks a polled read so staleness is bounded by the poll
// interval, never by a cache.
func noStore(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
}
