package server

import (
	"net/http"
	"testing"
)

func sockGuess(name, house string, guess int) map[string]any {
	return map[string]any{"display_name": name, "house": house, "guess": guess}
}

func TestSocksGuessUpsert(t *testing.T) {
	_, ts := newTestServer(t)

	requireOK(t, doPost(t, ts, "/api/games/socks/submit", sockGuess("Dobby", "Hufflepuff", 12)))
	requireOK(t, doPost(t, ts, "/api/games/socks/submit", sockGuess("Dobby", "Hufflepuff", 47)))
	requireOK(t, doPost(t, ts, "/api/games/socks/submit", sockGuess("Winky", "Hufflepuff", 3)))

	guesses := dataSlice(t, requireOK(t, doGet(t, ts, "/api/admin/socks/guesses")))
	if len(guesses) != 2 {
		t.Fatalf("resubmitting should replace, not append; got %d rows", len(guesses))
	}
	for _, raw := range guesses {
		row := raw.(map[string]any)
		if row["DisplayName"] == "Dobby" && row["Guess"].(float64) != 47 {
			t.Fatalf("latest guess should win, got %v", row)
		}
	}
}

func TestSocksGuessValidation(t *testing.T) {
	_, ts := newTestServer(t)

	requireFail(t, doPost(t, ts, "/api/games/socks/submit", sockGuess("", "Hufflepuff", 5)), http.StatusBadRequest)
	requireFail(t, doPost(t, ts, "/api/games/socks/submit", sockGuess("Dobby", "Nowhere", 5)), http.StatusBadRequest)
	requireFail(t, doPost(t, ts, "/api/games/socks/submit", sockGuess("Dobby", "Hufflepuff", -1)), http.StatusBadRequest)
	requireFail(t, doPost(t, ts, "/api/games/socks/submit", map[string]any{"display_name": "Dobby", "house": "Hufflepuff"}), http.StatusBadRequest)

	// zero is a legitimate guess
	requireOK(t, doPost(t, ts, "/api/games/socks/submit", sockGuess("Dobby", "Hufflepuff", 0)))
}

func TestCheckinLifecycle(t *testing.T) {
	_, ts := newTestServer(t)

	body := requireOK(t, doPost(t, ts, "/api/checkins", map[string]any{"display_name": "Hermione", "house": "Gryffindor"}))
	created := body["data"].(map[string]any)
	id := created["ID"].(float64)
	if created["DisplayName"] != "Hermione" || created["House"] != "Gryffindor" {
		t.Fatalf("unexpected checkin row: %v", created)
	}

	requireOK(t, doPost(t, ts, "/api/checkins", map[string]any{"display_name": "Ron", "house": "Gryffindor"}))

	rows := dataSlice(t, requireOK(t, doGet(t, ts, "/api/admin/checkins")))
	if len(rows) != 2 {
		t.Fatalf("expected 2 checkins, got %d", len(rows))
	}
	// newest first
	if rows[0].(map[string]any)["DisplayName"] != "Ron" {
		t.Fatalf("expected newest checkin first, got %v", rows[0])
	}

	requireOK(t, doPost(t, ts, "/api/admin/checkins/delete", map[string]any{"id": id}))
	rows = dataSlice(t, requireOK(t, doGet(t, ts, "/api/admin/checkins")))
	if len(rows) != 1 || rows[0].(map[string]any)["DisplayName"] != "Ron" {
		t.Fatalf("expected only Ron after delete, got %v", rows)
	}
}

func TestCheckinValidation(t *testing.T) {
	_, ts := newTestServer(t)

	requireFail(t, doPost(t, ts, "/api/checkins", map[string]any{"display_name": "  ", "house": "Gryffindor"}), http.StatusBadRequest)
	requireFail(t, doPost(t, ts, "/api/checkins", map[string]any{"display_name": "Hermione", "house": "Sparta"}), http.StatusBadRequest)
	requireFail(t, doPost(t, ts, "/api/admin/checkins/delete", map[string]any{}), http.StatusBadRequest)
}

func TestSortingEndpoints(t *testing.T) {
	_, ts := newTestServer(t)

	questions := dataSlice(t, requireOK(t, doGet(t, ts, "/api/sorting/questions")))
	if len(questions) == 0 {
		t.Fatal("expected embedded sorting questions")
	}

	answers := map[string]string{}
	for _, raw := range questions {
		q := raw.(map[string]any)
		answers[q["id"].(string)] = "b"
	}
	body := requireOK(t, doPost(t, ts, "/api/sorting/score", map[string]any{"answers": answers}))
	if body["winner"] != "Ravenclaw" {
		t.Fatalf("all-b answers should sort into Ravenclaw, got %v", body["winner"])
	}
	tally := body["tally"].(map[string]any)
	if tally["Ravenclaw"].(float64) <= tally["Gryffindor"].(float64) {
		t.Fatalf("tally should favor the winner: %v", tally)
	}
}
