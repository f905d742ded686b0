package server

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"hogwarts-night/internal/db"
)

var testSpells = []db.WizardSpell{
	{Name: "Disarming Charm", Incantation: "Expelliarmus", Description: "Knocks the wand away", Gesture: "Sharp flick"},
	{Name: "Shield Charm", Incantation: "Protego", Description: "Invisible shield", Gesture: "Upward sweep"},
	{Name: "Wand-Lighting Charm", Incantation: "Lumos", Description: "Light at the wand tip", Gesture: "Small twist"},
}

func duelBuzz(name, house string, round uint) map[string]any {
	return map[string]any{"display_name": name, "house": house, "round": round}
}

func TestDuelSessionPartialUpdate(t *testing.T) {
	_, ts := newTestServer(t)

	requireOK(t, doPost(t, ts, "/api/duel/session", map[string]any{"active": true}))
	requireOK(t, doPost(t, ts, "/api/duel/session", map[string]any{
		"current_spell": "Expelliarmus",
		"options":       []string{"Expelliarmus", "Protego", "Lumos"},
	}))

	session := requireOK(t, doGet(t, ts, "/api/duel/session"))["data"].(map[string]any)
	if session["Active"] != true {
		t.Fatal("partial update must not clobber active")
	}
	if session["CurrentSpell"] != "Expelliarmus" {
		t.Fatalf("unexpected current spell: %v", session["CurrentSpell"])
	}
	opts := session["Options"].([]any)
	if len(opts) != 3 {
		t.Fatalf("expected 3 options, got %v", opts)
	}

	// reveal alone leaves the rest in place
	requireOK(t, doPost(t, ts, "/api/duel/session", map[string]any{"reveal": true, "winner_house": "Gryffindor"}))
	session = requireOK(t, doGet(t, ts, "/api/duel/session"))["data"].(map[string]any)
	if session["Reveal"] != true || session["WinnerHouse"] != "Gryffindor" || session["CurrentSpell"] != "Expelliarmus" {
		t.Fatalf("unexpected session after reveal: %v", session)
	}
}

func TestDuelSessionRejectsBadWinner(t *testing.T) {
	_, ts := newTestServer(t)
	requireFail(t, doPost(t, ts, "/api/duel/session", map[string]any{"winner_house": "Ilvermorny"}), http.StatusBadRequest)
}

func TestDuelNewSpellStartsFreshRound(t *testing.T) {
	_, ts := newTestServer(t)

	requireOK(t, doPost(t, ts, "/api/duel/session", map[string]any{"active": true, "current_spell": "Expelliarmus"}))
	session := requireOK(t, doGet(t, ts, "/api/duel/session"))["data"].(map[string]any)
	round := uint(session["Round"].(float64))

	requireOK(t, doPost(t, ts, "/api/duel/buzz", duelBuzz("Seamus", "Gryffindor", round)))
	buzzes := dataSlice(t, requireOK(t, doGet(t, ts, "/api/duel/buzzes")))
	if len(buzzes) != 1 {
		t.Fatalf("expected 1 buzz, got %d", len(buzzes))
	}

	requireOK(t, doPost(t, ts, "/api/duel/session", map[string]any{"reveal": true, "winner_house": "Gryffindor"}))
	requireOK(t, doPost(t, ts, "/api/duel/session", map[string]any{"current_spell": "Protego"}))
	session = requireOK(t, doGet(t, ts, "/api/duel/session"))["data"].(map[string]any)
	if uint(session["Round"].(float64)) != round+1 {
		t.Fatalf("new spell should bump the round, got %v", session["Round"])
	}
	if session["Reveal"] != false || session["WinnerHouse"] != nil {
		t.Fatalf("new spell should clear reveal state: %v", session)
	}

	buzzes = dataSlice(t, requireOK(t, doGet(t, ts, "/api/duel/buzzes")))
	if len(buzzes) != 0 {
		t.Fatalf("buzzes from the previous round leaked: %v", buzzes)
	}

	// the old round number no longer buys a buzz
	requireFail(t, doPost(t, ts, "/api/duel/buzz", duelBuzz("Seamus", "Gryffindor", round)), http.StatusConflict)
}

func TestDuelBuzzRejectedWhenInactive(t *testing.T) {
	_, ts := newTestServer(t)
	requireFail(t, doPost(t, ts, "/api/duel/buzz", duelBuzz("Dean", "Gryffindor", 0)), http.StatusConflict)
}

func TestDuelStopClearsSession(t *testing.T) {
	_, ts := newTestServer(t)

	requireOK(t, doPost(t, ts, "/api/duel/session", map[string]any{
		"active":        true,
		"current_spell": "Expelliarmus",
		"options":       []string{"Expelliarmus", "Protego"},
		"reveal":        true,
	}))
	requireOK(t, doPost(t, ts, "/api/duel/session", map[string]any{"active": false}))

	session := requireOK(t, doGet(t, ts, "/api/duel/session"))["data"].(map[string]any)
	if session["Active"] != false || session["CurrentSpell"] != nil || session["Reveal"] != false || session["WinnerHouse"] != nil {
		t.Fatalf("stop should clear the session: %v", session)
	}

	buzzes := dataSlice(t, requireOK(t, doGet(t, ts, "/api/duel/buzzes")))
	if len(buzzes) != 0 {
		t.Fatalf("stop should purge buzzes: %v", buzzes)
	}
}

func TestDuelDrawWithoutReplacement(t *testing.T) {
	srv, ts := newTestServer(t)
	srv.store.(*memStore).seedSpells(testSpells)

	seen := map[string]bool{}
	for i := 0; i < len(testSpells); i++ {
		body := requireOK(t, doPost(t, ts, "/api/duel/deck/draw", nil))
		spell, ok := body["spell"].(map[string]any)
		if !ok {
			t.Fatalf("draw %d returned no spell: %v", i, body)
		}
		incantation := spell["Incantation"].(string)
		if seen[incantation] {
			t.Fatalf("spell %q drawn twice", incantation)
		}
		seen[incantation] = true
	}

	body := requireOK(t, doPost(t, ts, "/api/duel/deck/draw", nil))
	if body["spell"] != nil {
		t.Fatalf("exhausted deck should yield null, got %v", body["spell"])
	}

	requireOK(t, doPost(t, ts, "/api/duel/deck/reset", nil))
	body = requireOK(t, doPost(t, ts, "/api/duel/deck/draw", nil))
	if _, ok := body["spell"].(map[string]any); !ok {
		t.Fatalf("reset deck should draw again, got %v", body)
	}
}

func TestDuelSpellsListing(t *testing.T) {
	srv, ts := newTestServer(t)
	srv.store.(*memStore).seedSpells(testSpells)

	spells := dataSlice(t, requireOK(t, doGet(t, ts, "/api/duel/spells")))
	if len(spells) != len(testSpells) {
		t.Fatalf("expected %d spells, got %d", len(testSpells), len(spells))
	}
}

func TestDuelActorConsoleBuildsDecoyOptions(t *testing.T) {
	_, ts := newTestServer(t)

	resp := doGet(t, ts, "/games/duel/actor")
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("actor console returned %d", resp.StatusCode)
	}
	page, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read actor console: %v", err)
	}
	body := string(page)
	// the console must draw decoys from the catalog, not publish the
	// correct incantation alone
	if !strings.Contains(body, "/api/duel/spells") {
		t.Fatal("actor console does not load the spell catalog")
	}
	if !strings.Contains(body, "buildOptions(current.Incantation)") {
		t.Fatal("actor console does not publish a built option set")
	}
}
