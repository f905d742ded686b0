package server

import (
	"net/http"
	"strings"
	"testing"

	"hogwarts-night/internal/db"
)

var testSteps = []db.HorcruxStep{
	{StepOrder: 1, Code: "DIARY", Clue: "Where ink answers back", Name: "Riddle's Diary", Hint: "Check the bookshelf"},
	{StepOrder: 2, Code: "RING", Clue: "A cracked stone in gold", Name: "Gaunt's Ring", Hint: "Look low"},
	{StepOrder: 3, Code: "LOCKET", Clue: "A serpent's S on a chain", Name: "Slytherin's Locket", Hint: "Behind the curtain"},
}

func horcruxSubmit(name, house, code string) map[string]any {
	return map[string]any{"display_name": name, "house": house, "code": code}
}

func TestHorcruxSubmitRejectedWhenInactive(t *testing.T) {
	srv, ts := newTestServer(t)
	srv.store.(*memStore).seedSteps(testSteps)

	requireFail(t, doPost(t, ts, "/api/horcrux/submit", horcruxSubmit("Ginny", "Gryffindor", "DIARY")), http.StatusConflict)
}

func TestHorcruxSequentialUnlock(t *testing.T) {
	srv, ts := newTestServer(t)
	srv.store.(*memStore).seedSteps(testSteps)
	requireOK(t, doPost(t, ts, "/api/admin/horcrux/start", nil))

	// skipping ahead is refused with the expected step in the message
	body := requireFail(t, doPost(t, ts, "/api/horcrux/submit", horcruxSubmit("Ginny", "Gryffindor", "RING")), http.StatusConflict)
	if msg, _ := body["error"].(string); !strings.Contains(msg, "expected step 1") {
		t.Fatalf("out-of-order error should name the expected step, got %q", msg)
	}

	body = requireOK(t, doPost(t, ts, "/api/horcrux/submit", horcruxSubmit("Ginny", "Gryffindor", "DIARY")))
	if body["step_order"].(float64) != 1 || body["completed"] != false {
		t.Fatalf("unexpected first step response: %v", body)
	}
	if body["next_step_order"].(float64) != 2 || body["next_clue"] == "" {
		t.Fatalf("first step should reveal the next clue: %v", body)
	}

	// codes are case-insensitive
	requireOK(t, doPost(t, ts, "/api/horcrux/submit", horcruxSubmit("Ginny", "Gryffindor", "ring")))

	body = requireOK(t, doPost(t, ts, "/api/horcrux/submit", horcruxSubmit("Ginny", "Gryffindor", "LOCKET")))
	if body["completed"] != true {
		t.Fatalf("final step should complete the hunt: %v", body)
	}
	if _, present := body["next_clue"]; present {
		t.Fatalf("final step must not carry a next clue: %v", body)
	}
}

func TestHorcruxUnknownCode(t *testing.T) {
	srv, ts := newTestServer(t)
	srv.store.(*memStore).seedSteps(testSteps)
	requireOK(t, doPost(t, ts, "/api/admin/horcrux/start", nil))

	requireFail(t, doPost(t, ts, "/api/horcrux/submit", horcruxSubmit("Ginny", "Gryffindor", "ELDERWAND")), http.StatusConflict)
	requireFail(t, doPost(t, ts, "/api/horcrux/submit", horcruxSubmit("Ginny", "Gryffindor", "")), http.StatusBadRequest)
}

func TestHorcruxProgressIsPerPlayer(t *testing.T) {
	srv, ts := newTestServer(t)
	srv.store.(*memStore).seedSteps(testSteps)
	requireOK(t, doPost(t, ts, "/api/admin/horcrux/start", nil))

	requireOK(t, doPost(t, ts, "/api/horcrux/submit", horcruxSubmit("Ginny", "Gryffindor", "DIARY")))
	requireOK(t, doPost(t, ts, "/api/horcrux/submit", horcruxSubmit("Ginny", "Gryffindor", "RING")))

	// another player starts from the beginning
	requireFail(t, doPost(t, ts, "/api/horcrux/submit", horcruxSubmit("Luna", "Ravenclaw", "RING")), http.StatusConflict)
	requireOK(t, doPost(t, ts, "/api/horcrux/submit", horcruxSubmit("Luna", "Ravenclaw", "DIARY")))

	progress := dataSlice(t, requireOK(t, doGet(t, ts, "/api/horcrux/progress?name=Ginny&house=Gryffindor")))
	if len(progress) != 2 {
		t.Fatalf("expected 2 completed steps for Ginny, got %d", len(progress))
	}
	progress = dataSlice(t, requireOK(t, doGet(t, ts, "/api/horcrux/progress?name=Luna&house=Ravenclaw")))
	if len(progress) != 1 {
		t.Fatalf("expected 1 completed step for Luna, got %d", len(progress))
	}
}

func TestHorcruxReset(t *testing.T) {
	srv, ts := newTestServer(t)
	srv.store.(*memStore).seedSteps(testSteps)
	requireOK(t, doPost(t, ts, "/api/admin/horcrux/start", nil))

	requireOK(t, doPost(t, ts, "/api/horcrux/submit", horcruxSubmit("Ginny", "Gryffindor", "DIARY")))
	requireOK(t, doPost(t, ts, "/api/admin/horcrux/reset", nil))

	progress := dataSlice(t, requireOK(t, doGet(t, ts, "/api/horcrux/progress?name=Ginny&house=Gryffindor")))
	if len(progress) != 0 {
		t.Fatalf("reset should wipe progress, got %v", progress)
	}

	// back to step one
	requireOK(t, doPost(t, ts, "/api/horcrux/submit", horcruxSubmit("Ginny", "Gryffindor", "DIARY")))
}

func TestHorcruxStepsHideCodes(t *testing.T) {
	srv, ts := newTestServer(t)
	srv.store.(*memStore).seedSteps(testSteps)

	steps := dataSlice(t, requireOK(t, doGet(t, ts, "/api/horcrux/steps")))
	if len(steps) != len(testSteps) {
		t.Fatalf("expected %d steps, got %d", len(testSteps), len(steps))
	}
	for _, raw := range steps {
		step := raw.(map[string]any)
		for key := range step {
			if strings.EqualFold(key, "code") {
				t.Fatalf("step view leaked the code: %v", step)
			}
		}
	}
}
