package server

import (
	"net/http"
	"testing"
)

func triviaBuzz(name, house string, questionID uint) map[string]any {
	return map[string]any{"display_name": name, "house": house, "question_id": questionID}
}

func TestTriviaSeedIsIdempotent(t *testing.T) {
	_, ts := newTestServer(t)

	body := requireOK(t, doPost(t, ts, "/api/admin/trivia/seed", nil))
	if body["inserted"].(float64) != float64(len(sampleTriviaQuestions)) {
		t.Fatalf("first seed inserted %v questions", body["inserted"])
	}

	body = requireOK(t, doPost(t, ts, "/api/admin/trivia/seed", nil))
	if body["inserted"].(float64) != 0 {
		t.Fatalf("second seed should insert nothing, got %v", body["inserted"])
	}

	questions := dataSlice(t, requireOK(t, doGet(t, ts, "/api/trivia/questions")))
	if len(questions) != len(sampleTriviaQuestions) {
		t.Fatalf("expected %d questions, got %d", len(sampleTriviaQuestions), len(questions))
	}
}

func TestTriviaStartStop(t *testing.T) {
	_, ts := newTestServer(t)
	requireOK(t, doPost(t, ts, "/api/admin/trivia/seed", nil))

	requireFail(t, doPost(t, ts, "/api/admin/trivia/start", map[string]any{}), http.StatusBadRequest)

	requireOK(t, doPost(t, ts, "/api/admin/trivia/start", map[string]any{"id": 1}))
	session := requireOK(t, doGet(t, ts, "/api/trivia/session"))["data"].(map[string]any)
	if session["Active"] != true || session["ActiveQuestionID"].(float64) != 1 {
		t.Fatalf("unexpected session after start: %v", session)
	}

	requireOK(t, doPost(t, ts, "/api/admin/trivia/stop", nil))
	session = requireOK(t, doGet(t, ts, "/api/trivia/session"))["data"].(map[string]any)
	if session["Active"] != false || session["ActiveQuestionID"] != nil {
		t.Fatalf("unexpected session after stop: %v", session)
	}
}

func TestTriviaBuzzRejectedWhenInactive(t *testing.T) {
	_, ts := newTestServer(t)
	requireOK(t, doPost(t, ts, "/api/admin/trivia/seed", nil))

	requireFail(t, doPost(t, ts, "/api/trivia/buzz", triviaBuzz("Luna", "Ravenclaw", 1)), http.StatusConflict)
}

func TestTriviaBuzzRejectedForStaleQuestion(t *testing.T) {
	_, ts := newTestServer(t)
	requireOK(t, doPost(t, ts, "/api/admin/trivia/seed", nil))
	requireOK(t, doPost(t, ts, "/api/admin/trivia/start", map[string]any{"id": 2}))

	// buzz still aimed at a previous question
	requireFail(t, doPost(t, ts, "/api/trivia/buzz", triviaBuzz("Luna", "Ravenclaw", 1)), http.StatusConflict)

	body := requireOK(t, doPost(t, ts, "/api/trivia/buzz", triviaBuzz("Luna", "Ravenclaw", 2)))
	buzz := body["data"].(map[string]any)
	if buzz["DisplayName"] != "Luna" || buzz["QuestionID"].(float64) != 2 {
		t.Fatalf("unexpected buzz: %v", buzz)
	}
	if buzz["ID"].(string) == "" {
		t.Fatal("buzz should carry an id")
	}
}

func TestTriviaBuzzValidation(t *testing.T) {
	_, ts := newTestServer(t)
	requireOK(t, doPost(t, ts, "/api/admin/trivia/seed", nil))
	requireOK(t, doPost(t, ts, "/api/admin/trivia/start", map[string]any{"id": 1}))

	requireFail(t, doPost(t, ts, "/api/trivia/buzz", triviaBuzz("", "Ravenclaw", 1)), http.StatusBadRequest)
	requireFail(t, doPost(t, ts, "/api/trivia/buzz", triviaBuzz("Luna", "Beauxbatons", 1)), http.StatusBadRequest)

	// house is optional
	requireOK(t, doPost(t, ts, "/api/trivia/buzz", triviaBuzz("Myrtle", "", 1)))
}

func TestTriviaRoundsAreIsolated(t *testing.T) {
	_, ts := newTestServer(t)
	requireOK(t, doPost(t, ts, "/api/admin/trivia/seed", nil))

	requireOK(t, doPost(t, ts, "/api/admin/trivia/start", map[string]any{"id": 1}))
	requireOK(t, doPost(t, ts, "/api/trivia/buzz", triviaBuzz("Neville", "Gryffindor", 1)))
	requireOK(t, doPost(t, ts, "/api/trivia/buzz", triviaBuzz("Cho", "Ravenclaw", 1)))

	buzzes := dataSlice(t, requireOK(t, doGet(t, ts, "/api/trivia/buzzes")))
	if len(buzzes) != 2 {
		t.Fatalf("expected 2 buzzes in round one, got %d", len(buzzes))
	}

	requireOK(t, doPost(t, ts, "/api/admin/trivia/start", map[string]any{"id": 2}))
	buzzes = dataSlice(t, requireOK(t, doGet(t, ts, "/api/trivia/buzzes")))
	if len(buzzes) != 0 {
		t.Fatalf("buzzes from a previous round leaked: %v", buzzes)
	}
}
