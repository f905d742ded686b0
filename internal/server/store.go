package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"

	"hogwarts-night/internal/db"
)

// Store errors surfaced to handlers. Round errors are business failures
// (the caller did something the current game state does not allow), not
// infrastructure failures.
var (
	ErrRoundInactive = errors.New("round is not active")
	ErrStaleRound    = errors.New("buzz is for a stale round")
	ErrUnknownCode   = errors.New("unknown code")
)

// OutOfOrderError rejects a scavenger-hunt step submitted before its
// predecessor. Expected is the step the player must complete next.
type OutOfOrderError struct {
	Expected int
}

func (e *OutOfOrderError) Error() string {
	return fmt.Sprintf("out of order, expected step %d", e.Expected)
}

// DuelSessionPatch carries a partial update of the duel session row.
// Nil fields are left untouched; an empty CurrentSpell or WinnerHouse
// clears the column. Setting a non-empty CurrentSpell starts a new round:
// the round counter advances and outstanding buzzes are purged.
type DuelSessionPatch struct {
	Active       *bool
	CurrentSpell *string
	Options      *[]string
	Reveal       *bool
	WinnerHouse  *string
}

// StepResult reports an accepted scavenger-hunt step.
type StepResult struct {
	Step      db.HorcruxStep
	NextStep  *db.HorcruxStep
	Completed bool
}

// Store is the persistence boundary. The GORM implementation backs the
// live event; the in-memory implementation backs tests and db-less runs.
// All mutations that must be race-free under concurrent devices (the
// points increment, the step unlock, the deck draw) are single atomic
// operations in both implementations.
type Store interface {
	Award(house string, delta int, reason string) (int, error)
	HouseTotals() ([]db.HousePoints, error)
	RecentPointsLog(limit int) ([]db.PointsLog, error)

	CreateCheckin(name, house string) (db.Checkin, error)
	ListCheckins() ([]db.Checkin, error)
	DeleteCheckin(id uint) error

	SeedTriviaQuestions(questions []db.TriviaQuestion) (int, error)
	ListTriviaQuestions() ([]db.TriviaQuestion, error)
	StartTrivia(questionID uint) error
	StopTrivia() error
	TriviaSession() (db.TriviaSession, error)
	RecordTriviaBuzz(name string, house *string, questionID uint) (db.TriviaBuzz, error)
	ActiveTriviaBuzzes() ([]db.TriviaBuzz, error)

	ListSpells() ([]db.WizardSpell, error)
	DuelSession() (db.DuelSession, error)
	UpdateDuelSession(patch DuelSessionPatch) (db.DuelSession, error)
	DrawSpell() (*db.WizardSpell, error)
	ResetDeck() error
	RecordDuelBuzz(name string, house *string, round uint) (db.DuelBuzz, error)
	ActiveDuelBuzzes() ([]db.DuelBuzz, error)

	HorcruxSession() (db.HorcruxSession, error)
	SetHorcruxActive(active bool) (db.HorcruxSession, error)
	ListHorcruxSteps() ([]db.HorcruxStep, error)
	HorcruxProgressFor(name string, house *string) ([]db.HorcruxProgress, error)
	SubmitHorcruxStep(name string, house *string, code string) (StepResult, error)
	ResetHorcruxProgress() error

	UpsertSockGuess(name, house string, guess int) error
	ListSockGuesses() ([]db.SocksGuess, error)
}

func marshalOptions(options []string) datatypes.JSON {
	raw, err := json.Marshal(options)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}
