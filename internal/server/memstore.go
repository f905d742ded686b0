package server

import (
	"math/rand/v2"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"hogwarts-night/internal/db"
)

// memStore keeps everything in process memory behind one mutex. It backs
// the test suite and db-less development runs; semantics mirror gormStore,
// including the atomicity of the increment, the deck draw, and the
// sequential step unlock (trivially, since every operation holds the lock).
type memStore struct {
	mu sync.Mutex

	totals  map[string]int
	logs    []db.PointsLog
	nextLog uint

	checkins    []db.Checkin
	nextCheckin uint

	questions    []db.TriviaQuestion
	nextQuestion uint
	trivia       db.TriviaSession
	triviaBuzzes []db.TriviaBuzz

	spells    []db.WizardSpell
	nextSpell uint
	deck      []uint
	dealt     bool
	duel      db.DuelSession
	duelBuzz  []db.DuelBuzz

	horcrux      db.HorcruxSession
	steps        []db.HorcruxStep
	progress     []db.HorcruxProgress
	nextProgress uint

	socks    []db.SocksGuess
	nextSock uint
}

func newMemStore() *memStore {
	return &memStore{
		totals:  make(map[string]int),
		nextLog: 1, nextCheckin: 1, nextQuestion: 1, nextSpell: 1, nextProgress: 1, nextSock: 1,
		trivia:  db.TriviaSession{ID: 1},
		duel:    db.DuelSession{ID: 1},
		horcrux: db.HorcruxSession{ID: 1},
	}
}

func timeNowUTC() time.Time {
	return time.Now().UTC()
}

func sameHouse(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (m *memStore) Award(house string, delta int, reason string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totals[house] += delta
	h := house
	m.logs = append(m.logs, db.PointsLog{
		ID:        m.nextLog,
		House:     &h,
		Delta:     delta,
		Reason:    reason,
		CreatedAt: timeNowUTC(),
	})
	m.nextLog++
	return m.totals[house], nil
}

func (m *memStore) HouseTotals() ([]db.HousePoints, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows := make([]db.HousePoints, 0, len(m.totals))
	var id uint = 1
	for house, points := range m.totals {
		rows = append(rows, db.HousePoints{ID: id, House: house, Points: points})
		id++
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].House < rows[j].House })
	return rows, nil
}

func (m *memStore) RecentPointsLog(limit int) ([]db.PointsLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]db.PointsLog, 0, limit)
	for i := len(m.logs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.logs[i])
	}
	return out, nil
}

func (m *memStore) CreateCheckin(name, house string) (db.Checkin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row := db.Checkin{ID: m.nextCheckin, DisplayName: name, House: house, CreatedAt: timeNowUTC()}
	m.nextCheckin++
	m.checkins = append(m.checkins, row)
	return row, nil
}

func (m *memStore) ListCheckins() ([]db.Checkin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]db.Checkin, 0, len(m.checkins))
	for i := len(m.checkins) - 1; i >= 0; i-- {
		out = append(out, m.checkins[i])
	}
	return out, nil
}

func (m *memStore) DeleteCheckin(id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, row := range m.checkins {
		if row.ID == id {
			m.checkins = append(m.checkins[:i], m.checkins[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memStore) SeedTriviaQuestions(questions []db.TriviaQuestion) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	inserted := 0
	for _, q := range questions {
		exists := false
		for _, have := range m.questions {
			if have.Question == q.Question {
				exists = true
				break
			}
		}
		if exists {
			continue
		}
		q.ID = m.nextQuestion
		m.nextQuestion++
		q.CreatedAt = timeNowUTC()
		q.UpdatedAt = q.CreatedAt
		m.questions = append(m.questions, q)
		inserted++
	}
	return inserted, nil
}

func (m *memStore) ListTriviaQuestions() ([]db.TriviaQuestion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]db.TriviaQuestion, 0, len(m.questions))
	for _, q := range m.questions {
		if q.Active {
			out = append(out, q)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

func (m *memStore) StartTrivia(questionID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := questionID
	m.trivia.Active = true
	m.trivia.ActiveQuestionID = &id
	m.trivia.UpdatedAt = timeNowUTC()
	m.triviaBuzzes = nil
	return nil
}

func (m *memStore) StopTrivia() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trivia.Active = false
	m.trivia.ActiveQuestionID = nil
	m.trivia.UpdatedAt = timeNowUTC()
	m.triviaBuzzes = nil
	return nil
}

func (m *memStore) TriviaSession() (db.TriviaSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.trivia, nil
}

func (m *memStore) RecordTriviaBuzz(name string, house *string, questionID uint) (db.TriviaBuzz, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.trivia.Active || m.trivia.ActiveQuestionID == nil {
		return db.TriviaBuzz{}, ErrRoundInactive
	}
	if *m.trivia.ActiveQuestionID != questionID {
		return db.TriviaBuzz{}, ErrStaleRound
	}
	buzz := db.TriviaBuzz{
		ID:          uuid.NewString(),
		DisplayName: name,
		House:       house,
		QuestionID:  questionID,
		CreatedAt:   timeNowUTC(),
	}
	m.triviaBuzzes = append(m.triviaBuzzes, buzz)
	return buzz, nil
}

func (m *memStore) ActiveTriviaBuzzes() ([]db.TriviaBuzz, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.trivia.Active || m.trivia.ActiveQuestionID == nil {
		return nil, nil
	}
	out := make([]db.TriviaBuzz, 0, len(m.triviaBuzzes))
	for _, b := range m.triviaBuzzes {
		if b.QuestionID == *m.trivia.ActiveQuestionID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memStore) ListSpells() ([]db.WizardSpell, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]db.WizardSpell, len(m.spells))
	copy(out, m.spells)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memStore) DuelSession() (db.DuelSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.duel, nil
}

func (m *memStore) UpdateDuelSession(patch DuelSessionPatch) (db.DuelSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if patch.CurrentSpell != nil {
		if *patch.CurrentSpell == "" {
			m.duel.CurrentSpell = nil
		} else {
			spell := *patch.CurrentSpell
			m.duel.CurrentSpell = &spell
			m.duel.Round++
			m.duel.Reveal = false
			m.duel.WinnerHouse = nil
			m.duelBuzz = nil
		}
	}
	if patch.Active != nil {
		m.duel.Active = *patch.Active
		if !m.duel.Active {
			m.duel.CurrentSpell = nil
			m.duel.Options = nil
			m.duel.Reveal = false
			m.duel.WinnerHouse = nil
			m.duelBuzz = nil
		}
	}
	if patch.Options != nil {
		m.duel.Options = marshalOptions(*patch.Options)
	}
	if patch.Reveal != nil {
		m.duel.Reveal = *patch.Reveal
	}
	if patch.WinnerHouse != nil {
		if *patch.WinnerHouse == "" {
			m.duel.WinnerHouse = nil
		} else {
			winner := *patch.WinnerHouse
			m.duel.WinnerHouse = &winner
		}
	}
	m.duel.UpdatedAt = timeNowUTC()
	return m.duel, nil
}

func (m *memStore) DrawSpell() (*db.WizardSpell, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.dealt {
		m.refillDeckLocked()
	}
	if len(m.deck) == 0 {
		return nil, nil
	}
	spellID := m.deck[len(m.deck)-1]
	m.deck = m.deck[:len(m.deck)-1]
	for _, s := range m.spells {
		if s.ID == spellID {
			spell := s
			return &spell, nil
		}
	}
	return nil, nil
}

func (m *memStore) ResetDeck() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refillDeckLocked()
	return nil
}

func (m *memStore) refillDeckLocked() {
	m.deck = m.deck[:0]
	for _, s := range m.spells {
		m.deck = append(m.deck, s.ID)
	}
	rand.Shuffle(len(m.deck), func(i, j int) {
		m.deck[i], m.deck[j] = m.deck[j], m.deck[i]
	})
	m.dealt = true
}

func (m *memStore) RecordDuelBuzz(name string, house *string, round uint) (db.DuelBuzz, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.duel.Active || m.duel.CurrentSpell == nil {
		return db.DuelBuzz{}, ErrRoundInactive
	}
	if m.duel.Round != round {
		return db.DuelBuzz{}, ErrStaleRound
	}
	buzz := db.DuelBuzz{
		ID:          uuid.NewString(),
		DisplayName: name,
		House:       house,
		Round:       round,
		CreatedAt:   timeNowUTC(),
	}
	m.duelBuzz = append(m.duelBuzz, buzz)
	return buzz, nil
}

func (m *memStore) ActiveDuelBuzzes() ([]db.DuelBuzz, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]db.DuelBuzz, 0, len(m.duelBuzz))
	for _, b := range m.duelBuzz {
		if b.Round == m.duel.Round {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memStore) HorcruxSession() (db.HorcruxSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.horcrux, nil
}

func (m *memStore) SetHorcruxActive(active bool) (db.HorcruxSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.horcrux.Active = active
	m.horcrux.UpdatedAt = timeNowUTC()
	return m.horcrux, nil
}

func (m *memStore) ListHorcruxSteps() ([]db.HorcruxStep, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]db.HorcruxStep, len(m.steps))
	copy(out, m.steps)
	sort.Slice(out, func(i, j int) bool { return out[i].StepOrder < out[j].StepOrder })
	return out, nil
}

func (m *memStore) HorcruxProgressFor(name string, house *string) ([]db.HorcruxProgress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]db.HorcruxProgress, 0)
	for _, p := range m.progress {
		if p.DisplayName == name && sameHouse(p.House, house) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StepOrder < out[j].StepOrder })
	return out, nil
}

func (m *memStore) SubmitHorcruxStep(name string, house *string, code string) (StepResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.horcrux.Active {
		return StepResult{}, ErrRoundInactive
	}
	var step *db.HorcruxStep
	for i := range m.steps {
		if strings.EqualFold(m.steps[i].Code, code) {
			step = &m.steps[i]
			break
		}
	}
	if step == nil {
		return StepResult{}, ErrUnknownCode
	}
	maxDone := 0
	for _, p := range m.progress {
		if p.DisplayName == name && sameHouse(p.House, house) && p.StepOrder > maxDone {
			maxDone = p.StepOrder
		}
	}
	if step.StepOrder != maxDone+1 {
		return StepResult{}, &OutOfOrderError{Expected: maxDone + 1}
	}
	m.progress = append(m.progress, db.HorcruxProgress{
		ID:          m.nextProgress,
		DisplayName: name,
		House:       house,
		StepOrder:   step.StepOrder,
		CompletedAt: timeNowUTC(),
	})
	m.nextProgress++

	result := StepResult{Step: *step, Completed: true}
	for i := range m.steps {
		if m.steps[i].StepOrder == step.StepOrder+1 {
			next := m.steps[i]
			result.NextStep = &next
			result.Completed = false
			break
		}
	}
	return result, nil
}

func (m *memStore) ResetHorcruxProgress() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.progress = nil
	return nil
}

func (m *memStore) UpsertSockGuess(name, house string, guess int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.socks {
		if m.socks[i].DisplayName == name && m.socks[i].House == house {
			m.socks[i].Guess = guess
			m.socks[i].UpdatedAt = timeNowUTC()
			return nil
		}
	}
	now := timeNowUTC()
	m.socks = append(m.socks, db.SocksGuess{
		ID:          m.nextSock,
		DisplayName: name,
		House:       house,
		Guess:       guess,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	m.nextSock++
	return nil
}

func (m *memStore) ListSockGuesses() ([]db.SocksGuess, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]db.SocksGuess, len(m.socks))
	copy(out, m.socks)
	return out, nil
}

// seedSpells and seedSteps load fixture content outside the Store
// interface; the production path loads content with cmd/load-content.
func (m *memStore) seedSpells(spells []db.WizardSpell) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range spells {
		s.ID = m.nextSpell
		m.nextSpell++
		s.CreatedAt = timeNowUTC()
		m.spells = append(m.spells, s)
	}
	m.dealt = false
}

func (m *memStore) seedSteps(steps []db.HorcruxStep) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var id uint = 1
	for _, s := range steps {
		s.ID = id
		id++
		m.steps = append(m.steps, s)
	}
}
