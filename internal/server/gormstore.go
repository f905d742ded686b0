package server

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hogwarts-night/internal/db"
)

// gormStore is the Postgres-backed Store. The increment, deck draw and
// deck reset go through the SQL functions defined in db/migrations so the
// race-sensitive paths are single server-side operations.
type gormStore struct {
	db *gorm.DB
}

func newGormStore(conn *gorm.DB) *gormStore {
	return &gormStore{db: conn}
}

func (g *gormStore) Award(house string, delta int, reason string) (int, error) {
	var total int
	err := g.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Raw("SELECT increment_house_points(?, ?)", house, delta).Scan(&total).Error; err != nil {
			return err
		}
		h := house
		return tx.Create(&db.PointsLog{House: &h, Delta: delta, Reason: reason}).Error
	})
	return total, err
}

func (g *gormStore) HouseTotals() ([]db.HousePoints, error) {
	var rows []db.HousePoints
	err := g.db.Order("house asc").Find(&rows).Error
	return rows, err
}

func (g *gormStore) RecentPointsLog(limit int) ([]db.PointsLog, error) {
	var rows []db.PointsLog
	err := g.db.Order("created_at desc, id desc").Limit(limit).Find(&rows).Error
	return rows, err
}

func (g *gormStore) CreateCheckin(name, house string) (db.Checkin, error) {
	row := db.Checkin{DisplayName: name, House: house, CreatedAt: timeNowUTC()}
	err := g.db.Create(&row).Error
	return row, err
}

func (g *gormStore) ListCheckins() ([]db.Checkin, error) {
	var rows []db.Checkin
	err := g.db.Order("created_at desc").Find(&rows).Error
	return rows, err
}

func (g *gormStore) DeleteCheckin(id uint) error {
	return g.db.Delete(&db.Checkin{}, id).Error
}

func (g *gormStore) SeedTriviaQuestions(questions []db.TriviaQuestion) (int, error) {
	inserted := 0
	for _, q := range questions {
		entry := q
		result := g.db.FirstOrCreate(&entry, db.TriviaQuestion{Question: q.Question})
		if result.Error != nil {
			return inserted, result.Error
		}
		if result.RowsAffected > 0 {
			inserted++
		}
	}
	return inserted, nil
}

func (g *gormStore) ListTriviaQuestions() ([]db.TriviaQuestion, error) {
	var rows []db.TriviaQuestion
	err := g.db.Where("active = ?", true).Order("sort_order asc, id asc").Find(&rows).Error
	return rows, err
}

func upsertSingleton(tx *gorm.DB, record any, columns []string) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns(columns),
	}).Create(record).Error
}

func (g *gormStore) StartTrivia(questionID uint) error {
	return g.db.Transaction(func(tx *gorm.DB) error {
		id := questionID
		session := db.TriviaSession{ID: 1, Active: true, ActiveQuestionID: &id, UpdatedAt: timeNowUTC()}
		if err := upsertSingleton(tx, &session, []string{"active", "active_question_id", "updated_at"}); err != nil {
			return err
		}
		// wholesale purge so buzzes cannot carry over between rounds
		return tx.Exec("DELETE FROM trivia_buzzes").Error
	})
}

func (g *gormStore) StopTrivia() error {
	return g.db.Transaction(func(tx *gorm.DB) error {
		session := db.TriviaSession{ID: 1, Active: false, ActiveQuestionID: nil, UpdatedAt: timeNowUTC()}
		if err := upsertSingleton(tx, &session, []string{"active", "active_question_id", "updated_at"}); err != nil {
			return err
		}
		return tx.Exec("DELETE FROM trivia_buzzes").Error
	})
}

func (g *gormStore) TriviaSession() (db.TriviaSession, error) {
	session := db.TriviaSession{ID: 1}
	err := g.db.Limit(1).Find(&session, "id = ?", 1).Error
	return session, err
}

func (g *gormStore) RecordTriviaBuzz(name string, house *string, questionID uint) (db.TriviaBuzz, error) {
	session, err := g.TriviaSession()
	if err != nil {
		return db.TriviaBuzz{}, err
	}
	if !session.Active || session.ActiveQuestionID == nil {
		return db.TriviaBuzz{}, ErrRoundInactive
	}
	if *session.ActiveQuestionID != questionID {
		return db.TriviaBuzz{}, ErrStaleRound
	}
	buzz := db.TriviaBuzz{
		ID:          uuid.NewString(),
		DisplayName: name,
		House:       house,
		QuestionID:  questionID,
		CreatedAt:   timeNowUTC(),
	}
	if err := g.db.Create(&buzz).Error; err != nil {
		return db.TriviaBuzz{}, err
	}
	return buzz, nil
}

func (g *gormStore) ActiveTriviaBuzzes() ([]db.TriviaBuzz, error) {
	session, err := g.TriviaSession()
	if err != nil {
		return nil, err
	}
	if !session.Active || session.ActiveQuestionID == nil {
		return nil, nil
	}
	var rows []db.TriviaBuzz
	err = g.db.Where("question_id = ?", *session.ActiveQuestionID).Order("created_at asc").Find(&rows).Error
	return rows, err
}

func (g *gormStore) ListSpells() ([]db.WizardSpell, error) {
	var rows []db.WizardSpell
	err := g.db.Order("name asc").Find(&rows).Error
	return rows, err
}

func (g *gormStore) DuelSession() (db.DuelSession, error) {
	session := db.DuelSession{ID: 1}
	err := g.db.Limit(1).Find(&session, "id = ?", 1).Error
	return session, err
}

func (g *gormStore) UpdateDuelSession(patch DuelSessionPatch) (db.DuelSession, error) {
	var session db.DuelSession
	err := g.db.Transaction(func(tx *gorm.DB) error {
		session = db.DuelSession{ID: 1}
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Limit(1).Find(&session, "id = ?", 1).Error; err != nil {
			return err
		}
		purge := false
		if patch.CurrentSpell != nil {
			if *patch.CurrentSpell == "" {
				session.CurrentSpell = nil
			} else {
				spell := *patch.CurrentSpell
				session.CurrentSpell = &spell
				session.Round++
				session.Reveal = false
				session.WinnerHouse = nil
				purge = true
			}
		}
		if patch.Active != nil {
			session.Active = *patch.Active
			if !session.Active {
				session.CurrentSpell = nil
				session.Options = nil
				session.Reveal = false
				session.WinnerHouse = nil
				purge = true
			}
		}
		if patch.Options != nil {
			session.Options = marshalOptions(*patch.Options)
		}
		if patch.Reveal != nil {
			session.Reveal = *patch.Reveal
		}
		if patch.WinnerHouse != nil {
			if *patch.WinnerHouse == "" {
				session.WinnerHouse = nil
			} else {
				winner := *patch.WinnerHouse
				session.WinnerHouse = &winner
			}
		}
		session.UpdatedAt = timeNowUTC()
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&session).Error; err != nil {
			return err
		}
		if purge {
			return tx.Exec("DELETE FROM duel_buzzes").Error
		}
		return nil
	})
	return session, err
}

func (g *gormStore) DrawSpell() (*db.WizardSpell, error) {
	var rows []db.WizardSpell
	if err := g.db.Raw("SELECT * FROM duel_draw_next()").Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (g *gormStore) ResetDeck() error {
	return g.db.Exec("SELECT duel_reset_deck()").Error
}

func (g *gormStore) RecordDuelBuzz(name string, house *string, round uint) (db.DuelBuzz, error) {
	session, err := g.DuelSession()
	if err != nil {
		return db.DuelBuzz{}, err
	}
	if !session.Active || session.CurrentSpell == nil {
		return db.DuelBuzz{}, ErrRoundInactive
	}
	if session.Round != round {
		return db.DuelBuzz{}, ErrStaleRound
	}
	buzz := db.DuelBuzz{
		ID:          uuid.NewString(),
		DisplayName: name,
		House:       house,
		Round:       round,
		CreatedAt:   timeNowUTC(),
	}
	if err := g.db.Create(&buzz).Error; err != nil {
		return db.DuelBuzz{}, err
	}
	return buzz, nil
}

func (g *gormStore) ActiveDuelBuzzes() ([]db.DuelBuzz, error) {
	session, err := g.DuelSession()
	if err != nil {
		return nil, err
	}
	var rows []db.DuelBuzz
	err = g.db.Where("round = ?", session.Round).Order("created_at asc").Find(&rows).Error
	return rows, err
}

func (g *gormStore) HorcruxSession() (db.HorcruxSession, error) {
	session := db.HorcruxSession{ID: 1}
	err := g.db.Limit(1).Find(&session, "id = ?", 1).Error
	return session, err
}

func (g *gormStore) SetHorcruxActive(active bool) (db.HorcruxSession, error) {
	session := db.HorcruxSession{ID: 1, Active: active, UpdatedAt: timeNowUTC()}
	err := upsertSingleton(g.db, &session, []string{"active", "updated_at"})
	return session, err
}

func (g *gormStore) ListHorcruxSteps() ([]db.HorcruxStep, error) {
	var rows []db.HorcruxStep
	err := g.db.Order("step_order asc").Find(&rows).Error
	return rows, err
}

func (g *gormStore) HorcruxProgressFor(name string, house *string) ([]db.HorcruxProgress, error) {
	var rows []db.HorcruxProgress
	err := g.db.Where("display_name = ? AND house IS NOT DISTINCT FROM ?", name, house).
		Order("step_order asc").Find(&rows).Error
	return rows, err
}

func (g *gormStore) SubmitHorcruxStep(name string, house *string, code string) (StepResult, error) {
	session, err := g.HorcruxSession()
	if err != nil {
		return StepResult{}, err
	}
	if !session.Active {
		return StepResult{}, ErrRoundInactive
	}

	var step db.HorcruxStep
	err = g.db.Where("upper(code) = upper(?)", code).First(&step).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return StepResult{}, ErrUnknownCode
	}
	if err != nil {
		return StepResult{}, err
	}

	// Guarded insert: the predecessor check and the append are one
	// statement, so two devices for the same player cannot both slip a
	// step in. The max is re-read here, never taken from the client.
	result := g.db.Exec(`
		INSERT INTO horcrux_progresses (display_name, house, step_order, completed_at)
		SELECT ?, ?, ?, now()
		WHERE (
			SELECT COALESCE(MAX(step_order), 0) FROM horcrux_progresses
			WHERE display_name = ? AND house IS NOT DISTINCT FROM ?
		) = ? - 1`,
		name, house, step.StepOrder, name, house, step.StepOrder)
	if result.Error != nil {
		return StepResult{}, result.Error
	}
	if result.RowsAffected == 0 {
		var maxDone int
		if err := g.db.Raw(
			"SELECT COALESCE(MAX(step_order), 0) FROM horcrux_progresses WHERE display_name = ? AND house IS NOT DISTINCT FROM ?",
			name, house).Scan(&maxDone).Error; err != nil {
			return StepResult{}, err
		}
		return StepResult{}, &OutOfOrderError{Expected: maxDone + 1}
	}

	out := StepResult{Step: step, Completed: true}
	var next db.HorcruxStep
	err = g.db.Where("step_order = ?", step.StepOrder+1).First(&next).Error
	if err == nil {
		out.NextStep = &next
		out.Completed = false
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return StepResult{}, err
	}
	return out, nil
}

func (g *gormStore) ResetHorcruxProgress() error {
	return g.db.Exec("DELETE FROM horcrux_progresses").Error
}

func (g *gormStore) UpsertSockGuess(name, house string, guess int) error {
	record := db.SocksGuess{
		DisplayName: name,
		House:       house,
		Guess:       guess,
		CreatedAt:   timeNowUTC(),
		UpdatedAt:   timeNowUTC(),
	}
	return g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "display_name"}, {Name: "house"}},
		DoUpdates: clause.AssignmentColumns([]string{"guess", "updated_at"}),
	}).Create(&record).Error
}

func (g *gormStore) ListSockGuesses() ([]db.SocksGuess, error) {
	var rows []db.SocksGuess
	err := g.db.Order("updated_at desc").Find(&rows).Error
	return rows, err
}
