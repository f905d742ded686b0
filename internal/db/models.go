package db

import (
	"time"

	"gorm.io/datatypes"
)

type HousePoints struct {
	ID        uint      `gorm:"primaryKey"`
	House     string    `gorm:"size:16;uniqueIndex;not null"`
	Points    int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// PointsLog is append-only; rows are never updated or deleted.
type PointsLog struct {
	ID        uint      `gorm:"primaryKey"`
	House     *string   `gorm:"size:16;index"`
	Delta     int       `gorm:"not null"`
	Reason    string    `gorm:"size:280;not null;default:''"`
	CreatedAt time.Time `gorm:"not null;index"`
}

type Checkin struct {
	ID          uint      `gorm:"primaryKey"`
	DisplayName string    `gorm:"size:80;not null"`
	House       string    `gorm:"size:16;not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

type TriviaQuestion struct {
	ID         uint      `gorm:"primaryKey"`
	Category   string    `gorm:"size:64;not null"`
	Question   string    `gorm:"size:280;not null"`
	Answer     string    `gorm:"size:140;not null"`
	Difficulty int       `gorm:"not null;default:1"`
	SortOrder  int       `gorm:"not null;default:0"`
	Active     bool      `gorm:"not null;default:true"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TriviaSession is a singleton row with ID 1.
type TriviaSession struct {
	ID               uint  `gorm:"primaryKey"`
	Active           bool  `gorm:"not null;default:false"`
	ActiveQuestionID *uint `gorm:"index"`
	UpdatedAt        time.Time
}

type TriviaBuzz struct {
	ID          string    `gorm:"primaryKey;size:36"`
	DisplayName string    `gorm:"size:80;not null"`
	House       *string   `gorm:"size:16"`
	QuestionID  uint      `gorm:"index;not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

type WizardSpell struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"size:80;uniqueIndex;not null"`
	Incantation string    `gorm:"size:80;not null"`
	Description string    `gorm:"size:280;not null;default:''"`
	Gesture     string    `gorm:"size:280;not null;default:''"`
	CreatedAt   time.Time `gorm:"not null"`
}

// DuelDeckCard is one entry of the draw-without-replacement deck. The
// deck is repopulated from wizard_spells by the reset procedure.
type DuelDeckCard struct {
	ID      uint `gorm:"primaryKey"`
	SpellID uint `gorm:"index;not null"`
	Drawn   bool `gorm:"not null;default:false"`
}

// DuelSession is a singleton row with ID 1. Round increments every time
// a new spell becomes current, so buzzes can be scoped to one performance.
type DuelSession struct {
	ID           uint           `gorm:"primaryKey"`
	Active       bool           `gorm:"not null;default:false"`
	CurrentSpell *string        `gorm:"size:80"`
	Options      datatypes.JSON `gorm:"type:jsonb"`
	Reveal       bool           `gorm:"not null;default:false"`
	WinnerHouse  *string        `gorm:"size:16"`
	Round        uint           `gorm:"not null;default:0"`
	UpdatedAt    time.Time
}

type DuelBuzz struct {
	ID          string    `gorm:"primaryKey;size:36"`
	DisplayName string    `gorm:"size:80;not null"`
	House       *string   `gorm:"size:16"`
	Round       uint      `gorm:"index;not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

// HorcruxSession is a singleton row with ID 1.
type HorcruxSession struct {
	ID        uint `gorm:"primaryKey"`
	Active    bool `gorm:"not null;default:false"`
	UpdatedAt time.Time
}

type HorcruxStep struct {
	ID        uint   `gorm:"primaryKey"`
	StepOrder int    `gorm:"uniqueIndex;not null"`
	Code      string `gorm:"size:32;uniqueIndex;not null"`
	Clue      string `gorm:"size:500;not null"`
	Name      string `gorm:"size:80;not null;default:''"`
	Hint      string `gorm:"size:280;not null;default:''"`
}

type HorcruxProgress struct {
	ID          uint      `gorm:"primaryKey"`
	DisplayName string    `gorm:"size:80;not null;uniqueIndex:idx_progress_player_step"`
	House       *string   `gorm:"size:16;uniqueIndex:idx_progress_player_step"`
	StepOrder   int       `gorm:"not null;uniqueIndex:idx_progress_player_step"`
	CompletedAt time.Time `gorm:"not null"`
}

type SocksGuess struct {
	ID          uint      `gorm:"primaryKey"`
	DisplayName string    `gorm:"size:80;not null;uniqueIndex:idx_socks_name_house"`
	House       string    `gorm:"size:16;not null;uniqueIndex:idx_socks_name_house"`
	Guess       int       `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}
