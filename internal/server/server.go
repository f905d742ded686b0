package server

import (
	"net/http"

	"hogwarts-night/internal/config"

	"gorm.io/gorm"
)

type Server struct {
	store Store
	hub   *hub
	cfg   config.Config
}

// New builds a Server over the given connection. A nil connection falls
// back to the in-memory store, which is how the test suite and db-less
// development runs operate.
func New(conn *gorm.DB, cfg config.Config) *Server {
	var store Store
	if conn != nil {
		store = newGormStore(conn)
	} else {
		store = newMemStore()
	}
	return &Server{
		store: store,
		hub:   newHub(),
		cfg:   cfg,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /enter", s.handleEnterView)
	mux.HandleFunc("GET /sorting", s.handleSortingView)
	mux.HandleFunc("GET /games", s.handleGamesView)
	mux.HandleFunc("GET /games/trivia", s.handleTriviaView)
	mux.HandleFunc("GET /games/trivia/display", s.handleTriviaDisplayView)
	mux.HandleFunc("GET /games/duel", s.handleDuelView)
	mux.HandleFunc("GET /games/duel/actor", s.handleDuelActorView)
	mux.HandleFunc("GET /games/duel/display", s.handleDuelDisplayView)
	mux.HandleFunc("GET /games/horcrux", s.handleHorcruxView)
	mux.HandleFunc("GET /games/socks", s.handleSocksView)
	mux.HandleFunc("GET /admin", s.handleAdminView)

	mux.HandleFunc("POST /api/admin/points/award", s.handleAwardPoints)
	mux.HandleFunc("GET /api/points/totals", s.handlePointsTotals)
	mux.HandleFunc("GET /api/points/recent", s.handlePointsRecent)

	mux.HandleFunc("POST /api/checkins", s.handleCheckin)
	mux.HandleFunc("GET /api/admin/checkins", s.handleListCheckins)
	mux.HandleFunc("POST /api/admin/checkins/delete", s.handleDeleteCheckin)

	mux.HandleFunc("GET /api/sorting/questions", s.handleSortingQuestions)
	mux.HandleFunc("POST /api/sorting/score", s.handleSortingScore)

	mux.HandleFunc("POST /api/admin/trivia/start", s.handleTriviaStart)
	mux.HandleFunc("POST /api/admin/trivia/stop", s.handleTriviaStop)
	mux.HandleFunc("POST /api/admin/trivia/seed", s.handleTriviaSeed)
	mux.HandleFunc("GET /api/trivia/questions", s.handleTriviaQuestions)
	mux.HandleFunc("GET /api/trivia/session", s.handleTriviaSession)
	mux.HandleFunc("POST /api/trivia/buzz", s.handleTriviaBuzz)
	mux.HandleFunc("GET /api/trivia/buzzes", s.handleTriviaBuzzes)

	mux.HandleFunc("GET /api/duel/session", s.handleDuelSession)
	mux.HandleFunc("POST /api/duel/session", s.handleDuelSessionUpdate)
	mux.HandleFunc("POST /api/duel/deck/draw", s.handleDuelDraw)
	mux.HandleFunc("POST /api/duel/deck/reset", s.handleDuelReset)
	mux.HandleFunc("POST /api/duel/buzz", s.handleDuelBuzz)
	mux.HandleFunc("GET /api/duel/buzzes", s.handleDuelBuzzes)
	mux.HandleFunc("GET /api/duel/spells", s.handleDuelSpells)

	mux.HandleFunc("POST /api/admin/horcrux/start", s.handleHorcruxStart)
	mux.HandleFunc("POST /api/admin/horcrux/stop", s.handleHorcruxStop)
	mux.HandleFunc("POST /api/admin/horcrux/reset", s.handleHorcruxReset)
	mux.HandleFunc("GET /api/horcrux/session", s.handleHorcruxSession)
	mux.HandleFunc("GET /api/horcrux/steps", s.handleHorcruxSteps)
	mux.HandleFunc("GET /api/horcrux/progress", s.handleHorcruxProgress)
	mux.HandleFunc("POST /api/horcrux/submit", s.handleHorcruxSubmit)

	mux.HandleFunc("POST /api/games/socks/submit", s.handleSocksSubmit)
	mux.HandleFunc("GET /api/admin/socks/guesses", s.handleSocksGuesses)

	mux.HandleFunc("GET /ws", s.handleWebsocket)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))
	return mux
}
