package server

import (
	"net/http"

	"hogwarts-night/internal/web"

	"github.com/a-h/templ"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	templ.Handler(web.Home()).ServeHTTP(w, r)
}

func (s *Server) handleEnterView(w http.ResponseWriter, r *http.Request) {
	templ.Handler(web.EnterView()).ServeHTTP(w, r)
}

func (s *Server) handleSortingView(w http.ResponseWriter, r *http.Request) {
	templ.Handler(web.SortingView()).ServeHTTP(w, r)
}

func (s *Server) handleGamesView(w http.ResponseWriter, r *http.Request) {
	templ.Handler(web.GamesMenu()).ServeHTTP(w, r)
}

func (s *Server) handleTriviaView(w http.ResponseWriter, r *http.Request) {
	templ.Handler(web.TriviaView()).ServeHTTP(w, r)
}

func (s *Server) handleTriviaDisplayView(w http.ResponseWriter, r *http.Request) {
	templ.Handler(web.TriviaDisplayView()).ServeHTTP(w, r)
}

func (s *Server) handleDuelView(w http.ResponseWriter, r *http.Request) {
	templ.Handler(web.DuelView()).ServeHTTP(w, r)
}

func (s *Server) handleDuelActorView(w http.ResponseWriter, r *http.Request) {
	templ.Handler(web.DuelActorView(s.cfg.DuelSameHouseAward, s.cfg.DuelRivalAward)).ServeHTTP(w, r)
}

func (s *Server) handleDuelDisplayView(w http.ResponseWriter, r *http.Request) {
	templ.Handler(web.DuelDisplayView()).ServeHTTP(w, r)
}

func (s *Server) handleHorcruxView(w http.ResponseWriter, r *http.Request) {
	templ.Handler(web.HorcruxView()).ServeHTTP(w, r)
}

func (s *Server) handleSocksView(w http.ResponseWriter, r *http.Request) {
	templ.Handler(web.SocksView()).ServeHTTP(w, r)
}

func (s *Server) handleAdminView(w http.ResponseWriter, r *http.Request) {
	templ.Handler(web.AdminView()).ServeHTTP(w, r)
}
