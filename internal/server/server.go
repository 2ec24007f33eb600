package server

import (
	"net/http"
	"sync"

	"decision-city/internal/config"

	"gorm.io/gorm"
)

type Server struct {
	store *Store
	db    *gorm.DB
	ws    *wsHub
	cfg   config.Config

	dbMu  sync.Mutex
	dbIDs map[string]uint
}

func New(conn *gorm.DB, cfg config.Config) *Server {
	return &Server{
		store: NewStore(cfg),
		db:    conn,
		ws:    newWSHub(),
		cfg:   cfg,
		dbIDs: make(map[string]uint),
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /api/rooms", s.handleListRooms)
	mux.HandleFunc("GET /api/rooms/", s.handleRoomSubroutes)
	mux.HandleFunc("GET /api/voting/options", s.handleVoteOptions)
	mux.HandleFunc("GET /ws", s.handleWebsocket)
	return mux
}
