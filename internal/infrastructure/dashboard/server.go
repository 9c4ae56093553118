// Package dashboard serves the computed curve and last report over HTTP
// for consumption by a rendering layer.
package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/elmaestro544/sgroadmap-sub001/internal/domain/curve"
	"github.com/elmaestro544/sgroadmap-sub001/internal/domain/report"
)

// CurveProvider supplies curve data for the API. Satisfied by
// application.CurveService.
type CurveProvider interface {
	Series() (curve.Series, error)
	Resampled(scale curve.Scale) ([]curve.ResampledPoint, error)
}

// ReportLoader loads the last generated report, if any. Satisfied by
// storage.FilesystemRepository.
type ReportLoader interface {
	LoadReport() (*report.Report, error)
}

// Server is the dashboard HTTP server. It recomputes on every request;
// the only server-local state is the set of websocket subscribers.
type Server struct {
	addr     string
	provider CurveProvider
	reports  ReportLoader
	server   *http.Server
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]*wsClient
}

// wsClient serializes writes to one websocket connection. The handler's
// initial push and Broadcast run on different goroutines, and a gorilla
// Conn supports only one concurrent writer.
type wsClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *wsClient) send(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

// NewServer creates a new dashboard server.
func NewServer(addr string, provider CurveProvider, reports ReportLoader) *Server {
	return &Server{
		addr:     addr,
		provider: provider,
		reports:  reports,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		clients: map[*websocket.Conn]*wsClient{},
	}
}

// Handler returns the route mux, exposed for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/series", s.handleSeries)
	mux.HandleFunc("GET /api/curve", s.handleCurve)
	mux.HandleFunc("GET /api/report", s.handleReport)
	mux.HandleFunc("GET /ws", s.handleWS)
	return mux
}

// Start starts the dashboard server and blocks.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	log.Printf("Dashboard server starting on %s", s.addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) handleSeries(w http.ResponseWriter, r *http.Request) {
	series, err := s.provider.Series()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, series)
}

func (s *Server) handleCurve(w http.ResponseWriter, r *http.Request) {
	scale, err := curve.ParseScale(r.URL.Query().Get("scale"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	points, err := s.provider.Resampled(scale)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, map[string]interface{}{
		"scale":  scale,
		"points": points,
	})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	rep, err := s.reports.LoadReport()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if rep == nil {
		writeError(w, http.StatusNotFound, fmt.Errorf("no report generated yet"))
		return
	}
	writeJSON(w, rep)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	client := &wsClient{conn: conn}
	s.mu.Lock()
	s.clients[conn] = client
	s.mu.Unlock()

	// Push the current series immediately so new subscribers render. A
	// concurrent Broadcast queues behind the client's write lock.
	if series, err := s.provider.Series(); err == nil {
		_ = client.send(series)
	}

	// Drain reads until the peer closes, then drop the subscription.
	go func() {
		defer s.dropClient(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Broadcast pushes a freshly computed series to every websocket
// subscriber. Called by the schedule watcher on file changes.
func (s *Server) Broadcast(series curve.Series) {
	s.mu.Lock()
	clients := make([]*wsClient, 0, len(s.clients))
	for _, c := range s.clients {
		clients = append(clients, c)
	}
	s.mu.Unlock()

	for _, c := range clients {
		if err := c.send(series); err != nil {
			s.dropClient(c.conn)
		}
	}
}

func (s *Server) dropClient(conn *websocket.Conn) {
	s.mu.Lock()
	if _, ok := s.clients[conn]; ok {
		delete(s.clients, conn)
		_ = conn.Close()
	}
	s.mu.Unlock()
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
