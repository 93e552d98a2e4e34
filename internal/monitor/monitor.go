// Package monitor exposes an optional HTTP status endpoint for a
// long-running search (spec.md §6). It is deliberately thin: a single
// /status route reporting the current generation/iteration count and
// archive size, built the same way the teacher wires its health-check
// route (gin.New, Recovery middleware, one JSON handler) — not the
// interactive visualization the spec excludes.
package monitor

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Status is the current progress snapshot served at GET /status.
type Status struct {
	Engine      string    `json:"engine"`
	Iteration   int       `json:"iteration"`
	ArchiveSize int       `json:"archive_size"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Server serves a single, mutex-guarded Status snapshot over HTTP.
type Server struct {
	mu     sync.RWMutex
	status Status
	srv    *http.Server
}

// New builds a monitor server bound to addr (e.g. ":8090"). Call Start to
// begin serving and Shutdown to stop.
func New(addr, engine string) *Server {
	s := &Server{status: Status{Engine: engine}}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/status", s.handleStatus)

	s.srv = &http.Server{Addr: addr, Handler: router}
	return s
}

func (s *Server) handleStatus(c *gin.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c.JSON(http.StatusOK, s.status)
}

// Update records new progress, visible to the next /status request.
func (s *Server) Update(iteration, archiveSize int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status.Iteration = iteration
	s.status.ArchiveSize = archiveSize
	s.status.UpdatedAt = time.Now().UTC()
}

// Start runs the HTTP server in the background. ListenAndServe errors
// other than http.ErrServerClosed are sent to errc.
func (s *Server) Start(errc chan<- error) {
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
	}()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
