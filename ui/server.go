package ui

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Server exposes a session over HTTP so a running game can be watched
// and steered from elsewhere
type Server struct {
	session *Session
	keys    map[string]string
	server  *http.Server
}

func NewServer(session *Session, port int, keys map[string]string) *Server {
	s := &Server{
		session: session,
		keys:    keys,
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.GET("/state", s.handleState)
	r.POST("/action", s.handleAction)
	r.POST("/mode", s.handleMode)
	r.POST("/step", s.handleStep)
	s.server = &http.Server{
		Addr:    fmt.Sprintf("localhost:%d", port),
		Handler: r,
	}

	return s
}

func (s *Server) handleState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"board":    s.session.Render(),
		"score":    s.session.Score(),
		"mode":     s.session.Mode().String(),
		"steps":    s.session.Steps(),
		"terminal": s.session.Terminal(),
		"actions":  s.session.ActionHashes(),
	})
}

type actionRequest struct {
	Action string `json:"action"`
}

func (s *Server) handleAction(c *gin.Context) {
	req := &actionRequest{}
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	actionHash, ok := s.keys[req.Action]
	if !ok {
		actionHash = req.Action
	}
	if err := s.session.HumanAct(actionHash); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"score": s.session.Score(), "terminal": s.session.Terminal()})
}

func (s *Server) handleMode(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"mode": s.session.ToggleMode().String()})
}

func (s *Server) handleStep(c *gin.Context) {
	moved, err := s.session.AgentAct()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"moved": moved, "score": s.session.Score(), "terminal": s.session.Terminal()})
}

// Start serves until the context is cancelled
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}
