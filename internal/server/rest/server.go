// Package rest exposes the authentication flows over a JSON HTTP surface.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/jaehyuk-choi/portfolio-auth/internal/logging"
	"github.com/jaehyuk-choi/portfolio-auth/internal/server/services"
)

type Server struct {
	address   string
	users     *services.UserService
	logger    logging.Logger
	jwtSecret []byte
}

func NewServer(addr string, l logging.Logger, us *services.UserService, secretKey string) *Server {
	return &Server{
		address:   addr,
		logger:    l.With("module", "rest_server"),
		users:     us,
		jwtSecret: []byte(secretKey),
	}
}

// Router builds the gin engine with all routes and middleware attached.
// Exposed separately from Run so tests can drive it through httptest.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())

	auth := r.Group("/auth")
	{
		auth.POST("/register", s.handleRegister)
		auth.POST("/login", s.handleLogin)
		auth.GET("/profile", s.requireAuth(), s.handleProfile)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "페이지를 찾을 수 없습니다."})
	})

	return r
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
