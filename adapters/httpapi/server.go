// Package httpapi exposes the palindrome search over HTTP.
//
// Routes:
//   - GET /api/httpexample?min=&max= answers with the plain text "min <value> max <value>",
//     or "Error" if the query is invalid or no palindromic product exists.
//   - GET /api/palindromes?min=&max= answers with JSON that includes the factor pairs.
//   - GET /healthz answers "ok".
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/n0rdy/palindromes/configs"
	"github.com/n0rdy/palindromes/logging"
	"github.com/n0rdy/palindromes/ratelimiter"
	"github.com/n0rdy/palindromes/search"
)

const (
	LegacyPath      = "/api/httpexample"
	PalindromesPath = "/api/palindromes"
	HealthPath      = "/healthz"

	RequestIdHeader = "X-Request-Id"

	shutdownTimeout = 10 * time.Second
)

// Server is the HTTP adapter. The number of searches running at the same time is limited by
// [configs.ServerConfig.MaxConcurrent], the requests above the limit wait until a search finishes
// or until the client goes away.
type Server struct {
	conf     configs.ServerConfig
	searcher search.Searcher
	limiter  *ratelimiter.RateLimiter
	logger   logging.Logger
	router   *gin.Engine
}

func New(conf configs.ServerConfig, searcher search.Searcher, logger logging.Logger) *Server {
	s := &Server{
		conf:     conf,
		searcher: searcher,
		limiter:  ratelimiter.NewRateLimiter(conf.MaxConcurrent),
		logger:   logging.OrNoOps(logger),
		router:   gin.New(),
	}

	s.router.Use(gin.Recovery(), s.requestId)
	s.router.GET(LegacyPath, s.legacy)
	s.router.GET(PalindromesPath, s.products)
	s.router.GET(HealthPath, s.health)

	return s
}

// Handler returns the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on the configured port until ctx is done, then shuts the server down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(s.conf.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("listening on " + srv.Addr)
		errChan <- srv.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errChan; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) requestId(c *gin.Context) {
	id := c.GetHeader(RequestIdHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Header(RequestIdHeader, id)

	started := time.Now()
	c.Next()
	s.logger.Debug("request " + id + " " + c.Request.Method + " " + c.Request.URL.Path + " -> " +
		strconv.Itoa(c.Writer.Status()) + " in " + time.Since(started).String())
}
