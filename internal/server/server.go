// Package server exposes the multipliers over HTTP.
//
// Routes:
//   - GET /multiply?a=..&b=..&algo=..  multiply two decimal operands
//   - GET /algorithms                  list the registered multipliers
//   - GET /health                      liveness probe
//   - GET /metrics                     Prometheus metrics
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/agbru/fftmul/internal/config"
	apperrors "github.com/agbru/fftmul/internal/errors"
	"github.com/agbru/fftmul/internal/format"
	"github.com/agbru/fftmul/internal/logging"
	"github.com/agbru/fftmul/internal/multiply"
	"github.com/agbru/fftmul/internal/service"
)

const (
	// DefaultRequestTimeout bounds a /multiply request when the
	// configuration sets no timeout.
	DefaultRequestTimeout = 5 * time.Minute
	// ShutdownTimeout bounds the graceful shutdown.
	ShutdownTimeout = 10 * time.Second

	readHeaderTimeout = 10 * time.Second
	idleTimeout       = 2 * time.Minute
	// headerSlack is added to the operand budget for the rest of the
	// request line and headers.
	headerSlack = 64 << 10
)

// Server is the HTTP front end of the multiplier registry.
type Server struct {
	httpServer     *http.Server
	service        service.Service
	logger         logging.Logger
	metrics        *Metrics
	rateLimiter    *RateLimiter
	securityConfig SecurityConfig
	defaultAlgo    string
	requestTimeout time.Duration
	shutdownSignal chan os.Signal
}

// Option configures a Server.
type Option func(*Server)

// WithService replaces the service built from the factory.
func WithService(svc service.Service) Option {
	return func(s *Server) { s.service = svc }
}

// WithLogger sets the request logger.
func WithLogger(logger logging.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// NewServer builds a server listening on cfg.Port. Requests are served by a
// MultiplyService over factory unless WithService is given.
//
// Parameters:
//   - factory: The multiplier registry.
//   - cfg: The application configuration (port, timeout, limits, algorithm).
//   - opts: Functional options.
//
// Returns:
//   - *Server: The configured server, not yet listening.
func NewServer(factory multiply.MultiplierFactory, cfg config.AppConfig, opts ...Option) *Server {
	s := &Server{
		logger:         logging.NewLogger(os.Stderr, "server"),
		metrics:        NewMetrics(),
		securityConfig: DefaultSecurityConfig(),
		defaultAlgo:    cfg.Algo,
		requestTimeout: cfg.Timeout,
		shutdownSignal: make(chan os.Signal, 1),
	}
	if cfg.MaxDigits > 0 {
		s.securityConfig.MaxDigits = cfg.MaxDigits
	}
	if s.defaultAlgo == "" || s.defaultAlgo == config.AllAlgorithms {
		s.defaultAlgo = multiply.NameFFTIterative
	}
	if s.requestTimeout <= 0 {
		s.requestTimeout = DefaultRequestTimeout
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rateLimiter == nil {
		s.rateLimiter = NewRateLimiter(DefaultRateLimiterConfig())
	}
	if s.service == nil {
		s.service = service.NewMultiplyService(factory, cfg, s.securityConfig.MaxDigits)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/multiply", s.chain(s.handleMultiply))
	mux.HandleFunc("/algorithms", s.chain(s.handleAlgorithms))
	mux.HandleFunc("/health", s.chain(s.handleHealth))
	mux.HandleFunc("/metrics", s.chain(s.handleMetrics))

	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      s.requestTimeout + readHeaderTimeout,
		IdleTimeout:       idleTimeout,
		MaxHeaderBytes:    s.securityConfig.MaxDigits + headerSlack,
	}
	return s
}

// Handler returns the routed handler, for embedding in tests or another
// server.
func (s *Server) Handler() http.Handler { return s.httpServer.Handler }

// Start listens until SIGINT or SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	signal.Notify(s.shutdownSignal, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(s.shutdownSignal)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", logging.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		s.rateLimiter.Stop()
		if ok {
			return apperrors.NewServerError("failed to listen", err)
		}
		return nil
	case sig := <-s.shutdownSignal:
		s.logger.Info("shutting down", logging.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.Shutdown(ctx)
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	defer s.rateLimiter.Stop()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return apperrors.NewServerError("graceful shutdown failed", err)
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Handlers
// ─────────────────────────────────────────────────────────────────────────────

func (s *Server) handleMultiply(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "only GET is supported")
		return
	}

	a, b, algo, err := s.parseMultiplyRequest(r)
	if err != nil {
		var re requestError
		if errors.As(err, &re) {
			s.writeErrorResponse(w, re.StatusCode, re.Message)
			return
		}
		s.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()

	start := time.Now()
	product, err := s.service.Multiply(ctx, algo, a, b)
	duration := time.Since(start)
	if err != nil {
		s.logger.Error("multiplication failed", err,
			logging.String("algo", algo), logging.Int("digits", len(a)+len(b)))
		s.writeErrorResponse(w, statusForError(err), err.Error())
		return
	}

	s.writeJSONResponse(w, http.StatusOK, MultiplyResponse{
		Algorithm:     algo,
		DigitsA:       len(a),
		DigitsB:       len(b),
		Product:       product,
		ProductDigits: len(product),
		Duration:      format.FormatExecutionDuration(duration),
	})
}

func (s *Server) parseMultiplyRequest(r *http.Request) (a, b, algo string, err error) {
	q := r.URL.Query()
	a, b = q.Get("a"), q.Get("b")
	if a == "" || b == "" {
		return "", "", "", requestError{Message: "parameters 'a' and 'b' are required", StatusCode: http.StatusBadRequest}
	}
	if total := len(a) + len(b); s.securityConfig.MaxDigits > 0 && total > s.securityConfig.MaxDigits {
		return "", "", "", requestError{
			Message:    multiply.ErrOperandTooLarge.Error(),
			StatusCode: http.StatusBadRequest,
		}
	}
	algo = q.Get("algo")
	if algo == "" {
		algo = s.defaultAlgo
	}
	return a, b, algo, nil
}

// statusForError maps a service error to an HTTP status code.
func statusForError(err error) int {
	var verr apperrors.ValidationError
	switch {
	case errors.As(err, &verr),
		errors.Is(err, multiply.ErrOperandTooLarge),
		errors.Is(err, service.ErrUnknownAlgorithm):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "only GET is supported")
		return
	}
	s.writeJSONResponse(w, http.StatusOK, AlgorithmsResponse{
		Algorithms: s.service.Algorithms(),
		Default:    s.defaultAlgo,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSONResponse(w, http.StatusOK, HealthResponse{Status: "healthy", Timestamp: time.Now().Unix()})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "only GET is supported")
		return
	}
	s.metrics.WritePrometheus(w, r)
}

// ─────────────────────────────────────────────────────────────────────────────
// Response helpers
// ─────────────────────────────────────────────────────────────────────────────

func (s *Server) writeJSONResponse(w http.ResponseWriter, status int, data any) {
	body, err := json.Marshal(data)
	if err != nil {
		s.logger.Error("failed to encode response", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Internal Server Error"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func (s *Server) writeErrorResponse(w http.ResponseWriter, status int, message string) {
	s.writeJSONResponse(w, status, ErrorResponse{Error: http.StatusText(status), Message: message})
}
