package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"tello-block-adapter/internal/domain/model"
	"tello-block-adapter/internal/domain/service"
	"tello-block-adapter/internal/ports"
)

const (
	requestIDHeader = "X-Request-ID"
	maxBodyBytes    = 1 << 16
	shutdownTimeout = 5 * time.Second
)

type Option func(*Server)

// WithStatus exposes link status at /api/status.
func WithStatus(status func() interface{}) Option {
	return func(s *Server) { s.status = status }
}

// WithMetrics mounts a metrics handler at /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) { s.metrics = h }
}

type Server struct {
	blocks  ports.BlockPort
	log     logrus.FieldLogger
	status  func() interface{}
	metrics http.Handler
}

func NewServer(blocks ports.BlockPort, log logrus.FieldLogger, opts ...Option) *Server {
	s := &Server{blocks: blocks, log: log}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler()}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID)

	r.Route("/api", func(r chi.Router) {
		r.Get("/extension", s.handleExtension)
		r.Get("/blocks", s.handleBlocks)
		r.Post("/blocks/{opcode}", s.handleDispatch)
		r.Get("/reporters", s.handleSnapshot)
		r.Get("/reporters/{opcode}", s.handleQuery)
		if s.status != nil {
			r.Get("/status", s.handleStatus)
		}
	})
	r.Get("/admin/config", s.handleGetConfig)
	r.Post("/admin/config", s.handleUpdateConfig)
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics)
	}
	return r
}

func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleExtension(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.blocks.GetInfo(r.Context(), r.URL.Query().Get("locale")))
}

func (s *Server) handleBlocks(w http.ResponseWriter, r *http.Request) {
	info := s.blocks.GetInfo(r.Context(), r.URL.Query().Get("locale"))
	writeJSON(w, http.StatusOK, info.Blocks)
}

func (s *Server) handleDispatch(w http.ResponseWriter, r *http.Request) {
	op := model.Opcode(chi.URLParam(r, "opcode"))

	var args map[string]interface{}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if len(strings.TrimSpace(string(body))) > 0 {
		if err := json.Unmarshal(body, &args); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	if err := s.blocks.Dispatch(r.Context(), op, args); err != nil {
		s.log.WithError(err).WithField("opcode", op).Warn("dispatch rejected")
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]interface{}{"status": "sent", "opcode": op})
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	op := model.Opcode(chi.URLParam(r, "opcode"))
	v, err := s.blocks.Query(r.Context(), op)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"opcode": op, "value": v})
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.blocks.Snapshot(r.Context()))
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.status())
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := s.blocks.GetConfig(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, cfg)
}

// handleUpdateConfig applies the posted fields over the current configuration.
func (s *Server) handleUpdateConfig(w http.ResponseWriter, r *http.Request) {
	current, err := s.blocks.GetConfig(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	cfg := *current

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.blocks.UpdateConfig(r.Context(), &cfg); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrUnknownOpcode):
		return http.StatusNotFound
	case errors.Is(err, service.ErrNotCommand), errors.Is(err, service.ErrNotReporter):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
