// Package server exposes hint encoding and witness generation over HTTP.
package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/consensys/gnark/logger"
	"github.com/lido333/openvm/circuit"
	"github.com/lido333/openvm/hints"
	"github.com/lido333/openvm/ir"
	"github.com/lido333/openvm/sdk"
	"github.com/lido333/openvm/stark"
	"github.com/pkg/errors"
)

type Config struct {
	Addr            string        `yaml:"addr"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DefaultConfig listens on :3000 and accepts bodies up to 64 MiB.
func DefaultConfig() Config {
	return Config{
		Addr:            ":3000",
		MaxBodyBytes:    64 << 20,
		ShutdownTimeout: 10 * time.Second,
	}
}

type Server struct {
	cfg Config
}

func New(cfg Config) *Server {
	def := DefaultConfig()
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = def.MaxBodyBytes
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = def.ShutdownTimeout
	}
	if cfg.Addr == "" {
		cfg.Addr = def.Addr
	}
	return &Server{cfg: cfg}
}

func (s *Server) Handler() http.Handler {
	router := http.NewServeMux()
	router.HandleFunc("GET /healthz", s.healthz)
	router.HandleFunc("POST /hints/encode", s.handleEncode)
	router.HandleFunc("POST /hints/witness", s.handleWitness)
	return LoggingMiddleware(router)
}

// Start serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:        s.cfg.Addr,
		Handler:     s.Handler(),
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		log := logger.Logger()
		log.Info().Str("addr", s.cfg.Addr).Msg("starting server")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return errors.Wrap(err, "serving")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutting down")
	}
	return nil
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	ReturnJSON(w, "OK", http.StatusOK)
}

type EncodeResponse struct {
	Stream  hints.Stream `json:"stream"`
	Scalars int          `json:"scalars"`
}

// handleEncode accepts a verifier input and returns its hint stream.
func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	var vi stark.VerifierInput
	if err := s.decode(w, r, &vi); err != nil {
		ReturnErrorJSON(w, "decoding request", http.StatusBadRequest)
		return
	}
	stream, err := sdk.EncodeVerifierInput(vi)
	if err != nil {
		ReturnErrorJSON(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	ReturnJSON(w, EncodeResponse{Stream: stream, Scalars: stream.Len()}, http.StatusOK)
}

type WitnessResponse struct {
	Witness     circuit.WitnessInput `json:"witness"`
	Constraints []circuit.Constraint `json:"constraints"`
}

// handleWitness replays the verifier input reads over a hint stream and
// returns the witness and constraint trace for the gnark circuit.
func (s *Server) handleWitness(w http.ResponseWriter, r *http.Request) {
	var stream hints.Stream
	if err := s.decode(w, r, &stream); err != nil {
		ReturnErrorJSON(w, "decoding request", http.StatusBadRequest)
		return
	}
	trace, err := sdk.WitnessVerifierInput(stream)
	switch {
	case errors.Is(err, ir.ErrHintMismatch):
		ReturnErrorJSON(w, err.Error(), http.StatusUnprocessableEntity)
		return
	case err != nil:
		ReturnErrorJSON(w, err.Error(), http.StatusInternalServerError)
		return
	}
	ReturnJSON(w, WitnessResponse{Witness: trace.Witness, Constraints: trace.Constraints}, http.StatusOK)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	return json.NewDecoder(body).Decode(v)
}
