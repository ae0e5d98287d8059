package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"solana-instruction-api/internal/domain"
)

const internalErrorMessage = "Internal server error"

// unknownKind labels rejections whose kind is not in the taxonomy.
const unknownKind = "UNKNOWN"

type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// decode reads a JSON body of at most MaxBodyBytes into dst. Unknown fields
// are ignored. Any failure is reported as an invalid request.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return domain.InvalidRequest(err)
	}
	return nil
}

// writeError maps err onto the failure envelope. Rejections answer 400, or
// 200 in legacy mode; anything else is an internal failure and is not exposed.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	route := routePattern(r)

	if derr, ok := domain.AsError(err); ok {
		kind := derr.Kind.String()
		if !derr.Kind.IsValid() {
			kind = unknownKind
		}
		s.metrics.RecordRejection(route, kind)

		ev, msg := s.logger.Debug(), "Request rejected"
		switch {
		case errors.Is(derr, domain.ErrBuild):
			// validated input the encoder still refused
			ev, msg = s.logger.Warn(), "Instruction encoding failed"
		case errors.Is(derr, domain.ErrInvalidRequest):
			msg = "Request body rejected"
		}
		ev.Str("request_id", RequestIDFrom(r.Context())).
			Str("route", route).
			Str("kind", kind).
			Str("field", derr.Field).
			Err(derr.Err).
			Msg(msg)

		status := http.StatusBadRequest
		if s.cfg.LegacyErrorStatus {
			status = http.StatusOK
		}
		s.writeJSON(w, status, envelope{Success: false, Error: derr.Message})
		return
	}

	s.logger.Error().
		Str("request_id", RequestIDFrom(r.Context())).
		Str("route", route).
		Err(err).
		Msg("Request failed")
	s.writeJSON(w, http.StatusInternalServerError, envelope{Success: false, Error: internalErrorMessage})
}

func (s *Server) writeData(w http.ResponseWriter, data any) {
	s.writeJSON(w, http.StatusOK, envelope{Success: true, Data: data})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Debug().Err(err).Msg("Write response failed")
	}
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
