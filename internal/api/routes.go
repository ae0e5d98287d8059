package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"solana-instruction-api/internal/handler"
	"solana-instruction-api/internal/instruction"
	"solana-instruction-api/internal/observability"
)

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(s.requestID)
	r.Use(s.accessLog)
	r.Use(s.instrument)
	r.Use(s.recoverer)
	r.Use(middleware.CleanPath)
	if len(s.cfg.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.cfg.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", requestIDHeader},
			ExposedHeaders: []string{requestIDHeader},
			MaxAge:         300,
		}))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Post("/keypair", s.handleKeypair)
	r.Post("/token/create", handle(s, s.handlers.CreateToken,
		built[handler.InstructionResponse](s.metrics, instruction.KindInitializeMint)))
	r.Post("/token/mint", handle(s, s.handlers.MintToken,
		built[handler.InstructionResponse](s.metrics, instruction.KindMintTo)))
	r.Post("/send/token", handle(s, s.handlers.SendToken,
		built[handler.TokenTransferResponse](s.metrics, instruction.KindTransferToken)))
	r.Post("/send/sol", handle(s, s.handlers.SendSol,
		built[handler.SolTransferResponse](s.metrics, instruction.KindTransferNative)))
	r.Post("/message/sign", handle(s, s.handlers.SignMessage,
		func(*handler.SignMessageResponse) { s.metrics.RecordSignature() }))
	r.Post("/message/verify", handle(s, s.handlers.VerifyMessage,
		func(resp *handler.VerifyMessageResponse) { s.metrics.RecordVerification(resp.Valid) }))

	return r
}

func (s *Server) handleKeypair(w http.ResponseWriter, r *http.Request) {
	resp, err := s.handlers.GenerateKeypair()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.metrics.RecordKeypair()
	s.writeData(w, resp)
}

// handle decodes the request body into Req, runs fn and writes the envelope.
// onSuccess runs only when fn produced a payload.
func handle[Req, Resp any](s *Server, fn func(*Req) (*Resp, error), onSuccess func(*Resp)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Req
		if err := s.decode(w, r, &req); err != nil {
			s.writeError(w, r, err)
			return
		}
		resp, err := fn(&req)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		if onSuccess != nil {
			onSuccess(resp)
		}
		s.writeData(w, resp)
	}
}

func built[T any](m *observability.Metrics, kind instruction.Kind) func(*T) {
	return func(*T) { m.RecordInstruction(string(kind)) }
}
