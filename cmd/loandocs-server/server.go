package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/goliatone/go-loandocs/components/intake"
	"github.com/goliatone/go-loandocs/pkg/docgen"
	"github.com/goliatone/go-loandocs/pkg/esign"
	"github.com/goliatone/go-loandocs/pkg/templates"
)

// serverState bundles the collaborators the HTTP handlers need.
type serverState struct {
	logger   *zap.Logger
	catalog  *templates.Catalog
	signing  *esign.Service
	tokens   *esign.TokenIssuer
	composer *docgen.Composer
}

// Server wraps http.Server with config-aware startup and shutdown.
type Server struct {
	server *http.Server
	logger *zap.Logger
}

// NewServer builds the router: the intake component under /api/intake and the
// e-signature endpoints owned by this binary.
func NewServer(cfg Config, state *serverState, component *intake.Component) *Server {
	router := mux.NewRouter()

	intakeMux := http.NewServeMux()
	_ = component.RegisterRoutes(intakeMux, "")
	router.PathPrefix("/api/intake/").Handler(http.StripPrefix("/api/intake", intakeMux))

	router.HandleFunc("/api/esign/requests", state.createSigningRequest).Methods(http.MethodPost)
	router.HandleFunc("/api/esign/documents/{id}", state.getSignedDocument).Methods(http.MethodGet)
	router.HandleFunc("/api/esign/documents/{id}/expire", state.expireDocument).Methods(http.MethodPost)
	router.HandleFunc("/sign/{token}", state.signingPage).Methods(http.MethodGet)
	router.HandleFunc("/sign/{token}", state.captureSignature).Methods(http.MethodPost)
	router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	router.Use(state.requestLogging)

	return &Server{
		server: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: state.logger,
	}
}

// ListenAndServe runs the server until it fails or Stop is called.
func (s *Server) ListenAndServe() error {
	s.logger.Info("starting server", zap.String("addr", s.server.Addr))
	return s.server.ListenAndServe()
}

// Stop shuts the server down, draining in-flight requests briefly.
func (s *Server) Stop() error {
	s.logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *serverState) requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("elapsed", time.Since(started)))
	})
}

type signingRequestBody struct {
	TemplateID string            `json:"templateId"`
	SessionID  string            `json:"sessionId,omitempty"`
	Variables  map[string]string `json:"variables"`
}

type signingRequestResponse struct {
	DocumentID string `json:"documentId"`
	Status     string `json:"status"`
	SigningURL string `json:"signingUrl"`
	ExpiresAt  string `json:"expiresAt"`
}

func (s *serverState) createSigningRequest(w http.ResponseWriter, r *http.Request) {
	var body signingRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	defer r.Body.Close()

	doc, err := s.signing.CreateRequest(body.TemplateID, body.SessionID, body.Variables)
	if err != nil {
		if errors.Is(err, templates.ErrNotFound) {
			httpError(w, http.StatusNotFound, "template not found")
			return
		}
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}

	token, err := s.tokens.Issue(doc)
	if err != nil {
		s.logger.Error("issue signing token", zap.Error(err))
		httpError(w, http.StatusInternalServerError, "failed to issue signing token")
		return
	}

	writeJSON(w, http.StatusCreated, signingRequestResponse{
		DocumentID: doc.ID,
		Status:     string(doc.Status),
		SigningURL: "/sign/" + token,
		ExpiresAt:  doc.ExpiresAt.Format(time.RFC3339),
	})
}

func (s *serverState) getSignedDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.signing.Get(mux.Vars(r)["id"])
	if err != nil {
		httpError(w, http.StatusNotFound, "document not found")
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *serverState) expireDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.signing.Expire(mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, esign.ErrDocumentNotFound) {
			httpError(w, http.StatusNotFound, "document not found")
			return
		}
		httpError(w, http.StatusConflict, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *serverState) signingPage(w http.ResponseWriter, r *http.Request) {
	rawToken := mux.Vars(r)["token"]
	claims, err := s.tokens.Verify(rawToken)
	if err != nil {
		httpError(w, http.StatusForbidden, "invalid signing link")
		return
	}

	doc, err := s.signing.Get(claims.DocumentID)
	if err != nil {
		httpError(w, http.StatusNotFound, "document not found")
		return
	}
	if doc.Status != esign.StatusPending {
		httpError(w, http.StatusConflict, fmt.Sprintf("document is %s", doc.Status))
		return
	}

	tpl, err := s.catalog.Get(doc.TemplateID)
	if err != nil {
		httpError(w, http.StatusInternalServerError, "template no longer available")
		return
	}

	page, err := s.composer.SigningPage(docgen.Page{
		Title:     tpl.Name,
		Document:  doc.Content,
		Fields:    tpl.SignatureFields,
		SubmitURL: "/sign/" + rawToken,
		Token:     rawToken,
	})
	if err != nil {
		s.logger.Error("render signing page", zap.Error(err))
		httpError(w, http.StatusInternalServerError, "failed to render signing page")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(page))
}

func (s *serverState) captureSignature(w http.ResponseWriter, r *http.Request) {
	claims, err := s.tokens.Verify(mux.Vars(r)["token"])
	if err != nil {
		httpError(w, http.StatusForbidden, "invalid signing link")
		return
	}

	if err := r.ParseForm(); err != nil {
		httpError(w, http.StatusBadRequest, "invalid form submission")
		return
	}

	fieldValues := make(map[string]string, len(r.PostForm))
	for key := range r.PostForm {
		if key == "token" || key == "signerName" || key == "signerEmail" {
			continue
		}
		fieldValues[key] = r.PostForm.Get(key)
	}

	signer := esign.Signer{
		Name:    r.PostForm.Get("signerName"),
		Email:   r.PostForm.Get("signerEmail"),
		Address: r.RemoteAddr,
	}
	if signer.Name == "" {
		// Fall back to the captured signature text as the signer name.
		signer.Name = fieldValues["borrower_signature"]
	}

	doc, err := s.signing.Sign(claims.DocumentID, signer, fieldValues)
	if err != nil {
		switch {
		case errors.Is(err, esign.ErrDocumentNotFound):
			httpError(w, http.StatusNotFound, "document not found")
		case errors.Is(err, esign.ErrInvalidTransition):
			httpError(w, http.StatusConflict, err.Error())
		default:
			httpError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	s.logger.Info("document signed",
		zap.String("documentId", doc.ID),
		zap.String("templateId", doc.TemplateID))
	writeJSON(w, http.StatusOK, doc)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func httpError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
