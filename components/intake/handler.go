package intake

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/goliatone/go-loandocs/pkg/forms"
	"github.com/goliatone/go-loandocs/pkg/templates"
)

type submitResponse struct {
	SessionID    string `json:"sessionId"`
	FormType     string `json:"formType"`
	Completeness int    `json:"completeness"`
}

type prefillResponse struct {
	FormType string            `json:"formType"`
	Data     map[string]string `json:"data"`
}

type completenessResponse struct {
	Completeness int `json:"completeness"`
}

type templatesResponse struct {
	Data []templates.Template `json:"data"`
}

type generateRequest struct {
	Variables map[string]string `json:"variables"`
}

type generateResponse struct {
	TemplateID       string   `json:"templateId"`
	Content          string   `json:"content"`
	MissingVariables []string `json:"missingVariables,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type handlers struct {
	opts Options
}

func (h handlers) submitForm(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.session(w, r)
	if !ok {
		return
	}

	var payload map[string]any
	if !h.decode(w, r, &payload) {
		return
	}

	formType := forms.FormType(r.PathValue("formType"))
	if err := h.opts.Service.StoreFormData(r.Context(), sessionID, formType, payload); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to store form data")
		return
	}

	completeness, err := h.opts.Service.Completeness(r.Context(), sessionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute completeness")
		return
	}

	writeJSON(w, http.StatusOK, submitResponse{
		SessionID:    sessionID,
		FormType:     string(formType),
		Completeness: completeness,
	})
}

func (h handlers) prefillForm(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.session(w, r)
	if !ok {
		return
	}

	formType := forms.FormType(r.PathValue("formType"))
	data, err := h.opts.Service.PreFilledData(r.Context(), sessionID, formType)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to project form data")
		return
	}

	writeJSON(w, http.StatusOK, prefillResponse{
		FormType: string(formType),
		Data:     data,
	})
}

func (h handlers) formSchema(w http.ResponseWriter, r *http.Request) {
	if h.opts.Spec == nil {
		writeError(w, http.StatusNotFound, "form schemas not configured")
		return
	}
	raw, err := h.opts.Spec.SchemaJSON(forms.FormType(r.PathValue("formType")))
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown form type")
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

func (h handlers) completeness(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.session(w, r)
	if !ok {
		return
	}

	completeness, err := h.opts.Service.Completeness(r.Context(), sessionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute completeness")
		return
	}
	writeJSON(w, http.StatusOK, completenessResponse{Completeness: completeness})
}

func (h handlers) clearSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.session(w, r)
	if !ok {
		return
	}

	if err := h.opts.Service.Clear(r.Context(), sessionID); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to clear session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h handlers) listTemplates(w http.ResponseWriter, r *http.Request) {
	var listed []templates.Template
	if category := r.URL.Query().Get("category"); category != "" {
		listed = h.opts.Catalog.ByCategory(templates.Category(category))
	} else {
		listed = h.opts.Catalog.All()
	}
	if listed == nil {
		listed = []templates.Template{}
	}
	writeJSON(w, http.StatusOK, templatesResponse{Data: listed})
}

func (h handlers) getTemplate(w http.ResponseWriter, r *http.Request) {
	tpl, err := h.opts.Catalog.Get(r.PathValue("templateID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "template not found")
		return
	}
	writeJSON(w, http.StatusOK, tpl)
}

func (h handlers) generateDocument(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if !h.decode(w, r, &req) {
		return
	}

	templateID := r.PathValue("templateID")
	tpl, err := h.opts.Catalog.Get(templateID)
	if err != nil {
		if errors.Is(err, templates.ErrNotFound) {
			writeError(w, http.StatusNotFound, "template not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load template")
		return
	}

	vars := h.sanitizeVars(req.Variables)
	writeJSON(w, http.StatusOK, generateResponse{
		TemplateID:       templateID,
		Content:          templates.Substitute(tpl.Content, vars),
		MissingVariables: templates.MissingVariables(tpl, vars),
	})
}

// sanitizeVars scrubs every incoming variable value. Values land inside legal
// HTML documents, so markup smuggled through a variable must not survive.
func (h handlers) sanitizeVars(raw map[string]string) map[string]string {
	out := make(map[string]string, len(raw))
	for key, value := range raw {
		out[key] = h.opts.Sanitizer.Sanitize(value)
	}
	return out
}

func (h handlers) session(w http.ResponseWriter, r *http.Request) (string, bool) {
	sessionID := r.Header.Get(h.opts.SessionHeader)
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "missing session id header")
		return "", false
	}
	return sessionID, true
}

func (h handlers) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	defer r.Body.Close()
	body := http.MaxBytesReader(w, r.Body, h.opts.MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

// guarded wraps a handler with the optional request guard.
func (h handlers) guarded(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.opts.Guard != nil {
			if err := h.opts.Guard(r); err != nil {
				writeError(w, http.StatusForbidden, "forbidden")
				return
			}
		}
		next(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
