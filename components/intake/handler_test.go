package intake_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goliatone/go-loandocs/components/intake"
	"github.com/goliatone/go-loandocs/pkg/formspec"
)

func newTestMux(t *testing.T, fns ...intake.OptionFn) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	if err := intake.RegisterRoutes(mux, "/api/intake", fns...); err != nil {
		t.Fatalf("RegisterRoutes() error = %v", err)
	}
	return mux
}

func doJSON(t *testing.T, mux *http.ServeMux, method, target, sessionID, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if sessionID != "" {
		req.Header.Set("X-Session-ID", sessionID)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("response body is not valid JSON: %v\n%s", err, rec.Body.String())
	}
}

func TestSubmitThenPrefillAcrossForms(t *testing.T) {
	mux := newTestMux(t)

	payload := `{
		"borrowerName": "John Smith",
		"propertyAddress": "123 Main St, Austin, TX 78701",
		"loanAmount": "500000"
	}`
	rec := doJSON(t, mux, http.MethodPost, "/api/intake/forms/shortApplication", "session-1", payload)
	if rec.Code != http.StatusOK {
		t.Fatalf("submit status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var submitted struct {
		SessionID    string `json:"sessionId"`
		FormType     string `json:"formType"`
		Completeness int    `json:"completeness"`
	}
	decodeBody(t, rec, &submitted)
	if submitted.SessionID != "session-1" || submitted.FormType != "shortApplication" {
		t.Errorf("unexpected submit response: %+v", submitted)
	}
	if submitted.Completeness <= 0 {
		t.Errorf("completeness = %d, want > 0 after a submit", submitted.Completeness)
	}

	rec = doJSON(t, mux, http.MethodGet, "/api/intake/forms/urla/prefill", "session-1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("prefill status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var prefilled struct {
		FormType string            `json:"formType"`
		Data     map[string]string `json:"data"`
	}
	decodeBody(t, rec, &prefilled)
	if prefilled.Data["firstName"] != "John" || prefilled.Data["lastName"] != "Smith" {
		t.Errorf("name split not carried into urla prefill: %+v", prefilled.Data)
	}
	if prefilled.Data["city"] != "" {
		t.Errorf("borrower city should stay empty, got %q", prefilled.Data["city"])
	}
	if prefilled.Data["propertyCity"] != "Austin" {
		t.Errorf("propertyCity = %q, want Austin", prefilled.Data["propertyCity"])
	}
	if prefilled.Data["loanAmount"] != "500000" {
		t.Errorf("loanAmount = %q, want 500000", prefilled.Data["loanAmount"])
	}
}

func TestSessionHeaderRequired(t *testing.T) {
	mux := newTestMux(t)

	rec := doJSON(t, mux, http.MethodPost, "/api/intake/forms/shortApplication", "", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("submit without session header: status = %d, want 400", rec.Code)
	}

	rec = doJSON(t, mux, http.MethodGet, "/api/intake/completeness", "", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("completeness without session header: status = %d, want 400", rec.Code)
	}
}

func TestSubmitRejectsInvalidJSON(t *testing.T) {
	mux := newTestMux(t)
	rec := doJSON(t, mux, http.MethodPost, "/api/intake/forms/shortApplication", "session-1", `{"broken":`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestClearSession(t *testing.T) {
	mux := newTestMux(t)

	doJSON(t, mux, http.MethodPost, "/api/intake/forms/shortApplication", "session-1", `{"borrowerName":"John Smith"}`)

	rec := doJSON(t, mux, http.MethodDelete, "/api/intake/session", "session-1", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("clear status = %d", rec.Code)
	}

	rec = doJSON(t, mux, http.MethodGet, "/api/intake/completeness", "session-1", "")
	var completeness struct {
		Completeness int `json:"completeness"`
	}
	decodeBody(t, rec, &completeness)
	if completeness.Completeness != 0 {
		t.Errorf("completeness after clear = %d, want 0", completeness.Completeness)
	}
}

func TestFormSchemaEndpoint(t *testing.T) {
	spec, err := formspec.Load()
	if err != nil {
		t.Fatalf("formspec.Load() error = %v", err)
	}
	mux := newTestMux(t, intake.WithFormSpec(spec))

	rec := doJSON(t, mux, http.MethodGet, "/api/intake/forms/shortApplication/schema", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("schema status = %d", rec.Code)
	}
	var schema struct {
		Properties map[string]any `json:"properties"`
	}
	decodeBody(t, rec, &schema)
	if _, ok := schema.Properties["borrowerName"]; !ok {
		t.Errorf("schema missing borrowerName: %s", rec.Body.String())
	}

	rec = doJSON(t, mux, http.MethodGet, "/api/intake/forms/bogus/schema", "", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown form schema status = %d, want 404", rec.Code)
	}

	withoutSpec := newTestMux(t)
	rec = doJSON(t, withoutSpec, http.MethodGet, "/api/intake/forms/shortApplication/schema", "", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("schema without configured spec: status = %d, want 404", rec.Code)
	}
}

func TestTemplateEndpoints(t *testing.T) {
	mux := newTestMux(t)

	rec := doJSON(t, mux, http.MethodGet, "/api/intake/templates", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var listed struct {
		Data []struct {
			ID       string `json:"id"`
			Category string `json:"category"`
		} `json:"data"`
	}
	decodeBody(t, rec, &listed)
	if len(listed.Data) != 6 {
		t.Fatalf("listed %d templates, want 6", len(listed.Data))
	}

	rec = doJSON(t, mux, http.MethodGet, "/api/intake/templates?category=form", "", "")
	decodeBody(t, rec, &listed)
	if len(listed.Data) != 2 {
		t.Errorf("category=form listed %d templates, want 2", len(listed.Data))
	}

	rec = doJSON(t, mux, http.MethodGet, "/api/intake/templates/credit_authorization", "", "")
	if rec.Code != http.StatusOK {
		t.Errorf("get template status = %d", rec.Code)
	}

	rec = doJSON(t, mux, http.MethodGet, "/api/intake/templates/nonexistent", "", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown template status = %d, want 404", rec.Code)
	}
}

func TestGenerateDocumentSanitizesVariables(t *testing.T) {
	mux := newTestMux(t)

	body := `{"variables":{"borrowerName":"<script>alert(1)</script>Jane Doe","date":"2025-06-01"}}`
	rec := doJSON(t, mux, http.MethodPost, "/api/intake/templates/credit_authorization/generate", "", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("generate status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var generated struct {
		TemplateID       string   `json:"templateId"`
		Content          string   `json:"content"`
		MissingVariables []string `json:"missingVariables"`
	}
	decodeBody(t, rec, &generated)

	if strings.Contains(generated.Content, "<script>") {
		t.Errorf("script tag survived sanitization")
	}
	if !strings.Contains(generated.Content, "Jane Doe") {
		t.Errorf("sanitized value lost its text content")
	}
	if len(generated.MissingVariables) == 0 {
		t.Errorf("expected unsupplied variables to be reported")
	}
	for _, name := range generated.MissingVariables {
		if name == "borrowerName" || name == "date" {
			t.Errorf("supplied variable %q reported missing", name)
		}
	}
}

func TestGenerateUnknownTemplate(t *testing.T) {
	mux := newTestMux(t)
	rec := doJSON(t, mux, http.MethodPost, "/api/intake/templates/nonexistent/generate", "", `{"variables":{}}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestGuardRejectsRequests(t *testing.T) {
	mux := newTestMux(t, intake.WithGuard(func(r *http.Request) error {
		if r.Header.Get("X-Api-Key") != "valid" {
			return errors.New("bad key")
		}
		return nil
	}))

	rec := doJSON(t, mux, http.MethodGet, "/api/intake/templates", "", "")
	if rec.Code != http.StatusForbidden {
		t.Errorf("unguarded request status = %d, want 403", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/intake/templates", nil)
	req.Header.Set("X-Api-Key", "valid")
	out := httptest.NewRecorder()
	mux.ServeHTTP(out, req)
	if out.Code != http.StatusOK {
		t.Errorf("authorized request status = %d, want 200", out.Code)
	}
}

func TestMaxBodyBytes(t *testing.T) {
	mux := newTestMux(t, intake.WithMaxBodyBytes(16))
	rec := doJSON(t, mux, http.MethodPost, "/api/intake/forms/shortApplication", "session-1",
		`{"borrowerName":"A very long value that exceeds the configured body limit"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("oversized body status = %d, want 400", rec.Code)
	}
}
