package esign_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-loandocs/pkg/esign"
	"github.com/goliatone/go-loandocs/pkg/templates"
)

func newService(t *testing.T, options ...esign.ServiceOption) *esign.Service {
	t.Helper()
	return esign.NewService(templates.NewCatalog(), options...)
}

func allFieldValues(t *testing.T, templateID string) map[string]string {
	t.Helper()
	tpl, err := templates.NewCatalog().Get(templateID)
	require.NoError(t, err)

	values := make(map[string]string, len(tpl.SignatureFields))
	for _, field := range tpl.SignatureFields {
		values[field.ID] = "captured"
	}
	return values
}

func TestCreateRequestFreezesContent(t *testing.T) {
	service := newService(t)

	doc, err := service.CreateRequest("credit_authorization", "session-1", map[string]string{
		"borrowerName": "Jane Doe",
	})
	require.NoError(t, err)

	assert.Equal(t, esign.StatusPending, doc.Status)
	assert.NotEmpty(t, doc.ID)
	assert.Contains(t, doc.Content, "Jane Doe")
	assert.Contains(t, doc.Content, "{{brokerName}}", "unbound placeholders stay visible for review")
	assert.True(t, doc.ExpiresAt.After(doc.CreatedAt))
}

func TestCreateRequestUnknownTemplate(t *testing.T) {
	service := newService(t)
	_, err := service.CreateRequest("nonexistent_id", "", nil)
	assert.ErrorIs(t, err, templates.ErrNotFound)
}

func TestCreateRequestRejectsUnsignableTemplate(t *testing.T) {
	service := newService(t)
	_, err := service.CreateRequest("dscr_loan_guide", "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not require signatures")
}

func TestSignHappyPath(t *testing.T) {
	service := newService(t)

	doc, err := service.CreateRequest("credit_authorization", "session-1", nil)
	require.NoError(t, err)

	signer := esign.Signer{Name: "Jane Doe", Email: "jane@example.com", Address: "203.0.113.7:1234"}
	signed, err := service.Sign(doc.ID, signer, allFieldValues(t, "credit_authorization"))
	require.NoError(t, err)

	assert.Equal(t, esign.StatusSigned, signed.Status)
	assert.Equal(t, signer, signed.Signer)
	assert.False(t, signed.SignedAt.IsZero())
}

func TestSignRequiresAllRequiredFields(t *testing.T) {
	service := newService(t)

	doc, err := service.CreateRequest("credit_authorization", "", nil)
	require.NoError(t, err)

	_, err = service.Sign(doc.ID, esign.Signer{Name: "Jane"}, map[string]string{
		"borrower_signature": "Jane Doe",
		// borrower_sign_date left empty
	})
	assert.ErrorIs(t, err, esign.ErrMissingFields)

	current, err := service.Get(doc.ID)
	require.NoError(t, err)
	assert.Equal(t, esign.StatusPending, current.Status, "failed capture must leave the document pending")
}

func TestSignRequiresSignerIdentity(t *testing.T) {
	service := newService(t)

	doc, err := service.CreateRequest("credit_authorization", "", nil)
	require.NoError(t, err)

	_, err = service.Sign(doc.ID, esign.Signer{}, allFieldValues(t, "credit_authorization"))
	assert.ErrorIs(t, err, esign.ErrMissingSigner)
}

func TestSignedDocumentIsImmutable(t *testing.T) {
	service := newService(t)

	doc, err := service.CreateRequest("credit_authorization", "", nil)
	require.NoError(t, err)

	values := allFieldValues(t, "credit_authorization")
	_, err = service.Sign(doc.ID, esign.Signer{Name: "Jane"}, values)
	require.NoError(t, err)

	_, err = service.Sign(doc.ID, esign.Signer{Name: "Mallory"}, values)
	assert.ErrorIs(t, err, esign.ErrInvalidTransition)

	_, err = service.Expire(doc.ID)
	assert.ErrorIs(t, err, esign.ErrInvalidTransition)
}

func TestExpireIsTerminalAndIdempotent(t *testing.T) {
	service := newService(t)

	doc, err := service.CreateRequest("credit_authorization", "", nil)
	require.NoError(t, err)

	expired, err := service.Expire(doc.ID)
	require.NoError(t, err)
	assert.Equal(t, esign.StatusExpired, expired.Status)

	again, err := service.Expire(doc.ID)
	require.NoError(t, err)
	assert.Equal(t, esign.StatusExpired, again.Status)

	_, err = service.Sign(doc.ID, esign.Signer{Name: "Jane"}, allFieldValues(t, "credit_authorization"))
	assert.ErrorIs(t, err, esign.ErrInvalidTransition)
}

func TestExpireOverdue(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	service := newService(t, esign.WithExpiry(time.Hour), esign.WithClock(clock))

	doc, err := service.CreateRequest("credit_authorization", "", nil)
	require.NoError(t, err)

	assert.Equal(t, 0, service.ExpireOverdue(), "nothing is overdue yet")

	now = now.Add(2 * time.Hour)
	assert.Equal(t, 1, service.ExpireOverdue())

	current, err := service.Get(doc.ID)
	require.NoError(t, err)
	assert.Equal(t, esign.StatusExpired, current.Status)
}

func TestTokenRoundTrip(t *testing.T) {
	issuer, err := esign.NewTokenIssuer([]byte("secret"), "loandocs-test", time.Hour)
	require.NoError(t, err)

	doc := esign.SignedDocument{ID: "doc-1", TemplateID: "credit_authorization", SessionID: "session-1"}
	token, err := issuer.Issue(doc)
	require.NoError(t, err)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "doc-1", claims.DocumentID)
	assert.Equal(t, "credit_authorization", claims.TemplateID)
	assert.Equal(t, "session-1", claims.SessionID)
}

func TestTokenRejectsTampering(t *testing.T) {
	issuer, err := esign.NewTokenIssuer([]byte("secret"), "loandocs-test", time.Hour)
	require.NoError(t, err)

	token, err := issuer.Issue(esign.SignedDocument{ID: "doc-1"})
	require.NoError(t, err)

	_, err = issuer.Verify(token + "x")
	assert.ErrorIs(t, err, esign.ErrInvalidToken)

	other, err := esign.NewTokenIssuer([]byte("different"), "loandocs-test", time.Hour)
	require.NoError(t, err)
	_, err = other.Verify(token)
	assert.ErrorIs(t, err, esign.ErrInvalidToken)
}

func TestTokenIssuerRequiresSecret(t *testing.T) {
	_, err := esign.NewTokenIssuer(nil, "x", time.Hour)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "secret"))
}
