package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optimode/formrelay"
	"github.com/optimode/formrelay/internal/api"
	"github.com/optimode/formrelay/internal/config"
	"github.com/optimode/formrelay/internal/mailer"
)

// recordingSender captures sent messages; fails after failAfter sends
// when failAfter >= 0.
type recordingSender struct {
	sent      []mailer.Message
	failAfter int
}

func (s *recordingSender) Send(_ context.Context, msg mailer.Message) error {
	if s.failAfter >= 0 && len(s.sent) >= s.failAfter {
		return errors.New("smtp unavailable")
	}
	s.sent = append(s.sent, msg)
	return nil
}

func newTestServer(t *testing.T, sender mailer.Sender, exposeReason bool) *httptest.Server {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := api.NewHandlers(log, formrelay.New(), sender, config.MailConfig{
		AdminEmail: "owner@corp.io",
		FromEmail:  "forms@corp.io",
		FromName:   "Corp Forms",
		SiteName:   "Corp",
	}, exposeReason)

	srv := httptest.NewServer(api.NewRouter(h, log, api.RouterConfig{
		RequestsPerMinute: 600,
		Burst:             100,
	}))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) (*http.Response, map[string]any) {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func TestContact_Success(t *testing.T) {
	sender := &recordingSender{failAfter: -1}
	srv := newTestServer(t, sender, false)

	resp, body := postJSON(t, srv.URL+"/api/contact", map[string]string{
		"name":    "Jane Doe",
		"email":   "jane.doe@gmail.com",
		"message": "I'd like a quote.",
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["ok"])

	// Exactly two sends: admin notification first, then autoresponder.
	require.Len(t, sender.sent, 2)
	assert.Equal(t, "owner@corp.io", sender.sent[0].To)
	assert.Equal(t, "jane.doe@gmail.com", sender.sent[0].ReplyTo)
	assert.Equal(t, "jane.doe@gmail.com", sender.sent[1].To)
}

func TestContact_MissingFields(t *testing.T) {
	sender := &recordingSender{failAfter: -1}
	srv := newTestServer(t, sender, false)

	tests := []struct {
		name string
		body map[string]string
	}{
		{"missing name", map[string]string{"email": "jane@gmail.com", "message": "hi"}},
		{"missing email", map[string]string{"name": "Jane", "message": "hi"}},
		{"missing message", map[string]string{"name": "Jane", "email": "jane@gmail.com"}},
		{"whitespace only", map[string]string{"name": "  ", "email": "jane@gmail.com", "message": "hi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := postJSON(t, srv.URL+"/api/contact", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, false, body["ok"])
			assert.NotEmpty(t, body["error"])
		})
	}

	assert.Empty(t, sender.sent, "no mail may be sent for invalid input")
}

func TestContact_RejectedEmail(t *testing.T) {
	sender := &recordingSender{failAfter: -1}
	srv := newTestServer(t, sender, false)

	resp, body := postJSON(t, srv.URL+"/api/contact", map[string]string{
		"name":    "Someone",
		"email":   "user@mailinator.com",
		"message": "hello",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "email_disposable", body["code"])
	assert.Equal(t, "email", body["field"])
	assert.NotContains(t, body, "reason", "raw reason must not leak by default")
	assert.Empty(t, sender.sent)
}

func TestContact_ExposeReason(t *testing.T) {
	sender := &recordingSender{failAfter: -1}
	srv := newTestServer(t, sender, true)

	_, body := postJSON(t, srv.URL+"/api/contact", map[string]string{
		"name":    "Someone",
		"email":   "user@mailinator.com",
		"message": "hello",
	})

	assert.Equal(t, "disposable email provider", body["reason"])
}

func TestContact_AdminSendFailureAbortsAutoresponder(t *testing.T) {
	sender := &recordingSender{failAfter: 0} // first send fails
	srv := newTestServer(t, sender, false)

	resp, body := postJSON(t, srv.URL+"/api/contact", map[string]string{
		"name":    "Jane",
		"email":   "jane.doe@gmail.com",
		"message": "hi",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, false, body["ok"])
	assert.Empty(t, sender.sent, "autoresponder must not be attempted after admin send failure")
}

func TestContact_InvalidJSON(t *testing.T) {
	sender := &recordingSender{failAfter: -1}
	srv := newTestServer(t, sender, false)

	resp, err := http.Post(srv.URL+"/api/contact", "application/json", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSubscribe_RoleAccountRejected(t *testing.T) {
	sender := &recordingSender{failAfter: -1}
	srv := newTestServer(t, sender, false)

	resp, body := postJSON(t, srv.URL+"/api/subscribe", map[string]string{
		"email": "test@gmail.com",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "email_role_or_test", body["code"])
	assert.Equal(t, "email", body["field"])
}

func TestSubscribe_Success(t *testing.T) {
	sender := &recordingSender{failAfter: -1}
	srv := newTestServer(t, sender, false)

	resp, body := postJSON(t, srv.URL+"/api/subscribe", map[string]string{
		"email": "jane.doe@gmail.com",
		"name":  "Jane",
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["ok"])

	require.Len(t, sender.sent, 2)
	assert.Equal(t, "owner@corp.io", sender.sent[0].To)
	assert.Equal(t, "jane.doe@gmail.com", sender.sent[1].To)
}

func TestSubscribe_MissingEmail(t *testing.T) {
	sender := &recordingSender{failAfter: -1}
	srv := newTestServer(t, sender, false)

	resp, body := postJSON(t, srv.URL+"/api/subscribe", map[string]string{"name": "Jane"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["ok"])
}

func TestSubscribe_TypoSuggestion(t *testing.T) {
	sender := &recordingSender{failAfter: -1}
	srv := newTestServer(t, sender, false)

	// gmial.com is accepted by the offline rules, so force a rejection
	// that still carries a suggestion: a test local part at a typo domain.
	resp, body := postJSON(t, srv.URL+"/api/subscribe", map[string]string{
		"email": "test123@gmial.com",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "email_role_or_test", body["code"])
	assert.Equal(t, "test123@gmail.com", body["suggestion"])
}

func TestHealth(t *testing.T) {
	sender := &recordingSender{failAfter: -1}
	srv := newTestServer(t, sender, false)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
