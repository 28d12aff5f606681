package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/optimode/formrelay"
	"github.com/optimode/formrelay/internal/config"
	"github.com/optimode/formrelay/internal/mailer"
)

// Handlers contains the HTTP handlers for the form endpoints.
type Handlers struct {
	log    *slog.Logger
	filter *formrelay.Filter
	sender mailer.Sender
	mail   config.MailConfig
	// exposeReason includes the raw rejection reason in 422 bodies.
	exposeReason bool
}

// NewHandlers creates the handler set.
func NewHandlers(log *slog.Logger, filter *formrelay.Filter, sender mailer.Sender, mail config.MailConfig, exposeReason bool) *Handlers {
	return &Handlers{
		log:          log,
		filter:       filter,
		sender:       sender,
		mail:         mail,
		exposeReason: exposeReason,
	}
}

// HealthCheck reports liveness.
func (h *Handlers) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// contactRequest is the POST /api/contact body.
type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Project string `json:"project"`
}

// Contact handles a contact-form submission: filter the address, notify
// the admin, then send the autoresponder. Sends are sequential and the
// first failure aborts the request.
func (h *Handlers) Contact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	if req.Name == "" || req.Email == "" || req.Message == "" {
		writeError(w, http.StatusBadRequest, "name, email and message are required")
		return
	}

	if verdict := h.filter.Check(r.Context(), req.Email); verdict.Rejected() {
		h.writeRejection(w, verdict)
		return
	}

	if err := h.sender.Send(r.Context(), h.contactNotification(req)); err != nil {
		h.log.Error("admin notification send failed", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "failed to send message")
		return
	}
	if err := h.sender.Send(r.Context(), h.contactAutoresponse(req)); err != nil {
		h.log.Error("autoresponder send failed", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "failed to send confirmation")
		return
	}

	h.log.Info("contact submission relayed", slog.String("project", req.Project))
	writeOK(w)
}

// subscribeRequest is the POST /api/subscribe body.
type subscribeRequest struct {
	Email   string `json:"email"`
	Project string `json:"project"`
	Name    string `json:"name"`
}

// Subscribe handles a newsletter signup: filter the address, notify the
// admin, then send the confirmation to the subscriber.
func (h *Handlers) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	if verdict := h.filter.Check(r.Context(), req.Email); verdict.Rejected() {
		h.writeRejection(w, verdict)
		return
	}

	if err := h.sender.Send(r.Context(), h.subscribeNotification(req)); err != nil {
		h.log.Error("admin notification send failed", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "failed to process subscription")
		return
	}
	if err := h.sender.Send(r.Context(), h.subscribeConfirmation(req)); err != nil {
		h.log.Error("confirmation send failed", slog.Any("error", err))
		writeError(w, http.StatusInternalServerError, "failed to send confirmation")
		return
	}

	h.log.Info("subscription relayed", slog.String("project", req.Project))
	writeOK(w)
}

// writeRejection maps the verdict to its stable user-facing triple and
// renders the 422 body.
func (h *Handlers) writeRejection(w http.ResponseWriter, verdict formrelay.Verdict) {
	msg := formrelay.UserMessage(verdict.Reason)

	resp := rejectionResponse{
		OK:         false,
		Code:       msg.Code,
		Message:    msg.Message,
		Field:      msg.Field,
		Suggestion: formrelay.Suggest(verdict.Candidate),
	}
	if h.exposeReason {
		resp.Reason = verdict.Reason
	}

	h.log.Info("submission rejected",
		slog.String("code", msg.Code),
		slog.String("reason", verdict.Reason),
	)
	writeJSON(w, http.StatusUnprocessableEntity, resp)
}
