package api

import (
	"fmt"
	"strings"

	"github.com/optimode/formrelay/internal/mailer"
)

// contactNotification is the admin copy of a contact submission.
func (h *Handlers) contactNotification(req contactRequest) mailer.Message {
	var b strings.Builder
	fmt.Fprintf(&b, "New contact submission via %s\n\n", h.mail.SiteName)
	fmt.Fprintf(&b, "Name: %s\n", req.Name)
	fmt.Fprintf(&b, "Email: %s\n", req.Email)
	if req.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", req.Phone)
	}
	if req.Project != "" {
		fmt.Fprintf(&b, "Project: %s\n", req.Project)
	}
	fmt.Fprintf(&b, "\n%s\n", req.Message)

	subject := req.Subject
	if subject == "" {
		subject = fmt.Sprintf("New contact from %s", req.Name)
	}

	return mailer.Message{
		From:     h.mail.FromEmail,
		FromName: h.mail.FromName,
		To:       h.mail.AdminEmail,
		ReplyTo:  req.Email,
		Subject:  subject,
		Text:     b.String(),
	}
}

// contactAutoresponse confirms receipt to the submitter.
func (h *Handlers) contactAutoresponse(req contactRequest) mailer.Message {
	text := fmt.Sprintf(
		"Hi %s,\n\nThanks for getting in touch. We received your message and will reply as soon as we can.\n\n%s\n",
		req.Name, h.mail.SiteName,
	)

	return mailer.Message{
		From:     h.mail.FromEmail,
		FromName: h.mail.FromName,
		To:       req.Email,
		Subject:  fmt.Sprintf("We received your message - %s", h.mail.SiteName),
		Text:     text,
	}
}

// subscribeNotification is the admin copy of a newsletter signup.
func (h *Handlers) subscribeNotification(req subscribeRequest) mailer.Message {
	var b strings.Builder
	fmt.Fprintf(&b, "New newsletter signup via %s\n\n", h.mail.SiteName)
	fmt.Fprintf(&b, "Email: %s\n", req.Email)
	if req.Name != "" {
		fmt.Fprintf(&b, "Name: %s\n", req.Name)
	}
	if req.Project != "" {
		fmt.Fprintf(&b, "Project: %s\n", req.Project)
	}

	return mailer.Message{
		From:     h.mail.FromEmail,
		FromName: h.mail.FromName,
		To:       h.mail.AdminEmail,
		Subject:  fmt.Sprintf("New subscriber: %s", req.Email),
		Text:     b.String(),
	}
}

// subscribeConfirmation confirms the signup to the subscriber.
func (h *Handlers) subscribeConfirmation(req subscribeRequest) mailer.Message {
	greeting := "Hi,"
	if req.Name != "" {
		greeting = fmt.Sprintf("Hi %s,", req.Name)
	}
	text := fmt.Sprintf(
		"%s\n\nYou're subscribed to the %s newsletter. Welcome aboard!\n",
		greeting, h.mail.SiteName,
	)

	return mailer.Message{
		From:     h.mail.FromEmail,
		FromName: h.mail.FromName,
		To:       req.Email,
		Subject:  fmt.Sprintf("You're subscribed - %s", h.mail.SiteName),
		Text:     text,
	}
}
