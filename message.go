package formrelay

import "strings"

// Message is the user-facing translation of a rejection reason: a stable
// machine code, a human-readable message, and the implicated form field.
// It never carries internal reason text or blocklist contents.
type Message struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field"`
}

// messageTable maps reason substrings to user-facing messages. Rows are
// evaluated in order against the lowercased reason and the first matching
// row wins. Row order matters: any new reason text must be checked against
// every earlier row's substrings before being added.
var messageTable = []struct {
	substrings []string
	code       string
	message    string
}{
	{
		substrings: []string{"empty"},
		code:       "email_missing",
		message:    "Please enter your email address.",
	},
	{
		substrings: []string{"invalid format", "invalid local", "invalid domain"},
		code:       "email_invalid_format",
		message:    "That email address doesn't look right. Please check it and try again.",
	},
	{
		substrings: []string{"too long"},
		code:       "email_too_long",
		message:    "That email address is too long.",
	},
	{
		substrings: []string{"blocked domain", "example"},
		code:       "email_blocked_domain",
		message:    "Please use your real email address.",
	},
	{
		substrings: []string{"disposable", "temp"},
		code:       "email_disposable",
		message:    "Disposable email addresses aren't accepted. Please use a permanent address.",
	},
	{
		substrings: []string{"role", "test", "dummy"},
		code:       "email_role_or_test",
		message:    "Please use a personal email address rather than a shared or test mailbox.",
	},
	{
		substrings: []string{"no mail servers", "domain verification failed"},
		code:       "email_domain_unverified",
		message:    "We couldn't verify that this email domain can receive mail.",
	},
}

// UserMessage translates an internal rejection reason into its user-facing
// Message. Total: any reason not matched by the table falls back to a
// generic email_unacceptable message. Same reason always yields the same
// Message.
func UserMessage(reason string) Message {
	lower := strings.ToLower(reason)

	for _, row := range messageTable {
		for _, sub := range row.substrings {
			if strings.Contains(lower, sub) {
				return Message{Code: row.code, Message: row.message, Field: "email"}
			}
		}
	}

	return Message{
		Code:    "email_unacceptable",
		Message: "This email address can't be accepted.",
		Field:   "email",
	}
}
