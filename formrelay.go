// Package formrelay decides whether a submitted email address should be
// accepted before any mail is sent on its behalf. The decision is a fixed
// sequence of heuristic rules (shape, length, role accounts, disposable
// providers, optional DNS verification) evaluated in order; the first
// failing rule determines the rejection reason.
//
// Basic usage:
//
//	verdict := formrelay.New().Check(ctx, "jane.doe@gmail.com")
//
// With DNS verification of the domain's mail servers:
//
//	verdict := formrelay.New().WithDNS().Check(ctx, "jane.doe@gmail.com")
//
// Rejection reasons are internal; UserMessage translates them into a
// stable code/message/field triple safe to expose to callers.
package formrelay

import "github.com/optimode/formrelay/types"

// RuleResult is a re-export from the types package so that consumers
// don't need to import the types package directly.
type RuleResult = types.RuleResult

// Rule is a re-export.
type Rule = types.Rule
