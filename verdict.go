package formrelay

import "github.com/optimode/formrelay/types"

// Verdict is the outcome of an acceptability check. Either the candidate
// was accepted, or it was rejected with exactly one reason: the one from
// the first failing rule.
type Verdict struct {
	Candidate string     `json:"candidate"`
	Accepted  bool       `json:"accepted"`
	Rule      types.Rule `json:"rule,omitempty"`   // the rule that rejected, empty when accepted
	Reason    string     `json:"reason,omitempty"` // internal reason text, empty when accepted
}

// Rejected reports whether the candidate was rejected.
func (v Verdict) Rejected() bool {
	return !v.Accepted
}

func accepted(candidate string) Verdict {
	return Verdict{Candidate: candidate, Accepted: true}
}

func rejected(candidate string, r types.RuleResult) Verdict {
	return Verdict{Candidate: candidate, Rule: r.Rule, Reason: r.Reason}
}
