package domain

// Verdict is the outcome of one bisection step.
type Verdict uint8

const (
	// VerdictUnknown is the zero value and never a valid outcome.
	VerdictUnknown Verdict = iota
	// VerdictGood marks the revision as not containing the regression.
	VerdictGood
	// VerdictBad marks the revision as containing the regression.
	VerdictBad
	// VerdictSkip marks the revision as uninformative.
	VerdictSkip
)

// String returns the lower-case verdict name.
func (v Verdict) String() string {
	switch v {
	case VerdictGood:
		return "good"
	case VerdictBad:
		return "bad"
	case VerdictSkip:
		return "skip"
	default:
		return "unknown"
	}
}

// Decision is the terminal result of one bisection step.
type Decision struct {
	Verdict Verdict
	Reason  string
}

// Good returns a good decision.
func Good(reason string) Decision {
	return Decision{Verdict: VerdictGood, Reason: reason}
}

// Bad returns a bad decision.
func Bad(reason string) Decision {
	return Decision{Verdict: VerdictBad, Reason: reason}
}

// Skip returns a skip decision.
func Skip(reason string) Decision {
	return Decision{Verdict: VerdictSkip, Reason: reason}
}

// LogMatch classifies whether a unit's log contains a phrase.
type LogMatch uint8

const (
	// LogMatchYes means the phrase was found.
	LogMatchYes LogMatch = iota
	// LogMatchNoFail means the phrase is absent and the unit failed.
	LogMatchNoFail
	// LogMatchNoSuccess means the phrase is absent and the unit built successfully.
	LogMatchNoSuccess
)

// String returns the wire name of the classification.
func (m LogMatch) String() string {
	switch m {
	case LogMatchYes:
		return "yes"
	case LogMatchNoFail:
		return "no_fail"
	case LogMatchNoSuccess:
		return "no_success"
	default:
		return "unknown"
	}
}
