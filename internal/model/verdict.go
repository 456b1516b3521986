package model

// Verdict is the result of checking a single signal. The zero value is
// VerdictUnknown so an unset verdict never reads as a decision.
type Verdict int

const (
	// VerdictUnknown means the signal carried no usable data.
	VerdictUnknown Verdict = iota
	// VerdictAffirmative means the signal says Nigerian.
	VerdictAffirmative
	// VerdictNegative means the signal says non-Nigerian.
	VerdictNegative
)

func (v Verdict) String() string {
	switch v {
	case VerdictAffirmative:
		return "affirmative"
	case VerdictNegative:
		return "negative"
	default:
		return "unknown"
	}
}

// Status is the final classification of an account.
type Status string

const (
	StatusNigerian    Status = "NIGERIAN"
	StatusNonNigerian Status = "NON-NIGERIAN"
	StatusUnknown     Status = "UNKNOWN"
)

// PhoneStatus is the outcome of classifying a phone number.
type PhoneStatus string

const (
	PhoneNigerian    PhoneStatus = "nigerian"
	PhoneNonNigerian PhoneStatus = "non_nigerian"
	PhoneInvalid     PhoneStatus = "invalid"
)

// PhoneStatusOf maps a phone verdict onto its reported status.
func PhoneStatusOf(v Verdict) PhoneStatus {
	switch v {
	case VerdictAffirmative:
		return PhoneNigerian
	case VerdictNegative:
		return PhoneNonNigerian
	default:
		return PhoneInvalid
	}
}

// Signal names the field that decided a classification.
type Signal string

const (
	SignalNationality Signal = "nationality"
	SignalGeoLocation Signal = "geo_location"
	SignalState       Signal = "state"
	SignalAddress     Signal = "address"
	SignalNone        Signal = "none"
)
