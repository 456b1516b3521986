package classify

import (
	"regexp"
	"strings"

	"github.com/sells-group/ngscreen/internal/model"
)

// invalidPhones are placeholder values that mean no number was captured.
var invalidPhones = map[string]bool{
	"":    true,
	"0":   true,
	"O":   true,
	"nil": true,
	"N/A": true,
	"/":   true,
}

var (
	digitRun = regexp.MustCompile(`\d{7,}`)

	// Country code, or a local 070x/080x/081x/090x/091x mobile prefix.
	nigerianPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^234`),
		regexp.MustCompile(`^0[789][01]\d`),
	}

	phoneStripper = strings.NewReplacer("+", "", "-", "", " ", "")
)

// CleanPhone removes '+', '-' and spaces from a trimmed phone string.
func CleanPhone(raw string) string {
	return phoneStripper.Replace(strings.TrimSpace(raw))
}

// IsNigerianNumber classifies a phone number. Placeholders and strings
// without a run of seven digits are unknown rather than foreign.
func IsNigerianNumber(raw string) model.Verdict {
	if invalidPhones[strings.TrimSpace(raw)] {
		return model.VerdictUnknown
	}

	phone := CleanPhone(raw)
	if !digitRun.MatchString(phone) {
		return model.VerdictUnknown
	}

	for _, p := range nigerianPatterns {
		if p.MatchString(phone) {
			return model.VerdictAffirmative
		}
	}
	return model.VerdictNegative
}
