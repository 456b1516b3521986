package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/ngscreen/internal/model"
	"github.com/sells-group/ngscreen/internal/refdata"
)

func newTestClassifier(t *testing.T) *Classifier {
	t.Helper()
	return New(refdata.Default())
}

func TestByNationality(t *testing.T) {
	tests := []struct {
		in   string
		want model.Verdict
	}{
		{"", model.VerdictUnknown},
		{"OTHERS", model.VerdictUnknown},
		{"OTHER", model.VerdictUnknown},
		{"N/A", model.VerdictUnknown},
		{"/", model.VerdictUnknown},
		{" others ", model.VerdictUnknown},
		{"n/a", model.VerdictUnknown},
		{"Nigeria", model.VerdictAffirmative},
		{"nigerian", model.VerdictAffirmative},
		{"  NIGERIA ", model.VerdictAffirmative},
		{"GHANA", model.VerdictNegative},
		{"NIGERIAN-AMERICAN", model.VerdictNegative},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ByNationality(tt.in))
		})
	}
}

func TestByGeoLocation(t *testing.T) {
	tests := []struct {
		in   string
		want model.Verdict
	}{
		{"", model.VerdictUnknown},
		{"OTHER", model.VerdictUnknown},
		{"/", model.VerdictUnknown},
		{"nigeria", model.VerdictAffirmative},
		{"NIGERIAN", model.VerdictNegative},
		{"UNITED KINGDOM", model.VerdictNegative},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ByGeoLocation(tt.in))
		})
	}
}

func TestByState(t *testing.T) {
	c := newTestClassifier(t)

	tests := []struct {
		in   string
		want model.Verdict
	}{
		{"", model.VerdictUnknown},
		{"OTHERS", model.VerdictUnknown},
		{"N/A", model.VerdictUnknown},
		{"lagos", model.VerdictAffirmative},
		{"Akwa-Ibom", model.VerdictAffirmative},
		{"F.C.T.", model.VerdictAffirmative},
		{"TEXAS", model.VerdictNegative},
		{"LAGOS STATE", model.VerdictNegative},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, c.ByState(tt.in))
		})
	}
}

func TestByAddressText(t *testing.T) {
	c := newTestClassifier(t)

	tests := []struct {
		name string
		in   string
		want model.Verdict
	}{
		{name: "empty", in: "", want: model.VerdictUnknown},
		{name: "too short", in: "Ikj", want: model.VerdictUnknown},
		{name: "four chars padded", in: "  abcd  ", want: model.VerdictUnknown},
		{name: "state only", in: "LAGOS", want: model.VerdictAffirmative},
		{name: "UK inside UKRAINE is not foreign", in: "UKRAINE ROAD, LAGOS", want: model.VerdictAffirmative},
		{name: "USA inside USAGE is not foreign", in: "12 Usage Street, Ikeja", want: model.VerdictAffirmative},
		{name: "short term as whole word", in: "3 usa lane", want: model.VerdictNegative},
		{name: "short term at end", in: "45 Oxford Road, UK", want: model.VerdictNegative},
		{name: "long term substring", in: "12 Promenade Way", want: model.VerdictNegative},
		{name: "foreign city", in: "Flat 3, 10 Downing St, London", want: model.VerdictNegative},
		{name: "foreign wins over nigerian state", in: "PO BOX 1, ACCRA, GHANA", want: model.VerdictNegative},
		{name: "foreign wins over nigerian city", in: "Lekki office, Dubai Marina", want: model.VerdictNegative},
		{name: "literal nigeria", in: "Box 12, Nigeria", want: model.VerdictAffirmative},
		{name: "abuja area", in: "Plot 5, Wuse II, Abuja FCT", want: model.VerdictAffirmative},
		{name: "lagos area", in: "22 Awolowo Road, Ikoyi", want: model.VerdictAffirmative},
		{name: "state substring", in: "No 4 Okoro close, Imo", want: model.VerdictAffirmative},
		{name: "short city ignored", in: "15 ABA ROAD", want: model.VerdictUnknown},
		{name: "no place names", in: "Somewhere unknown", want: model.VerdictUnknown},
		{name: "us city not in lists", in: "123 Main St, Houston", want: model.VerdictUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.ByAddressText(tt.in))
		})
	}
}

func TestForeignTermIn(t *testing.T) {
	c := newTestClassifier(t)

	assert.Equal(t, "", c.ForeignTermIn("UKRAINE ROAD, LAGOS"))
	assert.Equal(t, "", c.ForeignTermIn("USAGE STREET"))
	assert.Equal(t, "UK", c.ForeignTermIn("LEEDS, UK"))
	assert.Equal(t, "U.K", c.ForeignTermIn("LEEDS U.K"))
	assert.Equal(t, "LONDON", c.ForeignTermIn("EAST LONDON"))
}

func TestResolve(t *testing.T) {
	c := newTestClassifier(t)

	tests := []struct {
		name                          string
		nationality, geo, state, addr string
		want                          Decision
	}{
		{
			name:  "state only",
			state: "LAGOS",
			want:  Decision{model.StatusNigerian, "State: LAGOS", model.SignalState},
		},
		{
			name:  "unrecognized state falls back after address",
			state: "TEXAS", addr: "123 Main St, Houston",
			want: Decision{model.StatusNonNigerian, "Non-Nigerian state: TEXAS", model.SignalState},
		},
		{
			name:        "nationality beats address",
			nationality: "GHANA", addr: "22 Awolowo Road, Ikoyi",
			want: Decision{model.StatusNonNigerian, "Nationality: GHANA", model.SignalNationality},
		},
		{
			name:        "nigerian nationality beats foreign geo",
			nationality: "nigerian", geo: "UK",
			want: Decision{model.StatusNigerian, "Nationality: NIGERIA", model.SignalNationality},
		},
		{
			name: "geo affirmative",
			geo:  "NIGERIA",
			want: Decision{model.StatusNigerian, "Geographic Location: NIGERIA", model.SignalGeoLocation},
		},
		{
			name: "geo negative beats nigerian state",
			geo:  "Ghana", state: "LAGOS",
			want: Decision{model.StatusNonNigerian, "Geographic Location: Ghana", model.SignalGeoLocation},
		},
		{
			name:        "sentinels defer to address",
			nationality: "OTHERS", geo: "N/A", state: "TEXAS", addr: "Plot 5, Wuse II, Abuja",
			want: Decision{model.StatusNigerian, "Nigerian location in address", model.SignalAddress},
		},
		{
			name:  "foreign address beats unrecognized state",
			state: "ONTARIO", addr: "55 Bloor St, Toronto",
			want: Decision{model.StatusNonNigerian, "Foreign address detected", model.SignalAddress},
		},
		{
			name:  "nigerian state beats foreign address",
			state: "OGUN", addr: "Flat 2, London Road",
			want: Decision{model.StatusNigerian, "State: OGUN", model.SignalState},
		},
		{
			name:        "all sentinels",
			nationality: "/", geo: "/", state: "/",
			want: Decision{model.StatusUnknown, "Insufficient data to determine", model.SignalNone},
		},
		{
			name: "nothing at all",
			want: Decision{model.StatusUnknown, "Insufficient data to determine", model.SignalNone},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Resolve(tt.nationality, tt.geo, tt.state, tt.addr)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	c := newTestClassifier(t)
	first := c.Resolve("", "", "", "Lekki office, Dubai Marina")
	for range 50 {
		require.Equal(t, first, c.Resolve("", "", "", "Lekki office, Dubai Marina"))
	}
}

func TestClassify(t *testing.T) {
	c := newTestClassifier(t)
	long := "12 Admiralty Way, Lekki Phase 1, " + strings.Repeat("x", 120)

	rec := c.Classify(model.AccountRecord{
		Email:            "ada@example.com",
		CustomerName:     "Ada Obi",
		AccountNo:        "0123456789",
		Nationality:      "",
		GeoLocation:      "",
		StateOfResidence: "",
		Address:          long,
	})

	assert.Equal(t, model.StatusNigerian, rec.Status)
	assert.Equal(t, "Nigerian location in address", rec.Reason)
	assert.Equal(t, model.SignalAddress, rec.Signal)
	assert.Equal(t, "0123456789", rec.AccountNo)
	assert.Equal(t, "Ada Obi", rec.CustomerName)
	assert.Equal(t, "ada@example.com", rec.Email)
	assert.Len(t, rec.Address, 100)
	assert.Equal(t, long[:100], rec.Address)
}

func TestClassifyWithAddressLimit(t *testing.T) {
	c := New(refdata.Default(), WithAddressLimit(10))
	rec := c.Classify(model.AccountRecord{Address: "22 Awolowo Road, Ikoyi"})
	assert.Equal(t, "22 Awolowo", rec.Address)
	// Truncation applies to output only; the full address is classified.
	assert.Equal(t, model.StatusNigerian, rec.Status)
}

func TestClassifierWithExtendedReference(t *testing.T) {
	extra := refdata.FromLists(refdata.Lists{ForeignTerms: []string{"Houston", "TX"}})
	c := New(refdata.Default().Merge(extra))

	assert.Equal(t, model.VerdictNegative, c.ByAddressText("123 Main St, Houston"))
	assert.Equal(t, model.VerdictNegative, c.ByAddressText("Austin, TX 78701"))
	assert.Equal(t, model.VerdictAffirmative, c.ByAddressText("MATX PLAZA, KANO"), "TX needs a word boundary")
}

func TestIsNigerianNumber(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want model.Verdict
	}{
		{"country code", "+2348031234567", model.VerdictAffirmative},
		{"country code with separators", "+234 803-123 4567", model.VerdictAffirmative},
		{"local 070", "07012345678", model.VerdictAffirmative},
		{"local 080", "08031234567", model.VerdictAffirmative},
		{"local 081", "08112345678", model.VerdictAffirmative},
		{"local 090", "09012345678", model.VerdictAffirmative},
		{"local 091", "09112345678", model.VerdictAffirmative},
		{"us number", "+14155552671", model.VerdictNegative},
		{"uk number", "+44 7911 123456", model.VerdictNegative},
		{"local 060 not mobile", "06012345678", model.VerdictNegative},
		{"empty", "", model.VerdictUnknown},
		{"zero", "0", model.VerdictUnknown},
		{"letter O", "O", model.VerdictUnknown},
		{"nil", "nil", model.VerdictUnknown},
		{"n/a", "N/A", model.VerdictUnknown},
		{"slash", "/", model.VerdictUnknown},
		{"padded zero", " 0 ", model.VerdictUnknown},
		{"too few digits", "12345", model.VerdictUnknown},
		{"digit run broken by separator", "080-123", model.VerdictUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNigerianNumber(tt.in))
		})
	}
}

func TestCleanPhone(t *testing.T) {
	assert.Equal(t, "2348031234567", CleanPhone(" +234 803-123 4567 "))
	assert.Equal(t, "", CleanPhone("   "))
}
