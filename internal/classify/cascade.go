package classify

import (
	"github.com/sells-group/ngscreen/internal/model"
)

// Decision is the outcome of the cascade for one account.
type Decision struct {
	Status model.Status `json:"status"`
	Reason string       `json:"reason"`
	Signal model.Signal `json:"signal"`
}

// Resolve runs the signals in priority order and stops at the first
// decisive one: nationality, geo-location, a recognized state, address text,
// then an unrecognized state. A state that is not Nigerian only counts once
// the address had its chance to say otherwise.
func (c *Classifier) Resolve(nationality, geoLocation, state, address string) Decision {
	switch ByNationality(nationality) {
	case model.VerdictNegative:
		return Decision{model.StatusNonNigerian, "Nationality: " + nationality, model.SignalNationality}
	case model.VerdictAffirmative:
		return Decision{model.StatusNigerian, "Nationality: NIGERIA", model.SignalNationality}
	}

	switch ByGeoLocation(geoLocation) {
	case model.VerdictNegative:
		return Decision{model.StatusNonNigerian, "Geographic Location: " + geoLocation, model.SignalGeoLocation}
	case model.VerdictAffirmative:
		return Decision{model.StatusNigerian, "Geographic Location: NIGERIA", model.SignalGeoLocation}
	}

	stateVerdict := c.ByState(state)
	if stateVerdict == model.VerdictAffirmative {
		return Decision{model.StatusNigerian, "State: " + state, model.SignalState}
	}

	switch c.ByAddressText(address) {
	case model.VerdictNegative:
		return Decision{model.StatusNonNigerian, "Foreign address detected", model.SignalAddress}
	case model.VerdictAffirmative:
		return Decision{model.StatusNigerian, "Nigerian location in address", model.SignalAddress}
	}

	if stateVerdict == model.VerdictNegative {
		return Decision{model.StatusNonNigerian, "Non-Nigerian state: " + state, model.SignalState}
	}

	return Decision{model.StatusUnknown, "Insufficient data to determine", model.SignalNone}
}

// Classify resolves an account and builds its output record.
func (c *Classifier) Classify(rec model.AccountRecord) model.ClassifiedRecord {
	d := c.Resolve(rec.Nationality, rec.GeoLocation, rec.StateOfResidence, rec.Address)
	return model.ClassifiedRecord{
		AccountNo:    rec.AccountNo,
		CustomerName: rec.CustomerName,
		Email:        rec.Email,
		Nationality:  rec.Nationality,
		GeoLocation:  rec.GeoLocation,
		State:        rec.StateOfResidence,
		Address:      model.Truncate(rec.Address, c.addressLimit),
		Status:       d.Status,
		Reason:       d.Reason,
		Signal:       d.Signal,
	}
}
