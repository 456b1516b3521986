package model

import "unicode/utf8"

// Export column names used by the account file.
const (
	ColEmail       = "E_MAIL"
	ColName        = "CUST_NAME"
	ColAccountNo   = "ACCT_NO"
	ColNationality = "NATIONALITY"
	ColGeoLocation = "CUS_GEO_LOCA"
	ColState       = "STATE_OF_RES"
	ColAddress     = "ADDRESS"
	ColMobile      = "MOB_NUM"
)

// DefaultAddressLimit is the number of characters of address kept in output.
const DefaultAddressLimit = 100

// RawRecord is one export line split into fields, keyed by the header.
type RawRecord struct {
	Columns []string
	Values  []string
}

// Get returns the value of the named column, or "" if the column is absent
// or the line is short.
func (r RawRecord) Get(name string) string {
	for i, col := range r.Columns {
		if col == name {
			if i < len(r.Values) {
				return r.Values[i]
			}
			return ""
		}
	}
	return ""
}

// AccountRecord holds the fields of an export line the classifiers use.
type AccountRecord struct {
	Email            string `json:"email"`
	CustomerName     string `json:"customer_name"`
	AccountNo        string `json:"account_no"`
	Nationality      string `json:"nationality"`
	GeoLocation      string `json:"geo_location"`
	StateOfResidence string `json:"state_of_residence"`
	Address          string `json:"address"`
	Phone            string `json:"phone"`
}

// ClassifiedRecord is an account with its address-pipeline decision.
type ClassifiedRecord struct {
	AccountNo    string `json:"account_no"`
	CustomerName string `json:"customer_name"`
	Email        string `json:"email"`
	Nationality  string `json:"nationality"`
	GeoLocation  string `json:"geo_location"`
	State        string `json:"state"`
	Address      string `json:"address"`
	Status       Status `json:"status"`
	Reason       string `json:"detection_reason"`
	Signal       Signal `json:"signal"`
}

// PhoneRecord is an account with its phone-pipeline decision.
type PhoneRecord struct {
	AccountNo    string      `json:"account_no"`
	CustomerName string      `json:"customer_name"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone"`
	Status       PhoneStatus `json:"status"`
}

// Truncate cuts s to at most n characters without splitting a rune.
func Truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
