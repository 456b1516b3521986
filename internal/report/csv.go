package report

import (
	"bufio"
	"encoding/csv"
	"io"
	"os"

	"github.com/rotisserie/eris"

	"github.com/sells-group/ngscreen/internal/model"
)

// ClassifiedColumns is the header of address result files.
var ClassifiedColumns = []string{
	"account_no",
	"customer_name",
	"email",
	"nationality",
	"geo_location",
	"state",
	"address",
	"detection_reason",
}

// PhoneColumns is the header of phone result files.
var PhoneColumns = []string{
	"account_no",
	"customer_name",
	"email",
	"phone",
}

func classifiedRow(r model.ClassifiedRecord) []string {
	return []string{
		r.AccountNo,
		r.CustomerName,
		r.Email,
		r.Nationality,
		r.GeoLocation,
		r.State,
		r.Address,
		r.Reason,
	}
}

func phoneRow(r model.PhoneRecord) []string {
	return []string{r.AccountNo, r.CustomerName, r.Email, r.Phone}
}

// WriteClassifiedCSV writes address results to path, header first.
func WriteClassifiedCSV(path string, recs []model.ClassifiedRecord) error {
	rows := make([][]string, len(recs))
	for i, r := range recs {
		rows[i] = classifiedRow(r)
	}
	return eris.Wrap(writeCSVFile(path, ClassifiedColumns, rows), "report: write classified csv")
}

// WritePhoneCSV writes phone results to path, header first.
func WritePhoneCSV(path string, recs []model.PhoneRecord) error {
	rows := make([][]string, len(recs))
	for i, r := range recs {
		rows[i] = phoneRow(r)
	}
	return eris.Wrap(writeCSVFile(path, PhoneColumns, rows), "report: write phone csv")
}

// WriteEmails writes one email per line to path.
func WriteEmails(path string, emails []string) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "report: create emails file")
	}

	bw := bufio.NewWriter(f)
	for _, e := range emails {
		if _, err := bw.WriteString(e + "\n"); err != nil {
			f.Close()
			return eris.Wrap(err, "report: write email")
		}
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return eris.Wrap(err, "report: flush emails")
	}
	return eris.Wrap(f.Close(), "report: close emails file")
}

func writeCSVFile(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "create file")
	}
	if err := writeCSV(f, header, rows); err != nil {
		f.Close()
		return err
	}
	return eris.Wrap(f.Close(), "close file")
}

func writeCSV(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return eris.Wrap(err, "write header")
	}
	if err := cw.WriteAll(rows); err != nil {
		return eris.Wrap(err, "write rows")
	}
	return nil
}

// ClassifiedEmails returns the email of every record, in order.
func ClassifiedEmails(recs []model.ClassifiedRecord) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Email
	}
	return out
}

// PhoneEmails returns the email of every record, in order.
func PhoneEmails(recs []model.PhoneRecord) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Email
	}
	return out
}
