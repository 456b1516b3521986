package report

import (
	"github.com/sells-group/ngscreen/internal/pipeline"
)

// Sheet names used in result workbooks.
const (
	SheetNonNigerian = "non_nigerian"
	SheetUnknown     = "unknown"
)

// AddressPaths lists the files written for an address run.
type AddressPaths struct {
	NonNigerian string
	Emails      string
	Unknown     string
	Workbook    string // empty when no workbook was requested
}

// PhonePaths lists the files written for a phone run.
type PhonePaths struct {
	NonNigerian string
	Emails      string
	Workbook    string // empty when no workbook was requested
}

// WriteAddressOutputs writes the non-Nigerian CSV at output, its email-only
// and unknown companions next to it, and a workbook when workbook is set.
func WriteAddressOutputs(output, workbook string, res *pipeline.AddressResult) (AddressPaths, error) {
	paths := AddressPaths{
		NonNigerian: output,
		Emails:      EmailsPath(output),
		Unknown:     UnknownPath(output),
		Workbook:    workbook,
	}

	if err := WriteClassifiedCSV(paths.NonNigerian, res.NonNigerian); err != nil {
		return paths, err
	}
	if err := WriteEmails(paths.Emails, ClassifiedEmails(res.NonNigerian)); err != nil {
		return paths, err
	}
	if err := WriteClassifiedCSV(paths.Unknown, res.Unknown); err != nil {
		return paths, err
	}

	if workbook != "" {
		sheets := []Sheet{
			ClassifiedSheet(SheetNonNigerian, res.NonNigerian),
			ClassifiedSheet(SheetUnknown, res.Unknown),
		}
		if err := WriteWorkbook(workbook, sheets); err != nil {
			return paths, err
		}
	}
	return paths, nil
}

// WritePhoneOutputs writes the non-Nigerian phone CSV at output, its
// email-only companion, and a workbook when workbook is set.
func WritePhoneOutputs(output, workbook string, res *pipeline.PhoneResult) (PhonePaths, error) {
	paths := PhonePaths{
		NonNigerian: output,
		Emails:      EmailsPath(output),
		Workbook:    workbook,
	}

	if err := WritePhoneCSV(paths.NonNigerian, res.NonNigerian); err != nil {
		return paths, err
	}
	if err := WriteEmails(paths.Emails, PhoneEmails(res.NonNigerian)); err != nil {
		return paths, err
	}

	if workbook != "" {
		if err := WriteWorkbook(workbook, []Sheet{PhoneSheet(SheetNonNigerian, res.NonNigerian)}); err != nil {
			return paths, err
		}
	}
	return paths, nil
}
