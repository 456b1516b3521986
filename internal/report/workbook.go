package report

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/ngscreen/internal/model"
)

// Sheet is one worksheet of a result workbook.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]string
}

// ClassifiedSheet builds a worksheet of address results.
func ClassifiedSheet(name string, recs []model.ClassifiedRecord) Sheet {
	s := Sheet{Name: name, Header: ClassifiedColumns, Rows: make([][]string, len(recs))}
	for i, r := range recs {
		s.Rows[i] = classifiedRow(r)
	}
	return s
}

// PhoneSheet builds a worksheet of phone results.
func PhoneSheet(name string, recs []model.PhoneRecord) Sheet {
	s := Sheet{Name: name, Header: PhoneColumns, Rows: make([][]string, len(recs))}
	for i, r := range recs {
		s.Rows[i] = phoneRow(r)
	}
	return s
}

// WriteWorkbook saves sheets, in order, as an XLSX workbook at path.
// Every cell is written as a string so account numbers keep leading zeros.
func WriteWorkbook(path string, sheets []Sheet) error {
	if len(sheets) == 0 {
		return eris.New("report: workbook needs at least one sheet")
	}

	f := xlsx.NewFile()
	for _, s := range sheets {
		sheet, err := f.AddSheet(s.Name)
		if err != nil {
			return eris.Wrapf(err, "report: add sheet %q", s.Name)
		}
		addRow(sheet, s.Header)
		for _, row := range s.Rows {
			addRow(sheet, row)
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrap(err, "report: save workbook")
	}
	return nil
}

func addRow(sheet *xlsx.Sheet, cells []string) {
	row := sheet.AddRow()
	for _, v := range cells {
		row.AddCell().SetString(v)
	}
}
