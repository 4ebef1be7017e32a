package reports

import (
	"fmt"
	"strconv"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/pkg/errors"
)

// Excel instance reachable data
type Excel struct {
	xlsx   *excelize.File
	styles map[uint32]int
}

//
// newExcel creates a new Excel instance
//
func newExcel() *Excel {
	return &Excel{
		xlsx:   excelize.NewFile(),
		styles: make(map[uint32]int),
	}
}

//
// saveAndCloseExcel saves to filename (need to set the directory as well)
//
func (e *Excel) saveAndCloseExcel(filename string) error {
	e.xlsx.DeleteSheet("Sheet1")
	e.xlsx.SetActiveSheet(1)
	if err := e.xlsx.SaveAs(filename); err != nil {
		return errors.Wrapf(err, "saving %s", filename)
	}
	return nil
}

// Sheet struct
type Sheet struct {
	e    *Excel
	name string
}

func (e *Excel) newSheet(name string) (*Sheet, error) {
	// Avoid duplicated sheet
	if index := e.xlsx.GetSheetIndex(name); index > 0 {
		return nil, fmt.Errorf("sheet %s already exists", name)
	}
	e.xlsx.NewSheet(name)

	return &Sheet{e: e, name: name}, nil
}

func (s *Sheet) print(col, row int, value interface{}, f *formatStyle) {
	cell := axis(col, row)
	s.e.xlsx.SetCellValue(s.name, cell, value)
	if f == nil {
		return
	}
	if style := f.newStyle(s.e); style > 0 {
		s.e.xlsx.SetCellStyle(s.name, cell, cell, style)
	}
}

//
// printRow prints the values from (col, row) to the right, all with the
// same format.
//
func (s *Sheet) printRow(col, row int, f *formatStyle, values ...interface{}) {
	for i, v := range values {
		s.print(col+i, row, v, f)
	}
}

func (s *Sheet) mergeCell(c1, r1, c2, r2 int) {
	s.e.xlsx.MergeCell(s.name, axis(c1, r1), axis(c2, r2))
}

func (s *Sheet) setColWidth(col int, width float64) {
	c := excelize.ToAlphaString(col)
	s.e.xlsx.SetColWidth(s.name, c, c, width)
}

//
// ToXlsx writes the report to 'file' on a sheet named after the company code.
//
func ToXlsx(r *Report, file string) error {
	e := newExcel()
	s, err := e.newSheet(r.Code)
	if err != nil {
		return err
	}

	title := newFormat(DEFAULT, LEFT, true)
	header := newFormat(DEFAULT, CENTER, true).underline()
	number := newFormat(NUMBER, RIGHT, false)
	percent := newFormat(PERCENT, RIGHT, false)

	row := 1
	s.print(0, row, fmt.Sprintf("%s (%s)", r.Name, r.Code), title)
	row++
	s.printRow(0, row, title, "신호", "QoQ", "YoY")
	row++
	s.print(0, row, r.Signal, newFormat(DEFAULT, LEFT, false))
	s.printRow(1, row, percent, r.QoQ, r.YoY)

	row += 2
	s.printRow(0, row, header,
		"매출액(억원)",
		strconv.Itoa(r.Previous.Year),
		strconv.Itoa(r.Current.Year),
		"영업이익 "+strconv.Itoa(r.Operating.Year))
	for i, p := range r.Current.Points {
		row++
		s.print(0, row, p.Label, newFormat(DEFAULT, CENTER, false))
		for col, pt := range []Point{r.Previous.Points[i], p, r.Operating.Points[i]} {
			if pt.Valid {
				s.print(col+1, row, pt.Value, number)
			}
		}
	}

	row += 2
	s.printRow(0, row, header, "연도", "연간 매출액(억원)")
	for _, a := range r.Annual {
		row++
		s.print(0, row, strconv.Itoa(a.Year), newFormat(DEFAULT, CENTER, false))
		s.print(1, row, a.Value, number)
	}

	if r.Annotation.Narrative != "" {
		row += 2
		s.print(0, row, "코멘트", title)
		s.print(1, row, r.Annotation.Narrative, newFormat(DEFAULT, LEFT, false).wrap())
		s.mergeCell(1, row, 3, row)
	}

	s.setColWidth(0, 14)
	for col := 1; col <= 3; col++ {
		s.setColWidth(col, 16)
	}

	return e.saveAndCloseExcel(file)
}

//
// axis transforms (1, 3) into "B3"; col is zero based.
//
func axis(col, row int) string {
	return excelize.ToAlphaString(col) + strconv.Itoa(row)
}
