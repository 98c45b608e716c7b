//go:build !solution

package ingest

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"gitlab.com/slon/courseplanner/course"
)

// ReadXLSX reads courses from the first sheet of a workbook, one row per
// course, with cells in the same order as the fields of a text line.
func ReadXLSX(path string) ([]*course.Course, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	courses := make([]*course.Course, 0, len(rows))
	for _, row := range rows {
		courses = append(courses, ParseFields(row))
	}
	return courses, nil
}
