//go:build !solution

package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"gitlab.com/slon/courseplanner/course"
)

const maxLineSize = 1 << 20

// ParseLine parses "number,title[,prereq...]". Missing fields are left empty
// and empty prerequisite fields are dropped; nothing is rejected.
func ParseLine(line string) *course.Course {
	return ParseFields(strings.Split(line, ","))
}

// ParseFields builds a course from already separated fields with the same
// policy as ParseLine.
func ParseFields(fields []string) *course.Course {
	c := &course.Course{}
	if len(fields) > 0 {
		c.Number = strings.TrimSpace(fields[0])
	}
	if len(fields) > 1 {
		c.Title = strings.TrimSpace(fields[1])
	}
	for _, f := range fields[min(len(fields), 2):] {
		if f = strings.TrimSpace(f); f != "" {
			c.Prerequisites = append(c.Prerequisites, f)
		}
	}
	return c
}

// ReadCSV parses one course per line of r.
func ReadCSV(r io.Reader) ([]*course.Course, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	var courses []*course.Course
	for scanner.Scan() {
		courses = append(courses, ParseLine(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read line %d: %w", len(courses)+1, err)
	}
	return courses, nil
}
