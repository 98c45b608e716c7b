//go:build !solution

package course

import (
	"fmt"
	"io"
	"strings"
)

// Course is a single catalog record.
type Course struct {
	Number        string
	Title         string
	Prerequisites []string // in source field order
}

// Key returns the identifier the catalog is ordered by.
func Key(c *Course) string {
	return c.Number
}

// String renders the one-line summary "<number>, <title>".
func (c *Course) String() string {
	return c.Number + ", " + c.Title
}

// PrerequisitesLine renders "Prerequisites: a, b" or "Prerequisites: None".
func (c *Course) PrerequisitesLine() string {
	if len(c.Prerequisites) == 0 {
		return "Prerequisites: None"
	}
	return "Prerequisites: " + strings.Join(c.Prerequisites, ", ")
}

// WriteDetails writes the summary line followed by the prerequisites line.
func WriteDetails(w io.Writer, c *Course) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n", c, c.PrerequisitesLine())
	return err
}
