//go:build !solution

package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"gitlab.com/slon/courseplanner/catalog"
	"gitlab.com/slon/courseplanner/course"
	"gitlab.com/slon/courseplanner/ingest"
)

const options = `
1. Load Data Structure.
2. Print Course List.
3. Print Course.
9. Exit.
What would you like to do? `

// Loader is satisfied by *ingest.Loader.
type Loader interface {
	Load(ctx context.Context, source string) (*ingest.Batch, error)
}

// Menu is the interactive planner session. Input is read as whitespace
// separated tokens.
type Menu struct {
	catalog *catalog.Catalog
	loader  Loader
	source  string
	in      *bufio.Scanner
	out     io.Writer
	logger  *zap.Logger
}

type Option func(*Menu)

func WithLogger(l *zap.Logger) Option {
	return func(m *Menu) { m.logger = l }
}

func New(c *catalog.Catalog, l Loader, source string, in io.Reader, out io.Writer, opts ...Option) *Menu {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	m := &Menu{
		catalog: c,
		loader:  l,
		source:  source,
		in:      scanner,
		out:     out,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run shows the menu until the user picks 9 or the input ends.
func (m *Menu) Run(ctx context.Context) error {
	m.printf("Welcome to the course planner.\n")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.printf("%s", options)
		token, ok := m.next()
		if !ok {
			return m.in.Err()
		}

		choice, err := strconv.Atoi(token)
		if err != nil {
			m.printf("%s is not a valid option.\n", token)
			continue
		}

		switch choice {
		case 1:
			m.load(ctx)
		case 2:
			m.list()
		case 3:
			if !m.show() {
				return m.in.Err()
			}
		case 9:
			m.printf("Thank you for using the course planner!\n")
			return nil
		default:
			m.printf("%d is not a valid option.\n", choice)
		}
	}
}

func (m *Menu) next() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}

func (m *Menu) load(ctx context.Context) {
	m.printf("Loading data from %s...\n", m.source)

	b, err := m.loader.Load(ctx, m.source)
	switch {
	case errors.Is(err, ingest.ErrSourceUnavailable):
		m.printf("Error: Could not open file '%s'.\n", m.source)
		return
	case err != nil:
		m.printf("Error: Could not load courses from '%s': %v\n", m.source, err)
		return
	}

	m.catalog.InsertAll(b.Courses)
	m.logger.Info("catalog loaded",
		zap.Stringer("batch_id", b.ID),
		zap.Int("courses", m.catalog.Len()),
	)
	m.printf("Courses successfully loaded from '%s'!\n", m.source)
}

func (m *Menu) list() {
	m.printf("Here is a sample schedule:\n")
	for c := range m.catalog.All() {
		m.printf("%s\n", c)
	}
}

// show returns false when the input ended before a course number was read.
func (m *Menu) show() bool {
	m.printf("What course do you want to know about? ")
	number, ok := m.next()
	if !ok {
		return false
	}

	c, found := m.catalog.Lookup(strings.ToUpper(number))
	if !found {
		m.printf("Course not found.\n")
		return true
	}
	if err := course.WriteDetails(m.out, c); err != nil {
		m.logger.Warn("write course", zap.Error(err))
	}
	return true
}

func (m *Menu) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(m.out, format, args...); err != nil {
		m.logger.Warn("write output", zap.Error(err))
	}
}
