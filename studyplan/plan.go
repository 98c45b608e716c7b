//go:build !solution

package studyplan

import (
	"errors"
	"fmt"

	"gitlab.com/slon/courseplanner/course"
)

var (
	ErrNotFound = errors.New("course not found")
	ErrCycle    = errors.New("prerequisite cycle")
)

// LookupFunc resolves a course number, catalog.Catalog.Lookup fits.
type LookupFunc func(number string) (*course.Course, bool)

type visitState int

const (
	unvisited visitState = iota
	visiting
	visited
)

type planner struct {
	lookup LookupFunc
	state  map[string]visitState
	order  []string
}

// Plan lists number and everything it transitively requires so that every
// course comes after its prerequisites; number itself is last. Prerequisites
// missing from the catalog are listed as courses without prerequisites.
func Plan(lookup LookupFunc, number string) ([]string, error) {
	root, ok := lookup(number)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, number)
	}

	p := &planner{lookup: lookup, state: make(map[string]visitState)}
	if err := p.visit(root.Number, root.Prerequisites); err != nil {
		return nil, err
	}
	return p.order, nil
}

func (p *planner) visit(number string, prereqs []string) error {
	p.state[number] = visiting

	for _, dep := range prereqs {
		switch p.state[dep] {
		case visited:
			continue
		case visiting:
			return fmt.Errorf("%w: %s requires %s", ErrCycle, number, dep)
		}

		var depPrereqs []string
		if c, ok := p.lookup(dep); ok {
			depPrereqs = c.Prerequisites
		}
		if err := p.visit(dep, depPrereqs); err != nil {
			return err
		}
	}

	p.state[number] = visited
	p.order = append(p.order, number)
	return nil
}
