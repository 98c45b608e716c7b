package menu

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"gitlab.com/slon/courseplanner/catalog"
	"gitlab.com/slon/courseplanner/course"
	"gitlab.com/slon/courseplanner/ingest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeLoader struct {
	courses []*course.Course
	err     error
	calls   int
}

func (f *fakeLoader) Load(_ context.Context, source string) (*ingest.Batch, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &ingest.Batch{ID: uuid.Must(uuid.NewV4()), Source: source, Courses: f.courses}, nil
}

func scenario() *fakeLoader {
	return &fakeLoader{courses: []*course.Course{
		ingest.ParseLine("CS101,Intro,"),
		ingest.ParseLine("CS050,Fundamentals,"),
		ingest.ParseLine("CS200,Data Structures,CS101,CS050"),
	}}
}

func run(t *testing.T, c *catalog.Catalog, l Loader, input string) string {
	t.Helper()

	var out strings.Builder
	m := New(c, l, "courses.csv", strings.NewReader(input), &out, WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, m.Run(context.Background()))
	return out.String()
}

func transcript(parts ...string) string {
	var b strings.Builder
	b.WriteString("Welcome to the course planner.\n")
	for _, p := range parts {
		b.WriteString(options)
		b.WriteString(p)
	}
	return b.String()
}

func TestExitOnly(t *testing.T) {
	out := run(t, catalog.New(), scenario(), "9\n")
	require.Equal(t, transcript("Thank you for using the course planner!\n"), out)
}

func TestScenario(t *testing.T) {
	c := catalog.New()
	out := run(t, c, scenario(), "1 2 3 cs200 3 cs999 9")

	require.Equal(t, transcript(
		"Loading data from courses.csv...\nCourses successfully loaded from 'courses.csv'!\n",
		"Here is a sample schedule:\nCS050, Fundamentals\nCS101, Intro\nCS200, Data Structures\n",
		"What course do you want to know about? CS200, Data Structures\nPrerequisites: CS101, CS050\n",
		"What course do you want to know about? Course not found.\n",
		"Thank you for using the course planner!\n",
	), out)
	require.Equal(t, 3, c.Len())
}

func TestNoPrerequisites(t *testing.T) {
	out := run(t, catalog.New(), scenario(), "1\n3\nCs101\n9\n")
	require.Contains(t, out, "CS101, Intro\nPrerequisites: None\n")
}

func TestListEmpty(t *testing.T) {
	out := run(t, catalog.New(), scenario(), "2\n9\n")
	require.Equal(t, transcript(
		"Here is a sample schedule:\n",
		"Thank you for using the course planner!\n",
	), out)
}

func TestInvalidOptions(t *testing.T) {
	out := run(t, catalog.New(), scenario(), "4 -1 abc 007 9")
	require.Equal(t, transcript(
		"4 is not a valid option.\n",
		"-1 is not a valid option.\n",
		"abc is not a valid option.\n",
		"7 is not a valid option.\n",
		"Thank you for using the course planner!\n",
	), out)
}

func TestSourceUnavailable(t *testing.T) {
	c := catalog.New()
	l := &fakeLoader{err: ingest.ErrSourceUnavailable}

	out := run(t, c, l, "1 2 9")
	require.Equal(t, transcript(
		"Loading data from courses.csv...\nError: Could not open file 'courses.csv'.\n",
		"Here is a sample schedule:\n",
		"Thank you for using the course planner!\n",
	), out)
	require.Zero(t, c.Len())
}

func TestLoadFailure(t *testing.T) {
	l := &fakeLoader{err: errors.New("read line 3: boom")}

	out := run(t, catalog.New(), l, "1 9")
	require.Contains(t, out, "Error: Could not load courses from 'courses.csv': read line 3: boom\n")
}

func TestLoadTwiceKeepsDuplicates(t *testing.T) {
	c := catalog.New()
	l := scenario()

	run(t, c, l, "1 1 9")
	require.Equal(t, 2, l.calls)
	require.Equal(t, 6, c.Len())
}

func TestInputEnds(t *testing.T) {
	for _, input := range []string{"", "2", "3"} {
		t.Run(input, func(t *testing.T) {
			require.NotPanics(t, func() { run(t, catalog.New(), scenario(), input) })
		})
	}
}

func TestCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out strings.Builder
	m := New(catalog.New(), scenario(), "courses.csv", strings.NewReader("9"), &out)
	require.ErrorIs(t, m.Run(ctx), context.Canceled)
}

func TestWithRealLoader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "courses.csv")
	require.NoError(t, os.WriteFile(path, []byte(" CS101 , Intro to CS , CS100 \n"), 0o644))

	var out strings.Builder
	m := New(catalog.New(), ingest.NewLoader(), path, strings.NewReader("1 3 cs101 9"), &out)
	require.NoError(t, m.Run(context.Background()))

	require.Contains(t, out.String(), "Courses successfully loaded from '"+path+"'!\n")
	require.Contains(t, out.String(), "CS101, Intro to CS\nPrerequisites: CS100\n")

	var missing strings.Builder
	m = New(catalog.New(), ingest.NewLoader(), filepath.Join(dir, "absent.csv"), strings.NewReader("1 9"), &missing)
	require.NoError(t, m.Run(context.Background()))
	require.Contains(t, missing.String(), "Error: Could not open file '")
}
