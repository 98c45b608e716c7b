//go:build !solution

package ingest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"gitlab.com/slon/courseplanner/course"
	"gitlab.com/slon/courseplanner/metrics"
)

// ErrSourceUnavailable is returned when a source cannot be opened at all.
var ErrSourceUnavailable = errors.New("source unavailable")

// Batch is the result of one successful load.
type Batch struct {
	ID       uuid.UUID
	Source   string
	Courses  []*course.Course // in source order
	LoadedAt time.Time
}

// Loader reads every course of a source. The source kind is picked by name:
// postgres:// and postgresql:// DSNs are queried, *.xlsx files are read as
// workbooks, anything else is a comma separated text file.
type Loader struct {
	clock   clockwork.Clock
	logger  *zap.Logger
	metrics *metrics.Metrics
	query   string
}

type Option func(*Loader)

func WithClock(c clockwork.Clock) Option {
	return func(l *Loader) { l.clock = c }
}

func WithLogger(lg *zap.Logger) Option {
	return func(l *Loader) { l.logger = lg }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(l *Loader) { l.metrics = m }
}

// WithQuery overrides DefaultQuery for database sources.
func WithQuery(q string) Option {
	return func(l *Loader) {
		if q != "" {
			l.query = q
		}
	}
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		clock:  clockwork.NewRealClock(),
		logger: zap.NewNop(),
		query:  DefaultQuery,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the whole source. Nothing is returned unless every record was
// read, and the source is closed before Load returns.
func (l *Loader) Load(ctx context.Context, source string) (*Batch, error) {
	start := l.clock.Now()

	courses, err := l.read(ctx, source)
	if err != nil {
		if errors.Is(err, ErrSourceUnavailable) {
			l.metrics.ObserveLoad(metrics.LoadUnavailable)
		} else {
			l.metrics.ObserveLoad(metrics.LoadFailed)
		}
		l.logger.Warn("load failed", zap.String("source", source), zap.Error(err))
		return nil, err
	}

	b := &Batch{
		ID:       uuid.Must(uuid.NewV4()),
		Source:   source,
		Courses:  courses,
		LoadedAt: l.clock.Now(),
	}
	l.metrics.ObserveLoad(metrics.LoadOK)
	l.logger.Info("source loaded",
		zap.String("source", source),
		zap.Stringer("batch_id", b.ID),
		zap.Int("courses", len(courses)),
		zap.Duration("duration", l.clock.Since(start)),
	)
	return b, nil
}

func (l *Loader) read(ctx context.Context, source string) ([]*course.Course, error) {
	if isDSN(source) {
		return ReadSQL(ctx, source, l.query)
	}

	if err := checkFile(source); err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(source), ".xlsx") {
		return ReadXLSX(source)
	}
	return readTextFile(source)
}

func checkFile(name string) error {
	fi, err := os.Stat(name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", ErrSourceUnavailable, name)
	}
	return nil
}

func readTextFile(name string) ([]*course.Course, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer f.Close()

	return ReadCSV(f)
}
