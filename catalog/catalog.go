//go:build !solution

package catalog

import (
	"iter"

	"go.uber.org/zap"

	"gitlab.com/slon/courseplanner/bst"
	"gitlab.com/slon/courseplanner/course"
	"gitlab.com/slon/courseplanner/lrucache"
	"gitlab.com/slon/courseplanner/metrics"
)

// Catalog is the in-memory course index ordered by course number.
type Catalog struct {
	tree    *bst.Tree[string, *course.Course]
	cache   *lrucache.Cache[string, *course.Course]
	logger  *zap.Logger
	metrics *metrics.Metrics
}

type Option func(*Catalog)

func WithLogger(l *zap.Logger) Option {
	return func(c *Catalog) { c.logger = l }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Catalog) { c.metrics = m }
}

// WithCacheSize sets how many found courses are remembered. Zero disables caching.
func WithCacheSize(n int) Option {
	return func(c *Catalog) { c.cache = lrucache.New[string, *course.Course](n) }
}

func New(opts ...Option) *Catalog {
	c := &Catalog{
		tree:   bst.New(course.Key),
		cache:  lrucache.New[string, *course.Course](0),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Insert adds a course. Courses with an already present number are kept too,
// but Lookup keeps returning the first one inserted.
func (c *Catalog) Insert(crs *course.Course) {
	c.tree.Insert(crs)
	c.metrics.SetCourses(c.tree.Len())
}

// InsertAll inserts courses in slice order.
func (c *Catalog) InsertAll(courses []*course.Course) {
	for _, crs := range courses {
		c.Insert(crs)
	}
	c.logger.Debug("courses inserted",
		zap.Int("inserted", len(courses)),
		zap.Int("total", c.tree.Len()),
		zap.Int("height", c.tree.Height()),
	)
}

// All iterates over every course ordered by number.
func (c *Catalog) All() iter.Seq[*course.Course] {
	return c.tree.All()
}

// Lookup finds a course by its exact number. The number is compared as is,
// callers normalize case.
func (c *Catalog) Lookup(number string) (*course.Course, bool) {
	// A found course stays the earliest match forever, so hits never go stale.
	if crs, ok := c.cache.Get(number); ok {
		c.metrics.ObserveLookup(metrics.LookupCached)
		return crs, true
	}

	crs, ok := c.tree.Search(number)
	if !ok {
		c.metrics.ObserveLookup(metrics.LookupMiss)
		c.logger.Debug("course not found", zap.String("number", number))
		return nil, false
	}

	c.cache.Set(number, crs)
	c.metrics.ObserveLookup(metrics.LookupHit)
	return crs, true
}

func (c *Catalog) Len() int {
	return c.tree.Len()
}
