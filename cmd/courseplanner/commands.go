//go:build !solution

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"gitlab.com/slon/courseplanner/catalog"
	"gitlab.com/slon/courseplanner/config"
	"gitlab.com/slon/courseplanner/course"
	"gitlab.com/slon/courseplanner/ingest"
	"gitlab.com/slon/courseplanner/menu"
	"gitlab.com/slon/courseplanner/metrics"
	"gitlab.com/slon/courseplanner/studyplan"
)

var errCourseNotFound = errors.New("course not found")

// app holds the state shared by all commands of one invocation.
type app struct {
	configPath string
	source     string
	logLevel   string

	cfg      *config.Config
	logger   *zap.Logger
	registry *prometheus.Registry
	catalog  *catalog.Catalog
	loader   *ingest.Loader
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "courseplanner",
		Short: "Course planner",
		Long: "Loads the course catalog and lets you list all courses or look up a single\n" +
			"course with its prerequisites. Without a subcommand an interactive menu is started.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.teardown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			m := menu.New(a.catalog, a.loader, a.cfg.Source, cmd.InOrStdin(), cmd.OutOrStdout(),
				menu.WithLogger(a.logger))
			return m.Run(cmd.Context())
		},
	}

	a.bindFlags(root.PersistentFlags())
	root.AddCommand(newListCmd(a), newShowCmd(a), newPlanCmd(a))
	return root
}

// bindFlags registers overrides for the config file values.
func (a *app) bindFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&a.configPath, "config", "c", "", "path to .yaml config")
	flags.StringVar(&a.source, "source", "", "course source: text file, .xlsx workbook or postgres:// DSN")
	flags.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every course ordered by number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd.Context()); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for c := range a.catalog.All() {
				fmt.Fprintln(out, c)
			}
			return nil
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <number>",
		Short: "Print a course with its prerequisites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd.Context()); err != nil {
				return err
			}
			number := strings.ToUpper(args[0])
			c, ok := a.catalog.Lookup(number)
			if !ok {
				return fmt.Errorf("%w: %s", errCourseNotFound, number)
			}
			return course.WriteDetails(cmd.OutOrStdout(), c)
		},
	}
}

func newPlanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "plan <number>",
		Short: "Print a course and everything it requires, prerequisites first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd.Context()); err != nil {
				return err
			}
			plan, err := studyplan.Plan(a.catalog.Lookup, strings.ToUpper(args[0]))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, number := range plan {
				if c, ok := a.catalog.Lookup(number); ok {
					fmt.Fprintln(out, c)
				} else {
					fmt.Fprintln(out, number)
				}
			}
			return nil
		},
	}
}

func (a *app) setup(logOut io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.source != "" {
		cfg.Source = a.source
	}
	if a.logLevel != "" {
		cfg.LogLevel = strings.ToLower(a.logLevel)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, _ := cfg.Level()

	a.cfg = cfg
	a.logger = zap.New(zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(logOut),
		level,
	))

	a.registry = prometheus.NewRegistry()
	m, err := metrics.New(a.registry)
	if err != nil {
		return err
	}

	a.catalog = catalog.New(
		catalog.WithLogger(a.logger),
		catalog.WithMetrics(m),
		catalog.WithCacheSize(cfg.CacheSize),
	)
	a.loader = ingest.NewLoader(
		ingest.WithLogger(a.logger),
		ingest.WithMetrics(m),
		ingest.WithQuery(cfg.SQLQuery),
	)

	a.logger.Debug("configured",
		zap.String("source", cfg.Source),
		zap.Int("cache_size", cfg.CacheSize),
		zap.String("config", a.configPath),
	)
	return nil
}

func (a *app) teardown() error {
	defer func() { _ = a.logger.Sync() }()

	if a.cfg.MetricsFile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(a.cfg.MetricsFile, a.registry); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}

func (a *app) load(ctx context.Context) error {
	b, err := a.loader.Load(ctx, a.cfg.Source)
	if errors.Is(err, ingest.ErrSourceUnavailable) {
		return fmt.Errorf("could not open file '%s': %w", a.cfg.Source, err)
	}
	if err != nil {
		return fmt.Errorf("could not load courses from '%s': %w", a.cfg.Source, err)
	}
	a.catalog.InsertAll(b.Courses)
	return nil
}
