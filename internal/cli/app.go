package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/openstack-i18n-kr/zanata2weblate/internal/config"
	"github.com/openstack-i18n-kr/zanata2weblate/internal/errors"
	"github.com/openstack-i18n-kr/zanata2weblate/internal/logger"
	"github.com/openstack-i18n-kr/zanata2weblate/internal/period"
	"github.com/openstack-i18n-kr/zanata2weblate/internal/report"
	"github.com/openstack-i18n-kr/zanata2weblate/internal/team"
	"github.com/openstack-i18n-kr/zanata2weblate/internal/weblate"
)

const (
	// Version はアプリケーションのバージョン
	Version = "0.3.0"
	// AppName はアプリケーション名
	AppName = "weblate-stats"
)

// SourceFactory builds the statistics source for a run
type SourceFactory func(cfg *config.Config, verify bool, log logger.Logger) StatsSource

// DefaultSourceFactory returns a weblate.Client over HTTP
func DefaultSourceFactory(cfg *config.Config, verify bool, log logger.Logger) StatsSource {
	fetcher := weblate.NewHTTPFetcher(cfg.Key, verify, log)
	return weblate.NewClient(cfg.URL, fetcher, log)
}

// App はCLIアプリケーションを表す
type App struct {
	Stdout    io.Writer
	Stderr    io.Writer
	Now       func() time.Time
	NewSource SourceFactory
	// EnvFiles are loaded into the environment before reading credentials
	EnvFiles []string

	formatter *errors.ErrorFormatter
}

// NewApp は新しいCLIアプリケーションを作成する
func NewApp() *App {
	formatter := errors.NewErrorFormatter()
	formatter.SetColorEnabled(isTerminal(os.Stderr))

	return &App{
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		Now:       time.Now,
		NewSource: DefaultSourceFactory,
		EnvFiles:  []string{".env"},
		formatter: formatter,
	}
}

// Run はCLIアプリケーションを実行する. args includes the program name.
func (a *App) Run(args []string) int {
	if len(args) > 0 {
		args = args[1:]
	}

	opts, err := ParseOptions(args, a.Now(), a.Stdout)
	if err == pflag.ErrHelp {
		return 0
	}
	if err != nil {
		return a.fail(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := a.run(ctx, opts); err != nil {
		return a.fail(err)
	}
	return 0
}

func (a *App) run(ctx context.Context, opts *Options) error {
	level := "info"
	if opts.Debug {
		level = "debug"
	}
	log := logger.New(level, "text", a.Stderr).WithField("run_id", uuid.NewString())

	format, err := report.ParseFormat(opts.Format)
	if err != nil {
		return err
	}

	// Local inputs are checked before any network activity
	cfg, err := config.Load(opts.ConfigPath, a.EnvFiles...)
	if err != nil {
		return err
	}
	log.Debug("Loaded credentials", logger.F("config", cfg.Path), logger.F("url", cfg.URL))

	teams, err := team.Load(opts.TeamFile, opts.Langs)
	if err != nil {
		return err
	}

	rng, err := period.ParseFromTo(opts.StartDate, opts.EndDate)
	if err != nil {
		return err
	}
	if rng.Reversed() {
		// Weblate statistics are not filtered by date
		log.Warn("Start date is after end date",
			logger.F("start_date", opts.StartDate),
			logger.F("end_date", opts.EndDate),
		)
	}

	source := a.NewSource(cfg, !opts.NoVerify, log)
	users, err := NewStatsHandler(source, log).Collect(ctx, teams, Filter{
		Projects: opts.Projects,
		Versions: opts.Versions,
		Users:    opts.Users,
		Range:    *rng,

		DescribeProjects: opts.Debug,
	})
	if err != nil {
		return err
	}

	output := opts.OutputFile
	if output == "" {
		output = report.DefaultOutputPath(format)
	}

	writer := report.NewWriter(report.Options{
		Format:            format,
		Detail:            opts.Detail,
		IncludeNoActivity: opts.IncludeNoActivities,
	}, log)
	return writer.Write(output, users)
}

func (a *App) fail(err error) int {
	formatter := a.formatter
	if formatter == nil {
		formatter = errors.NewErrorFormatter()
		formatter.SetColorEnabled(false)
	}
	fmt.Fprintln(a.Stderr, formatter.Format(err))
	return 1
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
