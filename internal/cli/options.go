package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"

	"github.com/openstack-i18n-kr/zanata2weblate/internal/errors"
	"github.com/openstack-i18n-kr/zanata2weblate/internal/period"
	"github.com/openstack-i18n-kr/zanata2weblate/internal/utils"
)

// Options はコマンドライン引数の解析結果
type Options struct {
	TeamFile   string `validate:"required"`
	StartDate  string `validate:"required"`
	EndDate    string `validate:"required"`
	OutputFile string
	Format     string `validate:"required"`
	ConfigPath string

	Projects []string
	Langs    []string
	Versions []string
	Users    []string

	Detail              bool
	IncludeNoActivities bool
	NoVerify            bool
	Debug               bool
}

var validate = validator.New()

func newFlagSet(opts *Options, now time.Time, out io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet(AppName, pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.SortFlags = false

	def := period.DefaultRange(now)

	fs.StringVarP(&opts.StartDate, "start-date", "s", def.From.Format(period.DateLayout),
		"Specify the start date. Default: 180 days ago.")
	fs.StringVarP(&opts.EndDate, "end-date", "e", def.To.Format(period.DateLayout),
		"Specify the end date. Default: today.")
	fs.StringVarP(&opts.OutputFile, "output-file", "o", "",
		"Specify the output file. Default: weblate_stats_output.{csv,json}.")
	fs.StringVarP(&opts.Format, "format", "f", "csv",
		"Specify the file format: csv or json.")
	fs.StringArrayVarP(&opts.Projects, "project", "p", nil,
		"Specify project(s), comma separated. Default: all projects.")
	fs.StringArrayVarP(&opts.Langs, "lang", "l", nil,
		"Specify language(s), comma separated. Default: all languages in the team file.")
	fs.StringArrayVarP(&opts.Versions, "target-version", "t", nil,
		"Specify version(s), comma separated. Default: all versions.")
	fs.StringArrayVarP(&opts.Users, "user", "u", nil,
		"Specify user ID(s), comma separated. Default: all translators.")
	fs.BoolVar(&opts.Detail, "detail", false,
		"Output statistics per project and version.")
	fs.BoolVar(&opts.IncludeNoActivities, "include-no-activities", false,
		"Include users without any activity.")
	fs.BoolVar(&opts.NoVerify, "no-verify", false,
		"Do not verify the TLS certificate of the Weblate server.")
	fs.BoolVar(&opts.Debug, "debug", false,
		"Enable debug logging.")
	fs.StringVar(&opts.ConfigPath, "config", "",
		"Specify the credential file. Default: ~/.config/weblate.ini.")

	fs.Usage = func() {
		fmt.Fprintf(out, "Usage: %s [flags] <team.yaml>\n\n", AppName)
		fmt.Fprintln(out, "Aggregate Weblate translation statistics per language team member.")
		fmt.Fprintln(out)
		fs.PrintDefaults()
	}

	return fs
}

// ParseOptions parses command line arguments (without the program name).
// pflag.ErrHelp is returned as is when --help was requested.
func ParseOptions(args []string, now time.Time, out io.Writer) (*Options, error) {
	opts := &Options{}
	fs := newFlagSet(opts, now, out)

	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil, err
		}
		return nil, errors.NewError(errors.ErrorTypeCommand, "invalid_arguments", err.Error()).
			WithSuggestions(errors.Usage())
	}

	switch fs.NArg() {
	case 0:
		return nil, errors.NewError(errors.ErrorTypeCommand, "missing_team_file").
			WithSuggestions(errors.Usage())
	case 1:
		opts.TeamFile = fs.Arg(0)
	default:
		return nil, errors.NewError(errors.ErrorTypeCommand, "invalid_arguments",
			fmt.Sprintf("unexpected %v", fs.Args()[1:])).
			WithSuggestions(errors.Usage())
	}

	opts.Projects = utils.SplitCommaList(opts.Projects)
	opts.Langs = utils.SplitCommaList(opts.Langs)
	opts.Versions = utils.SplitCommaList(opts.Versions)
	opts.Users = utils.SplitCommaList(opts.Users)

	if err := validate.Struct(opts); err != nil {
		return nil, errors.NewError(errors.ErrorTypeCommand, "invalid_arguments", err.Error()).
			WithSuggestions(errors.Usage())
	}

	return opts, nil
}
