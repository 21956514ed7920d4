// Package report はユーザー統計を CSV / JSON で出力する
package report

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/openstack-i18n-kr/zanata2weblate/internal/errors"
	"github.com/openstack-i18n-kr/zanata2weblate/internal/logger"
	"github.com/openstack-i18n-kr/zanata2weblate/internal/stats"
)

// Format is an output file format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// TotalKey is the key holding the grand total in detailed JSON output
const TotalKey = "__total__"

// ParseFormat validates a --format value
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", errors.InvalidOutputFormat(s)
}

// DefaultOutputPath returns weblate_stats_output.<format>
func DefaultOutputPath(f Format) string {
	return "weblate_stats_output." + string(f)
}

// Options controls what a Writer renders
type Options struct {
	Format            Format
	Detail            bool
	IncludeNoActivity bool
}

// Writer renders users to a file or stream
type Writer struct {
	opts Options
	log  logger.Logger
}

// NewWriter creates a Writer. An empty format means CSV.
func NewWriter(opts Options, log logger.Logger) *Writer {
	if opts.Format == "" {
		opts.Format = FormatCSV
	}
	return &Writer{opts: opts, log: log}
}

// Write renders users to path, replacing any existing file
func (w *Writer) Write(path string, users []*stats.User) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.WrapError(err, errors.ErrorTypeFile, "output_write_failed", path)
	}

	buf := bufio.NewWriter(f)
	if err := w.WriteTo(buf, users); err != nil {
		f.Close()
		return errors.WrapError(err, errors.ErrorTypeFile, "output_write_failed", path)
	}
	if err := buf.Flush(); err != nil {
		f.Close()
		return errors.WrapError(err, errors.ErrorTypeFile, "output_write_failed", path)
	}
	if err := f.Close(); err != nil {
		return errors.WrapError(err, errors.ErrorTypeFile, "output_write_failed", path)
	}

	w.log.Info("Stats has been written to "+path, logger.F("format", string(w.opts.Format)))
	return nil
}

// WriteTo renders users to out
func (w *Writer) WriteTo(out io.Writer, users []*stats.User) error {
	selected := Select(users, w.opts.IncludeNoActivity)
	w.log.Debug("Rendering report",
		logger.F("users", len(selected)),
		logger.F("detail", w.opts.Detail),
	)

	switch w.opts.Format {
	case FormatCSV:
		return writeCSV(out, selected, w.opts.Detail)
	case FormatJSON:
		return w.writeJSON(out, selected)
	}
	return errors.InvalidOutputFormat(string(w.opts.Format))
}

// Select returns the users that belong in the report, sorted by language
// and user ID. Totals are refreshed on the returned users.
func Select(users []*stats.User, includeNoActivity bool) []*stats.User {
	selected := make([]*stats.User, 0, len(users))
	for _, u := range users {
		if u.NeedsOutput(includeNoActivity) {
			u.PopulateTotalStats()
			selected = append(selected, u)
		}
	}
	stats.SortUsers(selected)
	return selected
}

// Header returns the CSV column names
func Header() []string {
	return []string{
		"user_id",
		"lang",
		"project",
		"version",
		"translation-total",
		"translated",
		"needReview",
		"approved",
		"rejected",
		"review-total",
		"review-approved",
		"review-rejected",
	}
}

func row(u *stats.User, project, version string, vs stats.VersionStats) []string {
	r := []string{u.UserID, u.Lang, project, version}
	for _, v := range vs.Translation.Values() {
		r = append(r, strconv.Itoa(v))
	}
	for _, v := range vs.Review.Values() {
		r = append(r, strconv.Itoa(v))
	}
	return r
}

// Rows flattens a user into CSV rows: one per bucket when detail is set,
// then always the total row.
func Rows(u *stats.User, detail bool) [][]string {
	var rows [][]string
	if detail {
		for _, b := range u.Buckets() {
			rows = append(rows, row(u, b.Project, b.Version, b.Stats))
		}
	}
	return append(rows, row(u, "-", "-", u.Totals))
}

func writeCSV(out io.Writer, users []*stats.User, detail bool) error {
	cw := csv.NewWriter(out)
	if err := cw.Write(Header()); err != nil {
		return err
	}
	for _, u := range users {
		if err := cw.WriteAll(Rows(u, detail)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type entry struct {
	Lang   string      `json:"lang"`
	Stats  interface{} `json:"stats"`
	UserID string      `json:"user_id"`
}

// serializable shapes one user for JSON output. In detail mode the grand
// total is stored under TotalKey and replaces a project of the same name.
func (w *Writer) serializable(u *stats.User) entry {
	e := entry{Lang: u.Lang, UserID: u.UserID, Stats: u.Totals}
	if !w.opts.Detail {
		return e
	}
	if _, ok := u.Projects[TotalKey]; ok {
		w.log.Warn("Project name collides with the total key, its detail is replaced by the total",
			logger.F("project", TotalKey),
			logger.F("user_id", u.UserID),
			logger.F("lang", u.Lang),
		)
	}

	projects := make(map[string]interface{}, len(u.Projects)+1)
	for project, versions := range u.Projects {
		vm := make(map[string]stats.VersionStats, len(versions))
		for version, vs := range versions {
			vm[version] = *vs
		}
		projects[project] = vm
	}
	projects[TotalKey] = u.Totals
	e.Stats = projects
	return e
}

func (w *Writer) writeJSON(out io.Writer, users []*stats.User) error {
	entries := make([]entry, 0, len(users))
	for _, u := range users {
		entries = append(entries, w.serializable(u))
	}

	data, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	_, err = out.Write(append(data, '\n'))
	return err
}
