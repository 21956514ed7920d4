package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openstack-i18n-kr/zanata2weblate/internal/i18n"
	"github.com/openstack-i18n-kr/zanata2weblate/internal/testutil"
)

func TestMain(m *testing.M) {
	i18n.SetLocale(i18n.LocaleEN)
	os.Exit(m.Run())
}

const koStats = `[
	{"savedDate":"2024-05-01","projectSlug":"i18n","projectName":"i18n","versionSlug":"master",
	 "localeId":"ko","localeDisplayName":"Korean","savedState":"Translated","wordCount":100},
	{"savedDate":"2024-05-02","projectSlug":"i18n","projectName":"i18n","versionSlug":"master",
	 "localeId":"ko","localeDisplayName":"Korean","savedState":"Approved","wordCount":20}
]`

const jaStats = `[
	{"savedDate":"2024-05-03","projectSlug":"i18n","projectName":"i18n","versionSlug":"master",
	 "localeId":"ja","localeDisplayName":"Japanese","savedState":"NeedReview","wordCount":5}
]`

type harness struct {
	app    *App
	stderr *bytes.Buffer
	server *testutil.FakeWeblate
	team   string
	config string
	out    string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	for _, key := range []string{"WEBLATE_URL", "WEBLATE_KEY"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	fw := testutil.NewFakeWeblate(t, "secret")
	fw.SetProjects("i18n")
	fw.SetUserStatistics("1001", koStats)
	fw.SetUserStatistics("2001", jaStats)

	app := NewApp()
	stderr := &bytes.Buffer{}
	app.Stdout = &bytes.Buffer{}
	app.Stderr = stderr
	app.Now = func() time.Time { return fixedNow }
	app.EnvFiles = nil
	app.formatter.SetColorEnabled(false)

	return &harness{
		app:    app,
		stderr: stderr,
		server: fw,
		team:   testutil.WriteTeamFile(t, testutil.SampleTeams),
		config: testutil.WriteConfigFile(t, fw.URL(), "secret"),
		out:    filepath.Join(t.TempDir(), "out"),
	}
}

func (h *harness) run(args ...string) int {
	full := append([]string{AppName, "--config", h.config}, args...)
	return h.app.Run(full)
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestRun_CSV(t *testing.T) {
	h := newHarness(t)
	out := h.out + ".csv"

	code := h.run("-o", out, h.team)

	require.Equal(t, 0, code, h.stderr.String())
	assert.Equal(t, []string{
		"user_id,lang,project,version,translation-total,translated,needReview,approved,rejected,review-total,review-approved,review-rejected",
		"2001,ja,-,-,5,0,5,0,0,0,0,0",
		"1001,ko,-,-,120,100,0,20,0,20,20,0",
	}, readLines(t, out))
	assert.Contains(t, h.stderr.String(), "Stats has been written to "+out)
	assert.Contains(t, h.stderr.String(), "run_id=")
}

func TestRun_IncludeNoActivitiesAndDetail(t *testing.T) {
	h := newHarness(t)
	out := h.out + ".csv"

	code := h.run("-o", out, "--detail", "--include-no-activities", h.team)

	require.Equal(t, 0, code, h.stderr.String())
	assert.Equal(t, []string{
		"user_id,lang,project,version,translation-total,translated,needReview,approved,rejected,review-total,review-approved,review-rejected",
		"2001,ja,i18n,master,5,0,5,0,0,0,0,0",
		"2001,ja,-,-,5,0,5,0,0,0,0,0",
		"1001,ko,i18n,master,120,100,0,20,0,20,20,0",
		"1001,ko,-,-,120,100,0,20,0,20,20,0",
		"1002,ko,-,-,0,0,0,0,0,0,0,0",
	}, readLines(t, out))
}

func TestRun_JSON(t *testing.T) {
	h := newHarness(t)
	out := h.out + ".json"

	code := h.run("-f", "json", "-o", out, "-l", "ko", h.team)

	require.Equal(t, 0, code, h.stderr.String())
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.JSONEq(t, `[{
		"lang": "ko",
		"user_id": "1001",
		"stats": {
			"review-stats": {"Approved": 20, "Rejected": 0, "total": 20},
			"translation-stats": {"Approved": 20, "NeedReview": 0, "Rejected": 0, "Translated": 100, "total": 120}
		}
	}]`, string(data))
	assert.NotContains(t, h.server.Requests(), "/api/users/2001/statistics/")
}

func TestRun_DefaultOutputPath(t *testing.T) {
	h := newHarness(t)
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	code := h.run("-f", "json", h.team)

	require.Equal(t, 0, code, h.stderr.String())
	testutil.AssertFileExists(t, filepath.Join(dir, "weblate_stats_output.json"))
}

func TestRun_UnknownLanguageFailsBeforeNetwork(t *testing.T) {
	h := newHarness(t)

	code := h.run("-o", h.out, "-l", "ko,xx,yy", h.team)

	assert.Equal(t, 1, code)
	assert.Contains(t, h.stderr.String(), "xx, yy")
	assert.Empty(t, h.server.Requests())
	testutil.AssertFileNotExists(t, h.out)
}

func TestRun_MissingCredentialFailsBeforeNetwork(t *testing.T) {
	h := newHarness(t)
	h.config = testutil.WriteConfigFile(t, h.server.URL(), "")

	code := h.run("-o", h.out, h.team)

	assert.Equal(t, 1, code)
	assert.Contains(t, h.stderr.String(), "Weblate API key is not configured")
	assert.Empty(t, h.server.Requests())
}

func TestRun_InvalidInputs(t *testing.T) {
	tests := []struct {
		name string
		args func(h *harness) []string
		want string
	}{
		{"bad format", func(h *harness) []string { return []string{"-f", "xml", h.team} }, "Invalid output format: xml"},
		{"bad date", func(h *harness) []string { return []string{"-s", "01/02/2024", h.team} }, "Invalid date format"},
		{"missing team file", func(h *harness) []string { return []string{filepath.Join(t.TempDir(), "none.yaml")} }, "File not found"},
		{"no arguments", func(h *harness) []string { return nil }, "A language team file must be specified"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)

			code := h.run(tt.args(h)...)

			assert.Equal(t, 1, code)
			assert.Contains(t, h.stderr.String(), tt.want)
			assert.Empty(t, h.server.Requests())
		})
	}
}

func TestRun_ReversedDatesOnlyWarn(t *testing.T) {
	h := newHarness(t)
	out := h.out + ".csv"

	code := h.run("-o", out, "-s", "2024-02-01", "-e", "2024-01-01", h.team)

	require.Equal(t, 0, code, h.stderr.String())
	assert.Contains(t, h.stderr.String(), "Start date is after end date")
	assert.Contains(t, h.stderr.String(), "start_date=2024-02-01")
	assert.Contains(t, readLines(t, out), "1001,ko,-,-,120,100,0,20,0,20,20,0")
}

func TestRun_DebugLogsProjectProgress(t *testing.T) {
	h := newHarness(t)
	h.server.SetProjectStatistics("i18n", `{"name":"i18n","total_words":400,"translated_words":102,"translated_percent":25.5}`)

	code := h.run("-o", h.out+".csv", "--debug", h.team)

	require.Equal(t, 0, code, h.stderr.String())
	assert.Contains(t, h.server.Requests(), "/api/projects/i18n/statistics/")
	assert.Contains(t, h.stderr.String(), "Project progress")
	assert.Contains(t, h.stderr.String(), "project=i18n")
	assert.Contains(t, h.stderr.String(), "percent=25.5")
}

func TestRun_ProjectProgressOnlyInDebug(t *testing.T) {
	h := newHarness(t)

	code := h.run("-o", h.out+".csv", h.team)

	require.Equal(t, 0, code, h.stderr.String())
	assert.NotContains(t, h.server.Requests(), "/api/projects/i18n/statistics/")
}

func TestRun_RemoteErrorAbortsRun(t *testing.T) {
	h := newHarness(t)
	h.config = testutil.WriteConfigFile(t, h.server.URL(), "wrong-token")

	code := h.run("-o", h.out, h.team)

	assert.Equal(t, 1, code)
	assert.Contains(t, h.stderr.String(), "Error while reading uri "+h.server.URL()+"/api/projects/")
	testutil.AssertFileNotExists(t, h.out)
}

func TestRun_Help(t *testing.T) {
	h := newHarness(t)
	stdout := &bytes.Buffer{}
	h.app.Stdout = stdout

	code := h.app.Run([]string{AppName, "--help"})

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "--target-version")
}
