package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-json"
)

// SampleTeams is a small language team declaration used across tests
const SampleTeams = `ko:
  language: Korean
  translators:
    - "1001"
    - "1002"
  reviewers:
    - "1001"
ja:
  language: Japanese
  translators:
    - "2001"
`

// CreateTestFile creates a file with specified content in the directory
func CreateTestFile(t *testing.T, dir, filename, content string) string {
	t.Helper()
	filePath := filepath.Join(dir, filename)

	// Create parent directories if needed
	parentDir := filepath.Dir(filePath)
	if err := os.MkdirAll(parentDir, 0755); err != nil {
		t.Fatalf("Failed to create parent dir: %v", err)
	}

	if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file %s: %v", filename, err)
	}

	return filePath
}

// WriteTeamFile writes a language team YAML file into a temp directory
func WriteTeamFile(t *testing.T, content string) string {
	t.Helper()
	return CreateTestFile(t, t.TempDir(), "translation_team.yaml", content)
}

// WriteConfigFile writes a weblate.ini with the given url and key
func WriteConfigFile(t *testing.T, url, key string) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("[weblate]\n")
	if url != "" {
		b.WriteString("url = " + url + "\n")
	}
	if key != "" {
		b.WriteString("key = " + key + "\n")
	}
	return CreateTestFile(t, t.TempDir(), "weblate.ini", b.String())
}

// FakeWeblate is an httptest server answering the read endpoints the stats
// tool uses
type FakeWeblate struct {
	Server *httptest.Server
	Token  string

	mu        sync.Mutex
	projects     []string
	projectStats map[string]string
	userStats    map[string]string
	requests     []string
}

// NewFakeWeblate starts a server that requires "Authorization: Token <token>".
// It is closed automatically when the test ends.
func NewFakeWeblate(t *testing.T, token string) *FakeWeblate {
	t.Helper()
	fw := &FakeWeblate{
		Token:        token,
		projectStats: make(map[string]string),
		userStats:    make(map[string]string),
	}
	fw.Server = httptest.NewServer(http.HandlerFunc(fw.serve))
	t.Cleanup(fw.Server.Close)
	return fw
}

// URL returns the base URL of the server
func (fw *FakeWeblate) URL() string {
	return fw.Server.URL
}

// SetProjects sets the slugs returned by api/projects/
func (fw *FakeWeblate) SetProjects(slugs ...string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	fw.projects = slugs
}

// SetProjectStatistics sets the raw JSON body of api/projects/<slug>/statistics/.
// Projects without one answer with an empty statistics object.
func (fw *FakeWeblate) SetProjectStatistics(slug, body string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	fw.projectStats[slug] = body
}

// SetUserStatistics sets the raw JSON body of api/users/<id>/statistics/
func (fw *FakeWeblate) SetUserStatistics(userID, body string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	fw.userStats[userID] = body
}

// Requests returns the request paths in arrival order
func (fw *FakeWeblate) Requests() []string {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	return append([]string(nil), fw.requests...)
}

func (fw *FakeWeblate) serve(w http.ResponseWriter, r *http.Request) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	fw.requests = append(fw.requests, r.URL.Path)

	if r.Header.Get("Authorization") != "Token "+fw.Token {
		http.Error(w, `{"detail":"Invalid token."}`, http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.URL.Path == "/api/projects/":
		type project struct {
			ID   int    `json:"id"`
			Name string `json:"name"`
			Slug string `json:"slug"`
		}
		page := struct {
			Count   int       `json:"count"`
			Results []project `json:"results"`
		}{Count: len(fw.projects), Results: []project{}}
		for i, slug := range fw.projects {
			page.Results = append(page.Results, project{ID: i + 1, Name: slug, Slug: slug})
		}
		_ = json.NewEncoder(w).Encode(page)

	case strings.HasPrefix(r.URL.Path, "/api/projects/") && strings.HasSuffix(r.URL.Path, "/statistics/"):
		slug := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/api/projects/"), "/statistics/")
		body, ok := fw.projectStats[slug]
		if !ok {
			if !fw.hasProject(slug) {
				http.Error(w, `{"detail":"Not found."}`, http.StatusNotFound)
				return
			}
			body = fmt.Sprintf(`{"name":%q,"total_words":0,"translated_words":0,"translated_percent":0}`, slug)
		}
		_, _ = w.Write([]byte(body))

	case strings.HasPrefix(r.URL.Path, "/api/users/") && strings.HasSuffix(r.URL.Path, "/statistics/"):
		userID := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/api/users/"), "/statistics/")
		body, ok := fw.userStats[userID]
		if !ok {
			body = "[]"
		}
		_, _ = w.Write([]byte(body))

	default:
		http.Error(w, `{"detail":"Not found."}`, http.StatusNotFound)
	}
}

func (fw *FakeWeblate) hasProject(slug string) bool {
	for _, p := range fw.projects {
		if p == slug {
			return true
		}
	}
	return false
}

// AssertNoError asserts that no error occurred
func AssertNoError(t *testing.T, err error, context string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", context, err)
	}
}

// AssertFileExists asserts that a file exists
func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatalf("Expected file to exist: %s", path)
	}
}

// AssertFileNotExists asserts that a file does not exist
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Fatalf("Expected file to not exist: %s", path)
	}
}
