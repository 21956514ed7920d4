package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openstack-i18n-kr/zanata2weblate/internal/errors"
)

// clearEnv unsets the credential variables for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"WEBLATE_URL", "WEBLATE_KEY"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func writeINI(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "weblate.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_FromFile(t *testing.T) {
	clearEnv(t)
	path := writeINI(t, "[weblate]\nurl = https://weblate.example.org/\nkey = wlu_secret\n")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "https://weblate.example.org/", cfg.URL)
	assert.Equal(t, "wlu_secret", cfg.Key)
	assert.Equal(t, path, cfg.Path)
}

func TestLoad_DefaultURL(t *testing.T) {
	clearEnv(t)
	path := writeINI(t, "[weblate]\nkey = wlu_secret\n")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, DefaultURL, cfg.URL)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeINI(t, "[weblate]\nurl = https://file.example.org\nkey = from_file\n")
	t.Setenv("WEBLATE_URL", "https://env.example.org")
	t.Setenv("WEBLATE_KEY", "from_env")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "https://env.example.org", cfg.URL)
	assert.Equal(t, "from_env", cfg.Key)
}

func TestLoad_MissingFileUsesEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("WEBLATE_KEY", "from_env")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.ini"))

	require.NoError(t, err)
	assert.Equal(t, "from_env", cfg.Key)
	assert.Equal(t, DefaultURL, cfg.URL)
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("WEBLATE_KEY=from_dotenv\n"), 0600))

	cfg, err := Load(filepath.Join(dir, "absent.ini"), envFile, filepath.Join(dir, "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "from_dotenv", cfg.Key)
}

func TestLoad_MissingKey(t *testing.T) {
	clearEnv(t)
	path := writeINI(t, "[weblate]\nurl = https://weblate.example.org\n")

	_, err := Load(path)

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
	assert.Contains(t, err.Error(), path)
}

func TestLoad_InvalidURL(t *testing.T) {
	clearEnv(t)
	path := writeINI(t, "[weblate]\nurl = not a url\nkey = k\n")

	_, err := Load(path)

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, filepath.Join(".config", "weblate.ini"),
		filepath.Join(filepath.Base(filepath.Dir(DefaultPath())), filepath.Base(DefaultPath())))
}
