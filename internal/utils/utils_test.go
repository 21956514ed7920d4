package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openstack-i18n-kr/zanata2weblate/internal/errors"
)

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", []string{}},
		{"ko", []string{"ko"}},
		{"ko, ja ,zh_Hans", []string{"ko", "ja", "zh_Hans"}},
		{"a,,b,", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitAndTrim(tt.input, ","))
		})
	}
}

func TestSplitCommaList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitCommaList([]string{"a,b", "c"}))
	assert.Nil(t, SplitCommaList(nil))
}

func TestValidateFilePath(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "teams.yaml")
	require.NoError(t, os.WriteFile(existing, []byte("{}"), 0644))

	assert.NoError(t, ValidateFilePath(existing))

	err := ValidateFilePath(filepath.Join(dir, "missing.yaml"))
	assert.True(t, errors.IsType(err, errors.ErrorTypeFile))

	err = ValidateFilePath("")
	assert.True(t, errors.IsType(err, errors.ErrorTypeCommand))
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, FileExists(dir))
	assert.False(t, FileExists(filepath.Join(dir, "nope")))
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".config", "weblate.ini"), ExpandHome("~/.config/weblate.ini"))
	assert.Equal(t, "/etc/weblate.ini", ExpandHome("/etc/weblate.ini"))
	assert.Equal(t, "~user/x", ExpandHome("~user/x"))
}

func TestFormatNumber(t *testing.T) {
	tests := map[int]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		123456:   "123,456",
		1234567:  "1,234,567",
		-1234567: "-1,234,567",
	}
	for n, want := range tests {
		assert.Equal(t, want, FormatNumber(n))
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1.235s", FormatDuration(1234567*time.Microsecond))
}
