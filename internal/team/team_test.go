package team

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openstack-i18n-kr/zanata2weblate/internal/errors"
)

const sampleTeams = `
ko:
  language: Korean
  translators:
    - 1001
    - "1002"
    - ian-y
  reviewers: [1001]
  coordinators:
    - 0042
ja:
  language: Japanese
  translators: [akiko]
zh_Hans:
  language: Chinese (Simplified)
  translators: []
`

func TestLoadBytes_AllTeams(t *testing.T) {
	teams, err := LoadBytes([]byte(sampleTeams), nil)
	require.NoError(t, err)
	require.Len(t, teams, 3)

	ko := teams[0]
	assert.Equal(t, "ko", ko.LanguageCode)
	assert.Equal(t, "Korean", ko.Language)
	assert.Equal(t, []string{"1001", "1002", "ian-y"}, ko.Translators)
	assert.Equal(t, []string{"1001"}, ko.Reviewers)
	assert.Equal(t, []string{"0042"}, ko.Coordinators)

	assert.Equal(t, "ja", teams[1].LanguageCode)
	assert.Empty(t, teams[1].Reviewers)
	assert.NotNil(t, teams[1].Coordinators)

	assert.Equal(t, "zh_Hans", teams[2].LanguageCode)
	assert.Empty(t, teams[2].Translators)
}

func TestLoadBytes_LanguageFilter(t *testing.T) {
	teams, err := LoadBytes([]byte(sampleTeams), []string{"zh_Hans", "ko"})
	require.NoError(t, err)

	var codes []string
	for _, team := range teams {
		codes = append(codes, team.LanguageCode)
	}
	assert.Equal(t, []string{"ko", "zh_Hans"}, codes)
}

func TestLoadBytes_UnknownLanguage(t *testing.T) {
	_, err := LoadBytes([]byte(sampleTeams), []string{"ko", "xx", "yy"})
	require.Error(t, err)

	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
	assert.Contains(t, err.Error(), "xx, yy")
}

func TestLoadBytes_InvalidTeams(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		errType errors.ErrorType
	}{
		{
			name:    "missing translators",
			input:   "ko:\n  language: Korean\n",
			errType: errors.ErrorTypeConfig,
		},
		{
			name:    "missing language name",
			input:   "ko:\n  translators: [a]\n",
			errType: errors.ErrorTypeConfig,
		},
		{
			name:    "null translator",
			input:   "ko:\n  language: Korean\n  translators: [a, ~]\n",
			errType: errors.ErrorTypeConfig,
		},
		{
			name:    "nested translator",
			input:   "ko:\n  language: Korean\n  translators: [[a]]\n",
			errType: errors.ErrorTypeData,
		},
		{
			name:    "top level sequence",
			input:   "- ko\n- ja\n",
			errType: errors.ErrorTypeData,
		},
		{
			name:    "duplicate language",
			input:   "ko:\n  language: Korean\n  translators: [a]\nko:\n  language: Korean\n  translators: [b]\n",
			errType: errors.ErrorTypeData,
		},
		{
			name:    "broken yaml",
			input:   "ko: [",
			errType: errors.ErrorTypeData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadBytes([]byte(tt.input), nil)
			require.Error(t, err)
			assert.True(t, errors.IsType(err, tt.errType), "unexpected error: %v", err)
		})
	}
}

func TestLoadBytes_Empty(t *testing.T) {
	teams, err := LoadBytes([]byte(""), nil)
	require.NoError(t, err)
	assert.Empty(t, teams)

	_, err = LoadBytes([]byte(""), []string{"ko"})
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "translation_team.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleTeams), 0644))

	teams, err := Load(path, []string{"ja"})
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, []string{"akiko"}, teams[0].Translators)

	_, err = Load(filepath.Join(dir, "missing.yaml"), nil)
	assert.True(t, errors.IsType(err, errors.ErrorTypeFile))

	_, err = Load(path, []string{"de"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
