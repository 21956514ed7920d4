// Package config は Weblate の接続情報を読み込む
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	apperrors "github.com/openstack-i18n-kr/zanata2weblate/internal/errors"
	"github.com/openstack-i18n-kr/zanata2weblate/internal/utils"
)

// DefaultURL is used when neither the file nor the environment sets a URL
const DefaultURL = "https://openstack.weblate.cloud"

// Config holds the Weblate credentials
type Config struct {
	URL string `mapstructure:"url" validate:"required,url"`
	Key string `mapstructure:"key" validate:"required"`
	// Path is the credential file that was consulted
	Path string `mapstructure:"-" validate:"-"`
}

var validate = validator.New()

// DefaultPath returns ~/.config/weblate.ini
func DefaultPath() string {
	return filepath.Join(utils.ExpandHome("~"), ".config", "weblate.ini")
}

// Load reads credentials from the INI file at path (section [weblate],
// keys url and key). A missing file is not an error as long as the
// environment supplies the key. WEBLATE_URL and WEBLATE_KEY override the
// file; envFiles are loaded into the environment first when they exist.
func Load(path string, envFiles ...string) (*Config, error) {
	if err := loadEnvFiles(envFiles); err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultPath()
	}
	path = utils.ExpandHome(path)

	v := viper.New()
	v.SetConfigType("ini")
	v.SetDefault("weblate.url", DefaultURL)
	_ = v.BindEnv("weblate.url", "WEBLATE_URL")
	_ = v.BindEnv("weblate.key", "WEBLATE_KEY")

	if utils.FileExists(path) {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, apperrors.WrapError(err, apperrors.ErrorTypeConfig, "config_read_failed", path)
		}
	}

	cfg := &Config{
		URL:  strings.TrimSpace(v.GetString("weblate.url")),
		Key:  strings.TrimSpace(v.GetString("weblate.key")),
		Path: path,
	}
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}

	if cfg.Key == "" {
		return nil, apperrors.MissingCredential(path)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, apperrors.WrapError(err, apperrors.ErrorTypeConfig, "config_invalid", path).
			WithSuggestions(apperrors.MissingCredential(path).GetSuggestions()...)
	}

	return cfg, nil
}

func loadEnvFiles(envFiles []string) error {
	var existing []string
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		} else if !errors.Is(err, os.ErrNotExist) {
			return apperrors.WrapError(err, apperrors.ErrorTypeConfig, "config_read_failed", f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return apperrors.WrapError(err, apperrors.ErrorTypeConfig, "config_read_failed", strings.Join(existing, ", "))
	}
	return nil
}
