package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/openstack-i18n-kr/zanata2weblate/internal/errors"
)

// ValidateFilePath はファイルパスの存在を検証する共通関数
func ValidateFilePath(filePath string) error {
	if filePath == "" {
		return errors.NewError(errors.ErrorTypeCommand, "missing_team_file")
	}

	// ファイルが存在するかチェック
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return errors.FileNotFound(filePath)
	} else if err != nil {
		return errors.WrapError(err, errors.ErrorTypeFile, "file_read_failed", filePath)
	}

	return nil
}

// FileExists はファイルが存在するかチェックする
func FileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return !os.IsNotExist(err)
}

// ExpandHome は先頭の ~ をホームディレクトリに展開する
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
}
