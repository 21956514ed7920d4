package errors

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/openstack-i18n-kr/zanata2weblate/internal/i18n"
)

// ErrorType はエラーの種類を定義する
type ErrorType int

const (
	// ErrorTypeGeneral は一般的なエラー
	ErrorTypeGeneral ErrorType = iota
	// ErrorTypeFile はファイル関連のエラー
	ErrorTypeFile
	// ErrorTypeCommand はコマンド関連のエラー
	ErrorTypeCommand
	// ErrorTypeData はデータ関連のエラー
	ErrorTypeData
	// ErrorTypeConfig は設定関連のエラー
	ErrorTypeConfig
	// ErrorTypeNetwork はネットワーク関連のエラー
	ErrorTypeNetwork
)

// String はエラー種別の名前を返す
func (t ErrorType) String() string {
	switch t {
	case ErrorTypeFile:
		return "file"
	case ErrorTypeCommand:
		return "command"
	case ErrorTypeData:
		return "data"
	case ErrorTypeConfig:
		return "config"
	case ErrorTypeNetwork:
		return "network"
	default:
		return "general"
	}
}

// FriendlyError はユーザーフレンドリーなエラー
type FriendlyError struct {
	Type        ErrorType
	Key         string
	Args        []interface{}
	Cause       error
	Suggestions []string
}

// Error は error インターフェースを実装する
func (e *FriendlyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.GetMessage(), e.Cause)
	}
	return e.GetMessage()
}

// Unwrap は内部エラーを返す
func (e *FriendlyError) Unwrap() error {
	return e.Cause
}

// GetMessage は翻訳されたメッセージを取得する
func (e *FriendlyError) GetMessage() string {
	return i18n.T(e.Key, e.Args...)
}

// GetSuggestions は解決策の提案を取得する
func (e *FriendlyError) GetSuggestions() []string {
	return e.Suggestions
}

// NewError は新しいフレンドリーエラーを作成する
func NewError(errorType ErrorType, key string, args ...interface{}) *FriendlyError {
	return &FriendlyError{
		Type: errorType,
		Key:  key,
		Args: args,
	}
}

// WrapError は既存のエラーをラップする
func WrapError(cause error, errorType ErrorType, key string, args ...interface{}) *FriendlyError {
	return &FriendlyError{
		Type:  errorType,
		Key:   key,
		Args:  args,
		Cause: cause,
	}
}

// WithSuggestions は提案を追加する
func (e *FriendlyError) WithSuggestions(suggestions ...string) *FriendlyError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// IsType は err の連鎖に指定された種別の FriendlyError が含まれるか判定する
func IsType(err error, errorType ErrorType) bool {
	var friendly *FriendlyError
	if !stderrors.As(err, &friendly) {
		return false
	}
	return friendly.Type == errorType
}

// ErrorFormatter はエラーのフォーマッター
type ErrorFormatter struct {
	colorEnabled    bool
	showCause       bool
	showSuggestions bool
}

// NewErrorFormatter は新しいエラーフォーマッターを作成する
func NewErrorFormatter() *ErrorFormatter {
	return &ErrorFormatter{
		colorEnabled:    true,
		showCause:       true,
		showSuggestions: true,
	}
}

// SetColorEnabled はカラー表示を設定する
func (f *ErrorFormatter) SetColorEnabled(enabled bool) {
	f.colorEnabled = enabled
}

// Format はエラーをフォーマットする
func (f *ErrorFormatter) Format(err error) string {
	if err == nil {
		return ""
	}

	var result strings.Builder

	var friendlyErr *FriendlyError
	if stderrors.As(err, &friendlyErr) {
		f.formatFriendlyError(&result, friendlyErr)
	} else {
		result.WriteString(f.colorRed(fmt.Sprintf("%s: %s", i18n.T("error"), err.Error())))
	}

	return result.String()
}

// formatFriendlyError はフレンドリーエラーをフォーマットする
func (f *ErrorFormatter) formatFriendlyError(result *strings.Builder, err *FriendlyError) {
	result.WriteString(f.colorRed(fmt.Sprintf("%s [%s]: %s", i18n.T("error"), err.Type, err.GetMessage())))

	// 原因エラーを表示
	if f.showCause && err.Cause != nil {
		result.WriteString(fmt.Sprintf("\n  %s: %s", i18n.T("caused_by"), err.Cause.Error()))
	}

	// 提案を表示
	if f.showSuggestions && len(err.Suggestions) > 0 {
		result.WriteString(fmt.Sprintf("\n\n%s:", i18n.T("suggestions")))
		for _, suggestion := range err.Suggestions {
			result.WriteString(fmt.Sprintf("\n  %s %s", f.colorYellow("•"), suggestion))
		}
	}
}

// colorRed は文字列を赤色にする
func (f *ErrorFormatter) colorRed(text string) string {
	if !f.colorEnabled {
		return text
	}
	return fmt.Sprintf("\033[31m%s\033[0m", text)
}

// colorYellow は文字列を黄色にする
func (f *ErrorFormatter) colorYellow(text string) string {
	if !f.colorEnabled {
		return text
	}
	return fmt.Sprintf("\033[33m%s\033[0m", text)
}

// 便利な関数群

// FileNotFound はファイルが見つからないエラーを作成する
func FileNotFound(filePath string) *FriendlyError {
	return NewError(ErrorTypeFile, "file_not_found", filePath).
		WithSuggestions(i18n.T("suggestion_check_file_path"))
}

// MissingCredential は API キーが設定されていないエラーを作成する
func MissingCredential(configPath string) *FriendlyError {
	return NewError(ErrorTypeConfig, "config_missing_key", configPath).
		WithSuggestions(
			i18n.T("suggestion_create_config"),
			i18n.T("suggestion_env_credentials"),
		)
}

// LanguageNotFound はチームファイルに存在しない言語が指定されたエラーを作成する
func LanguageNotFound(missing []string, teamFile string, available []string) *FriendlyError {
	return NewError(ErrorTypeConfig, "language_not_found", strings.Join(missing, ", "), teamFile).
		WithSuggestions(i18n.T("suggestion_check_languages", strings.Join(available, ", ")))
}

// InvalidTeam は言語チーム定義の検証エラーを作成する
func InvalidTeam(languageCode string, reason string) *FriendlyError {
	return NewError(ErrorTypeConfig, "team_invalid", languageCode, reason).
		WithSuggestions(i18n.T("suggestion_team_file_example"))
}

// InvalidOutputFormat は不正な出力形式エラーを作成する
func InvalidOutputFormat(format string) *FriendlyError {
	return NewError(ErrorTypeCommand, "invalid_output_format", format).
		WithSuggestions(i18n.T("suggestion_valid_formats"))
}

// InvalidDateFormat は無効な日付形式エラーを作成する
func InvalidDateFormat(dateStr string) *FriendlyError {
	return NewError(ErrorTypeCommand, "invalid_date_format", dateStr).
		WithSuggestions(i18n.T("suggestion_date_example"))
}

// RequestFailed は Weblate API の読み込み失敗エラーを作成する
func RequestFailed(uri string, cause error) *FriendlyError {
	return WrapError(cause, ErrorTypeNetwork, "request_failed", uri).
		WithSuggestions(
			i18n.T("suggestion_check_network"),
			i18n.T("suggestion_no_verify"),
		)
}

// ResponseParseFailed は Weblate API のレスポンス解析失敗エラーを作成する
func ResponseParseFailed(uri string, cause error) *FriendlyError {
	return WrapError(cause, ErrorTypeData, "response_parse_failed", uri)
}

// Usage は使い方を案内する提案メッセージを返す
func Usage() string {
	return i18n.T("suggestion_usage")
}
