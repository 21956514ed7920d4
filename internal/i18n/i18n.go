package i18n

import (
	"fmt"
	"os"
	"strings"
)

// Locale は言語ロケール
type Locale string

const (
	// LocaleJA は日本語
	LocaleJA Locale = "ja"
	// LocaleEN は英語
	LocaleEN Locale = "en"
)

// Messages は翻訳メッセージのマップ
type Messages map[string]string

// I18n は国際化システム
type I18n struct {
	currentLocale Locale
	messages      map[Locale]Messages
	fallback      Locale
}

// NewI18n は新しい国際化システムを作成する
func NewI18n() *I18n {
	i18n := &I18n{
		currentLocale: LocaleEN,
		messages:      make(map[Locale]Messages),
		fallback:      LocaleEN,
	}

	i18n.loadDefaultMessages()

	// 環境変数から言語設定を読み込み
	if lang := os.Getenv("WEBLATE_STATS_LANG"); lang != "" {
		i18n.SetLocale(Locale(lang))
	} else if lang := os.Getenv("LANG"); strings.HasPrefix(lang, "ja") {
		i18n.SetLocale(LocaleJA)
	}

	return i18n
}

// SetLocale は現在のロケールを設定する
func (i *I18n) SetLocale(locale Locale) {
	i.currentLocale = locale
}

// GetLocale は現在のロケールを取得する
func (i *I18n) GetLocale() Locale {
	return i.currentLocale
}

// T は翻訳を取得する（キーと引数を受け取る）
func (i *I18n) T(key string, args ...interface{}) string {
	if message, found := i.lookup(i.currentLocale, key); found {
		return format(message, args)
	}

	if i.currentLocale != i.fallback {
		if message, found := i.lookup(i.fallback, key); found {
			return format(message, args)
		}
	}

	// メッセージが見つからない場合はキーをそのまま返す
	if len(args) > 0 {
		return fmt.Sprintf("%s: %v", key, args)
	}
	return key
}

func (i *I18n) lookup(locale Locale, key string) (string, bool) {
	messages, exists := i.messages[locale]
	if !exists {
		return "", false
	}
	message, found := messages[key]
	return message, found
}

func format(message string, args []interface{}) string {
	if len(args) > 0 {
		return fmt.Sprintf(message, args...)
	}
	return message
}

// loadDefaultMessages はデフォルトの翻訳メッセージを読み込む
func (i *I18n) loadDefaultMessages() {
	i.messages[LocaleJA] = Messages{
		"error":       "エラー",
		"caused_by":   "原因",
		"suggestions": "解決策",

		// ファイル関連
		"file_not_found":      "ファイルが見つかりません: %s",
		"file_read_failed":    "ファイルの読み込みに失敗しました: %s",
		"output_write_failed": "統計の書き込みに失敗しました: %s",

		// 設定関連
		"config_read_failed":     "設定ファイルの読み込みに失敗しました: %s",
		"config_missing_key":     "Weblate の API キーが設定されていません (%s)",
		"config_invalid":         "設定が不正です: %s",
		"team_file_parse_failed": "言語チームファイルの解析に失敗しました: %s",
		"team_invalid":           "言語チーム %s の定義が不正です: %s",
		"language_not_found":     "言語 %s が %s に見つかりません",

		// コマンド関連
		"invalid_arguments":     "引数が不正です: %s",
		"missing_team_file":     "言語チームファイルを指定してください",
		"invalid_output_format": "出力形式が不正です: %s",
		"invalid_date_format":   "日付の形式が不正です (YYYY-MM-DD): %s",

		// ネットワーク・データ関連
		"request_failed":        "%s の読み込み中にエラーが発生しました",
		"response_parse_failed": "%s の JSON 解析に失敗しました",

		// 提案メッセージ
		"suggestion_check_file_path":   "ファイルパスを確認してください",
		"suggestion_create_config":     "~/.config/weblate.ini の [weblate] セクションに url と key を設定してください",
		"suggestion_env_credentials":   "環境変数 WEBLATE_URL / WEBLATE_KEY でも指定できます",
		"suggestion_check_languages":   "利用可能な言語コード: %s",
		"suggestion_valid_formats":     "有効な形式: csv, json",
		"suggestion_date_example":      "例: 2024-01-01",
		"suggestion_check_network":     "ネットワーク接続と Weblate の URL を確認してください",
		"suggestion_no_verify":         "自己署名証明書の場合は --no-verify を指定してください",
		"suggestion_team_file_example": "例: ko: {language: Korean, translators: [\"1001\"]}",
		"suggestion_usage":             "weblate-stats --help で使い方を確認してください",
	}

	i.messages[LocaleEN] = Messages{
		"error":       "Error",
		"caused_by":   "Caused by",
		"suggestions": "Suggestions",

		// File related
		"file_not_found":      "File not found: %s",
		"file_read_failed":    "Failed to read file: %s",
		"output_write_failed": "Failed to write stats to %s",

		// Configuration related
		"config_read_failed":     "Failed to read configuration file: %s",
		"config_missing_key":     "Weblate API key is not configured (%s)",
		"config_invalid":         "Invalid configuration: %s",
		"team_file_parse_failed": "Failed to parse language team file: %s",
		"team_invalid":           "Invalid language team %s: %s",
		"language_not_found":     "Language %s not found in %s",

		// Command related
		"invalid_arguments":     "Invalid arguments: %s",
		"missing_team_file":     "A language team file must be specified",
		"invalid_output_format": "Invalid output format: %s",
		"invalid_date_format":   "Invalid date format (YYYY-MM-DD): %s",

		// Network and data related
		"request_failed":        "Error while reading uri %s",
		"response_parse_failed": "Error parsing json from uri %s",

		// Suggestions
		"suggestion_check_file_path":   "Check the file path",
		"suggestion_create_config":     "Set url and key in the [weblate] section of ~/.config/weblate.ini",
		"suggestion_env_credentials":   "WEBLATE_URL and WEBLATE_KEY environment variables are honoured as well",
		"suggestion_check_languages":   "Available language codes: %s",
		"suggestion_valid_formats":     "Valid formats: csv, json",
		"suggestion_date_example":      "Example: 2024-01-01",
		"suggestion_check_network":     "Check the network connection and the Weblate URL",
		"suggestion_no_verify":         "Pass --no-verify for self-signed certificates",
		"suggestion_team_file_example": "Example: ko: {language: Korean, translators: [\"1001\"]}",
		"suggestion_usage":             "Run weblate-stats --help for usage",
	}
}

// グローバルなインスタンス
var globalI18n *I18n

// Initialize はグローバルな国際化システムを初期化する
func Initialize() {
	globalI18n = NewI18n()
}

// T はグローバルな翻訳関数
func T(key string, args ...interface{}) string {
	if globalI18n == nil {
		Initialize()
	}
	return globalI18n.T(key, args...)
}

// SetLocale はグローバルなロケールを設定する
func SetLocale(locale Locale) {
	if globalI18n == nil {
		Initialize()
	}
	globalI18n.SetLocale(locale)
}

// GetLocale はグローバルなロケールを取得する
func GetLocale() Locale {
	if globalI18n == nil {
		Initialize()
	}
	return globalI18n.GetLocale()
}
