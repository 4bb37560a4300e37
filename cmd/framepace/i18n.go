// Package main provides localization for the framepace CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Repace encoded video timestamps for reordering encoders": "リオーダーを行うエンコーダー向けに動画タイムスタンプを再ペーシング",

		// Pace command
		"Pace a fragmented MP4 through the encoder and remux it": "フラグメント化MP4をエンコーダーに通してペーシングし再多重化",

		// Probe command
		"Show stream information for a fragmented MP4": "フラグメント化MP4のストリーム情報を表示",

		// Flags
		"Output MP4 file path":                                "出力MP4ファイルパス",
		"YAML configuration file":                             "YAML設定ファイル",
		"Reorder depth policy (as_reported, doubled, fixed)":  "リオーダー深度ポリシー（as_reported, doubled, fixed）",
		"Fixed reorder depth (implies fixed policy)":          "固定リオーダー深度（fixedポリシーを適用）",
		"Video quality (CRF 0-63, lower is better)":           "動画品質（CRF 0-63、低いほど高品質）",
		"Target bitrate in kbps":                              "目標ビットレート（kbps）",
		"Keyframe interval in frames":                         "キーフレーム間隔（フレーム数）",
		"Chapter mark as FRAME:ID (repeatable)":               "チャプターマーク FRAME:ID 形式（複数指定可）",
		"Output execution summary to file (Markdown format)":  "実行サマリーをファイルに出力（Markdown形式）",
		"Enable debug output":                                 "デバッグ出力を有効化",
		"Directory for debug output":                          "デバッグ出力のディレクトリ",
		"Log level (debug, info, warn, error)":                "ログレベル（debug, info, warn, error）",
		"Suppress all log output":                             "全てのログ出力を抑制",

		// Runtime messages
		"INPUT argument is required":   "INPUT引数が必要です",
		"Summary saved to %s":          "サマリーを %s に保存しました",
		"Failed to write summary: %s":  "サマリーの書き込みに失敗しました: %s",
	})
}
