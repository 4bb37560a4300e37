package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Pacing %s...":                     "%s をペーシング中...",
		"Output saved to %s":               "出力を %s に保存しました",
		"Pipeline completed successfully":  "パイプラインが正常に完了しました",
		"Starting pipeline":                "パイプラインを開始します",
		"Interrupted, shutting down...":    "中断されました。シャットダウン中...",

		// Source
		"Read %d frames from %s":           "%s から %d フレームを読み込みました",
		"Stream: %dx%d, timescale %d":      "ストリーム: %dx%d, タイムスケール %d",

		// Pace stage
		"Pacing %d frames (reorder depth %d)": "%d フレームをペーシング中 (リオーダー深度 %d)",
		"Reorder delay fixed at %d (frame %d)": "リオーダー遅延を %d に確定 (フレーム %d)",
		"Chapter %d requested at frame %d":  "チャプター %d をフレーム %d で要求",
		"Chapter %d attached to keyframe (frame %d)": "チャプター %d をキーフレームに割り当て (フレーム %d)",
		"Paced %d frames into %d packets":   "%d フレームを %d パケットにペーシングしました",

		// Mux stage
		"Muxing %d packets":                 "%d パケットを多重化中",
		"Muxed %d packets, %d bytes":        "%d パケット, %d バイトを多重化しました",

		// Warnings
		"%d chapter marks left unresolved at end of stream": "ストリーム終端で %d 個のチャプターマークが未解決のまま残りました",
		"Debug output requested but no output directory set": "デバッグ出力が要求されましたが出力ディレクトリが未設定です",

		// Errors
		"Failed to read input: %s":          "入力の読み込みに失敗しました: %s",
		"Failed to pace stream: %s":         "ストリームのペーシングに失敗しました: %s",
		"Failed to mux output: %s":          "出力の多重化に失敗しました: %s",
		"Failed to write output: %s":        "出力の書き込みに失敗しました: %s",
	})
}
