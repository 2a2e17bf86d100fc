package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Extraction complete! Saved %d frames from %d total frames.": "抽出完了! 全 %[2]d フレームから %[1]d フレームを保存しました。",
		"Summary written to %s":           "サマリーを %s に書き出しました",
		"Interrupted, shutting down...":   "中断されました。シャットダウン中...",
		"Starting pipeline":               "パイプラインを開始します",
		"Pipeline completed in %s":        "パイプラインが %s で完了しました",
		"Stopped after saving %d frames":  "%d フレームを保存した時点で停止しました",
		"Failed to write summary: %s":     "サマリーの書き出しに失敗しました: %s",

		// Sample stage
		"Video: %s":                              "動画: %s",
		"Duration: %s":                           "長さ: %s",
		"Original FPS: %.2f":                     "元のFPS: %.2f",
		"Extracting at %d FPS (every %d frames)": "%d FPS で抽出します (%d フレームごと)",
		"Output directory: %s":                   "出力ディレクトリ: %s",
		"Expecting %d of %d frames":              "%[2]d フレーム中 %[1]d フレームを保存予定",
		"Saved %d frames...":                     "%d フレームを保存しました...",
		"Read %d of %d frames":                   "%[2]d フレーム中 %[1]d フレームを読み込みました",
		"Failed to release video source: %s":     "動画ソースの解放に失敗しました: %s",

		// Decoder (ffmpeg component)
		"Probed %s: %s %dx%d, %.3f fps, %d frames":  "%s を解析: %s %dx%d, %.3f fps, %d フレーム",
		"Frame count from %s sample table: %d":      "%s サンプルテーブルからのフレーム数: %d",
		"Estimated frame count from duration: %d":   "長さから推定したフレーム数: %d",
		"Starting decoder: %s %s":                   "デコーダーを起動: %s %s",
		"Decoder stopped after %d frames":           "%d フレームでデコーダーを停止しました",
		"Decoder stopped after %d frames: %s":       "%d フレームでデコーダーが停止しました: %s",

		// Summary stage
		"Failed to stat %s: %s": "%s の情報取得に失敗しました: %s",
	})
}
