// Package main provides localization for the exportframes CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI and summary messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Extract frames from a video at a specified rate.": "指定したレートで動画からフレームを抽出します。",

		// Version command
		"exportframes version %s": "exportframes バージョン %s",

		// Summary headings
		"Extraction Summary": "抽出サマリー",
		"Source":             "入力",
		"Settings":           "設定",
		"Output":             "出力",
		"Item":               "項目",
		"Value":              "値",

		// Summary rows
		"Video":             "動画",
		"Duration":          "長さ",
		"Frame Rate":        "フレームレート",
		"Reported Frames":   "報告フレーム数",
		"Target Rate":       "抽出レート",
		"every %d frames":   "%d フレームごと",
		"Format":            "形式",
		"Quality":           "品質",
		"Width":             "幅",
		"Original":          "元のサイズ",
		"Timestamp Overlay": "タイムスタンプ表示",
		"Directory":         "ディレクトリ",
		"Frames Read":       "読み込みフレーム数",
		"Frames Saved":      "保存フレーム数",
		"Sampling Ratio":    "抽出率",
		"Total Size":        "合計サイズ",
		"First File":        "最初のファイル",
		"Last File":         "最後のファイル",
		"Elapsed":           "処理時間",
		"Yes":               "はい",
		"No":                "いいえ",
		"Generated at %s":   "%s に生成",
	})
}
