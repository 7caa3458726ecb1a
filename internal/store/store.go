// Package store は生成したPDFの一時保管と明示的な保存を担当する。
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

// ファイル名に残すのは ASCII 英数字・ひらがな・カタカナ・漢字のみ
var filenameSafe = regexp.MustCompile(`[^a-zA-Z0-9\x{3040}-\x{309F}\x{30A0}-\x{30FF}\x{4E00}-\x{9FAF}]`)

// ファイル名に使う会社名の最大文字数
const companyMaxRunes = 10

// Filename は生成するPDFのファイル名を組み立てる。
// 例: envelope_20250101_120000_サンプル商事.pdf
func Filename(company string, now time.Time) string {
	clean := filenameSafe.ReplaceAllString(company, "")
	runes := []rune(clean)
	if len(runes) > companyMaxRunes {
		runes = runes[:companyMaxRunes]
	}
	return fmt.Sprintf("envelope_%s_%s.pdf", now.Format("20060102_150405"), string(runes))
}

// WriteTemp は一時ディレクトリにPDFを書き出し、そのパスを返す。
func WriteTemp(filename string, data []byte) (string, error) {
	path := filepath.Join(os.TempDir(), filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("一時ファイルの書き込みに失敗: %w", err)
	}
	return path, nil
}

// CopyTo は一時ファイルを指定先に複製する。元のファイルは残すので、
// 保存に失敗してもやり直せる。
func CopyTo(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("一時ファイルの読み込みに失敗: %w", err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("保存に失敗: %w", err)
	}
	return nil
}

// Cleanup は一時ファイルを削除する。失敗しても無視する。
func Cleanup(path string) {
	if path == "" {
		return
	}
	os.Remove(path)
}
