// Package font は日本語フォントファイルの探索と選択を担当する。
package font

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Font は発見されたフォントファイル1つ分。
type Font struct {
	Name        string // ファイル名
	Path        string
	DisplayName string // 拡張子を除いた表示名
}

// SearchDirs は既定の探索ディレクトリ一覧を返す。fontsDir を先頭に、
// 続けて各OSの定番ディレクトリを並べる。存在しないものは Discover が無視する。
func SearchDirs(fontsDir string) []string {
	dirs := []string{}
	if fontsDir != "" {
		dirs = append(dirs, fontsDir)
	}
	dirs = append(dirs,
		"/System/Library/Fonts",
		"/usr/share/fonts",
		"C:/Windows/Fonts",
	)
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
	}
	return dirs
}

// Discover は各ディレクトリから .ttf / .ttc のフォントを集める。
// .otf は gopdf で読み込めないため対象外。
func Discover(dirs ...string) []Font {
	var fonts []Font
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			name := e.Name()
			ext := strings.ToLower(filepath.Ext(name))
			if ext != ".ttf" && ext != ".ttc" {
				continue
			}
			fonts = append(fonts, Font{
				Name:        name,
				Path:        filepath.Join(dir, name),
				DisplayName: strings.TrimSuffix(name, filepath.Ext(name)),
			})
		}
	}
	return fonts
}

// Resolver は候補の中から使用するフォントを1つ選ぶ能力。
// 対話式フォームは利用者に問い合わせる実装を渡す。
type Resolver interface {
	Resolve(candidates []Font) (Font, error)
}

// FirstResolver は先頭の候補をそのまま選ぶ。
type FirstResolver struct{}

// Resolve は先頭の候補を返す。候補がない場合はエラー。
func (FirstResolver) Resolve(candidates []Font) (Font, error) {
	if len(candidates) == 0 {
		return Font{}, fmt.Errorf("利用できる日本語フォントが見つかりません")
	}
	return candidates[0], nil
}
