package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/stephanebdc/enveloppe-japon/internal/layout"
)

// Layout は宛名ブロックの配置の上書き設定 (mm)。
type Layout struct {
	StartX        float64 `json:"start_x"`
	StartY        float64 `json:"start_y"`
	ColumnSpacing float64 `json:"column_spacing"`
	CharSpacing   float64 `json:"char_spacing"`
}

type Config struct {
	FontFile   string `json:"font_file"`   // 使用するTTFフォント。空なら探索する
	FontsDir   string `json:"fonts_dir"`   // フォント探索の起点ディレクトリ
	OutputFile string `json:"output_file"` // generate の既定出力先
	Layout     Layout `json:"layout"`
}

// Default は既定値の設定を返す。
func Default() *Config {
	return &Config{
		FontsDir:   "fonts",
		OutputFile: "envelope.pdf",
		Layout: Layout{
			StartX:        layout.DefaultStartX,
			StartY:        layout.DefaultStartY,
			ColumnSpacing: layout.DefaultColumnSpacing,
			CharSpacing:   layout.DefaultCharSpacing,
		},
	}
}

// Load は設定ファイルを読み込む。ファイルが存在しない場合は既定値を返す。
// 指定のないキーは既定値のまま残る。
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("設定ファイルを読み込めません: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("設定ファイルの形式が不正です: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Layout.ColumnSpacing <= 0 {
		return fmt.Errorf("layout.column_spacing は正の値で指定してください")
	}
	if c.Layout.CharSpacing <= 0 {
		return fmt.Errorf("layout.char_spacing は正の値で指定してください")
	}
	if c.Layout.StartX <= 0 || c.Layout.StartY <= 0 {
		return fmt.Errorf("layout.start_x / layout.start_y は正の値で指定してください")
	}
	return nil
}

// Params は設定値からレイアウトパラメータを組み立てる。
func (c *Config) Params() layout.Params {
	return layout.Params{
		ColumnSpacing: c.Layout.ColumnSpacing,
		CharSpacing:   c.Layout.CharSpacing,
		StartX:        c.Layout.StartX,
		StartY:        c.Layout.StartY,
	}
}
