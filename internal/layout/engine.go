package layout

import (
	"strings"
	"unicode/utf8"

	"github.com/stephanebdc/enveloppe-japon/internal/model"
)

// Engine は宛先1件を縦書きのグリフ座標列に変換する。
// 状態を持たず、同じ入力に対して常に同じ結果を返す。
type Engine struct {
	measurer Measurer
}

// NewEngine は文字幅の測定能力を受け取ってエンジンを作る。
func NewEngine(m Measurer) *Engine {
	return &Engine{measurer: m}
}

// Layout は宛先をグリフ配置に変換する。
//
// 郵便番号の列は宛名ブロックの1列右に置き、住所・会社名・宛名は
// 右から左へ1列ずつ並べる。列内の文字は上から下へ CharSpacing ずつ
// 下がる。下余白を突き抜けそうな場合は書き出し位置を引き上げ、それでも
// 収まらない列は折り返さずに打ち切る。
//
// 入力がすべて空の場合は nil を返す。エラーは返さない。
func (e *Engine) Layout(addr model.Address, geo Geometry, p Params) []Glyph {
	postal := strings.TrimSpace(addr.PostalCode)
	lines := activeLines(addr)
	if postal == "" && len(lines) == 0 {
		return nil
	}

	startY := adjustStartY(lines, postal, p.StartY, p.CharSpacing, geo)

	var glyphs []Glyph

	// 郵便番号の列
	postalX := p.StartX + p.ColumnSpacing
	y := startY
	for _, r := range postal {
		x := postalX
		if r == PostalMark {
			// 郵便記号は数字より横幅があるため、幅の1/4だけ左に寄せて
			// 数字の中心と揃える
			x -= e.measureWidth(r) / 4
		}
		glyphs = append(glyphs, Glyph{X: x, Y: y, Char: r})
		y -= p.CharSpacing
	}

	// 住所・会社名・宛名の列
	for i, line := range lines {
		colX := p.StartX - float64(i)*p.ColumnSpacing
		colY := startY - float64(i+1)*fieldOffset

		j := 0
		for _, r := range line {
			charY := colY - float64(j)*p.CharSpacing
			if charY < geo.MarginBottom {
				break // 下余白を超える分は打ち切り
			}
			glyphs = append(glyphs, Glyph{X: colX, Y: charY, Char: r})
			j++
		}
	}

	return glyphs
}

func (e *Engine) measureWidth(r rune) float64 {
	if e.measurer == nil {
		return 0
	}
	return e.measurer.MeasureWidth(r)
}

// activeLines は空白を除いて中身のある行だけを表示順に集める。
func activeLines(addr model.Address) []string {
	var lines []string
	for _, s := range []string{addr.Address1, addr.Address2, addr.Company, addr.Recipient} {
		s = strings.TrimSpace(s)
		if s != "" {
			lines = append(lines, s)
		}
	}
	return lines
}

// adjustStartY は最長の列が下余白に掛かる場合に書き出し位置を引き上げる。
// 元の位置より下がることはない。
func adjustStartY(lines []string, postal string, startY, charSpacing float64, geo Geometry) float64 {
	maxHeight := float64(utf8.RuneCountInString(postal)) * charSpacing
	for i, line := range lines {
		h := float64(utf8.RuneCountInString(line))*charSpacing + float64(i+1)*fieldOffset
		if h > maxHeight {
			maxHeight = h
		}
	}

	if startY-maxHeight < geo.MarginBottom {
		adjusted := geo.Height - geo.MarginTop - maxHeight + startY
		if adjusted < startY {
			return adjusted
		}
	}

	return startY
}
