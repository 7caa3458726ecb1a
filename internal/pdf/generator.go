package pdf

import (
	"fmt"

	"github.com/signintech/gopdf"

	"github.com/stephanebdc/enveloppe-japon/internal/layout"
	"github.com/stephanebdc/enveloppe-japon/internal/model"
)

const (
	fontName = "mincho"
	fontSize = 14.0 // pt
)

// Generator は1通分の封筒PDFを組み立てる描画シンク。
// layout.Measurer を実装し、レイアウトエンジンに文字幅を提供する。
type Generator struct {
	pdf  *gopdf.GoPdf
	font string
}

// NewGenerator は A5 横置きのPDFを初期化し、指定のTTFフォントを登録する。
func NewGenerator(fontFile string) (*Generator, error) {
	p := &gopdf.GoPdf{}
	p.Start(gopdf.Config{
		PageSize: gopdf.Rect{W: layout.EnvelopeWidth, H: layout.EnvelopeHeight},
		Unit:     gopdf.UnitMM,
	})

	if err := p.AddTTFFont(fontName, fontFile); err != nil {
		return nil, fmt.Errorf("フォントの読み込みに失敗: %w", err)
	}
	if err := p.SetFont(fontName, "", int(fontSize)); err != nil {
		return nil, fmt.Errorf("フォントの設定に失敗: %w", err)
	}

	return &Generator{pdf: p, font: fontName}, nil
}

// MeasureWidth は layout.Measurer を実装する。測定できない場合は0を返す。
func (g *Generator) MeasureWidth(r rune) float64 {
	w, err := g.pdf.MeasureTextWidth(string(r))
	if err != nil {
		return 0
	}
	return w
}

// AddEnvelope は宛先1件分の封筒ページを追加する。
// 住所・会社名・宛名の半角数字はレイアウト前に全角へ変換する。
func (g *Generator) AddEnvelope(addr model.Address, geo layout.Geometry, p layout.Params) error {
	addr.Address1 = halfToFull(addr.Address1)
	addr.Address2 = halfToFull(addr.Address2)
	addr.Company = halfToFull(addr.Company)
	addr.Recipient = halfToFull(addr.Recipient)

	engine := layout.NewEngine(g)
	glyphs := engine.Layout(addr, geo, p)

	return g.drawGlyphs(glyphs, geo)
}

// drawGlyphs はグリフ配置列を1ページとして描画する。
// レイアウトの座標系は左下原点なので、ここで上下を反転する。
func (g *Generator) drawGlyphs(glyphs []layout.Glyph, geo layout.Geometry) error {
	g.pdf.AddPage()

	if err := g.pdf.SetFont(g.font, "", int(fontSize)); err != nil {
		return fmt.Errorf("フォントの設定に失敗: %w", err)
	}

	charHeight := fontSize * layout.PtToMM

	for _, gl := range glyphs {
		y := geo.Height - gl.Y - charHeight
		ch := string(gl.Char)

		if isVerticalRotateChar(gl.Char) {
			// 回転が必要な文字（ー、〜など）
			g.pdf.Rotate(90, gl.X, y+charHeight/2)
			g.pdf.SetX(gl.X - charHeight/2)
			g.pdf.SetY(y)
			if err := g.pdf.Cell(nil, ch); err != nil {
				g.pdf.RotateReset()
				return fmt.Errorf("文字の描画に失敗: %w", err)
			}
			g.pdf.RotateReset()
			continue
		}

		dx, dy := verticalCharOffset(gl.Char, charHeight)
		g.pdf.SetX(gl.X + dx)
		g.pdf.SetY(y + dy)
		if err := g.pdf.Cell(nil, ch); err != nil {
			return fmt.Errorf("文字の描画に失敗: %w", err)
		}
	}

	return nil
}

// Bytes はPDFをバイト列にして返す。
func (g *Generator) Bytes() ([]byte, error) {
	return g.pdf.GetBytesPdfReturnErr()
}

// Save はPDFをファイルに書き出す。
func (g *Generator) Save(path string) error {
	return g.pdf.WritePdf(path)
}
