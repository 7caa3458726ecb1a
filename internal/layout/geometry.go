package layout

// A5 横置きの封筒サイズ (mm)
const (
	EnvelopeWidth  = 210.0
	EnvelopeHeight = 148.0
)

// PtToMM はポイントをmmに変換する係数 (1pt ≈ 0.3528mm)
const PtToMM = 0.3528

// 宛名ブロックの既定値 (mm)。文字送りは元々 20pt 相当。
const (
	DefaultStartX        = 150.0
	DefaultStartY        = 140.0
	DefaultColumnSpacing = 12.0
	DefaultCharSpacing   = 20 * PtToMM
	DefaultMarginTop     = 10.0
	DefaultMarginBottom  = 10.0
)

// fieldOffset は列が1つ左に移るごとに書き出し位置を下げる量 (mm)
const fieldOffset = 10.0

// PostalMark は郵便番号の先頭に付ける郵便記号
const PostalMark = '〒'

// Geometry はページの寸法と余白。座標系は左下原点 (mm)。
type Geometry struct {
	Width        float64
	Height       float64
	MarginTop    float64
	MarginBottom float64
}

// Params は縦書きブロックの配置パラメータ (mm)。
type Params struct {
	ColumnSpacing float64 // 列の間隔
	CharSpacing   float64 // 列内の文字送り
	StartX        float64 // 宛名ブロック先頭列の X
	StartY        float64 // 書き出しの Y
}

// Glyph は1文字分の配置結果。
type Glyph struct {
	X    float64
	Y    float64
	Char rune
}

// Measurer は描画側が提供する文字幅の測定能力。
// 戻り値はレイアウトと同じ単位 (mm)。測定できない場合は0を返す。
type Measurer interface {
	MeasureWidth(r rune) float64
}

// DefaultGeometry は A5 横置き封筒の既定ジオメトリを返す。
func DefaultGeometry() Geometry {
	return Geometry{
		Width:        EnvelopeWidth,
		Height:       EnvelopeHeight,
		MarginTop:    DefaultMarginTop,
		MarginBottom: DefaultMarginBottom,
	}
}

// DefaultParams は既定の配置パラメータを返す。
func DefaultParams() Params {
	return Params{
		ColumnSpacing: DefaultColumnSpacing,
		CharSpacing:   DefaultCharSpacing,
		StartX:        DefaultStartX,
		StartY:        DefaultStartY,
	}
}
