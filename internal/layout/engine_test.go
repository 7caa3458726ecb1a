package layout

import (
	"math"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"

	"github.com/stephanebdc/enveloppe-japon/internal/model"
)

// fixedMeasurer は全文字を同じ幅として返すテスト用の測定器。
type fixedMeasurer struct {
	width float64
}

func (m fixedMeasurer) MeasureWidth(r rune) float64 { return m.width }

func testGeometry() Geometry {
	return Geometry{Width: 210, Height: 210, MarginTop: 10, MarginBottom: 10}
}

func testParams() Params {
	return Params{ColumnSpacing: 20, CharSpacing: 7, StartX: 150, StartY: 140}
}

func TestLayoutEmptyAddress(t *testing.T) {
	engine := NewEngine(fixedMeasurer{width: 5})

	glyphs := engine.Layout(model.Address{}, testGeometry(), testParams())
	if glyphs != nil {
		t.Fatalf("空の宛先で %d 個のグリフが返された", len(glyphs))
	}

	// 空白だけの欄も空として扱う
	blank := model.Address{PostalCode: "  ", Address1: "\t", Recipient: " "}
	if glyphs := engine.Layout(blank, testGeometry(), testParams()); glyphs != nil {
		t.Fatalf("空白だけの宛先で %d 個のグリフが返された", len(glyphs))
	}
}

func TestLayoutExampleScenario(t *testing.T) {
	addr := model.Address{
		PostalCode: "〒160-0007",
		Address1:   "東京都新宿区荒木町11-1",
		Address2:   "",
		Company:    "ABC Ltd.",
		Recipient:  "田中様",
	}
	geo := testGeometry()
	p := testParams()

	engine := NewEngine(fixedMeasurer{width: 5})
	glyphs := engine.Layout(addr, geo, p)

	postalLen := utf8.RuneCountInString(addr.PostalCode)
	if postalLen != 9 {
		t.Fatalf("前提が崩れている: 郵便番号は9文字のはず (%d)", postalLen)
	}

	// 郵便番号 9 + 住所1 13 + 会社名 8 + 宛名 3、打ち切りなし
	want := postalLen +
		utf8.RuneCountInString(addr.Address1) +
		utf8.RuneCountInString(addr.Company) +
		utf8.RuneCountInString(addr.Recipient)
	if len(glyphs) != want {
		t.Fatalf("グリフ数 = %d, want %d", len(glyphs), want)
	}

	// 郵便番号の列が先頭に来る。〒 は幅の1/4だけ左に寄る
	wantFirst := Glyph{X: p.StartX + p.ColumnSpacing - 5.0/4, Y: p.StartY, Char: '〒'}
	if diff := cmp.Diff(wantFirst, glyphs[0]); diff != "" {
		t.Errorf("先頭グリフの不一致 (-want +got):\n%s", diff)
	}

	// 収まる入力では開始位置は調整されない
	if glyphs[0].Y != p.StartY {
		t.Errorf("開始Y = %v, want %v (調整されないはず)", glyphs[0].Y, p.StartY)
	}

	// 郵便番号の数字は列の X そのまま
	if glyphs[1].X != p.StartX+p.ColumnSpacing {
		t.Errorf("数字の X = %v, want %v", glyphs[1].X, p.StartX+p.ColumnSpacing)
	}

	// 〒 の X は直後の数字より左
	if glyphs[0].X >= glyphs[1].X {
		t.Errorf("〒 の X (%v) が数字の X (%v) より左になっていない", glyphs[0].X, glyphs[1].X)
	}

	// 住所1・会社名・宛名の3列が右から左へ並ぶ
	colXs := columnXs(glyphs[postalLen:])
	wantCols := []float64{150, 130, 110}
	if diff := cmp.Diff(wantCols, colXs); diff != "" {
		t.Errorf("列の X の不一致 (-want +got):\n%s", diff)
	}
	for i := 1; i < len(colXs); i++ {
		if colXs[i] >= colXs[i-1] {
			t.Errorf("列の X が右から左の順になっていない: %v", colXs)
		}
	}

	// 各列の書き出しは 10mm ずつ下がる
	if glyphs[postalLen].Y != p.StartY-10 {
		t.Errorf("1列目の開始Y = %v, want %v", glyphs[postalLen].Y, p.StartY-10)
	}
}

func TestLayoutStartYAdjusted(t *testing.T) {
	addr := model.Address{
		PostalCode: "〒12",
		Address1:   "あいうえおかきくけこさ", // 11文字
	}
	geo := Geometry{Width: 210, Height: 100, MarginTop: 10, MarginBottom: 10}
	p := Params{ColumnSpacing: 12, CharSpacing: 10, StartX: 150, StartY: 90}

	engine := NewEngine(fixedMeasurer{width: 5})
	glyphs := engine.Layout(addr, geo, p)

	// maxHeight = 11*10 + 10 = 120, 90-120 < 10 なので
	// 開始Yは 100 - 10 - 120 + 90 = 60 に引き上げられる
	if got := glyphs[0].Y; got != 60 {
		t.Fatalf("調整後の開始Y = %v, want 60", got)
	}
}

func TestLayoutStartYNeverLowered(t *testing.T) {
	// 調整式の min により、引き上げ候補が元の位置より下になる場合は
	// 元の位置を使う
	addr := model.Address{
		PostalCode: "〒123",
		Address1:   "あいうえおかきくけこ", // 10文字
	}
	geo := Geometry{Width: 210, Height: 200, MarginTop: 10, MarginBottom: 10}
	p := Params{ColumnSpacing: 12, CharSpacing: 7, StartX: 150, StartY: 50}

	engine := NewEngine(fixedMeasurer{width: 5})
	glyphs := engine.Layout(addr, geo, p)

	if got := glyphs[0].Y; got != p.StartY {
		t.Fatalf("開始Y = %v, want %v (元の位置のまま)", got, p.StartY)
	}
}

func TestLayoutTruncation(t *testing.T) {
	line := "あいうえおかきくけこ" // 10文字
	addr := model.Address{
		PostalCode: "〒123",
		Address1:   line,
	}
	geo := Geometry{Width: 210, Height: 200, MarginTop: 10, MarginBottom: 10}
	p := Params{ColumnSpacing: 12, CharSpacing: 7, StartX: 150, StartY: 50}

	engine := NewEngine(fixedMeasurer{width: 5})
	glyphs := engine.Layout(addr, geo, p)

	postalLen := utf8.RuneCountInString(addr.PostalCode)
	col := glyphs[postalLen:]

	// 列の書き出しは 50-10=40。40-7j >= 10 を満たすのは j=0..4 の5文字
	if len(col) >= utf8.RuneCountInString(line) {
		t.Fatalf("打ち切りが働いていない: %d文字描画された", len(col))
	}
	if len(col) != 5 {
		t.Errorf("描画文字数 = %d, want 5", len(col))
	}
	for _, g := range col {
		if g.Y < geo.MarginBottom {
			t.Errorf("下余白より下にグリフがある: %+v", g)
		}
	}
}

func TestLayoutPostalOnly(t *testing.T) {
	addr := model.Address{PostalCode: "〒160-0007"}
	engine := NewEngine(fixedMeasurer{width: 5})
	glyphs := engine.Layout(addr, testGeometry(), testParams())

	if len(glyphs) != 9 {
		t.Fatalf("グリフ数 = %d, want 9", len(glyphs))
	}

	// 列内の文字送りが一定
	for i := 1; i < len(glyphs); i++ {
		gap := glyphs[i-1].Y - glyphs[i].Y
		if math.Abs(gap-testParams().CharSpacing) > 1e-9 {
			t.Fatalf("文字送り = %v, want %v", gap, testParams().CharSpacing)
		}
	}
}

func TestLayoutNilMeasurer(t *testing.T) {
	// 測定器がなくても落ちない。〒 の寄せ幅が0になるだけ
	engine := NewEngine(nil)
	addr := model.Address{PostalCode: "〒160-0007"}
	glyphs := engine.Layout(addr, testGeometry(), testParams())

	if len(glyphs) != 9 {
		t.Fatalf("グリフ数 = %d, want 9", len(glyphs))
	}
	if glyphs[0].X != glyphs[1].X {
		t.Errorf("寄せ幅0のはずが X がずれている: %v vs %v", glyphs[0].X, glyphs[1].X)
	}
}

// columnXs は列の X を出現順に重複なしで集める。
func columnXs(glyphs []Glyph) []float64 {
	var xs []float64
	for _, g := range glyphs {
		if len(xs) == 0 || xs[len(xs)-1] != g.X {
			xs = append(xs, g.X)
		}
	}
	return xs
}
