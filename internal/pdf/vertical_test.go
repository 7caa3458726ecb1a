package pdf

import "testing"

func TestHalfToFull(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"荒木町11-1", "荒木町１１ー１"},
		{"ハイム石川8号", "ハイム石川８号"},
		{"東京都新宿区", "東京都新宿区"},
		{"", ""},
		{"0-9", "０ー９"},
	}

	for _, tt := range tests {
		if got := halfToFull(tt.in); got != tt.want {
			t.Errorf("halfToFull(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsVerticalRotateChar(t *testing.T) {
	for _, r := range "ー〜～…―" {
		if !isVerticalRotateChar(r) {
			t.Errorf("%q は回転対象のはず", r)
		}
	}
	for _, r := range "あア漢1１A〒" {
		if isVerticalRotateChar(r) {
			t.Errorf("%q は回転対象ではないはず", r)
		}
	}
}

func TestVerticalCharOffset(t *testing.T) {
	dx, dy := verticalCharOffset('ゃ', 10)
	if dx <= 0 || dy >= 0 {
		t.Errorf("小書き仮名は右上に寄るはず: dx=%v dy=%v", dx, dy)
	}

	dx, dy = verticalCharOffset('や', 10)
	if dx != 0 || dy != 0 {
		t.Errorf("通常の文字は調整なしのはず: dx=%v dy=%v", dx, dy)
	}
}
