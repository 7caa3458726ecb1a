package font

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"mincho.ttf", "gothic.TTC", "kaisho.otf", "readme.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("font"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.ttf"), 0o755); err != nil {
		t.Fatal(err)
	}

	fonts := Discover(dir)

	if len(fonts) != 2 {
		t.Fatalf("候補数 = %d, want 2: %+v", len(fonts), fonts)
	}
	names := map[string]bool{}
	for _, f := range fonts {
		names[f.Name] = true
		if f.Path != filepath.Join(dir, f.Name) {
			t.Errorf("Path = %q", f.Path)
		}
	}
	// .otf と非フォントは対象外、拡張子の大文字小文字は区別しない
	if !names["mincho.ttf"] || !names["gothic.TTC"] {
		t.Errorf("期待した候補が揃っていない: %+v", fonts)
	}
}

func TestDiscoverDisplayName(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "SawarabiMincho-Regular.ttf"), []byte("font"), 0o644); err != nil {
		t.Fatal(err)
	}

	fonts := Discover(dir)
	if len(fonts) != 1 || fonts[0].DisplayName != "SawarabiMincho-Regular" {
		t.Fatalf("DisplayName の不一致: %+v", fonts)
	}
}

func TestDiscoverIgnoresMissingDirs(t *testing.T) {
	if fonts := Discover(filepath.Join(t.TempDir(), "nai")); fonts != nil {
		t.Fatalf("存在しないディレクトリで候補が返った: %+v", fonts)
	}
}

func TestFirstResolver(t *testing.T) {
	if _, err := (FirstResolver{}).Resolve(nil); err == nil {
		t.Fatal("候補なしでエラーにならなかった")
	}

	candidates := []Font{{Name: "a.ttf"}, {Name: "b.ttf"}}
	chosen, err := FirstResolver{}.Resolve(candidates)
	if err != nil {
		t.Fatal(err)
	}
	if chosen.Name != "a.ttf" {
		t.Errorf("先頭の候補が選ばれていない: %+v", chosen)
	}
}
