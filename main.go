package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/stephanebdc/enveloppe-japon/internal/addressbook"
	"github.com/stephanebdc/enveloppe-japon/internal/config"
	"github.com/stephanebdc/enveloppe-japon/internal/font"
	"github.com/stephanebdc/enveloppe-japon/internal/layout"
	"github.com/stephanebdc/enveloppe-japon/internal/model"
	"github.com/stephanebdc/enveloppe-japon/internal/pdf"
	"github.com/stephanebdc/enveloppe-japon/internal/store"
	"github.com/stephanebdc/enveloppe-japon/internal/ui"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "form":
		cmdForm(args)
	case "generate":
		cmdGenerate(args)
	case "verify":
		cmdVerify(args)
	case "fonts":
		cmdFonts(args)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "不明なコマンド: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `日本式封筒の宛名PDF生成ツール (A5 横置き・縦書き)

使い方:
  enveloppe-japon <command> [options]

コマンド:
  form         対話式フォームで宛先を入力してPDFを生成する
  generate     フラグまたは住所録ファイルからPDFを生成する
  verify       宛先の入力チェックだけを行う
  fonts        見つかった日本語フォントの候補を表示する
  help         この使い方を表示する

共通オプション:
  -config string  設定ファイルのパス (default: config.json)

generate オプション:
  -postal / -addr1 / -addr2 / -company / -recipient  宛先の各欄
  -book string    住所録ファイル (TSV/CSV)。1行ごとに1通のPDFを出力する
  -font string    使用するTTFフォント (設定と探索結果を上書き)
  -output string  出力先。-book 指定時は出力ディレクトリ
`)
}

func cmdForm(args []string) {
	fs := flag.NewFlagSet("form", flag.ExitOnError)
	configPath := fs.String("config", "config.json", "設定ファイルのパス")
	fs.Parse(args)

	cfg, err := config.Load(*configPath)
	if err != nil {
		exitError(err)
	}

	if err := ui.New(cfg).Run(); err != nil {
		exitError(err)
	}
}

func cmdGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	configPath := fs.String("config", "config.json", "設定ファイルのパス")
	fontFile := fs.String("font", "", "使用するTTFフォント")
	output := fs.String("output", "", "出力先")
	book := fs.String("book", "", "住所録ファイル (TSV/CSV)")
	addr := addressFlags(fs)
	fs.Parse(args)

	cfg, err := config.Load(*configPath)
	if err != nil {
		exitError(err)
	}
	if *fontFile != "" {
		cfg.FontFile = *fontFile
	}

	fontPath, err := resolveFont(cfg)
	if err != nil {
		exitError(err)
	}

	if *book != "" {
		generateBook(cfg, fontPath, *book, *output)
		return
	}

	res := addr.Verify()
	for _, w := range res.Warnings {
		fmt.Fprintf(os.Stderr, "注意: %s\n", w)
	}
	if !res.OK() {
		for _, e := range res.Errors {
			fmt.Fprintf(os.Stderr, "エラー: %s\n", e)
		}
		os.Exit(1)
	}

	out := cfg.OutputFile
	if *output != "" {
		out = *output
	}

	if err := writeEnvelope(*addr, fontPath, cfg.Params(), out); err != nil {
		exitError(err)
	}

	fmt.Printf("PDFを生成しました: %s\n", out)
}

// generateBook は住所録の各行から1通ずつPDFを出力する。
// 入力チェックに通らない行は読み飛ばして続行する。
func generateBook(cfg *config.Config, fontPath, bookPath, outDir string) {
	addresses, err := addressbook.Load(bookPath)
	if err != nil {
		exitError(err)
	}
	if len(addresses) == 0 {
		fmt.Println("出力対象の宛先がありません。")
		return
	}

	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		exitError(fmt.Errorf("出力ディレクトリの作成に失敗: %w", err))
	}

	written := 0
	for i, addr := range addresses {
		res := addr.Verify()
		if !res.OK() {
			fmt.Fprintf(os.Stderr, "%d行目を読み飛ばします: %s\n", i+2, res.Errors[0])
			continue
		}

		name := fmt.Sprintf("%03d_%s", i+1, store.Filename(addr.Company, time.Now()))
		out := filepath.Join(outDir, name)
		if err := writeEnvelope(addr, fontPath, cfg.Params(), out); err != nil {
			exitError(fmt.Errorf("%s の処理中にエラー: %w", addr.Recipient, err))
		}
		written++
	}

	fmt.Printf("PDFを生成しました: %s (%d件)\n", outDir, written)
}

func cmdVerify(args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	addr := addressFlags(fs)
	fs.Parse(args)

	res := addr.Verify()
	for _, e := range res.Errors {
		fmt.Printf("エラー: %s\n", e)
	}
	for _, w := range res.Warnings {
		fmt.Printf("注意: %s\n", w)
	}
	if !res.OK() {
		os.Exit(1)
	}
	fmt.Println("宛先は有効です")
}

func cmdFonts(args []string) {
	fs := flag.NewFlagSet("fonts", flag.ExitOnError)
	configPath := fs.String("config", "config.json", "設定ファイルのパス")
	fs.Parse(args)

	cfg, err := config.Load(*configPath)
	if err != nil {
		exitError(err)
	}

	candidates := font.Discover(font.SearchDirs(cfg.FontsDir)...)
	if len(candidates) == 0 {
		fmt.Println("日本語フォントが見つかりません。fonts/ ディレクトリにTTFを置いてください。")
		return
	}
	for _, c := range candidates {
		fmt.Printf("  %s (%s)\n", c.DisplayName, c.Path)
	}
}

func addressFlags(fs *flag.FlagSet) *model.Address {
	addr := &model.Address{}
	fs.StringVar(&addr.PostalCode, "postal", "", "郵便番号 (例: 〒160-0007)")
	fs.StringVar(&addr.Address1, "addr1", "", "住所1")
	fs.StringVar(&addr.Address2, "addr2", "", "住所2")
	fs.StringVar(&addr.Company, "company", "", "会社名")
	fs.StringVar(&addr.Recipient, "recipient", "", "宛名")
	return addr
}

// resolveFont は使用するフォントを決める。設定が指す1つを優先し、
// なければ探索して先頭の候補を使う。
func resolveFont(cfg *config.Config) (string, error) {
	if cfg.FontFile != "" {
		return cfg.FontFile, nil
	}
	candidates := font.Discover(font.SearchDirs(cfg.FontsDir)...)
	chosen, err := font.FirstResolver{}.Resolve(candidates)
	if err != nil {
		return "", err
	}
	return chosen.Path, nil
}

func writeEnvelope(addr model.Address, fontPath string, params layout.Params, out string) error {
	gen, err := pdf.NewGenerator(fontPath)
	if err != nil {
		return err
	}
	if err := gen.AddEnvelope(addr, layout.DefaultGeometry(), params); err != nil {
		return err
	}
	if err := gen.Save(out); err != nil {
		return fmt.Errorf("PDFの保存に失敗: %w", err)
	}
	return nil
}

func exitError(err error) {
	fmt.Fprintf(os.Stderr, "エラー: %v\n", err)
	os.Exit(1)
}
