// Package ui は端末上の対話式フォームを提供する。
package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/stephanebdc/enveloppe-japon/internal/config"
	"github.com/stephanebdc/enveloppe-japon/internal/font"
	"github.com/stephanebdc/enveloppe-japon/internal/layout"
	"github.com/stephanebdc/enveloppe-japon/internal/model"
	"github.com/stephanebdc/enveloppe-japon/internal/pdf"
	"github.com/stephanebdc/enveloppe-japon/internal/store"
)

// 入力欄の初期値
var defaultAddress = model.Address{
	PostalCode: "〒160-0007",
	Address1:   "東京都新宿区 荒木町11-1",
	Address2:   "ハイム石川8号",
	Company:    "ステファン ビーディーシーLTD.",
	Recipient:  "経理・藤原様",
}

// Form は宛先を入力して封筒PDFを生成する対話式フォーム。
type Form struct {
	in  *bufio.Reader
	out io.Writer
	cfg *config.Config

	addr     model.Address
	fontPath string
	fontName string
	tempPath string
	filename string
}

// New はフォームを作る。
func New(cfg *config.Config) *Form {
	return &Form{
		in:   bufio.NewReader(os.Stdin),
		out:  os.Stdout,
		cfg:  cfg,
		addr: defaultAddress,
	}
}

// Run はフォームを起動し、終了操作まで対話を続ける。
// 端末以外に接続されている場合はエラーを返す。
func (f *Form) Run() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("form は端末から実行してください")
	}

	f.status("インターフェースを初期化しました。")
	f.setupFont()

	// 生成済みの一時ファイルは終了時に片付ける
	defer func() { store.Cleanup(f.tempPath) }()

	f.promptAll()

	for {
		fmt.Fprintln(f.out)
		fmt.Fprintln(f.out, "操作を選んでください: [v]宛先を確認 [g]PDFを生成 [s]保存 [e]入力をやり直す [q]終了")
		fmt.Fprint(f.out, "> ")

		line, err := f.in.ReadString('\n')
		if err != nil {
			return nil
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "v":
			f.verify()
		case "g":
			f.generate()
		case "s":
			f.save()
		case "e":
			f.promptAll()
		case "q":
			return nil
		}
	}
}

// setupFont は使用するフォントを決める。設定で指定されていればそれを使い、
// なければ探索して候補から選ばせる。
func (f *Form) setupFont() {
	if f.cfg.FontFile != "" {
		f.fontPath = f.cfg.FontFile
		f.fontName = f.cfg.FontFile
		f.status(fmt.Sprintf("日本語フォントを読み込みました: %s", f.fontName))
		return
	}

	candidates := font.Discover(font.SearchDirs(f.cfg.FontsDir)...)
	resolver := promptResolver{in: f.in, out: f.out}
	chosen, err := resolver.Resolve(candidates)
	if err != nil {
		f.status("日本語フォントが見つかりません。fonts/ ディレクトリにTTFを置くか、設定の font_file を指定してください。")
		return
	}

	f.fontPath = chosen.Path
	f.fontName = chosen.DisplayName
	f.status(fmt.Sprintf("日本語フォントを読み込みました: %s", f.fontName))
}

func (f *Form) promptAll() {
	f.addr.PostalCode = f.prompt("郵便番号 (例: 〒160-0007)", f.addr.PostalCode)
	f.addr.Address1 = f.prompt("住所1", f.addr.Address1)
	f.addr.Address2 = f.prompt("住所2", f.addr.Address2)
	f.addr.Company = f.prompt("会社名", f.addr.Company)
	f.addr.Recipient = f.prompt("宛名", f.addr.Recipient)
}

func (f *Form) prompt(label, def string) string {
	if def != "" {
		fmt.Fprintf(f.out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(f.out, "%s: ", label)
	}

	line, err := f.in.ReadString('\n')
	if err != nil {
		return def
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	return line
}

func (f *Form) verify() bool {
	f.status("宛先を確認しています...")

	res := f.addr.Verify()
	for _, e := range res.Errors {
		f.status("エラー: " + e)
	}
	if res.OK() {
		f.status("宛先は有効です")
	}
	for _, w := range res.Warnings {
		f.status("注意: " + w)
	}
	return res.OK()
}

func (f *Form) generate() {
	if f.fontPath == "" {
		f.status("エラー: 日本語フォントが利用できないため生成できません")
		return
	}
	if !f.verify() {
		return
	}

	f.status("PDFを生成しています...")

	gen, err := pdf.NewGenerator(f.fontPath)
	if err != nil {
		f.status(fmt.Sprintf("エラー: %v", err))
		return
	}
	if err := gen.AddEnvelope(f.addr, layout.DefaultGeometry(), f.cfg.Params()); err != nil {
		f.status(fmt.Sprintf("エラー: %v", err))
		return
	}

	data, err := gen.Bytes()
	if err != nil {
		f.status(fmt.Sprintf("エラー: PDFの出力に失敗: %v", err))
		return
	}

	// 前回の一時ファイルは置き換える
	store.Cleanup(f.tempPath)

	f.filename = store.Filename(f.addr.Company, time.Now())
	f.tempPath, err = store.WriteTemp(f.filename, data)
	if err != nil {
		f.status(fmt.Sprintf("エラー: %v", err))
		return
	}

	f.status(fmt.Sprintf("PDFを生成しました: %s", f.filename))
}

func (f *Form) save() {
	if f.tempPath == "" {
		f.status("保存できるPDFがありません。先に生成してください。")
		return
	}

	dst := f.prompt("保存先", f.filename)
	if err := store.CopyTo(f.tempPath, dst); err != nil {
		f.status(fmt.Sprintf("エラー: %v", err))
		return
	}

	f.status(fmt.Sprintf("PDFを保存しました: %s", dst))
}

// status はタイムスタンプ付きで1行のメッセージを出す。
func (f *Form) status(msg string) {
	fmt.Fprintf(f.out, "[%s] %s\n", time.Now().Format("15:04:05"), msg)
}

// promptResolver は候補を一覧表示して利用者に選ばせる font.Resolver。
// 候補が1つだけのときは問い合わせない。
type promptResolver struct {
	in  *bufio.Reader
	out io.Writer
}

func (p promptResolver) Resolve(candidates []font.Font) (font.Font, error) {
	if len(candidates) == 0 {
		return font.Font{}, fmt.Errorf("利用できる日本語フォントが見つかりません")
	}
	if len(candidates) == 1 {
		return candidates[0], nil
	}

	fmt.Fprintln(p.out, "複数の日本語フォントが見つかりました。使用するフォントを選んでください:")
	for i, c := range candidates {
		fmt.Fprintf(p.out, "  [%d] %s (%s)\n", i+1, c.DisplayName, c.Name)
	}
	fmt.Fprint(p.out, "番号 [1]: ")

	line, err := p.in.ReadString('\n')
	if err != nil {
		return candidates[0], nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < 1 || n > len(candidates) {
		return candidates[0], nil
	}
	return candidates[n-1], nil
}
