// Package addressbook はローカルのTSV/CSVファイルから宛先一覧を読み込む。
package addressbook

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/stephanebdc/enveloppe-japon/internal/model"
)

// ヘッダ行で対応付ける列名
const (
	colPostal    = "郵便番号"
	colAddress1  = "住所1"
	colAddress2  = "住所2"
	colCompany   = "会社名"
	colRecipient = "宛名"
)

// Load は住所録ファイルを読み込む。拡張子が .tsv の場合はタブ区切り、
// それ以外はカンマ区切りとして解析する。1行目はヘッダで、列の並びは
// ヘッダ名で対応付ける。宛名が空の行は読み飛ばす。
func Load(path string) ([]model.Address, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("住所録ファイルの読み込みに失敗: %w", err)
	}

	// UTF-8 BOM が付いている場合に先頭セルへ混入しないよう除去する。
	if len(data) >= 3 && bytes.Equal(data[:3], []byte{0xEF, 0xBB, 0xBF}) {
		data = data[3:]
	}

	reader := csv.NewReader(bytes.NewReader(data))
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		reader.Comma = '\t'
	}
	reader.FieldsPerRecord = -1

	values, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("住所録の解析に失敗: %w", err)
	}
	if len(values) < 2 {
		return nil, fmt.Errorf("住所録にデータがありません")
	}

	colIdx := buildColumnIndex(values[0])
	if column(colIdx, colRecipient) < 0 {
		return nil, fmt.Errorf("列 '%s' が見つかりません。ヘッダ行を確認してください", colRecipient)
	}

	var addresses []model.Address
	for _, row := range values[1:] {
		recipient := getCell(row, column(colIdx, colRecipient))
		if recipient == "" {
			continue
		}

		addresses = append(addresses, model.Address{
			PostalCode: getCell(row, column(colIdx, colPostal)),
			Address1:   getCell(row, column(colIdx, colAddress1)),
			Address2:   getCell(row, column(colIdx, colAddress2)),
			Company:    getCell(row, column(colIdx, colCompany)),
			Recipient:  recipient,
		})
	}

	return addresses, nil
}

func buildColumnIndex(header []string) map[string]int {
	idx := make(map[string]int)
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func column(idx map[string]int, name string) int {
	if i, ok := idx[name]; ok {
		return i
	}
	return -1
}

func getCell(cells []string, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[idx])
}
