package model

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Address は封筒に印字する宛先1件分。レイアウトに渡した後は変更しない。
type Address struct {
	PostalCode string // 〒 から始まる郵便番号
	Address1   string
	Address2   string
	Company    string
	Recipient  string
}

// Result は Verify の結果。Errors が残っているあいだは生成に進めない。
// Warnings は見た目が崩れる可能性の通知で、生成自体は妨げない。
type Result struct {
	Errors   []string
	Warnings []string
}

// OK はエラーがないかどうかを返す。
func (r Result) OK() bool {
	return len(r.Errors) == 0
}

// 1行あたりの文字数がこれを超えると、はみ出しの警告を出す
const lineWarnRunes = 35

// Verify は生成前の入力チェックを行う。
func (a Address) Verify() Result {
	var res Result

	postal := strings.TrimSpace(a.PostalCode)
	addr1 := strings.TrimSpace(a.Address1)
	addr2 := strings.TrimSpace(a.Address2)
	company := strings.TrimSpace(a.Company)
	recipient := strings.TrimSpace(a.Recipient)

	if postal == "" {
		res.Errors = append(res.Errors, "郵便番号は必須です")
	} else if !strings.HasPrefix(postal, "〒") {
		res.Warnings = append(res.Warnings, "郵便番号は〒で始めてください")
	}

	if addr1 == "" {
		res.Errors = append(res.Errors, "住所1は必須です")
	} else if n := utf8.RuneCountInString(addr1); n > 40 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("住所1が非常に長いです (%d文字)", n))
	}

	if company == "" {
		res.Errors = append(res.Errors, "会社名は必須です")
	}

	if recipient == "" {
		res.Errors = append(res.Errors, "宛名は必須です")
	}

	for i, line := range []string{addr1, addr2, company, recipient} {
		if n := utf8.RuneCountInString(line); n > lineWarnRunes {
			res.Warnings = append(res.Warnings, fmt.Sprintf("%d行目がはみ出す可能性があります (%d文字)", i+1, n))
		}
	}

	return res
}
