package seo

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var jaPrinter = message.NewPrinter(language.Japanese)

// FormatNumber 3桁区切り（12300 -> "12,300"）
func FormatNumber(n int) string {
	return jaPrinter.Sprintf("%d", n)
}

// FormatYen 円表記（12300 -> "¥12,300"）
func FormatYen(n int) string {
	return "¥" + FormatNumber(n)
}
