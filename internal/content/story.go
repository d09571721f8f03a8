// Package content holds the immutable story catalog.
package content

import (
	"strings"

	"somabuddy/internal/i18n"
)

// Story is one readable text with its metadata. Stories are immutable after
// seeding; every screen reads them by value.
type Story struct {
	ID           int
	Title        string
	TitleSw      string
	Author       string
	Publisher    string
	Text         string
	TextSw       string
	Category     string
	Level        int
	Points       int
	Duration     string
	CBCAlignment string
	Completed    bool
	Assigned     bool
}

// LocalTitle returns the title in lang, falling back to English.
func (s Story) LocalTitle(lang i18n.Lang) string {
	if lang == i18n.Kiswahili && s.TitleSw != "" {
		return s.TitleSw
	}
	return s.Title
}

// LocalText returns the story body in lang, falling back to English when no
// Kiswahili payload exists.
func (s Story) LocalText(lang i18n.Lang) string {
	if lang == i18n.Kiswahili && s.TextSw != "" {
		return s.TextSw
	}
	return s.Text
}

// PageSize is the number of words shown per reading page.
const PageSize = 40

// Pages splits the localized story body into reading pages of at most
// PageSize words. A story always has at least one page.
func (s Story) Pages(lang i18n.Lang) []string {
	words := strings.Fields(s.LocalText(lang))
	if len(words) == 0 {
		return []string{""}
	}

	var pages []string
	for start := 0; start < len(words); start += PageSize {
		end := start + PageSize
		if end > len(words) {
			end = len(words)
		}
		pages = append(pages, strings.Join(words[start:end], " "))
	}
	return pages
}
