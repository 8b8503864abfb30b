package ui

import (
	"strings"

	"github.com/2024FullStackDeveloper/melfak-admin/internal/catalog"
)

// Filter keeps the items whose searchable fields contain the query,
// case-insensitively, preserving the incoming order. An empty query keeps
// everything. Filtering happens on the already-fetched list and never
// triggers a refetch.
func Filter[T any](items []T, query string, fields func(T) []string) []T {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), query) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// Search fields mirror the rendered rows: the title shown for the active
// locale (plus its subtitle where one is displayed), never the hidden
// language.
func sectionSearch(locale string) func(catalog.Section) []string {
	return func(s catalog.Section) []string {
		return []string{s.Title(locale)}
	}
}

func serviceSearch(locale string) func(catalog.Service) []string {
	return func(s catalog.Service) []string {
		return []string{s.Title(locale), catalog.Localized(locale, s.ArSubTitle, s.EnSubTitle)}
	}
}

func itemSearch(locale string) func(catalog.ServiceItem) []string {
	return func(i catalog.ServiceItem) []string {
		return []string{i.Title(locale), catalog.Localized(locale, i.ArSubTitle, i.EnSubTitle)}
	}
}
