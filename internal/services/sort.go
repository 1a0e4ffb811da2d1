package services

import (
	"slices"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/tbourn/parkstats-backend/internal/domain"
	"github.com/tbourn/parkstats-backend/internal/normalize"
	"github.com/tbourn/parkstats-backend/internal/repo"
	"github.com/tbourn/parkstats-backend/internal/store"
)

// SortDestinations returns a copy of list ordered by the given preference.
// Names compare with English collation, so case and accents do not split
// otherwise equal names. Country order sorts by country display name, then
// by destination name.
func SortDestinations(list []domain.Destination, order repo.SortOrder) []domain.Destination {
	out := make([]domain.Destination, len(list))
	copy(out, list)

	// Collators are not safe for concurrent use; build one per call.
	col := collate.New(language.English, collate.Loose)
	byName := func(a, b domain.Destination) int { return col.CompareString(a.Name, b.Name) }

	switch order {
	case repo.SortReverseAlphabetical:
		sort.SliceStable(out, func(i, j int) bool { return byName(out[i], out[j]) > 0 })
	case repo.SortCountry:
		sort.SliceStable(out, func(i, j int) bool {
			ci := normalize.CountryName(out[i].CountryCode)
			cj := normalize.CountryName(out[j].CountryCode)
			if c := col.CompareString(ci, cj); c != 0 {
				return c < 0
			}
			return byName(out[i], out[j]) < 0
		})
	default:
		sort.SliceStable(out, func(i, j int) bool { return byName(out[i], out[j]) < 0 })
	}
	return out
}

// sortColumns extends a projection with the columns order compares on. An
// empty projection selects every column and is returned unchanged.
func sortColumns(fields []string, order repo.SortOrder) []string {
	if len(fields) == 0 {
		return nil
	}
	need := []string{"name"}
	if order == repo.SortCountry {
		need = append(need, "country_code")
	}
	out := append([]string(nil), fields...)
	for _, col := range need {
		if !slices.Contains(out, col) {
			out = append(out, col)
		}
	}
	return out
}

// pageOf slices list by p. Limit <= 0 returns everything after Offset.
func pageOf[T any](list []T, p store.Page) []T {
	if p.Offset >= len(list) {
		return []T{}
	}
	list = list[max(p.Offset, 0):]
	if p.Limit > 0 && p.Limit < len(list) {
		list = list[:p.Limit]
	}
	return list
}
