package envfile

import (
	"sort"

	"github.com/willsfidell/env-helper/internal/model"
)

// Compare diffs two parsed sources and builds the three-section report:
// keys unique to the first source, keys unique to the second, and keys
// present in both whose values differ (exact string inequality).
//
// Each section is sorted by key in ascending byte order, so the report is
// deterministic regardless of map iteration order. Report labels are taken
// from the sources' display names.
//
// Compare never fails and does not mutate its inputs. Empty sections are
// empty slices, not nil.
func Compare(a, b *model.ParsedFile) *model.Report {
	report := &model.Report{
		FirstLabel:     a.Name,
		SecondLabel:    b.Name,
		UniqueToFirst:  make([]string, 0),
		UniqueToSecond: make([]string, 0),
		ValueDiffs:     make([]model.ValueDiff, 0),
	}

	aKeys := a.Keys()
	sort.Strings(aKeys)
	bKeys := b.Keys()
	sort.Strings(bKeys)

	for _, key := range aKeys {
		if !b.Has(key) {
			report.UniqueToFirst = append(report.UniqueToFirst, key)
		}
	}

	for _, key := range bKeys {
		if !a.Has(key) {
			report.UniqueToSecond = append(report.UniqueToSecond, key)
		}
	}

	// Walk the first source's sorted keys for the common-key section so the
	// diff order matches the unique sections' ordering rule.
	for _, key := range aKeys {
		second, ok := b.Get(key)
		if !ok {
			continue
		}
		first, _ := a.Get(key)
		if first.Value != second.Value {
			report.ValueDiffs = append(report.ValueDiffs, model.ValueDiff{
				Key:         key,
				FirstValue:  first.Value,
				SecondValue: second.Value,
			})
		}
	}

	return report
}
