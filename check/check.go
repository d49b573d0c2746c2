package check

import (
	"strings"

	"github.com/c360studio/semcrate/entity"
	"github.com/c360studio/semcrate/schema"
)

// Validate checks every entry against the restrictions of its registered
// class and accumulates all findings. Entries whose class is not registered
// are skipped for cardinality, not treated as errors: imported documents
// legitimately carry entries of unknown or external classes. Dangling
// references are checked for every entry regardless of class.
func Validate(registry *schema.Registry, entries []*entity.Entry) *Report {
	report := &Report{}

	known := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		known[e.ID] = struct{}{}
	}

	for _, e := range entries {
		for _, ref := range e.References {
			for _, id := range ref.IDs {
				if _, ok := known[id]; ok {
					continue
				}
				// Absolute IRIs point outside the crate.
				if strings.Contains(id, "://") {
					continue
				}
				report.Unresolved = append(report.Unresolved, UnresolvedReference{
					EntryID:  e.ID,
					Name:     ref.Name,
					TargetID: id,
				})
			}
		}

		typ, err := registry.Get(e.ClassID)
		if err != nil {
			continue
		}

		for _, r := range typ.Restrictions {
			count := valueCount(e, r.Property)
			if count < r.Min || (r.Max != nil && count > *r.Max) {
				report.Violations = append(report.Violations, Violation{
					EntryID:  e.ID,
					ClassID:  e.ClassID,
					Property: r.Property,
					Count:    count,
					Min:      r.Min,
					Max:      r.Max,
				})
			}
		}
	}

	return report
}

// valueCount counts how many values an entry carries for a property name,
// across literal properties and reference ids.
func valueCount(e *entity.Entry, name string) int {
	count := 0
	for _, p := range e.Properties {
		if p.Name == name {
			count++
		}
	}
	for _, ref := range e.References {
		if ref.Name == name {
			count += len(ref.IDs)
		}
	}
	return count
}
