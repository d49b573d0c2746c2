package check

import "fmt"

// Violation records one cardinality breach: an entry carries Count values
// for a property whose restriction demands between Min and Max.
type Violation struct {
	EntryID  string
	ClassID  string
	Property string
	Count    int
	Min      int

	// Max is the declared upper bound; nil means unbounded, in which case
	// only Min can be breached.
	Max *int
}

func (v Violation) String() string {
	if v.Max != nil && v.Count > *v.Max {
		return fmt.Sprintf("entry %q (%s): property %q has %d values, at most %d allowed",
			v.EntryID, v.ClassID, v.Property, v.Count, *v.Max)
	}
	return fmt.Sprintf("entry %q (%s): property %q has %d values, at least %d required",
		v.EntryID, v.ClassID, v.Property, v.Count, v.Min)
}

// UnresolvedReference records a reference whose target id matches no entry
// in the validated set. The reference stays in the output.
type UnresolvedReference struct {
	EntryID  string
	Name     string
	TargetID string
}

func (u UnresolvedReference) String() string {
	return fmt.Sprintf("entry %q: reference %q points to unknown id %q",
		u.EntryID, u.Name, u.TargetID)
}

// Report is the accumulated outcome of a validation pass.
type Report struct {
	Violations []Violation
	Unresolved []UnresolvedReference
}

// OK reports whether the pass found nothing to flag.
func (r *Report) OK() bool {
	return len(r.Violations) == 0 && len(r.Unresolved) == 0
}
