package entity

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Resolver flattens nested, possibly cyclic instance graphs into a set of
// entries with exactly one entry per distinct identity. Termination is
// guaranteed: the visited set only grows and the declared relationship
// graph is finite even when cyclic. Not safe for concurrent use; one
// resolver per build session.
type Resolver struct {
	logger *slog.Logger

	entries []*Entry
	byID    map[string]*Entry

	// visited maps identity to the current entry id: a placeholder while
	// extraction of that object is in progress, the final id afterwards.
	visited map[string]string
}

// NewResolver creates a resolver. logger may be nil.
func NewResolver(logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		logger:  logger,
		byID:    make(map[string]*Entry),
		visited: make(map[string]string),
	}
}

// Resolve extracts each object and everything reachable from it. The
// returned slice holds all finalized entries in creation order, including
// entries from earlier Resolve calls on the same resolver.
func (r *Resolver) Resolve(objects ...Object) ([]*Entry, error) {
	for _, obj := range objects {
		if _, err := r.Add(obj); err != nil {
			return nil, err
		}
	}
	return r.Entries(), nil
}

// Add extracts one object graph and returns the entry for its root. An
// already-finalized identity is reused without re-extraction. A failed
// extraction leaves the resolver exactly as before the call: entries
// finalized mid-walk are rolled back so nothing retains a reference to the
// aborted root's placeholder.
func (r *Resolver) Add(obj Object) (*Entry, error) {
	mark := len(r.entries)
	id, err := r.extract(obj)
	if err != nil {
		r.rollback(mark)
		return nil, err
	}
	entry, ok := r.byID[id]
	if !ok {
		// The root can only map to a placeholder if extract returned
		// mid-cycle, which cannot happen for the outermost call.
		return nil, fmt.Errorf("resolving %q: entry not finalized", id)
	}
	return entry, nil
}

// AddEntry registers an already-flat entry. The first entry finalized for
// an id wins; later duplicates are dropped and the existing entry returned.
func (r *Resolver) AddEntry(entry *Entry) *Entry {
	if existing, ok := r.byID[entry.ID]; ok {
		return existing
	}
	r.byID[entry.ID] = entry
	r.visited[entry.ID] = entry.ID
	r.entries = append(r.entries, entry)
	return entry
}

// Entries returns all finalized entries in creation order.
func (r *Resolver) Entries() []*Entry {
	out := make([]*Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Entry returns the finalized entry with the given id, or nil.
func (r *Resolver) Entry(id string) *Entry {
	return r.byID[id]
}

// extract walks one object, allocating its placeholder before recursing so
// cyclic neighbors can reference it, and returns the entry id the caller
// should record: the final id, or the placeholder when obj is still being
// extracted further up the stack.
func (r *Resolver) extract(obj Object) (string, error) {
	identity, err := obj.Identity()
	if err != nil || identity == "" {
		return "", NewIdentityMissingError(obj.ClassID())
	}

	if id, ok := r.visited[identity]; ok {
		return id, nil
	}

	placeholder := placeholderPrefix + uuid.NewString()
	r.visited[identity] = placeholder
	r.logger.Debug("allocated placeholder",
		slog.String("identity", identity),
		slog.String("placeholder", placeholder))

	entry := &Entry{ID: placeholder, ClassID: obj.ClassID()}

	for _, field := range obj.Fields() {
		switch {
		case len(field.Refs) > 0:
			ids := make([]string, 0, len(field.Refs))
			for _, ref := range field.Refs {
				refID, err := r.extract(ref)
				if err != nil {
					return "", err
				}
				ids = append(ids, refID)
			}
			entry.AddReference(field.Name, ids, field.List || len(field.Refs) > 1)
		case field.Value != nil:
			entry.SetProperty(field.Name, field.Value)
		}
	}

	// Finalize: the entry takes its real id and every reference recorded
	// against the placeholder is rewritten.
	entry.ID = identity
	r.visited[identity] = identity
	r.rewrite(placeholder, identity)
	entry.replaceRefID(placeholder, identity)

	r.byID[identity] = entry
	r.entries = append(r.entries, entry)
	r.logger.Debug("finalized entry",
		slog.String("id", identity),
		slog.String("class", entry.ClassID))

	return identity, nil
}

// rollback discards everything an aborted Add left behind: entries
// finalized after the mark, their visited and byID records, and every
// still-pending placeholder. Entries finalized after the mark can only be
// referenced by each other or by the aborted walk, never by entries that
// predate the mark.
func (r *Resolver) rollback(mark int) {
	for _, entry := range r.entries[mark:] {
		delete(r.byID, entry.ID)
		delete(r.visited, entry.ID)
	}
	r.entries = r.entries[:mark]

	for identity, id := range r.visited {
		if IsPlaceholder(id) {
			delete(r.visited, identity)
		}
	}
}

// rewrite repoints every reference to oldID at newID across all finalized
// entries, discarding the placeholder.
func (r *Resolver) rewrite(oldID, newID string) {
	for _, entry := range r.entries {
		entry.replaceRefID(oldID, newID)
	}
}

func (e *Entry) replaceRefID(oldID, newID string) {
	for i := range e.References {
		for j, id := range e.References[i].IDs {
			if id == oldID {
				e.References[i].IDs[j] = newID
			}
		}
	}
}
