package richtext

// Hasher fingerprints localized field values.
type Hasher interface {
	// Hash returns a fingerprint of f. Equal values hash equally.
	Hash(f LocalizedField) (uint64, error)
}

// ChangeKind describes how a field differs between two entries.
type ChangeKind string

// Change kinds reported by Diff.
const (
	ChangeAdded    ChangeKind = "added"
	ChangeRemoved  ChangeKind = "removed"
	ChangeModified ChangeKind = "modified"
)

// FieldChange is a single field-level difference between two entries.
type FieldChange struct {
	Field string     `json:"field"`
	Kind  ChangeKind `json:"kind"`
}

// Diff compares prev and next and reports the fields an update would touch.
// Added and modified fields are reported in next's order, followed by
// removed fields in prev's order. An empty result means the entries match.
func Diff(prev, next FormattedEntry, h Hasher) ([]FieldChange, error) {
	prevHashes := make(map[string]uint64, len(prev))
	for _, f := range prev {
		sum, err := h.Hash(f.Field)
		if err != nil {
			return nil, Errorf(EINVALID, "hash field %q: %v", f.Name, err)
		}
		prevHashes[f.Name] = sum
	}

	var changes []FieldChange
	seen := make(map[string]bool, len(next))
	for _, f := range next {
		seen[f.Name] = true

		old, ok := prevHashes[f.Name]
		if !ok {
			changes = append(changes, FieldChange{Field: f.Name, Kind: ChangeAdded})
			continue
		}

		sum, err := h.Hash(f.Field)
		if err != nil {
			return nil, Errorf(EINVALID, "hash field %q: %v", f.Name, err)
		}
		if sum != old {
			changes = append(changes, FieldChange{Field: f.Name, Kind: ChangeModified})
		}
	}

	for _, f := range prev {
		if !seen[f.Name] {
			changes = append(changes, FieldChange{Field: f.Name, Kind: ChangeRemoved})
		}
	}

	return changes, nil
}
