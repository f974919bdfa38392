package report

// Delta captures register rows added, removed and changed between two snapshots.
type Delta struct {
	Added   []RegisterRow `json:"added"`
	Removed []RegisterRow `json:"removed"`
	Changed []Change      `json:"changed"`
}

// Change is a register whose address or status moved between snapshots
type Change struct {
	Public string      `json:"public"`
	Before RegisterRow `json:"before"`
	After  RegisterRow `json:"after"`
}

// Empty reports whether the snapshots carry the same registers.
func (d Delta) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}

// ComputeDelta computes row-level differences between two snapshots,
// keyed by public name.
func ComputeDelta(prev, next Report) Delta {
	delta := Delta{
		Added:   diffRows(prev.Registers, next.Registers, publicKey),
		Removed: diffRows(next.Registers, prev.Registers, publicKey),
		Changed: []Change{},
	}

	for _, row := range next.Registers {
		old, ok := prev.Register(row.Public)
		if !ok {
			continue
		}
		if old.Value != row.Value || old.Status != row.Status {
			delta.Changed = append(delta.Changed, Change{Public: row.Public, Before: old, After: row})
		}
	}

	return delta
}

func publicKey(r RegisterRow) string {
	return r.Public
}

func diffRows[T any](from, to []T, key func(T) string) []T {
	fromSet := make(map[string]T, len(from))
	for _, row := range from {
		fromSet[key(row)] = row
	}
	var diff []T
	for _, row := range to {
		rowKey := key(row)
		if _, ok := fromSet[rowKey]; !ok {
			diff = append(diff, row)
		}
	}
	if diff == nil {
		diff = []T{}
	}
	return diff
}
