// Package cache holds the reconciliation contract shared by every view that
// keeps a local copy of remote records. Both operations run only after the
// remote write is confirmed; nothing here predicts success.
package cache

// Record is anything addressable by id in a view's local collection.
type Record interface {
	Key() string
}

// ApplyLocalUpdate replaces the record whose id matches updated, preserving
// the position of every other record (a stable update, not a re-sort). When
// the id is not present the collection is returned unchanged.
func ApplyLocalUpdate[T Record](list []T, updated T) []T {
	for i := range list {
		if list[i].Key() == updated.Key() {
			list[i] = updated
		}
	}
	return list
}

// RemoveLocal returns the collection without the record of the given id,
// keeping the order of the remaining records. The input slice is left
// untouched so views holding the old collection are not corrupted.
func RemoveLocal[T Record](list []T, id string) []T {
	out := make([]T, 0, len(list))
	for _, rec := range list {
		if rec.Key() != id {
			out = append(out, rec)
		}
	}
	return out
}
