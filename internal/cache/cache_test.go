package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type row struct {
	ID    string
	Value string
}

func (r row) Key() string { return r.ID }

func sample() []row {
	return []row{{"a", "one"}, {"b", "two"}, {"c", "three"}}
}

func TestApplyLocalUpdateIsStable(t *testing.T) {
	out := ApplyLocalUpdate(sample(), row{"b", "TWO"})

	// Same order, only the matching record replaced.
	assert.Equal(t, []row{{"a", "one"}, {"b", "TWO"}, {"c", "three"}}, out)
}

func TestApplyLocalUpdateMissingIDIsNoop(t *testing.T) {
	out := ApplyLocalUpdate(sample(), row{"z", "zed"})
	assert.Equal(t, sample(), out)
}

func TestRemoveLocal(t *testing.T) {
	out := RemoveLocal(sample(), "b")
	assert.Equal(t, []row{{"a", "one"}, {"c", "three"}}, out)

	out = RemoveLocal(out, "nope")
	assert.Equal(t, []row{{"a", "one"}, {"c", "three"}}, out)

	out = RemoveLocal(RemoveLocal(out, "a"), "c")
	assert.Empty(t, out)
}

func TestRemoveLocalLeavesInputIntact(t *testing.T) {
	in := sample()
	out := RemoveLocal(in, "a")

	assert.Equal(t, []row{{"b", "two"}, {"c", "three"}}, out)
	assert.Equal(t, sample(), in)
}
