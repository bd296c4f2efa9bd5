package flexel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignKeysBuildOrder(t *testing.T) {
	a := Leaf(10, 10)
	b := Leaf(10, 10)
	inner := Row(WithChildren(b))
	root := Column(WithChildren(a, inner))

	byKey := assignKeys(root, "owner", func(msg string) {
		t.Fatalf("unexpected violation: %s", msg)
	})

	assert.Equal(t, "owner:0", root.Key().ID())
	assert.Equal(t, "owner:0/0", a.Key().ID())
	assert.Equal(t, "owner:0/1", inner.Key().ID())
	assert.Equal(t, "owner:0/1/0", b.Key().ID())

	require.Len(t, byKey, 4)
	assert.Same(t, b, byKey["owner:0/1/0"])
}

func TestAssignKeysExplicitSurvivesReorder(t *testing.T) {
	build := func(first bool) (root, save, load *Element) {
		save = Leaf(10, 10, WithKey("save"))
		load = Leaf(10, 10, WithKey("load"))
		if first {
			root = Row(WithChildren(save, load))
		} else {
			root = Row(WithChildren(load, save))
		}
		return root, save, load
	}

	rootA, saveA, _ := build(true)
	assignKeys(rootA, "owner", func(string) {})

	rootB, saveB, _ := build(false)
	assignKeys(rootB, "owner", func(string) {})

	// Same identity across rebuilds despite the sibling order changing.
	assert.Equal(t, saveA.Key().ID(), saveB.Key().ID())
	assert.NotEqual(t, rootA.Key().ID(), saveB.Key().ID())
}

func TestAssignKeysPositionalShiftsOnReorder(t *testing.T) {
	a1 := Leaf(10, 10)
	b1 := Leaf(10, 10)
	assignKeys(Row(WithChildren(a1, b1)), "owner", func(string) {})

	a2 := Leaf(10, 10)
	b2 := Leaf(10, 10)
	assignKeys(Row(WithChildren(b2, a2)), "owner", func(string) {})

	// Without explicit keys, identity follows position, not the widget.
	assert.Equal(t, a1.Key().ID(), b2.Key().ID())
}

func TestAssignKeysDuplicateReportedAndDeduped(t *testing.T) {
	a := Leaf(10, 10, WithKey("dup"))
	b := Leaf(10, 10, WithKey("dup"))
	root := Row(WithChildren(a, b))

	var reports []string
	byKey := assignKeys(root, "owner", func(msg string) {
		reports = append(reports, msg)
	})

	require.Len(t, reports, 1)
	assert.Contains(t, reports[0], "duplicate stable key")

	// Both elements must still be individually addressable.
	assert.NotEqual(t, a.Key().ID(), b.Key().ID())
	assert.Len(t, byKey, 3)
}

func TestStableKeyZero(t *testing.T) {
	var k StableKey
	assert.True(t, k.IsZero())
	assert.False(t, StableKey{Owner: "o", Path: "0"}.IsZero())
}
