package layout

import "testing"

func TestNode_AddRemoveChild(t *testing.T) {
	parent := NewNode(KindRow)
	a := leaf(10, 10)
	b := leaf(20, 10)
	c := leaf(30, 10)
	parent.AddChild(a, b, c)

	if len(parent.Children) != 3 {
		t.Fatalf("len(Children) = %d, want 3", len(parent.Children))
	}
	if a.Parent() != parent {
		t.Error("child parent back-reference not set")
	}

	if !parent.RemoveChild(b) {
		t.Fatal("RemoveChild returned false for present child")
	}
	// Order of remaining siblings is preserved.
	if parent.Children[0] != a || parent.Children[1] != c {
		t.Error("sibling order not preserved after removal")
	}
	if b.Parent() != nil {
		t.Error("removed child should have nil parent")
	}
	if parent.RemoveChild(b) {
		t.Error("RemoveChild returned true for absent child")
	}
}

func TestNode_WalkPaintOrder(t *testing.T) {
	root := NewNode(KindColumn)
	rowNode := NewNode(KindRow)
	a := leaf(1, 1)
	b := leaf(2, 2)
	rowNode.AddChild(a, b)
	c := leaf(3, 3)
	root.AddChild(rowNode, c)

	var order []*Node
	root.Walk(func(n *Node) bool {
		order = append(order, n)
		return true
	})

	want := []*Node{root, rowNode, a, b, c}
	if len(order) != len(want) {
		t.Fatalf("walk visited %d nodes, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("walk order[%d] wrong", i)
		}
	}
}

func TestNode_Reset(t *testing.T) {
	root := NewNode(KindRow)
	child := leaf(10, 10)
	root.AddChild(child)

	Measure(root, Tight(100, 20))
	Arrange(root, 0, 0)
	root.Reset()

	if root.Measured() || root.Arranged() || child.Measured() || child.Arranged() {
		t.Error("Reset should clear computed flags on the whole subtree")
	}
	if !root.Rect().IsEmpty() {
		t.Error("Reset should clear computed rects")
	}
}

func TestKind_String(t *testing.T) {
	for k, want := range map[Kind]string{
		KindLeaf:   "leaf",
		KindRow:    "row",
		KindColumn: "column",
		KindSplit:  "split",
		KindBox:    "box",
	} {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
