package flexel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// recordingBackend captures paint commands in order.
type recordingBackend struct {
	rects  []Rect
	styles []Style
}

func (r *recordingBackend) Paint(rect Rect, style Style) {
	r.rects = append(r.rects, rect)
	r.styles = append(r.styles, style)
}

func dashboardBuild(tc *TickContext) *Element {
	header := Leaf(300, 24, WithKey("header"), WithBasis(24))
	sidebar := Leaf(60, 176, WithKey("sidebar"), WithBasis(60))
	content := Leaf(120, 176, WithKey("content"), WithWeight(1))
	body := Row(WithKey("body"), WithWeight(1), WithChildren(sidebar, content))
	return Column(WithKey("root"), WithChildren(header, body))
}

func TestRunTickSequence(t *testing.T) {
	e := NewEngine(WithLogger(zaptest.NewLogger(t)), WithOwner("test"))
	backend := &recordingBackend{}

	changed, err := e.RunTick(1, dashboardBuild, Tight(300, 200), Point{}, backend)
	require.NoError(t, err)
	assert.False(t, changed)

	// Three leaves paint in tree order: header, sidebar, content. The
	// column's height distribution gives the body everything below the
	// fixed header; widths stay natural.
	want := []Rect{
		{X: 0, Y: 0, Width: 300, Height: 24},
		{X: 0, Y: 24, Width: 60, Height: 176},
		{X: 60, Y: 24, Width: 120, Height: 176},
	}
	if diff := cmp.Diff(want, backend.rects); diff != "" {
		t.Errorf("paint rects mismatch (-want +got):\n%s", diff)
	}
}

func TestEngineErrorsBeforeBuild(t *testing.T) {
	e := NewEngine()

	_, err := e.Measure(Tight(100, 100))
	assert.ErrorIs(t, err, ErrNoRoot)
	assert.ErrorIs(t, e.Arrange(0, 0), ErrNoRoot)
	assert.ErrorIs(t, e.Draw(&recordingBackend{}), ErrNoRoot)
}

func TestEngineArrangeBeforeMeasure(t *testing.T) {
	e := NewEngine(WithOwner("test"))
	tc := e.TickContext(1)
	_, err := e.Build(tc, dashboardBuild)
	require.NoError(t, err)

	assert.ErrorIs(t, e.Arrange(0, 0), ErrNotMeasured)
	assert.ErrorIs(t, e.Draw(&recordingBackend{}), ErrNotArranged)
}

func TestFailedTickKeepsPriorHitList(t *testing.T) {
	e := NewEngine(WithLogger(zaptest.NewLogger(t)), WithOwner("test"))

	_, err := e.RunTick(1, func(tc *TickContext) *Element {
		return Leaf(100, 100, WithKey("btn"), WithOnClick(func() {}))
	}, Tight(100, 100), Point{}, nil)
	require.NoError(t, err)
	require.Equal(t, 1, e.Hits().Len())
	prior := e.Hits()

	// The next tick's build fails; the stale hit list stays live so
	// interaction keeps working against last tick's rectangles.
	_, err = e.RunTick(2, func(tc *TickContext) *Element {
		return nil
	}, Tight(100, 100), Point{}, nil)
	assert.ErrorIs(t, err, ErrNoRoot)
	if diff := cmp.Diff(prior, e.Hits(), cmpopts.IgnoreUnexported(HitTarget{})); diff != "" {
		t.Errorf("hit list changed across failed tick (-want +got):\n%s", diff)
	}
}

func TestSyncPanicDegradesOnlyThatElement(t *testing.T) {
	e := NewEngine(WithLogger(zaptest.NewLogger(t)), WithOwner("test"))
	healthySyncs := 0
	var bad *Element

	build := func(tc *TickContext) *Element {
		bad = Leaf(10, 10, WithKey("bad"), WithBinding(Bind(
			func(tc *TickContext) (int, string, bool) {
				panic("resolver blew up")
			},
			func(int) {},
		)))
		good := Leaf(10, 10, WithKey("good"), WithBinding(Bind(
			func(tc *TickContext) (int, string, bool) {
				healthySyncs++
				return 1, "src", true
			},
			func(int) {},
		)))
		return Row(WithChildren(bad, good))
	}

	changed, err := e.RunTick(1, build, Tight(20, 10), Point{}, nil)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.False(t, bad.Enabled())
	assert.Equal(t, 1, healthySyncs)
}

func TestStrictModeDuplicateKeyPanics(t *testing.T) {
	e := NewEngine(WithStrict(), WithOwner("test"))
	tc := e.TickContext(1)

	assert.Panics(t, func() {
		e.Build(tc, func(tc *TickContext) *Element {
			return Row(WithChildren(
				Leaf(10, 10, WithKey("dup")),
				Leaf(10, 10, WithKey("dup")),
			))
		})
	})
}

func TestProductionModeDuplicateKeyLogsAndContinues(t *testing.T) {
	e := NewEngine(WithLogger(zaptest.NewLogger(t)), WithOwner("test"))
	tc := e.TickContext(1)

	root, err := e.Build(tc, func(tc *TickContext) *Element {
		return Row(WithChildren(
			Leaf(10, 10, WithKey("dup")),
			Leaf(10, 10, WithKey("dup")),
		))
	})
	require.NoError(t, err)
	assert.NotNil(t, root)
	// Both duplicates stayed addressable.
	assert.NotNil(t, e.ElementByKey("test:0/dup"))
	assert.NotNil(t, e.ElementByKey("test:0/dup#1"))
}

func TestDisabledLeafDrawsPlaceholder(t *testing.T) {
	styles := NewStyleResolver()
	styles.Define("hot", Style{Foreground: "#ff0000"})
	e := NewEngine(WithStyles(styles), WithOwner("test"))

	var leaf *Element
	build := func(tc *TickContext) *Element {
		leaf = Leaf(100, 100, WithKey("leaf"), WithStyle("hot"))
		return Box(WithChildren(leaf))
	}

	backend := &recordingBackend{}
	_, err := e.RunTick(1, build, Tight(100, 100), Point{}, backend)
	require.NoError(t, err)
	require.Len(t, backend.styles, 1)
	assert.Equal(t, "#ff0000", backend.styles[0].Foreground)

	// Disabled widgets keep their rectangle but render inert.
	leaf.SetEnabled(false)
	backend = &recordingBackend{}
	require.NoError(t, e.Draw(backend))
	require.Len(t, backend.rects, 1)
	assert.Equal(t, Rect{X: 0, Y: 0, Width: 100, Height: 100}, backend.rects[0])
	assert.Equal(t, styles.Placeholder(), backend.styles[0])
}

func TestShapeChangeRelayoutsSubtree(t *testing.T) {
	e := NewEngine(WithLogger(zaptest.NewLogger(t)), WithOwner("test"))

	// The binding outlives builds, so its shape cache spans ticks. Its
	// apply resizes the label, and the shape change must re-measure the
	// containing subtree without another build pass.
	value := "ab"
	var label *Element
	b := Bind(
		func(tc *TickContext) (string, string, bool) {
			return value, "field", true
		},
		func(v string) {
			label.Node().Intrinsic = Size{Width: 10 * float64(len(v)), Height: 10}
		},
	).WithShape(func(tc *TickContext) string {
		return value
	})

	build := func(tc *TickContext) *Element {
		label = Leaf(10*float64(len(value)), 10, WithKey("label"), WithBinding(b))
		return Row(WithKey("root"), WithChildren(label))
	}

	_, err := e.RunTick(1, build, Loose(300, 100), Point{}, nil)
	require.NoError(t, err)
	require.Equal(t, 20.0, label.Rect().Width)

	// External state changes between builds; sync alone picks it up.
	value = "abcd"
	tc := e.TickContext(2)
	changed, err := e.Sync(tc)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 40.0, label.Rect().Width)
	assert.Equal(t, 40.0, e.Root().Rect().Width)
}
