package flexel

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sorenbell/flexel/internal/debug"
	"github.com/sorenbell/flexel/pkg/layout"
)

var (
	// ErrNoRoot is returned when a pass runs before Build has produced a
	// tree for the current tick.
	ErrNoRoot = errors.New("flexel: no element tree built")

	// ErrNotMeasured is returned when Arrange runs before Measure.
	ErrNotMeasured = errors.New("flexel: tree not measured")

	// ErrNotArranged is returned when Draw runs before Arrange.
	ErrNotArranged = errors.New("flexel: tree not arranged")
)

// Engine drives the per-tick sequence for one panel: build, measure,
// arrange, binding sync, hit-list construction, draw. It owns the
// interaction state and the epoch-scoped resolution cache; the element
// tree itself is rebuilt every tick and exclusively owned by that tick.
//
// Everything runs synchronously on the driving goroutine. The engine
// spawns no goroutines and never blocks.
type Engine struct {
	log    *zap.Logger
	strict bool
	owner  string
	styles *StyleResolver

	interactions *InteractionState
	cache        *memoCache

	root     *Element
	byKey    map[string]*Element
	bindings []Binder
	hits     HitList
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the logger used for invariant-violation and degradation
// reports. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) EngineOption {
	return func(e *Engine) {
		e.log = log
	}
}

// WithStrict makes invariant violations panic instead of clamp-and-log.
// Intended for development builds; production keeps the default.
func WithStrict() EngineOption {
	return func(e *Engine) {
		e.strict = true
	}
}

// WithStyles sets the style resolver passed through tick contexts.
func WithStyles(r *StyleResolver) EngineOption {
	return func(e *Engine) {
		e.styles = r
	}
}

// WithOwner sets the owner id baked into every stable key. Defaults to a
// fresh UUID per engine, so two panels never collide.
func WithOwner(id string) EngineOption {
	return func(e *Engine) {
		e.owner = id
	}
}

// NewEngine creates an engine with the given options.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		log:          zap.NewNop(),
		owner:        uuid.NewString(),
		styles:       NewStyleResolver(),
		interactions: NewInteractionState(),
		cache:        newMemoCache(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Owner returns the stable-key owner id.
func (e *Engine) Owner() string {
	return e.owner
}

// Root returns the current tick's element tree, or nil before Build.
func (e *Engine) Root() *Element {
	return e.root
}

// Interactions returns the tick-spanning hover/press/focus state.
func (e *Engine) Interactions() *InteractionState {
	return e.interactions
}

// Styles returns the engine's style resolver.
func (e *Engine) Styles() *StyleResolver {
	return e.styles
}

// Hits returns the most recent successfully built hit list.
func (e *Engine) Hits() HitList {
	return e.hits
}

// ElementByKey returns the element with the given key id in the current
// tree, or nil.
func (e *Engine) ElementByKey(id string) *Element {
	return e.byKey[id]
}

// TickContext starts a tick scoped to the given epoch. Advancing the
// epoch invalidates the resolution cache wholesale; re-entering the same
// epoch keeps it.
func (e *Engine) TickContext(epoch int64) *TickContext {
	e.cache.advance(epoch)
	return &TickContext{Epoch: epoch, Styles: e.styles, cache: e.cache}
}

// Build runs the driver's build function and installs the resulting tree:
// stable keys are assigned in build order, duplicates reported, and the
// tick's bindings collected. The previous tree is discarded wholesale.
func (e *Engine) Build(tc *TickContext, build func(*TickContext) *Element) (*Element, error) {
	if build == nil {
		return nil, errors.New("flexel: nil build function")
	}
	root := build(tc)
	if root == nil {
		return nil, ErrNoRoot
	}

	e.root = root
	e.byKey = assignKeys(root, e.owner, func(msg string) {
		e.violation(msg)
	})

	e.bindings = e.bindings[:0]
	root.Walk(func(el *Element) bool {
		e.bindings = append(e.bindings, el.bindings...)
		return true
	})

	debug.Log("build: %d elements, %d bindings", len(e.byKey), len(e.bindings))
	return root, nil
}

// Measure sizes the current tree under the driver's root constraints.
// Constraints should be tight on any axis matching a fixed region size
// and loose otherwise.
func (e *Engine) Measure(c Constraints) (Size, error) {
	if e.root == nil {
		return Size{}, ErrNoRoot
	}
	return layout.Measure(e.root.node, c), nil
}

// Arrange positions the measured tree with its top-left corner at (x, y).
func (e *Engine) Arrange(x, y float64) error {
	if e.root == nil {
		return ErrNoRoot
	}
	if !e.root.node.Measured() {
		return ErrNotMeasured
	}
	layout.Arrange(e.root.node, x, y)
	return nil
}

// Sync runs every binding once against the tick context and reports
// whether anything changed. Bindings requesting structural relayout get a
// subtree-local re-measure, bubbling to the parent only when the
// subtree's own size changed.
//
// A binding that panics degrades only its own element: the element is
// disabled and siblings keep syncing.
func (e *Engine) Sync(tc *TickContext) (bool, error) {
	if e.root == nil {
		return false, ErrNoRoot
	}

	changed := false
	for _, b := range e.bindings {
		r := e.syncOne(b, tc)
		if r.Changed {
			changed = true
		}
		if r.Relayout {
			e.relayoutSubtree(b.Element())
		}
	}
	return changed, nil
}

func (e *Engine) syncOne(b Binder, tc *TickContext) (result SyncResult) {
	defer func() {
		if rec := recover(); rec != nil {
			if el := b.Element(); el != nil {
				el.SetEnabled(false)
			}
			e.violation(fmt.Sprintf("binding sync panicked: %v", rec))
			result = SyncResult{Changed: true}
		}
	}()
	return b.Sync(tc)
}

// relayoutSubtree re-measures the subtree rooted at el under the
// constraints it last saw. If the subtree's size is unchanged the fix is
// contained and only the subtree is re-arranged in place; otherwise the
// change bubbles to the parent.
func (e *Engine) relayoutSubtree(el *Element) {
	if el == nil || !el.node.Measured() {
		return
	}
	node := el.node
	oldSize := node.Size()
	oldRect := node.Rect()

	newSize := layout.Measure(node, node.LastConstraints())
	if newSize == oldSize || el.parent == nil {
		layout.Arrange(node, oldRect.X, oldRect.Y)
		return
	}
	e.relayoutSubtree(el.parent)
}

// BuildHitList rebuilds the hit list from the arranged tree. If the
// current tick never arranged successfully, the prior tick's list — and
// its rectangles — stay valid until the next successful tick.
func (e *Engine) BuildHitList() HitList {
	if e.root == nil || !e.root.node.Arranged() {
		return e.hits
	}
	e.hits = BuildHitList(e.root)
	return e.hits
}

// RunTick executes the full per-tick sequence: build, measure, arrange,
// sync, hit list, draw. A nil backend skips the draw step. Returns
// whether any binding reported a change.
func (e *Engine) RunTick(epoch int64, build func(*TickContext) *Element, c Constraints, origin Point, backend PaintBackend) (bool, error) {
	tc := e.TickContext(epoch)

	if _, err := e.Build(tc, build); err != nil {
		return false, err
	}
	if _, err := e.Measure(c); err != nil {
		return false, err
	}
	if err := e.Arrange(origin.X, origin.Y); err != nil {
		return false, err
	}
	changed, err := e.Sync(tc)
	if err != nil {
		return changed, err
	}
	e.BuildHitList()
	if backend != nil {
		if err := e.Draw(backend); err != nil {
			return changed, err
		}
	}
	return changed, nil
}

// violation handles an invariant violation per the error policy: fail
// loudly in strict (development) mode, clamp and report otherwise.
func (e *Engine) violation(msg string) {
	if e.strict {
		panic("flexel: " + msg)
	}
	e.log.Warn(msg, zap.String("owner", e.owner))
}
