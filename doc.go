// Package flexel provides a constraint-based layout and interaction engine
// for property-bound panel UIs.
//
// Users import this single package for the complete public API: element
// construction, layout types, stable identity, reactive bindings, hit
// testing, and the per-tick engine. The host driver rebuilds the element
// tree every tick, then runs measure, arrange, binding sync, hit-list
// construction, and draw — all synchronous, on one goroutine.
package flexel
