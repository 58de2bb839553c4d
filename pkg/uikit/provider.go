package uikit

import (
	"fmt"
	"reflect"

	"github.com/go-drift/drift/pkg/core"
)

// Scope provides a value to descendant widgets through drift's
// inherited-widget machinery. Descendants read it with ScopeOf and are
// rebuilt when the value changes:
//
//	uikit.Scope[*Session]{
//	    Value: session,
//	    Child: app,
//	}
//
// One Scope per value type: nesting two Scope[T] of the same T shadows
// the outer one, the usual inherited-widget rule.
type Scope[T any] struct {
	core.InheritedBase

	Value T
	Child core.Widget
}

// ChildWidget returns the subtree the value is provided to.
func (s Scope[T]) ChildWidget() core.Widget { return s.Child }

// UpdateShouldNotify reports whether dependents must rebuild. Values of
// comparable type are compared directly; non-comparable values always
// notify (over-notification is safe, under-notification is not).
func (s Scope[T]) UpdateShouldNotify(old core.InheritedWidget) bool {
	prev, ok := old.(Scope[T])
	if !ok {
		return true
	}
	return !scopeValuesEqual(s.Value, prev.Value)
}

func scopeValuesEqual[T any](a, b T) bool {
	av, bv := any(a), any(b)
	if av == nil || bv == nil {
		return av == nil && bv == nil
	}
	if t := reflect.TypeOf(av); !t.Comparable() {
		return false
	}
	return av == bv
}

// ScopeOf returns the value provided by the nearest Scope[T] ancestor
// and registers the calling widget as a dependent. The second return is
// false when no Scope[T] is in scope.
func ScopeOf[T any](ctx core.BuildContext) (T, bool) {
	inherited := ctx.DependOnInherited(reflect.TypeOf(Scope[T]{}), nil)
	if inherited == nil {
		var zero T
		return zero, false
	}
	scope, ok := inherited.(Scope[T])
	if !ok {
		var zero T
		return zero, false
	}
	return scope.Value, true
}

// MustScopeOf is ScopeOf for values the widget cannot build without.
// It panics when no Scope[T] ancestor exists: a missing provider is a
// wiring mistake, not a runtime condition.
func MustScopeOf[T any](ctx core.BuildContext) T {
	value, ok := ScopeOf[T](ctx)
	if !ok {
		panic(fmt.Sprintf("uikit: no Scope[%T] ancestor in scope", value))
	}
	return value
}
