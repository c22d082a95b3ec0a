package node

import (
	"fmt"
	"iter"
)

// Builder turns values of type C into nodes whose successors are computed
// by a transition function. All nodes built by the same Builder share it,
// so equality between them reduces to equality of their current values.
type Builder[C comparable] struct {
	next func(C) iter.Seq[C]
}

// NewBuilder returns a Builder driven by next. A nil next yields nodes
// without successors.
func NewBuilder[C comparable](next func(C) iter.Seq[C]) *Builder[C] {
	return &Builder[C]{next: next}
}

// Build wraps current into a node.
func (b *Builder[C]) Build(current C) Func[C] {
	return Func[C]{current: current, builder: b}
}

// Func is a node produced by a Builder.
type Func[C comparable] struct {
	current C
	builder *Builder[C]
}

// Value returns the wrapped value.
func (f Func[C]) Value() C { return f.current }

// String formats the wrapped value.
func (f Func[C]) String() string { return fmt.Sprint(f.current) }

// Outgoing applies the builder's transition function to the wrapped value
// and wraps every successor with the same builder.
func (f Func[C]) Outgoing() iter.Seq[Func[C]] {
	return func(yield func(Func[C]) bool) {
		if f.builder == nil || f.builder.next == nil {
			return
		}
		for c := range f.builder.next(f.current) {
			if !yield(Func[C]{current: c, builder: f.builder}) {
				return
			}
		}
	}
}

// WeightedBuilder is the weighted counterpart of Builder.
type WeightedBuilder[C comparable, W Weight] struct {
	next func(C) iter.Seq2[W, C]
}

// NewWeightedBuilder returns a WeightedBuilder driven by next. A nil next
// yields nodes without successors.
func NewWeightedBuilder[C comparable, W Weight](next func(C) iter.Seq2[W, C]) *WeightedBuilder[C, W] {
	return &WeightedBuilder[C, W]{next: next}
}

// Build wraps current into a weighted node.
func (b *WeightedBuilder[C, W]) Build(current C) WeightedFunc[C, W] {
	return WeightedFunc[C, W]{current: current, builder: b}
}

// WeightedFunc is a node produced by a WeightedBuilder. It satisfies both
// Weighted and Node; the latter drops the weights.
type WeightedFunc[C comparable, W Weight] struct {
	current C
	builder *WeightedBuilder[C, W]
}

// Value returns the wrapped value.
func (f WeightedFunc[C, W]) Value() C { return f.current }

// String formats the wrapped value.
func (f WeightedFunc[C, W]) String() string { return fmt.Sprint(f.current) }

// WeightedOutgoing yields (weight, successor) pairs from the transition
// function.
func (f WeightedFunc[C, W]) WeightedOutgoing() iter.Seq2[W, WeightedFunc[C, W]] {
	return func(yield func(W, WeightedFunc[C, W]) bool) {
		if f.builder == nil || f.builder.next == nil {
			return
		}
		for w, c := range f.builder.next(f.current) {
			if !yield(w, WeightedFunc[C, W]{current: c, builder: f.builder}) {
				return
			}
		}
	}
}

// Outgoing yields the successors without their weights.
func (f WeightedFunc[C, W]) Outgoing() iter.Seq[WeightedFunc[C, W]] {
	return func(yield func(WeightedFunc[C, W]) bool) {
		for _, n := range f.WeightedOutgoing() {
			if !yield(n) {
				return
			}
		}
	}
}
