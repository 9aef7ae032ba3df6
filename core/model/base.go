// Package model holds the state plumbing shared by every transformer in
// the preparation pipeline.
package model

// TransformerState represents whether a transformer has been fitted.
type TransformerState int

const (
	// NotFitted is the state before Fit has been called.
	NotFitted TransformerState = iota
	// Fitted is the state after a successful Fit.
	Fitted
)

// BaseTransformer is embedded by every fit/transform component.
type BaseTransformer struct {
	state TransformerState
}

// IsFitted reports whether the transformer has been fitted.
func (b *BaseTransformer) IsFitted() bool {
	return b.state == Fitted
}

// SetFitted marks the transformer as fitted.
func (b *BaseTransformer) SetFitted() {
	b.state = Fitted
}

// Reset returns the transformer to its initial state.
func (b *BaseTransformer) Reset() {
	b.state = NotFitted
}
