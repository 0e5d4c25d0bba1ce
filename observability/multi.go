package observability

import "context"

// MultiObserver fans out each event to every observer in the slice, in
// order. An empty MultiObserver drops events.
type MultiObserver []Observer

// NewMultiObserver builds a MultiObserver from the given observers,
// skipping nil entries.
func NewMultiObserver(observers ...Observer) MultiObserver {
	multi := make(MultiObserver, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			multi = append(multi, obs)
		}
	}
	return multi
}

func (m MultiObserver) OnEvent(ctx context.Context, event Event) {
	for _, obs := range m {
		obs.OnEvent(ctx, event)
	}
}
