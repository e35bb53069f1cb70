package scroll

// ViewportSource adapts a scrollable viewport to Source. The owner calls
// Publish with the viewport's vertical offset after every scroll update.
type ViewportSource struct {
	subs   map[int]func(float64)
	order  []int
	nextID int
}

// NewViewportSource creates a source with no subscribers.
func NewViewportSource() *ViewportSource {
	return &ViewportSource{subs: make(map[int]func(float64))}
}

// Subscribe implements Source.
func (v *ViewportSource) Subscribe(fn func(offset float64)) (func(), error) {
	if fn == nil {
		return nil, ErrNoSurface
	}

	id := v.nextID
	v.nextID++
	v.subs[id] = fn
	v.order = append(v.order, id)

	return func() {
		delete(v.subs, id)
		for i, o := range v.order {
			if o == id {
				v.order = append(v.order[:i], v.order[i+1:]...)
				break
			}
		}
	}, nil
}

// Publish delivers offset to every subscriber in subscription order.
func (v *ViewportSource) Publish(offset float64) {
	ids := append([]int(nil), v.order...)
	for _, id := range ids {
		if fn, ok := v.subs[id]; ok {
			fn(offset)
		}
	}
}

// Listeners returns the number of live subscriptions.
func (v *ViewportSource) Listeners() int {
	return len(v.subs)
}
