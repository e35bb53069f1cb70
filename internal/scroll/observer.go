// Package scroll observes the page scroll offset. It derives the navbar
// elevation signal and tracks which sections intersect the visible window.
package scroll

import (
	"errors"

	"github.com/renato0307/folio/internal/logging"
)

// Threshold is the offset, in scroll units, above which the navbar is
// elevated.
const Threshold = 50.0

// ErrNoSurface is returned when there is nothing to observe.
var ErrNoSurface = errors.New("scroll: no scroll surface")

// Elevated is the pure elevation rule.
func Elevated(offset float64) bool {
	return offset > Threshold
}

// Source delivers scroll offsets to subscribers. Subscribe must not block and
// the callback is passive: it cannot cancel or alter the scroll.
type Source interface {
	Subscribe(fn func(offset float64)) (cancel func(), err error)
}

// Observer holds the last observed offset for one navbar instance.
type Observer struct {
	offset    float64
	cancel    func()
	closed    bool
	listeners []func(elevated bool)
	log       *logging.Logger
}

// New subscribes to src. When registration fails the observer stays in the
// non-elevated state for its whole lifetime.
func New(src Source) *Observer {
	o := &Observer{log: logging.For("scroll")}

	if src == nil {
		o.log.Warn("scroll observation disabled", "error", ErrNoSurface)
		return o
	}

	cancel, err := src.Subscribe(o.observe)
	if err != nil {
		o.log.Warn("scroll observation disabled", "error", err)
		return o
	}
	o.cancel = cancel
	return o
}

func (o *Observer) observe(offset float64) {
	if o.closed {
		return
	}
	o.offset = offset

	elevated := Elevated(offset)
	for _, fn := range o.listeners {
		fn(elevated)
	}
}

// OnChange registers fn to receive the recomputed elevation on every scroll
// event, whether or not the value changed.
func (o *Observer) OnChange(fn func(elevated bool)) {
	o.listeners = append(o.listeners, fn)
}

// Offset returns the last observed offset.
func (o *Observer) Offset() float64 {
	return o.offset
}

// Elevated reports whether the last observed offset is past Threshold.
func (o *Observer) Elevated() bool {
	return Elevated(o.offset)
}

// Attached reports whether the observer holds a live subscription.
func (o *Observer) Attached() bool {
	return o.cancel != nil && !o.closed
}

// Close cancels the subscription. Notifications arriving afterwards are
// dropped. Close is idempotent.
func (o *Observer) Close() {
	if o.closed {
		return
	}
	o.closed = true
	if o.cancel != nil {
		o.cancel()
		o.cancel = nil
	}
	o.listeners = nil
}
