package domain

import "github.com/Vovarama1992/planbmusic/internal/ports"

// ProgressBus fans batch progress out to whoever drains Events. Events are
// dropped when nobody keeps up.
type ProgressBus struct {
	events chan ports.ProgressEvent
}

func NewProgressBus(buffer int) *ProgressBus {
	return &ProgressBus{events: make(chan ports.ProgressEvent, buffer)}
}

func (b *ProgressBus) Events() <-chan ports.ProgressEvent { return b.events }

func (b *ProgressBus) Publish(ev ports.ProgressEvent) {
	if b == nil || ev.RoomID == "" {
		return
	}
	select {
	case b.events <- ev:
	default:
	}
}

type nopProgress struct{}

func (nopProgress) Publish(ports.ProgressEvent) {}

func progressOrNop(p ports.ProgressSink) ports.ProgressSink {
	if p == nil {
		return nopProgress{}
	}
	return p
}
