package watch

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is the detection cadence of the polling source.
const DefaultInterval = 500 * time.Millisecond

// Source is the unified location-changed event source. The polling source is
// the only backing required for correctness; push notifications exist purely
// to lower detection latency.
type Source interface {
	Locations() <-chan string
	Stop()
}

// Holder is a race-free cell for the host's current location, written by the
// UI loop and read by the polling source goroutine.
type Holder struct {
	mu  sync.Mutex
	loc string
}

func (h *Holder) Set(location string) {
	h.mu.Lock()
	h.loc = location
	h.mu.Unlock()
}

func (h *Holder) Get() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.loc
}

// PollSource re-evaluates the current location at a fixed interval. It owns
// its timer handle; Stop tears it down.
type PollSource struct {
	ctx    context.Context
	cancel context.CancelFunc
	events chan string
	wg     sync.WaitGroup
}

// NewPollSource starts a poller that reads current() every interval.
// Intervals <= 0 fall back to DefaultInterval.
func NewPollSource(current func() string, interval time.Duration) *PollSource {
	if interval <= 0 {
		interval = DefaultInterval
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &PollSource{
		ctx:    ctx,
		cancel: cancel,
		events: make(chan string, 16),
	}
	s.wg.Add(1)
	go s.poll(current, interval)
	go func() {
		s.wg.Wait()
		close(s.events)
	}()
	return s
}

func (s *PollSource) poll(current func() string, interval time.Duration) {
	defer s.wg.Done()

	emit := func() bool {
		select {
		case <-s.ctx.Done():
			return false
		case s.events <- current():
			return true
		}
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}

// Locations returns the channel of polled locations.
func (s *PollSource) Locations() <-chan string {
	return s.events
}

// Stop cancels the poller. The channel closes once the goroutine exits.
func (s *PollSource) Stop() {
	s.cancel()
}

// NotifySource delivers location changes pushed by the host the moment they
// happen, the low-latency counterpart to the poller.
type NotifySource struct {
	mu     sync.Mutex
	events chan string
	closed bool
}

func NewNotifySource() *NotifySource {
	return &NotifySource{events: make(chan string, 16)}
}

// Notify publishes a location change. Drops the event when the buffer is
// full; the poller picks the change up on its next cycle.
func (s *NotifySource) Notify(location string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.events <- location:
	default:
	}
}

func (s *NotifySource) Locations() <-chan string {
	return s.events
}

func (s *NotifySource) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.events)
}

// Merge fans several sources into one. Both detection signals funnel into
// the same transition logic; they differ only in when they fire.
type mergedSource struct {
	sources []Source
	events  chan string
	wg      sync.WaitGroup
}

func Merge(sources ...Source) Source {
	m := &mergedSource{
		sources: sources,
		events:  make(chan string, 16),
	}
	for _, src := range sources {
		m.wg.Add(1)
		go func(src Source) {
			defer m.wg.Done()
			for loc := range src.Locations() {
				m.events <- loc
			}
		}(src)
	}
	go func() {
		m.wg.Wait()
		close(m.events)
	}()
	return m
}

func (m *mergedSource) Locations() <-chan string {
	return m.events
}

func (m *mergedSource) Stop() {
	for _, src := range m.sources {
		src.Stop()
	}
}
