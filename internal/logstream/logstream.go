// Package logstream fans display lines out to live viewers.
package logstream

import "sync"

// subscriberBuffer is how many lines a viewer may fall behind before lines are dropped.
const subscriberBuffer = 256

// Stream keeps a bounded backlog of lines and broadcasts new ones to subscribers.
type Stream struct {
	mu      sync.RWMutex
	subs    map[chan string]struct{}
	backlog []string
	max     int
	total   uint64
	dropped uint64
}

// NewStream creates a stream that replays at most maxBacklog lines to new subscribers.
func NewStream(maxBacklog int) *Stream {
	if maxBacklog < 0 {
		maxBacklog = 0
	}
	return &Stream{
		subs: make(map[chan string]struct{}),
		max:  maxBacklog,
	}
}

// Append publishes a line; it satisfies receiver.Sink.
func (s *Stream) Append(line string) {
	s.Publish(line)
}

// Publish records a line in the backlog and sends it to every subscriber.
// It never blocks: a subscriber whose buffer is full misses the line.
func (s *Stream) Publish(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.total++
	if s.max > 0 {
		if len(s.backlog) == s.max {
			copy(s.backlog, s.backlog[1:])
			s.backlog = s.backlog[:s.max-1]
		}
		s.backlog = append(s.backlog, line)
	}
	for ch := range s.subs {
		select {
		case ch <- line:
		default:
			s.dropped++
		}
	}
}

// Subscribe registers a new viewer and returns its channel with the current backlog.
func (s *Stream) Subscribe() (chan string, []string) {
	ch := make(chan string, subscriberBuffer)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs[ch] = struct{}{}
	backlog := make([]string, len(s.backlog))
	copy(backlog, s.backlog)
	return ch, backlog
}

// Unsubscribe removes a viewer subscription.
func (s *Stream) Unsubscribe(ch chan string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.subs[ch]; !ok {
		return
	}
	delete(s.subs, ch)
	close(ch)
}

// Stats reports the number of published and dropped lines and current subscribers.
func (s *Stream) Stats() (total, dropped uint64, subscribers int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.total, s.dropped, len(s.subs)
}
