package notify

import "sync"

// Level classifies a notification for display.
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

// Event is a single user-facing notification.
type Event struct {
	Level   Level
	Message string
}

// Bus is a typed publish/subscribe channel for notifications, scoped to the
// application's lifetime. Subscribers receive events on their own buffered
// channel; a subscriber that falls behind loses events rather than blocking
// the publisher.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan Event
}

// NewBus returns an empty bus ready for use.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan Event)}
}

// Subscribe registers a new subscriber and returns its id together with the
// receive channel. buffer <= 0 uses a small default.
func (b *Bus) Subscribe(buffer int) (int, <-chan Event) {
	if buffer <= 0 {
		buffer = 16
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan Event, buffer)
	b.subs[id] = ch
	return id, ch
}

// Unsubscribe removes a subscriber and closes its channel. Unknown ids are
// ignored.
func (b *Bus) Unsubscribe(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subs[id]; ok {
		delete(b.subs, id)
		close(ch)
	}
}

// Publish delivers the event to every current subscriber without blocking.
func (b *Bus) Publish(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Info publishes an informational message.
func (b *Bus) Info(msg string) { b.Publish(Event{Level: LevelInfo, Message: msg}) }

// Warn publishes a warning.
func (b *Bus) Warn(msg string) { b.Publish(Event{Level: LevelWarn, Message: msg}) }

// Error publishes an error message.
func (b *Bus) Error(msg string) { b.Publish(Event{Level: LevelError, Message: msg}) }
