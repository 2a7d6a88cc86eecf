// Package inbox implements the per-vertex mailbox and the static routing
// table actors use to reach one another.
//
// An Inbox is a FIFO, unbounded, single-consumer queue: any goroutine may
// Post to it, only its owner ever TryPops from it, and the owner may
// SelfPost to defer a message to its own tail without ever dropping it.
// It is modeled on the channel-plus-select vertex event loop used by
// purpleidea/mgmt's per-resource goroutines (pgraph.go's Vertex.Events /
// Poke), adapted here to a non-blocking poll so many actors can also watch
// a shared termination flag without ever parking in a receive.
package inbox

import (
	"sync"

	"github.com/ghsmst/ghsmst/protocol"
)

// Inbox is a single-consumer FIFO queue of protocol.Message values.
type Inbox struct {
	mu   sync.Mutex
	buf  []protocol.Message
	head int
}

// NewInbox returns an empty Inbox.
func NewInbox() *Inbox {
	return &Inbox{}
}

// Post enqueues msg at the tail. Safe to call from any goroutine; never
// blocks and never drops a message.
func (ib *Inbox) Post(msg protocol.Message) {
	ib.mu.Lock()
	ib.buf = append(ib.buf, msg)
	ib.mu.Unlock()
}

// SelfPost re-enqueues msg at the tail. It is semantically identical to
// Post — the distinct name exists so call sites read as deliberate GHS
// "wait" deferrals rather than ordinary sends.
func (ib *Inbox) SelfPost(msg protocol.Message) {
	ib.Post(msg)
}

// TryPop removes and returns the oldest message, or reports ok=false if
// the inbox is currently empty. Never blocks.
func (ib *Inbox) TryPop() (msg protocol.Message, ok bool) {
	ib.mu.Lock()
	defer ib.mu.Unlock()

	if ib.head >= len(ib.buf) {
		ib.buf = ib.buf[:0]
		ib.head = 0
		return protocol.Message{}, false
	}

	msg = ib.buf[ib.head]
	ib.buf[ib.head] = protocol.Message{} // drop references so it can be GC'd
	ib.head++

	// Compact occasionally so a long-lived inbox doesn't retain an
	// ever-growing backing array once most of it has been drained.
	if ib.head > 64 && ib.head*2 > len(ib.buf) {
		remaining := len(ib.buf) - ib.head
		copy(ib.buf, ib.buf[ib.head:])
		ib.buf = ib.buf[:remaining]
		ib.head = 0
	}

	return msg, true
}
