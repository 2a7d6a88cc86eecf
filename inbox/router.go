package inbox

import (
	"fmt"

	"github.com/ghsmst/ghsmst/protocol"
)

// Router is the static vertex-id -> Inbox directory every actor uses to
// reach its neighbors. It is built once, before any actor starts,
// and is read-only thereafter: every goroutine may call Send concurrently
// without synchronization because the underlying slice is never resized
// or mutated after NewRouter returns.
type Router struct {
	inboxes []*Inbox
}

// NewRouter builds a Router with one fresh Inbox per vertex id 0..n-1.
func NewRouter(n int) *Router {
	r := &Router{inboxes: make([]*Inbox, n)}
	for i := range r.inboxes {
		r.inboxes[i] = NewInbox()
	}
	return r
}

// Inbox returns the mailbox owned by vertex id. The owner uses it to pop
// and self-post; every other vertex uses it only through Send.
func (r *Router) Inbox(id int) *Inbox {
	return r.inboxes[id]
}

// Send posts msg to the mailbox of vertex `to`. Safe for concurrent use by
// any number of sending actors.
func (r *Router) Send(to int, msg protocol.Message) {
	r.inboxes[to].Post(msg)
}

// NumVertices reports how many inboxes this router owns.
func (r *Router) NumVertices() int {
	return len(r.inboxes)
}

// String renders the router's size for diagnostics.
func (r *Router) String() string {
	return fmt.Sprintf("Router(vertices=%d)", len(r.inboxes))
}
