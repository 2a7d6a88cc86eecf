// Package protocol defines the wire vocabulary of the Gallager-Humblet-Spira
// (GHS) algorithm: the seven message variants vertex actors exchange, the
// per-neighbor edge classification, and the per-vertex search state.
//
// Nothing here is concurrent or stateful; it is pure data, shared by the
// inbox, router, and actor packages.
package protocol

// Kind discriminates the seven message variants actors exchange.
type Kind int

const (
	// Connect requests a merge/absorb across the edge (self,Sender) at Level.
	Connect Kind = iota
	// Initiate announces a new fragment identity (Level,Name) and State.
	Initiate
	// Test probes whether the edge to Sender crosses a fragment boundary.
	Test
	// Accept answers a Test: the two fragments differ, the edge is outgoing.
	Accept
	// Reject answers a Test: the two fragments are identical, the edge is internal.
	Reject
	// Report carries the best known outgoing-edge weight up the fragment.
	Report
	// ChangeRoot flips the root of the fragment toward its minimum outgoing edge.
	ChangeRoot
)

// String renders a Kind for log lines and panic diagnostics.
func (k Kind) String() string {
	switch k {
	case Connect:
		return "Connect"
	case Initiate:
		return "Initiate"
	case Test:
		return "Test"
	case Accept:
		return "Accept"
	case Reject:
		return "Reject"
	case Report:
		return "Report"
	case ChangeRoot:
		return "ChangeRoot"
	default:
		return "Unknown"
	}
}

// State is a vertex's GHS search state.
type State int

const (
	// Sleeping is the initial state before an actor wakes itself.
	Sleeping State = iota
	// Finding means this fragment is actively searching for its MOE.
	Finding
	// Found means the search has settled for the current level.
	Found
)

func (s State) String() string {
	switch s {
	case Sleeping:
		return "Sleeping"
	case Finding:
		return "Finding"
	case Found:
		return "Found"
	default:
		return "Unknown"
	}
}

// Classification is a vertex's view of one incident edge.
type Classification int

const (
	// Basic edges are not yet classified; candidates for the MOE search.
	Basic Classification = iota
	// Branch edges are confirmed spanning-tree edges.
	Branch
	// Reject edges are confirmed internal to the current fragment.
	Reject
)

func (c Classification) String() string {
	switch c {
	case Basic:
		return "Basic"
	case Branch:
		return "Branch"
	case Reject:
		return "Reject"
	default:
		return "Unknown"
	}
}

// Message is the sum type of every value an actor may post to another
// actor's inbox (or re-post to its own). Which fields are meaningful
// depends on Kind; see the field comments below.
type Message struct {
	Kind Kind

	From int // sender's vertex id, present on every variant

	Level int   // Connect, Initiate, Test
	Name  int64 // Initiate, Test: fragment name
	State State // Initiate: search mode to adopt

	Weight int64 // Report: best outgoing-edge weight in the subtree
}

// NewConnect builds a Connect(level, from) message.
func NewConnect(level int, from int) Message {
	return Message{Kind: Connect, Level: level, From: from}
}

// NewInitiate builds an Initiate(level, name, state, from) message.
func NewInitiate(level int, name int64, state State, from int) Message {
	return Message{Kind: Initiate, Level: level, Name: name, State: state, From: from}
}

// NewTest builds a Test(level, name, from) message.
func NewTest(level int, name int64, from int) Message {
	return Message{Kind: Test, Level: level, Name: name, From: from}
}

// NewAccept builds an Accept(from) message.
func NewAccept(from int) Message {
	return Message{Kind: Accept, From: from}
}

// NewReject builds a Reject(from) message.
func NewReject(from int) Message {
	return Message{Kind: Reject, From: from}
}

// NewReport builds a Report(weight, from) message.
func NewReport(weight int64, from int) Message {
	return Message{Kind: Report, Weight: weight, From: from}
}

// NewChangeRoot builds a ChangeRoot(from) message.
func NewChangeRoot(from int) Message {
	return Message{Kind: ChangeRoot, From: from}
}
