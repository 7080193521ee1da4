package dgraph

// Class partitions the result of one executed request.
type Class int

const (
	// ClassSuccess: the server answered with a 2xx status.
	ClassSuccess Class = iota
	// ClassAppError: the server answered with a non-2xx status. The
	// operation was received and rejected.
	ClassAppError
	// ClassTransport: the request never completed (DNS, connection,
	// TLS, timeout). Whether the server saw it is unknown.
	ClassTransport
)

// Outcome is the classified result of one admin request. Exactly one is
// produced per execution.
type Outcome struct {
	Class  Class
	Status int    // HTTP status; zero for ClassTransport
	Body   []byte // raw response body, passed through verbatim; nil for ClassTransport
	Cause  string // transport failure cause; empty otherwise
}

// OK reports whether the operation succeeded.
func (o Outcome) OK() bool {
	return o.Class == ClassSuccess
}
