package types

// Observer receives notifications published on the channels it is registered on.
//
// OnNotify is called synchronously on the publisher's goroutine, in
// registration order. The payload is only valid for the duration of the call
// and must not be retained if T is a reference type.
type Observer[T any] interface {
	OnNotify(payload T)
}

// Recorder receives dispatch measurements from a hub (see internal/metrics).
type Recorder interface {
	Published(channel Channel)
	Delivered(channel Channel, n int)
	Recovered(channel Channel)
}
