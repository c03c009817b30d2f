package scenario

// Client is a named listener that reports every notification as a
// "Name: message" line. It serves as both an observer (OnNotify) and a
// delegate target (Notification).
type Client struct {
	Name string
	emit func(name, message string)
}

// NewClient creates a client whose lines go to emit. A nil emit drops them.
func NewClient(name string, emit func(name, message string)) *Client {
	return &Client{Name: name, emit: emit}
}

// OnNotify implements types.Observer[string].
func (c *Client) OnNotify(message string) {
	if c.emit != nil {
		c.emit(c.Name, message)
	}
}

// Notification is the method bound by delegate subscriptions.
func (c *Client) Notification(message string) {
	c.OnNotify(message)
}
