package asana

import "sync"

// ErrorHandler is called synchronously with every APIError the client returns.
type ErrorHandler func(err *APIError)

type observer struct {
	id int
	fn ErrorHandler
}

type observers struct {
	mu     sync.Mutex
	nextID int
	list   []observer
}

// OnError registers fn and returns a function that unregisters it. Handlers
// run in registration order before the failing call returns.
func (c *Client) OnError(fn ErrorHandler) (remove func()) {
	if fn == nil {
		return func() {}
	}
	o := &c.observers

	o.mu.Lock()
	o.nextID++
	id := o.nextID
	o.list = append(o.list, observer{id: id, fn: fn})
	o.mu.Unlock()

	return func() { o.remove(id) }
}

func (o *observers) remove(id int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i, ob := range o.list {
		if ob.id == id {
			// copy so snapshots held by in-flight notify calls stay intact
			next := make([]observer, 0, len(o.list)-1)
			next = append(next, o.list[:i]...)
			o.list = append(next, o.list[i+1:]...)
			return
		}
	}
}

func (o *observers) notify(err *APIError) {
	o.mu.Lock()
	snapshot := o.list
	o.mu.Unlock()

	for _, ob := range snapshot {
		ob.fn(err)
	}
}
