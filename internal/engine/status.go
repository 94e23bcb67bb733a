package engine

import "context"

// Status is the outcome of an engine probe.
type Status struct {
	Connected bool
	Detail    string
}

// Status probes the engine. It never returns an error: any transport
// failure degrades to Connected=false with the failure detail.
func (c *Client) Status(ctx context.Context) Status {
	if err := c.Ping(ctx); err != nil {
		return Status{Connected: false, Detail: err.Error()}
	}
	return Status{Connected: true, Detail: "engine reachable"}
}
