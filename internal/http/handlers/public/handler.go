package public

import "github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/provider"

// Handler public API handler entry
// Serves the visitor-facing endpoints only.
type Handler struct {
	*provider.Container
}

// New creates the public handler
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
