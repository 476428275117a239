package admin

import "github.com/Shahwaiz-Dev/Dimo-amathountas-sub000/internal/provider"

// Handler admin API handler entry
// Serves the management endpoints only.
type Handler struct {
	*provider.Container
}

// New creates the admin handler
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
