// Package registry holds the fixed catalog of MCP clients whose
// configuration files mcpconf knows how to locate.
package registry

import (
	"slices"
)

type Icon string

const (
	IconCode     Icon = "code"
	IconTerminal Icon = "terminal"
)

// Client describes a known MCP client. Values are immutable once the
// registry is constructed.
type Client struct {
	ID          string `json:"id" yaml:"id" toml:"id" validate:"required,client_id"`
	DisplayName string `json:"name" yaml:"name" toml:"name" validate:"required"`
	Icon        Icon   `json:"icon" yaml:"icon" toml:"icon" validate:"oneof=code terminal"`
	DocURL      string `json:"doc_url,omitempty" yaml:"doc_url,omitempty" toml:"doc_url,omitempty" validate:"omitempty,http_url"`
	DefaultPath string `json:"default_path,omitempty" yaml:"default_path,omitempty" toml:"default_path,omitempty"`
}

// Registry is an ordered, read-only sequence of clients.
type Registry struct {
	clients []Client
	index   map[string]int
}

// New copies clients into a registry, preserving order. Duplicate ids are
// kept so that Validate can report them.
func New(clients ...Client) Registry {
	r := Registry{
		clients: slices.Clone(clients),
		index:   make(map[string]int, len(clients)),
	}
	for i, c := range r.clients {
		if _, ok := r.index[c.ID]; !ok {
			r.index[c.ID] = i
		}
	}
	return r
}

func (r Registry) All() []Client {
	return slices.Clone(r.clients)
}

func (r Registry) Len() int {
	return len(r.clients)
}

func (r Registry) IDs() []string {
	ids := make([]string, len(r.clients))
	for i, c := range r.clients {
		ids[i] = c.ID
	}
	return ids
}

func (r Registry) Lookup(id string) (Client, bool) {
	if i, ok := r.index[id]; ok {
		return r.clients[i], true
	}
	return Client{}, false
}
