// Package mcpconfig reads and rewrites MCP client configuration documents,
// the JSON files whose "mcpServers" object maps a server name to the command
// that launches it.
package mcpconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"sort"
)

const serversKey = "mcpServers"

var errMissingServers = errors.New(`document has no "mcpServers" object`)

// ServerEntry describes how a client launches one MCP server. Nil and empty
// Args mean the same thing: both are saved as [] and loaded entries always
// carry a non-nil slice.
type ServerEntry struct {
	Command string            `json:"command" yaml:"command"`
	Args    []string          `json:"args" yaml:"args"`
	Env     map[string]string `json:"env,omitempty" yaml:"env,omitempty"`
}

// MarshalJSON always writes args as an array, never null.
func (e ServerEntry) MarshalJSON() ([]byte, error) {
	type plain ServerEntry
	p := plain(e)
	if p.Args == nil {
		p.Args = []string{}
	}
	return json.Marshal(p)
}

// Document is the in-memory view of a config file. Extra keeps every other
// top-level key of the file so a rewrite does not drop client settings that
// live next to the server map.
type Document struct {
	Servers map[string]ServerEntry
	Extra   map[string]json.RawMessage
}

// NewDocument returns a document with an empty server map.
func NewDocument() *Document {
	return &Document{Servers: map[string]ServerEntry{}}
}

// ServerNames returns the server names of doc in sorted order.
func ServerNames(doc *Document) []string {
	names := make([]string, 0, len(doc.Servers))
	for name := range doc.Servers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func decode(data []byte) (*Document, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, err
	}

	raw, ok := top[serversKey]
	if !ok {
		return nil, errMissingServers
	}
	var servers map[string]ServerEntry
	if err := json.Unmarshal(raw, &servers); err != nil {
		return nil, err
	}
	if servers == nil {
		return nil, errMissingServers
	}
	for name, entry := range servers {
		if entry.Args == nil {
			entry.Args = []string{}
			servers[name] = entry
		}
	}
	delete(top, serversKey)

	doc := &Document{Servers: servers}
	for key, value := range top {
		var compact bytes.Buffer
		if err := json.Compact(&compact, value); err != nil {
			return nil, err
		}
		if doc.Extra == nil {
			doc.Extra = make(map[string]json.RawMessage, len(top))
		}
		doc.Extra[key] = compact.Bytes()
	}
	return doc, nil
}

// encode renders doc pretty-printed with two-space indentation. Object keys
// come out sorted, so equal documents always produce equal bytes.
func encode(doc *Document) ([]byte, error) {
	servers := doc.Servers
	if servers == nil {
		servers = map[string]ServerEntry{}
	}
	serversJSON, err := json.Marshal(servers)
	if err != nil {
		return nil, err
	}

	top := make(map[string]json.RawMessage, len(doc.Extra)+1)
	for key, value := range doc.Extra {
		top[key] = value
	}
	top[serversKey] = serversJSON

	data, err := json.MarshalIndent(top, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
