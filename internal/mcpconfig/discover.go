package mcpconfig

import (
	"errors"
	"io/fs"

	"skillhub/internal/platform"
)

// Location is the discovery report for one known client config file.
type Location struct {
	Client  string `json:"client" yaml:"client"`
	Path    string `json:"path" yaml:"path"`
	Exists  bool   `json:"exists" yaml:"exists"`
	Servers int    `json:"servers" yaml:"servers"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Discover inspects the config file of every client. Files that are missing
// are reported with Exists false; files that exist but do not load carry the
// failure in Error.
func Discover(clients []platform.Client) []Location {
	locations := make([]Location, 0, len(clients))
	for _, c := range clients {
		loc := Location{Client: c.Name, Path: c.Path}

		doc, err := Load(c.Path)
		switch {
		case err == nil:
			loc.Exists = true
			loc.Servers = len(doc.Servers)
		case errors.Is(err, fs.ErrNotExist):
		default:
			loc.Exists = true
			loc.Error = err.Error()
		}

		locations = append(locations, loc)
	}
	return locations
}
