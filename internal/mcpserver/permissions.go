package mcpserver

import (
	"fmt"
	"strings"
)

// Permissions selects the write tools the server registers.
type Permissions struct {
	CreateFolder bool
	CreateFile   bool
	EditFile     bool
	DeleteFile   bool
	MCPWrite     bool
}

// PermissionNames lists the names accepted by ParsePermissions.
var PermissionNames = []string{"create-folder", "create-file", "edit-file", "delete-file", "mcp-write"}

// ParsePermissions turns permission names into Permissions. "all" grants
// everything; an unknown name is an error.
func ParsePermissions(names []string) (Permissions, error) {
	var p Permissions
	for _, raw := range names {
		switch name := strings.ToLower(strings.TrimSpace(raw)); name {
		case "":
		case "all":
			p = Permissions{CreateFolder: true, CreateFile: true, EditFile: true, DeleteFile: true, MCPWrite: true}
		case "create-folder":
			p.CreateFolder = true
		case "create-file":
			p.CreateFile = true
		case "edit-file":
			p.EditFile = true
		case "delete-file":
			p.DeleteFile = true
		case "mcp-write":
			p.MCPWrite = true
		default:
			return Permissions{}, fmt.Errorf("unknown permission %q (valid: %s, all)", raw, strings.Join(PermissionNames, ", "))
		}
	}
	return p, nil
}
