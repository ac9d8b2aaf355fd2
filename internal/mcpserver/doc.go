// Package mcpserver exposes the skills workspace and MCP client configs as
// Model Context Protocol tools, served over stdin/stdout with mcp-go.
//
// Read-only tools are always registered. Tools that change files are only
// registered when the matching permission is granted, and they refuse paths
// that resolve outside the workspace.
package mcpserver
