package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"skillhub/internal/apperrors"
	"skillhub/internal/mcpconfig"
	"skillhub/internal/platform"
	"skillhub/internal/skills"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (s *Server) registerTools() {
	tools := []server.ServerTool{
		{Tool: scanSkillsTool(), Handler: s.handleScanSkills},
		{Tool: readFileTool(), Handler: s.handleReadFile},
		{Tool: listFilesTool(), Handler: s.handleListFiles},
		{Tool: listMCPServersTool(), Handler: s.handleListMCPServers},
		{Tool: mcpConfigPathsTool(), Handler: s.handleMCPConfigPaths},
	}

	p := s.config.Permissions
	if p.CreateFolder {
		tools = append(tools, server.ServerTool{Tool: createFolderTool(), Handler: s.handleCreateFolder})
	}
	if p.CreateFile {
		tools = append(tools, server.ServerTool{Tool: createFileTool(), Handler: s.handleCreateFile})
	}
	if p.EditFile {
		tools = append(tools, server.ServerTool{Tool: editFileTool(), Handler: s.handleEditFile})
	}
	if p.DeleteFile {
		tools = append(tools, server.ServerTool{Tool: deleteFileTool(), Handler: s.handleDeleteFile})
	}
	if p.MCPWrite {
		tools = append(tools,
			server.ServerTool{Tool: addMCPServerTool(), Handler: s.handleAddMCPServer},
			server.ServerTool{Tool: removeMCPServerTool(), Handler: s.handleRemoveMCPServer},
		)
	}

	for _, t := range tools {
		s.mcpServer.AddTool(t.Tool, t.Handler)
	}
	s.logger.Debug("Registered MCP tools", "count", len(tools))
}

// Tool definitions

func scanSkillsTool() mcp.Tool {
	return mcp.NewTool("scan_skills",
		mcp.WithDescription("Scan a skills directory and return every folder and markdown, JSON or YAML file with its content."),
		mcp.WithString("path", mcp.Description("Directory to scan. Defaults to the workspace.")),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func readFileTool() mcp.Tool {
	return mcp.NewTool("read_file",
		mcp.WithDescription("Read the full text of a file."),
		mcp.WithString("path", mcp.Required(), mcp.Description("File path, relative to the workspace or absolute.")),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func listFilesTool() mcp.Tool {
	return mcp.NewTool("list_files",
		mcp.WithDescription("List the visible entries directly inside a directory."),
		mcp.WithString("path", mcp.Description("Directory to list. Defaults to the workspace.")),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func listMCPServersTool() mcp.Tool {
	return mcp.NewTool("list_mcp_servers",
		mcp.WithDescription("List the MCP servers configured in a client config file."),
		mcp.WithString("config_path", mcp.Description("Config file. Defaults to the configured MCP config path.")),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func mcpConfigPathsTool() mcp.Tool {
	return mcp.NewTool("mcp_config_paths",
		mcp.WithDescription("Report the config file location of every known MCP client on this machine."),
		mcp.WithReadOnlyHintAnnotation(true),
	)
}

func createFolderTool() mcp.Tool {
	return mcp.NewTool("create_folder",
		mcp.WithDescription("Create a folder inside the workspace."),
		mcp.WithString("parent_path", mcp.Description("Parent directory. Defaults to the workspace.")),
		mcp.WithString("name", mcp.Required(), mcp.Description("Name of the new folder.")),
		mcp.WithDestructiveHintAnnotation(false),
	)
}

func createFileTool() mcp.Tool {
	return mcp.NewTool("create_file",
		mcp.WithDescription("Create a new file inside the workspace. Fails if the file exists."),
		mcp.WithString("folder_path", mcp.Description("Folder for the file. Defaults to the workspace.")),
		mcp.WithString("name", mcp.Required(), mcp.Description("File name including extension.")),
		mcp.WithString("content", mcp.Description("Initial content.")),
		mcp.WithDestructiveHintAnnotation(false),
	)
}

func editFileTool() mcp.Tool {
	return mcp.NewTool("edit_file",
		mcp.WithDescription("Replace the content of an existing file inside the workspace."),
		mcp.WithString("path", mcp.Required(), mcp.Description("File to overwrite.")),
		mcp.WithString("content", mcp.Required(), mcp.Description("New content.")),
		mcp.WithDestructiveHintAnnotation(true),
	)
}

func deleteFileTool() mcp.Tool {
	return mcp.NewTool("delete_file",
		mcp.WithDescription("Delete a file, or a folder and everything in it, inside the workspace."),
		mcp.WithString("path", mcp.Required(), mcp.Description("File or folder to delete.")),
		mcp.WithDestructiveHintAnnotation(true),
	)
}

func addMCPServerTool() mcp.Tool {
	return mcp.NewTool("add_mcp_server",
		mcp.WithDescription("Add or replace an MCP server entry in a client config file."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Server name.")),
		mcp.WithString("command", mcp.Required(), mcp.Description("Command that starts the server.")),
		mcp.WithArray("args", mcp.Description("Command arguments."), mcp.Items(map[string]any{"type": "string"})),
		mcp.WithObject("env", mcp.Description("Environment variables for the server.")),
		mcp.WithString("config_path", mcp.Description("Config file. Defaults to the configured MCP config path.")),
	)
}

func removeMCPServerTool() mcp.Tool {
	return mcp.NewTool("remove_mcp_server",
		mcp.WithDescription("Remove an MCP server entry from a client config file."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Server name.")),
		mcp.WithString("config_path", mcp.Description("Config file. Defaults to the configured MCP config path.")),
		mcp.WithDestructiveHintAnnotation(true),
	)
}

// Handlers

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) toolError(tool string, err error) *mcp.CallToolResult {
	s.logger.Warn("MCP tool failed", "tool", tool, "error", err)
	return mcp.NewToolResultError(err.Error())
}

func (s *Server) handleScanSkills(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	defer s.logger.LogPerformance("mcp.scan_skills", start)

	tree, err := skills.Scan(s.resolve(request.GetString("path", "")))
	if err != nil {
		return s.toolError("scan_skills", err), nil
	}
	return jsonResult(tree)
}

func (s *Server) handleReadFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	content, err := skills.ReadFile(s.resolve(path))
	if err != nil {
		return s.toolError("read_file", err), nil
	}
	return mcp.NewToolResultText(content), nil
}

func (s *Server) handleListFiles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entries, err := skills.List(s.resolve(request.GetString("path", "")))
	if err != nil {
		return s.toolError("list_files", err), nil
	}
	return jsonResult(entries)
}

func (s *Server) handleListMCPServers(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := s.mcpConfigPath(request.GetString("config_path", ""))
	if err != nil {
		return s.toolError("list_mcp_servers", err), nil
	}

	doc, err := mcpconfig.Load(path)
	if err != nil {
		return s.toolError("list_mcp_servers", err), nil
	}
	return jsonResult(doc.Servers)
}

func (s *Server) handleMCPConfigPaths(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(mcpconfig.Discover(platform.KnownClients(platform.Current())))
}

func (s *Server) handleCreateFolder(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	parent, err := s.resolveWritable("create folder", request.GetString("parent_path", ""))
	if err != nil {
		return s.toolError("create_folder", err), nil
	}

	path, err := skills.CreateFolder(parent, name)
	if err != nil {
		return s.toolError("create_folder", err), nil
	}
	s.logger.LogUserAction("mcp_create_folder", path)
	return mcp.NewToolResultText(fmt.Sprintf("Created folder %s", path)), nil
}

func (s *Server) handleCreateFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	folder, err := s.resolveWritable("create file", request.GetString("folder_path", ""))
	if err != nil {
		return s.toolError("create_file", err), nil
	}

	path, err := skills.CreateFile(folder, name, request.GetString("content", ""))
	if err != nil {
		return s.toolError("create_file", err), nil
	}
	s.logger.LogUserAction("mcp_create_file", path)
	return mcp.NewToolResultText(fmt.Sprintf("Created file %s", path)), nil
}

func (s *Server) handleEditFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rawPath, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	content, err := request.RequireString("content")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	path, err := s.resolveWritable("edit file", rawPath)
	if err != nil {
		return s.toolError("edit_file", err), nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return s.toolError("edit_file", apperrors.FromOS("edit file", path, err)), nil
	}
	if info.IsDir() {
		return s.toolError("edit_file", apperrors.Invalid("edit file", path, errors.New("is a directory"))), nil
	}

	if err := skills.WriteFile(path, content); err != nil {
		return s.toolError("edit_file", err), nil
	}
	s.logger.LogUserAction("mcp_edit_file", path)
	return mcp.NewToolResultText(fmt.Sprintf("Updated %s", path)), nil
}

func (s *Server) handleDeleteFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rawPath, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	path, err := s.resolveWritable("delete", rawPath)
	if err != nil {
		return s.toolError("delete_file", err), nil
	}
	if path == s.config.Workspace {
		return s.toolError("delete_file", apperrors.Invalid("delete", path, errors.New("refusing to delete the workspace root"))), nil
	}

	if err := skills.Delete(path); err != nil {
		return s.toolError("delete_file", err), nil
	}
	s.logger.LogUserAction("mcp_delete", path)
	return mcp.NewToolResultText(fmt.Sprintf("Deleted %s", path)), nil
}

func (s *Server) handleAddMCPServer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	command, err := request.RequireString("command")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	env, err := stringMap(request.GetArguments()["env"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	path, err := s.mcpConfigPath(request.GetString("config_path", ""))
	if err != nil {
		return s.toolError("add_mcp_server", err), nil
	}

	entry := mcpconfig.ServerEntry{
		Command: command,
		Args:    request.GetStringSlice("args", []string{}),
		Env:     env,
	}
	if err := mcpconfig.AddServer(path, name, entry); err != nil {
		return s.toolError("add_mcp_server", err), nil
	}
	s.logger.LogUserAction("mcp_add_server", name)
	return mcp.NewToolResultText(fmt.Sprintf("Added MCP server %q to %s", name, path)), nil
}

func (s *Server) handleRemoveMCPServer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	path, err := s.mcpConfigPath(request.GetString("config_path", ""))
	if err != nil {
		return s.toolError("remove_mcp_server", err), nil
	}

	if err := mcpconfig.RemoveServer(path, name); err != nil {
		return s.toolError("remove_mcp_server", err), nil
	}
	s.logger.LogUserAction("mcp_remove_server", name)
	return mcp.NewToolResultText(fmt.Sprintf("Removed MCP server %q from %s", name, path)), nil
}

// stringMap converts a decoded JSON object of strings. nil stays nil.
func stringMap(v any) (map[string]string, error) {
	if v == nil {
		return nil, nil
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, errors.New("env must be an object of strings")
	}
	out := make(map[string]string, len(obj))
	for k, val := range obj {
		str, ok := val.(string)
		if !ok {
			return nil, fmt.Errorf("env value for %q must be a string", k)
		}
		out[k] = str
	}
	return out, nil
}
