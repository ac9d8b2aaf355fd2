package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"skillhub/internal/apperrors"
	"skillhub/internal/logging"
	"skillhub/pkg/fileops"

	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName    = "skillhub"
	serverVersion = "1.0.0"
)

// Config holds what the tools operate on.
type Config struct {
	// Workspace is the skills root; relative tool paths resolve against it.
	Workspace string
	// MCPConfigPath is the client config used when a tool call names none.
	MCPConfigPath string
	Permissions   Permissions
}

// Server represents an MCP server instance using mcp-go
type Server struct {
	config    Config
	logger    *logging.AppLogger
	mcpServer *server.MCPServer
}

// NewServer creates the server and registers its tools.
func NewServer(cfg Config, logger *logging.AppLogger) (*Server, error) {
	if cfg.Workspace == "" {
		return nil, errors.New("workspace directory is required")
	}
	abs, err := filepath.Abs(fileops.ExpandPath(cfg.Workspace))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve workspace: %w", err)
	}
	cfg.Workspace = abs
	if cfg.MCPConfigPath != "" {
		cfg.MCPConfigPath = fileops.ExpandPath(cfg.MCPConfigPath)
	}

	s := &Server{config: cfg, logger: logger}
	s.mcpServer = server.NewMCPServer(serverName, serverVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	s.registerTools()

	logger.Info("MCP server created",
		"workspace", cfg.Workspace,
		"mcpConfig", cfg.MCPConfigPath,
		"permissions", fmt.Sprintf("%+v", cfg.Permissions),
	)
	return s, nil
}

// Start serves the protocol on stdin/stdout until ctx is cancelled or the
// client closes its end.
func (s *Server) Start(ctx context.Context) error {
	return s.Serve(ctx, os.Stdin, os.Stdout)
}

// Serve serves the protocol over the given streams.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	s.logger.Info("Starting MCP stdio server")
	if err := server.NewStdioServer(s.mcpServer).Listen(ctx, in, out); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	return nil
}

// Stop logs the shutdown; the stdio loop itself ends with its context.
func (s *Server) Stop() error {
	s.logger.Info("Stopping MCP server")
	return nil
}

// resolve maps a tool path argument to a filesystem path. Empty and "."
// mean the workspace, relative paths are joined to it and "~/" expands to
// the home directory.
func (s *Server) resolve(path string) string {
	if path == "" || path == "." {
		return s.config.Workspace
	}
	path = fileops.ExpandPath(path)
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(s.config.Workspace, path)
}

// resolveWritable is resolve for tools that change files: the result must
// lie inside the workspace.
func (s *Server) resolveWritable(op, path string) (string, error) {
	resolved := s.resolve(path)
	if err := fileops.ContainedIn(resolved, s.config.Workspace); err != nil {
		return "", apperrors.Invalid(op, resolved, err)
	}
	return resolved, nil
}

func (s *Server) mcpConfigPath(arg string) (string, error) {
	if arg != "" {
		return filepath.Clean(fileops.ExpandPath(arg)), nil
	}
	if s.config.MCPConfigPath == "" {
		return "", errors.New("no MCP config path given and no default configured")
	}
	return s.config.MCPConfigPath, nil
}
