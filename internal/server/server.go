// Package server exposes the configuration and the swallow simulator as
// Model Context Protocol tools.
package server

import (
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/mj1618/tilerc/internal/log"
	"github.com/mj1618/tilerc/internal/version"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
}

// Server wraps the MCP server with the configuration cache.
type Server struct {
	cache  *ConfigCache
	mcp    *mcpserver.MCPServer
	logger zerolog.Logger
}

// New creates an MCP server with every tilerc tool registered.
func New(load LoadFunc, cfg Config) *Server {
	s := &Server{
		cache:  NewConfigCache(load, cfg.CacheTTL),
		logger: log.WithComponent("server"),
	}
	s.mcp = mcpserver.NewMCPServer("tilerc", version.Version)
	s.registerTools()
	return s
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve(cfg Config) error {
	s.logger.Info().Str("transport", cfg.Transport).Int("port", cfg.Port).Msg("serving MCP")
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("keys",
			mcp.WithDescription("List key bindings, optionally filtered by text or limited to one group's bindings"),
			mcp.WithString("text", mcp.Description("Case-insensitive filter on description, key name or action")),
			mcp.WithString("mods", mcp.Description("Only bindings holding these modifiers, e.g. 'mod4+shift'")),
			mcp.WithString("group", mcp.Description("Only the bindings that target this group")),
		),
		s.handleKeys,
	)

	s.mcp.AddTool(
		mcp.NewTool("lookup",
			mcp.WithDescription("Show what a key chord does"),
			mcp.WithString("chord", mcp.Required(), mcp.Description("Chord such as 'mod4+shift+Return'")),
		),
		s.handleLookup,
	)

	s.mcp.AddTool(
		mcp.NewTool("groups",
			mcp.WithDescription("List workspace groups"),
		),
		s.handleGroups,
	)

	s.mcp.AddTool(
		mcp.NewTool("layouts",
			mcp.WithDescription("List layouts with their styles, and the floating rules"),
		),
		s.handleLayouts,
	)

	s.mcp.AddTool(
		mcp.NewTool("check",
			mcp.WithDescription("Validate the assembled configuration and report every problem"),
		),
		s.handleCheck,
	)

	s.mcp.AddTool(
		mcp.NewTool("simulate_swallow",
			mcp.WithDescription("Replay a scripted process tree and window events through the swallow hooks. "+
				"steps is a YAML list of proc {pid, ppid, name}, window {id, pid, class, title}, open {...} and close {id} steps."),
			mcp.WithString("steps", mcp.Required(), mcp.Description("YAML step list")),
		),
		s.handleSimulate,
	)
}
