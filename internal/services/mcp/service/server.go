// Package service assembles the MCP server for the rules engine and
// serves it over stdio.
package service

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/greymark/internal/services/mcp/domain"
)

const (
	serverName = "greymark"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// Server wraps the MCP server plus the handler dependencies behind it.
type Server struct {
	mcpServer *mcp.Server
}

// NewServer builds an MCP server with every engine tool registered.
func NewServer(deps domain.Deps) (*Server, error) {
	if deps.Store == nil {
		return nil, fmt.Errorf("engine store is required")
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, &mcp.ServerOptions{})

	mcp.AddTool(mcpServer, domain.CharacterImportTool(), domain.CharacterImportHandler(deps))
	mcp.AddTool(mcpServer, domain.SheetComputeTool(), domain.SheetComputeHandler(deps))
	mcp.AddTool(mcpServer, domain.SheetGetTool(), domain.SheetGetHandler(deps))
	mcp.AddTool(mcpServer, domain.SkillCheckTool(), domain.SkillCheckHandler(deps))
	mcp.AddTool(mcpServer, domain.StrikeRollTool(), domain.StrikeRollHandler(deps))
	mcp.AddTool(mcpServer, domain.RollDiceTool(), domain.RollDiceHandler(deps))
	mcp.AddTool(mcpServer, domain.SkillImproveTool(), domain.SkillImproveHandler(deps))

	return &Server{mcpServer: mcpServer}, nil
}

// Serve starts the MCP server on stdio and blocks until it stops or the
// context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	return s.mcpServer.Run(ctx, transport)
}
