// Package mcp exposes the health assistant to a conversational-AI host
// over the Model Context Protocol.
package mcp

import (
	"context"

	"github.com/i-ansh-pandey/HealthGenniebyAnsh-Pandey/config"
	"github.com/i-ansh-pandey/HealthGenniebyAnsh-Pandey/services"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with the health services it fronts.
type Server struct {
	mcpServer *mcp.Server
	cfg       *config.Config

	users    *services.UserService
	water    *services.WaterService
	steps    *services.StepService
	health   *services.HealthService
	summary  *services.SummaryService
	tips     *services.TipService
	wellness *services.WellnessService
}

// NewServer builds the MCP server and registers all tools.
func NewServer(
	cfg *config.Config,
	users *services.UserService,
	water *services.WaterService,
	steps *services.StepService,
	health *services.HealthService,
	summary *services.SummaryService,
	tips *services.TipService,
	wellness *services.WellnessService,
) *Server {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "health-assistant",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		cfg:       cfg,
		users:     users,
		water:     water,
		steps:     steps,
		health:    health,
		summary:   summary,
		tips:      tips,
		wellness:  wellness,
	}

	s.registerTools()
	return s
}

// Serve runs the MCP server over stdio.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
