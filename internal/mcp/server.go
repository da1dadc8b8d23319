// ABOUTME: MCP server for quicknotes integration with AI agents.
// ABOUTME: Provides tools, resources, and prompts backed by the note store.

package mcp

import (
	"context"

	"github.com/harper/quicknotes/internal/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"
)

type Server struct {
	server *mcp.Server
	store  *store.Store
	log    logrus.FieldLogger
}

func NewServer(st *store.Store, log logrus.FieldLogger) *Server {
	s := &Server{store: st, log: log.WithField("component", "mcp")}

	s.server = mcp.NewServer(
		&mcp.Implementation{
			Name:    "quicknotes",
			Version: "1.0.0",
		},
		&mcp.ServerOptions{
			HasTools:     true,
			HasResources: true,
			HasPrompts:   true,
		},
	)

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

func (s *Server) Serve(ctx context.Context) error {
	s.log.Info("serving MCP over stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
