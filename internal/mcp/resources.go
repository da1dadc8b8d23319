// ABOUTME: MCP resources for exposing notes as readable resources.
// ABOUTME: Allows AI agents to access note content via URI scheme.

package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const noteURIPrefix = "quicknotes://note/"

func (s *Server) registerResources() {
	s.server.AddResourceTemplate(
		&mcp.ResourceTemplate{
			URITemplate: noteURIPrefix + "{id}",
			Name:        "Note",
			Description: "Access individual notes by ID",
			MIMEType:    "text/markdown",
		},
		s.handleReadResource,
	)
}

func (s *Server) handleReadResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	id, ok := strings.CutPrefix(req.Params.URI, noteURIPrefix)
	if !ok || id == "" {
		return nil, fmt.Errorf("invalid resource URI: %s", req.Params.URI)
	}

	note, err := s.resolve(id)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", note.DisplayTitle())
	fmt.Fprintf(&sb, "**Color:** %s\n", note.Color.Label())
	if note.IsPinned {
		sb.WriteString("**Pinned:** yes\n")
	}
	fmt.Fprintf(&sb, "**Updated:** %s\n\n", note.UpdatedAt.Format("Jan 2, 2006"))
	sb.WriteString(note.Content)

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      req.Params.URI,
				MIMEType: "text/markdown",
				Text:     sb.String(),
			},
		},
	}, nil
}
