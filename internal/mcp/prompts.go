// ABOUTME: MCP prompts for common note board workflows.
// ABOUTME: Provides pre-configured prompts for AI agent interactions.

package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerPrompts() {
	s.server.AddPrompt(&mcp.Prompt{
		Name:        "tidy-board",
		Description: "Suggest which notes to pin, recolor, merge, or delete",
	}, s.getTidyBoardPrompt)

	s.server.AddPrompt(&mcp.Prompt{
		Name:        "summarize-note",
		Description: "Generate a summary of an existing note",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "note_id",
				Description: "ID of the note to summarize",
				Required:    true,
			},
		},
	}, s.getSummarizeNotePrompt)
}

func userPrompt(text string) *mcp.GetPromptResult {
	return &mcp.GetPromptResult{
		Messages: []*mcp.PromptMessage{
			{
				Role:    "user",
				Content: &mcp.TextContent{Text: text},
			},
		},
	}
}

func (s *Server) getTidyBoardPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	template := fmt.Sprintf(`Help me tidy my notes board (%d notes).

1. Use the list_notes tool to see pinned and other notes
2. Identify notes that are urgent or referenced often and suggest pinning them
3. Suggest a color for each theme you find (yellow, green, pink, blue, purple, orange)
4. Point out near-duplicates that could be merged
5. Point out stale notes that could be deleted

Refer to notes by their ID prefix. Use toggle_pin and update_note only after I confirm.`, s.store.Len())

	return userPrompt(template), nil
}

func (s *Server) getSummarizeNotePrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	noteID, ok := req.Params.Arguments["note_id"]
	if !ok || noteID == "" {
		return nil, fmt.Errorf("note_id argument is required")
	}

	template := fmt.Sprintf(`Please summarize the note with ID: %s

1. Use the get_note tool to retrieve the note
2. Read and analyze the note
3. Create a concise summary highlighting:
   - Main topic
   - Key points
   - Action items
4. Use the update_note tool to put the summary at the top of the note content`, noteID)

	return userPrompt(template), nil
}
