// ABOUTME: MCP tools for note operations.
// ABOUTME: Maps store mutations and queries to the MCP tool interface.

package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/harper/quicknotes/internal/models"
	"github.com/harper/quicknotes/internal/store"
	"github.com/harper/quicknotes/internal/view"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// add_note
	s.server.AddTool(&mcp.Tool{
		Name:        "add_note",
		Description: "Create a new note. At least one of title or content must be non-blank.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"title": {"type": "string", "description": "Note title"},
				"content": {"type": "string", "description": "Note content"},
				"color": {"type": "string", "enum": ["yellow", "green", "pink", "blue", "purple", "orange"], "default": "yellow"}
			}
		}`),
	}, s.handleAddNote)

	// list_notes
	s.server.AddTool(&mcp.Tool{
		Name:        "list_notes",
		Description: "List notes grouped into pinned and other notes, newest first",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"pinned": {"type": "boolean", "description": "Only pinned (true) or only unpinned (false) notes"}
			}
		}`),
	}, s.handleListNotes)

	// get_note
	s.server.AddTool(&mcp.Tool{
		Name:        "get_note",
		Description: "Get a note by ID prefix",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Note ID or prefix (6+ chars)"}
			},
			"required": ["id"]
		}`),
	}, s.handleGetNote)

	// update_note
	s.server.AddTool(&mcp.Tool{
		Name:        "update_note",
		Description: "Update a note's title, content, color, or pin state",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Note ID or prefix"},
				"title": {"type": "string", "description": "New title"},
				"content": {"type": "string", "description": "New content"},
				"color": {"type": "string", "enum": ["yellow", "green", "pink", "blue", "purple", "orange"]},
				"is_pinned": {"type": "boolean", "description": "New pin state"}
			},
			"required": ["id"]
		}`),
	}, s.handleUpdateNote)

	// delete_note
	s.server.AddTool(&mcp.Tool{
		Name:        "delete_note",
		Description: "Delete a note",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Note ID or prefix"}
			},
			"required": ["id"]
		}`),
	}, s.handleDeleteNote)

	// toggle_pin
	s.server.AddTool(&mcp.Tool{
		Name:        "toggle_pin",
		Description: "Pin an unpinned note or unpin a pinned one",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "string", "description": "Note ID or prefix"}
			},
			"required": ["id"]
		}`),
	}, s.handleTogglePin)
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

func errorResult(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf(format, args...)},
		},
		IsError: true,
	}
}

// jsonResult renders notes in the stored record format.
func jsonResult(notes ...models.Note) *mcp.CallToolResult {
	data, err := store.Encode(notes)
	if err != nil {
		return errorResult("failed to encode notes: %v", err)
	}
	return textResult(data)
}

// persistErrorResult reports a change that applied in memory but failed to save.
func persistErrorResult(action string, note *models.Note, err error) *mcp.CallToolResult {
	return errorResult("%s note %s but could not save it: %v", action, note.ID, err)
}

// decodeArgs unmarshals tool arguments into params. Absent arguments leave
// params at its zero value.
func decodeArgs(req *mcp.CallToolRequest, params any) error {
	if req.Params == nil || len(req.Params.Arguments) == 0 {
		return nil
	}
	return json.Unmarshal(req.Params.Arguments, params)
}

func (s *Server) resolve(idOrPrefix string) (models.Note, error) {
	note, err := s.store.FindByPrefix(idOrPrefix)
	if err != nil {
		return models.Note{}, fmt.Errorf("failed to find note %q: %w", idOrPrefix, err)
	}
	return note, nil
}

func (s *Server) handleAddNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		Color   string `json:"color"`
	}
	if err := decodeArgs(req, &params); err != nil {
		return errorResult("invalid arguments: %v", err), nil
	}

	color, err := models.ParseColor(params.Color)
	if err != nil {
		return errorResult("%v", err), nil
	}

	note, err := s.store.Add(ctx, params.Title, params.Content, color)
	if note == nil && err == nil {
		return errorResult("note title and content cannot both be empty"), nil
	}
	if err != nil {
		if errors.Is(err, store.ErrPersist) {
			return persistErrorResult("created", note, err), nil
		}
		return errorResult("failed to create note: %v", err), nil
	}

	return textResult(fmt.Sprintf("Created note %s", note.ID.String())), nil
}

func (s *Server) handleListNotes(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Pinned *bool `json:"pinned"`
	}
	if err := decodeArgs(req, &params); err != nil {
		return errorResult("invalid arguments: %v", err), nil
	}

	board := view.Compose(s.store.Notes())
	if params.Pinned != nil {
		if *params.Pinned {
			return jsonResult(board.Pinned...), nil
		}
		return jsonResult(board.Unpinned...), nil
	}

	pinned, err := store.Encode(board.Pinned)
	if err != nil {
		return errorResult("failed to encode notes: %v", err), nil
	}
	other, err := store.Encode(board.Unpinned)
	if err != nil {
		return errorResult("failed to encode notes: %v", err), nil
	}
	data, _ := json.MarshalIndent(struct {
		Pinned json.RawMessage `json:"pinned"`
		Other  json.RawMessage `json:"other"`
	}{json.RawMessage(pinned), json.RawMessage(other)}, "", "  ")

	return textResult(string(data)), nil
}

func (s *Server) handleGetNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID string `json:"id"`
	}
	if err := decodeArgs(req, &params); err != nil {
		return errorResult("invalid arguments: %v", err), nil
	}

	note, err := s.resolve(params.ID)
	if err != nil {
		return errorResult("%v", err), nil
	}
	return jsonResult(note), nil
}

func (s *Server) handleUpdateNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID       string  `json:"id"`
		Title    *string `json:"title"`
		Content  *string `json:"content"`
		Color    *string `json:"color"`
		IsPinned *bool   `json:"is_pinned"`
	}
	if err := decodeArgs(req, &params); err != nil {
		return errorResult("invalid arguments: %v", err), nil
	}

	existing, err := s.resolve(params.ID)
	if err != nil {
		return errorResult("%v", err), nil
	}

	patch := models.NotePatch{
		Title:    params.Title,
		Content:  params.Content,
		IsPinned: params.IsPinned,
	}
	if params.Color != nil {
		if *params.Color == "" {
			return errorResult("%v: empty color", models.ErrInvalidColor), nil
		}
		color, err := models.ParseColor(*params.Color)
		if err != nil {
			return errorResult("%v", err), nil
		}
		patch.Color = &color
	}

	note, err := s.store.Update(ctx, existing.ID, patch)
	if err != nil {
		if errors.Is(err, store.ErrPersist) {
			return persistErrorResult("updated", note, err), nil
		}
		return errorResult("failed to update note: %v", err), nil
	}
	if note == nil {
		return errorResult("note %s was deleted before it could be updated", existing.ID), nil
	}

	return textResult(fmt.Sprintf("Updated note %s", note.ID.String())), nil
}

func (s *Server) handleDeleteNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID string `json:"id"`
	}
	if err := decodeArgs(req, &params); err != nil {
		return errorResult("invalid arguments: %v", err), nil
	}

	note, err := s.resolve(params.ID)
	if err != nil {
		return errorResult("%v", err), nil
	}

	if _, err := s.store.Delete(ctx, note.ID); err != nil {
		if errors.Is(err, store.ErrPersist) {
			return persistErrorResult("deleted", &note, err), nil
		}
		return errorResult("failed to delete note: %v", err), nil
	}

	return textResult(fmt.Sprintf("Deleted note %s", note.ID.String())), nil
}

func (s *Server) handleTogglePin(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		ID string `json:"id"`
	}
	if err := decodeArgs(req, &params); err != nil {
		return errorResult("invalid arguments: %v", err), nil
	}

	existing, err := s.resolve(params.ID)
	if err != nil {
		return errorResult("%v", err), nil
	}

	note, err := s.store.TogglePinned(ctx, existing.ID)
	if err != nil {
		if errors.Is(err, store.ErrPersist) {
			return persistErrorResult("toggled", note, err), nil
		}
		return errorResult("failed to toggle pin: %v", err), nil
	}
	if note == nil {
		return errorResult("note %s was deleted before it could be toggled", existing.ID), nil
	}

	state := "Unpinned"
	if note.IsPinned {
		state = "Pinned"
	}
	return textResult(fmt.Sprintf("%s note %s", state, note.ID.String())), nil
}
