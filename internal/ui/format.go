// ABOUTME: Terminal UI formatting for quicknotes output.
// ABOUTME: Uses glamour for markdown and fatih/color for styling.

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/harper/quicknotes/internal/models"
	"github.com/harper/quicknotes/internal/view"
)

const (
	PinnedHeader = "Pinned Notes"
	OtherHeader  = "Other Notes"
	EmptyBoard   = "No notes yet. Create your first note with 'quicknotes add'."

	DateLayout = "Jan 2, 2006"
)

var (
	faint = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

var swatches = map[models.Color]*color.Color{
	models.Yellow: color.New(color.FgYellow),
	models.Green:  color.New(color.FgGreen),
	models.Pink:   color.New(color.FgHiMagenta),
	models.Blue:   color.New(color.FgBlue),
	models.Purple: color.New(color.FgMagenta),
	models.Orange: color.New(color.FgHiRed),
}

// Swatch is a small block printed in the note color.
func Swatch(c models.Color) string {
	sw, ok := swatches[c]
	if !ok {
		sw = swatches[models.DefaultColor]
	}
	return sw.Sprint("■")
}

// FormatBoard renders both sections of a board, or the empty message.
func FormatBoard(b view.Board) string {
	if b.Empty {
		return faint(EmptyBoard) + "\n"
	}

	var sb strings.Builder
	if len(b.Pinned) > 0 {
		sb.WriteString(sectionHeader(PinnedHeader))
		for i := range b.Pinned {
			sb.WriteString(FormatCard(&b.Pinned[i]))
		}
	}
	if len(b.Unpinned) > 0 {
		if len(b.Pinned) > 0 {
			sb.WriteString(sectionHeader(OtherHeader))
		}
		for i := range b.Unpinned {
			sb.WriteString(FormatCard(&b.Unpinned[i]))
		}
	}
	return sb.String()
}

func sectionHeader(title string) string {
	return fmt.Sprintf("\n%s\n", bold(title))
}

// FormatCard renders one note as a compact list entry.
func FormatCard(note *models.Note) string {
	var sb strings.Builder

	pin := " "
	if note.IsPinned {
		pin = "📌"
	}
	sb.WriteString(fmt.Sprintf("  %s %s  %s %s\n",
		Swatch(note.Color), faint(note.ShortID()), bold(note.DisplayTitle()), pin))

	if note.Content != "" {
		sb.WriteString(fmt.Sprintf("         %s\n", firstLine(note.Content)))
	}

	sb.WriteString(fmt.Sprintf("         %s\n", faint(note.UpdatedAt.Format(DateLayout))))
	return sb.String()
}

func firstLine(s string) string {
	line, rest, _ := strings.Cut(s, "\n")
	if rest != "" {
		return line + " " + faint("…")
	}
	return line
}

func FormatNoteContent(content string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return content, nil //nolint:nilerr // raw content is an acceptable fallback
	}

	out, err := renderer.Render(content)
	if err != nil {
		return content, nil //nolint:nilerr // raw content is an acceptable fallback
	}
	return out, nil
}

func FormatNoteHeader(note *models.Note) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s %s\n", Swatch(note.Color), bold(note.DisplayTitle())))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("ID:"), faint(note.ID.String())))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Color:"), note.Color.Label()))
	if note.IsPinned {
		sb.WriteString(fmt.Sprintf("%s %s\n", faint("Pinned:"), "yes"))
	}
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Created:"), faint(note.CreatedAt.Format(DateLayout))))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Updated:"), faint(note.UpdatedAt.Format(DateLayout))))

	sb.WriteString(Separator())
	return sb.String()
}

// FormatColorList renders the palette in its fixed order.
func FormatColorList() string {
	var sb strings.Builder
	for _, c := range models.Colors() {
		sb.WriteString(fmt.Sprintf("  %s %-8s %s\n", Swatch(c), c.String(), faint(c.Label())))
	}
	return sb.String()
}

func Separator() string {
	return faint(strings.Repeat("─", 50)) + "\n"
}

func Success(msg string) string {
	return color.New(color.FgGreen).Sprint("✓ ") + msg
}

func Error(msg string) string {
	return color.New(color.FgRed).Sprint("✗ ") + msg
}
