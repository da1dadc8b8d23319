// ABOUTME: Show command for displaying a single note.
// ABOUTME: Renders markdown content with glamour.

package main

import (
	"fmt"

	"github.com/harper/quicknotes/internal/ui"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id-prefix>",
	Short: "Show a note",
	Long:  `Display a note's full content with rendered markdown.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		note, err := noteStore.FindByPrefix(args[0])
		if err != nil {
			return fmt.Errorf("failed to get note: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprint(out, ui.FormatNoteHeader(&note))

		content, _ := ui.FormatNoteContent(note.Content)
		fmt.Fprint(out, content)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
