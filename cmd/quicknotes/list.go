// ABOUTME: List command for displaying the notes board.
// ABOUTME: Shows pinned notes first, then the other notes.

package main

import (
	"fmt"

	"github.com/harper/quicknotes/internal/models"
	"github.com/harper/quicknotes/internal/ui"
	"github.com/harper/quicknotes/internal/view"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List notes",
	Long:    `List all notes, pinned notes first, newest first within each section.`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		colorFlag, _ := cmd.Flags().GetString("color")

		b := board
		if colorFlag != "" {
			color, err := models.ParseColor(colorFlag)
			if err != nil {
				return err
			}
			b = view.Compose(filterColor(noteStore.Notes(), color))
		}

		fmt.Fprint(cmd.OutOrStdout(), ui.FormatBoard(b))
		return nil
	},
}

func filterColor(notes []models.Note, color models.Color) []models.Note {
	var out []models.Note
	for _, n := range notes {
		if n.Color == color {
			out = append(out, n)
		}
	}
	return out
}

func init() {
	listCmd.Flags().String("color", "", "only show notes of this color")
	rootCmd.AddCommand(listCmd)
}
