// ABOUTME: Edit command for modifying existing notes.
// ABOUTME: Applies flag changes, or opens the content in $EDITOR.

package main

import (
	"errors"
	"fmt"

	"github.com/harper/quicknotes/internal/models"
	"github.com/harper/quicknotes/internal/store"
	"github.com/harper/quicknotes/internal/ui"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <id-prefix>",
	Short: "Edit a note",
	Long: `Change a note's title, content, or color with flags.
Without flags the note content is opened in $EDITOR.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		note, err := noteStore.FindByPrefix(args[0])
		if err != nil {
			return fmt.Errorf("failed to get note: %w", err)
		}

		var patch models.NotePatch
		flags := cmd.Flags()
		if flags.Changed("title") {
			title, _ := flags.GetString("title")
			patch.Title = &title
		}
		if flags.Changed("content") {
			content, _ := flags.GetString("content")
			patch.Content = &content
		}
		if flags.Changed("color") {
			name, _ := flags.GetString("color")
			if name == "" {
				return fmt.Errorf("%w: empty color", models.ErrInvalidColor)
			}
			color, err := models.ParseColor(name)
			if err != nil {
				return err
			}
			patch.Color = &color
		}

		if patch.IsEmpty() {
			newContent, err := openEditor(note.Content)
			if err != nil {
				return fmt.Errorf("failed to open editor: %w", err)
			}
			if newContent == note.Content {
				fmt.Fprintln(cmd.OutOrStdout(), "No changes made.")
				return nil
			}
			patch.Content = &newContent
		}

		updated, err := noteStore.Update(cmd.Context(), note.ID, patch)
		if err != nil {
			if errors.Is(err, store.ErrPersist) {
				return fmt.Errorf("updated note %s but could not save it: %w", note.ShortID(), err)
			}
			return fmt.Errorf("failed to update note: %w", err)
		}
		if updated == nil {
			return fmt.Errorf("failed to update note: %w", store.ErrNoteNotFound)
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Updated note %s", updated.ShortID())))
		return nil
	},
}

func init() {
	editCmd.Flags().StringP("title", "t", "", "new title")
	editCmd.Flags().StringP("content", "c", "", "new content")
	editCmd.Flags().String("color", "", "new color")
	rootCmd.AddCommand(editCmd)
}
