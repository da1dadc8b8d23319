// ABOUTME: Pin command for toggling a note's pinned state.
// ABOUTME: Pinned notes are listed in their own section above the rest.

package main

import (
	"errors"
	"fmt"

	"github.com/harper/quicknotes/internal/store"
	"github.com/harper/quicknotes/internal/ui"
	"github.com/spf13/cobra"
)

var pinCmd = &cobra.Command{
	Use:   "pin <id-prefix>",
	Short: "Pin or unpin a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		note, err := noteStore.FindByPrefix(args[0])
		if err != nil {
			return fmt.Errorf("failed to get note: %w", err)
		}

		toggled, err := noteStore.TogglePinned(cmd.Context(), note.ID)
		if err != nil && !errors.Is(err, store.ErrPersist) {
			return fmt.Errorf("failed to toggle pin: %w", err)
		}
		if toggled == nil {
			return fmt.Errorf("failed to toggle pin: %w", store.ErrNoteNotFound)
		}
		if err != nil {
			return fmt.Errorf("toggled note %s but could not save it: %w", note.ShortID(), err)
		}

		msg := "Unpinned note %s"
		if toggled.IsPinned {
			msg = "Pinned note %s"
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf(msg, toggled.ShortID())))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pinCmd)
}
