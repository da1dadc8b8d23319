// ABOUTME: Remove command for deleting notes.
// ABOUTME: Includes confirmation prompt before deletion.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/harper/quicknotes/internal/store"
	"github.com/harper/quicknotes/internal/ui"
	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id-prefix>",
	Short: "Remove a note",
	Long:  `Delete a note.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		note, err := noteStore.FindByPrefix(args[0])
		if err != nil {
			return fmt.Errorf("failed to get note: %w", err)
		}

		out := cmd.OutOrStdout()
		if !force {
			fmt.Fprintf(out, "Delete note %q (%s)? [y/N] ", note.DisplayTitle(), note.ShortID())
			reader := bufio.NewReader(cmd.InOrStdin())
			response, _ := reader.ReadString('\n')
			response = strings.TrimSpace(strings.ToLower(response))
			if response != "y" && response != "yes" {
				fmt.Fprintln(out, "Cancelled.")
				return nil
			}
		}

		if _, err := noteStore.Delete(cmd.Context(), note.ID); err != nil {
			if errors.Is(err, store.ErrPersist) {
				return fmt.Errorf("deleted note %s but could not save it: %w", note.ShortID(), err)
			}
			return fmt.Errorf("failed to delete note: %w", err)
		}

		fmt.Fprintln(out, ui.Success(fmt.Sprintf("Deleted note %s", note.ShortID())))
		return nil
	},
}

func init() {
	rmCmd.Flags().BoolP("force", "f", false, "skip confirmation")
	rootCmd.AddCommand(rmCmd)
}
