// ABOUTME: Add command for creating new notes.
// ABOUTME: Supports inline content, file input, or $EDITOR.

package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/harper/quicknotes/internal/models"
	"github.com/harper/quicknotes/internal/store"
	"github.com/harper/quicknotes/internal/ui"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new note",
	Long: `Create a new note. Content can be provided via --content or --file.
With neither a title nor content, $EDITOR is opened for the content.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var title string
		if len(args) > 0 {
			title = args[0]
		}

		contentFlag, _ := cmd.Flags().GetString("content")
		fileFlag, _ := cmd.Flags().GetString("file")
		colorFlag, _ := cmd.Flags().GetString("color")

		color, err := models.ParseColor(colorFlag)
		if err != nil {
			return err
		}

		var content string
		switch {
		case contentFlag != "":
			content = contentFlag
		case fileFlag != "":
			data, err := os.ReadFile(fileFlag) //nolint:gosec // User-specified file path is expected CLI behavior
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			content = string(data)
		case strings.TrimSpace(title) == "":
			content, err = openEditor("")
			if err != nil {
				return fmt.Errorf("failed to open editor: %w", err)
			}
		}

		note, err := noteStore.Add(cmd.Context(), title, content, color)
		if err != nil && !errors.Is(err, store.ErrPersist) {
			return fmt.Errorf("failed to create note: %w", err)
		}
		if note == nil {
			return fmt.Errorf("note title and content cannot both be empty")
		}
		if err != nil {
			return fmt.Errorf("created note %s but could not save it: %w", note.ShortID(), err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Created note %s", note.ShortID())))
		return nil
	},
}

func openEditor(initial string) (string, error) {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vim"
	}

	tmpFile, err := os.CreateTemp("", "quicknotes-*.md")
	if err != nil {
		return "", err
	}
	defer func() {
		_ = os.Remove(tmpFile.Name()) // Best-effort cleanup
	}()

	if initial != "" {
		if _, err := tmpFile.WriteString(initial); err != nil {
			_ = tmpFile.Close()
			return "", fmt.Errorf("failed to write initial content: %w", err)
		}
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	cmd := exec.Command(editor, tmpFile.Name()) //nolint:gosec // Launching $EDITOR is expected CLI behavior
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(tmpFile.Name())
	if err != nil {
		return "", err
	}

	return string(data), nil
}

func init() {
	addCmd.Flags().StringP("content", "c", "", "note content (inline)")
	addCmd.Flags().String("file", "", "read content from file")
	addCmd.Flags().String("color", models.DefaultColor.String(), "note color (see 'quicknotes colors')")
	rootCmd.AddCommand(addCmd)
}
