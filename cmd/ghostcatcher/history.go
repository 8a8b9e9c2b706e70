package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ghost-catcher/internal/games/ghostcatch"
	"github.com/vovakirdan/ghost-catcher/internal/platform/tui"
	"github.com/vovakirdan/ghost-catcher/internal/registry"
	"github.com/vovakirdan/ghost-catcher/internal/storage"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded rounds",
	Long: `Show the round journal written by 'play --db' or 'serve --db'.

Tab switches between the most recent and the best rounds.

Examples:
  ghostcatcher history --db ~/.ghostcatcher/rounds.db`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func runHistory(_ *cobra.Command, _ []string) error {
	if flagDBPath == "" {
		return errors.New("history needs a journal: pass --db <path>")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	title := ghostcatch.ID
	if info, ok := registry.Info(ghostcatch.ID); ok {
		title = info.Title
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	return tui.RunHistory(store, ghostcatch.ID, title, width, height)
}
