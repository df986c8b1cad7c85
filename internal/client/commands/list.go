package commands

import (
	"context"
	"fmt"
	"strings"

	"NotesApp/internal/config"
)

type listCmd struct{}

func (listCmd) Name() string        { return "list" }
func (listCmd) Description() string { return "Show active notes (filtered by title) and archived notes" }
func (listCmd) Usage() string       { return "list [search]" }

func (listCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	a, err := openApp(cfg)
	if err != nil {
		return err
	}
	return a.printBoard(ctx, strings.Join(args, " "))
}

type archivedCmd struct{}

func (archivedCmd) Name() string        { return "archived" }
func (archivedCmd) Description() string { return "Show archived notes only" }
func (archivedCmd) Usage() string       { return "archived" }

func (archivedCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	a, err := openApp(cfg)
	if err != nil {
		return err
	}
	board := a.sync.Sync(ctx, "")
	if board.Stale {
		return errNotified
	}
	if len(board.Archived) == 0 {
		fmt.Fprintln(Out, "No archived notes")
		return nil
	}
	for _, c := range board.Archived {
		a.printCard(c)
	}
	return nil
}

func init() {
	RegisterCmd(listCmd{})
	RegisterCmd(archivedCmd{})
}
