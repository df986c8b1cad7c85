package commands

import (
	"context"
	"fmt"

	"NotesApp/internal/client/service"
	"NotesApp/internal/config"
)

type addCmd struct{}

func (addCmd) Name() string        { return "add" }
func (addCmd) Description() string { return "Create a note, then show both lists" }
func (addCmd) Usage() string       { return "add <title> <body>" }

func (addCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	// пустые поля отклоняются до любого сетевого вызова
	if err := service.ValidateDraft(args[0], args[1]); err != nil {
		return err
	}
	a, err := openApp(cfg)
	if err != nil {
		return err
	}
	n, ok := a.notes.Create(ctx, args[0], args[1])
	if ok {
		fmt.Fprintf(Out, "Created %s\n", n.ID)
	}
	return afterMutation(ctx, a, ok)
}

type deleteCmd struct{}

func (deleteCmd) Name() string        { return "delete" }
func (deleteCmd) Description() string { return "Delete a note, then show both lists" }
func (deleteCmd) Usage() string       { return "delete <id>" }

func (deleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	a, err := openApp(cfg)
	if err != nil {
		return err
	}
	return afterMutation(ctx, a, a.notes.Delete(ctx, args[0]))
}

// archiveCmd переключает состояние архива; unarchive — тот же код с archived=true.
type archiveCmd struct {
	unarchive bool
}

func (c archiveCmd) Name() string {
	if c.unarchive {
		return "unarchive"
	}
	return "archive"
}

func (c archiveCmd) Description() string {
	if c.unarchive {
		return "Move a note back to the active list"
	}
	return "Move a note to the archive"
}

func (c archiveCmd) Usage() string { return c.Name() + " <id>" }

func (c archiveCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	a, err := openApp(cfg)
	if err != nil {
		return err
	}
	return afterMutation(ctx, a, a.notes.ToggleArchive(ctx, args[0], c.unarchive))
}

func init() {
	RegisterCmd(addCmd{})
	RegisterCmd(deleteCmd{})
	RegisterCmd(archiveCmd{})
	RegisterCmd(archiveCmd{unarchive: true})
}

// afterMutation всегда пересинхронизирует списки, даже если действие не удалось.
func afterMutation(ctx context.Context, a *app, ok bool) error {
	if err := a.printBoard(ctx, ""); err != nil {
		return err
	}
	if !ok {
		return errNotified
	}
	return nil
}
