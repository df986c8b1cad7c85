package commands

import (
	"context"
	"fmt"

	"NotesApp/internal/config"
)

type getCmd struct{}

func (getCmd) Name() string        { return "get" }
func (getCmd) Description() string { return "Show a single note by id" }
func (getCmd) Usage() string       { return "get <id>" }

func (getCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	a, err := openApp(cfg)
	if err != nil {
		return err
	}
	n, ok := a.notes.Get(ctx, args[0])
	if !ok {
		return errNotified
	}
	fmt.Fprintf(Out, "id:        %s\n", n.ID)
	fmt.Fprintf(Out, "title:     %s\n", n.Title)
	fmt.Fprintf(Out, "created:   %s\n", a.renderer.FormatTime(n.CreatedAt))
	fmt.Fprintf(Out, "archived:  %t\n", n.Archived)
	fmt.Fprintf(Out, "body:\n%s\n", n.Body)
	return nil
}

func init() { RegisterCmd(getCmd{}) }
