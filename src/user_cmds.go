package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tourdesk/src/api"
	"tourdesk/src/utils"
)

func userCmd(ctx context.Context, client *api.Client, args []string) error {
	if len(args) < 1 {
		return errors.New("users: missing subcommand")
	}
	switch args[0] {
	case "list":
		return listUsers(ctx, client)
	case "delete":
		return deleteUser(ctx, client, args[1:])
	default:
		return fmt.Errorf("users: unknown subcommand %q", args[0])
	}
}

func listUsers(ctx context.Context, client *api.Client) error {
	users, err := client.GetUsers(ctx)
	if err != nil {
		return err
	}
	w := utils.NewTable(os.Stdout)
	utils.Row(w, "ID", "NAME", "EMAIL", "ROLE")
	for _, u := range users {
		utils.Row(w, u.ID, u.Name, u.Email, string(u.ResolvedRole()))
	}
	w.Flush()
	return nil
}

func deleteUser(ctx context.Context, client *api.Client, args []string) error {
	fs := newFlagSet("users delete")
	id := fs.String("id", "", "user id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return client.DeleteUser(ctx, *id)
}
