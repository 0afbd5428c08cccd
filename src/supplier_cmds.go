package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tourdesk/src/api"
	"tourdesk/src/types"
	"tourdesk/src/utils"
)

func supplierCmd(ctx context.Context, client *api.Client, args []string) error {
	if len(args) < 1 {
		return errors.New("suppliers: missing subcommand")
	}
	switch args[0] {
	case "list":
		return listSuppliers(ctx, client)
	case "create":
		return createSupplier(ctx, client, args[1:])
	default:
		return fmt.Errorf("suppliers: unknown subcommand %q", args[0])
	}
}

func listSuppliers(ctx context.Context, client *api.Client) error {
	suppliers, err := client.GetSuppliers(ctx)
	if err != nil {
		return err
	}
	w := utils.NewTable(os.Stdout)
	utils.Row(w, "ID", "NAME", "EMAIL", "ROLE")
	for _, s := range suppliers {
		utils.Row(w, s.ID, s.DisplayName(), s.Email, s.Role)
	}
	w.Flush()
	return nil
}

func createSupplier(ctx context.Context, client *api.Client, args []string) error {
	fs := newFlagSet("suppliers create")
	in := types.CreateSupplierRequestBody{}
	fs.StringVar(&in.Name, "name", "", "supplier name")
	fs.StringVar(&in.Email, "email", "", "supplier email")
	fs.StringVar(&in.Password, "password", "", "initial password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	_, err := client.CreateSupplier(ctx, in)
	return err
}
