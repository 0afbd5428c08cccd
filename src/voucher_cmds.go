package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"tourdesk/src/api"
	"tourdesk/src/types"
	"tourdesk/src/utils"
)

func voucherCmd(ctx context.Context, client *api.Client, args []string) error {
	if len(args) < 1 {
		return errors.New("vouchers: missing subcommand")
	}
	switch args[0] {
	case "list":
		return listVouchers(ctx, client)
	case "create":
		return createVoucher(ctx, client, args[1:])
	case "delete":
		return deleteVoucher(ctx, client, args[1:])
	case "activate":
		return setVoucherStatus(ctx, client, args[1:], types.VOUCHER_ACTIVE)
	case "deactivate":
		return setVoucherStatus(ctx, client, args[1:], types.VOUCHER_DEACTIVE)
	default:
		return fmt.Errorf("vouchers: unknown subcommand %q", args[0])
	}
}

func listVouchers(ctx context.Context, client *api.Client) error {
	vouchers, err := client.GetVouchers(ctx)
	if err != nil {
		return err
	}
	w := utils.NewTable(os.Stdout)
	utils.Row(w, "ID", "CODE", "DISCOUNT", "TOUR", "START", "END", "STATUS")
	for _, v := range vouchers {
		utils.Row(w,
			v.ID,
			v.Code,
			strconv.FormatFloat(v.Discount, 'f', 0, 64)+"%",
			v.TourID.ID,
			v.StartDate,
			v.EndDate,
			string(v.Status),
		)
	}
	w.Flush()
	return nil
}

func createVoucher(ctx context.Context, client *api.Client, args []string) error {
	fs := newFlagSet("vouchers create")
	in := types.CreateVoucherRequestBody{}
	fs.StringVar(&in.TourID, "tour", "", "owning tour id")
	fs.StringVar(&in.Code, "code", "", "voucher code")
	fs.Float64Var(&in.Discount, "discount", 0, "discount percentage, 1-100")
	fs.StringVar(&in.Condition, "condition", "", "redemption condition")
	fs.StringVar(&in.StartDate, "start", "", "validity start, YYYY-MM-DD")
	fs.StringVar(&in.EndDate, "end", "", "validity end, YYYY-MM-DD")
	if err := fs.Parse(args); err != nil {
		return err
	}
	_, err := client.CreateVoucher(ctx, in)
	return err
}

func deleteVoucher(ctx context.Context, client *api.Client, args []string) error {
	fs := newFlagSet("vouchers delete")
	id := fs.String("id", "", "voucher id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return client.DeleteVoucher(ctx, *id)
}

func setVoucherStatus(ctx context.Context, client *api.Client, args []string, status types.VoucherStatus) error {
	fs := newFlagSet("vouchers status")
	id := fs.String("id", "", "voucher id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return client.SetVoucherStatus(ctx, *id, status)
}
