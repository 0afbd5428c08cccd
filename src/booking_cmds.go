package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"tourdesk/src/api"
	"tourdesk/src/models"
	"tourdesk/src/types"
	"tourdesk/src/utils"
)

func bookingCmd(ctx context.Context, client *api.Client, args []string) error {
	if len(args) < 1 {
		return errors.New("bookings: missing subcommand")
	}
	switch args[0] {
	case "list":
		return listBookings(ctx, client)
	case "user":
		return listUserBookings(ctx, client, args[1:])
	case "status":
		return updateBookingStatus(ctx, client, args[1:])
	default:
		return fmt.Errorf("bookings: unknown subcommand %q", args[0])
	}
}

func printBookings(bookings []models.Booking) {
	w := utils.NewTable(os.Stdout)
	utils.Row(w, "ID", "DATE", "TOUR", "GUESTS", "STATUS", "OPTIONS")
	for _, b := range bookings {
		tour := b.TourID.ID
		if b.TourID.Populated() {
			tour = utils.RefLabel(b.TourID.ID, b.TourID.Tour.Name)
		}
		utils.Row(w,
			b.ID,
			b.BookingDate,
			utils.Truncate(tour, 40),
			strconv.Itoa(b.Guests()),
			string(b.Status),
			strconv.Itoa(len(b.SelectedOptions)),
		)
	}
	w.Flush()
}

func listBookings(ctx context.Context, client *api.Client) error {
	bookings, err := client.GetAllBookings(ctx)
	if err != nil {
		return err
	}
	printBookings(bookings)
	return nil
}

func listUserBookings(ctx context.Context, client *api.Client, args []string) error {
	fs := newFlagSet("bookings user")
	id := fs.String("id", "", "user id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	bookings, err := client.GetUserBookings(ctx, *id)
	if err != nil {
		return err
	}
	printBookings(bookings)
	return nil
}

func updateBookingStatus(ctx context.Context, client *api.Client, args []string) error {
	fs := newFlagSet("bookings status")
	id := fs.String("id", "", "booking id")
	status := fs.String("status", "", "target status")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return client.UpdateBookingStatus(ctx, *id, types.BookingStatus(*status))
}
