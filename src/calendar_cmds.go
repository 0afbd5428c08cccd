package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"tourdesk/src/api"
	"tourdesk/src/lib"
	"tourdesk/src/utils"
)

func calendarCmd(ctx context.Context, client *api.Client, args []string) error {
	if len(args) < 1 {
		return errors.New("calendar: missing subcommand")
	}
	switch args[0] {
	case "month":
		return calendarMonth(ctx, client, args[1:])
	case "day":
		return calendarDay(ctx, client, args[1:])
	default:
		return fmt.Errorf("calendar: unknown subcommand %q", args[0])
	}
}

func calendarMonth(ctx context.Context, client *api.Client, args []string) error {
	now := time.Now()
	fs := newFlagSet("calendar month")
	year := fs.Int("year", now.Year(), "calendar year")
	month := fs.Int("month", int(now.Month()), "calendar month, 1-12")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *month < 1 || *month > 12 {
		return fmt.Errorf("calendar: month %d out of range", *month)
	}

	bookings, err := client.GetAllBookings(ctx)
	if err != nil {
		return err
	}
	summaries := lib.MonthSummary(bookings, *year, time.Month(*month))
	w := utils.NewTable(os.Stdout)
	utils.Row(w, "DATE", "TOUR", "BOOKINGS", "GUESTS", "LOAD")
	for _, day := range summaries {
		for _, load := range day.Tours {
			utils.Row(w,
				day.Date,
				utils.RefLabel(load.TourID, load.TourName),
				strconv.Itoa(load.Bookings),
				strconv.Itoa(load.Guests),
				string(lib.LoadLevelFor(load.Guests)),
			)
		}
		utils.Row(w, day.Date, "(total)", strconv.Itoa(day.Bookings), strconv.Itoa(day.Guests), string(lib.LoadLevelFor(day.Guests)))
	}
	w.Flush()
	return nil
}

func calendarDay(ctx context.Context, client *api.Client, args []string) error {
	fs := newFlagSet("calendar day")
	date := fs.String("date", time.Now().Format("2006-01-02"), "day to show, YYYY-MM-DD")
	if err := fs.Parse(args); err != nil {
		return err
	}
	day, err := time.Parse("2006-01-02", *date)
	if err != nil {
		return fmt.Errorf("calendar: bad -date: %w", err)
	}

	bookings, err := client.GetAllBookings(ctx)
	if err != nil {
		return err
	}
	printBookings(lib.BookingsOn(bookings, day))
	return nil
}
