package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"tourdesk/src/api"
	"tourdesk/src/models"
	"tourdesk/src/utils"
)

func tourCmd(ctx context.Context, client *api.Client, args []string) error {
	if len(args) < 1 {
		return errors.New("tours: missing subcommand")
	}
	switch args[0] {
	case "list":
		return listTours(ctx, client)
	case "get":
		return getTour(ctx, client, args[1:])
	case "create":
		return createTour(ctx, client, args[1:])
	case "update":
		return updateTour(ctx, client, args[1:])
	case "delete":
		return deleteTour(ctx, client, args[1:])
	case "approve":
		return tourStatusAction(ctx, client, args[1:], client.ApproveTour)
	case "reject":
		return tourStatusAction(ctx, client, args[1:], client.RejectTour)
	case "activate":
		return tourToggleAction(ctx, client, args[1:], true)
	case "deactivate":
		return tourToggleAction(ctx, client, args[1:], false)
	case "categories":
		return listCategories(ctx, client)
	case "by-supplier":
		return toursBySupplier(ctx, client, args[1:])
	case "by-location":
		return toursByLocation(ctx, client, args[1:])
	default:
		return fmt.Errorf("tours: unknown subcommand %q", args[0])
	}
}

func printTours(tours []models.Tour) {
	w := utils.NewTable(os.Stdout)
	utils.Row(w, "ID", "NAME", "PRICE", "CAPACITY", "STATUS", "SUPPLIER")
	for _, t := range tours {
		supplier := t.SupplierID.ID
		if t.SupplierID.Populated() {
			supplier = utils.RefLabel(t.SupplierID.ID, t.SupplierID.Supplier.DisplayName())
		}
		utils.Row(w,
			t.ID,
			utils.Truncate(t.Name, 40),
			strconv.FormatFloat(t.Price, 'f', 2, 64),
			strconv.Itoa(t.MaxTicketsPerDay),
			string(t.Status),
			supplier,
		)
	}
	w.Flush()
}

func listTours(ctx context.Context, client *api.Client) error {
	tours, err := client.GetTours(ctx)
	if err != nil {
		return err
	}
	printTours(tours)
	return nil
}

func getTour(ctx context.Context, client *api.Client, args []string) error {
	fs := newFlagSet("tours get")
	id := fs.String("id", "", "tour id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	tour, err := client.GetTour(ctx, *id)
	if err != nil {
		return err
	}
	if tour == nil {
		return errors.New("tour response had no usable shape")
	}
	printTours([]models.Tour{*tour})
	return nil
}

func tourInputFlags(fs *flag.FlagSet) *api.TourInput {
	in := &api.TourInput{}
	fs.StringVar(&in.Name, "name", "", "tour name")
	fs.StringVar(&in.Description, "description", "", "tour description")
	fs.StringVar(&in.Price, "price", "", "adult price")
	fs.StringVar(&in.PriceChild, "price-child", "", "child price")
	fs.StringVar(&in.MaxTicketsPerDay, "capacity", "", "max tickets per day")
	fs.StringVar(&in.Location, "location", "", "tour location")
	fs.StringVar(&in.CateID.ID, "category", "", "category id")
	fs.StringVar(&in.SupplierID.ID, "supplier", "", "supplier id")
	fs.StringVar(&in.OpeningTime, "opens", "", "opening time, e.g. 08:00")
	fs.StringVar(&in.ClosingTime, "closes", "", "closing time, e.g. 18:00")
	fs.StringVar(&in.Status, "status", "pending", "initial status")
	fs.Float64Var(&in.Lat, "lat", 0, "latitude")
	fs.Float64Var(&in.Lng, "lng", 0, "longitude")
	return in
}

func createTour(ctx context.Context, client *api.Client, args []string) error {
	fs := newFlagSet("tours create")
	in := tourInputFlags(fs)
	images := multiFlag{}
	services := multiFlag{}
	fs.Var(&images, "image", "image URL (repeatable)")
	fs.Var(&services, "service", "included service (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	in.Image = images
	for _, name := range services {
		in.Services = append(in.Services, api.NewTourService(name))
	}
	_, err := client.CreateTour(ctx, *in)
	return err
}

func updateTour(ctx context.Context, client *api.Client, args []string) error {
	fs := newFlagSet("tours update")
	id := fs.String("id", "", "tour id")
	name := fs.String("name", "", "tour name")
	description := fs.String("description", "", "tour description")
	price := fs.String("price", "", "adult price")
	capacity := fs.String("capacity", "", "max tickets per day")
	location := fs.String("location", "", "tour location")
	category := fs.String("category", "", "category id")
	supplier := fs.String("supplier", "", "supplier id")
	status := fs.String("status", "", "tour status")
	if err := fs.Parse(args); err != nil {
		return err
	}

	in := api.TourUpdateInput{}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			in.Name = name
		case "description":
			in.Description = description
		case "price":
			in.Price = price
		case "capacity":
			in.MaxTicketsPerDay = capacity
		case "location":
			in.Location = location
		case "category":
			in.CateID = &models.CategoryRef{ID: *category}
		case "supplier":
			in.SupplierID = &models.SupplierRef{ID: *supplier}
		case "status":
			in.Status = status
		}
	})
	_, err := client.UpdateTour(ctx, *id, in)
	return err
}

func deleteTour(ctx context.Context, client *api.Client, args []string) error {
	fs := newFlagSet("tours delete")
	id := fs.String("id", "", "tour id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return client.DeleteTour(ctx, *id)
}

func tourStatusAction(ctx context.Context, client *api.Client, args []string, action func(context.Context, string) error) error {
	fs := newFlagSet("tours status")
	id := fs.String("id", "", "tour id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return action(ctx, *id)
}

func tourToggleAction(ctx context.Context, client *api.Client, args []string, active bool) error {
	fs := newFlagSet("tours toggle")
	id := fs.String("id", "", "tour id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return client.ToggleTourStatus(ctx, *id, active)
}

func listCategories(ctx context.Context, client *api.Client) error {
	categories, err := client.GetCategories(ctx)
	if err != nil {
		return err
	}
	w := utils.NewTable(os.Stdout)
	utils.Row(w, "ID", "NAME")
	for _, cat := range categories {
		utils.Row(w, cat.ID, cat.Name)
	}
	w.Flush()
	return nil
}

func toursBySupplier(ctx context.Context, client *api.Client, args []string) error {
	fs := newFlagSet("tours by-supplier")
	populate := fs.String("populate", "supplier_id", "relations to populate")
	if err := fs.Parse(args); err != nil {
		return err
	}
	tours, err := client.ToursBySupplier(ctx, *populate)
	if err != nil {
		return err
	}
	printTours(tours)
	return nil
}

func toursByLocation(ctx context.Context, client *api.Client, args []string) error {
	fs := newFlagSet("tours by-location")
	category := fs.String("category", "", "category id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	tours, err := client.ToursByLocation(ctx, *category)
	if err != nil {
		return err
	}
	printTours(tours)
	return nil
}
