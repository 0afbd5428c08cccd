package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"tourdesk/src/api"
	"tourdesk/src/models"
	"tourdesk/src/utils"
)

func reviewCmd(ctx context.Context, client *api.Client, args []string) error {
	if len(args) < 1 {
		return errors.New("reviews: missing subcommand")
	}
	switch args[0] {
	case "list":
		return listReviews(ctx, client)
	default:
		return fmt.Errorf("reviews: unknown subcommand %q", args[0])
	}
}

func listReviews(ctx context.Context, client *api.Client) error {
	reviews, err := client.GetReviews(ctx)
	if err != nil {
		return err
	}
	w := utils.NewTable(os.Stdout)
	utils.Row(w, "ID", "TOUR", "RATING", "COMMENT")
	for _, r := range reviews {
		utils.Row(w,
			r.ID,
			utils.RefLabel(r.TourID.ID, tourRefName(r.TourID)),
			strconv.FormatFloat(r.Rating, 'f', 1, 64),
			utils.Truncate(r.Comment, 60),
		)
	}
	w.Flush()
	return nil
}

func tourRefName(r models.TourRef) string {
	if r.Populated() {
		return r.Tour.Name
	}
	return ""
}

func favoriteCmd(ctx context.Context, client *api.Client, args []string) error {
	if len(args) < 1 {
		return errors.New("favorites: missing subcommand")
	}
	switch args[0] {
	case "list":
		return listFavorites(ctx, client)
	case "add":
		return addFavorite(ctx, client, args[1:])
	case "remove":
		return removeFavorite(ctx, client, args[1:])
	default:
		return fmt.Errorf("favorites: unknown subcommand %q", args[0])
	}
}

func listFavorites(ctx context.Context, client *api.Client) error {
	favorites, err := client.GetFavorites(ctx)
	if err != nil {
		return err
	}
	w := utils.NewTable(os.Stdout)
	utils.Row(w, "ID", "TOUR")
	for _, f := range favorites {
		utils.Row(w, f.ID, utils.RefLabel(f.TourID.ID, tourRefName(f.TourID)))
	}
	w.Flush()
	return nil
}

func addFavorite(ctx context.Context, client *api.Client, args []string) error {
	fs := newFlagSet("favorites add")
	tourID := fs.String("tour", "", "tour id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return client.AddFavorite(ctx, *tourID)
}

func removeFavorite(ctx context.Context, client *api.Client, args []string) error {
	fs := newFlagSet("favorites remove")
	id := fs.String("id", "", "favorite id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return client.RemoveFavorite(ctx, *id)
}
