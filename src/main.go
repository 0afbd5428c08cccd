package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"strings"

	"github.com/covalenthq/lumberjack"
	"github.com/joho/godotenv"
	_ "github.com/joho/godotenv/autoload"

	"tourdesk/src/api"
	"tourdesk/src/config"
	"tourdesk/src/session"
)

// consoleNotifier is the CLI stand-in for the dashboard's toast layer.
type consoleNotifier struct{}

func (consoleNotifier) Success(msg string) {
	fmt.Fprintln(os.Stdout, msg)
}
func (consoleNotifier) Error(msg string) {
	fmt.Fprintln(os.Stderr, msg)
}

func initLogger() {
	cwd, _ := os.Getwd()
	clientLogs := path.Join(cwd, "logs", "tourdesk.log")
	log.SetOutput(io.MultiWriter(os.Stderr, &lumberjack.Logger{
		Filename:   clientLogs,
		MaxSize:    500,
		MaxBackups: 3,
		MaxAge:     30,
		Compress:   true,
	}))
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: tourdesk <command> [flags]

commands:
  login      sign in with email and password
  logout     clear the stored session
  tours      list|get|create|update|delete|approve|reject|activate|deactivate|categories|by-supplier|by-location
  vouchers   list|create|delete|activate|deactivate
  suppliers  list|create
  users      list|delete
  bookings   list|user|status
  reviews    list
  favorites  list|add|remove
  calendar   month|day`)
}

func main() {
	apiEnv := os.Getenv("API_ENV")
	if apiEnv == "local" {
		cwd, _ := os.Getwd()
		if err := godotenv.Load(path.Join(cwd, ".env")); err != nil {
			log.Printf("no .env loaded: %s\n", err.Error())
		}
	}
	initLogger()

	baseURL := config.GetAPIBaseURL()
	if baseURL == "" {
		fmt.Fprintln(os.Stderr, "API_BASE_URL is not set")
		os.Exit(2)
	}

	store := session.NewStore(config.GetSessionFile())
	client := api.NewClient(baseURL, store, consoleNotifier{}, func() {
		fmt.Fprintln(os.Stderr, "Session expired, please sign in again")
	})
	client.UserDeleteRoleCheck = config.UserDeleteRoleCheck()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	var err error
	switch os.Args[1] {
	case "login":
		err = loginCmd(ctx, client, os.Args[2:])
	case "logout":
		client.Logout()
		fmt.Println("Signed out")
	case "tours":
		err = tourCmd(ctx, client, os.Args[2:])
	case "vouchers":
		err = voucherCmd(ctx, client, os.Args[2:])
	case "suppliers":
		err = supplierCmd(ctx, client, os.Args[2:])
	case "users":
		err = userCmd(ctx, client, os.Args[2:])
	case "bookings":
		err = bookingCmd(ctx, client, os.Args[2:])
	case "reviews":
		err = reviewCmd(ctx, client, os.Args[2:])
	case "favorites":
		err = favoriteCmd(ctx, client, os.Args[2:])
	case "calendar":
		err = calendarCmd(ctx, client, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Printf("%s failed: %s\n", os.Args[1], err.Error())
		os.Exit(1)
	}
}

// multiFlag collects a repeatable string flag.
type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ",") }
func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	return fs
}

func loginCmd(ctx context.Context, client *api.Client, args []string) error {
	fs := newFlagSet("login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	remember := fs.Bool("remember", false, "persist the session across runs")
	if err := fs.Parse(args); err != nil {
		return err
	}
	profile, err := client.LoginEmail(ctx, *email, *password, *remember)
	if err != nil {
		return err
	}
	if profile != nil {
		fmt.Printf("signed in as %s (%s)\n", profile.Email, profile.ResolvedRole())
	}
	return nil
}
