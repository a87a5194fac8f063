package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/magangjo/backoffice/internal/app"
	"github.com/magangjo/backoffice/internal/config"
	"github.com/magangjo/backoffice/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.NewDefault()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer a.Close()

	if err := a.Bootstrap(ctx, nil); err != nil {
		log.Fatalf("%v", err)
	}
	logger.Info(ctx, "back office ready", "db", cfg.DatabasePath, "version", cfg.SchemaVersion)

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return
	}

	if err := interactiveSignIn(ctx, a); err != nil {
		logger.Error(ctx, "sign-in failed", "err", err)
		os.Exit(1)
	}
}

// interactiveSignIn prompts for credentials and reports the session that
// results, so an operator can check a fresh database from the terminal.
func interactiveSignIn(ctx context.Context, a *app.App) error {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Email\n> ")
	email, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	email = strings.TrimSpace(email)

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return err
	}

	user, err := a.Auth.SignIn(ctx, email, string(password))
	if err != nil {
		return err
	}

	role := a.Auth.GetUserRole(ctx, user.ID)
	fmt.Printf("signed in as %s (%s), role %s\n", user.FullName, user.Email, role)
	return nil
}
