// Command setpassword replaces the administrator credential out of band.
// It bypasses the HTTP setup flow entirely, so it also serves as the
// recovery path for a lost password.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	sqliteadapter "github.com/dockhand/dockhand/internal/adapter/driven/sqlite"
	"github.com/dockhand/dockhand/internal/application"
	"github.com/dockhand/dockhand/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		return 1
	}

	fmt.Print("Username [admin]: ")
	reader := bufio.NewReader(os.Stdin)
	username, err := reader.ReadString('\n')
	if err != nil {
		fmt.Fprintln(os.Stderr, "read username:", err)
		return 1
	}
	username = strings.TrimSpace(username)
	if username == "" {
		username = "admin"
	}

	password, err := readPassword("New password: ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "read password:", err)
		return 1
	}
	confirm, err := readPassword("Confirm password: ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "read password:", err)
		return 1
	}

	if password != confirm {
		fmt.Fprintln(os.Stderr, "Passwords do not match.")
		return 1
	}
	if password == "" {
		fmt.Fprintln(os.Stderr, "Password cannot be empty.")
		return 1
	}

	db, err := sqliteadapter.NewDB(cfg.DBPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "open database:", err)
		return 1
	}
	defer db.Close()

	if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
		fmt.Fprintln(os.Stderr, "run migrations:", err)
		return 1
	}

	credSvc := application.NewCredentialService(sqliteadapter.NewCredentialRepo(db))
	if err := credSvc.Upsert(context.Background(), username, password); err != nil {
		fmt.Fprintln(os.Stderr, "store credential:", err)
		return 1
	}

	fmt.Printf("Credentials stored for user %q.\n", username)
	return 0
}

// readPassword prompts and reads a line without echoing it back.
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
