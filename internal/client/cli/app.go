// Package cli implements the interactive client: a REPL over the
// authentication service with a locally persisted session.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/jaehyuk-choi/portfolio-auth/internal/client/api"
	"github.com/jaehyuk-choi/portfolio-auth/internal/client/config"
	"github.com/jaehyuk-choi/portfolio-auth/internal/client/services"
	"github.com/jaehyuk-choi/portfolio-auth/internal/client/session"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	store       *session.Store
	reader      *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	store, err := session.Open(ctx, c.SessionDB)
	if err != nil {
		return nil, fmt.Errorf("error initializing session store: %w", err)
	}

	apiClient := api.NewHTTPClient(c.ServerURL)
	as := services.NewAuthService(apiClient, store)

	return &App{
		config:      c,
		authService: as,
		store:       store,
		reader:      bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.store.Close()

	// A persisted session restores the logged-in state across runs.
	if sess, err := a.authService.Current(ctx); err == nil && sess != nil {
		fmt.Printf("Welcome back, %s!\n", sess.User.Name)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, func() string { return a.status(ctx) }, scanner)
}

func (a *App) status(ctx context.Context) string {
	sess, err := a.authService.Current(ctx)
	if err != nil || sess == nil {
		return "logged out"
	}
	return sess.User.ID
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	sess, err := a.authService.Current(ctx)
	return err == nil && sess != nil
}

func (a *App) Register(ctx context.Context) error {
	userID, err := GetSimpleText(a.reader, "Enter login", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}
	name, err := GetSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	phone, err := GetSimpleText(a.reader, "Enter phone (e.g. 010-1234-5678)", os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.authService.Register(ctx, userID, password, name, phone)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("Registered and logged in as %s\n", user.ID)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	userID, err := GetSimpleText(a.reader, "Enter login", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.authService.Login(ctx, userID, password)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("Welcome, %s!\n", user.Name)
	return nil
}

func (a *App) Profile(ctx context.Context) error {
	profile, err := a.authService.Profile(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Printf("Login:      %s\n", profile.UserID)
	fmt.Printf("Name:       %s\n", profile.Name)
	fmt.Printf("Phone:      %s\n", profile.Phone)
	fmt.Printf("Registered: %s\n", profile.CreatedAt.Format("2006-01-02 15:04"))
	if profile.LastLoginAt != nil {
		fmt.Printf("Last login: %s\n", profile.LastLoginAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	sess, err := a.authService.Current(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	if sess == nil {
		fmt.Println("Not logged in")
		return nil
	}

	fmt.Printf("%s (%s, %s)\n", sess.User.ID, sess.User.Name, sess.User.Phone)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Println("Logged out")
	return nil
}
