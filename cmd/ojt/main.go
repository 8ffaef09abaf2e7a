package main

import (
	"fmt"
	"os"

	"ojt-tracker/internal/api"
	"ojt-tracker/internal/cli"
	"ojt-tracker/internal/config"
	"ojt-tracker/internal/session"
)

func main() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	repo, err := config.CreateRepository(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating repository: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	sessions := session.NewOAuthProvider(session.OAuthConfig{
		ClientID:     cfg.Auth.ClientID,
		ClientSecret: cfg.Auth.ClientSecret,
		AuthDir:      cfg.Auth.Dir,
	})

	apiInstance := api.New(repo, sessions)
	app := cli.NewApp(apiInstance, sessions)

	root := cli.NewRootCommand(app, cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
