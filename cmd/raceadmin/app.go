package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/velostats/raceadmin"
	"github.com/velostats/raceadmin/client"
	"github.com/velostats/raceadmin/internal/config"
)

// app wires one CLI invocation: config, logger and an authenticated client.
type app struct {
	cfg    *config.Config
	logger zerolog.Logger
	client *client.Client
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	cli, err := raceadmin.New(cfg.BaseURL, cfg.CredentialsURL,
		client.WithLogger(logger),
		client.WithSessionExpired(func() {
			fmt.Fprintln(os.Stderr, "Session expired. Please log in again.")
		}),
	)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, logger: logger, client: cli}, nil
}

// requireSession is the CLI's route guard: protected commands refuse to run
// without a complete stored credential.
func (a *app) requireSession() error {
	if err := a.client.Guard().Require(); err != nil {
		return fmt.Errorf("not logged in, run 'raceadmin login' first")
	}
	return nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// listFlags are shared by every list command.
type listFlags struct {
	Page   int    `long:"page" default:"1" description:"1-based page number"`
	Limit  int    `long:"limit" default:"10" description:"page size"`
	Search string `long:"search" description:"search term"`
}

func (f listFlags) options() client.ListOptions {
	return client.ListOptions{Page: f.Page, Limit: f.Limit, Search: f.Search}
}
