package main

import (
	"errors"

	"github.com/jessevdk/go-flags"
)

func run(args []string) error {
	parser := flags.NewNamedParser("raceadmin", flags.Default)
	for _, c := range commands() {
		if _, err := parser.AddCommand(c.name, c.short, c.long, c.cmd); err != nil {
			return err
		}
	}
	_, err := parser.ParseArgs(args)
	var flagsErr *flags.Error
	if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
		return nil
	}
	return err
}

type command struct {
	name  string
	short string
	long  string
	cmd   interface{}
}

func commands() []command {
	return []command{
		{"login", "Log in", "Authenticate against the admin backend and store the session credential.", &loginCmd{}},
		{"logout", "Log out", "Drop the stored session credential.", &logoutCmd{}},
		{"whoami", "Show the current session", "Print the stored admin profile and token expiry.", &whoamiCmd{}},
		{"race", "Manage races", "List, inspect, create and delete races.", &raceCmd{}},
		{"rider", "Manage riders", "List, inspect and delete riders.", &riderCmd{}},
		{"team", "Manage teams", "List, inspect and delete teams.", &teamCmd{}},
		{"stage", "Manage stages", "List, inspect and delete stages.", &stageCmd{}},
		{"merge", "Merge duplicate entities", "Fold an old race or team into a new one.", &mergeCmd{}},
		{"dashboard", "Show platform counters", "Print platform-wide entity counts.", &dashboardCmd{}},
		{"upcoming", "List upcoming races", "Print one page of upcoming races.", &upcomingCmd{}},
		{"feature", "Set the featured race", "Mark one upcoming race as featured.", &featureCmd{}},
		{"scrape", "Import race data", "Ask the backend to import race data for a year range.", &scrapeCmd{}},
	}
}
