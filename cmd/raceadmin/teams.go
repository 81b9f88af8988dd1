package main

import (
	"context"
	"fmt"

	"github.com/velostats/raceadmin/client"
)

type teamCmd struct {
	List   teamListCmd   `command:"list" description:"List teams"`
	Get    teamGetCmd    `command:"get" description:"Show one team"`
	Delete teamDeleteCmd `command:"delete" description:"Delete a team"`
}

type teamListCmd struct {
	listFlags
	Year    int    `long:"year" description:"filter by season year"`
	Country string `long:"country" description:"filter by country code"`
}

func (c *teamListCmd) Execute([]string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err = a.requireSession(); err != nil {
		return err
	}
	ctx := context.Background()
	var (
		teams []client.Team
		total int
	)
	switch {
	case c.Year > 0:
		teams, total, err = a.client.Teams.ListByYear(ctx, c.Year, c.options())
	case c.Country != "":
		teams, total, err = a.client.Teams.ListByCountry(ctx, c.Country, c.options())
	default:
		teams, total, err = a.client.Teams.List(ctx, c.options())
	}
	if err != nil {
		return err
	}
	for _, team := range teams {
		fmt.Printf("%s\t%d\t%s\t%s\t(%d riders)\n", team.ID, team.Year, team.Flag, team.TeamName, len(team.Riders))
	}
	fmt.Printf("%d of %d teams\n", len(teams), total)
	return nil
}

type teamGetCmd struct {
	Args struct {
		ID string `positional-arg-name:"id" required:"true"`
	} `positional-args:"true"`
}

func (c *teamGetCmd) Execute([]string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err = a.requireSession(); err != nil {
		return err
	}
	team, err := a.client.Teams.Get(context.Background(), c.Args.ID)
	if err != nil {
		return err
	}
	return printJSON(team)
}

type teamDeleteCmd struct {
	Args struct {
		ID string `positional-arg-name:"id" required:"true"`
	} `positional-args:"true"`
}

func (c *teamDeleteCmd) Execute([]string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err = a.requireSession(); err != nil {
		return err
	}
	if err = a.client.Teams.Delete(context.Background(), c.Args.ID); err != nil {
		return err
	}
	fmt.Println("Team deleted")
	return nil
}
