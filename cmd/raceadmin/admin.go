package main

import (
	"context"
	"fmt"
)

type mergeCmd struct {
	Races mergeRacesCmd `command:"races" description:"Merge an old race into a new one"`
	Teams mergeTeamsCmd `command:"teams" description:"Merge an old team into a new one"`
}

type mergeRacesCmd struct {
	Old string `long:"old" description:"name of the race to fold away" required:"true"`
	New string `long:"new" description:"name of the race to keep" required:"true"`
}

func (c *mergeRacesCmd) Execute([]string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err = a.requireSession(); err != nil {
		return err
	}
	if err = a.client.Admin.MergeRaces(context.Background(), c.Old, c.New); err != nil {
		return err
	}
	fmt.Printf("Race %q merged into %q\n", c.Old, c.New)
	return nil
}

type mergeTeamsCmd struct {
	Old string `long:"old" description:"name of the team to fold away" required:"true"`
	New string `long:"new" description:"name of the team to keep" required:"true"`
}

func (c *mergeTeamsCmd) Execute([]string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err = a.requireSession(); err != nil {
		return err
	}
	if err = a.client.Admin.MergeTeams(context.Background(), c.Old, c.New); err != nil {
		return err
	}
	fmt.Printf("Team %q merged into %q\n", c.Old, c.New)
	return nil
}

type dashboardCmd struct{}

func (c *dashboardCmd) Execute([]string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err = a.requireSession(); err != nil {
		return err
	}
	stats, err := a.client.Admin.Dashboard(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("races: %d\nriders: %d\nteams: %d\nstages: %d\n",
		stats.TotalRaces, stats.TotalRiders, stats.TotalTeams, stats.TotalStages)
	return nil
}

type upcomingCmd struct {
	listFlags
}

func (c *upcomingCmd) Execute([]string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err = a.requireSession(); err != nil {
		return err
	}
	races, total, err := a.client.Admin.UpcomingRaces(context.Background(), c.options())
	if err != nil {
		return err
	}
	for _, race := range races {
		fmt.Printf("%s\t%s\t%s\n", race.ID, race.Date, race.Race)
	}
	fmt.Printf("%d of %d upcoming races\n", len(races), total)
	return nil
}

type featureCmd struct {
	Args struct {
		RaceID string `positional-arg-name:"race-id" required:"true"`
	} `positional-args:"true"`
}

func (c *featureCmd) Execute([]string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err = a.requireSession(); err != nil {
		return err
	}
	if err = a.client.Admin.SetFeaturedRace(context.Background(), c.Args.RaceID); err != nil {
		return err
	}
	fmt.Println("Featured race set")
	return nil
}

type scrapeCmd struct {
	From int `long:"from" description:"first year to import" required:"true"`
	To   int `long:"to" description:"last year to import" required:"true"`
}

func (c *scrapeCmd) Execute([]string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err = a.requireSession(); err != nil {
		return err
	}
	if err = a.client.Admin.ScrapeRaceData(context.Background(), c.From, c.To); err != nil {
		return err
	}
	fmt.Printf("Import scheduled for %d-%d\n", c.From, c.To)
	return nil
}
