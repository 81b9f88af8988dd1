package main

import (
	"context"
	"fmt"

	"github.com/velostats/raceadmin/client"
)

type raceCmd struct {
	List   raceListCmd   `command:"list" description:"List races"`
	Get    raceGetCmd    `command:"get" description:"Show one race"`
	Create raceCreateCmd `command:"create" description:"Create a race"`
	Delete raceDeleteCmd `command:"delete" description:"Delete a race"`
}

type raceListCmd struct {
	listFlags
}

func (c *raceListCmd) Execute([]string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err = a.requireSession(); err != nil {
		return err
	}
	races, total, err := a.client.Races.List(context.Background(), c.options())
	if err != nil {
		return err
	}
	for _, race := range races {
		fmt.Printf("%s\t%d\t%s\t%s\n", race.ID, race.Year, race.CountryCode, race.Race)
	}
	fmt.Printf("%d of %d races\n", len(races), total)
	return nil
}

type raceGetCmd struct {
	Args struct {
		ID string `positional-arg-name:"id" required:"true"`
	} `positional-args:"true"`
}

func (c *raceGetCmd) Execute([]string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err = a.requireSession(); err != nil {
		return err
	}
	race, err := a.client.Races.Get(context.Background(), c.Args.ID)
	if err != nil {
		return err
	}
	return printJSON(race)
}

type raceCreateCmd struct {
	Name      string `long:"name" description:"race name" required:"true"`
	Date      string `long:"date" description:"race date (YYYY-MM-DD)" required:"true"`
	Year      int    `long:"year" description:"season year" required:"true"`
	Country   string `long:"country" description:"country code" required:"true"`
	Class     string `long:"class" description:"classification" default:"1.HC"`
	StageRace bool   `long:"stage-race" description:"mark as a stage race"`
}

func (c *raceCreateCmd) Execute([]string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err = a.requireSession(); err != nil {
		return err
	}
	race := &client.Race{
		Race:        c.Name,
		Date:        c.Date,
		Year:        c.Year,
		CountryCode: c.Country,
		Class:       c.Class,
		IsStageRace: c.StageRace,
	}
	if err = a.client.Races.Create(context.Background(), race); err != nil {
		return err
	}
	fmt.Println("Race created")
	return nil
}

type raceDeleteCmd struct {
	Args struct {
		ID string `positional-arg-name:"id" required:"true"`
	} `positional-args:"true"`
}

func (c *raceDeleteCmd) Execute([]string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err = a.requireSession(); err != nil {
		return err
	}
	if err = a.client.Races.Delete(context.Background(), c.Args.ID); err != nil {
		return err
	}
	fmt.Println("Race deleted")
	return nil
}
