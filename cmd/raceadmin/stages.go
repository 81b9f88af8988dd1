package main

import (
	"context"
	"fmt"
)

type stageCmd struct {
	List   stageListCmd   `command:"list" description:"List stages"`
	Get    stageGetCmd    `command:"get" description:"Show one stage"`
	Delete stageDeleteCmd `command:"delete" description:"Delete a stage"`
}

type stageListCmd struct {
	listFlags
	Race string `long:"race" description:"list the stages of one race by id"`
}

func (c *stageListCmd) Execute([]string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err = a.requireSession(); err != nil {
		return err
	}
	ctx := context.Background()
	if c.Race != "" {
		stages, err := a.client.Races.Stages(ctx, c.Race)
		if err != nil {
			return err
		}
		for _, stage := range stages {
			fmt.Printf("%s\t%s\t%s\t%skm\n", stage.ID, stage.StageNumber, stage.Title, stage.Distance)
		}
		return nil
	}
	stages, total, err := a.client.Stages.List(ctx, c.options())
	if err != nil {
		return err
	}
	for _, stage := range stages {
		fmt.Printf("%s\t%s\t%s\t%s\n", stage.ID, stage.RaceName, stage.StageNumber, stage.Title)
	}
	fmt.Printf("%d of %d stages\n", len(stages), total)
	return nil
}

type stageGetCmd struct {
	Args struct {
		ID string `positional-arg-name:"id" required:"true"`
	} `positional-args:"true"`
}

func (c *stageGetCmd) Execute([]string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err = a.requireSession(); err != nil {
		return err
	}
	stage, err := a.client.Stages.Get(context.Background(), c.Args.ID)
	if err != nil {
		return err
	}
	return printJSON(stage)
}

type stageDeleteCmd struct {
	Args struct {
		ID string `positional-arg-name:"id" required:"true"`
	} `positional-args:"true"`
}

func (c *stageDeleteCmd) Execute([]string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err = a.requireSession(); err != nil {
		return err
	}
	if err = a.client.Stages.Delete(context.Background(), c.Args.ID); err != nil {
		return err
	}
	fmt.Println("Stage deleted")
	return nil
}
