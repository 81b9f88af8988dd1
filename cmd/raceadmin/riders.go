package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

type riderCmd struct {
	List        riderListCmd        `command:"list" description:"List riders"`
	Get         riderGetCmd         `command:"get" description:"Show one rider"`
	Delete      riderDeleteCmd      `command:"delete" description:"Delete a rider"`
	UploadImage riderUploadImageCmd `command:"upload-image" description:"Replace a rider's photo"`
}

type riderListCmd struct {
	listFlags
}

func (c *riderListCmd) Execute([]string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err = a.requireSession(); err != nil {
		return err
	}
	riders, total, err := a.client.Riders.List(context.Background(), c.options())
	if err != nil {
		return err
	}
	for _, rider := range riders {
		fmt.Printf("%s\t%s\t%s\n", rider.ID, rider.Nationality, rider.Name)
	}
	fmt.Printf("%d of %d riders\n", len(riders), total)
	return nil
}

type riderGetCmd struct {
	Args struct {
		ID string `positional-arg-name:"id" required:"true"`
	} `positional-args:"true"`
}

func (c *riderGetCmd) Execute([]string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err = a.requireSession(); err != nil {
		return err
	}
	rider, err := a.client.Riders.Get(context.Background(), c.Args.ID)
	if err != nil {
		return err
	}
	return printJSON(rider)
}

type riderDeleteCmd struct {
	Args struct {
		ID string `positional-arg-name:"id" required:"true"`
	} `positional-args:"true"`
}

func (c *riderDeleteCmd) Execute([]string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err = a.requireSession(); err != nil {
		return err
	}
	if err = a.client.Riders.Delete(context.Background(), c.Args.ID); err != nil {
		return err
	}
	fmt.Println("Rider deleted")
	return nil
}

type riderUploadImageCmd struct {
	Args struct {
		ID   string `positional-arg-name:"id" required:"true"`
		File string `positional-arg-name:"file" required:"true"`
	} `positional-args:"true"`
}

func (c *riderUploadImageCmd) Execute([]string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err = a.requireSession(); err != nil {
		return err
	}
	content, err := os.ReadFile(c.Args.File)
	if err != nil {
		return err
	}
	ctx := context.Background()
	if err = a.client.Riders.UploadImage(ctx, c.Args.ID, filepath.Base(c.Args.File), content); err != nil {
		return err
	}
	fmt.Println("Image uploaded")
	return nil
}
