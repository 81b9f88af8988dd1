package main

import (
	"context"
	"fmt"

	"github.com/velostats/raceadmin/auth"
)

type loginCmd struct {
	Email    string `short:"e" long:"email" description:"admin email" required:"true"`
	Password string `short:"p" long:"password" description:"admin password" required:"true"`
}

func (c *loginCmd) Execute([]string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	admin, err := a.client.Admin.Login(context.Background(), c.Email, c.Password)
	if err != nil {
		return err
	}
	name := c.Email
	if admin != nil {
		name = admin.Name
	}
	fmt.Printf("Logged in as %s\n", name)
	return nil
}

type logoutCmd struct{}

func (c *logoutCmd) Execute([]string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.client.Admin.Logout(); err != nil {
		return err
	}
	fmt.Println("Logged out")
	return nil
}

type whoamiCmd struct{}

func (c *whoamiCmd) Execute([]string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	if err := a.requireSession(); err != nil {
		return err
	}
	cred := a.client.Store().Read()
	fmt.Printf("%s <%s>\n", cred.Admin.Name, cred.Admin.Email)
	if expiry := auth.TokenExpiry(cred.Token); !expiry.IsZero() {
		fmt.Printf("token expires %s\n", expiry.Format("2006-01-02 15:04:05 MST"))
	}
	return nil
}
