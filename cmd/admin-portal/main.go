package main

import (
	"context"

	"medibook-portals/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	app, err := bootstrap.New([]string{"/auth/login/"})
	if err != nil {
		logrus.Fatalf("Failed to initialize admin portal: %v", err)
	}

	if err := app.AdminPortal().Run(context.Background()); err != nil {
		app.Log.Fatalf("Admin portal exited: %v", err)
	}
}
