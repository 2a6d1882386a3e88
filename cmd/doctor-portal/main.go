package main

import (
	"context"

	"medibook-portals/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	app, err := bootstrap.New([]string{"/auth/login/", "/auth/register/"})
	if err != nil {
		logrus.Fatalf("Failed to initialize doctor portal: %v", err)
	}

	if err := app.DoctorPortal().Run(context.Background()); err != nil {
		app.Log.Fatalf("Doctor portal exited: %v", err)
	}
}
