package main

import (
	"context"

	"medibook-portals/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	// Doctor discovery stays browsable while logged out, so 401s from those
	// endpoints must not wipe a stale session.
	app, err := bootstrap.New([]string{
		"/doctors/",
		"/doctors/specialties/",
		"/auth/login/",
		"/auth/register/",
	})
	if err != nil {
		logrus.Fatalf("Failed to initialize patient portal: %v", err)
	}

	if err := app.PatientPortal().Run(context.Background()); err != nil {
		app.Log.Fatalf("Patient portal exited: %v", err)
	}
}
