package main

import (
	"github.com/sirupsen/logrus"

	"ovacare/cmd/bootstrap"
)

func main() {
	app, err := bootstrap.New()
	if err != nil {
		logrus.Fatalf("Failed to initialize application: %+v", err)
	}

	if err := app.Run(); err != nil {
		logrus.Fatalf("Application error: %+v", err)
	}
}
