package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if err := newApp(logger).Run(os.Args); err != nil {
		logger.Fatalf("projector: %v", err)
	}
}
