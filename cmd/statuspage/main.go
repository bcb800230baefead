package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hngprojects/devops-stage1/internal/app"
	"github.com/hngprojects/devops-stage1/internal/config"
	"github.com/hngprojects/devops-stage1/internal/handler"
	log "github.com/sirupsen/logrus"
	clilib "github.com/urfave/cli/v2"
)

func main() {
	cliApp := &clilib.App{
		Name:    "statuspage",
		Usage:   "Deployment pipeline status service",
		Version: handler.Version,
		Flags:   serveFlags(),
		Action:  runServe,
		Commands: []*clilib.Command{
			{
				Name:   "serve",
				Usage:  "Start the HTTP server",
				Flags:  serveFlags(),
				Action: runServe,
			},
			{
				Name:  "version",
				Usage: "Print the application version",
				Action: func(c *clilib.Context) error {
					fmt.Printf("%s %s\n", handler.AppName, handler.Version)
					return nil
				},
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func serveFlags() []clilib.Flag {
	return []clilib.Flag{
		&clilib.StringFlag{
			Name:  "port",
			Usage: "listening port (overrides PORT)",
		},
		&clilib.StringFlag{
			Name:  "host",
			Usage: "bind address (overrides HOST)",
		},
		&clilib.StringFlag{
			Name:  "environment",
			Usage: "environment label (overrides ENVIRONMENT)",
		},
		&clilib.BoolFlag{
			Name:  "debug",
			Usage: "enable debug mode (overrides DEBUG)",
		},
	}
}

func runServe(c *clilib.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Flags beat environment variables.
	if c.IsSet("port") {
		cfg.Port = c.String("port")
	}
	if c.IsSet("host") {
		cfg.Host = c.String("host")
	}
	if c.IsSet("environment") {
		cfg.Environment = c.String("environment")
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	setupLogging(cfg)

	log.WithFields(log.Fields{
		"port":        cfg.Port,
		"environment": cfg.Environment,
		"debug":       cfg.Debug,
	}).Info("starting hng13 devops stage1 application")

	application, err := app.New(cfg)
	if err != nil {
		return err
	}

	return application.Run(context.Background())
}

func setupLogging(cfg *config.Config) {
	log.SetOutput(os.Stdout)
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}
