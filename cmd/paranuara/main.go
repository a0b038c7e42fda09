// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/paranuara/config"
	"github.com/poiesic/paranuara/logging"
)

const configKey = "config"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
	}

	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "paranuara",
		Usage: "Query the companies and people of Paranuara",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML configuration file",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "Set logging format (text, json, pretty)",
			},
			&cli.StringFlag{
				Name:  "companies",
				Usage: "Path to companies.json",
			},
			&cli.StringFlag{
				Name:  "people",
				Usage: "Path to people.json",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Serve the query API over HTTP",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "addr",
						Aliases: []string{"a"},
						Usage:   "Listen address or bare port",
					},
					&cli.StringFlag{
						Name:  "backend",
						Usage: "Repository backend (inmemory, badger)",
					},
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to BadgerDB database directory (implies --backend badger)",
					},
				},
			},
			{
				Name:   "sync",
				Usage:  "Load the JSON files into a BadgerDB database",
				Action: syncCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N records",
						Value: 100,
					},
				},
			},
			{
				Name:      "companies",
				Usage:     "Print every company in a companies.json file",
				ArgsUsage: "[file]",
				Action:    companiesCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "companies",
						Usage: "Path to companies.json",
					},
				},
			},
			{
				Name:      "foods",
				Usage:     "Print every favourite food seen in a people.json file",
				ArgsUsage: "[file]",
				Action:    foodsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "people",
						Usage: "Path to people.json",
					},
				},
			},
			{
				Name:      "employees",
				Usage:     "Print the employees of a company",
				ArgsUsage: "<companyID>",
				Action:    employeesCommand,
			},
			{
				Name:      "person",
				Usage:     "Print a person",
				ArgsUsage: "<personID>",
				Action:    personCommand,
			},
			{
				Name:      "join",
				Usage:     "Print two people and their living, brown-eyed friends in common",
				ArgsUsage: "<person1ID> <person2ID>",
				Action:    joinCommand,
			},
		},
	}
}

// setup resolves the configuration and installs the default logger.
// Precedence, lowest first: defaults, config file, environment, flags.
func setup(c *cli.Context) error {
	cfg := config.DefaultConfig()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFile(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return err
	}

	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.LogFormat = c.String("log-format")
	}
	if c.IsSet("companies") {
		cfg.CompaniesFile = c.String("companies")
	}
	if c.IsSet("people") {
		cfg.PeopleFile = c.String("people")
	}

	if _, err := logging.Setup(c.App.ErrWriter, cfg.LogLevel, cfg.LogFormat); err != nil {
		return err
	}
	slog.Debug("configuration resolved",
		"companies", cfg.CompaniesFile,
		"people", cfg.PeopleFile,
		"backend", cfg.Backend)

	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]any)
	}
	c.App.Metadata[configKey] = cfg
	return nil
}

func configFrom(c *cli.Context) (*config.Config, error) {
	cfg, ok := c.App.Metadata[configKey].(*config.Config)
	if !ok {
		return nil, fmt.Errorf("configuration not initialized")
	}
	return cfg, nil
}
