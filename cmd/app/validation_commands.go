package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/secrets-validator/cmd/app/commands"
	"github.com/allisson/secrets-validator/internal/app"
	"github.com/allisson/secrets-validator/internal/config"
)

func getValidationCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "validate",
			Usage:     "Validate documents read from files or stdin",
			ArgsUsage: "[FILE...]",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "kind",
					Aliases:  []string{"k"},
					Required: true,
					Usage:    "Validator kind (secret, order, legacy-order, container, consumer, transport-key)",
				},
				&cli.StringFlag{
					Name:    "parent",
					Aliases: []string{"p"},
					Value:   "",
					Usage:   "Name of the enclosing schema for nested documents",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
				&cli.StringFlag{
					Name:    "input",
					Aliases: []string{"i"},
					Value:   "",
					Usage:   "Input format: 'json' or 'yaml' (detected from the file extension when empty)",
				},
				&cli.IntFlag{
					Name:    "concurrency",
					Aliases: []string{"c"},
					Value:   0,
					Usage:   "Documents validated in parallel (defaults to VALIDATION_CONCURRENCY)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				if concurrency := int(cmd.Int("concurrency")); concurrency > 0 {
					cfg.ValidationConcurrency = concurrency
				}
				container := app.NewContainer(cfg)
				defer commands.CloseContainer(container, container.Logger())

				validationUseCase, err := container.ValidationUseCase()
				if err != nil {
					return err
				}

				return commands.RunValidate(
					ctx,
					validationUseCase,
					container.Logger(),
					commands.DefaultIO(),
					commands.ValidateOptions{
						Kind:         cmd.String("kind"),
						ParentSchema: cmd.String("parent"),
						Format:       cmd.String("format"),
						Input:        cmd.String("input"),
						Files:        cmd.Args().Slice(),
					},
				)
			},
		},
		{
			Name:  "schema",
			Usage: "Print the JSON schema of a validator",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "kind",
					Aliases:  []string{"k"},
					Required: true,
					Usage:    "Validator kind",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer commands.CloseContainer(container, container.Logger())

				return commands.RunSchema(commands.DefaultIO().Writer, container.Registry(), cmd.String("kind"))
			},
		},
		{
			Name:  "kinds",
			Usage: "List validator kinds and their display names",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				container := app.NewContainer(config.Load())
				defer commands.CloseContainer(container, container.Logger())

				return commands.RunKinds(commands.DefaultIO().Writer, container.Registry(), cmd.String("format"))
			},
		},
	}
}
