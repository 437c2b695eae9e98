package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/snipmaker/internal"
	pkgconfig "github.com/starford/snipmaker/pkg/config"
)

var version = "dev"

const defaultConfigPath = "config/config.yaml"

// options loads the configuration and builds the application options. The
// default config path may be absent; an explicitly named one may not.
func options(cmd *cli.Command) ([]internal.Option, error) {
	configPath := cmd.String("config")

	cfg := internal.NewDefaultConfig()
	if cmd.IsSet("config") {
		if err := pkgconfig.Load(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if _, err := pkgconfig.LoadOptional(configPath, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return []internal.Option{
		internal.WithConfig(cfg),
		internal.WithVersion(version),
	}, nil
}

func makeSnippet(ctx context.Context, cmd *cli.Command) error {
	opts, err := options(cmd)
	if err != nil {
		return err
	}
	return internal.MakeSnippet(ctx, cmd.String("file"), cmd.StringSlice("select"), opts...)
}

func editSnippet(ctx context.Context, cmd *cli.Command) error {
	opts, err := options(cmd)
	if err != nil {
		return err
	}
	return internal.EditSnippet(ctx, opts...)
}

func deleteSnippet(ctx context.Context, cmd *cli.Command) error {
	opts, err := options(cmd)
	if err != nil {
		return err
	}
	return internal.DeleteSnippet(ctx, opts...)
}

func listSnippets(ctx context.Context, cmd *cli.Command) error {
	opts, err := options(cmd)
	if err != nil {
		return err
	}
	return internal.ListSnippets(ctx, cmd.Bool("long"), opts...)
}

func watchSnippets(ctx context.Context, cmd *cli.Command) error {
	opts, err := options(cmd)
	if err != nil {
		return err
	}
	return internal.Watch(ctx, opts...)
}

func serveMCP(ctx context.Context, cmd *cli.Command) error {
	opts, err := options(cmd)
	if err != nil {
		return err
	}
	return internal.ServeMCP(ctx, opts...)
}

func main() {
	cmd := &cli.Command{
		Name:    "snipmaker",
		Usage:   "Capture selections into Sublime Text snippet files",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: defaultConfigPath,
				Value:       defaultConfigPath,
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "make",
				Usage:  "Make a snippet from a file selection",
				Action: makeSnippet,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Source file to capture from",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:    "select",
						Aliases: []string{"s"},
						Usage:   "Selection START-END (byte offset or LINE:COL), or N: for a whole line; repeatable",
					},
				},
			},
			{
				Name:   "edit",
				Usage:  "Pick a snippet and open it in the editor",
				Action: editSnippet,
			},
			{
				Name:   "delete",
				Usage:  "Pick a snippet and delete it",
				Action: deleteSnippet,
			},
			{
				Name:   "list",
				Usage:  "List snippet files",
				Action: listSnippets,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "long",
						Aliases: []string{"l"},
						Usage:   "Include trigger, scope and description",
					},
				},
			},
			{
				Name:   "watch",
				Usage:  "Report changes to snippet files",
				Action: watchSnippets,
			},
			{
				Name:   "mcp",
				Usage:  "Serve the snippet tools over MCP stdio",
				Action: serveMCP,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
