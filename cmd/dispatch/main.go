package main

import (
	goerrors "errors"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/hauskeep/dispatch/internal/api"
	"github.com/hauskeep/dispatch/internal/cli"
	"github.com/hauskeep/dispatch/internal/config"
	"github.com/hauskeep/dispatch/internal/constants"
	"github.com/hauskeep/dispatch/internal/errors"
	"github.com/hauskeep/dispatch/internal/history"
	"github.com/hauskeep/dispatch/internal/keyring"
	"github.com/hauskeep/dispatch/internal/logger"
)

var CLI struct {
	Version   kong.VersionFlag
	Debug     bool   `help:"Enable debug logging to stderr."`
	ConfigDir string `help:"Config directory." default:"~/.config/dispatch"`

	Board        cli.BoardCmd        `cmd:"" help:"Launch the interactive assignment board." default:"1"`
	Jobs         cli.JobsCmd         `cmd:"" help:"List unassigned jobs."`
	Availability cli.AvailabilityCmd `cmd:"" help:"Show cleaner availability for a date."`
	Assign       cli.AssignCmd       `cmd:"" help:"Assign an unassigned job to a cleaner and slot."`
	Move         cli.MoveCmd         `cmd:"" help:"Move a placed booking to a new cleaner or slot."`
	Delete       cli.DeleteCmd       `cmd:"" help:"Delete a booking entirely."`
	History      cli.HistoryCmd      `cmd:"" help:"Show recently dispatched commands."`
	Token        struct {
		Set   cli.TokenSetCmd   `cmd:"" help:"Store the API token in the OS keyring."`
		Show  cli.TokenShowCmd  `cmd:"" help:"Show a redacted view of the stored token."`
		Clear cli.TokenClearCmd `cmd:"" help:"Remove the stored token."`
	} `cmd:"" help:"Manage the backend API token."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Back-office dispatch board for the hauskeep cleaning platform"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.Load(CLI.ConfigDir)
	if err != nil {
		errors.Fatal(err)
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: cfg.ConfigDir}); err != nil {
		errors.Fatal(err)
	}

	token, err := keyring.GetToken()
	if err != nil && !goerrors.Is(err, keyring.ErrNotFound) {
		logger.Warn("Could not resolve API token", "error", err)
	}

	journal := history.NewStore(filepath.Join(cfg.ConfigDir, constants.HistoryDBName))
	if err := journal.Open(); err != nil {
		logger.Warn("Command journal unavailable", "error", err)
		journal = nil
	} else {
		defer journal.Close()
	}

	appCtx := &cli.Context{
		Client:  api.New(cfg.APIURL, token, cfg.RequestTimeout),
		Config:  cfg,
		Journal: journal,
	}

	err = ctx.Run(appCtx)
	ctx.FatalIfErrorf(err)
}
