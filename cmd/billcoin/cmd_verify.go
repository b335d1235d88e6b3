package main

import (
	"github.com/aperturerobotics/billcoin/chain"
	"github.com/aperturerobotics/billcoin/chainerr"
	"github.com/aperturerobotics/billcoin/logctx"
	"github.com/aperturerobotics/billcoin/report"
	"github.com/aperturerobotics/billcoin/source"
	"github.com/jbenet/goprocess"
	goprocessctx "github.com/jbenet/goprocess/context"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"github.com/urfave/cli"
)

var verifyArgs = struct {
	// Output is the report format.
	Output string
	// ProfileDir enables cpu profiling into the directory.
	ProfileDir string
}{
	Output: "plain",
}

func init() {
	billcoinFlags = append(
		billcoinFlags,
		cli.StringFlag{
			Name:        "output, o",
			Usage:       "report format: plain or table",
			EnvVar:      "BILLCOIN_OUTPUT",
			Value:       verifyArgs.Output,
			Destination: &verifyArgs.Output,
		},
		cli.StringFlag{
			Name:        "profile",
			Usage:       "write a cpu profile of the run into this directory",
			EnvVar:      "BILLCOIN_PROFILE",
			Destination: &verifyArgs.ProfileDir,
		},
	)
}

// buildReporter selects the reporter for the output flag.
func buildReporter(c *cli.Context) (report.Reporter, error) {
	switch verifyArgs.Output {
	case "plain":
		return report.NewPlain(c.App.Writer), nil
	case "table":
		return report.NewTable(c.App.Writer), nil
	default:
		return nil, errors.Errorf("unsupported output format: %s", verifyArgs.Output)
	}
}

// cmdVerify verifies the chain file named by the first argument.
func cmdVerify(c *cli.Context, p goprocess.Process) error {
	path := c.Args().First()
	if path == "" {
		_ = cli.ShowAppHelp(c)
		return cli.NewExitError("", 1)
	}

	reporter, err := buildReporter(c)
	if err != nil {
		return err
	}

	if verifyArgs.ProfileDir != "" {
		prof := profile.Start(
			profile.CPUProfile,
			profile.ProfilePath(verifyArgs.ProfileDir),
			profile.NoShutdownHook,
			profile.Quiet,
		)
		p.AddChild(goprocess.WithTeardown(func() error {
			prof.Stop()
			return nil
		}))
	}

	ctx := goprocessctx.WithProcessClosing(rootContext, p)
	le := logctx.GetLogEntry(ctx).WithField("file", path)

	src, err := source.OpenFile(path)
	if err != nil {
		verr, ok := chainerr.AsError(err)
		if !ok {
			return err
		}
		le.WithError(err).Debug("unable to open chain")
		if rerr := reporter.SourceMissing(verr); rerr != nil {
			return rerr
		}
		return cli.NewExitError("", 1)
	}
	p.AddChild(goprocess.WithTeardown(src.Close))

	le.Debug("verifying chain")
	entries, err := chain.NewRunner(ctx).Run(src)
	if err != nil {
		verr, ok := chainerr.AsError(err)
		if !ok {
			return err
		}
		if verr.Kind == chainerr.SourceUnavailable {
			if rerr := reporter.SourceMissing(verr); rerr != nil {
				return rerr
			}
			return cli.NewExitError("", 1)
		}
		if rerr := reporter.Invalid(verr); rerr != nil {
			return rerr
		}
		return cli.NewExitError("", 1)
	}

	return reporter.Balances(entries)
}
