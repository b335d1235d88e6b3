package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/aperturerobotics/billcoin/logctx"
	"github.com/jbenet/goprocess"
	"github.com/urfave/cli"
)

// interruptedExitCode is returned when a signal ends the run.
const interruptedExitCode = 130

// notifySignals subscribes ch to the shutdown signals.
var notifySignals = func(ch chan<- os.Signal) {
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
}

// buildProcessAction builds a CLI action from a process.
// Resources attached to the process are torn down before the action returns,
// including when a signal interrupts the run.
func buildProcessAction(f func(*cli.Context, goprocess.Process) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		le := logctx.GetLogEntry(rootContext)
		p := goprocess.WithParent(goprocess.Background())
		closeProcess := func() {
			if cerr := p.Close(); cerr != nil {
				le.WithError(cerr).Warn("teardown failed")
			}
		}

		// f runs outside the process so closing it only waits on attached resources.
		errCh := make(chan error, 1)
		go func() {
			errCh <- f(c, p)
		}()

		sigs := make(chan os.Signal, 1)
		notifySignals(sigs)
		defer signal.Stop(sigs)

		select {
		case err := <-errCh:
			closeProcess()
			return err
		case sig := <-sigs:
			le.WithField("signal", sig.String()).Info("shutting down")
		}

		closeProcess()
		return cli.NewExitError("interrupted", interruptedExitCode)
	}
}
