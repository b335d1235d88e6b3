package main

import (
	"context"
	"os"

	"github.com/aperturerobotics/billcoin/logctx"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var rootContext = context.Background()
var billcoinFlags []cli.Flag

var cliLogArgs = struct {
	// LogLevel is the logrus level name.
	LogLevel string
}{
	LogLevel: "warn",
}

func init() {
	billcoinFlags = append(billcoinFlags, cli.StringFlag{
		Name:        "log-level",
		Usage:       "log level written to stderr: debug, info, warn, error",
		EnvVar:      "LOG_LEVEL",
		Value:       cliLogArgs.LogLevel,
		Destination: &cliLogArgs.LogLevel,
	})
}

// newApp builds the billcoin cli application.
func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "billcoin"
	app.Usage = "verify a billcoin block chain file"
	app.ArgsUsage = "<name_of_file>"
	app.HideVersion = true
	app.Flags = billcoinFlags
	app.Before = setupLogging
	app.Action = buildProcessAction(cmdVerify)
	return app
}

// setupLogging attaches the run log entry to the root context.
func setupLogging(c *cli.Context) error {
	lvl, err := logrus.ParseLevel(cliLogArgs.LogLevel)
	if err != nil {
		return errors.Wrap(err, "log-level")
	}

	le := logctx.NewLogEntry(c.App.ErrWriter, lvl).
		WithField("run-id", uuid.NewV4().String())
	rootContext = logctx.WithLogEntry(context.Background(), le)
	return nil
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logrus.Fatal(err.Error())
	}
}
