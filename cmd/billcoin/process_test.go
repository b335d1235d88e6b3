package main

import (
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/jbenet/goprocess"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
)

// withSignalOnReady replaces the signal subscription with one that delivers
// SIGINT once ready is closed.
func withSignalOnReady(t *testing.T, ready <-chan struct{}) {
	t.Helper()
	prev := notifySignals
	notifySignals = func(ch chan<- os.Signal) {
		go func() {
			<-ready
			ch <- syscall.SIGINT
		}()
	}
	t.Cleanup(func() { notifySignals = prev })
}

func TestProcessActionSignalTearsDown(t *testing.T) {
	ready := make(chan struct{})
	torn := make(chan struct{})
	release := make(chan struct{})
	defer close(release)
	withSignalOnReady(t, ready)

	action := buildProcessAction(func(c *cli.Context, p goprocess.Process) error {
		p.AddChild(goprocess.WithTeardown(func() error {
			close(torn)
			return nil
		}))
		close(ready)
		<-release
		return nil
	})

	err := action(nil)
	select {
	case <-torn:
	case <-time.After(5 * time.Second):
		t.Fatal("resources were not torn down on signal")
	}

	require.Error(t, err)
	var ec cli.ExitCoder
	require.True(t, errors.As(err, &ec))
	require.Equal(t, interruptedExitCode, ec.ExitCode())
}

func TestProcessActionReturnTearsDown(t *testing.T) {
	withSignalOnReady(t, make(chan struct{}))

	torn := false
	action := buildProcessAction(func(c *cli.Context, p goprocess.Process) error {
		p.AddChild(goprocess.WithTeardown(func() error {
			torn = true
			return nil
		}))
		return cli.NewExitError("", 1)
	})

	err := action(nil)
	require.True(t, torn)
	var ec cli.ExitCoder
	require.True(t, errors.As(err, &ec))
	require.Equal(t, 1, ec.ExitCode())
}
