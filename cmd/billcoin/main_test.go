package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
)

var sampleChain = strings.Join([]string{
	"0|0|SYSTEM>100000(1)|1000.0|553b",
	"1|553b|100000>200000(1):SYSTEM>300000(100)|1000.5|d47d",
	"2|d47d|300000>100000(40):300000>200000(10):SYSTEM>200000(100)|1001.0|c74e",
}, "\n") + "\n"

// runApp runs the cli with args, returning stdout and the exit code.
func runApp(t *testing.T, args ...string) (string, int) {
	t.Helper()

	code := 0
	cli.OsExiter = func(c int) { code = c }
	defer func() { cli.OsExiter = os.Exit }()

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = io.Discard

	if err := app.Run(append([]string{"billcoin"}, args...)); err != nil && code == 0 {
		t.Logf("app error: %v", err)
		code = -1
	}
	return out.String(), code
}

func writeChain(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chain.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestVerifyValid(t *testing.T) {
	out, code := runApp(t, writeChain(t, sampleChain))
	require.Equal(t, 0, code)
	require.Equal(t,
		"100000: 40 billcoins\n200000: 111 billcoins\n300000: 50 billcoins\n",
		out,
	)
}

func TestVerifyInvalid(t *testing.T) {
	body := "0|0|SYSTEM>100000(1)|1000.0|ffff\n"
	out, code := runApp(t, writeChain(t, body))
	require.Equal(t, 1, code)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[0], "Line 0: "))
	require.Contains(t, lines[0], "hash")
	require.Equal(t, "BLOCKCHAIN INVALID", lines[1])
}

func TestVerifyEmpty(t *testing.T) {
	out, code := runApp(t, writeChain(t, ""))
	require.Equal(t, 1, code)
	require.Contains(t, out, "Line 0: The file is empty")
	require.Contains(t, out, "BLOCKCHAIN INVALID")
}

func TestVerifyMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")
	out, code := runApp(t, path)
	require.Equal(t, 1, code)
	require.Equal(t, "ERROR:  File '"+path+"' does not exist.\n", out)
}

func TestVerifyUsage(t *testing.T) {
	out, code := runApp(t)
	require.Equal(t, 1, code)
	require.Contains(t, out, "billcoin")
	require.Contains(t, out, "<name_of_file>")
}

func TestVerifyTableOutput(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	out, code := runApp(t, "--output", "table", writeChain(t, sampleChain))
	require.Equal(t, 0, code)
	require.Contains(t, out, "200000")
	require.Contains(t, out, "111")
}

func TestVerifyBadOutput(t *testing.T) {
	_, code := runApp(t, "--output", "xml", writeChain(t, sampleChain))
	require.Equal(t, -1, code)
}

func TestVerifyBadLogLevel(t *testing.T) {
	_, code := runApp(t, "--log-level", "loud", writeChain(t, sampleChain))
	require.Equal(t, -1, code)
}
