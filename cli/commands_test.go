package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/networth/config"
)

const testLedger = `
2024-01-01
Receiving > Checking 3000
Checking > Spending 1000
Checking > Broker 1000
Broker buys 0.5 BTC @ 2000
2024-02-01
Receiving > Checking 3000
Checking > Spending 1000
BTC @ 2400
`

// getBinaryName returns the platform-specific binary name for tests
func getBinaryName() string {
	if runtime.GOOS == "windows" {
		return "networth-test.exe"
	}
	return "networth-test"
}

// cleanupBinary removes the test binary in a cross-platform way
func cleanupBinary(name string) {
	_ = os.Remove(name)
}

// runCLI runs the commands in-process and returns what they printed.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var cli Commands
	var stdout, stderr bytes.Buffer
	parser, err := kong.New(&cli,
		kong.Name("networth"),
		kong.Writers(&stdout, &stderr),
		kong.Bind(&cli.Globals),
		kong.Exit(func(int) {}),
	)
	assert.NoError(t, err)

	kctx, err := parser.Parse(args)
	if err != nil {
		return stdout.String(), stderr.String(), err
	}
	err = kctx.Run()
	return stdout.String(), stderr.String(), err
}

// setup writes the test ledger and a default configuration.
func setup(t *testing.T) (ledgerPath, configPath string) {
	t.Helper()
	dir := t.TempDir()

	ledgerPath = filepath.Join(dir, "ledger.txt")
	assert.NoError(t, os.WriteFile(ledgerPath, []byte(testLedger), 0644))

	configPath = filepath.Join(dir, config.FileName)
	assert.NoError(t, config.Default().Write(configPath))

	return ledgerPath, configPath
}

func TestSummaryCmd(t *testing.T) {
	ledgerPath, configPath := setup(t)

	t.Run("Default", func(t *testing.T) {
		stdout, _, err := runCLI(t, "--config", configPath, "summary", ledgerPath)
		assert.NoError(t, err)
		for _, want := range []string{"General:", "Accounts:", "Distribution:", "Metrics:", "4200.00", "Checking", "BTC"} {
			assert.Contains(t, stdout, want)
		}
	})

	t.Run("DefaultCommand", func(t *testing.T) {
		stdout, _, err := runCLI(t, "--config", configPath, ledgerPath)
		assert.NoError(t, err)
		assert.Contains(t, stdout, "General:")
	})

	t.Run("Flags", func(t *testing.T) {
		stdout, _, err := runCLI(t, "--config", configPath, "summary", ledgerPath,
			"--rounding", "whole", "--summary-accounts", "Broker,Net")
		assert.NoError(t, err)
		assert.Contains(t, stdout, "4200")
		assert.NotContains(t, stdout, "4200.00")
		assert.Contains(t, stdout, "Broker")
	})

	t.Run("Redact", func(t *testing.T) {
		stdout, _, err := runCLI(t, "--config", configPath, "summary", ledgerPath, "--redact")
		assert.NoError(t, err)
		assert.Contains(t, stdout, "3.50")
		assert.NotContains(t, stdout, "priced")
	})

	t.Run("InvalidRounding", func(t *testing.T) {
		_, _, err := runCLI(t, "--config", configPath, "summary", ledgerPath, "--rounding", "tenths")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid options")
	})

	t.Run("MissingConfig", func(t *testing.T) {
		_, _, err := runCLI(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "summary", ledgerPath)
		assert.Error(t, err)
	})
}

func TestGraphCmd(t *testing.T) {
	ledgerPath, configPath := setup(t)

	t.Run("WritesChart", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "chart.html")
		stdout, _, err := runCLI(t, "--config", configPath, "graph", ledgerPath,
			"--graph-accounts", "Checking,BTC,Net", "--output", out, "--no-open", "--flows")
		assert.NoError(t, err)
		assert.Contains(t, stdout, "Wrote chart to")

		content, err := os.ReadFile(out)
		assert.NoError(t, err)
		assert.Contains(t, string(content), "<svg")
		assert.Contains(t, string(content), "Checking")
	})

	t.Run("UnknownAccount", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "chart.html")
		_, stderr, err := runCLI(t, "--config", configPath, "graph", ledgerPath,
			"--graph-accounts", "Nope", "--output", out, "--no-open")
		assert.Error(t, err)
		var cmdErr *CommandError
		assert.True(t, errors.As(err, &cmdErr))
		assert.Equal(t, 1, cmdErr.ExitCode())
		assert.Contains(t, stderr, `unknown account "Nope"`)
	})

	t.Run("InvalidYearDigits", func(t *testing.T) {
		_, _, err := runCLI(t, "--config", configPath, "graph", ledgerPath, "--date-year-digits", "7", "--no-open")
		assert.Error(t, err)
	})
}

func TestDumpCmd(t *testing.T) {
	ledgerPath, configPath := setup(t)

	t.Run("Lines", func(t *testing.T) {
		stdout, _, err := runCLI(t, "--config", configPath, "dump", ledgerPath)
		assert.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(stdout), "\n")
		assert.Equal(t, []string{
			"2024-01-01 Receiving > Checking 3000",
			"2024-01-01 Checking > Spending 1000",
			"2024-01-01 Checking > Broker 1000",
			"2024-01-01 Broker buys 0.5 BTC @ 2000",
			"2024-02-01 Receiving > Checking 3000",
			"2024-02-01 Checking > Spending 1000",
			"2024-02-01 BTC @ 2400",
		}, lines)
	})

	t.Run("Raw", func(t *testing.T) {
		stdout, _, err := runCLI(t, "--config", configPath, "dump", ledgerPath, "--raw")
		assert.NoError(t, err)
		assert.Contains(t, stdout, "ast.Transaction")
		assert.Contains(t, stdout, `"Checking"`)
	})
}

func TestInitCmd(t *testing.T) {
	t.Run("WritesDefaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", config.FileName)
		stdout, _, err := runCLI(t, "init", path)
		assert.NoError(t, err)
		assert.Contains(t, stdout, "Wrote configuration")

		cfg, err := config.Read(path)
		assert.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("UsesConfigFlag", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), config.FileName)
		_, _, err := runCLI(t, "--config", path, "init")
		assert.NoError(t, err)
		_, err = os.Stat(path)
		assert.NoError(t, err)
	})

	t.Run("KeepsExistingWithoutTTY", func(t *testing.T) {
		if isTerminal() {
			t.Skip("stdin is a terminal")
		}
		path := filepath.Join(t.TempDir(), config.FileName)
		assert.NoError(t, os.WriteFile(path, []byte("redact: true\n"), 0644))

		_, stderr, err := runCLI(t, "init", path)
		assert.Error(t, err)
		assert.Contains(t, stderr, "Kept existing configuration")

		content, err := os.ReadFile(path)
		assert.NoError(t, err)
		assert.Equal(t, "redact: true\n", string(content))
	})

	t.Run("ForceOverwrites", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), config.FileName)
		assert.NoError(t, os.WriteFile(path, []byte("redact: true\n"), 0644))

		_, _, err := runCLI(t, "init", path, "--force")
		assert.NoError(t, err)

		cfg, err := config.Read(path)
		assert.NoError(t, err)
		assert.False(t, cfg.Redact)
	})
}

func TestLexCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.txt")
	assert.NoError(t, os.WriteFile(path, []byte("2024-01-05\nBroker buys 1 BTC @ 100 # note"), 0644))

	stdout, _, err := runCLI(t, "doctor", "lex", path)
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	assert.Equal(t, 7, len(lines))
	assert.True(t, strings.HasPrefix(lines[0], "DATE"))
	assert.Contains(t, lines[0], "1:1")
	assert.True(t, strings.HasPrefix(lines[2], "BUYS"))
	assert.Contains(t, lines[2], "2:8")
	assert.NotContains(t, stdout, "note")
}

func TestWatchFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.txt")
	assert.NoError(t, os.WriteFile(path, []byte(testLedger), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runs := make(chan int, 100)
	done := make(chan error, 1)
	go func() {
		n := 0
		done <- watchFiles(ctx, io.Discard, func() ([]string, error) {
			n++
			runs <- n
			return []string{path}, nil
		})
	}()
	assert.Equal(t, 1, <-runs)

	// The watch is only in place once the first run returned, so keep
	// touching the file until a rerun shows up.
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()
	timeout := time.After(10 * time.Second)
	for rerun := false; !rerun; {
		select {
		case <-ticker.C:
			assert.NoError(t, os.WriteFile(path, []byte(testLedger+"\n"), 0644))
		case n := <-runs:
			assert.True(t, n >= 2)
			rerun = true
		case <-timeout:
			t.Fatal("no rerun after the ledger changed")
		}
	}

	cancel()
	assert.NoError(t, <-done)
}

func TestStdinIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the binary")
	}

	binaryName := getBinaryName()
	cmd := exec.Command("go", "build", "-o", binaryName, "..")
	assert.NoError(t, cmd.Run())
	defer cleanupBinary(binaryName)

	configPath := filepath.Join(t.TempDir(), config.FileName)
	assert.NoError(t, config.Default().Write(configPath))

	t.Run("SummaryStdin", func(t *testing.T) {
		summaryCmd := exec.Command("./"+binaryName, "--config", configPath, "summary", "-")
		summaryCmd.Stdin = strings.NewReader(testLedger)
		output, err := summaryCmd.CombinedOutput()
		assert.NoError(t, err)
		assert.Contains(t, string(output), "General:")
	})

	t.Run("WatchStdinFails", func(t *testing.T) {
		summaryCmd := exec.Command("./"+binaryName, "--config", configPath, "summary", "-", "--watch")
		summaryCmd.Stdin = strings.NewReader(testLedger)
		output, err := summaryCmd.CombinedOutput()
		assert.Error(t, err)
		assert.Contains(t, string(output), "--watch needs a ledger file")
	})
}

// TestPromptYesNo tests the interactive prompt functionality
func TestPromptYesNo(t *testing.T) {
	t.Run("NonTTYReturnsFalse", func(t *testing.T) {
		if isTerminal() {
			t.Skip("stdin is a terminal")
		}

		confirmed, err := promptYesNo("Overwrite?")
		assert.NoError(t, err)
		assert.False(t, confirmed)
	})
}
