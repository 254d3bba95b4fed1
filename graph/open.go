package graph

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Open shows the file at path in browser without waiting for it to exit.
// An empty browser uses the platform's default handler.
func Open(browser, path string) error {
	cmd, err := openCommand(runtime.GOOS, browser, path)
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", cmd.Path, err)
	}
	return nil
}

func openCommand(goos, browser, path string) (*exec.Cmd, error) {
	if browser != "" {
		return exec.Command(browser, path), nil
	}
	switch goos {
	case "linux", "freebsd", "openbsd":
		return exec.Command("xdg-open", path), nil
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", path), nil
	case "darwin":
		return exec.Command("open", path), nil
	}
	return nil, fmt.Errorf("unsupported platform %s", goos)
}
