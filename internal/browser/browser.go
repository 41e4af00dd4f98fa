// Package browser opens track links in the system browser.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

var (
	getRuntime = func() string { return runtime.GOOS }
	startCmd   = func(cmd *exec.Cmd) error { return cmd.Start() }
)

// Open launches the default browser for target. It returns once the
// launcher has started and does not wait for it.
func Open(target string) error {
	target = strings.TrimSpace(target)
	if target == "" {
		return fmt.Errorf("no link to open")
	}

	var cmd *exec.Cmd
	switch rt := getRuntime(); rt {
	case "darwin":
		cmd = exec.Command("open", target)
	case "linux", "freebsd", "openbsd", "netbsd":
		cmd = exec.Command("xdg-open", target)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		return fmt.Errorf("unsupported platform: %s", rt)
	}

	if err := startCmd(cmd); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	return nil
}
