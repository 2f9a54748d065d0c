// Package browser opens rendered pages in the user's default browser.
package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Open opens target in the default browser. target is either an http(s)
// URL or a path to a local file, which is turned into a file:// URL.
func Open(target string) error {
	u, err := Resolve(target)
	if err != nil {
		return err
	}

	cmd, err := command(runtime.GOOS, u)
	if err != nil {
		return err
	}
	return cmd.Start()
}

// Resolve validates target and returns the URL handed to the system browser.
// Only http, https and file URLs are allowed so nothing else reaches the shell.
func Resolve(target string) (string, error) {
	if target == "" {
		return "", fmt.Errorf("nothing to open")
	}

	parsed, err := url.Parse(target)
	if err == nil {
		switch parsed.Scheme {
		case "http", "https", "file":
			return parsed.String(), nil
		}
		// Windows drive letters parse as a one-letter scheme.
		if len(parsed.Scheme) > 1 {
			return "", fmt.Errorf("unsupported URL scheme: %s (only http, https and file allowed)", parsed.Scheme)
		}
	}

	abs, err := filepath.Abs(target)
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String(), nil
}

func command(goos, u string) (*exec.Cmd, error) {
	switch goos {
	case "linux":
		return exec.Command("xdg-open", u), nil // #nosec G204 -- URL validated by Resolve
	case "darwin":
		return exec.Command("open", u), nil // #nosec G204 -- URL validated by Resolve
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", u), nil // #nosec G204 -- URL validated by Resolve
	default:
		return nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}
