//go:build integration

package main

import (
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// Run with: go test -tags=integration ./cmd/landing -v

// TestReleaseBinary_ReportsGitDescribeVersion builds the binary the way the
// release does and checks --version echoes the git description.
func TestReleaseBinary_ReportsGitDescribeVersion(t *testing.T) {
	out, err := exec.Command("git", "describe", "--tags", "--always", "--dirty").Output()
	if err != nil {
		t.Skipf("git not available or not a git repo: %v", err)
	}
	gitVersion := strings.TrimSpace(string(out))

	release := filepath.Join(t.TempDir(), "landing")
	build := exec.Command("go", "build", "-ldflags", "-X main.version="+gitVersion, "-o", release, ".")
	if msg, err := build.CombinedOutput(); err != nil {
		t.Fatalf("release build failed: %v\n%s", err, msg)
	}

	got, err := exec.Command(release, "--version").Output()
	if err != nil {
		t.Fatalf("--version failed: %v", err)
	}
	if want := "landing version " + gitVersion + "\n"; string(got) != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

// TestDefaultBinary_TargetsPublicEndpoints checks that without any LANDING_*
// overrides the binary points at the production feed and oEmbed endpoint.
func TestDefaultBinary_TargetsPublicEndpoints(t *testing.T) {
	stdout, stderr, exitCode := runCLI(t, nil, "--env-file", "", "config")

	if exitCode != 0 {
		t.Fatalf("config failed with exit code %d:\n%s", exitCode, stderr)
	}
	for _, want := range []string{
		"https://blog.justcloud.pl/rss.xml",
		"https://www.youtube.com/oembed",
		"Prezentacja",
		"Czytaj więcej",
		"Title concurrency: 1",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("default config should contain %q, got:\n%s", want, stdout)
		}
	}
}

// TestRenderHelp_DescribesDegradedOutput checks the render contract is
// discoverable from the binary itself.
func TestRenderHelp_DescribesDegradedOutput(t *testing.T) {
	stdout, _, _ := runCLI(t, nil, "render", "--help")

	for _, want := range []string{"--in", "--out", "--open", "error panel", "fallback titles"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("render help should contain %q, got:\n%s", want, stdout)
		}
	}
}
