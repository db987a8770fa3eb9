package main

import (
	"testing"
)

func TestParseCLIArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		mode cliMode
		msg  string
	}{
		{name: "run default", args: nil, mode: cliRun},
		{name: "version long", args: []string{"--version"}, mode: cliVersion},
		{name: "version short", args: []string{"-v"}, mode: cliVersion},
		{name: "version single-dash", args: []string{"-version"}, mode: cliVersion},
		{name: "help long", args: []string{"--help"}, mode: cliHelp},
		{name: "help short", args: []string{"-h"}, mode: cliHelp},
		{name: "help word", args: []string{"help"}, mode: cliHelp},
		{name: "invalid flag", args: []string{"--bogus"}, mode: cliInvalid, msg: "unexpected argument: --bogus"},
		{name: "invalid flags", args: []string{"--bogus", "--pogus"}, mode: cliInvalid, msg: "unexpected argument: --bogus --pogus"},
		{name: "too many args", args: []string{"--version", "extra"}, mode: cliVersion},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mode, msg := parseCLIArgs(tc.args)
			if mode != tc.mode {
				t.Fatalf("mode mismatch: got %v want %v", mode, tc.mode)
			}
			if tc.msg != "" && msg != tc.msg {
				t.Fatalf("msg mismatch: got %q want %q", msg, tc.msg)
			}
		})
	}
}

func TestResolveVersionInfo(t *testing.T) {
	v, c, d := resolveVersionInfo("dev", "none", "unknown", "v1.2.3", map[string]string{
		"vcs.revision": "abcdef1234567890",
		"vcs.time":     "2026-08-01T00:00:00Z",
	})
	if v != "v1.2.3" {
		t.Fatalf("version = %q", v)
	}
	if c != "abcdef123456" {
		t.Fatalf("commit = %q, want 12-char revision", c)
	}
	if d != "2026-08-01T00:00:00Z" {
		t.Fatalf("date = %q", d)
	}

	// Explicit ldflags values win over build info.
	v, c, d = resolveVersionInfo("v2.0.0", "deadbeef", "yesterday", "v1.2.3", map[string]string{
		"vcs.revision": "abcdef1234567890",
	})
	if v != "v2.0.0" || c != "deadbeef" || d != "yesterday" {
		t.Fatalf("got %q %q %q", v, c, d)
	}

	// A devel module version never replaces the default.
	v, _, _ = resolveVersionInfo("dev", "none", "unknown", "(devel)", nil)
	if v != "dev" {
		t.Fatalf("version = %q, want dev", v)
	}
}
