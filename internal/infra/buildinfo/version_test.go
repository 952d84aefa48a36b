package buildinfo

import (
	"strings"
	"testing"
	"time"
)

func TestGet(t *testing.T) {
	info := Get()
	if info.Version != Version {
		t.Fatalf("Version = %q, want %q", info.Version, Version)
	}
	if info.Commit != Commit {
		t.Fatalf("Commit = %q, want %q", info.Commit, Commit)
	}
}

func TestString(t *testing.T) {
	s := String()
	if !strings.Contains(s, Version) || !strings.Contains(s, Commit) {
		t.Fatalf("String() = %q", s)
	}
}

func TestUptime(t *testing.T) {
	if Uptime() < 0 {
		t.Fatal("Uptime() is negative")
	}
	before := Uptime()
	time.Sleep(5 * time.Millisecond)
	if Uptime() <= before {
		t.Fatal("Uptime() should increase")
	}
}
