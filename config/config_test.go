package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultsAreValid(t *testing.T) {
	Reset()
	if err := Validate(); err != nil {
		t.Fatalf("defaults rejected: %v", err)
	}
	if C.Width != 320 || C.Height != 568 || C.TPS != 60 {
		t.Errorf("screen = %+v", *C)
	}
	if Pipes.Width != 60 || Pipes.GapBirdHeights != 2.5 {
		t.Errorf("pipes = %+v", Pipes)
	}
}

func TestSeconds(t *testing.T) {
	Reset()
	cases := map[float64]int{0: 0, 0.15: 9, 0.5: 30, 3.0: 180, 4.0: 240}
	for in, want := range cases {
		if got := Seconds(in); got != want {
			t.Errorf("Seconds(%v) = %d, want %d", in, got, want)
		}
	}
}

func TestParseOverridesOnlyGivenFields(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	err := Parse([]byte("pipes:\n  width: 80\nscroll:\n  step: 2\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if Pipes.Width != 80 || Scroll.Step != 2 {
		t.Errorf("overrides not applied: pipes=%+v scroll=%+v", Pipes, Scroll)
	}
	if Pipes.SpawnWait != 3.5 || Bird.FlapImpulse != 20 {
		t.Errorf("unrelated values changed: pipes=%+v bird=%+v", Pipes, Bird)
	}
}

func TestParseRejectsInvalidValues(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	err := Parse([]byte("screen:\n  tps: 0\nbird:\n  width: -1\n"))
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, want := range []string{"tps", "bird size"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
	if C.TPS != 60 || Bird.Width != 34 {
		t.Errorf("invalid config was applied: tps=%d bird=%v", C.TPS, Bird.Width)
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if err := Parse([]byte("pipes: [")); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestLoadCustomPath(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("bird:\n  flap_impulse: 25\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != path || Bird.FlapImpulse != 25 {
		t.Errorf("Load returned %q, impulse %v", got, Bird.FlapImpulse)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	home := t.TempDir()
	t.Setenv("HOME", home)
	work := t.TempDir()
	t.Chdir(work)

	if got, err := Load(""); err != nil || got != "" {
		t.Fatalf("Load with no files = %q, %v; want defaults", got, err)
	}

	local := filepath.Join("configs", "flybird.yaml")
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(local, []byte("scroll:\n  step: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	// a broken user file is skipped in favour of the project file
	userDir := filepath.Join(home, ".flybird")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	user := filepath.Join(userDir, "config.yaml")
	if err := os.WriteFile(user, []byte("screen:\n  tps: -5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got, err := Load(""); err != nil || got != local || Scroll.Step != 3 {
		t.Fatalf("Load = %q, %v, step %v; want %s", got, err, Scroll.Step, local)
	}

	Reset()
	if err := os.WriteFile(user, []byte("scroll:\n  step: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got, err := Load(""); err != nil || got != user || Scroll.Step != 2 {
		t.Fatalf("Load = %q, %v, step %v; want %s", got, err, Scroll.Step, user)
	}
}

func TestStatusString(t *testing.T) {
	for status, want := range map[GameStatus]string{
		StatusIdle:    "idle",
		StatusRunning: "running",
		StatusOver:    "over",
		GameStatus(9): "unknown",
	} {
		if got := status.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", status, got, want)
		}
	}
}
