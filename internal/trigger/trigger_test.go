package trigger

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lazypower/octavia/internal/pet"
	"github.com/lazypower/octavia/internal/store"
)

type fixture struct {
	handler *Handler
	logs    *bytes.Buffer
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db, err := store.OpenHistoryMemory()
	if err != nil {
		t.Fatalf("OpenHistoryMemory: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	var logs bytes.Buffer
	return fixture{
		handler: &Handler{
			State:   store.NewStateFile(filepath.Join(t.TempDir(), "data", "state.json"), time.UTC),
			History: db,
			Logger:  slog.New(slog.NewTextHandler(&logs, nil)),
		},
		logs: &logs,
	}
}

func (f fixture) seed(t *testing.T, s pet.State) {
	t.Helper()
	if err := f.handler.State.Save(&s); err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func TestNormalize(t *testing.T) {
	in, testMode := Input{}.Normalize()
	if !testMode {
		t.Error("empty title should enable test mode")
	}
	if in.Title != "FEED|Octavia" || in.Author != "test-user" {
		t.Errorf("test-mode input = %+v", in)
	}

	in, testMode = Input{Title: "PET|Octavia"}.Normalize()
	if testMode {
		t.Error("unexpected test mode")
	}
	if in.Author != "unknown" {
		t.Errorf("Author = %q, want unknown", in.Author)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("ISSUE_TITLE", "HEAL|Octavia")
	t.Setenv("ISSUE_BODY", "get well")
	t.Setenv("ISSUE_AUTHOR", "carol")
	t.Setenv("ISSUE_NUMBER", "7")

	got := FromEnv()
	want := Input{Title: "HEAL|Octavia", Body: "get well", Author: "carol", Issue: "7"}
	if got != want {
		t.Errorf("FromEnv = %+v, want %+v", got, want)
	}
}

func TestInteractDecayThenFeed(t *testing.T) {
	f := newFixture(t)
	f.seed(t, pet.Default())

	res, err := f.handler.Interact(Input{Title: "feed|OCTAVIA", Author: "alice", Issue: "12"})
	if err != nil {
		t.Fatalf("Interact: %v", err)
	}
	if res.Instruction != pet.Feed {
		t.Errorf("Instruction = %v, want FEED", res.Instruction)
	}
	s := res.State
	if s.Health != 100 || s.Hunger != 40 || s.Mood != 80 {
		t.Errorf("state = %d/%d/%d, want 100/40/80", s.Health, s.Hunger, s.Mood)
	}
	if s.Tier() != pet.Good || s.StatusPic != "images/good.png" {
		t.Errorf("tier = %v pic = %q", s.Tier(), s.StatusPic)
	}

	saved, err := f.handler.State.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if saved != s {
		t.Errorf("saved = %+v, want %+v", saved, s)
	}

	if !strings.Contains(res.Response, "@alice") || !strings.Contains(res.Response, "40/100") {
		t.Errorf("unexpected response:\n%s", res.Response)
	}

	rows, err := f.handler.History.Recent(5)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(rows) != 1 || rows[0].Instruction != "FEED" || rows[0].Author != "alice" || rows[0].Issue != "12" {
		t.Errorf("journal = %+v", rows)
	}
}

func TestInteractInitializesMissingState(t *testing.T) {
	f := newFixture(t)

	res, err := f.handler.Interact(Input{Title: "PET|Octavia", Author: "bob"})
	if err != nil {
		t.Fatalf("Interact: %v", err)
	}
	if res.Before.Health != 100 || res.Before.Hunger != 50 || res.Before.Mood != 80 {
		t.Errorf("Before = %+v, want default pet", res.Before)
	}
	// decay 100/70/70, then PET +20 mood
	if res.State.Mood != 90 || res.State.Hunger != 70 {
		t.Errorf("State = %+v", res.State)
	}
}

func TestInteractRejectedLeavesState(t *testing.T) {
	f := newFixture(t)
	f.seed(t, pet.Default())
	before, err := os.ReadFile(f.handler.State.Path)
	if err != nil {
		t.Fatal(err)
	}

	res, err := f.handler.Interact(Input{Title: "FEED|Bob", Author: "mallory"})
	if !errors.Is(err, pet.ErrRejected) {
		t.Fatalf("Interact error = %v, want ErrRejected", err)
	}
	if !strings.Contains(res.Response, "Invalid command format") {
		t.Errorf("expected help response, got:\n%s", res.Response)
	}

	after, err := os.ReadFile(f.handler.State.Path)
	if err != nil {
		t.Fatal(err)
	}
	if string(after) != string(before) {
		t.Error("state file changed on rejected command")
	}

	n, err := f.handler.History.Count()
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("journal has %d rows, want 0", n)
	}
}

func TestInteractRejectedDoesNotCreateState(t *testing.T) {
	f := newFixture(t)

	if _, err := f.handler.Interact(Input{Title: "FEED"}); !errors.Is(err, pet.ErrRejected) {
		t.Fatalf("Interact error = %v, want ErrRejected", err)
	}
	if _, err := os.Stat(f.handler.State.Path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("state file should not exist: %v", err)
	}
}

func TestInteractCorruptState(t *testing.T) {
	f := newFixture(t)
	os.MkdirAll(filepath.Dir(f.handler.State.Path), 0755)
	os.WriteFile(f.handler.State.Path, []byte("not json"), 0644)

	_, err := f.handler.Interact(Input{Title: "HEAL|Octavia"})
	if !errors.Is(err, store.ErrFormat) {
		t.Fatalf("Interact error = %v, want ErrFormat", err)
	}
}

func TestInteractTestMode(t *testing.T) {
	f := newFixture(t)

	res, err := f.handler.Interact(Input{})
	if err != nil {
		t.Fatalf("Interact: %v", err)
	}
	if res.Instruction != pet.Feed || res.Input.Author != "test-user" {
		t.Errorf("test mode result = %+v", res)
	}
	if !strings.Contains(f.logs.String(), "test mode") {
		t.Errorf("expected test mode warning in logs:\n%s", f.logs.String())
	}
}

func TestInteractWithoutHistory(t *testing.T) {
	f := newFixture(t)
	f.handler.History = nil

	if _, err := f.handler.Interact(Input{Title: "CARE|Octavia"}); err != nil {
		t.Fatalf("Interact: %v", err)
	}
}

func TestInteractJournalFailureIsNotFatal(t *testing.T) {
	f := newFixture(t)
	f.handler.History.Close()

	if _, err := f.handler.Interact(Input{Title: "CARE|Octavia"}); err != nil {
		t.Fatalf("Interact: %v", err)
	}
	if !strings.Contains(f.logs.String(), "record interaction") {
		t.Errorf("expected journal warning in logs:\n%s", f.logs.String())
	}
}

func TestDecay(t *testing.T) {
	f := newFixture(t)
	f.seed(t, pet.State{Name: "Octavia", Health: 50, Hunger: 70, Mood: 30, Level: 2})

	before, after, err := f.handler.Decay()
	if err != nil {
		t.Fatalf("Decay: %v", err)
	}
	if before.Hunger != 70 {
		t.Errorf("before = %+v", before)
	}
	if after.Health != 45 || after.Hunger != 90 || after.Mood != 20 || after.Level != 2 {
		t.Errorf("after = %+v", after)
	}
	if after.Tier() != pet.Poor || after.StatusEmoji != "😰" {
		t.Errorf("tier = %v emoji = %q", after.Tier(), after.StatusEmoji)
	}

	rows, err := f.handler.History.Recent(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].Instruction != store.DecayAction {
		t.Errorf("journal = %+v", rows)
	}
}

func TestWriteResponse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "response.md")
	if err := WriteResponse(path, "## hi\n"); err != nil {
		t.Fatalf("WriteResponse: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "## hi\n" {
		t.Errorf("content = %q", data)
	}
}
