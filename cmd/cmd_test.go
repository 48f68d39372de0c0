package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"eventhub-cli/catalog"
	"eventhub-cli/model"
	"eventhub-cli/store"
)

func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir+"/config")
	t.Setenv("XDG_CACHE_HOME", dir+"/cache")
	for _, key := range []string{
		"EVENTHUB_SITE",
		"EVENTHUB_SESSION_BACKEND",
		"EVENTHUB_CATALOG_URL",
		"EVENTHUB_LOG_FILE",
		"EVENTHUB_CATALOG_TTL",
		"EVENTHUB_TOAST_TTL",
	} {
		t.Setenv(key, "")
	}
	t.Chdir(dir)
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd("1.2.3", "abc123")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	isolate(t)
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if strings.TrimSpace(out) != "eventhub-cli 1.2.3 (abc123)" {
		t.Fatalf("unexpected version output: %q", out)
	}
}

func TestEventsCommand_PrintsBuiltInCatalog(t *testing.T) {
	isolate(t)
	out, err := run(t, "events", "--site", "dance")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	for _, want := range []string{"DanceFlow", "Hip-Hop для начинающих", "от 1 200 ₽", "Всего: 6"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestRenderEvents_WrapsVenueOnWords(t *testing.T) {
	var out bytes.Buffer
	renderEvents(&out, catalog.Load(catalog.Dance), []model.Event{{
		ID:    "9",
		Title: "Вечер танго",
		Venue: "Концертный зал Большой зал филармонии",
		Price: 900,
	}})
	for _, want := range []string{"Большой зал", "филармонии", "Всего: 1"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, out.String())
		}
	}
}

func TestEventsCommand_FiltersByTab(t *testing.T) {
	isolate(t)
	out, err := run(t, "events", "--site", "concert", "--tab", "standup")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !strings.Contains(out, "Stand-up шоу") || strings.Contains(out, "Джазовый вечер") {
		t.Fatalf("unexpected filtered output:\n%s", out)
	}
}

func TestEventsCommand_RemoteFailureFallsBack(t *testing.T) {
	isolate(t)
	t.Setenv("EVENTHUB_CATALOG_URL", "http://127.0.0.1:1")

	out, err := run(t, "events", "--site", "dance")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !strings.Contains(out, "Не удалось загрузить афишу") || !strings.Contains(out, "Hip-Hop для начинающих") {
		t.Fatalf("expected fallback output, got:\n%s", out)
	}
}

func TestInvalidSiteFlag(t *testing.T) {
	isolate(t)
	if _, err := run(t, "events", "--site", "opera"); err == nil {
		t.Fatal("expected error for unknown site")
	}
}

func TestAccountAndLogout(t *testing.T) {
	isolate(t)

	out, err := run(t, "account")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !strings.Contains(out, "Нет активной сессии") {
		t.Fatalf("expected no-session message, got %q", out)
	}

	user := model.User{
		FullName:     "Анна Петрова",
		Email:        "anna@mail.ru",
		Phone:        "+7 (999) 123-45-67",
		RegisteredAt: time.Date(2024, 12, 1, 10, 0, 0, 0, time.Local),
	}
	if err := store.NewFileSessions().Set(context.Background(), user); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	out, err = run(t, "account")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !strings.Contains(out, "Анна Петрова") || !strings.Contains(out, "01.12.2024") {
		t.Fatalf("expected profile output, got:\n%s", out)
	}

	if _, err := run(t, "logout"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, err := store.NewFileSessions().Get(context.Background()); err == nil {
		t.Fatal("expected session to be cleared")
	}
}

func TestPromptValidators(t *testing.T) {
	if err := validateFullName("  "); err == nil {
		t.Fatal("expected empty name to fail")
	}
	if err := validateEmail("anna@mail"); err == nil {
		t.Fatal("expected malformed email to fail")
	}
	if err := validateEmail("anna@mail.ru"); err != nil {
		t.Fatalf("expected valid email, got %v", err)
	}
	if err := validatePhone("12345"); err == nil {
		t.Fatal("expected short phone to fail")
	}
	if err := validatePhone("+7 (999) 123-45-67"); err != nil {
		t.Fatalf("expected valid phone, got %v", err)
	}
}

func TestRunTUI_RejectsUnknownView(t *testing.T) {
	isolate(t)
	_, err := run(t, "--view", "checkout", "--site", string(catalog.Dance))
	if err == nil || !strings.Contains(err.Error(), "unknown view") {
		t.Fatalf("expected unknown view error, got %v", err)
	}
}
