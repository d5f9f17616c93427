package navtest

import (
	"context"
	"testing"

	"github.com/passage-dev/passage/pkg/content"
	"github.com/passage-dev/passage/pkg/nav"
)

func TestHarnessRoundTrip(t *testing.T) {
	h := New().
		TextRoute("/", "<h1>Home</h1>").
		Route("/users/:id", func(ctx context.Context, params map[string]string) (content.Content, error) {
			return content.Text("<p>user " + params["id"] + "</p>"), nil
		}).
		Build(t)

	h.Go(t, "/users/42")
	h.ExpectHTML(t, "<p>user 42</p>")
	h.ExpectContains(t, "user 42")

	if h.Surface.Location() != "/users/42" {
		t.Errorf("Location = %q", h.Surface.Location())
	}
}

func TestHarnessRecordsOutcomes(t *testing.T) {
	h := New().TextRoute("/a", "a").Build(t)

	h.Go(t, "/a")
	h.Go(t, "/missing")

	outcomes := h.Outcomes()
	want := []nav.Outcome{nav.OutcomeOK, nav.OutcomeNotFound}
	if len(outcomes) != len(want) {
		t.Fatalf("outcomes = %v, want %v", outcomes, want)
	}
	for i := range want {
		if outcomes[i] != want[i] {
			t.Errorf("outcomes[%d] = %q, want %q", i, outcomes[i], want[i])
		}
	}
}

func TestHarnessInitialLocation(t *testing.T) {
	h := New().At("/start").TextRoute("/start", "started").Build(t)

	if err := h.Engine.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	h.ExpectHTML(t, "started")
}
