package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/deppfellow/starwars-api/internal/errs"
)

func requireHTTPError(t *testing.T, err error, status int, message string) {
	t.Helper()

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %T: %v", err, err)
	}
	if httpErr.Status != status {
		t.Errorf("Status = %d, want %d", httpErr.Status, status)
	}
	if httpErr.Message != message {
		t.Errorf("Message = %q, want %q", httpErr.Message, message)
	}
}

func strPtr(s string) *string { return &s }

func TestPlanetCreateAndGet(t *testing.T) {
	ctx := context.Background()
	svc := NewPlanetService(newFakePlanetStore())

	created, err := svc.Create(ctx, "Tatooine", "arid", "desert")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 {
		t.Error("Create must assign an ID")
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "Tatooine" || *got.Climate != "arid" || *got.Terrain != "desert" {
		t.Errorf("Get = %+v", got)
	}
}

func TestPlanetGetNotFound(t *testing.T) {
	svc := NewPlanetService(newFakePlanetStore())

	_, err := svc.Get(context.Background(), 42)
	requireHTTPError(t, err, http.StatusNotFound, "planet not found")
}

func TestPlanetUpdateMergesFields(t *testing.T) {
	ctx := context.Background()
	svc := NewPlanetService(newFakePlanetStore())

	created, err := svc.Create(ctx, "Hoth", "frozen", "tundra")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(ctx, created.ID, nil, strPtr("temperate"), nil)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.Name != "Hoth" {
		t.Errorf("Name = %q, must be unchanged", updated.Name)
	}
	if *updated.Climate != "temperate" {
		t.Errorf("Climate = %q, want %q", *updated.Climate, "temperate")
	}
	if *updated.Terrain != "tundra" {
		t.Errorf("Terrain = %q, must be unchanged", *updated.Terrain)
	}
}

func TestPlanetUpdateNotFound(t *testing.T) {
	svc := NewPlanetService(newFakePlanetStore())

	_, err := svc.Update(context.Background(), 7, strPtr("Naboo"), nil, nil)
	requireHTTPError(t, err, http.StatusNotFound, "planet not found")
}

func TestPlanetDeleteTwice(t *testing.T) {
	ctx := context.Background()
	svc := NewPlanetService(newFakePlanetStore())

	created, err := svc.Create(ctx, "Alderaan", "temperate", "grasslands")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	err = svc.Delete(ctx, created.ID)
	requireHTTPError(t, err, http.StatusNotFound, "planet not found")
}

func TestPersonNotFoundMessage(t *testing.T) {
	svc := NewPersonService(newFakePersonStore())

	_, err := svc.Get(context.Background(), 9)
	requireHTTPError(t, err, http.StatusNotFound, "person not found")
}

func TestPersonUpdateMergesFields(t *testing.T) {
	ctx := context.Background()
	svc := NewPersonService(newFakePersonStore())

	created, err := svc.Create(ctx, "Luke Skywalker", "19BBY", "male")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(ctx, created.ID, nil, nil, strPtr("unknown"))
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Luke Skywalker" || *updated.BirthYear != "19BBY" {
		t.Errorf("unchanged fields were modified: %+v", updated)
	}
	if *updated.Gender != "unknown" {
		t.Errorf("Gender = %q", *updated.Gender)
	}
}
