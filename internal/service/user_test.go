package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestUserCreateHashesPassword(t *testing.T) {
	ctx := context.Background()
	store := newFakeUserStore()
	svc := NewUserService(store)

	public, err := svc.Create(ctx, "leia@rebellion.org", "leia", "alderaan-rose", true)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if public.Email != "leia@rebellion.org" || public.Username != "leia" {
		t.Errorf("public user = %+v", public)
	}

	stored, err := store.GetByID(ctx, public.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Password == "alderaan-rose" {
		t.Fatal("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("alderaan-rose")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
}

func TestUserListNeverExposesPassword(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(newFakeUserStore())

	if _, err := svc.Create(ctx, "han@rebellion.org", "han", "never-tell-me", true); err != nil {
		t.Fatalf("Create: %v", err)
	}

	users, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("len = %d", len(users))
	}

	b, err := json.Marshal(users)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(strings.ToLower(string(b)), "password") {
		t.Errorf("serialized users leak a password field: %s", b)
	}
}
