package service

import (
	"context"
	"strings"
	"testing"

	"github.com/ticketapp/ticket-system/internal/core/domain"
	"github.com/ticketapp/ticket-system/internal/core/ports"
)

func TestWorkspaceFactory_NamespacesKeys(t *testing.T) {
	kv := newStubKV()
	factory := NewWorkspaceFactory(kv, WorkspaceOptions{Clock: newFakeClock(), IDs: &seqIDs{prefix: "x"}}, discardLogger)

	ws := factory.Open("alpha")
	if ws.ID != "alpha" {
		t.Fatalf("unexpected workspace id %q", ws.ID)
	}
	if _, err := ws.Tickets.Create(context.Background(), ports.TicketInput{Title: "Printer down", Status: domain.StatusOpen}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if _, err := ws.Auth.Signup(context.Background(), "Ada", "ada@example.com", "engine1"); err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}

	for _, key := range []string{"alpha:" + TicketsKey, "alpha:" + UsersKey, "alpha:" + SessionKey} {
		if _, ok := kv.items[key]; !ok {
			t.Errorf("expected key %q to be written", key)
		}
	}
	for key := range kv.items {
		if !strings.HasPrefix(key, "alpha:") {
			t.Errorf("key %q escaped the workspace namespace", key)
		}
	}
}

func TestWorkspaceFactory_Isolation(t *testing.T) {
	kv := newStubKV()
	factory := NewWorkspaceFactory(kv, WorkspaceOptions{Clock: newFakeClock()}, discardLogger)
	alpha := factory.Open("alpha")
	beta := factory.Open("beta")
	ctx := context.Background()

	_, _ = alpha.Tickets.Create(ctx, ports.TicketInput{Title: "Printer down", Status: domain.StatusOpen})
	_, _ = alpha.Auth.Signup(ctx, "Ada", "ada@example.com", "engine1")

	tickets, _ := beta.Tickets.List(ctx)
	if len(tickets) != 0 {
		t.Fatalf("beta sees %d tickets from alpha", len(tickets))
	}
	if ok, _ := beta.Sessions.IsAuthenticated(ctx); ok {
		t.Fatal("beta must not share alpha's session")
	}
	if _, err := beta.Auth.Signup(ctx, "Ada", "ada@example.com", "engine1"); err != nil {
		t.Fatalf("same email in another workspace must be allowed: %v", err)
	}
}

func TestWorkspaceFactory_ReopenSharesState(t *testing.T) {
	factory := NewWorkspaceFactory(newStubKV(), WorkspaceOptions{}, discardLogger)
	ctx := context.Background()

	_, _ = factory.Open("alpha").Tickets.Create(ctx, ports.TicketInput{Title: "Printer down", Status: domain.StatusOpen})

	tickets, _ := factory.Open("alpha").Tickets.List(ctx)
	if len(tickets) != 1 {
		t.Fatalf("expected reopened workspace to see 1 ticket, got %d", len(tickets))
	}
}
