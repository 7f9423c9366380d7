package store

import (
	"context"
	"path"
	"testing"

	"github.com/marl-lab/gridwalk/policies"
)

func TestFileStoreRoundtrip(t *testing.T) {
	ctx := context.Background()
	s := NewFileStore(path.Join(t.TempDir(), "policies"))

	q := policies.NewQTable()
	q.Set("P(0,2)", "P:Right", 42)
	if err := s.Save(ctx, "QLearning_0", q); err != nil {
		t.Fatalf("failed to save the policy: %s", err)
	}

	read, err := s.Load(ctx, "QLearning_0")
	if err != nil {
		t.Fatalf("failed to load the policy: %s", err)
	}
	if got := read.Get("P(0,2)", "P:Right", 0); got != 42 {
		t.Errorf("expected 42 after the roundtrip, got %f", got)
	}

	names, err := s.List(ctx)
	if err != nil {
		t.Fatalf("failed to list the policies: %s", err)
	}
	if len(names) != 1 || names[0] != "QLearning_0" {
		t.Errorf("expected [QLearning_0], got %v", names)
	}
}

func TestFileStoreMissing(t *testing.T) {
	ctx := context.Background()
	s := NewFileStore(path.Join(t.TempDir(), "policies"))

	if _, err := s.Load(ctx, "missing"); err == nil {
		t.Errorf("expected loading a missing policy to fail")
	}
	names, err := s.List(ctx)
	if err != nil {
		t.Fatalf("expected listing a missing directory to succeed: %s", err)
	}
	if len(names) != 0 {
		t.Errorf("expected no policies, got %v", names)
	}
}
