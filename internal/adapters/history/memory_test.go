package history

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/seabroker/email-classifier/internal/core"
)

func TestMemoryStoreRecord(t *testing.T) {
	store := NewMemoryStore(zap.NewNop())
	ctx := context.Background()

	entries := []core.RunEntry{
		{RunID: "run-1", ModelType: "RandomForest", Accuracy: 0.9, CVMean: 0.88, CVStd: 0.02, Selected: true, CreatedAt: time.Now()},
		{RunID: "run-1", ModelType: "LogisticRegression", Accuracy: 0.85, CVMean: 0.84, CVStd: 0.03, CreatedAt: time.Now()},
	}
	for i := range entries {
		if err := store.Record(ctx, &entries[i]); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	got := store.Entries()
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].ModelType != "RandomForest" || !got[0].Selected {
		t.Errorf("first entry mismatch: %+v", got[0])
	}
	if got[1].ModelType != "LogisticRegression" || got[1].Selected {
		t.Errorf("second entry mismatch: %+v", got[1])
	}
}

func TestMemoryStoreEntriesReturnsCopy(t *testing.T) {
	store := NewMemoryStore(zap.NewNop())
	ctx := context.Background()

	entry := core.RunEntry{RunID: "run-1", ModelType: "SVM", Accuracy: 0.8}
	if err := store.Record(ctx, &entry); err != nil {
		t.Fatalf("record: %v", err)
	}

	first := store.Entries()
	first[0].ModelType = "mutated"

	second := store.Entries()
	if second[0].ModelType != "SVM" {
		t.Errorf("internal state was mutated through the returned slice: %q", second[0].ModelType)
	}
}

func TestMemoryStoreClose(t *testing.T) {
	store := NewMemoryStore(zap.NewNop())
	if err := store.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
}
