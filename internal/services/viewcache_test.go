package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestFormatViewKeyVariesByDay(t *testing.T) {
	ws := uuid.New()
	cfg := ContactFilterConfig{Query: "oslo"}

	before := cacheDay(time.Date(2026, 3, 14, 23, 55, 0, 0, time.UTC))
	after := cacheDay(time.Date(2026, 3, 15, 0, 5, 0, 0, time.UTC))
	if before == after {
		t.Fatalf("cacheDay collapsed distinct days: %q", before)
	}

	k1, err := formatViewKey(ws, 3, "contacts", before, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	k2, err := formatViewKey(ws, 3, "contacts", after, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if k1 == k2 {
		t.Fatalf("same key across a midnight rollover: %q", k1)
	}
}

func TestFormatViewKeyDiscriminants(t *testing.T) {
	ws := uuid.New()
	day := cacheDay(time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC))
	base, err := formatViewKey(ws, 1, "contacts", day, ContactFilterConfig{Query: "oslo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		name string
		ws   uuid.UUID
		ver  int64
		kind string
		cfg  any
	}{
		{name: "different workspace", ws: uuid.New(), ver: 1, kind: "contacts", cfg: ContactFilterConfig{Query: "oslo"}},
		{name: "different version", ws: ws, ver: 2, kind: "contacts", cfg: ContactFilterConfig{Query: "oslo"}},
		{name: "different kind", ws: ws, ver: 1, kind: "tasks", cfg: ContactFilterConfig{Query: "oslo"}},
		{name: "different config", ws: ws, ver: 1, kind: "contacts", cfg: ContactFilterConfig{Query: "rotterdam"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			key, err := formatViewKey(tc.ws, tc.ver, tc.kind, day, tc.cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if key == base {
				t.Fatalf("key did not change: %q", key)
			}
		})
	}

	same, err := formatViewKey(ws, 1, "contacts", day, ContactFilterConfig{Query: "oslo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if same != base {
		t.Fatalf("identical inputs produced different keys: %q vs %q", same, base)
	}
}
