package stockpile

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

const testDocument = `{
  "guild1": {
    "alice": {
      "name": "Alice",
      "created_at": "2026-03-14 09:26:53",
      "items": {
        "gold": 30,
        "sword": 1
      }
    },
    "bob": {
      "name": "Bob",
      "created_at": "2026-03-15 10:00:00",
      "items": {}
    }
  },
  "guild2": {
    "alice": {
      "name": "Alice Elsewhere",
      "created_at": "2026-04-01 00:00:00",
      "items": {
        "gold": 5
      }
    }
  }
}
`

func TestDecodeLedger(t *testing.T) {
	ledger, err := DecodeLedger(strings.NewReader(testDocument))
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}

	got, err := ledger.GetQuantity("guild1", "alice", "gold")
	if err != nil {
		t.Fatalf("GetQuantity() returned an unexpected error: %v", err)
	}
	if !got.Equal(Q(30)) {
		t.Errorf("guild1/alice gold = %s, want 30", got)
	}

	acc, err := ledger.account("guild1", "alice")
	if err != nil {
		t.Fatalf("account() returned an unexpected error: %v", err)
	}
	wantCreated := time.Date(2026, time.March, 14, 9, 26, 53, 0, time.UTC)
	if !acc.CreatedAt.Equal(wantCreated) {
		t.Errorf("created_at = %v, want %v", acc.CreatedAt, wantCreated)
	}

	// The two namespaces hold independent accounts for the same id.
	other, err := ledger.GetQuantity("guild2", "alice", "gold")
	if err != nil {
		t.Fatalf("GetQuantity() returned an unexpected error: %v", err)
	}
	if !other.Equal(Q(5)) {
		t.Errorf("guild2/alice gold = %s, want 5", other)
	}

	if !ledger.AccountExists("guild1", "bob") {
		t.Error("bob should exist with an empty inventory")
	}
}

func TestDecodeLedger_Empty(t *testing.T) {
	ledger, err := DecodeLedger(strings.NewReader(""))
	if err != nil {
		t.Fatalf("DecodeLedger(empty) returned an unexpected error: %v", err)
	}
	count := 0
	for range ledger.ListAllAccounts() {
		count++
	}
	if count != 0 {
		t.Errorf("empty input decoded to %d accounts, want 0", count)
	}
}

func TestEncodeLedger_Canonical(t *testing.T) {
	// Decoding then re-encoding a canonical document must be byte-identical.
	ledger, err := DecodeLedger(strings.NewReader(testDocument))
	if err != nil {
		t.Fatalf("DecodeLedger() returned an unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, ledger); err != nil {
		t.Fatalf("EncodeLedger() returned an unexpected error: %v", err)
	}
	if buf.String() != testDocument {
		t.Errorf("re-encoded document differs from the original.\nGot:\n%s\nWant:\n%s", buf.String(), testDocument)
	}
}

func TestEncodeLedger_Deterministic(t *testing.T) {
	l := NewLedger()
	for _, id := range []string{"zoe", "alice", "mark"} {
		if _, err := l.CreateAccount("guild1", id, strings.ToUpper(id), testTime); err != nil {
			t.Fatalf("CreateAccount(%s) returned an unexpected error: %v", id, err)
		}
		if err := l.Deposit("guild1", id, "gold", Q(int64(len(id)))); err != nil {
			t.Fatalf("Deposit(%s) returned an unexpected error: %v", id, err)
		}
	}

	var first, second bytes.Buffer
	if err := EncodeLedger(&first, l); err != nil {
		t.Fatalf("EncodeLedger() returned an unexpected error: %v", err)
	}
	if err := EncodeLedger(&second, l); err != nil {
		t.Fatalf("EncodeLedger() returned an unexpected error: %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("two encodings of the same ledger differ")
	}
}

func TestDecodeLedger_Corrupt(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{
			name: "not json",
			doc:  `{"guild1": [1, 2, 3]}`,
		},
		{
			name: "unknown field",
			doc:  `{"guild1": {"alice": {"name": "Alice", "created_at": "2026-03-14 09:26:53", "items": {}, "level": 3}}}`,
		},
		{
			name: "bad timestamp",
			doc:  `{"guild1": {"alice": {"name": "Alice", "created_at": "last tuesday", "items": {}}}}`,
		},
		{
			name: "negative quantity",
			doc:  `{"guild1": {"alice": {"name": "Alice", "created_at": "2026-03-14 09:26:53", "items": {"gold": -5}}}}`,
		},
		{
			name: "fractional quantity",
			doc:  `{"guild1": {"alice": {"name": "Alice", "created_at": "2026-03-14 09:26:53", "items": {"gold": 1.5}}}}`,
		},
		{
			name: "quantity not a number",
			doc:  `{"guild1": {"alice": {"name": "Alice", "created_at": "2026-03-14 09:26:53", "items": {"gold": "lots"}}}}`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeLedger(strings.NewReader(tc.doc))
			if !errors.Is(err, ErrCorruptStore) {
				t.Errorf("DecodeLedger() error = %v, want ErrCorruptStore", err)
			}
		})
	}
}
