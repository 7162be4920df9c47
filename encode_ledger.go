package stockpile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// accountRecord is the fixed persisted shape of an account. Anything that
// does not fit this shape is rejected at decode time rather than on first
// access.
type accountRecord struct {
	Name      string              `json:"name"`
	CreatedAt string              `json:"created_at"`
	Items     map[string]Quantity `json:"items"`
}

// EncodeLedger writes the ledger as a single canonical JSON document:
// namespace id → account id → account record. Keys are sorted, the output is
// two-space indented and ends with a newline, so encoding the same ledger
// twice yields byte-identical documents.
func EncodeLedger(w io.Writer, l *Ledger) error {
	doc := make(map[string]map[string]accountRecord, len(l.namespaces))
	for namespace, accounts := range l.namespaces {
		records := make(map[string]accountRecord, len(accounts))
		for id, acc := range accounts {
			items := acc.Items
			if items == nil {
				items = Inventory{}
			}
			records[id] = accountRecord{
				Name:      acc.Name,
				CreatedAt: acc.CreatedAt.Format(timestampLayout),
				Items:     items,
			}
		}
		doc[namespace] = records
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("could not encode ledger: %w", err)
	}
	return nil
}

// DecodeLedger reads a ledger document from r.
//
// An empty input decodes to an empty ledger. Any record that does not match
// the expected shape (unknown fields, an unparseable creation timestamp, a
// negative or fractional quantity) fails with ErrCorruptStore naming the
// offending key.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var doc map[string]map[string]accountRecord
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return NewLedger(), nil
		}
		return nil, fmt.Errorf("%w: %v", ErrCorruptStore, err)
	}

	ledger := NewLedger()
	for namespace, records := range doc {
		accounts := make(map[string]*Account, len(records))
		for id, rec := range records {
			createdAt, err := time.ParseInLocation(timestampLayout, rec.CreatedAt, time.UTC)
			if err != nil {
				return nil, fmt.Errorf("%w: account %s/%s: bad created_at %q", ErrCorruptStore, namespace, id, rec.CreatedAt)
			}
			items := make(Inventory, len(rec.Items))
			for item, n := range rec.Items {
				if err := n.validate(); err != nil {
					return nil, fmt.Errorf("%w: account %s/%s, item %q: %v", ErrCorruptStore, namespace, id, item, err)
				}
				items[item] = n
			}
			accounts[id] = &Account{ID: id, Name: rec.Name, CreatedAt: createdAt, Items: items}
		}
		ledger.namespaces[namespace] = accounts
	}
	return ledger, nil
}
