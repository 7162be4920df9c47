// Package stockpile implements a per-namespace item ledger: named-item
// quantities owned by accounts, grouped into isolated namespaces, persisted
// as a single human-readable JSON document.
//
// The core pieces are:
//   - Ledger: the in-memory namespace → account → inventory tree with the
//     transactional operations (create, deposit, withdraw, set, transfer,
//     wipe) and their invariants: quantities never go negative, and a
//     transfer conserves the combined quantity or applies nothing at all.
//   - System: the operation façade coupling a Ledger with a DocumentStore.
//     It serializes all access behind one mutex and saves the full document
//     after every successful mutation.
//   - DocumentStore: the injectable persistence step, with file and
//     in-memory implementations.
//   - Codecs: a canonical JSON encoding of the ledger document and of the
//     per-namespace settings document, strict on load.
//
// This package is the foundation of the `spk` command-line tool and returns
// typed failures exclusively; translating them into user-visible text is the
// command layer's job.
package stockpile
