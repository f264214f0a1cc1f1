// Package models defines the core data shapes for tabsplit.
//
// # Models
//
//   - BillItem: a single line on the bill (name, unit price, quantity)
//   - ParsedBill: the backend's answer to a receipt upload
//   - SplitResult: the computed breakdown for either split strategy
//   - EqualSplitRequest / ItemSplitRequest: wire payloads for the two
//     split endpoints
//
// People are identified by display label only ("Person 1", "Person 2", ...);
// labels are cosmetic and reattached to results after computation.
//
// # Design Principles
//
//  1. Wire fidelity: the JSON tags here are the backend contract. The
//     struct shapes mirror the backend's request and response bodies
//     exactly; nothing is renamed between preview and submission.
//  2. Optional response fields (equal-only or item-only) are pointers or
//     nil-able slices so a decoded result states which strategy produced it.
//  3. No behavior beyond trivial derived values (per-line totals, default
//     name generation); arithmetic lives in the calculator package.
package models
