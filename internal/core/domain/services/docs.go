// Package services provides the domain services of the trading order engine:
// the logic that spans several lines of an order and does not belong to a
// single Line.
//
// The package includes:
//   - ExtensionCodec: encodes the commercial terms of a product line into the
//     versioned extension blob stored on the line, and decodes it back
//   - OrderDecomposer: explodes one submission into one Line per product with
//     derived sub order numbers and initial lifecycle states
//   - OrderAggregator: rebuilds per-line product views from stored lines and
//     a single batched catalog lookup
//
// Decomposition is pure and synchronous. Aggregation fetches the catalog once
// and then merges lines in parallel.
package services
