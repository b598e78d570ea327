// Package order models purchase and sale orders as they are stored: one Line
// per product of a submission, each carrying a copy of the order Header, its
// own sub order number and an encoded extension blob with the commercial terms
// of that product.
//
// The package includes:
//   - Header and ProductLine: the submission input
//   - Extension: the per-line commercial terms kept in the extension blob
//   - Line: the persisted row, created by NewLine or restored by RestoreLine
//   - OrderState, AuditState, StockState: the lifecycle enums and their labels
//   - Criteria: the filter used to list lines
//
// Key business rules:
//   - every new line starts as Running, ToAudit and NoneOut
//   - lines are created for a whole submission at once and never deleted
//   - the sub order number of a line always belongs to its parent order number
package order
