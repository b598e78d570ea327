// Package kernel provides the identifier primitives shared by the order model.
//
// The package includes:
//   - OrderNo: the parent order number shared by every line of one submission,
//     a 128-bit random value rendered as 32 hex characters without separators
//   - SubOrderNo: the per-line child number derived as parent + "_" + line index
//
// Both are immutable value objects whose zero value is invalid; they must be
// built through NewOrderNo, OrderNoFromString, OrderNo.Child or
// SubOrderNoFromString.
package kernel
