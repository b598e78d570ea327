package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"trading/internal/pkg/errs"

	"github.com/google/uuid"
)

// SubOrderNoSeparator joins a parent order number and a line index.
const SubOrderNoSeparator = "_"

var (
	// ErrOrderNoIsNotConstructed is returned when validating a zero-value OrderNo.
	ErrOrderNoIsNotConstructed = errs.NewValueIsRequiredError(
		"order number must be created via NewOrderNo or OrderNoFromString")

	// ErrSubOrderNoIsNotConstructed is returned when validating a zero-value SubOrderNo.
	ErrSubOrderNoIsNotConstructed = errs.NewValueIsRequiredError(
		"sub order number must be created via OrderNo.Child or SubOrderNoFromString")
)

// OrderNo is the parent identifier shared by all lines of one order submission.
//
// Example:
//
//	orderNo := kernel.NewOrderNo()
//	first, _ := orderNo.Child(0) // "<orderNo>_0"
type OrderNo struct {
	value string
}

// NewOrderNo returns a fresh parent order number: a version 4 UUID rendered
// without hyphens. Collision probability is that of a random UUID; no
// coordination with other processes is needed.
func NewOrderNo() OrderNo {
	return OrderNo{value: strings.ReplaceAll(uuid.NewString(), "-", "")}
}

// OrderNoFromString restores a parent order number read from storage or a
// request. The value must be non-empty and must not contain the sub order
// separator or whitespace, so that SubOrderNoFromString stays unambiguous.
func OrderNoFromString(s string) (OrderNo, error) {
	if s == "" {
		return OrderNo{}, errs.NewValueIsRequiredError("order number")
	}
	if strings.Contains(s, SubOrderNoSeparator) || strings.ContainsAny(s, " \t\r\n") {
		return OrderNo{}, errs.NewValueIsInvalidErrorWithCause(
			"order number",
			fmt.Errorf("%q must not contain %q or whitespace", s, SubOrderNoSeparator),
		)
	}
	return OrderNo{value: s}, nil
}

// Child derives the sub order number of the line at the zero-based index.
// The result depends only on the parent and the index, so re-deriving it
// always yields the stored value.
func (n OrderNo) Child(index int) (SubOrderNo, error) {
	if err := n.Validate(); err != nil {
		return SubOrderNo{}, err
	}
	if index < 0 {
		return SubOrderNo{}, errs.NewValueIsOutOfRangeError("line index", index, 0, "unbounded")
	}
	return SubOrderNo{parent: n, index: index}, nil
}

// String returns the textual order number.
func (n OrderNo) String() string {
	return n.value
}

// IsEqual reports whether both order numbers hold the same value.
func (n OrderNo) IsEqual(other OrderNo) bool {
	return n.value == other.value
}

// Validate returns ErrOrderNoIsNotConstructed for the zero value.
func (n OrderNo) Validate() error {
	if n.value == "" {
		return ErrOrderNoIsNotConstructed
	}
	return nil
}

// SubOrderNo identifies one order line: unique within its parent and stable
// once assigned.
type SubOrderNo struct {
	parent OrderNo
	index  int
}

// SubOrderNoFromString parses a stored "<parent>_<index>" value.
func SubOrderNoFromString(s string) (SubOrderNo, error) {
	pos := strings.LastIndex(s, SubOrderNoSeparator)
	if pos <= 0 || pos == len(s)-1 {
		return SubOrderNo{}, errs.NewValueIsInvalidErrorWithCause(
			"sub order number",
			fmt.Errorf("%q is not in <order no>%s<index> form", s, SubOrderNoSeparator),
		)
	}

	parent, err := OrderNoFromString(s[:pos])
	if err != nil {
		return SubOrderNo{}, err
	}

	index, err := strconv.Atoi(s[pos+1:])
	if err != nil {
		return SubOrderNo{}, errs.NewValueIsInvalidErrorWithCause("sub order number", err)
	}

	return parent.Child(index)
}

// Parent returns the order number the line belongs to.
func (s SubOrderNo) Parent() OrderNo {
	return s.parent
}

// Index returns the zero-based position of the line in its submission.
func (s SubOrderNo) Index() int {
	return s.index
}

func (s SubOrderNo) String() string {
	if s.parent.value == "" {
		return ""
	}
	return s.parent.value + SubOrderNoSeparator + strconv.Itoa(s.index)
}

// IsEqual reports whether both sub order numbers are the same.
func (s SubOrderNo) IsEqual(other SubOrderNo) bool {
	return s.parent.IsEqual(other.parent) && s.index == other.index
}

// Validate returns ErrSubOrderNoIsNotConstructed for the zero value.
func (s SubOrderNo) Validate() error {
	if s.parent.Validate() != nil {
		return ErrSubOrderNoIsNotConstructed
	}
	return nil
}
