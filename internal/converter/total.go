package converter

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/document-list-report/internal/document"
	"github.com/ginjaninja78/document-list-report/internal/value"
)

var (
	// ErrNotNumeric is returned when a unit_price or quantity cannot be read
	// as a number.
	ErrNotNumeric = errors.New("operand is not numeric")

	// ErrNotList is returned when the items field is not a list.
	ErrNotList = errors.New("items is not a list")
)

var one = decimal.NewFromInt(1)

// CalculateTotal sums unit_price * quantity over every item. A Null items
// field totals zero. The result is exact; nothing is rounded.
func CalculateTotal(items value.Value) (decimal.Decimal, error) {
	switch items.Kind() {
	case value.Null:
		return decimal.Zero, nil
	case value.Array:
	default:
		return decimal.Zero, fmt.Errorf("%w: got %s", ErrNotList, items.Kind())
	}

	total := decimal.Zero
	for i, raw := range items.Elements() {
		sub, err := ItemTotal(document.NewItem(raw))
		if err != nil {
			return decimal.Zero, fmt.Errorf("item %d: %w", i, err)
		}
		total = total.Add(sub)
	}
	return total, nil
}

// ItemTotal returns unit_price * quantity for one item. Missing operands
// count as zero.
func ItemTotal(item document.Item) (decimal.Decimal, error) {
	price, err := operand(item.UnitPrice())
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", document.FieldUnitPrice, err)
	}
	quantity, err := operand(item.Quantity())
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", document.FieldQuantity, err)
	}
	return price.Mul(quantity), nil
}

func operand(v value.Value) (decimal.Decimal, error) {
	switch v.Kind() {
	case value.Null:
		return decimal.Zero, nil
	case value.Bool:
		if b, _ := v.Boolean(); b {
			return one, nil
		}
		return decimal.Zero, nil
	case value.Number, value.String:
		d, err := v.Numeric()
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %q", ErrNotNumeric, v.Text())
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("%w: got %s", ErrNotNumeric, v.Kind())
	}
}
