package order

import (
	"agritrade/internal/pkg/errs"
)

// Type classifies a trade order from the creator's point of view:
// a Buy order requests a commodity, a Sell order offers one.
type Type int

const (
	// TypeUnknown represents an invalid or undefined order type.
	TypeUnknown Type = iota

	// TypeBuy is an order created by an organization that wants to purchase.
	TypeBuy

	// TypeSell is an order created by an organization that wants to sell.
	TypeSell
)

// getTypeStrings returns a map of Type values to their wire representations.
func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeBuy:  "BUY",
		TypeSell: "SELL",
	}
}

// TypeFromString parses a wire representation ("BUY" or "SELL") into a Type.
func TypeFromString(s string) (Type, error) {
	for t, str := range getTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidError("order type")
}

// Validate checks if the Type value is valid.
func (t Type) Validate() error {
	if _, ok := getTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidError("order type")
	}
	return nil
}

// String returns the wire representation of the type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}
