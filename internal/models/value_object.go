package models

import "strings"

// ValueObjectKind selects the shape of a generated value object.
type ValueObjectKind string

// Value object kinds
const (
	ValueObjectSimple         ValueObjectKind = "simple"
	ValueObjectEmail          ValueObjectKind = "email"
	ValueObjectPercent        ValueObjectKind = "percent"
	ValueObjectMonetaryAmount ValueObjectKind = "monetaryamount"
)

// ValueObject is a value object definition referenced by entity properties.
type ValueObject struct {
	Name   string // "MonetaryAmount"
	Plural string // "MonetaryAmounts"
	Kind   ValueObjectKind
	Type   string // wrapped primitive for simple value objects
}

// BaseValueObjects are materialized in every project that uses value objects.
func BaseValueObjects() []ValueObject {
	return []ValueObject{
		{Name: "Email", Plural: "Emails", Kind: ValueObjectEmail, Type: "string"},
		{Name: "Percent", Plural: "Percentages", Kind: ValueObjectPercent, Type: "decimal"},
		{Name: "MonetaryAmount", Plural: "MonetaryAmounts", Kind: ValueObjectMonetaryAmount, Type: "decimal"},
	}
}

// ValueObjectKindFor infers the kind from a value object name.
func ValueObjectKindFor(name string) ValueObjectKind {
	switch strings.ToLower(name) {
	case "email":
		return ValueObjectEmail
	case "percent", "percentage":
		return ValueObjectPercent
	case "monetaryamount", "money":
		return ValueObjectMonetaryAmount
	default:
		return ValueObjectSimple
	}
}

// ValueMember is the member holding the wrapped primitive.
func (v ValueObject) ValueMember() string {
	if v.Kind == ValueObjectMonetaryAmount {
		return "Amount"
	}
	return "Value"
}
