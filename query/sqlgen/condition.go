package sqlgen

import (
	"fmt"
	"strings"
)

// Connector joins a condition to the one before it.
type Connector string

// Connector values. The first condition in a list renders none; appended
// conditions default to AND.
const (
	ConnectorNone Connector = ""
	ConnectorAnd  Connector = "AND"
	ConnectorOr   Connector = "OR"
)

// Condition is one WHERE predicate unit. The set of variants is closed:
// Simple, Raw, In, Between and Null are the only implementations, so a type
// switch over them is exhaustive. A condition declares how many values it
// contributes and in what order; picking placeholder names is the binder's
// job.
type Condition interface {
	// Fragment renders the predicate with placeholders already bound.
	Fragment(b *Binder) (string, error)
	// Connective reports how the condition attaches to the previous one.
	Connective() Connector

	isCondition()
}

// SimpleCondition is a single "column op value" comparison contributing
// exactly one value.
type SimpleCondition struct {
	Column    string
	Operator  string
	Value     interface{}
	Connector Connector
}

func (c SimpleCondition) Fragment(b *Binder) (string, error) {
	if err := ValidateIdentifier(c.Column); err != nil {
		return "", err
	}
	op := strings.TrimSpace(c.Operator)
	if op == "" {
		op = "="
	}
	return fmt.Sprintf("%s %s %s", c.Column, op, b.Bind(c.Value)), nil
}

// RawCondition is the escape hatch: caller-supplied SQL rendered verbatim.
// Values are bound positionally; each "?" marker in the text is substituted
// left to right with the assigned placeholder. Text without markers is
// emitted as-is, so anything beyond the statement-terminator check is the
// caller's responsibility.
type RawCondition struct {
	Text      string
	Values    []interface{}
	Connector Connector
}

func (c RawCondition) Fragment(b *Binder) (string, error) {
	if err := ValidateRawFragment(c.Text); err != nil {
		return "", err
	}
	text := c.Text
	for _, v := range c.Values {
		text = strings.Replace(text, "?", b.Bind(v), 1)
	}
	return text, nil
}

// InCondition renders "column IN (...)" or "column NOT IN (...)",
// contributing one value per element.
type InCondition struct {
	Column    string
	Not       bool
	Values    []interface{}
	Connector Connector
}

func (c InCondition) Fragment(b *Binder) (string, error) {
	if err := ValidateIdentifier(c.Column); err != nil {
		return "", err
	}
	if len(c.Values) == 0 {
		return "", fmt.Errorf("%w: column %s", ErrInvalidInValues, c.Column)
	}
	placeholders := make([]string, len(c.Values))
	for i, v := range c.Values {
		placeholders[i] = b.Bind(v)
	}
	op := "IN"
	if c.Not {
		op = "NOT IN"
	}
	return fmt.Sprintf("%s %s (%s)", c.Column, op, strings.Join(placeholders, ", ")), nil
}

// BetweenCondition contributes exactly two values in (low, high) order.
type BetweenCondition struct {
	Column    string
	Low       interface{}
	High      interface{}
	Connector Connector
}

func (c BetweenCondition) Fragment(b *Binder) (string, error) {
	if err := ValidateIdentifier(c.Column); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s BETWEEN %s AND %s", c.Column, b.Bind(c.Low), b.Bind(c.High)), nil
}

// NullCondition renders "column IS [NOT] NULL" and contributes no values.
type NullCondition struct {
	Column    string
	Not       bool
	Connector Connector
}

func (c NullCondition) Fragment(b *Binder) (string, error) {
	if err := ValidateIdentifier(c.Column); err != nil {
		return "", err
	}
	if c.Not {
		return c.Column + " IS NOT NULL", nil
	}
	return c.Column + " IS NULL", nil
}

func (c SimpleCondition) Connective() Connector  { return c.Connector }
func (c RawCondition) Connective() Connector     { return c.Connector }
func (c InCondition) Connective() Connector      { return c.Connector }
func (c BetweenCondition) Connective() Connector { return c.Connector }
func (c NullCondition) Connective() Connector    { return c.Connector }

func (SimpleCondition) isCondition()  {}
func (RawCondition) isCondition()     {}
func (InCondition) isCondition()      {}
func (BetweenCondition) isCondition() {}
func (NullCondition) isCondition()    {}

// RenderConditions renders a condition list in insertion order, joining each
// condition to the previous one with its connector (AND when unset).
func RenderConditions(conds []Condition, b *Binder) (string, error) {
	var sb strings.Builder
	for i, cond := range conds {
		frag, err := cond.Fragment(b)
		if err != nil {
			return "", err
		}
		if i > 0 {
			conn := cond.Connective()
			if conn == ConnectorNone {
				conn = ConnectorAnd
			}
			sb.WriteString(" " + string(conn) + " ")
		}
		sb.WriteString(frag)
	}
	return sb.String(), nil
}
