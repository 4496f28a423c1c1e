package policy

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Request holds the merchant's answers for a single policy generation.
type Request struct {
	StoreName      string
	ContactEmail   string
	ReturnWindow   int
	ExchangeWindow int
	Conditions     []Condition
	RefundOptions  []RefundOption
}

// Field names accepted by SetField.
const (
	FieldStoreName      = "storeName"
	FieldContactEmail   = "contactEmail"
	FieldReturnWindow   = "returnWindow"
	FieldExchangeWindow = "exchangeWindow"
)

// Group names accepted by Toggle.
const (
	GroupConditions    = "conditions"
	GroupRefundOptions = "refundOptions"
)

var (
	ErrMissingStoreName      = errors.New("informe o nome da loja")
	ErrMissingContactEmail   = errors.New("informe o e-mail de contato")
	ErrInvalidReturnWindow   = errors.New("o prazo de devolução deve ser maior que zero")
	ErrInvalidExchangeWindow = errors.New("o prazo de troca deve ser maior que zero")
)

// DefaultRequest returns a Request with defaults suited to Brazilian stores.
func DefaultRequest() *Request {
	return &Request{
		ReturnWindow:   7,
		ExchangeWindow: 30,
		Conditions:     []Condition{OriginalPackaging, NoSignsOfUse, WithInvoice},
		RefundOptions:  []RefundOption{FullRefund, StoreCredit},
	}
}

// Clone returns a deep copy that shares no slices with r.
func (r *Request) Clone() Request {
	c := *r
	c.Conditions = append([]Condition(nil), r.Conditions...)
	c.RefundOptions = append([]RefundOption(nil), r.RefundOptions...)
	return c
}

// SetField replaces a single field by name. Window values must be integers;
// an empty value clears the window so validation can reject it later.
func (r *Request) SetField(name, value string) error {
	switch name {
	case FieldStoreName:
		r.StoreName = value
	case FieldContactEmail:
		r.ContactEmail = value
	case FieldReturnWindow, FieldExchangeWindow:
		days, err := parseDays(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", name, err)
		}
		if name == FieldReturnWindow {
			r.ReturnWindow = days
		} else {
			r.ExchangeWindow = days
		}
	default:
		return fmt.Errorf("unknown field %q", name)
	}
	return nil
}

func parseDays(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	return strconv.Atoi(value)
}

// Toggle flips membership of the catalog entry labelled label in the named group.
func (r *Request) Toggle(group, label string) error {
	switch group {
	case GroupConditions:
		c, err := ParseCondition(label)
		if err != nil {
			return err
		}
		r.ToggleCondition(c)
	case GroupRefundOptions:
		o, err := ParseRefundOption(label)
		if err != nil {
			return err
		}
		r.ToggleRefundOption(o)
	default:
		return fmt.Errorf("unknown group %q", group)
	}
	return nil
}

// ToggleCondition removes c if selected, otherwise appends it.
func (r *Request) ToggleCondition(c Condition) {
	r.Conditions = toggle(r.Conditions, c)
}

// ToggleRefundOption removes o if selected, otherwise appends it.
func (r *Request) ToggleRefundOption(o RefundOption) {
	r.RefundOptions = toggle(r.RefundOptions, o)
}

func toggle[T comparable](set []T, v T) []T {
	for i, cur := range set {
		if cur == v {
			out := make([]T, 0, len(set)-1)
			out = append(out, set[:i]...)
			return append(out, set[i+1:]...)
		}
	}
	return append(set, v)
}

// HasCondition reports whether c is selected.
func (r *Request) HasCondition(c Condition) bool {
	for _, cur := range r.Conditions {
		if cur == c {
			return true
		}
	}
	return false
}

// HasRefundOption reports whether o is selected.
func (r *Request) HasRefundOption(o RefundOption) bool {
	for _, cur := range r.RefundOptions {
		if cur == o {
			return true
		}
	}
	return false
}

// SortedConditions returns the selected conditions in catalog order.
func (r *Request) SortedConditions() []Condition {
	out := append([]Condition(nil), r.Conditions...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SortedRefundOptions returns the selected refund options in catalog order.
func (r *Request) SortedRefundOptions() []RefundOption {
	out := append([]RefundOption(nil), r.RefundOptions...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Validate checks that every required field is present.
func (r *Request) Validate() error {
	switch {
	case strings.TrimSpace(r.StoreName) == "":
		return ErrMissingStoreName
	case strings.TrimSpace(r.ContactEmail) == "":
		return ErrMissingContactEmail
	case r.ReturnWindow <= 0:
		return ErrInvalidReturnWindow
	case r.ExchangeWindow <= 0:
		return ErrInvalidExchangeWindow
	}
	return nil
}
