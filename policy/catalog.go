package policy

import "fmt"

// Condition is a product condition the merchant requires for a return or exchange.
type Condition int

const (
	OriginalPackaging Condition = iota
	NoSignsOfUse
	WithInvoice
	WithTagsAndAccessories
	NoWashOrOdor
)

var conditionLabels = [...]string{
	OriginalPackaging:      "Produto na embalagem original",
	NoSignsOfUse:           "Sem sinais de uso ou danos",
	WithInvoice:            "Acompanhado da nota fiscal",
	WithTagsAndAccessories: "Com todas as etiquetas e acessórios",
	NoWashOrOdor:           "Sem sinais de lavagem, odores ou manchas",
}

// Conditions returns the condition catalog in display order.
func Conditions() []Condition {
	out := make([]Condition, len(conditionLabels))
	for i := range conditionLabels {
		out[i] = Condition(i)
	}
	return out
}

func (c Condition) String() string {
	if c < 0 || int(c) >= len(conditionLabels) {
		return fmt.Sprintf("Condition(%d)", int(c))
	}
	return conditionLabels[c]
}

// ParseCondition maps a catalog label back to its Condition.
func ParseCondition(label string) (Condition, error) {
	for i, l := range conditionLabels {
		if l == label {
			return Condition(i), nil
		}
	}
	return 0, fmt.Errorf("unknown condition %q", label)
}

// RefundOption is a restitution option offered once a return is approved.
type RefundOption int

const (
	FullRefund RefundOption = iota
	StoreCredit
	ExchangeSameValue
	ExchangeSizeOrColor
)

var refundLabels = [...]string{
	FullRefund:          "Reembolso total do valor pago",
	StoreCredit:         "Crédito na loja para futuras compras",
	ExchangeSameValue:   "Troca por outro produto de mesmo valor",
	ExchangeSizeOrColor: "Troca pelo mesmo produto em outro tamanho ou cor",
}

// RefundOptions returns the refund option catalog in display order.
func RefundOptions() []RefundOption {
	out := make([]RefundOption, len(refundLabels))
	for i := range refundLabels {
		out[i] = RefundOption(i)
	}
	return out
}

func (o RefundOption) String() string {
	if o < 0 || int(o) >= len(refundLabels) {
		return fmt.Sprintf("RefundOption(%d)", int(o))
	}
	return refundLabels[o]
}

// ParseRefundOption maps a catalog label back to its RefundOption.
func ParseRefundOption(label string) (RefundOption, error) {
	for i, l := range refundLabels {
		if l == label {
			return RefundOption(i), nil
		}
	}
	return 0, fmt.Errorf("unknown refund option %q", label)
}
