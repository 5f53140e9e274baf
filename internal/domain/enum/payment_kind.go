package enum

import "encoding/json"

// PaymentKind distinguishes a full payment from an advance (partial) payment
type PaymentKind int

const (
	PaymentKindFull PaymentKind = iota
	PaymentKindAdvance
)

func (k PaymentKind) String() string {
	names := [...]string{"Full", "Advance"}
	if int(k) < 0 || int(k) >= len(names) {
		return "Full"
	}
	return names[k]
}

func (k PaymentKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *PaymentKind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*k = PaymentKind(i)
		return nil
	}
	switch str {
	case "Advance":
		*k = PaymentKindAdvance
	default:
		*k = PaymentKindFull
	}
	return nil
}
