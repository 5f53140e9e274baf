package enum

import "encoding/json"

// PaymentMethod represents how the customer pays
type PaymentMethod int

const (
	PaymentMethodCash PaymentMethod = iota
	PaymentMethodCreditCard
	PaymentMethodDebitCard
	PaymentMethodUPI
	PaymentMethodBankTransfer
)

var paymentMethodNames = [...]string{"Cash", "Credit Card", "Debit Card", "UPI", "Bank Transfer"}

func (m PaymentMethod) String() string {
	if int(m) < 0 || int(m) >= len(paymentMethodNames) {
		return "Cash"
	}
	return paymentMethodNames[m]
}

// IsValid reports whether m is one of the supported payment methods
func (m PaymentMethod) IsValid() bool {
	return int(m) >= 0 && int(m) < len(paymentMethodNames)
}

// ParsePaymentMethod converts a display name into a PaymentMethod.
// Unknown names fall back to Cash.
func ParsePaymentMethod(s string) PaymentMethod {
	for i, name := range paymentMethodNames {
		if name == s {
			return PaymentMethod(i)
		}
	}
	return PaymentMethodCash
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PaymentMethod(i)
		return nil
	}
	*m = ParsePaymentMethod(str)
	return nil
}
