package entities

type PaymentMethod string

const (
	PaymentCreditCard   PaymentMethod = "credit_card"
	PaymentPaypal       PaymentMethod = "paypal"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
)

var PaymentMethods = []PaymentMethod{PaymentCreditCard, PaymentPaypal, PaymentBankTransfer}

type PaymentStatus string

const (
	PaymentSucceeded PaymentStatus = "succeeded"
	PaymentFailed    PaymentStatus = "failed"
	PaymentPending   PaymentStatus = "pending"
)

var PaymentStatuses = []PaymentStatus{PaymentSucceeded, PaymentFailed, PaymentPending}

// Payment.Amount é copiado do Order.Total referenciado.
type Payment struct {
	ID            int           `json:"id" yaml:"id" bson:"id"`
	OrderID       int           `json:"orderId" yaml:"orderId" bson:"orderId"`
	Amount        float64       `json:"amount" yaml:"amount" bson:"amount"`
	Method        PaymentMethod `json:"method" yaml:"method" bson:"method"`
	Status        PaymentStatus `json:"status" yaml:"status" bson:"status"`
	TransactionID string        `json:"transactionId" yaml:"transactionId" bson:"transactionId"`
	CreatedAt     string        `json:"createdAt" yaml:"createdAt" bson:"createdAt"`
}

func (p Payment) RecordID() int { return p.ID }
