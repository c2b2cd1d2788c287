package checkout

type BuyerInfo struct {
	Name  string `json:"name" validate:"omitempty,max=128"`
	Email string `json:"email" validate:"omitempty,email"`
}

type CheckoutRequest struct {
	Buyer         BuyerInfo `json:"buyer"`
	PaymentMethod string    `json:"paymentMethod"`
}
