package floosak

// RequestKeyRequest asks the API to send a login OTP to the merchant phone.
type RequestKeyRequest struct {
	Phone     string `json:"phone"`
	ShortCode string `json:"short_code"`
}

// RequestKeyResponse carries the identifier of the pending key request.
type RequestKeyResponse struct {
	RequestID int64 `json:"request_id"`
}

// VerifyKeyRequest submits the OTP for a pending key request.
type VerifyKeyRequest struct {
	RequestID int64  `json:"request_id"`
	OTP       string `json:"otp"`
}

// VerifyKeyResponse is the merchant account record returned on OTP
// verification. Key is the bearer token for subsequent requests; it is empty
// when the server withholds one.
type VerifyKeyResponse struct {
	Key       string `json:"key"`
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	ShortCode string `json:"short_code"`
	WalletID  int64  `json:"wallet_id"`
}

// PurchaseRequestPayload initiates a P2MCL payment from a customer wallet.
// RequestID is a merchant-chosen reference for reconciliation.
type PurchaseRequestPayload struct {
	SourceWalletID int64  `json:"source_wallet_id"`
	RequestID      string `json:"request_id"`
	TargetPhone    string `json:"target_phone"`
	Amount         int64  `json:"amount"`
	Purpose        string `json:"purpose"`
}

// Purchase is a payment awaiting customer OTP confirmation.
type Purchase struct {
	ID             int64  `json:"id"`
	RequestID      string `json:"request_id"`
	SourceWalletID int64  `json:"source_wallet_id"`
	TargetPhone    string `json:"target_phone"`
	Amount         int64  `json:"amount"`
	Purpose        string `json:"purpose"`
	State          string `json:"state"`
	CreatedAt      string `json:"created_at"`
}

// PurchaseConfirmPayload completes a pending purchase with the customer OTP.
type PurchaseConfirmPayload struct {
	PurchaseID int64  `json:"purchase_id"`
	OTP        string `json:"otp"`
}

// Transaction is a settled payment.
type Transaction struct {
	ID            int64  `json:"id"`
	TransactionID string `json:"transaction_id"`
	PurchaseID    int64  `json:"purchase_id"`
	Amount        int64  `json:"amount"`
	State         string `json:"state"`
	CreatedAt     string `json:"created_at"`
}

// RefundPayload reverses a settled transaction. RequestID is a
// merchant-chosen reference for the refund itself.
type RefundPayload struct {
	TransactionID string `json:"transaction_id"`
	RequestID     string `json:"request_id"`
	Amount        int64  `json:"amount"`
}

// RefundResponse reports the outcome of a refund.
type RefundResponse struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	TransactionID string `json:"transaction_id"`
	Amount        int64  `json:"amount"`
}

// The purchase endpoints wrap their records in a data envelope; the refund
// endpoint does not.
type purchaseEnvelope struct {
	Data Purchase `json:"data"`
}

type transactionEnvelope struct {
	Data Transaction `json:"data"`
}
