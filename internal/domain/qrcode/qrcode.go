package qrcode

//go:generate mockgen -source=qrcode.go -destination=mocks/qrcode.go -package=mocks

// QRData is the document a pending payment QR code carries.
type QRData struct {
	TransactionID string `json:"transaction_id"`
	Reference     string `json:"reference"`
	Partner       string `json:"partner"`
	Amount        int64  `json:"amount"`
}

type Generator interface {
	Payload(data QRData) (string, error)
	Encode(payload string) ([]byte, error)
}
