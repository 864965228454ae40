package qrgenerator

import (
	"encoding/json"
	"errors"

	qr "github.com/skip2/go-qrcode"

	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/qrcode"
)

var ErrEmptyPayload = errors.New("qr payload is empty")

type Generator struct {
	size  int
	level qr.RecoveryLevel
}

func NewGenerator(size int) *Generator {
	return &Generator{size: size, level: qr.Medium}
}

func (g *Generator) Payload(data qrcode.QRData) (string, error) {
	content, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// Encode renders payload as a PNG image.
func (g *Generator) Encode(payload string) ([]byte, error) {
	if payload == "" {
		return nil, ErrEmptyPayload
	}
	return qr.Encode(payload, g.level, g.size)
}
