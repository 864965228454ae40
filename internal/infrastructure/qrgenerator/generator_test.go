package qrgenerator_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/domain/qrcode"
	"github.com/VKev/EV-Second-Hand-Battery-Trading-Platform-sub000/internal/infrastructure/qrgenerator"
)

func TestGenerator_PayloadRoundTrip(t *testing.T) {
	gen := qrgenerator.NewGenerator(128)

	payload, err := gen.Payload(qrcode.QRData{
		TransactionID: "tx-1",
		Reference:     "ref-1",
		Partner:       "EVMARKET",
		Amount:        520000,
	})
	require.NoError(t, err)

	var decoded qrcode.QRData
	require.NoError(t, json.Unmarshal([]byte(payload), &decoded))
	assert.Equal(t, "tx-1", decoded.TransactionID)
	assert.Equal(t, int64(520000), decoded.Amount)
}

func TestGenerator_EncodePNG(t *testing.T) {
	gen := qrgenerator.NewGenerator(128)

	png, err := gen.Encode(`{"transaction_id":"tx-1"}`)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))

	_, err = gen.Encode("")
	assert.ErrorIs(t, err, qrgenerator.ErrEmptyPayload)
}
