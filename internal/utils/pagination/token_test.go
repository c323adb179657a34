package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeLedgerToken(t *testing.T) {
	date := time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC)

	token := EncodeLedgerToken(date, 1234)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedDate, decodedID, err := DecodeLedgerToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, date, decodedDate, "Date should match after decode")
	assert.Equal(t, int64(1234), decodedID, "ID should match after decode")
}

func TestDecodeLedgerTokenError(t *testing.T) {
	_, _, err := DecodeLedgerToken("this is not base64!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	noSeparator := base64.URLEncoding.EncodeToString([]byte("2025-05-15"))
	_, _, err = DecodeLedgerToken(noSeparator)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	badDate := base64.URLEncoding.EncodeToString([]byte("notadate|12"))
	_, _, err = DecodeLedgerToken(badDate)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "date parse")

	badID := base64.URLEncoding.EncodeToString([]byte("2025-05-15|-3"))
	_, _, err = DecodeLedgerToken(badID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "id parse")
}

func TestEncodeDecodeIDToken(t *testing.T) {
	id, err := DecodeIDToken(EncodeIDToken(987654321))
	assert.NoError(t, err)
	assert.Equal(t, int64(987654321), id)

	_, err = DecodeIDToken(base64.URLEncoding.EncodeToString([]byte("abc")))
	assert.Error(t, err)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 0, TotalPages(5, 0))
}
