package intake

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtensionFor(t *testing.T) {
	tests := []struct {
		mime string
		ext  string
	}{
		{"application/pdf", ".pdf"},
		{"application/pdf; charset=binary", ".pdf"},
		{"APPLICATION/PDF", ".pdf"},
		{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", ".docx"},
		{"text/csv", ".csv"},
		{"text/plain", ".txt"},
	}
	for _, tc := range tests {
		ext, err := ExtensionFor(tc.mime)
		require.NoError(t, err, tc.mime)
		assert.Equal(t, tc.ext, ext)
	}

	_, err := ExtensionFor("image/png")
	assert.ErrorIs(t, err, ErrUnsupportedType)
	_, err = ExtensionFor("")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestMIMEForExtension(t *testing.T) {
	mime, err := MIMEForExtension(".pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", mime)

	mime, err = MIMEForExtension(".DOCX")
	require.NoError(t, err)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", mime)

	_, err = MIMEForExtension(".png")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestFormatCapabilities(t *testing.T) {
	assert.True(t, IsOCRCapable(".pdf"))
	assert.False(t, IsOCRCapable(".txt"))
	assert.False(t, IsOCRCapable(".csv"))

	assert.True(t, NeedsConversion(".docx"))
	assert.True(t, NeedsConversion(".xls"))
	assert.False(t, NeedsConversion(".pdf"))
	assert.False(t, NeedsConversion(".txt"))
}

func TestDecodeContent_RawBase64(t *testing.T) {
	payload := []byte("%PDF-1.7 fake")
	data, declared, err := DecodeContent(base64.StdEncoding.EncodeToString(payload))
	require.NoError(t, err)
	assert.Equal(t, payload, data)
	assert.Empty(t, declared)
}

func TestDecodeContent_DataURL(t *testing.T) {
	payload := []byte("hello,world")
	url := "data:text/csv;base64," + base64.StdEncoding.EncodeToString(payload)
	data, declared, err := DecodeContent(url)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
	assert.Equal(t, "text/csv", declared)
}

func TestDecodeContent_Malformed(t *testing.T) {
	_, _, err := DecodeContent("data:application/pdf;base64")
	assert.Error(t, err, "data URL without comma")

	_, _, err = DecodeContent("!!not-base64!!")
	assert.Error(t, err)
}
