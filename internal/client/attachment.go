package client

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
)

// Attachment is one image selected into a form, kept with the inline
// preview the UI renders while the form is being filled in.
type Attachment struct {
	Field    string
	Filename string
	MIME     string
	Data     []byte
	Preview  string
}

// newAttachment sniffs the MIME type from the content and builds the
// data-URI preview. Decoding the preview yields the original bytes.
func newAttachment(field, filename string, data []byte) Attachment {
	mime := http.DetectContentType(data)
	return Attachment{
		Field:    field,
		Filename: filename,
		MIME:     mime,
		Data:     data,
		Preview:  fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data)),
	}
}

// DecodePreview recovers the original bytes from a data-URI preview.
func DecodePreview(preview string) ([]byte, error) {
	_, payload, ok := strings.Cut(preview, ";base64,")
	if !ok {
		return nil, fmt.Errorf("not a base64 data URI")
	}
	return base64.StdEncoding.DecodeString(payload)
}
