package testing

import (
	"github.com/imamik/surveykit/internal/attachment"
)

const (
	pngSignature = "\x89PNG\r\n\x1a\n"
	gifSignature = "GIF89a"
)

// PNGBytes returns bytes sniffed as image/png. Different payloads produce
// different content digests.
func PNGBytes(payload string) []byte {
	return []byte(pngSignature + payload)
}

// PNG returns an attachment file named name holding PNG bytes.
// It panics if the attachment package rejects the fixture.
func PNG(name, payload string) *attachment.File {
	return mustFile(name, PNGBytes(payload))
}

// GIF returns an attachment file named name holding GIF bytes.
func GIF(name, payload string) *attachment.File {
	return mustFile(name, []byte(gifSignature+payload))
}

func mustFile(name string, data []byte) *attachment.File {
	f, err := attachment.NewFile(name, data)
	if err != nil {
		panic(err)
	}
	return f
}
