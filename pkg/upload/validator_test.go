package upload_test

import (
	"testing"

	"github.com/YashPro8158/credifybackend/pkg/upload"

	"github.com/stretchr/testify/assert"
)

func TestValidateResume(t *testing.T) {
	pdf := []byte("%PDF-1.7 some document body")
	docx := []byte{0x50, 0x4B, 0x03, 0x04, 0x14, 0x00, 0x06, 0x00}
	doc := []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1, 0x00}

	t.Run("Accepts a well-formed PDF", func(t *testing.T) {
		result := upload.ValidateResume("cv.pdf", pdf, "application/pdf")
		assert.True(t, result.Valid)
		assert.Equal(t, ".pdf", result.Extension)
	})

	t.Run("Accepts DOC and DOCX", func(t *testing.T) {
		assert.True(t, upload.ValidateResume("cv.doc", doc, "application/msword").Valid)
		assert.True(t, upload.ValidateResume("cv.docx", docx,
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document").Valid)
	})

	t.Run("Tolerates octet-stream only for OLE/ZIP documents", func(t *testing.T) {
		assert.True(t, upload.ValidateResume("cv.docx", docx, "application/octet-stream").Valid)
		assert.False(t, upload.ValidateResume("cv.pdf", pdf, "application/octet-stream").Valid)
	})

	t.Run("Rejects disallowed extensions", func(t *testing.T) {
		result := upload.ValidateResume("script.exe", []byte("MZ\x90\x00"), "application/x-msdownload")
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "not allowed")
	})

	t.Run("Rejects spoofed content behind a PDF extension", func(t *testing.T) {
		result := upload.ValidateResume("cv.pdf", docx, "application/pdf")
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "does not match")
	})

	t.Run("Rejects oversized files", func(t *testing.T) {
		big := make([]byte, upload.MaxResumeSize+1)
		copy(big, "%PDF")
		result := upload.ValidateResume("cv.pdf", big, "application/pdf")
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "5MB")
	})

	t.Run("Rejects missing extension and tiny files", func(t *testing.T) {
		assert.False(t, upload.ValidateResume("resume", pdf, "application/pdf").Valid)
		assert.False(t, upload.ValidateResume("cv.pdf", []byte("%P"), "application/pdf").Valid)
	})

	t.Run("Ignores MIME parameters", func(t *testing.T) {
		result := upload.ValidateResume("cv.pdf", pdf, "application/pdf; charset=binary")
		assert.True(t, result.Valid)
	})
}

func TestValidateExtension(t *testing.T) {
	assert.NoError(t, upload.ValidateExtension("cv.PDF"))
	assert.Error(t, upload.ValidateExtension("cv.png"))
	assert.Error(t, upload.ValidateExtension("cv"))
}
