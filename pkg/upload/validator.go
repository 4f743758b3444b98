package upload

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
)

// MaxResumeSize is the hard cap on resume uploads (5MB)
const MaxResumeSize = 5 << 20

// Result contains the outcome of resume validation
type Result struct {
	Valid        bool   // Whether the file passed all checks
	Extension    string // Detected file extension
	DetectedMIME string // MIME type reported by the client/multipart part
	Error        string // Error message if validation failed
}

// Magic byte signatures for allowed resume types.
// Maps lowercase extension to possible content prefixes.
var magicBytes = map[string][][]byte{
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},                         // %PDF
	".doc":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}}, // OLE Compound Document
	".docx": {{0x50, 0x4B, 0x03, 0x04}},                         // ZIP (PK..)
}

// Allowed resume extensions (strict whitelist)
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// Strict MIME types - application/octet-stream handled separately below
var strictMIMETypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	// ZIP-based documents (DOCX detection fallback)
	"application/zip": true,
}

// ValidateResume performs 4-layer resume validation:
// 1. Size cap (5MB)
// 2. Extension whitelist check
// 3. Magic byte verification (content matches extension)
// 4. MIME type whitelist
func ValidateResume(filename string, data []byte, reportedMIME string) Result {
	result := Result{
		DetectedMIME: reportedMIME,
	}

	if len(data) > MaxResumeSize {
		result.Error = "resume exceeds the 5MB size limit"
		return result
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		result.Error = "resume has no file extension"
		return result
	}
	result.Extension = ext

	if !allowedExtensions[ext] {
		result.Error = "resume type not allowed: " + ext + " (accepted: PDF, DOC, DOCX)"
		return result
	}

	if !validateMagicBytes(ext, data) {
		result.Error = "resume content does not match its extension (potential file spoofing detected)"
		return result
	}

	// Reported MIME is advisory; octet-stream is tolerated only for
	// OLE/ZIP documents whose magic bytes already checked out above.
	mime := normalizeMIME(reportedMIME)
	if mime == "application/octet-stream" || mime == "" {
		if ext != ".doc" && ext != ".docx" {
			result.Error = "resume type could not be determined"
			return result
		}
	} else if !strictMIMETypes[mime] {
		result.Error = "resume MIME type not allowed: " + mime
		return result
	}

	result.Valid = true
	return result
}

// validateMagicBytes checks if file content starts with expected magic bytes
func validateMagicBytes(ext string, data []byte) bool {
	if len(data) < 4 {
		return false // Too small to be a real document
	}

	signatures, ok := magicBytes[ext]
	if !ok {
		return false
	}

	for _, sig := range signatures {
		if bytes.HasPrefix(data, sig) {
			return true
		}
	}

	return false
}

// normalizeMIME strips parameters like "; charset=..." from a Content-Type value
func normalizeMIME(mime string) string {
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = mime[:i]
	}
	return strings.ToLower(strings.TrimSpace(mime))
}

// ValidateExtension checks only the extension (for quick pre-validation)
func ValidateExtension(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return errors.New("resume has no file extension")
	}
	if !allowedExtensions[ext] {
		return errors.New("resume type not allowed: " + ext)
	}
	return nil
}

// AllowedExtensions returns the accepted extensions for error messages
func AllowedExtensions() []string {
	return []string{".pdf", ".doc", ".docx"}
}
