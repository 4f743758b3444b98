package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"sync"
	"testing"

	"github.com/YashPro8158/credifybackend/config"
	"github.com/YashPro8158/credifybackend/internal/delivery/http/response"
	v1 "github.com/YashPro8158/credifybackend/internal/delivery/http/v1"
	"github.com/YashPro8158/credifybackend/internal/usecase"
	"github.com/YashPro8158/credifybackend/pkg/logger"
	"github.com/YashPro8158/credifybackend/pkg/mailer"
	"github.com/YashPro8158/credifybackend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init()
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}
	m.Run()
}

// fakeSender counts dispatches and optionally fails every send
type fakeSender struct {
	mu    sync.Mutex
	count int
	fail  bool
	last  *mailer.Message
}

func (f *fakeSender) Send(ctx context.Context, msg *mailer.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count++
	f.last = msg
	if f.fail {
		return errors.New("simulated transport failure")
	}
	return nil
}

func (f *fakeSender) sendCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.count
}

func testConfig(resumeRequired bool) *config.Config {
	return &config.Config{
		Port:                     "8080",
		FrontendURL:              "http://localhost:3000",
		MailTransport:            config.TransportSMTP,
		ResumeRequired:           resumeRequired,
		MailQueueSize:            16,
		RateLimitWindowSeconds:   60,
		RateLimitGlobalThreshold: 100000,
		RateLimitSubmitThreshold: 100000,
	}
}

func newTestRouter(sender mailer.Sender, resumeRequired bool) (*gin.Engine, *mailer.Dispatcher) {
	dispatcher := mailer.NewDispatcher(sender, 16, logger.Log)
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: usecase.NewContactUsecase(sender),
		CareerUC:  usecase.NewCareerUsecase(sender),
		LoanUC:    usecase.NewLoanUsecase(dispatcher),
		Config:    testConfig(resumeRequired),
	})
	return router, dispatcher
}

func doJSON(t *testing.T, router *gin.Engine, path string, body string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

// errorFields extracts the "field" values from a validation error payload
func errorFields(t *testing.T, resp response.Response) []string {
	t.Helper()
	items, ok := resp.Error.([]interface{})
	require.True(t, ok, "expected errors array, got %T", resp.Error)

	var fields []string
	for _, it := range items {
		entry, ok := it.(map[string]interface{})
		require.True(t, ok)
		fields = append(fields, entry["field"].(string))
	}
	return fields
}

func TestLivenessBanner(t *testing.T) {
	sender := &fakeSender{}
	router, dispatcher := newTestRouter(sender, false)
	defer dispatcher.Close()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Credify backend is running", w.Body.String())
}

func TestHealthEndpoint(t *testing.T) {
	sender := &fakeSender{}
	router, dispatcher := newTestRouter(sender, false)
	defer dispatcher.Close()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestContactEndpoint(t *testing.T) {
	t.Run("Valid submission returns 200 and dispatches once", func(t *testing.T) {
		sender := &fakeSender{}
		router, dispatcher := newTestRouter(sender, false)
		defer dispatcher.Close()

		w, resp := doJSON(t, router, "/api/contact",
			`{"name":"Jo","email":"a@b.com","loanType":"home","message":"hello!"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, resp.Success)
		assert.Equal(t, 1, sender.sendCount())
	})

	t.Run("Missing fields return 400 naming every violation, no dispatch", func(t *testing.T) {
		sender := &fakeSender{}
		router, dispatcher := newTestRouter(sender, false)
		defer dispatcher.Close()

		w, resp := doJSON(t, router, "/api/contact", `{"name":"J"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, resp.Success)
		fields := errorFields(t, resp)
		assert.ElementsMatch(t, []string{"name", "email", "loanType", "message"}, fields)
		assert.Equal(t, 0, sender.sendCount())
	})

	t.Run("Malformed email returns 400", func(t *testing.T) {
		sender := &fakeSender{}
		router, dispatcher := newTestRouter(sender, false)
		defer dispatcher.Close()

		w, resp := doJSON(t, router, "/api/contact",
			`{"name":"Jo","email":"not-an-email","loanType":"home","message":"hello!"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, errorFields(t, resp), "email")
		assert.Equal(t, 0, sender.sendCount())
	})

	t.Run("Transport failure surfaces as 500", func(t *testing.T) {
		sender := &fakeSender{fail: true}
		router, dispatcher := newTestRouter(sender, false)
		defer dispatcher.Close()

		w, resp := doJSON(t, router, "/api/contact",
			`{"name":"Jo","email":"a@b.com","loanType":"home","message":"hello!"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.False(t, resp.Success)
	})
}

func TestLoanEndpoint(t *testing.T) {
	valid := `{"referenceId":"CRD-7","loanType":"home","fullName":"Jane Doe","mobile":"9876543210","email":"jane@example.com","city":"Pune"}`

	t.Run("Valid application returns 200", func(t *testing.T) {
		sender := &fakeSender{}
		router, dispatcher := newTestRouter(sender, false)

		w, resp := doJSON(t, router, "/api/apply", valid)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, resp.Success)

		dispatcher.Close()
		assert.Equal(t, 1, sender.sendCount())
	})

	t.Run("Fire-and-forget returns 200 even when the transport fails", func(t *testing.T) {
		sender := &fakeSender{fail: true}
		router, dispatcher := newTestRouter(sender, false)

		w, resp := doJSON(t, router, "/api/apply", valid)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, resp.Success)
		dispatcher.Close()
	})

	t.Run("Missing required fields return 400, no dispatch", func(t *testing.T) {
		sender := &fakeSender{}
		router, dispatcher := newTestRouter(sender, false)

		w, resp := doJSON(t, router, "/api/apply", `{"referenceId":"CRD-7","city":"Pune"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		fields := errorFields(t, resp)
		assert.ElementsMatch(t, []string{"loanType", "fullName", "mobile", "email"}, fields)

		dispatcher.Close()
		assert.Equal(t, 0, sender.sendCount())
	})
}

// multipart helpers

func writeField(t *testing.T, w *multipart.Writer, name, value string) {
	t.Helper()
	require.NoError(t, w.WriteField(name, value))
}

func writeFile(t *testing.T, w *multipart.Writer, field, filename, contentType string, data []byte) {
	t.Helper()
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
}

func careerForm(t *testing.T) (*bytes.Buffer, *multipart.Writer) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	writeField(t, w, "fullName", "Jane Doe")
	writeField(t, w, "email", "jane@example.com")
	writeField(t, w, "phone", "+911234567890")
	writeField(t, w, "role", "Loan Officer")
	writeField(t, w, "experience", "5 years")
	return &buf, w
}

func doMultipart(t *testing.T, router *gin.Engine, buf *bytes.Buffer, w *multipart.Writer) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()
	require.NoError(t, w.Close())
	req := httptest.NewRequest(http.MethodPost, "/api/career", buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestCareerEndpoint(t *testing.T) {
	t.Run("Valid application with PDF resume returns 200", func(t *testing.T) {
		sender := &fakeSender{}
		router, dispatcher := newTestRouter(sender, false)
		defer dispatcher.Close()

		buf, w := careerForm(t)
		writeFile(t, w, "resume", "jane-cv.pdf", "application/pdf", []byte("%PDF-1.7 fake resume content"))

		rec, resp := doMultipart(t, router, buf, w)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, resp.Success)
		assert.Equal(t, 1, sender.sendCount())
		assert.Len(t, sender.last.Attachments, 1)
	})

	t.Run("Missing resume is accepted when not required", func(t *testing.T) {
		sender := &fakeSender{}
		router, dispatcher := newTestRouter(sender, false)
		defer dispatcher.Close()

		buf, w := careerForm(t)
		rec, resp := doMultipart(t, router, buf, w)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, resp.Success)
		assert.Empty(t, sender.last.Attachments)
	})

	t.Run("Missing resume is rejected when required", func(t *testing.T) {
		sender := &fakeSender{}
		router, dispatcher := newTestRouter(sender, true)
		defer dispatcher.Close()

		buf, w := careerForm(t)
		rec, resp := doMultipart(t, router, buf, w)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, errorFields(t, resp), "resume")
		assert.Equal(t, 0, sender.sendCount())
	})

	t.Run("Oversized resume is rejected before dispatch", func(t *testing.T) {
		sender := &fakeSender{}
		router, dispatcher := newTestRouter(sender, false)
		defer dispatcher.Close()

		big := make([]byte, 5<<20+1)
		copy(big, "%PDF")

		buf, w := careerForm(t)
		writeFile(t, w, "resume", "huge.pdf", "application/pdf", big)

		rec, resp := doMultipart(t, router, buf, w)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, errorFields(t, resp), "resume")
		assert.Equal(t, 0, sender.sendCount())
	})

	t.Run("Disallowed file type is rejected before dispatch", func(t *testing.T) {
		sender := &fakeSender{}
		router, dispatcher := newTestRouter(sender, false)
		defer dispatcher.Close()

		buf, w := careerForm(t)
		writeFile(t, w, "resume", "script.exe", "application/x-msdownload", []byte("MZ\x90\x00 not a resume"))

		rec, resp := doMultipart(t, router, buf, w)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, errorFields(t, resp), "resume")
		assert.Equal(t, 0, sender.sendCount())
	})

	t.Run("Missing required form fields return 400", func(t *testing.T) {
		sender := &fakeSender{}
		router, dispatcher := newTestRouter(sender, false)
		defer dispatcher.Close()

		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		writeField(t, w, "fullName", "Jane Doe")

		rec, resp := doMultipart(t, router, &buf, w)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		fields := errorFields(t, resp)
		assert.ElementsMatch(t, []string{"email", "phone", "role", "experience"}, fields)
		assert.Equal(t, 0, sender.sendCount())
	})
}
