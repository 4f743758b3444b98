package v1

import (
	"io"
	"net/http"

	"github.com/YashPro8158/credifybackend/internal/delivery/http/response"
	"github.com/YashPro8158/credifybackend/internal/domain"
	"github.com/YashPro8158/credifybackend/pkg/apperror"
	"github.com/YashPro8158/credifybackend/pkg/upload"
	"github.com/YashPro8158/credifybackend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type CareerHandler struct {
	careerUC       domain.CareerUsecase
	resumeRequired bool
}

// NewCareerHandler registers the career application routes (public)
func NewCareerHandler(public *gin.RouterGroup, careerUC domain.CareerUsecase, resumeRequired bool) {
	handler := &CareerHandler{
		careerUC:       careerUC,
		resumeRequired: resumeRequired,
	}

	public.POST("/career", handler.SubmitApplication)
}

// SubmitApplication godoc
// @Summary      Submit Career Application
// @Description  Apply for a role via multipart form. An optional "resume" file (PDF/DOC/DOCX, max 5MB) is attached to the notification.
// @Tags         career
// @Accept       multipart/form-data
// @Produce      json
// @Param        fullName    formData  string  true   "Applicant full name"
// @Param        email       formData  string  true   "Applicant email"
// @Param        phone       formData  string  true   "Applicant phone"
// @Param        role        formData  string  true   "Role applied for"
// @Param        experience  formData  string  true   "Years/summary of experience"
// @Param        message     formData  string  false  "Cover message"
// @Param        resume      formData  file    false  "Resume (PDF/DOC/DOCX, max 5MB)"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /career [post]
func (h *CareerHandler) SubmitApplication(c *gin.Context) {
	var req domain.CareerRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Error(apperror.ValidationFailed(validation.FormatValidationErrors(err)))
		return
	}

	resume, fieldErr := h.readResume(c)
	if fieldErr != nil {
		c.Error(apperror.ValidationFailed([]validation.FieldError{*fieldErr}))
		return
	}

	if err := h.careerUC.SubmitApplication(c.Request.Context(), &req, resume); err != nil {
		c.Error(apperror.New(http.StatusInternalServerError, "Failed to submit application. Please try again later.", err))
		return
	}

	response.Success(c, http.StatusOK, "Your application has been submitted successfully!", nil)
}

// readResume extracts and validates the optional resume upload. All
// rejections happen here, before any notification is dispatched.
func (h *CareerHandler) readResume(c *gin.Context) (*domain.ResumeFile, *validation.FieldError) {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		// Missing file is fine unless configuration says otherwise
		if h.resumeRequired {
			return nil, &validation.FieldError{Field: "resume", Message: "resume is required"}
		}
		return nil, nil
	}

	if fileHeader.Size > upload.MaxResumeSize {
		return nil, &validation.FieldError{Field: "resume", Message: "resume exceeds the 5MB size limit"}
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, &validation.FieldError{Field: "resume", Message: "resume could not be read"}
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, upload.MaxResumeSize+1))
	if err != nil {
		return nil, &validation.FieldError{Field: "resume", Message: "resume could not be read"}
	}

	result := upload.ValidateResume(fileHeader.Filename, data, fileHeader.Header.Get("Content-Type"))
	if !result.Valid {
		return nil, &validation.FieldError{Field: "resume", Message: result.Error}
	}

	return &domain.ResumeFile{
		Filename:    fileHeader.Filename,
		ContentType: result.DetectedMIME,
		Size:        int64(len(data)),
		Data:        data,
	}, nil
}
