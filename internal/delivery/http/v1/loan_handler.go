package v1

import (
	"net/http"

	"github.com/YashPro8158/credifybackend/internal/delivery/http/response"
	"github.com/YashPro8158/credifybackend/internal/domain"
	"github.com/YashPro8158/credifybackend/pkg/apperror"
	"github.com/YashPro8158/credifybackend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type LoanHandler struct {
	loanUC domain.LoanUsecase
}

// NewLoanHandler registers the loan application routes (public)
func NewLoanHandler(public *gin.RouterGroup, loanUC domain.LoanUsecase) {
	handler := &LoanHandler{
		loanUC: loanUC,
	}

	public.POST("/apply", handler.SubmitApplication)
}

// SubmitApplication godoc
// @Summary      Submit Loan Application
// @Description  Submit a loan application. The notification is queued for background delivery; the response does not wait for the mail provider.
// @Tags         loan
// @Accept       json
// @Produce      json
// @Param        application  body      domain.LoanApplicationRequest  true  "Loan Application Data"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /apply [post]
func (h *LoanHandler) SubmitApplication(c *gin.Context) {
	var req domain.LoanApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.ValidationFailed(validation.FormatValidationErrors(err)))
		return
	}

	if err := h.loanUC.SubmitApplication(c.Request.Context(), &req); err != nil {
		c.Error(apperror.New(http.StatusInternalServerError, "Failed to submit application. Please try again later.", err))
		return
	}

	response.Success(c, http.StatusOK, "Your application has been received!", nil)
}
