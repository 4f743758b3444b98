package v1

import (
	"net/http"

	"github.com/YashPro8158/credifybackend/internal/delivery/http/response"
	"github.com/YashPro8158/credifybackend/internal/domain"
	"github.com/YashPro8158/credifybackend/pkg/apperror"
	"github.com/YashPro8158/credifybackend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Send a message through the contact form. Delivery is synchronous; a transport failure is reported to the caller.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.ValidationFailed(validation.FormatValidationErrors(err)))
		return
	}

	if err := h.contactUC.SubmitContact(c.Request.Context(), &req); err != nil {
		c.Error(apperror.New(http.StatusInternalServerError, "Failed to send message. Please try again later.", err))
		return
	}

	response.Success(c, http.StatusOK, "Your message has been sent successfully!", nil)
}
