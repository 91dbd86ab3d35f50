package v1

import (
	"errors"
	"io"
	"net/http"

	"portfolio-contact-api/internal/delivery/http/response"
	"portfolio-contact-api/internal/domain"
	"portfolio-contact-api/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// Client-facing messages
const (
	MsgContactReceived  = "Message received successfully"
	MsgMissingFields    = "All fields are required"
	MsgInvalidEmail     = "A valid email address is required"
	MsgDeliveryFailed   = "Unable to send message right now"
	MsgMethodNotAllowed = "Method not allowed"
)

// Bodies over the limit are treated as malformed and normalize to an empty form.
const maxContactBodyBytes = 64 << 10

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.OPTIONS("/contact", handler.Preflight)
	public.POST("/contact", handler.SubmitContact)
}

// Preflight godoc
// @Summary      Contact CORS preflight
// @Tags         contact
// @Success      204
// @Router       /contact [options]
func (h *ContactHandler) Preflight(c *gin.Context) {
	c.AbortWithStatus(http.StatusNoContent)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Send a message through the portfolio contact form. This is a public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactForm  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      405      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	// Read errors, including an oversized body, leave raw empty on purpose.
	raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxContactBodyBytes))
	if err != nil {
		raw = nil
	}

	if _, err := h.contactUC.SubmitContact(c.Request.Context(), raw); err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			c.Error(apperror.BadRequest(MsgMissingFields))
		case errors.Is(err, domain.ErrInvalidEmail):
			c.Error(apperror.BadRequest(MsgInvalidEmail))
		default:
			c.Error(apperror.Internal(MsgDeliveryFailed, err))
		}
		return
	}

	response.Success(c, http.StatusOK, MsgContactReceived, nil)
}

// MethodNotAllowed answers any method a route does not register
func MethodNotAllowed(c *gin.Context) {
	response.Error(c, http.StatusMethodNotAllowed, MsgMethodNotAllowed, nil)
}
