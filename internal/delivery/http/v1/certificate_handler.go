package v1

import (
	"portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CertificateHandler struct {
	crud *CrudHandler[domain.Certificate, domain.CertificatePatch]
}

func NewCertificateHandler(public, protected *gin.RouterGroup, uc domain.CertificateUsecase) {
	handler := &CertificateHandler{crud: NewCrudHandler[domain.Certificate, domain.CertificatePatch](uc)}
	registerCrudRoutes(public, protected, domain.CertificateDescriptor.Kind, handler)
}

// ListCertificates godoc
// @Summary      List certificates
// @Description  Returns every certificate, newest date first.
// @Tags         certificates
// @Produce      json
// @Success      200  {array}   domain.Certificate
// @Failure      500  {object}  response.ErrorBody
// @Router       /certificates [get]
func (h *CertificateHandler) List(c *gin.Context) { h.crud.List(c) }

// GetCertificate godoc
// @Summary      Get a certificate
// @Tags         certificates
// @Produce      json
// @Param        id   path      int  true  "Certificate ID"
// @Success      200  {object}  domain.Certificate
// @Failure      400  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /certificates/{id} [get]
func (h *CertificateHandler) Get(c *gin.Context) { h.crud.Get(c) }

// CreateCertificate godoc
// @Summary      Create a certificate
// @Description  Title, issuer, date and image are required.
// @Tags         certificates
// @Accept       json
// @Produce      json
// @Param        certificate  body      domain.CertificatePatch  true  "Certificate JSON"
// @Success      201  {object}  domain.Certificate
// @Failure      400  {object}  response.ErrorBody
// @Failure      401  {object}  response.ErrorBody
// @Failure      403  {object}  response.ErrorBody
// @Router       /certificates [post]
// @Security     BearerAuth
func (h *CertificateHandler) Create(c *gin.Context) { h.crud.Create(c) }

// UpdateCertificate godoc
// @Summary      Update a certificate
// @Description  Merges the submitted fields into the stored certificate. The id comes from the path, or from the body when the path has none.
// @Tags         certificates
// @Accept       json
// @Produce      json
// @Param        id   path      int  false  "Certificate ID"
// @Param        certificate  body      domain.CertificatePatch  true  "Fields to change"
// @Success      200  {object}  domain.Certificate
// @Failure      400  {object}  response.ErrorBody
// @Failure      401  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /certificates/{id} [put]
// @Security     BearerAuth
func (h *CertificateHandler) Update(c *gin.Context) { h.crud.Update(c) }

// DeleteCertificate godoc
// @Summary      Delete a certificate
// @Tags         certificates
// @Produce      json
// @Param        id   path      int  true  "Certificate ID"
// @Success      200  {object}  response.MessageBody
// @Failure      400  {object}  response.ErrorBody
// @Failure      401  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /certificates/{id} [delete]
// @Security     BearerAuth
func (h *CertificateHandler) Delete(c *gin.Context) { h.crud.Delete(c) }
