package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// crudRoutes is implemented by each entity handler; the methods carry the API docs.
type crudRoutes interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// registerCrudRoutes mounts reads on public and writes on protected.
// PUT and DELETE also accept the id in the body or ?id= query.
func registerCrudRoutes(public, protected *gin.RouterGroup, kind string, h crudRoutes) {
	path := "/" + kind

	public.GET(path, h.List)
	public.GET(path+"/:id", h.Get)

	protected.POST(path, h.Create)
	protected.PUT(path, h.Update)
	protected.PUT(path+"/:id", h.Update)
	protected.DELETE(path, h.Delete)
	protected.DELETE(path+"/:id", h.Delete)
}

// CrudHandler translates HTTP requests into calls on one entity's CRUD usecase.
type CrudHandler[T domain.Record, P domain.Patch[T]] struct {
	uc   domain.CrudUsecase[T, P]
	name string
}

func NewCrudHandler[T domain.Record, P domain.Patch[T]](uc domain.CrudUsecase[T, P]) *CrudHandler[T, P] {
	return &CrudHandler[T, P]{uc: uc, name: uc.Descriptor().Name}
}

func (h *CrudHandler[T, P]) List(c *gin.Context) {
	records, err := h.uc.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, records)
}

func (h *CrudHandler[T, P]) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	rec, err := h.uc.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, rec)
}

func (h *CrudHandler[T, P]) Create(c *gin.Context) {
	patch, ok := h.bind(c)
	if !ok {
		return
	}

	rec, err := h.uc.Create(c.Request.Context(), patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, rec)
}

func (h *CrudHandler[T, P]) Update(c *gin.Context) {
	raw := c.Param("id")
	var id int64
	if raw != "" {
		var err error
		if id, err = parseID(raw); err != nil {
			c.Error(err)
			return
		}
	}

	patch, ok := h.bind(c)
	if !ok {
		return
	}

	if raw == "" {
		bodyID := patch.BodyID()
		if bodyID == nil {
			c.Error(apperror.BadRequest(h.name + " ID is required"))
			return
		}
		if *bodyID <= 0 {
			c.Error(errInvalidID)
			return
		}
		id = *bodyID
	}

	rec, err := h.uc.Update(c.Request.Context(), id, patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, rec)
}

func (h *CrudHandler[T, P]) Delete(c *gin.Context) {
	raw := c.Param("id")
	if raw == "" {
		raw = c.Query("id")
	}
	if raw == "" {
		c.Error(apperror.BadRequest(h.name + " ID is required"))
		return
	}

	id, err := parseID(raw)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Message(c, http.StatusOK, fmt.Sprintf("%s deleted successfully", h.name))
}

func (h *CrudHandler[T, P]) bind(c *gin.Context) (P, bool) {
	var patch P
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(validation.FromDecodeError(err, &patch))
		return patch, false
	}
	return patch, true
}

var errInvalidID = apperror.BadRequest("Invalid ID format")

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}
