package v1

import (
	"portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	crud *CrudHandler[domain.Project, domain.ProjectPatch]
}

func NewProjectHandler(public, protected *gin.RouterGroup, uc domain.ProjectUsecase) {
	handler := &ProjectHandler{crud: NewCrudHandler[domain.Project, domain.ProjectPatch](uc)}
	registerCrudRoutes(public, protected, domain.ProjectDescriptor.Kind, handler)
}

// ListProjects godoc
// @Summary      List projects
// @Description  Returns every project, oldest first.
// @Tags         projects
// @Produce      json
// @Success      200  {array}   domain.Project
// @Failure      500  {object}  response.ErrorBody
// @Router       /projects [get]
func (h *ProjectHandler) List(c *gin.Context) { h.crud.List(c) }

// GetProject godoc
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Param        id   path      int  true  "Project ID"
// @Success      200  {object}  domain.Project
// @Failure      400  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /projects/{id} [get]
func (h *ProjectHandler) Get(c *gin.Context) { h.crud.Get(c) }

// CreateProject godoc
// @Summary      Create a project
// @Description  Tags must contain at least one non-blank entry; color defaults to #8B5CF6.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        project  body      domain.ProjectPatch  true  "Project JSON"
// @Success      201  {object}  domain.Project
// @Failure      400  {object}  response.ErrorBody
// @Failure      401  {object}  response.ErrorBody
// @Failure      403  {object}  response.ErrorBody
// @Router       /projects [post]
// @Security     BearerAuth
func (h *ProjectHandler) Create(c *gin.Context) { h.crud.Create(c) }

// UpdateProject godoc
// @Summary      Update a project
// @Description  Merges the submitted fields into the stored project. The id comes from the path, or from the body when the path has none.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id   path      int  false  "Project ID"
// @Param        project  body      domain.ProjectPatch  true  "Fields to change"
// @Success      200  {object}  domain.Project
// @Failure      400  {object}  response.ErrorBody
// @Failure      401  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /projects/{id} [put]
// @Security     BearerAuth
func (h *ProjectHandler) Update(c *gin.Context) { h.crud.Update(c) }

// DeleteProject godoc
// @Summary      Delete a project
// @Tags         projects
// @Produce      json
// @Param        id   path      int  true  "Project ID"
// @Success      200  {object}  response.MessageBody
// @Failure      400  {object}  response.ErrorBody
// @Failure      401  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /projects/{id} [delete]
// @Security     BearerAuth
func (h *ProjectHandler) Delete(c *gin.Context) { h.crud.Delete(c) }
