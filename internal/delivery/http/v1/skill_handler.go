package v1

import (
	"portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	crud *CrudHandler[domain.Skill, domain.SkillPatch]
}

func NewSkillHandler(public, protected *gin.RouterGroup, uc domain.SkillUsecase) {
	handler := &SkillHandler{crud: NewCrudHandler[domain.Skill, domain.SkillPatch](uc)}
	registerCrudRoutes(public, protected, domain.SkillDescriptor.Kind, handler)
}

// ListSkills godoc
// @Summary      List skills
// @Description  Returns every skill, highest proficiency first.
// @Tags         skills
// @Produce      json
// @Success      200  {array}   domain.Skill
// @Failure      500  {object}  response.ErrorBody
// @Router       /skills [get]
func (h *SkillHandler) List(c *gin.Context) { h.crud.List(c) }

// GetSkill godoc
// @Summary      Get a skill
// @Tags         skills
// @Produce      json
// @Param        id   path      int  true  "Skill ID"
// @Success      200  {object}  domain.Skill
// @Failure      400  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /skills/{id} [get]
func (h *SkillHandler) Get(c *gin.Context) { h.crud.Get(c) }

// CreateSkill godoc
// @Summary      Create a skill
// @Description  Proficiency must be a number between 0 and 100; category defaults to technical.
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        skill  body      domain.SkillPatch  true  "Skill JSON"
// @Success      201  {object}  domain.Skill
// @Failure      400  {object}  response.ErrorBody
// @Failure      401  {object}  response.ErrorBody
// @Failure      403  {object}  response.ErrorBody
// @Router       /skills [post]
// @Security     BearerAuth
func (h *SkillHandler) Create(c *gin.Context) { h.crud.Create(c) }

// UpdateSkill godoc
// @Summary      Update a skill
// @Description  Merges the submitted fields into the stored skill. The id comes from the path, or from the body when the path has none.
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        id   path      int  false  "Skill ID"
// @Param        skill  body      domain.SkillPatch  true  "Fields to change"
// @Success      200  {object}  domain.Skill
// @Failure      400  {object}  response.ErrorBody
// @Failure      401  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /skills/{id} [put]
// @Security     BearerAuth
func (h *SkillHandler) Update(c *gin.Context) { h.crud.Update(c) }

// DeleteSkill godoc
// @Summary      Delete a skill
// @Tags         skills
// @Produce      json
// @Param        id   path      int  true  "Skill ID"
// @Success      200  {object}  response.MessageBody
// @Failure      400  {object}  response.ErrorBody
// @Failure      401  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /skills/{id} [delete]
// @Security     BearerAuth
func (h *SkillHandler) Delete(c *gin.Context) { h.crud.Delete(c) }
