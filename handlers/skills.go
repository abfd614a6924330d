package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	skillsvc "github.com/devfolio/api/internal/skill/service"
)

// SkillHandler exposes the skill inventory: public grouped listing, owner-only
// create and delete.
type SkillHandler struct {
	svc *skillsvc.Service
}

func NewSkillHandler(svc *skillsvc.Service) *SkillHandler {
	return &SkillHandler{svc: svc}
}

func (h *SkillHandler) Register(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	rg.GET("/skills", h.List)
	rg.POST("/skills", requireAuth, h.Create)
	rg.DELETE("/skills/:id", requireAuth, h.Delete)
}

// List returns every skill, ordered by category then descending percentage.
func (h *SkillHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type createSkillRequest struct {
	Name       string `json:"name"`
	Level      string `json:"level"`
	Percentage *int   `json:"percentage"`
	Category   string `json:"category"`
}

func (h *SkillHandler) Create(c *gin.Context) {
	var req createSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s, err := h.svc.Create(c.Request.Context(), skillsvc.CreateInput{
		Name:       req.Name,
		Level:      req.Level,
		Percentage: req.Percentage,
		Category:   req.Category,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

func (h *SkillHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Skill not found"})
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
