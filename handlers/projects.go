package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/api/internal/storage"

	projectsvc "github.com/devfolio/api/internal/project/service"
)

// ProjectHandler exposes the project catalog: public reads filtered by the
// visibility policy, owner mutations behind the auth gate.
type ProjectHandler struct {
	svc     *projectsvc.Service
	uploads storage.Uploader
}

func NewProjectHandler(svc *projectsvc.Service, uploads storage.Uploader) *ProjectHandler {
	return &ProjectHandler{svc: svc, uploads: uploads}
}

func (h *ProjectHandler) Register(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	rg.GET("/projects", h.ListPublic)
	rg.GET("/projects/:id", h.Get)
	rg.GET("/admin/projects", requireAuth, h.ListAll)
	rg.POST("/projects", requireAuth, h.Create)
	rg.PUT("/projects/:id", requireAuth, h.Update)
	rg.PATCH("/projects/:id/visibility", requireAuth, h.SetVisibility)
	rg.DELETE("/projects/:id", requireAuth, h.Delete)
}

func (h *ProjectHandler) ListPublic(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context(), false)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ProjectHandler) ListAll(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context(), true)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Get serves the public single-project view: a draft is indistinguishable
// from an absent project.
func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	p, err := h.svc.Get(c.Request.Context(), id, false)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Create accepts a multipart form with up to 5 image files. Uploads happen
// first; if the row write then fails the stored objects are left orphaned,
// matching the no-compensation contract.
func (h *ProjectHandler) Create(c *gin.Context) {
	files, err := imageFiles(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	refs, err := uploadFiles(c, h.uploads, files)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	in := projectsvc.CreateInput{
		Title:            c.PostForm("title"),
		ShortDescription: c.PostForm("shortDescription"),
		FullDescription:  c.PostForm("fullDescription"),
		TechStack:        normalizeList(c.PostForm("techStack")),
		RepoURL:          c.PostForm("repoUrl"),
		LiveURL:          c.PostForm("liveUrl"),
		Images:           refs,
		Published:        c.PostForm("published") == "true",
	}
	p, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// Update merges the supplied multipart fields over the stored project.
// existingImages is the ordered list of references to keep; newly uploaded
// files are appended after it.
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	// existence check before touching object storage, so a bad id does not
	// leave stray uploads behind
	if _, err := h.svc.Get(c.Request.Context(), id, true); err != nil {
		writeError(c, err)
		return
	}

	files, err := imageFiles(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	refs, err := uploadFiles(c, h.uploads, files)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	in := projectsvc.UpdateInput{
		Title:            formString(c, "title"),
		ShortDescription: formString(c, "shortDescription"),
		FullDescription:  formString(c, "fullDescription"),
		RepoURL:          formString(c, "repoUrl"),
		LiveURL:          formString(c, "liveUrl"),
		NewImages:        refs,
	}
	if v, ok := c.GetPostForm("techStack"); ok {
		in.TechStack = normalizeList(v)
	}
	if v, ok := c.GetPostForm("existingImages"); ok {
		in.KeptImages = normalizeList(v)
	}
	if v, ok := c.GetPostForm("published"); ok {
		b := v == "true"
		in.Published = &b
	}

	p, err := h.svc.Update(c.Request.Context(), id, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// SetVisibility flips the publish state explicitly, independent of a full
// field update.
func (h *ProjectHandler) SetVisibility(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	var req struct {
		Published *bool `json:"published"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Published == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "published flag is required"})
		return
	}
	p, err := h.svc.SetVisibility(c.Request.Context(), id, *req.Published)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Delete removes the record only. Referenced objects stay in storage; see
// the asset merge contract.
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// imageFiles pulls the images field out of the multipart form, enforcing the
// file-count cap. A request without a multipart body simply has no files.
func imageFiles(c *gin.Context) ([]*multipart.FileHeader, error) {
	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		return nil, nil
	}
	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}
	files := form.File["images"]
	if len(files) > maxProjectImages {
		return nil, fmt.Errorf("at most %d images per project", maxProjectImages)
	}
	return files, nil
}
