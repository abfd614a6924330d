package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/api/internal/storage"

	profilesvc "github.com/devfolio/api/internal/profile/service"
)

// ProfileHandler exposes the singleton owner profile: public read, owner-only
// full-merge update with optional profile image and resume uploads.
type ProfileHandler struct {
	svc     *profilesvc.Service
	uploads storage.Uploader
}

func NewProfileHandler(svc *profilesvc.Service, uploads storage.Uploader) *ProfileHandler {
	return &ProfileHandler{svc: svc, uploads: uploads}
}

func (h *ProfileHandler) Register(rg *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	rg.GET("/profile", h.Get)
	rg.PUT("/profile", requireAuth, h.Update)
}

// Get returns the profile, or empty defaults when it was never written.
func (h *ProfileHandler) Get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Update merges the supplied multipart fields. Uploaded files win over any
// text value submitted for the same field.
func (h *ProfileHandler) Update(c *gin.Context) {
	in := profilesvc.UpdateInput{
		Name:             formString(c, "name"),
		Title:            formString(c, "title"),
		HeroBio:          formString(c, "heroBio"),
		AboutBio:         formString(c, "aboutBio"),
		ProfileImage:     formString(c, "profileImage"),
		ResumeURL:        formString(c, "resumeUrl"),
		Email:            formString(c, "email"),
		LinkedIn:         formString(c, "linkedin"),
		GitHub:           formString(c, "github"),
		Twitter:          formString(c, "twitter"),
		Facebook:         formString(c, "facebook"),
		ExperienceYears:  formString(c, "experienceYears"),
		EducationSummary: formString(c, "educationSummary"),
	}

	if ref, ok, err := h.uploadSingle(c, "profileImage"); ok {
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		in.ProfileImage = &ref
	}
	if ref, ok, err := h.uploadSingle(c, "resume"); ok {
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		in.ResumeURL = &ref
	}

	p, err := h.svc.Update(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// uploadSingle stores the first file under the given field, when present.
// The bool reports whether a file was submitted at all.
func (h *ProfileHandler) uploadSingle(c *gin.Context, field string) (string, bool, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", false, nil
	}
	refs, err := uploadFiles(c, h.uploads, []*multipart.FileHeader{fh})
	if err != nil {
		return "", true, err
	}
	return refs[0], true, nil
}
