// Package handlers wires the HTTP surface: route registration, multipart and
// form parsing, and the mapping from service errors to status codes. All
// business rules live in the internal services.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/api/internal/storage"
	projectrepo "github.com/devfolio/api/internal/project/repository"
	projectsvc "github.com/devfolio/api/internal/project/service"
	skillrepo "github.com/devfolio/api/internal/skill/repository"
	skillsvc "github.com/devfolio/api/internal/skill/service"
)

// maxProjectImages caps how many image files one project mutation may carry.
const maxProjectImages = 5

// writeError maps service failures onto the error taxonomy: validation 400,
// not found 404, anything else 500. Error text is passed through to the
// response body.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, projectsvc.ErrValidation) || errors.Is(err, skillsvc.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, projectrepo.ErrNotFound) || errors.Is(err, skillrepo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// parseID parses a path id. Malformed ids behave like absent rows.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// normalizeList accepts either a JSON array string or a comma-separated
// string and returns trimmed, non-empty entries. Always non-nil, so an empty
// submission means an explicit empty list.
func normalizeList(value string) []string {
	out := []string{}
	value = strings.TrimSpace(value)
	if value == "" {
		return out
	}
	var parsed []string
	if err := json.Unmarshal([]byte(value), &parsed); err == nil {
		for _, t := range parsed {
			if t = strings.TrimSpace(t); t != "" {
				out = append(out, t)
			}
		}
		return out
	}
	for _, t := range strings.Split(value, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// formString returns a pointer to the form value when the key was supplied at
// all, nil otherwise. This is how "leave unchanged" and "set to empty" stay
// distinguishable through a multipart form.
func formString(c *gin.Context, key string) *string {
	if v, ok := c.GetPostForm(key); ok {
		return &v
	}
	return nil
}

// uploadFiles streams each file to object storage and collects the returned
// references in upload order. A storage failure surfaces immediately; files
// already stored stay stored (orphans are accepted, never compensated).
func uploadFiles(c *gin.Context, up storage.Uploader, files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, nil
	}
	if up == nil {
		return nil, fmt.Errorf("upload storage is not configured")
	}
	refs := make([]string, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("open upload %s: %w", fh.Filename, err)
		}
		key := objectKey(fh.Filename)
		ref, err := up.Upload(c.Request.Context(), key, f, fh.Size, fh.Header.Get("Content-Type"))
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("store upload %s: %w", fh.Filename, err)
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func objectKey(filename string) string {
	base := filepath.Base(filename)
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, base)
	return fmt.Sprintf("portfolio/%d-%s", time.Now().UnixNano(), base)
}
