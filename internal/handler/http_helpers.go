package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/countydirectory/internal/content"
	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

// validationErrorList converts field errors into the JSON shape returned to
// authors.
func validationErrorList(errs content.ValidationErrors) []gin.H {
	out := make([]gin.H, 0, len(errs))
	for _, e := range errs {
		out = append(out, gin.H{
			"kind":       e.KindName(),
			"path":       e.Path,
			"section_id": e.SectionID,
			"field":      e.Field,
			"reason":     e.Reason,
		})
	}
	return out
}

func respondValidation(c *gin.Context, errs content.ValidationErrors) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"error":  "page validation failed",
		"errors": validationErrorList(errs),
	})
}
