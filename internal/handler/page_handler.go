package handler

import (
	"errors"
	"net/http"

	"github.com/countydirectory/internal/content"
	"github.com/countydirectory/internal/render"
	"github.com/countydirectory/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type publishPayload struct {
	Published *bool `json:"published" binding:"required"`
}

func pageSummaryJSON(p service.PageSummary) gin.H {
	return gin.H{
		"id":               p.ID,
		"slug":             p.Slug,
		"title":            p.Title,
		"meta_title":       p.MetaTitle,
		"meta_description": p.MetaDescription,
		"is_published":     p.IsPublished,
		"section_count":    p.SectionCount,
	}
}

// ListPublishedPages returns every published page.
func (a *API) ListPublishedPages(c *gin.Context) {
	pages, err := a.pages.ListPublished()
	if err != nil {
		a.log.Error("list published pages", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to list pages")
		return
	}

	response := make([]gin.H, 0, len(pages))
	for _, page := range pages {
		response = append(response, pageSummaryJSON(page))
	}
	c.JSON(http.StatusOK, gin.H{"pages": response})
}

// GetPublishedPage returns a published page with every section resolved.
func (a *API) GetPublishedPage(c *gin.Context) {
	view, ok := a.publishedView(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": view})
}

// ShowPage renders a published page as HTML.
func (a *API) ShowPage(c *gin.Context) {
	page, err := a.pages.GetPublished(c.Param("slug"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrPageNotFound) {
			status = http.StatusNotFound
		} else {
			a.log.Error("load page", zap.String("slug", c.Param("slug")), zap.Error(err))
		}
		c.String(status, http.StatusText(status))
		return
	}

	view, err := render.BuildPageView(page)
	if err != nil {
		a.log.Error("render page", zap.String("slug", page.Slug), zap.Error(err))
		c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}
	c.HTML(http.StatusOK, "page.html", gin.H{"page": view})
}

func (a *API) publishedView(c *gin.Context) (render.PageView, bool) {
	slug := c.Param("slug")
	page, err := a.pages.GetPublished(slug)
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			respondError(c, http.StatusNotFound, "page not found")
		} else {
			a.log.Error("load page", zap.String("slug", slug), zap.Error(err))
			respondError(c, http.StatusInternalServerError, "failed to load page")
		}
		return render.PageView{}, false
	}

	view, err := render.BuildPageView(page)
	if err != nil {
		a.log.Error("render page", zap.String("slug", slug), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to render page")
		return render.PageView{}, false
	}
	return view, true
}

// ListAllPages returns published and unpublished pages for editors.
func (a *API) ListAllPages(c *gin.Context) {
	pages, err := a.pages.List()
	if err != nil {
		a.log.Error("list pages", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to list pages")
		return
	}

	response := make([]gin.H, 0, len(pages))
	for _, page := range pages {
		response = append(response, pageSummaryJSON(page))
	}
	c.JSON(http.StatusOK, gin.H{"pages": response})
}

// ValidatePage checks a page document without saving it.
func (a *API) ValidatePage(c *gin.Context) {
	var doc content.Document
	if !bindJSON(c, &doc, "invalid page document") {
		return
	}

	page, err := a.pages.ValidateDocument(doc)
	if err != nil {
		verrs, ok := content.AsValidationErrors(err)
		if !ok {
			respondError(c, http.StatusInternalServerError, "validation failed")
			return
		}
		c.JSON(http.StatusOK, gin.H{"valid": false, "errors": validationErrorList(verrs)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true, "errors": []gin.H{}, "section_count": len(page.Sections)})
}

// CreatePage stores a new page.
func (a *API) CreatePage(c *gin.Context) {
	var doc content.Document
	if !bindJSON(c, &doc, "invalid page document") {
		return
	}

	page, err := a.pages.Create(doc)
	if err != nil {
		a.respondPageWriteError(c, doc.Slug, err)
		return
	}

	a.log.Info("page created", zap.String("slug", page.Slug), zap.Int("sections", len(page.Sections)))
	c.JSON(http.StatusCreated, gin.H{"message": "page created", "page": page.Document()})
}

// ReplacePage replaces a page wholesale.
func (a *API) ReplacePage(c *gin.Context) {
	var doc content.Document
	if !bindJSON(c, &doc, "invalid page document") {
		return
	}

	page, err := a.pages.Replace(c.Param("slug"), doc)
	if err != nil {
		a.respondPageWriteError(c, doc.Slug, err)
		return
	}

	a.log.Info("page replaced", zap.String("from", c.Param("slug")), zap.String("slug", page.Slug))
	c.JSON(http.StatusOK, gin.H{"message": "page updated", "page": page.Document()})
}

// PublishPage toggles publication.
func (a *API) PublishPage(c *gin.Context) {
	var payload publishPayload
	if !bindJSON(c, &payload, "published flag is required") {
		return
	}

	if err := a.pages.SetPublished(c.Param("slug"), *payload.Published); err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			respondError(c, http.StatusNotFound, "page not found")
			return
		}
		a.log.Error("publish page", zap.String("slug", c.Param("slug")), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to update page")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "page updated", "published": *payload.Published})
}

// DeletePage removes a page.
func (a *API) DeletePage(c *gin.Context) {
	if err := a.pages.Delete(c.Param("slug")); err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			respondError(c, http.StatusNotFound, "page not found")
			return
		}
		a.log.Error("delete page", zap.String("slug", c.Param("slug")), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to delete page")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "page deleted"})
}

func (a *API) respondPageWriteError(c *gin.Context, slug string, err error) {
	if verrs, ok := content.AsValidationErrors(err); ok {
		respondValidation(c, verrs)
		return
	}

	switch {
	case errors.Is(err, service.ErrPageSlugExists):
		respondError(c, http.StatusConflict, "a page with this slug already exists")
	case errors.Is(err, service.ErrPageNotFound):
		respondError(c, http.StatusNotFound, "page not found")
	default:
		a.log.Error("save page", zap.String("slug", slug), zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to save page")
	}
}
