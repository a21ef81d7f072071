package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-blog-platform/helper"
	"go-blog-platform/middleware"
	"go-blog-platform/models"
	"go-blog-platform/services"
	"go-blog-platform/storage"
)

type ArticleHandler struct {
	articleService services.ArticleService
	commentService services.CommentService
	uploads        *storage.Uploads
	helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService, commentService services.CommentService, uploads *storage.Uploads, h *helper.HTTPHelper) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		commentService: commentService,
		uploads:        uploads,
		helper:         h,
	}
}

// Viewer is the identity handed to templates; nil means anonymous.
type Viewer struct {
	ID       uint
	Username string
	Role     models.UserRole
}

func (v *Viewer) IsAdmin() bool {
	return v != nil && v.Role == models.RoleAdmin
}

func viewerFrom(c *gin.Context) *Viewer {
	id, username, role, ok := middleware.CurrentUser(c)
	if !ok {
		return nil
	}
	return &Viewer{ID: id, Username: username, Role: role}
}

func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.articleService.ListAll()
	if err != nil {
		h.helper.RenderError(c, err, "Error fetching articles")
		return
	}

	c.HTML(http.StatusOK, "article_list.html", gin.H{
		"title":    "All Articles",
		"articles": articles,
		"user":     viewerFrom(c),
	})
}

func (h *ArticleHandler) MyArticles(c *gin.Context) {
	viewer := viewerFrom(c)
	articles, err := h.articleService.ListByAuthor(viewer.ID)
	if err != nil {
		h.helper.RenderError(c, err, "Error fetching your articles")
		return
	}

	c.HTML(http.StatusOK, "my_articles.html", gin.H{
		"title":    "My Articles",
		"articles": articles,
		"user":     viewer,
	})
}

func (h *ArticleHandler) ShowCreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "article_form.html", gin.H{
		"title":   "Create New Article",
		"action":  "/create",
		"article": nil,
		"user":    viewerFrom(c),
	})
}

func (h *ArticleHandler) Create(c *gin.Context) {
	viewer := viewerFrom(c)

	var form models.ArticleForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusBadRequest, "Create New Article", "/create", nil, &form, "Invalid form submission")
		return
	}

	if fieldErrors := h.helper.ValidateForm(form); fieldErrors != nil {
		h.renderForm(c, http.StatusBadRequest, "Create New Article", "/create", nil, &form, "Title and content are required")
		return
	}

	imagePath, err := h.saveImageIfPresent(c)
	if err != nil {
		h.renderForm(c, http.StatusInternalServerError, "Create New Article", "/create", nil, &form, "Error saving image. Please try again.")
		return
	}

	if _, err := h.articleService.Create(viewer.ID, form, imagePath); err != nil {
		if errors.Is(err, models.ErrValidation) {
			h.renderForm(c, http.StatusBadRequest, "Create New Article", "/create", nil, &form, "Title and content are required")
			return
		}
		log.Printf("error creating article: %v", err)
		h.renderForm(c, h.helper.GetStatusCode(err), "Create New Article", "/create", nil, &form, "Error creating article. Please try again.")
		return
	}

	c.Redirect(http.StatusFound, "/my-articles")
}

func (h *ArticleHandler) ShowEditForm(c *gin.Context) {
	viewer := viewerFrom(c)

	id, ok := h.articleID(c)
	if !ok {
		return
	}

	article, err := h.articleService.GetByID(id)
	if err != nil {
		h.helper.RenderError(c, err, "Article not found")
		return
	}

	if article.AuthorID != viewer.ID {
		h.helper.RenderError(c, models.ErrForbidden, "You can only edit your own articles.")
		return
	}

	c.HTML(http.StatusOK, "article_form.html", gin.H{
		"title":   "Edit Article",
		"action":  "/edit/" + strconv.FormatUint(uint64(article.ID), 10),
		"article": article,
		"user":    viewer,
	})
}

func (h *ArticleHandler) Edit(c *gin.Context) {
	viewer := viewerFrom(c)

	id, ok := h.articleID(c)
	if !ok {
		return
	}
	action := "/edit/" + c.Param("id")

	var form models.ArticleForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusBadRequest, "Edit Article", action, nil, &form, "Invalid form submission")
		return
	}

	imagePath, err := h.saveImageIfPresent(c)
	if err != nil {
		h.renderForm(c, http.StatusInternalServerError, "Edit Article", action, nil, &form, "Error saving image. Please try again.")
		return
	}

	if _, err := h.articleService.Update(id, viewer.ID, form, imagePath); err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			h.helper.RenderError(c, err, "The article you are trying to edit does not exist.")
		case errors.Is(err, models.ErrForbidden):
			h.helper.RenderError(c, err, "You can only edit your own articles.")
		case errors.Is(err, models.ErrValidation):
			h.renderForm(c, http.StatusBadRequest, "Edit Article", action, nil, &form, "Title and content are required")
		default:
			log.Printf("error updating article: %v", err)
			h.renderForm(c, h.helper.GetStatusCode(err), "Edit Article", action, nil, &form, "Error updating article. Please try again.")
		}
		return
	}

	c.Redirect(http.StatusFound, "/my-articles")
}

func (h *ArticleHandler) Delete(c *gin.Context) {
	viewer := viewerFrom(c)

	id, ok := h.articleID(c)
	if !ok {
		return
	}

	if err := h.articleService.Delete(id, viewer.ID); err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			h.helper.RenderError(c, err, "Article not found")
		case errors.Is(err, models.ErrForbidden):
			h.helper.RenderError(c, err, "You can only delete your own articles")
		default:
			h.helper.RenderError(c, err, "Error deleting article")
		}
		return
	}

	c.Redirect(http.StatusFound, "/my-articles")
}

func (h *ArticleHandler) Show(c *gin.Context) {
	id, ok := h.articleID(c)
	if !ok {
		return
	}

	article, err := h.articleService.GetByID(id)
	if err != nil {
		h.helper.RenderError(c, err, "Article not found")
		return
	}

	c.HTML(http.StatusOK, "article_item.html", gin.H{
		"title":   article.Title,
		"article": article,
		"user":    viewerFrom(c),
	})
}

func (h *ArticleHandler) AddComment(c *gin.Context) {
	viewer := viewerFrom(c)

	id, ok := h.articleID(c)
	if !ok {
		return
	}

	// Comment content is stored as submitted; failures are logged but still
	// land the user back on the article.
	var form models.CommentForm
	if err := c.ShouldBind(&form); err != nil {
		log.Printf("error binding comment form: %v", err)
	}

	if _, err := h.commentService.Add(id, viewer.ID, form.Content); err != nil {
		log.Printf("error adding comment: %v", err)
	}

	c.Redirect(http.StatusFound, "/article/"+c.Param("id"))
}

func (h *ArticleHandler) articleID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.helper.RenderError(c, models.ErrNotFound, "Article not found")
		return 0, false
	}
	return uint(id), true
}

func (h *ArticleHandler) saveImageIfPresent(c *gin.Context) (*string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		// No file in the form is the common case, not a failure.
		return nil, nil
	}
	path, err := h.uploads.SaveImage(c, file)
	if err != nil {
		return nil, err
	}
	return &path, nil
}

func (h *ArticleHandler) renderForm(c *gin.Context, status int, title, action string, article *models.Article, form *models.ArticleForm, errMsg string) {
	c.HTML(status, "article_form.html", gin.H{
		"title":   title,
		"action":  action,
		"article": article,
		"form":    form,
		"user":    viewerFrom(c),
		"error":   errMsg,
	})
}
