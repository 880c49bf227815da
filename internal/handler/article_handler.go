package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-api/internal/dto"
	"blog-api/internal/response"
	"blog-api/internal/service"
)

// ArticleHandler handles article HTTP requests
type ArticleHandler struct {
	articleService service.ArticleService
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(articleService service.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// GetAll godoc
// @Summary List all articles
// @Tags Articles
// @Produce json
// @Success 200 {object} map[string][]dto.ArticleResponse
// @Router /article [get]
func (h *ArticleHandler) GetAll(c *gin.Context) {
	articles, err := h.articleService.ListArticles(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": articles})
}

// GetArticle godoc
// @Summary Get an article by ID
// @Description Returns the article wrapped in an array; an unknown id yields an empty array, not an error
// @Tags Articles
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} map[string][]dto.ArticleResponse
// @Router /article/{id} [get]
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid article ID")
		return
	}

	article, err := h.articleService.GetArticle(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	// Singleton wrapped in an array; a missing id returns an empty array.
	data := []*dto.ArticleResponse{}
	if article != nil {
		data = append(data, article)
	}
	c.JSON(http.StatusOK, gin.H{"data": data})
}

// Create godoc
// @Summary Create a new article
// @Description Accepts a multipart form with title, body and a cover image file ("image"). Only .jpg and .png files are accepted.
// @Tags Articles
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title (3-100 chars)"
// @Param body formData string true "Body (10-2000 chars)"
// @Param image formData file true "Cover image"
// @Success 201 {object} map[string][]dto.ArticleResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /article [post]
func (h *ArticleHandler) Create(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "User not authenticated")
		return
	}

	var req dto.CreateArticleRequest
	if err := c.ShouldBind(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeBadRequest, "Cover image file is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeBadRequest, "Failed to read cover image")
		return
	}
	defer file.Close()

	upload := &service.CoverUpload{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Reader:      file,
	}

	article, err := h.articleService.CreateArticle(c.Request.Context(), identity, &req, upload)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": []*dto.ArticleResponse{article}})
}

// Update godoc
// @Summary Update an article
// @Description Only the original author may update. Returns the affected-row count.
// @Tags Articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Param request body dto.UpdateArticleRequest true "Update article request"
// @Success 201 {object} map[string]interface{}
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /article/{id} [patch]
func (h *ArticleHandler) Update(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "User not authenticated")
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid article ID")
		return
	}

	var req dto.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	result, err := h.articleService.UpdateArticle(c.Request.Context(), id, identity.ID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":              "Article updated successfully",
		"numberOfAffectedRows": result.NumberOfAffectedRows,
	})
}
