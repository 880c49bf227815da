package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-api/internal/dto"
	"blog-api/internal/response"
	"blog-api/internal/service"
)

// CommentHandler handles comment HTTP requests
type CommentHandler struct {
	commentService service.CommentService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Create godoc
// @Summary Create a comment on an article
// @Tags Comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Param request body dto.CreateCommentRequest true "Create comment request"
// @Success 201 {object} map[string]interface{}
// @Failure 404 {object} response.ErrorResponse
// @Router /article/{id}/comment [post]
func (h *CommentHandler) Create(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "User not authenticated")
		return
	}

	articleID, err := parseIDParam(c, "id")
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid article ID")
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), articleID, identity, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Comment created successfully",
		"comment": comment,
	})
}

// Update godoc
// @Summary Update a comment
// @Description Only the original comment author may update
// @Tags Comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Param commentId path int true "Comment ID"
// @Param request body dto.UpdateCommentRequest true "Update comment request"
// @Success 201 {object} map[string]interface{}
// @Failure 401 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /article/{id}/comment/{commentId} [patch]
func (h *CommentHandler) Update(c *gin.Context) {
	identity, ok := getIdentity(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "User not authenticated")
		return
	}

	articleID, err := parseIDParam(c, "id")
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid article ID")
		return
	}
	commentID, err := parseIDParam(c, "commentId")
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid comment ID")
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, err.Error())
		return
	}

	comment, err := h.commentService.UpdateComment(c.Request.Context(), articleID, commentID, identity.ID, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Comment updated successfully",
		"comment": comment,
	})
}

// GetComments godoc
// @Summary List comments on an article
// @Tags Comments
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} map[string][]dto.CommentResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /article/{id}/comment [get]
func (h *CommentHandler) GetComments(c *gin.Context) {
	articleID, err := parseIDParam(c, "id")
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid article ID")
		return
	}

	comments, err := h.commentService.GetComments(c.Request.Context(), articleID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": comments})
}
