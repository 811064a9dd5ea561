package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"blog-api/internal/auth"
	"blog-api/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users    service.UserService
	posts    service.PostService
	comments service.CommentService
	tokens   *auth.TokenService
}

func NewHandler(users service.UserService, posts service.PostService, comments service.CommentService, tokens *auth.TokenService) *Handler {
	return &Handler{
		users:    users,
		posts:    posts,
		comments: comments,
		tokens:   tokens,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine, logger *logrus.Logger) {
	router.Use(corsMiddleware(), requestIDMiddleware(), requestLogger(logger))

	router.POST("/user/registration/", h.registerUser)
	router.POST("/user/login/", h.login)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": "ok"})
	})

	authed := router.Group("/", requireAuth(h.tokens))
	{
		authed.GET("/posts/", h.listPosts)
		authed.GET("/posts/:id", h.getPostByID)
		authed.GET("/posts/author/:username", h.getPostsByAuthor)
		authed.POST("/posts/create", h.createPost)
		authed.PATCH("/posts/update/:id", h.updatePost)
		authed.DELETE("/posts/delete/:id", h.deletePost)

		authed.GET("/comments/", h.listComments)
		authed.GET("/comments/posts/:postId", h.getCommentsByPost)
		authed.POST("/comments/posts/:postId/create", h.createComment)
		authed.DELETE("/comments/delete/:commentId", h.deleteComment)
	}
}

///// Users /////

func (h *Handler) registerUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := req.validate(); !errs.empty() {
		c.JSON(http.StatusBadRequest, errs)
		return
	}

	email := ""
	if req.Email != nil {
		email = *req.Email
	}

	user, err := h.users.Register(c.Request.Context(), *req.Username, email, *req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			c.JSON(http.StatusBadRequest, fieldErrors{"username": {msgUsernameTaken}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, userToResponse(*user))
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := req.validate(); !errs.empty() {
		c.JSON(http.StatusBadRequest, errs)
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), *req.Username, *req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": userToResponse(*user)})
}

///// Posts /////

func (h *Handler) listPosts(c *gin.Context) {
	posts, err := h.posts.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]PostResponse, len(posts))
	for i := range posts {
		resp[i] = postToResponse(posts[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getPostByID(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	post, err := h.posts.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, postToResponse(*post))
}

func (h *Handler) getPostsByAuthor(c *gin.Context) {
	posts, err := h.posts.ListByAuthor(c.Request.Context(), c.Param("username"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	resp := make([]PostResponse, len(posts))
	for i := range posts {
		resp[i] = postToResponse(posts[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) createPost(c *gin.Context) {
	var req postCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := req.validate(); !errs.empty() {
		c.JSON(http.StatusBadRequest, errs)
		return
	}

	post, err := h.posts.Create(c.Request.Context(), identityFrom(c), *req.Title, *req.Content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Location", fmt.Sprintf("/posts/%d", post.ID))
	c.JSON(http.StatusCreated, postToResponse(*post))
}

func (h *Handler) updatePost(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var req postUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := req.validate(); !errs.empty() {
		c.JSON(http.StatusBadRequest, errs)
		return
	}

	post, err := h.posts.Update(c.Request.Context(), id, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Location", fmt.Sprintf("/posts/%d", post.ID))
	c.JSON(http.StatusCreated, postToResponse(*post))
}

func (h *Handler) deletePost(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	post, err := h.posts.Delete(c.Request.Context(), identityFrom(c), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		case errors.Is(err, service.ErrNotAuthorized):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Access denied. Only the author or staff can delete a post"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("The post \"%s\" was successfully deleted", post.Title)})
}

///// Comments /////

func (h *Handler) listComments(c *gin.Context) {
	comments, err := h.comments.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]CommentResponse, len(comments))
	for i := range comments {
		resp[i] = commentToResponse(comments[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getCommentsByPost(c *gin.Context) {
	postID, ok := parseID(c.Param("postId"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comments not found"})
		return
	}

	comments, err := h.comments.ListByPost(c.Request.Context(), postID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Comments not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]CommentResponse, len(comments))
	for i := range comments {
		resp[i] = commentToResponse(comments[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) createComment(c *gin.Context) {
	postID, ok := parseID(c.Param("postId"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var req commentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := req.validate(); !errs.empty() {
		c.JSON(http.StatusBadRequest, errs)
		return
	}

	comment, err := h.comments.Create(c.Request.Context(), identityFrom(c), postID, *req.Content)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, commentToResponse(*comment))
}

func (h *Handler) deleteComment(c *gin.Context) {
	id, ok := parseID(c.Param("commentId"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		return
	}

	comment, err := h.comments.Delete(c.Request.Context(), identityFrom(c), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Comment not found"})
		case errors.Is(err, service.ErrNotAuthorized):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Access denied. Only the author or staff can delete a comment"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("The comment \"%s\" was successfully deleted", comment.Content)})
}

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
