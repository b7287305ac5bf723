package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/dto"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/middleware"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/internal/service"
	"github.com/FSDTeam-SAA/admin-dashboard-just-play/pkg/response"
)

// UserHandler handles user management HTTP requests
type UserHandler struct {
	console *service.Console
	codec   *middleware.CookieCodec
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(console *service.Console, codec *middleware.CookieCodec) *UserHandler {
	return &UserHandler{console: console, codec: codec}
}

// List handles GET /admin/users
func (h *UserHandler) List(c *gin.Context) {
	q := pageQuery(c, "status", "search", "city")
	page, err := h.console.ListUsers(reqCtx(c), middleware.SessionID(c), q)
	if err != nil {
		writeError(c, h.codec, err)
		return
	}
	response.Paginated(c, page.Users, response.PageMeta{
		Page:       q.Page,
		Limit:      q.Limit,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	})
}

// Search handles GET /admin/users/search?q=...
func (h *UserHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Search query is required")
		return
	}
	users, err := h.console.SearchUsers(reqCtx(c), middleware.SessionID(c), query)
	if err != nil {
		writeError(c, h.codec, err)
		return
	}
	response.Success(c, users)
}

// Get handles GET /admin/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.console.GetUser(reqCtx(c), middleware.SessionID(c), c.Param("id"))
	if err != nil {
		writeError(c, h.codec, err)
		return
	}
	response.Success(c, user)
}

// Update handles PATCH /admin/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := h.console.UpdateUser(reqCtx(c), middleware.SessionID(c), c.Param("id"), req); err != nil {
		writeError(c, h.codec, err)
		return
	}
	response.Success(c, gin.H{"updated": true})
}

// Ban handles POST /admin/users/:id/ban
func (h *UserHandler) Ban(c *gin.Context) {
	var req dto.ReasonRequest
	_ = c.ShouldBindJSON(&req)
	if err := h.console.BanUser(reqCtx(c), middleware.SessionID(c), c.Param("id"), req.Reason); err != nil {
		writeError(c, h.codec, err)
		return
	}
	response.Success(c, gin.H{"banned": true})
}

// Unban handles POST /admin/users/:id/unban
func (h *UserHandler) Unban(c *gin.Context) {
	if err := h.console.UnbanUser(reqCtx(c), middleware.SessionID(c), c.Param("id")); err != nil {
		writeError(c, h.codec, err)
		return
	}
	response.Success(c, gin.H{"unbanned": true})
}

// Delete handles DELETE /admin/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.console.DeleteUser(reqCtx(c), middleware.SessionID(c), c.Param("id")); err != nil {
		writeError(c, h.codec, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
