package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/korn-WK/assetskorn1/internal/service"
	"github.com/korn-WK/assetskorn1/pkg/response"
)

// ReferenceHandler 参照数据（部门/地点/用户）HTTP 处理器
type ReferenceHandler struct {
	refSvc service.ReferenceService
}

// NewReferenceHandler 创建 ReferenceHandler
func NewReferenceHandler(refSvc service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{refSvc: refSvc}
}

// ListDepartments 获取部门列表
// GET /api/departments
func (h *ReferenceHandler) ListDepartments(c *gin.Context) {
	depts, err := h.refSvc.ListDepartments(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to fetch departments", err)
		return
	}

	response.OK(c, depts)
}

// ListLocations 获取地点列表
// GET /api/locations
func (h *ReferenceHandler) ListLocations(c *gin.Context) {
	locations, err := h.refSvc.ListLocations(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to fetch locations", err)
		return
	}

	response.OK(c, locations)
}

// ListUsers 获取启用用户列表（仅非敏感列）
// GET /api/users
func (h *ReferenceHandler) ListUsers(c *gin.Context) {
	users, err := h.refSvc.ListActiveUsers(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to fetch users", err)
		return
	}

	response.OK(c, users)
}
