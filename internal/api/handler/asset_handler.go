package handler

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/korn-WK/assetskorn1/internal/dto"
	"github.com/korn-WK/assetskorn1/internal/service"
	"github.com/korn-WK/assetskorn1/pkg/response"
)

// AssetHandler 资产模块 HTTP 处理器
type AssetHandler struct {
	assetSvc  service.AssetService
	exportSvc service.ExportService
}

// NewAssetHandler 创建 AssetHandler
func NewAssetHandler(assetSvc service.AssetService, exportSvc service.ExportService) *AssetHandler {
	return &AssetHandler{assetSvc: assetSvc, exportSvc: exportSvc}
}

// ListAssets 获取资产列表（含部门/负责人/地点联查名称）
// GET /api/assets
func (h *AssetHandler) ListAssets(c *gin.Context) {
	rows, err := h.assetSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to fetch assets", err)
		return
	}

	response.OKCount(c, rows, len(rows))
}

// GetAsset 获取资产详情
// GET /api/assets/:id
func (h *AssetHandler) GetAsset(c *gin.Context) {
	id, ok := parseAssetID(c)
	if !ok {
		return
	}

	row, err := h.assetSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrAssetNotFound) {
			response.NotFound(c, "asset", "Asset not found")
			return
		}
		response.InternalError(c, "Failed to fetch asset", err)
		return
	}

	response.OK(c, row)
}

// ListAssetsByStatus 按状态获取资产列表
// GET /api/assets/status/:status
// 未知状态不报错，返回空列表
func (h *AssetHandler) ListAssetsByStatus(c *gin.Context) {
	status := c.Param("status")

	rows, err := h.assetSvc.ListByStatus(c.Request.Context(), status)
	if err != nil {
		response.InternalError(c, "Failed to fetch assets", err)
		return
	}

	response.OKCount(c, rows, len(rows))
}

// CreateAsset 创建资产
// POST /api/assets
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	var req dto.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.KindBadRequest, "Invalid asset payload")
		return
	}

	result, err := h.assetSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleAssetError(c, err, "Failed to create asset")
		return
	}

	response.Created(c, result, "Asset created successfully")
}

// UpdateAsset 更新资产（全量替换）
// PUT /api/assets/:id
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	id, ok := parseAssetID(c)
	if !ok {
		return
	}

	var req dto.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.KindBadRequest, "Invalid asset payload")
		return
	}

	if err := h.assetSvc.Update(c.Request.Context(), id, &req); err != nil {
		h.handleAssetError(c, err, "Failed to update asset")
		return
	}

	response.OKMessage(c, "Asset updated successfully")
}

// DeleteAsset 删除资产（物理删除）
// DELETE /api/assets/:id
func (h *AssetHandler) DeleteAsset(c *gin.Context) {
	id, ok := parseAssetID(c)
	if !ok {
		return
	}

	if err := h.assetSvc.Delete(c.Request.Context(), id); err != nil {
		h.handleAssetError(c, err, "Failed to delete asset")
		return
	}

	response.OKMessage(c, "Asset deleted successfully")
}

// GetAssetStats 资产统计（状态分布 + 部门分布）
// GET /api/assets/stats
func (h *AssetHandler) GetAssetStats(c *gin.Context) {
	stats, err := h.assetSvc.Stats(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to fetch asset stats", err)
		return
	}

	response.OK(c, stats)
}

// ExportAssets 导出资产台账为 Excel
// GET /api/assets/export
func (h *AssetHandler) ExportAssets(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportAssets(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Failed to export assets", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// ── 内部辅助方法 ──

// parseAssetID 解析路径参数 :id；非法时写入 400 响应并返回 false
func parseAssetID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, response.KindBadRequest, "Invalid asset id")
		return 0, false
	}
	return id, true
}

// handleAssetError 统一处理资产模块业务错误
func (h *AssetHandler) handleAssetError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrAssetNotFound):
		response.NotFound(c, "asset", "Asset not found")
	case errors.Is(err, service.ErrAssetCodeExists):
		response.Conflict(c, "asset", "Asset code already exists")
	case errors.Is(err, service.ErrInvalidStatus):
		response.BadRequest(c, response.KindInvalidStatus, "Invalid asset status")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, response.KindBadRequest, "Invalid acquired date")
	default:
		response.InternalError(c, fallback, err)
	}
}
