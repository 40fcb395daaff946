package handler

import (
	"github.com/maheswarim312/gradeservices-educonnect/config"
	"github.com/maheswarim312/gradeservices-educonnect/internal/service"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Grade  *GradeHandler
	Export *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(cfg *config.Config, svc *Service) *Handler {
	return &Handler{
		Grade:  NewGradeHandler(svc.Grade, cfg.Server.Debug()),
		Export: NewExportHandler(svc.Export, cfg.Server.Debug()),
	}
}

// Service Handler 依赖的业务接口集合
// 与 service.Service 解耦，测试时可注入 mock 实现
type Service struct {
	Grade  service.GradeService
	Export service.ExportService
}

// NewHandlerService 从 service 聚合构建 Handler 依赖
func NewHandlerService(svc *service.Service) *Service {
	return &Service{Grade: svc.Grade, Export: svc.Export}
}

