package service

import (
	"go.uber.org/zap"

	"github.com/maheswarim312/gradeservices-educonnect/internal/repository"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Grade  GradeService
	Export ExportService
}

// NewService 创建 Service 聚合
func NewService(repo *repository.Repository, logger *zap.Logger) *Service {
	return &Service{
		Grade:  NewGradeService(repo, logger),
		Export: NewExportService(repo, logger),
	}
}

