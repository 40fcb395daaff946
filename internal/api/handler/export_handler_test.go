package handler

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/maheswarim312/gradeservices-educonnect/internal/authz"
	"github.com/maheswarim312/gradeservices-educonnect/internal/dto"
	"github.com/maheswarim312/gradeservices-educonnect/internal/service"
)

// ── Mock ExportService ──

type mockExportService struct {
	buf      *bytes.Buffer
	filename string
	err      error
}

func (m *mockExportService) ExportGrades(_ context.Context, _ authz.Caller, _ *dto.GradeListQuery) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}

func setupExportRouter(mock *mockExportService, caller authz.Caller) *gin.Engine {
	h := NewExportHandler(mock, false)
	r := gin.New()
	r.GET("/api/grades/export", injectCaller(caller), h.ExportGrades)
	return r
}

func TestExportHandler_ExportGrades_Success(t *testing.T) {
	mock := &mockExportService{
		buf:      bytes.NewBufferString("xlsx-content"),
		filename: "grades_20260101_000000.xlsx",
	}
	r := setupExportRouter(mock, testAdmin)

	w := doRequest(r, "GET", "/api/grades/export", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("期望200，实际%d", w.Code)
	}
	cd := w.Header().Get("Content-Disposition")
	if !strings.Contains(cd, "grades_20260101_000000.xlsx") {
		t.Errorf("Content-Disposition 应携带文件名，实际=%s", cd)
	}
	ct := w.Header().Get("Content-Type")
	if !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("Content-Type 应为 xlsx，实际=%s", ct)
	}
	if w.Body.String() != "xlsx-content" {
		t.Error("响应体应为导出的文件内容")
	}
}

func TestExportHandler_ExportGrades_Empty(t *testing.T) {
	mock := &mockExportService{err: service.ErrExportNoGrades}
	r := setupExportRouter(mock, testAdmin)

	w := doRequest(r, "GET", "/api/grades/export", nil)

	if w.Code != http.StatusNotFound {
		t.Errorf("无可导出记录应为404，实际%d", w.Code)
	}
}

func TestExportHandler_ExportGrades_BadFilter(t *testing.T) {
	mock := &mockExportService{}
	r := setupExportRouter(mock, testAdmin)

	w := doRequest(r, "GET", "/api/grades/export?courseID=abc", nil)

	if w.Code != http.StatusBadRequest {
		t.Errorf("非整数过滤值应为400，实际%d", w.Code)
	}
}
