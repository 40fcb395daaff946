package dto

// ── 成绩模块请求 ──

// GradeListQuery 列表/导出的可选过滤参数
// 省略的字段不参与过滤；未识别的查询参数被忽略而非报错
type GradeListQuery struct {
	StudentID *int    `form:"studentID" binding:"omitnil,min=1"`
	CourseID  *int    `form:"courseID"  binding:"omitnil,min=1"`
	TeacherID *int    `form:"teacherID" binding:"omitnil,min=1"`
	Grade     *string `form:"grade"     binding:"omitnil,max=255"`
}

// GradeRequest 创建/更新成绩请求（更新为全量替换，不支持部分更新）
type GradeRequest struct {
	StudentID int     `json:"studentID" binding:"required,min=1"`
	CourseID  int     `json:"courseID"  binding:"required,min=1"`
	TeacherID int     `json:"teacherID" binding:"required,min=1"`
	Grade     string  `json:"grade"     binding:"required,max=255"`
	Remarks   *string `json:"remarks"   binding:"omitempty,max=255"`
}

// ── 成绩模块响应 ──

// GradeResponse 成绩记录响应
type GradeResponse struct {
	ID        int     `json:"id"`
	StudentID int     `json:"studentID"`
	CourseID  int     `json:"courseID"`
	TeacherID int     `json:"teacherID"`
	Grade     string  `json:"grade"`
	Remarks   *string `json:"remarks"`
	CreatedAt string  `json:"createdAt"`
}

