package model

import "time"

// Grade 成绩记录表 — 对应 grades
// student_id/course_id/teacher_id 指向外部身份服务中的实体，不做外键约束
type Grade struct {
	ID        int       `gorm:"primaryKey;autoIncrement"                      json:"id"`
	StudentID int       `gorm:"not null;index"                                json:"studentID"`
	CourseID  int       `gorm:"not null;index"                                json:"courseID"`
	TeacherID int       `gorm:"not null;index"                                json:"teacherID"`
	Grade     string    `gorm:"type:varchar(255);not null"                    json:"grade"`
	Remarks   *string   `gorm:"type:varchar(255)"                             json:"remarks"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;<-:create"  json:"createdAt"`
}

// TableName 指定表名
func (Grade) TableName() string { return "grades" }

