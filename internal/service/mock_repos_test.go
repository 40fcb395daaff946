package service

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/maheswarim312/gradeservices-educonnect/internal/model"
	"github.com/maheswarim312/gradeservices-educonnect/internal/repository"
)

// ── Mock GradeRepository ──

type mockGradeRepo struct {
	grades map[int]*model.Grade
	nextID int
	// clock 单调递增，保证 created_at 非降序且可区分先后
	clock time.Time
}

func newMockGradeRepo() *mockGradeRepo {
	return &mockGradeRepo{
		grades: make(map[int]*model.Grade),
		nextID: 1,
		clock:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (m *mockGradeRepo) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *mockGradeRepo) Create(_ context.Context, grade *model.Grade) error {
	grade.ID = m.nextID
	m.nextID++
	grade.CreatedAt = m.tick()
	stored := *grade
	m.grades[grade.ID] = &stored
	return nil
}

func (m *mockGradeRepo) GetByID(_ context.Context, id int) (*model.Grade, error) {
	if g, ok := m.grades[id]; ok {
		copied := *g
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockGradeRepo) ListWithFilters(_ context.Context, filters *repository.GradeFilters) ([]model.Grade, error) {
	var result []model.Grade
	for _, g := range m.grades {
		if filters != nil {
			if filters.StudentID != nil && g.StudentID != *filters.StudentID {
				continue
			}
			if filters.CourseID != nil && g.CourseID != *filters.CourseID {
				continue
			}
			if filters.TeacherID != nil && g.TeacherID != *filters.TeacherID {
				continue
			}
			if filters.Grade != nil && g.Grade != *filters.Grade {
				continue
			}
		}
		result = append(result, *g)
	}
	sortByCreatedAtDesc(result)
	return result, nil
}

func (m *mockGradeRepo) ListByStudent(ctx context.Context, studentID int) ([]model.Grade, error) {
	return m.ListWithFilters(ctx, &repository.GradeFilters{StudentID: &studentID})
}

func (m *mockGradeRepo) ListByCourse(ctx context.Context, courseID int) ([]model.Grade, error) {
	return m.ListWithFilters(ctx, &repository.GradeFilters{CourseID: &courseID})
}

func (m *mockGradeRepo) ListByTeacher(ctx context.Context, teacherID int) ([]model.Grade, error) {
	return m.ListWithFilters(ctx, &repository.GradeFilters{TeacherID: &teacherID})
}

func (m *mockGradeRepo) Update(_ context.Context, id int, grade *model.Grade) error {
	existing, ok := m.grades[id]
	if !ok {
		// 与真实实现一致：对不存在的行 Updates 影响 0 行但不报错
		return nil
	}
	existing.StudentID = grade.StudentID
	existing.CourseID = grade.CourseID
	existing.TeacherID = grade.TeacherID
	existing.Grade = grade.Grade
	existing.Remarks = grade.Remarks
	return nil
}

func (m *mockGradeRepo) Delete(_ context.Context, id int) error {
	delete(m.grades, id)
	return nil
}

func sortByCreatedAtDesc(grades []model.Grade) {
	sort.SliceStable(grades, func(i, j int) bool {
		return grades[i].CreatedAt.After(grades[j].CreatedAt)
	})
}
