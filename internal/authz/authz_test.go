package authz

import (
	"testing"

	"github.com/maheswarim312/gradeservices-educonnect/internal/repository"
)

// ── 策略表测试 ──

func TestCan_Admin_AllAllowed(t *testing.T) {
	caller := Caller{ID: 1, Role: RoleAdmin}
	ops := []Operation{
		OpList, OpRead, OpListByStudent, OpListByCourse, OpListByTeacher,
		OpExport, OpCreate, OpUpdate, OpDelete,
	}
	for _, op := range ops {
		if Can(caller, op) != Allow {
			t.Errorf("admin 对 %s 应为 Allow", op)
		}
	}
}

func TestCan_Pengajar(t *testing.T) {
	caller := Caller{ID: 5, Role: RolePengajar}

	for _, op := range []Operation{OpList, OpRead, OpCreate, OpUpdate, OpExport} {
		if Can(caller, op) != Allow {
			t.Errorf("pengajar 对 %s 应为 Allow", op)
		}
	}
	if Can(caller, OpDelete) != Deny {
		t.Error("pengajar 对删除应为 Deny")
	}
}

func TestCan_Murid(t *testing.T) {
	caller := Caller{ID: 7, Role: RoleMurid}

	for _, op := range []Operation{OpList, OpRead, OpListByStudent, OpExport} {
		if Can(caller, op) != AllowOwn {
			t.Errorf("murid 对 %s 应为 AllowOwn", op)
		}
	}
	for _, op := range []Operation{OpListByCourse, OpListByTeacher} {
		if Can(caller, op) != Allow {
			t.Errorf("murid 对 %s 应为 Allow", op)
		}
	}
	for _, op := range []Operation{OpCreate, OpUpdate, OpDelete} {
		if Can(caller, op) != Deny {
			t.Errorf("murid 对 %s 应为 Deny", op)
		}
	}
}

func TestCan_UnknownRoleDenied(t *testing.T) {
	caller := Caller{ID: 1, Role: "superuser"}
	if Can(caller, OpList) != Deny {
		t.Error("未知角色应一律拒绝")
	}
}

// ── Narrow 测试 ──

func TestNarrow_MuridForcesOwnStudentID(t *testing.T) {
	caller := Caller{ID: 7, Role: RoleMurid}
	other := 9
	filters := Narrow(caller, repository.GradeFilters{StudentID: &other})

	if filters.StudentID == nil || *filters.StudentID != 7 {
		t.Errorf("murid 的 studentID 过滤应被覆写为本人7，实际=%v", filters.StudentID)
	}
}

func TestNarrow_MuridWithoutFilterStillScoped(t *testing.T) {
	caller := Caller{ID: 7, Role: RoleMurid}
	filters := Narrow(caller, repository.GradeFilters{})

	if filters.StudentID == nil || *filters.StudentID != 7 {
		t.Errorf("murid 未提供过滤条件时也应收窄为本人，实际=%v", filters.StudentID)
	}
}

func TestNarrow_AdminPassthrough(t *testing.T) {
	caller := Caller{ID: 1, Role: RoleAdmin}
	other := 9
	filters := Narrow(caller, repository.GradeFilters{StudentID: &other})

	if filters.StudentID == nil || *filters.StudentID != 9 {
		t.Errorf("admin 的过滤条件应原样保留，实际=%v", filters.StudentID)
	}
}

func TestNarrow_PengajarPassthrough(t *testing.T) {
	caller := Caller{ID: 5, Role: RolePengajar}
	filters := Narrow(caller, repository.GradeFilters{})

	if filters.StudentID != nil {
		t.Errorf("pengajar 不应被收窄范围，实际=%v", *filters.StudentID)
	}
}

// ── 单条读取与学生路径校验 ──

func TestCanReadRecord(t *testing.T) {
	cases := []struct {
		name            string
		caller          Caller
		recordStudentID int
		want            bool
	}{
		{"admin读任意记录", Caller{ID: 1, Role: RoleAdmin}, 99, true},
		{"pengajar读任意记录", Caller{ID: 5, Role: RolePengajar}, 99, true},
		{"murid读本人记录", Caller{ID: 7, Role: RoleMurid}, 7, true},
		{"murid读他人记录", Caller{ID: 7, Role: RoleMurid}, 9, false},
		{"未知角色", Caller{ID: 1, Role: "guest"}, 1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanReadRecord(tc.caller, tc.recordStudentID); got != tc.want {
				t.Errorf("期望%v，实际%v", tc.want, got)
			}
		})
	}
}

func TestCanListStudent(t *testing.T) {
	cases := []struct {
		name      string
		caller    Caller
		studentID int
		want      bool
	}{
		{"admin查任意学生", Caller{ID: 1, Role: RoleAdmin}, 99, true},
		{"pengajar查任意学生", Caller{ID: 5, Role: RolePengajar}, 99, true},
		{"murid查本人", Caller{ID: 7, Role: RoleMurid}, 7, true},
		{"murid查他人", Caller{ID: 7, Role: RoleMurid}, 9, false},
		{"未知角色", Caller{ID: 1, Role: "guest"}, 1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanListStudent(tc.caller, tc.studentID); got != tc.want {
				t.Errorf("期望%v，实际%v", tc.want, got)
			}
		})
	}
}

// ── MutationRoles 测试 ──

func TestMutationRoles(t *testing.T) {
	assertRoles := func(op Operation, want []string) {
		t.Helper()
		got := MutationRoles(op)
		if len(got) != len(want) {
			t.Fatalf("%s: 期望%v，实际%v", op, want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("%s: 期望%v，实际%v", op, want, got)
			}
		}
	}

	assertRoles(OpCreate, []string{RoleAdmin, RolePengajar})
	assertRoles(OpUpdate, []string{RoleAdmin, RolePengajar})
	assertRoles(OpDelete, []string{RoleAdmin})
}
