package employee

// Authorization policy as pure functions of the actor's role. Kept out of
// the entity so the data model stays free of any particular auth scheme.

func IsAdmin(r Role) bool {
	return r == RoleSuperAdmin || r == RoleAdmin
}

func IsHR(r Role) bool {
	return r == RoleHRManager || r == RoleHRExecutive
}

func IsManagement(r Role) bool {
	switch r {
	case RoleCEO, RoleDepartmentHead, RoleTeamLead, RoleProjectManager:
		return true
	}
	return false
}

// CanManageEmployees gates employee create/update/delete.
func CanManageEmployees(r Role) bool {
	return IsAdmin(r) || IsHR(r)
}

// CanProcessPayroll gates payroll generation.
func CanProcessPayroll(r Role) bool {
	return IsAdmin(r) || IsHR(r) || r == RolePayrollSpecialist || r == RoleAccountant
}

// CanApproveLeave gates leave approval and rejection.
func CanApproveLeave(r Role) bool {
	return IsAdmin(r) || IsHR(r) || IsManagement(r)
}

// CanReviewPerformance gates review authoring and completion.
func CanReviewPerformance(r Role) bool {
	return IsAdmin(r) || IsHR(r) || IsManagement(r)
}
