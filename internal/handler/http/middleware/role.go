package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workzen/hrms-backend-go/internal/domain/employee"
	"github.com/workzen/hrms-backend-go/internal/handler/http/response"
)

func claimRole(r *http.Request) (employee.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", false
	}
	return employee.Role(roleStr), true
}

func requireRole(check func(employee.Role) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := claimRole(r)
			if !ok || !check(role) {
				response.HandleError(w, employee.ErrInsufficientRole)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly restricts the route to administrative roles.
var AdminOnly = requireRole(employee.IsAdmin)

// HROnly restricts the route to HR and administrative roles.
var HROnly = requireRole(employee.IsHR)

// CanManageEmployees gates employee record mutation.
var CanManageEmployees = requireRole(employee.CanManageEmployees)

// CanProcessPayroll gates payroll generation and company-wide listings.
var CanProcessPayroll = requireRole(employee.CanProcessPayroll)

// CanApproveLeave gates leave approval and rejection.
var CanApproveLeave = requireRole(employee.CanApproveLeave)

// CanReviewPerformance gates review authoring and workflow transitions.
var CanReviewPerformance = requireRole(employee.CanReviewPerformance)
