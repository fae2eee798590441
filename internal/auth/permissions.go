package auth

import "kitesurf/internal/model"

// Permission names a single action a role may perform.
type Permission string

const (
	PermViewOwnProfile        Permission = "view.own.profile"
	PermEditOwnProfile        Permission = "edit.own.profile"
	PermBookLessons           Permission = "book.lessons"
	PermViewOwnLessons        Permission = "view.own.lessons"
	PermCancelOwnLessons      Permission = "cancel.own.lessons"
	PermViewLessonSchedule    Permission = "view.lesson.schedule"
	PermMarkPaymentMade       Permission = "mark.payment.made"
	PermViewAssignedCustomers Permission = "view.assigned.customers"
	PermManageCustomerLessons Permission = "manage.customer.lessons"
	PermCancelLessons         Permission = "cancel.lessons"
	PermSendCancellationMails Permission = "send.cancellation.emails"
	PermViewAllProfiles       Permission = "view.all.profiles"
	PermEditAllProfiles       Permission = "edit.all.profiles"
	PermManageAllLessons      Permission = "manage.all.lessons"
	PermManageInstructors     Permission = "manage.instructors"
	PermChangeUserRoles       Permission = "change.user.roles"
	PermViewPaymentStatus     Permission = "view.payment.status"
	PermConfirmPayments       Permission = "confirm.payments"
	PermViewSystemLogs        Permission = "view.system.logs"
	PermManageLessonPackages  Permission = "manage.lesson.packages"
)

var rolePermissions = map[model.Role][]Permission{
	model.RoleCustomer: {
		PermViewOwnProfile,
		PermEditOwnProfile,
		PermBookLessons,
		PermViewOwnLessons,
		PermCancelOwnLessons,
		PermViewLessonSchedule,
		PermMarkPaymentMade,
	},
	model.RoleInstructor: {
		PermViewOwnProfile,
		PermEditOwnProfile,
		PermViewAssignedCustomers,
		PermManageCustomerLessons,
		PermViewLessonSchedule,
		PermCancelLessons,
		PermSendCancellationMails,
	},
	model.RoleOwner: {
		PermViewAllProfiles,
		PermEditAllProfiles,
		PermManageAllLessons,
		PermManageInstructors,
		PermChangeUserRoles,
		PermViewPaymentStatus,
		PermConfirmPayments,
		PermViewSystemLogs,
		PermManageLessonPackages,
	},
}

// Can reports whether user may perform action. Users that are missing,
// inactive or blocked can do nothing.
func Can(user *model.User, action Permission) bool {
	if user == nil || !user.IsActive || user.Blocked {
		return false
	}
	for _, p := range rolePermissions[user.Role] {
		if p == action {
			return true
		}
	}
	return false
}

// CanAny reports whether user holds at least one of actions.
func CanAny(user *model.User, actions ...Permission) bool {
	for _, a := range actions {
		if Can(user, a) {
			return true
		}
	}
	return false
}
