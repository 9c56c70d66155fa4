package dto

import "github.com/mshagov/ecooffer-api/internal/domain/entity"

// CreateUserRequest input for user creation; the password is generated
// server-side and returned once in the response.
type CreateUserRequest struct {
	Login string `json:"login"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// UpdateUserRequest partial update; nil fields keep the current value.
type UpdateUserRequest struct {
	Login *string `json:"login"`
	Name  *string `json:"name"`
	Role  *string `json:"role"`
}

// UpdateMeRequest partial self-service update; role changes are admin-only
// and not accepted here.
type UpdateMeRequest struct {
	Login *string `json:"login"`
	Name  *string `json:"name"`
}

// UserView user record on the wire (no password material).
type UserView struct {
	UID   string `json:"uid"`
	Login string `json:"login"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// UserResponse envelope for one user.
type UserResponse struct {
	User UserView `json:"user"`
}

// UserWithPasswordResponse envelope for create/reset: the generated password
// rides along exactly once.
type UserWithPasswordResponse struct {
	User     UserView `json:"user"`
	Password string   `json:"password"`
}

// UserListResponse envelope for a page of users.
type UserListResponse struct {
	Users []UserView `json:"users"`
	Last  string     `json:"last"`
}

// NewUserView maps an entity to its wire shape.
func NewUserView(u *entity.User) UserView {
	return UserView{UID: u.ID, Login: u.Login, Name: u.Name, Role: u.Role}
}

// NewUserListResponse maps a page of users.
func NewUserListResponse(users []*entity.User, last string) UserListResponse {
	views := make([]UserView, 0, len(users))
	for _, u := range users {
		views = append(views, NewUserView(u))
	}
	return UserListResponse{Users: views, Last: last}
}
