package request

// RegisterRequest is the request body for registering a member
type RegisterRequest struct {
	TCID        string `json:"tc_id"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	PhoneNumber string `json:"phone_number"`
}

// UpdateMemberRequest is the request body for editing a member.
// There is no identity-number field: the key is write-once.
type UpdateMemberRequest struct {
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	PhoneNumber string `json:"phone_number"`
}

// AdminLoginRequest is the request body for the admin login
type AdminLoginRequest struct {
	Password string `json:"password"`
}

// MemberLoginRequest is the request body for the member login
type MemberLoginRequest struct {
	TCID string `json:"tc_id"`
}

// ChangePasswordRequest is the request body for changing the admin password
type ChangePasswordRequest struct {
	NewPassword string `json:"new_password"`
}
