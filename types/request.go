package types

type AskRequest struct {
	// Policy is the filename of a stored policy PDF. Empty means a general
	// HR question with no document context.
	Policy   string `json:"policy"`
	Question string `json:"question"`
}

type SummarizeRequest struct {
	Policy string `json:"policy"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

type BatchCreateUserRequest struct {
	Users []CreateUserRequest `json:"users"`
}

type UpdateUserRequest struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}
