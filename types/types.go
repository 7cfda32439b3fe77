package types

const (
	USER_ROLE_ADMIN = "admin"
	USER_ROLE_USER  = "user"
)

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	CreateAt int64  `json:"created_at"`
	UpdateAt int64  `json:"updated_at"`
}

// Policy describes one PDF in the policy directory. DisplayName is derived
// from the filename for presentation only, it is never stored.
type Policy struct {
	FileName    string `json:"file_name"`
	DisplayName string `json:"display_name"`
	Size        int64  `json:"size"`
}
