package models

// Department represents a department and its optional head user.
type Department struct {
	ID         int64  `json:"id" db:"id"`
	Name       string `json:"name" db:"name"`
	HeadUserID *int64 `json:"head_user_id,omitempty" db:"head_user_id"`
	Head       *User  `json:"head,omitempty"`
}
