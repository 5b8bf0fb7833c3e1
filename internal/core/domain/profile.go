package domain

// Profile is the operator's account as the backend reports it.
type Profile struct {
	Name         string
	Phone        string
	ProfileImage string
	RoleName     string
}
