package auth

// User is the domain entity: one branch operator.
type User struct {
	ID         string
	Username   string
	Password   string
	BranchID   string
	BranchName string
	Role       string
}
