package auth

// User is the domain entity. One user owns their own friends and
// receipts; there is no sharing between accounts.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
}
