package models

// Privilege levels an account can hold. Authorization compares the
// effective privilege of the session's top frame against a command's gate.
const (
	PrivilegeCustomer = 1
	PrivilegeClerk    = 3
	PrivilegeOwner    = 7
)

// Account is an operator account. UserID is the unique key.
type Account struct {
	UserID    string
	Password  string
	Privilege int
	Name      string
}
