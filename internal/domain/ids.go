// Package domain holds the employee aggregate and its four polymorphic
// aspects: classification, schedule, method and affiliation.
package domain

import "fmt"

// EmployeeID identifies an employee. It is never reused within a run.
type EmployeeID int64

func (id EmployeeID) String() string { return fmt.Sprintf("%d", int64(id)) }

// MemberID identifies a union member. The union index maps a MemberID to
// exactly one EmployeeID at a time.
type MemberID int64

func (id MemberID) String() string { return fmt.Sprintf("%d", int64(id)) }
