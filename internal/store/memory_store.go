package store

import (
	"github.com/cutsea110/payroll-core/internal/domain"
)

// MemoryStore is the reference persistence port: employees, the
// union-member index and the paycheck ledger all live in plain maps. This
// layout is purely an implementation detail of the reference store, not a
// persistence format. It assumes single-threaded cooperative access and
// takes no lock.
type MemoryStore struct {
	employees    map[domain.EmployeeID]*domain.Employee
	unionMembers map[domain.MemberID]domain.EmployeeID
	paychecks    map[domain.EmployeeID][]*domain.Paycheck
}

// NewMemoryStore builds an empty reference store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		employees:    make(map[domain.EmployeeID]*domain.Employee),
		unionMembers: make(map[domain.MemberID]domain.EmployeeID),
		paychecks:    make(map[domain.EmployeeID][]*domain.Paycheck),
	}
}

func (s *MemoryStore) Insert(emp *domain.Employee) (domain.EmployeeID, error) {
	if _, exists := s.employees[emp.ID]; exists {
		return 0, newPortError(PortInsert, "employee %s already exists", emp.ID)
	}
	s.employees[emp.ID] = emp.Clone()
	return emp.ID, nil
}

func (s *MemoryStore) Delete(id domain.EmployeeID) error {
	if _, exists := s.employees[id]; !exists {
		return newPortError(PortDelete, "employee %s not found", id)
	}
	delete(s.employees, id)
	return nil
}

func (s *MemoryStore) Fetch(id domain.EmployeeID) (*domain.Employee, error) {
	emp, exists := s.employees[id]
	if !exists {
		return nil, newPortError(PortFetch, "employee %s not found", id)
	}
	return emp.Clone(), nil
}

func (s *MemoryStore) Update(emp *domain.Employee) error {
	if _, exists := s.employees[emp.ID]; !exists {
		return newPortError(PortUpdate, "employee %s not found", emp.ID)
	}
	s.employees[emp.ID] = emp.Clone()
	return nil
}

func (s *MemoryStore) GetAll() ([]*domain.Employee, error) {
	all := make([]*domain.Employee, 0, len(s.employees))
	for _, emp := range s.employees {
		all = append(all, emp.Clone())
	}
	return all, nil
}

func (s *MemoryStore) AddUnionMember(memberID domain.MemberID, empID domain.EmployeeID) error {
	if _, exists := s.unionMembers[memberID]; exists {
		return newPortError(PortUnion, "member %s already enrolled", memberID)
	}
	for _, existing := range s.unionMembers {
		if existing == empID {
			return newPortError(PortUnion, "employee %s already enrolled under another member id", empID)
		}
	}
	s.unionMembers[memberID] = empID
	return nil
}

func (s *MemoryStore) RemoveUnionMember(memberID domain.MemberID) error {
	if _, exists := s.unionMembers[memberID]; !exists {
		return newPortError(PortUnion, "member %s not found", memberID)
	}
	delete(s.unionMembers, memberID)
	return nil
}

func (s *MemoryStore) FindUnionMember(memberID domain.MemberID) (domain.EmployeeID, error) {
	empID, exists := s.unionMembers[memberID]
	if !exists {
		return 0, newPortError(PortUnion, "member %s not found", memberID)
	}
	return empID, nil
}

func (s *MemoryStore) RecordPaycheck(empID domain.EmployeeID, pc *domain.Paycheck) error {
	s.paychecks[empID] = append(s.paychecks[empID], pc)
	return nil
}

func (s *MemoryStore) Paychecks(empID domain.EmployeeID) ([]*domain.Paycheck, error) {
	return append([]*domain.Paycheck(nil), s.paychecks[empID]...), nil
}

var _ Store = (*MemoryStore)(nil)
