package store_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/cutsea110/payroll-core/internal/domain"
	"github.com/cutsea110/payroll-core/internal/store"
)

func newSalariedEmployee(id domain.EmployeeID) *domain.Employee {
	return domain.NewEmployee(id, "Bob", "Home", domain.NewSalariedClassification(decimal.NewFromInt(1000)), domain.MonthlySchedule{})
}

func TestMemoryStore_InsertRejectsDuplicate(t *testing.T) {
	s := store.NewMemoryStore()
	_, err := s.Insert(newSalariedEmployee(1))
	assert.NoError(t, err)

	_, err = s.Insert(newSalariedEmployee(1))
	assert.Error(t, err)
	var portErr *store.PortError
	assert.ErrorAs(t, err, &portErr)
	assert.Equal(t, store.PortInsert, portErr.Kind)
}

func TestMemoryStore_InsertDeleteRoundTrip(t *testing.T) {
	s := store.NewMemoryStore()
	_, err := s.Insert(newSalariedEmployee(1))
	assert.NoError(t, err)

	assert.NoError(t, s.Delete(1))

	_, err = s.Fetch(1)
	assert.Error(t, err)

	err = s.Delete(1)
	assert.Error(t, err)
	var portErr *store.PortError
	assert.ErrorAs(t, err, &portErr)
	assert.Equal(t, store.PortDelete, portErr.Kind)
}

func TestMemoryStore_FetchReturnsIndependentClone(t *testing.T) {
	s := store.NewMemoryStore()
	hourly := domain.NewHourlyClassification(decimal.NewFromInt(10))
	emp := domain.NewEmployee(2, "Bill", "Home", hourly, domain.WeeklySchedule{})
	_, err := s.Insert(emp)
	assert.NoError(t, err)

	fetched, err := s.Fetch(2)
	assert.NoError(t, err)
	fetched.Classification.(*domain.HourlyClassification).AddTimeCard(domain.TimeCard{Hours: decimal.NewFromInt(8)})

	again, err := s.Fetch(2)
	assert.NoError(t, err)
	assert.Len(t, again.Classification.(*domain.HourlyClassification).TimeCards, 0)
}

func TestMemoryStore_UpdateRejectsAbsentID(t *testing.T) {
	s := store.NewMemoryStore()
	err := s.Update(newSalariedEmployee(99))
	assert.Error(t, err)
}

func TestMemoryStore_UnionIndexBijection(t *testing.T) {
	s := store.NewMemoryStore()
	assert.NoError(t, s.AddUnionMember(10, 1))

	err := s.AddUnionMember(10, 2)
	assert.Error(t, err, "duplicate member id must fail")

	err = s.AddUnionMember(11, 1)
	assert.Error(t, err, "employee already enrolled under another member id must fail")

	assert.NoError(t, s.RemoveUnionMember(10))
	assert.NoError(t, s.AddUnionMember(11, 1), "employee may enroll again once its member id is removed")

	_, err = s.FindUnionMember(10)
	assert.Error(t, err)

	empID, err := s.FindUnionMember(11)
	assert.NoError(t, err)
	assert.Equal(t, domain.EmployeeID(1), empID)
}

func TestMemoryStore_RecordPaycheckAccumulates(t *testing.T) {
	s := store.NewMemoryStore()
	pc1 := domain.NewPaycheck(domain.Period{})
	pc2 := domain.NewPaycheck(domain.Period{})

	assert.NoError(t, s.RecordPaycheck(1, pc1))
	assert.NoError(t, s.RecordPaycheck(1, pc2))

	all, err := s.Paychecks(1)
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}
