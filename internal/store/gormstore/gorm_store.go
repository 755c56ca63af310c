package gormstore

import (
	"errors"

	"gorm.io/gorm"

	"github.com/cutsea110/payroll-core/internal/domain"
	"github.com/cutsea110/payroll-core/internal/store"
)

// GormStore implements store.Store against a *gorm.DB, the way the
// teacher's *GormRepository types implement their repository interfaces.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an already-migrated *gorm.DB.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates the tables this store needs.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&employeeRow{}, &unionMemberRow{}, &paycheckRow{})
}

func (s *GormStore) Insert(emp *domain.Employee) (domain.EmployeeID, error) {
	var existing employeeRow
	err := s.db.First(&existing, emp.ID).Error
	if err == nil {
		return 0, store.NewPortError(store.PortInsert, "employee %s already exists", emp.ID)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, store.NewPortError(store.PortInsert, err.Error())
	}

	payload, err := marshalEmployee(emp)
	if err != nil {
		return 0, store.NewPortError(store.PortInsert, err.Error())
	}
	row := employeeRow{ID: int64(emp.ID), Payload: payload}
	if err := s.db.Create(&row).Error; err != nil {
		return 0, store.NewPortError(store.PortInsert, err.Error())
	}
	return emp.ID, nil
}

func (s *GormStore) Delete(id domain.EmployeeID) error {
	res := s.db.Delete(&employeeRow{}, id)
	if res.Error != nil {
		return store.NewPortError(store.PortDelete, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return store.NewPortError(store.PortDelete, "employee %s not found", id)
	}
	return nil
}

func (s *GormStore) Fetch(id domain.EmployeeID) (*domain.Employee, error) {
	var row employeeRow
	err := s.db.First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.NewPortError(store.PortFetch, "employee %s not found", id)
	}
	if err != nil {
		return nil, store.NewPortError(store.PortFetch, err.Error())
	}
	emp, err := unmarshalEmployee(row.Payload)
	if err != nil {
		return nil, store.NewPortError(store.PortFetch, err.Error())
	}
	return emp, nil
}

func (s *GormStore) Update(emp *domain.Employee) error {
	payload, err := marshalEmployee(emp)
	if err != nil {
		return store.NewPortError(store.PortUpdate, err.Error())
	}
	res := s.db.Model(&employeeRow{}).Where("id = ?", int64(emp.ID)).Update("payload", payload)
	if res.Error != nil {
		return store.NewPortError(store.PortUpdate, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return store.NewPortError(store.PortUpdate, "employee %s not found", emp.ID)
	}
	return nil
}

func (s *GormStore) GetAll() ([]*domain.Employee, error) {
	var rows []employeeRow
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, store.NewPortError(store.PortFetch, err.Error())
	}
	all := make([]*domain.Employee, 0, len(rows))
	for _, row := range rows {
		emp, err := unmarshalEmployee(row.Payload)
		if err != nil {
			return nil, store.NewPortError(store.PortFetch, err.Error())
		}
		all = append(all, emp)
	}
	return all, nil
}

func (s *GormStore) AddUnionMember(memberID domain.MemberID, empID domain.EmployeeID) error {
	var existing unionMemberRow
	err := s.db.First(&existing, "member_id = ?", int64(memberID)).Error
	if err == nil {
		return store.NewPortError(store.PortUnion, "member %s already enrolled", memberID)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return store.NewPortError(store.PortUnion, err.Error())
	}

	var byEmployee unionMemberRow
	err = s.db.First(&byEmployee, "employee_id = ?", int64(empID)).Error
	if err == nil {
		return store.NewPortError(store.PortUnion, "employee %s already enrolled under another member id", empID)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return store.NewPortError(store.PortUnion, err.Error())
	}

	row := unionMemberRow{MemberID: int64(memberID), EmployeeID: int64(empID)}
	if err := s.db.Create(&row).Error; err != nil {
		return store.NewPortError(store.PortUnion, err.Error())
	}
	return nil
}

func (s *GormStore) RemoveUnionMember(memberID domain.MemberID) error {
	res := s.db.Delete(&unionMemberRow{}, "member_id = ?", int64(memberID))
	if res.Error != nil {
		return store.NewPortError(store.PortUnion, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return store.NewPortError(store.PortUnion, "member %s not found", memberID)
	}
	return nil
}

func (s *GormStore) FindUnionMember(memberID domain.MemberID) (domain.EmployeeID, error) {
	var row unionMemberRow
	err := s.db.First(&row, "member_id = ?", int64(memberID)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, store.NewPortError(store.PortUnion, "member %s not found", memberID)
	}
	if err != nil {
		return 0, store.NewPortError(store.PortUnion, err.Error())
	}
	return domain.EmployeeID(row.EmployeeID), nil
}

func (s *GormStore) RecordPaycheck(empID domain.EmployeeID, pc *domain.Paycheck) error {
	payload, err := marshalPaycheck(pc)
	if err != nil {
		return store.NewPortError(store.PortUpdate, err.Error())
	}
	row := paycheckRow{EmployeeID: int64(empID), Payload: payload}
	if err := s.db.Create(&row).Error; err != nil {
		return store.NewPortError(store.PortUpdate, err.Error())
	}
	return nil
}

func (s *GormStore) Paychecks(empID domain.EmployeeID) ([]*domain.Paycheck, error) {
	var rows []paycheckRow
	if err := s.db.Where("employee_id = ?", int64(empID)).Find(&rows).Error; err != nil {
		return nil, store.NewPortError(store.PortFetch, err.Error())
	}
	all := make([]*domain.Paycheck, 0, len(rows))
	for _, row := range rows {
		pc, err := unmarshalPaycheck(row.Payload)
		if err != nil {
			return nil, store.NewPortError(store.PortFetch, err.Error())
		}
		all = append(all, pc)
	}
	return all, nil
}

var _ store.Store = (*GormStore)(nil)
