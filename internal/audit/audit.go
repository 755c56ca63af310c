// Package audit records who did what to the payroll roster. Every script
// run drives one Log row per command (§13.3): action is the command kind,
// entity is "Employee" or "Member", old is empty (JSON null) and new is the
// command's result entry; no before/after snapshot of the employee is taken.
package audit

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/cutsea110/payroll-core/internal/authn"
)

// Log is one audited action against the roster or an operator account.
type Log struct {
	authn.BaseModel
	UserID     *uuid.UUID     `gorm:"type:uuid" json:"user_id,omitempty"`
	User       *authn.User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Action     string         `gorm:"type:varchar(255);not null" json:"action"`
	EntityName string         `gorm:"type:varchar(255);not null" json:"entity_name"`
	EntityID   *uuid.UUID     `gorm:"type:uuid" json:"entity_id,omitempty"`
	OldValue   datatypes.JSON `gorm:"type:jsonb" json:"old_value,omitempty"`
	NewValue   datatypes.JSON `gorm:"type:jsonb" json:"new_value,omitempty"`
	RequestID  string         `gorm:"type:varchar(255);not null" json:"request_id"`
	Timestamp  time.Time      `gorm:"not null" json:"timestamp"`
}

// Repository defines the storage operations audit logging needs.
//
//go:generate mockgen -source=audit.go -destination=../../tests/mocks/audit/mock_repository.go -package=auditmocks
type Repository interface {
	Create(log *Log) error
	GetByID(id uuid.UUID) (*Log, error)
	GetAllByUser(userID uuid.UUID, limit int) ([]Log, error)
}

// GormRepository implements Repository using GORM.
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a new GormRepository.
func NewGormRepository(db *gorm.DB) Repository {
	return &GormRepository{db: db}
}

// Create inserts a new audit log row.
func (r *GormRepository) Create(log *Log) error {
	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now()
	}
	return r.db.Create(log).Error
}

// GetByID retrieves an audit log row by id.
func (r *GormRepository) GetByID(id uuid.UUID) (*Log, error) {
	var log Log
	err := r.db.First(&log, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	return &log, err
}

// GetAllByUser retrieves audit rows for one operator, newest first.
func (r *GormRepository) GetAllByUser(userID uuid.UUID, limit int) ([]Log, error) {
	var logs []Log
	query := r.db.Where("user_id = ?", userID).Order("timestamp desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&logs).Error
	return logs, err
}

// Record is a helper that marshals old/new to JSON and inserts one row.
// userID may be nil for a system action; oldValue/newValue may be any
// struct.
func Record(repo Repository, userID *uuid.UUID, action, entityName string, entityID *uuid.UUID, oldValue, newValue any, ipAddress, requestID string) error {
	oldJSON, err := json.Marshal(oldValue)
	if err != nil {
		return err
	}
	newJSON, err := json.Marshal(newValue)
	if err != nil {
		return err
	}

	log := &Log{
		UserID:     userID,
		Action:     action,
		EntityName: entityName,
		EntityID:   entityID,
		OldValue:   oldJSON,
		NewValue:   newJSON,
		RequestID:  requestID,
		Timestamp:  time.Now(),
	}
	if userID != nil {
		log.BaseModel.CreatedBy = *userID
		log.BaseModel.UpdatedBy = *userID
	}
	log.BaseModel.IPAddress = ipAddress

	return repo.Create(log)
}
