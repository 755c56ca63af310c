// Package authn holds the operator accounts that may drive the HTTP admin
// surface: their storage shape, a GORM repository, and the JWT/bcrypt
// service that issues and checks tokens for them. It is entirely separate
// from the payroll domain in internal/domain — an operator is who is
// allowed to submit a script, not anything the payroll core itself knows
// about.
package authn

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel provides the common audited-row fields every authn/audit table
// carries.
type BaseModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
	CreatedBy uuid.UUID      `gorm:"type:uuid" json:"created_by"`
	UpdatedBy uuid.UUID      `gorm:"type:uuid" json:"updated_by"`
	IPAddress string         `gorm:"type:varchar(45)" json:"ip_address"` // IPv4 or IPv6
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}

// Role is the one role this system's HTTP surface checks. There is a
// single role today; the field stays a string, as the teacher's did, so a
// second role can be added without a migration.
const RoleOperator = "operator"

// User is an operator account: someone allowed to submit scripts and
// inspect the roster through the HTTP surface.
type User struct {
	BaseModel
	Username string `gorm:"type:varchar(255);uniqueIndex;not null" json:"username"`
	Password string `gorm:"type:varchar(255);not null" json:"-"`
	Role     string `gorm:"type:varchar(50);not null" json:"role"`
}
