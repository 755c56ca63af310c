package authn_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/cutsea110/payroll-core/internal/audit"
	"github.com/cutsea110/payroll-core/internal/authn"
	auditmocks "github.com/cutsea110/payroll-core/tests/mocks/audit"
	authnmocks "github.com/cutsea110/payroll-core/tests/mocks/authn"
)

func TestService_Register_RejectsDuplicateUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := authnmocks.NewMockRepository(ctrl)
	auditRepo := auditmocks.NewMockRepository(ctrl)

	repo.EXPECT().GetUserByUsername("operator").Return(&authn.User{Username: "operator"}, nil)

	svc := authn.NewService(repo, auditRepo, "secret")
	user, err := svc.Register("operator", "password123", "127.0.0.1", "req-1")

	assert.Nil(t, user)
	assert.ErrorContains(t, err, "already exists")
}

func TestService_Register_HashesPasswordAndRecordsAudit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := authnmocks.NewMockRepository(ctrl)
	auditRepo := auditmocks.NewMockRepository(ctrl)

	repo.EXPECT().GetUserByUsername("newoperator").Return(nil, gorm.ErrRecordNotFound)
	repo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *authn.User) error {
		assert.Equal(t, "newoperator", u.Username)
		assert.NotEqual(t, "password123", u.Password, "password must be hashed before storage")
		assert.Equal(t, authn.RoleOperator, u.Role)
		return nil
	})
	auditRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(log *audit.Log) error {
		assert.Equal(t, "CREATE", log.Action)
		assert.Equal(t, "Operator", log.EntityName)
		return nil
	})

	svc := authn.NewService(repo, auditRepo, "secret")
	user, err := svc.Register("newoperator", "password123", "127.0.0.1", "req-2")

	assert.NoError(t, err)
	assert.Equal(t, "newoperator", user.Username)
}

func TestService_Login_RejectsWrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := authnmocks.NewMockRepository(ctrl)
	auditRepo := auditmocks.NewMockRepository(ctrl)

	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	registered := &authn.User{Username: "operator", Password: string(hashed), Role: authn.RoleOperator}

	repo.EXPECT().GetUserByUsername("operator").Return(registered, nil)

	svc := authn.NewService(repo, auditRepo, "secret")
	_, err = svc.Login("operator", "wrong-password", "127.0.0.1", "req-3")
	assert.ErrorContains(t, err, "invalid credentials")
}

func TestService_Login_IssuesTokenAndRecordsAudit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := authnmocks.NewMockRepository(ctrl)
	auditRepo := auditmocks.NewMockRepository(ctrl)

	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	registered := &authn.User{Username: "operator", Password: string(hashed), Role: authn.RoleOperator}

	repo.EXPECT().GetUserByUsername("operator").Return(registered, nil)
	auditRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(log *audit.Log) error {
		assert.Equal(t, "LOGIN", log.Action)
		return nil
	})

	svc := authn.NewService(repo, auditRepo, "secret")
	token, err := svc.Login("operator", "correct-password", "127.0.0.1", "req-4")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestService_Login_RejectsUnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := authnmocks.NewMockRepository(ctrl)
	auditRepo := auditmocks.NewMockRepository(ctrl)

	repo.EXPECT().GetUserByUsername("ghost").Return(nil, nil)

	svc := authn.NewService(repo, auditRepo, "secret")
	_, err := svc.Login("ghost", "whatever", "127.0.0.1", "req-5")
	assert.ErrorContains(t, err, "invalid credentials")
}

func TestService_Login_PropagatesRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := authnmocks.NewMockRepository(ctrl)
	auditRepo := auditmocks.NewMockRepository(ctrl)

	repo.EXPECT().GetUserByUsername("operator").Return(nil, errors.New("connection lost"))

	svc := authn.NewService(repo, auditRepo, "secret")
	_, err := svc.Login("operator", "whatever", "127.0.0.1", "req-6")
	assert.ErrorContains(t, err, "connection lost")
}
