package authn

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/cutsea110/payroll-core/internal/audit"
)

// ServiceInterface defines the methods of Service, for mocking in handler
// tests.
//
//go:generate mockgen -source=service.go -destination=../../tests/mocks/authn/mock_service.go -package=authnmocks
type ServiceInterface interface {
	Register(username, password, ipAddress, requestID string) (*User, error)
	Login(username, password, ipAddress, requestID string) (string, error)
}

// Service provides operator registration and login.
type Service struct {
	repo      Repository
	auditRepo audit.Repository
	jwtSecret string
}

// NewService creates a new Service.
func NewService(repo Repository, auditRepo audit.Repository, jwtSecret string) *Service {
	return &Service{repo: repo, auditRepo: auditRepo, jwtSecret: jwtSecret}
}

// Register creates a new operator account with a bcrypt-hashed password.
func (s *Service) Register(username, password, ipAddress, requestID string) (*User, error) {
	existing, err := s.repo.GetUserByUsername(username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("an operator with this username already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &User{
		BaseModel: BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
			IPAddress: ipAddress,
		},
		Username: username,
		Password: string(hashed),
		Role:     RoleOperator,
	}

	if err := s.repo.CreateUser(user); err != nil {
		return nil, err
	}

	_ = audit.Record(s.auditRepo, &user.ID, "CREATE", "Operator", &user.ID, nil, user, ipAddress, requestID)

	return user, nil
}

// Login checks credentials and issues a signed JWT.
func (s *Service) Login(username, password, ipAddress, requestID string) (string, error) {
	user, err := s.repo.GetUserByUsername(username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}

	_ = audit.Record(s.auditRepo, &user.ID, "LOGIN", "Operator", &user.ID, nil, map[string]string{"ip": ipAddress}, ipAddress, requestID)

	return tokenString, nil
}
