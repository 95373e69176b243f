package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go-pos-backend/internal/apperr"
	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/pkg/jwt"
	"go-pos-backend/pkg/validator"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrEmailTaken         = errors.New("email already registered")
)

type RegisterRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	FullName     string `json:"full_name" validate:"required"`
	PhoneNumber  string `json:"phone_number"`
	BusinessName string `json:"business_name" validate:"required"`
	Address      string `json:"address"`
}

type LoginResponse struct {
	Token    string             `json:"token"`
	User     model.UserResponse `json:"user"`
	Business *model.Business    `json:"business,omitempty"`
}

type AuthService interface {
	Login(email, password string) (*LoginResponse, error)
	RegisterOwner(req *RegisterRequest) (*LoginResponse, error)
	ResetPassword(email, oldPassword, newPassword string) error
}

type authService struct {
	userRepo     repository.UserRepository
	businessRepo repository.BusinessRepository
	db           *gorm.DB
}

func NewAuthService(userRepo repository.UserRepository, businessRepo repository.BusinessRepository, db *gorm.DB) AuthService {
	return &authService{
		userRepo:     userRepo,
		businessRepo: businessRepo,
		db:           db,
	}
}

func (s *authService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}
	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	if user.BusinessID == nil {
		return nil, errors.New("user has no business assigned")
	}

	if err := s.userRepo.UpdateLastSeen(user.ID); err != nil {
		return nil, errors.New("failed to update session")
	}

	token, err := jwt.GenerateToken(user.ID, *user.BusinessID, user.Email, user.FullName, user.Role)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	business, _ := s.businessRepo.FindByID(*user.BusinessID)

	return &LoginResponse{
		Token:    token,
		User:     user.ToResponse(),
		Business: business,
	}, nil
}

// RegisterOwner creates the owner account and its business in one
// transaction, then signs the new owner in.
func (s *authService) RegisterOwner(req *RegisterRequest) (*LoginResponse, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, apperr.Validation(first.FailedField, "failed on tag '%s'", first.Tag)
	}

	if existing, _ := s.userRepo.FindByEmail(req.Email); existing != nil && existing.ID != uuid.Nil {
		return nil, ErrEmailTaken
	}

	var (
		user     *model.User
		business *model.Business
	)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		user = &model.User{
			Email:       req.Email,
			FullName:    req.FullName,
			PhoneNumber: req.PhoneNumber,
			Role:        model.RoleOwner,
			IsActive:    true,
		}
		if err := user.SetPassword(req.Password); err != nil {
			return err
		}
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		business = &model.Business{
			OwnerID:               user.ID,
			BusinessName:          req.BusinessName,
			Address:               req.Address,
			Phone:                 req.PhoneNumber,
			PointValueRequirement: 10000,
			TierSilverThreshold:   50,
			TierGoldThreshold:     200,
			TierPlatinumThreshold: 500,
		}
		business.CreatedBy = "system"
		business.UpdatedBy = "system"
		if err := tx.Create(business).Error; err != nil {
			return err
		}

		user.BusinessID = &business.ID
		return tx.Model(user).Update("business_id", business.ID).Error
	})
	if err != nil {
		return nil, err
	}

	token, err := jwt.GenerateToken(user.ID, business.ID, user.Email, user.FullName, user.Role)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token:    token,
		User:     user.ToResponse(),
		Business: business,
	}, nil
}

func (s *authService) ResetPassword(email, oldPassword, newPassword string) error {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return ErrInvalidCredentials
	}
	if !user.CheckPassword(oldPassword) {
		return ErrInvalidCredentials
	}
	if len(newPassword) < 6 {
		return apperr.Validation("new_password", "must be at least 6 characters")
	}
	if err := user.SetPassword(newPassword); err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(user.ID, user.Password)
}
