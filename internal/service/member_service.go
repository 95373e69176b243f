package service

import (
	"go-pos-backend/internal/apperr"
	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/pkg/validator"

	"github.com/google/uuid"
)

type MemberService interface {
	Register(businessID uuid.UUID, actorID string, member *model.Member) error
	GetMembers(businessID uuid.UUID, search string) ([]model.Member, error)
	GetMember(businessID, id uuid.UUID) (*model.Member, error)
	UpdateMember(businessID, id uuid.UUID, actorID string, req *model.Member) (*model.Member, error)
	ResetPoints(businessID, id uuid.UUID) error
}

type memberService struct {
	memberRepo repository.MemberRepository
}

func NewMemberService(mRepo repository.MemberRepository) MemberService {
	return &memberService{memberRepo: mRepo}
}

// Register creates a member at the "baru" level with zeroed counters.
func (s *memberService) Register(businessID uuid.UUID, actorID string, member *model.Member) error {
	member.BusinessID = businessID
	member.Level = model.LevelBaru
	member.TotalPoints = 0
	member.TotalTransactions = 0
	member.TotalSpent = 0
	member.IsActive = true
	member.CreatedBy = actorID
	member.UpdatedBy = actorID

	if errs := validator.ValidateStruct(member); len(errs) > 0 {
		first := errs[0]
		return apperr.Validation(first.FailedField, "failed on tag '%s'", first.Tag)
	}

	return s.memberRepo.Create(member)
}

func (s *memberService) GetMembers(businessID uuid.UUID, search string) ([]model.Member, error) {
	return s.memberRepo.FindAll(businessID, search)
}

func (s *memberService) GetMember(businessID, id uuid.UUID) (*model.Member, error) {
	return s.memberRepo.FindByID(businessID, id)
}

func (s *memberService) UpdateMember(businessID, id uuid.UUID, actorID string, req *model.Member) (*model.Member, error) {
	existing, err := s.memberRepo.FindByID(businessID, id)
	if err != nil {
		return nil, apperr.ErrNotFound
	}

	// Points and counters are owned by checkout; only contact fields
	// and an explicit tier override are editable here.
	existing.Name = req.Name
	existing.Phone = req.Phone
	if req.Level != "" {
		existing.Level = req.Level
	}
	existing.UpdatedBy = actorID

	if errs := validator.ValidateStruct(existing); len(errs) > 0 {
		first := errs[0]
		return nil, apperr.Validation(first.FailedField, "failed on tag '%s'", first.Tag)
	}

	if err := s.memberRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *memberService) ResetPoints(businessID, id uuid.UUID) error {
	if _, err := s.memberRepo.FindByID(businessID, id); err != nil {
		return apperr.ErrNotFound
	}
	return s.memberRepo.ResetPoints(businessID, id)
}
