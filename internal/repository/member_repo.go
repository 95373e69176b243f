package repository

import (
	"go-pos-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MemberRepository interface {
	Create(member *model.Member) error
	FindAll(businessID uuid.UUID, search string) ([]model.Member, error)
	FindByID(businessID, id uuid.UUID) (*model.Member, error)
	Update(member *model.Member) error
	LockByID(tx *gorm.DB, id uuid.UUID) (*model.Member, error)
	ApplyCheckout(tx *gorm.DB, id uuid.UUID, points, spent int64) error
	UpdateLevel(tx *gorm.DB, id uuid.UUID, level model.MemberLevel) error
	ResetPoints(businessID, id uuid.UUID) error
}

type memberRepo struct {
	db *gorm.DB
}

func NewMemberRepo(db *gorm.DB) MemberRepository {
	return &memberRepo{db}
}

func (r *memberRepo) Create(member *model.Member) error {
	return r.db.Create(member).Error
}

func (r *memberRepo) FindAll(businessID uuid.UUID, search string) ([]model.Member, error) {
	q := r.db.Where("business_id = ? AND is_active = ?", businessID, true)
	if search != "" {
		q = q.Where("name ILIKE ? OR phone LIKE ?", "%"+search+"%", "%"+search+"%")
	}
	var members []model.Member
	err := q.Order("name ASC").Find(&members).Error
	return members, err
}

func (r *memberRepo) FindByID(businessID, id uuid.UUID) (*model.Member, error) {
	var member model.Member
	err := r.db.First(&member, "id = ? AND business_id = ?", id, businessID).Error
	return &member, err
}

func (r *memberRepo) Update(member *model.Member) error {
	return r.db.Save(member).Error
}

func (r *memberRepo) LockByID(tx *gorm.DB, id uuid.UUID) (*model.Member, error) {
	var member model.Member
	err := tx.Set("gorm:query_option", "FOR UPDATE").First(&member, "id = ?", id).Error
	return &member, err
}

// ApplyCheckout credits a finished sale to the member. All three
// counters are incremented server-side in one statement.
func (r *memberRepo) ApplyCheckout(tx *gorm.DB, id uuid.UUID, points, spent int64) error {
	return tx.Model(&model.Member{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"total_points":       gorm.Expr("total_points + ?", points),
			"total_transactions": gorm.Expr("total_transactions + 1"),
			"total_spent":        gorm.Expr("total_spent + ?", spent),
		}).Error
}

func (r *memberRepo) UpdateLevel(tx *gorm.DB, id uuid.UUID, level model.MemberLevel) error {
	return tx.Model(&model.Member{}).
		Where("id = ?", id).
		Update("member_level", level).Error
}

// ResetPoints is the only non-monotonic path for total_points.
func (r *memberRepo) ResetPoints(businessID, id uuid.UUID) error {
	return r.db.Model(&model.Member{}).
		Where("id = ? AND business_id = ?", id, businessID).
		Updates(map[string]interface{}{
			"total_points": 0,
			"member_level": model.LevelBaru,
		}).Error
}
