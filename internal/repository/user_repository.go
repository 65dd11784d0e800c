// internal/repository/user_repository.go
package repository

import (
	"context"
	"errors"

	"skillsphere/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, tx *gorm.DB, user *model.User) error
	FindByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.User, error)
	FindByUsername(ctx context.Context, db *gorm.DB, username string) (*model.User, error)
	List(ctx context.Context, db *gorm.DB, search string) ([]*model.User, error)
	Update(ctx context.Context, tx *gorm.DB, userID uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}

type gormUserRepository struct{}

func NewGormUserRepository() UserRepository {
	return &gormUserRepository{}
}

func (r *gormUserRepository) Create(ctx context.Context, tx *gorm.DB, user *model.User) error {
	result := tx.WithContext(ctx).Create(user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.ErrConflict
		}
		return result.Error
	}
	return nil
}

func (r *gormUserRepository) FindByID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*model.User, error) {
	var user model.User
	result := db.WithContext(ctx).Where("user_id = ?", userID).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

func (r *gormUserRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.User, error) {
	var user model.User
	result := db.WithContext(ctx).Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

func (r *gormUserRepository) FindByUsername(ctx context.Context, db *gorm.DB, username string) (*model.User, error) {
	var user model.User
	result := db.WithContext(ctx).Where("username = ?", username).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

func (r *gormUserRepository) List(ctx context.Context, db *gorm.DB, search string) ([]*model.User, error) {
	var users []*model.User
	query := db.WithContext(ctx).Order("username ASC")
	if search != "" {
		query = query.Where("username LIKE ?", "%"+search+"%")
	}
	if result := query.Find(&users); result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

func (r *gormUserRepository) Update(ctx context.Context, tx *gorm.DB, userID uuid.UUID, updates map[string]interface{}) error {
	result := tx.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormUserRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	if result := db.WithContext(ctx).Model(&model.User{}).Count(&count); result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

func (r *gormUserRepository) Delete(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	// ユーザー削除時は進捗・完了記録・応募・通知も併せて削除する
	for _, m := range []interface{}{
		&model.UserSkillProgress{},
		&model.TaskCompletion{},
		&model.Application{},
		&model.Notification{},
		&model.LoginLog{},
	} {
		if err := tx.WithContext(ctx).Unscoped().Where("user_id = ?", userID).Delete(m).Error; err != nil {
			return err
		}
	}
	result := tx.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
