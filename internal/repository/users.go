package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"resumebuilder/internal/database"
	"resumebuilder/internal/resume"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, in resume.CreateUserInput) (resume.User, error) {
	db := r.db.WithContext(ctx)
	if err := ensureEmailFree(db, in.Email, 0); err != nil {
		return resume.User{}, fmt.Errorf("create user: %w", err)
	}

	row := database.User{
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     in.Phone,
		Address:   in.Address,
		City:      in.City,
		State:     in.State,
		ZipCode:   in.ZipCode,
		Country:   in.Country,
	}
	// 并发注册同一邮箱时由唯一索引兜底。
	if err := db.Create(&row).Error; err != nil {
		return resume.User{}, fmt.Errorf("create user: %w", translateError(err))
	}
	return toUser(row), nil
}

func (r *UserRepository) Update(ctx context.Context, in resume.UpdateUserInput) (resume.User, error) {
	var updated database.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current database.User
		if err := tx.First(&current, in.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return resume.NotFound("user", in.ID)
			}
			return err
		}

		updates := map[string]any{}
		setNullable(updates, "email", in.Email)
		setNullable(updates, "first_name", in.FirstName)
		setNullable(updates, "last_name", in.LastName)
		setNullable(updates, "phone", in.Phone)
		setNullable(updates, "address", in.Address)
		setNullable(updates, "city", in.City)
		setNullable(updates, "state", in.State)
		setNullable(updates, "zip_code", in.ZipCode)
		setNullable(updates, "country", in.Country)

		if email, ok := updates["email"].(string); ok && email != current.Email {
			if err := ensureEmailFree(tx, email, in.ID); err != nil {
				return err
			}
		}
		updates["updated_at"] = time.Now()

		if err := tx.Model(&database.User{}).Where("id = ?", in.ID).Updates(updates).Error; err != nil {
			return translateError(err)
		}
		return tx.First(&updated, in.ID).Error
	})
	if err != nil {
		return resume.User{}, fmt.Errorf("update user: %w", err)
	}
	return toUser(updated), nil
}

// GetByID returns (nil, nil) when the user does not exist.
func (r *UserRepository) GetByID(ctx context.Context, id uint) (*resume.User, error) {
	var row database.User
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	u := toUser(row)
	return &u, nil
}

func ensureEmailFree(db *gorm.DB, email string, exceptID uint) error {
	query := db.Model(&database.User{}).Where("email = ?", email)
	if exceptID != 0 {
		query = query.Where("id <> ?", exceptID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("email %q: %w", email, resume.ErrDuplicateEmail)
	}
	return nil
}

func toUser(row database.User) resume.User {
	return resume.User{
		ID:        row.ID,
		Email:     row.Email,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Phone:     row.Phone,
		Address:   row.Address,
		City:      row.City,
		State:     row.State,
		ZipCode:   row.ZipCode,
		Country:   row.Country,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
