package mysql

import (
	"errors"

	"guess_the_word/internal/domain"
	"guess_the_word/internal/game"
	"guess_the_word/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *gorm.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Register creates the user inside a transaction. The user count is a locking
// read (a plain count under REPEATABLE READ would let two concurrent
// registrations both see zero), so concurrent registrations serialize and
// exactly one user can ever observe a count of zero and become admin.
func (r *UserRepo) Register(username, passwordHash string) (*domain.User, error) {
	user := domain.User{Username: username, Password: passwordHash}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Model(&domain.User{}).Count(&count).Error; err != nil {
			return err
		}
		user.Role = domain.RolePlayer
		if count == 0 {
			user.Role = domain.RoleAdmin
		}
		if err := tx.Create(&user).Error; err != nil {
			if isDuplicateKey(err) {
				return repository.ErrDuplicateUsername
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername fetches a user by username
func (r *UserRepo) FindByUsername(username string) (*domain.User, error) {
	var user domain.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, game.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByID fetches a user by primary key
func (r *UserRepo) FindByID(id uint) (*domain.User, error) {
	var user domain.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, game.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// List returns a page of users ordered by username plus the total count.
func (r *UserRepo) List(limit, offset int) ([]domain.User, int64, error) {
	var total int64
	if err := r.db.Model(&domain.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var users []domain.User
	if err := r.db.Order("username").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}
