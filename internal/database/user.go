package database

import (
	"errors"
	"strings"

	"github.com/thereayou/skillconnect/internal/models"
)

// ErrUsernameTaken is returned when an insert collides with an existing
// username, whether caught by the pre-check or by the unique constraint.
var ErrUsernameTaken = errors.New("username already exists")

// CreateUser inserts a new user. The unique constraint on username is
// the authority: a concurrent registration that slips past the caller's
// pre-check still surfaces as ErrUsernameTaken here.
func (d *Database) CreateUser(user *models.User) error {
	if err := d.db.Create(user).Error; err != nil {
		if isUniqueViolation(err, "users.username") {
			return ErrUsernameTaken
		}
		return err
	}
	return nil
}

func (d *Database) GetUser(id uint) (*models.User, error) {
	user := models.User{}
	if err := d.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *Database) FindUserByUsername(username string) (*models.User, error) {
	user := models.User{}
	if err := d.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user; the ON DELETE CASCADE constraint removes
// the user's posts with it.
func (d *Database) DeleteUser(id uint) error {
	return d.db.Delete(&models.User{}, id).Error
}

func isUniqueViolation(err error, column string) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed: "+column)
}
