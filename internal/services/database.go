package services

import "github.com/thereayou/skillconnect/internal/models"

// UserStore is the slice of the credential store the auth service needs.
type UserStore interface {
	FindUserByUsername(username string) (*models.User, error)
}
