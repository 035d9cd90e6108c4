package user

import (
	"github.com/ferdiebergado/inflowkit/internal/model"
)

type User struct {
	model.Model

	Email        string
	PasswordHash string
}
