package userservice

import (
	"database/sql"
	"time"

	"github.com/sushihentaime/mediumclone/internal/common"
)

type UserService struct {
	m     *DBModel
	mb    common.MessageProducer
	token *TokenMaker
}

type DBModel struct {
	db *sql.DB
}

type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  Password  `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

type Password struct {
	Plain string `json:"-"`
	hash  []byte `json:"-"`
}

// Follows holds both association sets of a user: the users they follow and
// the users following them.
type Follows struct {
	Following  []User `json:"following"`
	FollowedBy []User `json:"followedBy"`
}
