package userservice

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/sushihentaime/mediumclone/internal/common"
)

var (
	ErrAuthenticationFailure = fmt.Errorf("password incorrect")
)

func NewUserService(db *sql.DB, mb common.MessageProducer, tokenSecret string) *UserService {
	return &UserService{
		m:     NewDBModel(db),
		mb:    mb,
		token: NewTokenMaker(tokenSecret, AccessTokenTime),
	}
}

// SignupUser creates a new user account and publishes a user.signedup event.
// The plaintext password is hashed before it reaches the database and is
// never stored or logged.
func (s *UserService) SignupUser(ctx context.Context, name, email, password string) (*User, error) {
	v := common.NewValidator()
	validateName(v, name)
	validateEmail(v, email)
	validatePassword(v, password)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	u := User{
		Name:  name,
		Email: email,
	}

	err := u.Password.set(password)
	if err != nil {
		return nil, err
	}

	err = s.m.insert(ctx, &u)
	if err != nil {
		return nil, err
	}

	data := struct {
		Email string
		Name  string
	}{
		Email: u.Email,
		Name:  u.Name,
	}

	emailData, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	err = s.mb.Publish(ctx, emailData, common.UserSignedUpKey, common.UserExchange)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// LoginUser checks the credentials against the stored hash and returns the
// user together with a signed access token.
func (s *UserService) LoginUser(ctx context.Context, email, password string) (*User, string, error) {
	v := common.NewValidator()
	validateEmail(v, email)
	validatePassword(v, password)
	if !v.Valid() {
		return nil, "", v.ValidationError()
	}

	user, err := s.m.getByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}

	ok, err := user.Password.compare(password)
	if err != nil {
		return nil, "", err
	}
	if !ok {
		return nil, "", ErrAuthenticationFailure
	}

	token, err := s.token.Issue(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// VerifyAccessToken decodes a bearer token into the identity it carries.
func (s *UserService) VerifyAccessToken(token string) (*TokenPayload, error) {
	return s.token.Verify(token)
}

// FollowUser creates the directed edge userID -> toFollowID. Constraint
// violations (duplicate pair, missing user) surface from the store.
func (s *UserService) FollowUser(ctx context.Context, userID, toFollowID int) error {
	return s.m.insertFollow(ctx, userID, toFollowID)
}

// UnfollowUser deletes the edge by its exact ordered pair.
func (s *UserService) UnfollowUser(ctx context.Context, userID, toRemoveID int) error {
	return s.m.deleteFollow(ctx, userID, toRemoveID)
}

// GetFollowers returns both association sets of a user in one payload.
func (s *UserService) GetFollowers(ctx context.Context, userID int) (*Follows, error) {
	following, err := s.m.getFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}

	followedBy, err := s.m.getFollowedBy(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Follows{Following: following, FollowedBy: followedBy}, nil
}
