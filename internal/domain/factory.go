package domain

import "github.com/google/uuid"

type UserFactory interface {
	Create(name UserName) (*User, error)
}

type ClubFactory interface {
	Create(name ClubName, owner *User) (*Club, error)
}

// UUIDUserFactory assigns random (v4) identities to new users.
type UUIDUserFactory struct{}

func NewUUIDUserFactory() *UUIDUserFactory {
	return &UUIDUserFactory{}
}

func (f *UUIDUserFactory) Create(name UserName) (*User, error) {
	id, err := NewUserID(uuid.NewString())
	if err != nil {
		return nil, err
	}

	return NewUser(id, name, NewUserIsPremium(false))
}

type UUIDClubFactory struct{}

func NewUUIDClubFactory() *UUIDClubFactory {
	return &UUIDClubFactory{}
}

func (f *UUIDClubFactory) Create(name ClubName, owner *User) (*Club, error) {
	id, err := NewClubID(uuid.NewString())
	if err != nil {
		return nil, err
	}

	return NewClub(id, name, owner.ID(), nil)
}
