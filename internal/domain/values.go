package domain

import "unicode/utf8"

const MinNameLength = 3

type UserID struct {
	value string
}

func NewUserID(value string) (UserID, error) {
	if value == "" {
		return UserID{}, emptyValue("user id")
	}

	return UserID{value: value}, nil
}

func (id UserID) String() string           { return id.value }
func (id UserID) Equals(other UserID) bool { return id.value == other.value }
func (id UserID) IsEmpty() bool            { return id.value == "" }

type UserName struct {
	value string
}

func NewUserName(value string) (UserName, error) {
	if err := validateName("user name", value); err != nil {
		return UserName{}, err
	}

	return UserName{value: value}, nil
}

func (n UserName) String() string             { return n.value }
func (n UserName) Equals(other UserName) bool { return n.value == other.value }

type UserIsPremium struct {
	value bool
}

func NewUserIsPremium(value bool) UserIsPremium {
	return UserIsPremium{value: value}
}

func (p UserIsPremium) Bool() bool { return p.value }

type ClubID struct {
	value string
}

func NewClubID(value string) (ClubID, error) {
	if value == "" {
		return ClubID{}, emptyValue("club id")
	}

	return ClubID{value: value}, nil
}

func (id ClubID) String() string           { return id.value }
func (id ClubID) Equals(other ClubID) bool { return id.value == other.value }
func (id ClubID) IsEmpty() bool            { return id.value == "" }

type ClubName struct {
	value string
}

func NewClubName(value string) (ClubName, error) {
	if err := validateName("club name", value); err != nil {
		return ClubName{}, err
	}

	return ClubName{value: value}, nil
}

func (n ClubName) String() string             { return n.value }
func (n ClubName) Equals(other ClubName) bool { return n.value == other.value }

// validateName counts runes, not bytes.
func validateName(field, value string) error {
	if value == "" {
		return emptyValue(field)
	}

	if utf8.RuneCountInString(value) < MinNameLength {
		return tooShort(field, MinNameLength)
	}

	return nil
}
