package domain

type User struct {
	id        UserID
	name      UserName
	isPremium UserIsPremium
}

// NewUser rebuilds a user from already parsed values, e.g. when a repository
// loads it from storage.
func NewUser(id UserID, name UserName, isPremium UserIsPremium) (*User, error) {
	user := &User{
		id:        id,
		name:      name,
		isPremium: isPremium,
	}

	if err := user.validate(); err != nil {
		return nil, err
	}

	return user, nil
}

func (u *User) ID() UserID               { return u.id }
func (u *User) Name() UserName           { return u.name }
func (u *User) IsPremium() UserIsPremium { return u.isPremium }

func (u *User) ChangeName(name UserName) error {
	prev := u.name
	u.name = name

	if err := u.validate(); err != nil {
		u.name = prev
		return err
	}

	return nil
}

func (u *User) Upgrade() {
	u.isPremium = NewUserIsPremium(true)
}

func (u *User) Downgrade() {
	u.isPremium = NewUserIsPremium(false)
}

func (u *User) validate() error {
	if _, err := NewUserID(u.id.value); err != nil {
		return err
	}

	_, err := NewUserName(u.name.value)
	return err
}
