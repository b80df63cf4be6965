package domain

import "fmt"

// ClubMaxMembers is the structural ceiling, owner included.
const ClubMaxMembers = 30

type Club struct {
	id      ClubID
	name    ClubName
	ownerID UserID
	members []UserID
}

func NewClub(id ClubID, name ClubName, ownerID UserID, members []UserID) (*Club, error) {
	club := &Club{
		id:      id,
		name:    name,
		ownerID: ownerID,
		members: append([]UserID(nil), members...),
	}

	if err := club.validate(); err != nil {
		return nil, err
	}

	return club, nil
}

func (c *Club) ID() ClubID      { return c.id }
func (c *Club) Name() ClubName  { return c.name }
func (c *Club) OwnerID() UserID { return c.ownerID }

// Members returns the member ids in join order, owner excluded.
func (c *Club) Members() []UserID {
	return append([]UserID(nil), c.members...)
}

func (c *Club) CountMembers() int {
	return len(c.members) + 1
}

func (c *Club) IsFull() bool {
	return c.CountMembers() >= ClubMaxMembers
}

func (c *Club) ChangeName(name ClubName) error {
	prev := c.name
	c.name = name

	if err := c.validate(); err != nil {
		c.name = prev
		return err
	}

	return nil
}

// Join appends the user to the member list. A user that is already a member
// is appended again; only the capacity ceiling is checked here.
func (c *Club) Join(user *User) error {
	if c.IsFull() {
		return fmt.Errorf("club %s has %d of %d members: %w",
			c.id, c.CountMembers(), ClubMaxMembers, ErrCapacity)
	}

	c.members = append(c.members, user.ID())

	if err := c.validate(); err != nil {
		c.members = c.members[:len(c.members)-1]
		return err
	}

	return nil
}

func (c *Club) validate() error {
	if _, err := NewClubID(c.id.value); err != nil {
		return err
	}

	if _, err := NewClubName(c.name.value); err != nil {
		return err
	}

	if _, err := NewUserID(c.ownerID.value); err != nil {
		return err
	}

	for _, member := range c.members {
		if _, err := NewUserID(member.value); err != nil {
			return err
		}
	}

	if c.CountMembers() > ClubMaxMembers {
		return fmt.Errorf("club %s has %d members, limit is %d: %w",
			c.id, c.CountMembers(), ClubMaxMembers, ErrCapacity)
	}

	return nil
}
