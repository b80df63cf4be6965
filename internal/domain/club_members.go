package domain

// ClubMembers is a club resolved together with its owner and member users.
// It is built on demand for premium-sensitive rules and never persisted.
type ClubMembers struct {
	id      ClubID
	owner   *User
	members []*User
}

func NewClubMembers(id ClubID, owner *User, members []*User) ClubMembers {
	return ClubMembers{
		id:      id,
		owner:   owner,
		members: append([]*User(nil), members...),
	}
}

func (cm ClubMembers) ID() ClubID       { return cm.id }
func (cm ClubMembers) Owner() *User     { return cm.owner }
func (cm ClubMembers) Members() []*User { return append([]*User(nil), cm.members...) }

// CountMembers counts the owner, same as Club.CountMembers.
func (cm ClubMembers) CountMembers() int {
	return len(cm.members) + 1
}

func (cm ClubMembers) CountPremiumMembers(includeOwner bool) int {
	count := 0
	for _, member := range cm.members {
		if member.IsPremium().Bool() {
			count++
		}
	}

	if includeOwner && cm.owner != nil && cm.owner.IsPremium().Bool() {
		count++
	}

	return count
}
