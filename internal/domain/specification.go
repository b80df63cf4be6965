package domain

type Specification[T any] interface {
	IsSatisfiedBy(candidate T) bool
}

const (
	FreeTierMemberLimit    = 3
	PremiumTierMemberLimit = 50
	RecommendationMinSize  = 3
)

// ClubMembersFullSpec is satisfied when a club may not admit anyone else.
// Clubs without a premium member (owner not counted) cap at
// FreeTierMemberLimit; the rest at PremiumTierMemberLimit. This is checked
// independently of ClubMaxMembers.
type ClubMembersFullSpec struct{}

func NewClubMembersFullSpec() ClubMembersFullSpec {
	return ClubMembersFullSpec{}
}

func (ClubMembersFullSpec) IsSatisfiedBy(cm ClubMembers) bool {
	limit := PremiumTierMemberLimit
	if cm.CountPremiumMembers(false) < 1 {
		limit = FreeTierMemberLimit
	}

	return cm.CountMembers() >= limit
}

type ClubRecommendationSpec struct{}

func NewClubRecommendationSpec() ClubRecommendationSpec {
	return ClubRecommendationSpec{}
}

// TODO: also require the club to be founded within the last month once clubs
// carry a creation date in the domain model.
func (ClubRecommendationSpec) IsSatisfiedBy(club *Club) bool {
	return club.CountMembers() >= RecommendationMinSize
}

var (
	_ Specification[ClubMembers] = ClubMembersFullSpec{}
	_ Specification[*Club]       = ClubRecommendationSpec{}
)
