package profile

// SaveRequest carries a partial profile update: nil fields are left
// untouched, mirroring the mobile client's save-as-you-go flow.
type SaveRequest struct {
	FirstName      *string   `json:"first_name"`
	LastName       *string   `json:"last_name"`
	FullName       *string   `json:"full_name"`
	Email          *string   `json:"email" binding:"omitempty,email"`
	AvatarURL      *string   `json:"avatar_url"`
	Gender         *string   `json:"gender"`
	Age            *int      `json:"age" binding:"omitempty,gte=1,lte=120"`
	City           *string   `json:"city"`
	SkillLevel     *string   `json:"skill_level"`
	PlayingStyle   *string   `json:"playing_style"`
	Handedness     *string   `json:"handedness"`
	FavoriteSports *[]string `json:"favorite_sports"`
}
