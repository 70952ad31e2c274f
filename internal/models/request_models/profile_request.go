package request_models

// UpdateProfileRequest carries a partial profile update. Nil fields are
// left untouched on the stored user (merge semantics).
type UpdateProfileRequest struct {
	Name      *string   `json:"name,omitempty" binding:"omitempty,min=2,max=50"`
	Sex       *string   `json:"sex,omitempty"`
	Age       *int      `json:"age,omitempty" binding:"omitempty,gte=0,lte=120"`
	Sport     *string   `json:"sport,omitempty"`
	Addiction *string   `json:"addiction,omitempty"`
	Hobbies   *[]string `json:"hobbies,omitempty" binding:"omitempty,max=3"`
}
