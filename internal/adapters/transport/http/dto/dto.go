package dto

type RegisterDTO struct {
	Name     string `json:"name"     validate:"required,min=3,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginDTO struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshDTO struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type TokenResponseDTO struct {
	AccessToken  *string `json:"accessToken"`
	RefreshToken string  `json:"refreshToken"`
}

type UserResponseDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type BookRequestDTO struct {
	Name             string   `json:"name"             validate:"required"`
	ShortDescription string   `json:"shortDescription" validate:"required,max=500"`
	LongDescription  string   `json:"longDescription"  validate:"max=3000"`
	GenreTypes       []string `json:"genreTypes"`
}

// BookUpdateRequestDTO carries a partial update: nil fields are left as-is.
type BookUpdateRequestDTO struct {
	Name             *string `json:"name"`
	ShortDescription *string `json:"shortDescription" validate:"omitempty,max=500"`
	LongDescription  *string `json:"longDescription"  validate:"omitempty,max=3000"`
	CoverImageName   *string `json:"coverImageName"`
}

type BookResponseDTO struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	ShortDescription string   `json:"shortDescription"`
	LongDescription  string   `json:"longDescription"`
	GenreTypes       []string `json:"genreTypes"`
	CoverImageName   string   `json:"coverImageName,omitempty"`
}
