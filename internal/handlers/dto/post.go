package dto

type NewPostForm struct {
	Title          string `form:"title" binding:"required"`
	Description    string `form:"description" binding:"required"`
	RequiredSkills string `form:"required_skills"`
}
