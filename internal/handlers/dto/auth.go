package dto

type RegisterForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
	Phone    string `form:"phone"`
	FullName string `form:"full_name"`
	Skills   string `form:"skills"`
	Bio      string `form:"bio"`
}

type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}
