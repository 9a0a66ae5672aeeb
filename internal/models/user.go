package models

import (
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// Student represents a student account stored in PostgreSQL. Roll is the
// identity used for forum authorship and likes.
type Student struct {
	gorm.Model `json:"-"`
	Roll       string  `json:"roll" gorm:"uniqueIndex"`
	Name       string  `json:"name"`
	Email      string  `json:"email" gorm:"uniqueIndex"`
	Password   string  `json:"-"`
	Branch     string  `json:"branch"`
	CGPA       float64 `json:"cgpa"`
	AvatarURL  string  `json:"avatar_url,omitempty"`
}

// Staff represents a staff account stored in PostgreSQL. EmployeeID is the
// identity used for forum authorship; any staff identity can moderate.
type Staff struct {
	gorm.Model `json:"-"`
	EmployeeID string `json:"employee_id" gorm:"uniqueIndex"`
	Name       string `json:"name"`
	Email      string `json:"email" gorm:"uniqueIndex"`
	Password   string `json:"-"`
	Department string `json:"department"`
	AvatarURL  string `json:"avatar_url,omitempty"`
}

// RegisterStudentRequest defines the request body for student registration
type RegisterStudentRequest struct {
	Roll     string  `json:"roll" validate:"required,min=2,max=20"`
	Name     string  `json:"name" validate:"required,min=2,max=60"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Branch   string  `json:"branch" validate:"required,max=60"`
	CGPA     float64 `json:"cgpa" validate:"min=0,max=10"`
}

// RegisterStaffRequest defines the request body for staff registration
type RegisterStaffRequest struct {
	EmployeeID string `json:"employee_id" validate:"required,min=2,max=20"`
	Name       string `json:"name" validate:"required,min=2,max=60"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Department string `json:"department" validate:"required,max=60"`
}

// LoginRequest defines the request body for student and staff login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ForgotPasswordRequest defines the request body for requesting a reset OTP
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
	Kind  string `json:"kind" validate:"required,oneof=student staff"`
}

// ResetPasswordRequest defines the request body for redeeming a reset OTP
type ResetPasswordRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Kind     string `json:"kind" validate:"required,oneof=student staff"`
	Code     string `json:"code" validate:"required,len=6"`
	Password string `json:"password" validate:"required,min=8"`
}

// UpdateProfileRequest defines the request body for editing one's own profile
type UpdateProfileRequest struct {
	Name      string `json:"name,omitempty" validate:"omitempty,min=2,max=60"`
	AvatarURL string `json:"avatar_url,omitempty" validate:"omitempty,url"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	Identity string `json:"identity"`
	Kind     Kind   `json:"kind"`
	jwt.RegisteredClaims
}
