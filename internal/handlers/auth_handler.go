package handlers

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/placementcell/backend/internal/models"
	"github.com/placementcell/backend/internal/repositories"
	"github.com/placementcell/backend/pkg/mailer"
	"github.com/placementcell/backend/pkg/otp"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const resetCodeDigits = 6

// AuthHandler handles registration, login and password reset
type AuthHandler struct {
	students  repositories.StudentRepository
	staff     repositories.StaffRepository
	codes     *otp.Store
	mail      mailer.Sender
	jwtSecret string
	log       *zap.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(students repositories.StudentRepository, staff repositories.StaffRepository,
	codes *otp.Store, mail mailer.Sender, jwtSecret string, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		students:  students,
		staff:     staff,
		codes:     codes,
		mail:      mail,
		jwtSecret: jwtSecret,
		log:       log,
	}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/student/register", h.RegisterStudent)
	g.POST("/staff/register", h.RegisterStaff)
	g.POST("/student/login", h.LoginStudent)
	g.POST("/staff/login", h.LoginStaff)
	g.POST("/forgot-password", h.ForgotPassword)
	g.POST("/reset-password", h.ResetPassword)
}

// RegisterStudent handles student registration
func (h *AuthHandler) RegisterStudent(c echo.Context) error {
	var req models.RegisterStudentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if _, err := h.students.GetByEmail(req.Email); err == nil {
		return echo.NewHTTPError(http.StatusConflict, "A student with this email is already registered")
	}
	if _, err := h.students.GetByRoll(req.Roll); err == nil {
		return echo.NewHTTPError(http.StatusConflict, "A student with this roll number is already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "something went wrong").SetInternal(err)
	}

	student := &models.Student{
		Roll:     req.Roll,
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Branch:   req.Branch,
		CGPA:     req.CGPA,
	}
	if err := h.students.Create(student); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "something went wrong").SetInternal(err)
	}
	return respond(c, http.StatusCreated, student)
}

// RegisterStaff handles staff registration
func (h *AuthHandler) RegisterStaff(c echo.Context) error {
	var req models.RegisterStaffRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if _, err := h.staff.GetByEmail(req.Email); err == nil {
		return echo.NewHTTPError(http.StatusConflict, "A staff member with this email is already registered")
	}
	if _, err := h.staff.GetByEmployeeID(req.EmployeeID); err == nil {
		return echo.NewHTTPError(http.StatusConflict, "A staff member with this employee id is already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "something went wrong").SetInternal(err)
	}

	staff := &models.Staff{
		EmployeeID: req.EmployeeID,
		Name:       req.Name,
		Email:      req.Email,
		Password:   string(hashed),
		Department: req.Department,
	}
	if err := h.staff.Create(staff); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "something went wrong").SetInternal(err)
	}
	return respond(c, http.StatusCreated, staff)
}

// LoginStudent handles student login and issues a bearer token
func (h *AuthHandler) LoginStudent(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	student, err := h.students.GetByEmail(req.Email)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(student.Password), []byte(req.Password)) != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	}

	token, err := h.issueToken(student.Roll, models.KindStudent)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "something went wrong").SetInternal(err)
	}
	return respond(c, http.StatusOK, echo.Map{"token": token, "student": student})
}

// LoginStaff handles staff login and issues a bearer token
func (h *AuthHandler) LoginStaff(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	staff, err := h.staff.GetByEmail(req.Email)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(req.Password)) != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	}

	token, err := h.issueToken(staff.EmployeeID, models.KindStaff)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "something went wrong").SetInternal(err)
	}
	return respond(c, http.StatusOK, echo.Map{"token": token, "staff": staff})
}

// ForgotPassword emails a reset code to the account's address. The
// response does not reveal whether the account exists.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req models.ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if h.accountExists(req.Kind, req.Email) {
		code, err := otp.GenerateCode(resetCodeDigits)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "something went wrong").SetInternal(err)
		}
		if err := h.codes.Save(c.Request().Context(), req.Kind, req.Email, code); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "something went wrong").SetInternal(err)
		}
		if err := h.mail.Send(req.Email, "Password reset code", "Your password reset code is "+code); err != nil {
			h.log.Error("failed sending reset code", zap.String("email", req.Email), zap.Error(err))
		}
	}
	return respondMsg(c, http.StatusOK, "If the account exists, a reset code has been sent")
}

// ResetPassword redeems a reset code and sets a new password
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req models.ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ok, err := h.codes.VerifyAndConsume(c.Request().Context(), req.Kind, req.Email, req.Code)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "something went wrong").SetInternal(err)
	}
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid or expired reset code")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "something went wrong").SetInternal(err)
	}

	switch models.Kind(req.Kind) {
	case models.KindStudent:
		student, err := h.students.GetByEmail(req.Email)
		if err != nil {
			return echo.NewHTTPError(http.StatusNotFound, "Account not found")
		}
		student.Password = string(hashed)
		if err := h.students.Update(student); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "something went wrong").SetInternal(err)
		}
	case models.KindStaff:
		staff, err := h.staff.GetByEmail(req.Email)
		if err != nil {
			return echo.NewHTTPError(http.StatusNotFound, "Account not found")
		}
		staff.Password = string(hashed)
		if err := h.staff.Update(staff); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "something went wrong").SetInternal(err)
		}
	}
	return respondMsg(c, http.StatusOK, "Password updated")
}

func (h *AuthHandler) accountExists(kind, email string) bool {
	switch models.Kind(kind) {
	case models.KindStudent:
		_, err := h.students.GetByEmail(email)
		return err == nil
	case models.KindStaff:
		_, err := h.staff.GetByEmail(email)
		return err == nil
	}
	return false
}

func (h *AuthHandler) issueToken(identity string, kind models.Kind) (string, error) {
	claims := &models.JwtCustomClaims{
		Identity: identity,
		Kind:     kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(72 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.jwtSecret))
}
