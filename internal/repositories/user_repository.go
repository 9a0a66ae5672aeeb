package repositories

import (
	"github.com/placementcell/backend/internal/models"
	"gorm.io/gorm"
)

// StudentRepository defines the interface for student account operations
type StudentRepository interface {
	Create(student *models.Student) error
	GetByRoll(roll string) (*models.Student, error)
	GetByEmail(email string) (*models.Student, error)
	Update(student *models.Student) error
}

// StaffRepository defines the interface for staff account operations
type StaffRepository interface {
	Create(staff *models.Staff) error
	GetByEmployeeID(employeeID string) (*models.Staff, error)
	GetByEmail(email string) (*models.Staff, error)
	Update(staff *models.Staff) error
}

// PostgresStudentRepository implements StudentRepository for PostgreSQL
type PostgresStudentRepository struct {
	db *gorm.DB
}

// NewPostgresStudentRepository creates a new PostgresStudentRepository
func NewPostgresStudentRepository(db *gorm.DB) *PostgresStudentRepository {
	return &PostgresStudentRepository{db: db}
}

// Create creates a new student in PostgreSQL
func (r *PostgresStudentRepository) Create(student *models.Student) error {
	return r.db.Create(student).Error
}

// GetByRoll retrieves a student by roll number
func (r *PostgresStudentRepository) GetByRoll(roll string) (*models.Student, error) {
	var student models.Student
	if err := r.db.Where("roll = ?", roll).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

// GetByEmail retrieves a student by email
func (r *PostgresStudentRepository) GetByEmail(email string) (*models.Student, error) {
	var student models.Student
	if err := r.db.Where("email = ?", email).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

// Update updates an existing student record
func (r *PostgresStudentRepository) Update(student *models.Student) error {
	return r.db.Save(student).Error
}

// PostgresStaffRepository implements StaffRepository for PostgreSQL
type PostgresStaffRepository struct {
	db *gorm.DB
}

// NewPostgresStaffRepository creates a new PostgresStaffRepository
func NewPostgresStaffRepository(db *gorm.DB) *PostgresStaffRepository {
	return &PostgresStaffRepository{db: db}
}

// Create creates a new staff record in PostgreSQL
func (r *PostgresStaffRepository) Create(staff *models.Staff) error {
	return r.db.Create(staff).Error
}

// GetByEmployeeID retrieves a staff record by employee id
func (r *PostgresStaffRepository) GetByEmployeeID(employeeID string) (*models.Staff, error) {
	var staff models.Staff
	if err := r.db.Where("employee_id = ?", employeeID).First(&staff).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

// GetByEmail retrieves a staff record by email
func (r *PostgresStaffRepository) GetByEmail(email string) (*models.Staff, error) {
	var staff models.Staff
	if err := r.db.Where("email = ?", email).First(&staff).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}

// Update updates an existing staff record
func (r *PostgresStaffRepository) Update(staff *models.Staff) error {
	return r.db.Save(staff).Error
}
