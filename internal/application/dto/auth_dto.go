package dto

import "time"

// LoginRequest entrada para login por número de documento (DNI).
type LoginRequest struct {
	DocNumber string `json:"doc_number" validate:"required,len=8,numeric"`
	Password  string `json:"password" validate:"required"`
}

// EmployeeResponse salida de un trabajador (sin password).
type EmployeeResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	DocNumber string    `json:"doc_number"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Role      string    `json:"role"`
	JobTitle  string    `json:"job_title,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse salida con token JWT y matriz de permisos del rol.
type LoginResponse struct {
	Token       string                   `json:"token"`
	User        EmployeeResponse         `json:"user"`
	Permissions map[string]PermissionDTO `json:"permissions"`
}

// PermissionDTO los cuatro booleanos CRUD de un módulo.
type PermissionDTO struct {
	Create bool `json:"create"`
	Read   bool `json:"read"`
	Update bool `json:"update"`
	Delete bool `json:"delete"`
}

// CreateEmployeeRequest entrada para crear un trabajador (password en texto,
// se hashea en el use case).
type CreateEmployeeRequest struct {
	FullName   string `json:"full_name" validate:"required,min=1,max=200"`
	DocNumber  string `json:"doc_number" validate:"required,len=8,numeric"`
	Password   string `json:"password" validate:"required,min=8"`
	Phone      string `json:"phone"`
	Email      string `json:"email" validate:"omitempty,email"`
	Address    string `json:"address"`
	BaseSalary string `json:"base_salary"`
	Role       string `json:"role" validate:"required"`
	JobTitle   string `json:"job_title"`
}

// UpdateEmployeeRequest entrada parcial para actualizar un trabajador.
type UpdateEmployeeRequest struct {
	FullName   *string `json:"full_name"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
	Address    *string `json:"address"`
	BaseSalary *string `json:"base_salary"`
	Role       *string `json:"role"`
	JobTitle   *string `json:"job_title"`
	Status     *string `json:"status"`
	Password   *string `json:"password" validate:"omitempty,min=8"`
}
