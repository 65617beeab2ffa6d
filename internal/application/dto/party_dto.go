package dto

import "time"

// CreateIntermediaryRequest entrada para registrar un emisor RUC 10.
type CreateIntermediaryRequest struct {
	FullName  string `json:"full_name" validate:"required,min=1,max=200"`
	DocNumber string `json:"doc_number" validate:"required,len=8,numeric"`
	RucNumber string `json:"ruc_number" validate:"omitempty,len=11,numeric"`
	Phone     string `json:"phone"`
	Email     string `json:"email" validate:"omitempty,email"`
	Address   string `json:"address"`
}

// UpdateIntermediaryRequest entrada parcial para editar un emisor RUC 10.
type UpdateIntermediaryRequest struct {
	FullName  *string `json:"full_name"`
	RucNumber *string `json:"ruc_number"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	Address   *string `json:"address"`
}

// IntermediaryResponse salida de un emisor RUC 10.
type IntermediaryResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	DocNumber string    `json:"doc_number"`
	RucNumber string    `json:"ruc_number,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateSupplierRequest entrada para registrar un proveedor con RUC.
type CreateSupplierRequest struct {
	RUC         string `json:"ruc" validate:"required,len=11,numeric"`
	RazonSocial string `json:"razon_social" validate:"required"`
	ContactName string `json:"contact_name"`
	Phone       string `json:"phone"`
	Email       string `json:"email" validate:"omitempty,email"`
	Address     string `json:"address"`
	Department  string `json:"department"`
	Province    string `json:"province"`
	District    string `json:"district"`
	Category    string `json:"category" validate:"omitempty,oneof=MAYORISTA RETAIL SERVICIOS"`
}

// UpdateSupplierRequest entrada parcial para editar un proveedor.
type UpdateSupplierRequest struct {
	RazonSocial *string `json:"razon_social"`
	ContactName *string `json:"contact_name"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	Address     *string `json:"address"`
	Department  *string `json:"department"`
	Province    *string `json:"province"`
	District    *string `json:"district"`
	Category    *string `json:"category"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID          string    `json:"id"`
	RUC         string    `json:"ruc"`
	RazonSocial string    `json:"razon_social"`
	ContactName string    `json:"contact_name,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	Address     string    `json:"address,omitempty"`
	Department  string    `json:"department,omitempty"`
	Province    string    `json:"province,omitempty"`
	District    string    `json:"district,omitempty"`
	Category    string    `json:"category,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DNILookupResponse resultado de la consulta de identidad por DNI.
type DNILookupResponse struct {
	DNI      string `json:"dni"`
	FullName string `json:"full_name"`
	Found    bool   `json:"found"`
}

// RUCLookupResponse resultado de la consulta de contribuyente por RUC.
type RUCLookupResponse struct {
	RUC         string `json:"ruc"`
	RazonSocial string `json:"razon_social"`
	State       string `json:"state,omitempty"`     // ACTIVO, BAJA
	Condition   string `json:"condition,omitempty"` // HABIDO, NO HABIDO
	Address     string `json:"address,omitempty"`
	Found       bool   `json:"found"`
}
