package entity

import "time"

// Intermediary es un emisor RUC 10: la persona natural a cuyo nombre se
// compra y factura la venta interna hacia la empresa.
type Intermediary struct {
	ID        string
	FullName  string
	DocNumber string // DNI
	RucNumber string // RUC 10 asociado, si lo tiene
	Phone     string
	Email     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Supplier es un proveedor mayorista con RUC.
type Supplier struct {
	ID          string
	RUC         string
	RazonSocial string
	ContactName string
	Phone       string
	Email       string
	Address     string
	Department  string
	Province    string
	District    string
	Category    string // MAYORISTA, RETAIL, SERVICIOS
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
