package ports

import "context"

// DNIIdentity datos mínimos de una persona natural según RENIEC.
type DNIIdentity struct {
	DNI      string
	FullName string
}

// RUCIdentity datos mínimos de un contribuyente según SUNAT.
type RUCIdentity struct {
	RUC         string
	RazonSocial string
	State       string
	Condition   string
	Address     string
}

// IdentityLookup consulta padrones externos (RENIEC/SUNAT) para autocompletar
// formularios. Son consultas de conveniencia: cuando el servicio externo no
// responde, el caller degrada a entrada manual (domain.ErrLookupUnavailable),
// nunca bloquea el registro.
type IdentityLookup interface {
	LookupDNI(ctx context.Context, dni string) (*DNIIdentity, error)
	LookupRUC(ctx context.Context, ruc string) (*RUCIdentity, error)
}
