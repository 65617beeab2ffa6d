package usecase

import (
	"context"
	"errors"
	"regexp"

	"github.com/jhoicas/Tributo-api/internal/application/dto"
	"github.com/jhoicas/Tributo-api/internal/application/ports"
	"github.com/jhoicas/Tributo-api/internal/domain"
)

var (
	dniRe = regexp.MustCompile(`^\d{8}$`)
	rucRe = regexp.MustCompile(`^\d{11}$`)
)

// LookupUseCase consulta padrones externos para autocompletar formularios.
// Si el servicio externo no responde devuelve Found=false: el frontend cae a
// entrada manual, nunca se bloquea un registro por una API caída.
type LookupUseCase struct {
	lookup ports.IdentityLookup
}

// NewLookupUseCase construye el caso de uso.
func NewLookupUseCase(lookup ports.IdentityLookup) *LookupUseCase {
	return &LookupUseCase{lookup: lookup}
}

// LookupDNI busca una persona natural en RENIEC.
func (uc *LookupUseCase) LookupDNI(ctx context.Context, dni string) (*dto.DNILookupResponse, error) {
	if !dniRe.MatchString(dni) {
		return nil, domain.NewValidationError("dni")
	}
	identity, err := uc.lookup.LookupDNI(ctx, dni)
	if err != nil {
		if errors.Is(err, domain.ErrLookupUnavailable) || errors.Is(err, domain.ErrNotFound) {
			return &dto.DNILookupResponse{DNI: dni, Found: false}, nil
		}
		return nil, err
	}
	return &dto.DNILookupResponse{
		DNI:      identity.DNI,
		FullName: identity.FullName,
		Found:    true,
	}, nil
}

// LookupRUC busca un contribuyente en SUNAT.
func (uc *LookupUseCase) LookupRUC(ctx context.Context, ruc string) (*dto.RUCLookupResponse, error) {
	if !rucRe.MatchString(ruc) {
		return nil, domain.NewValidationError("ruc")
	}
	identity, err := uc.lookup.LookupRUC(ctx, ruc)
	if err != nil {
		if errors.Is(err, domain.ErrLookupUnavailable) || errors.Is(err, domain.ErrNotFound) {
			return &dto.RUCLookupResponse{RUC: ruc, Found: false}, nil
		}
		return nil, err
	}
	return &dto.RUCLookupResponse{
		RUC:         identity.RUC,
		RazonSocial: identity.RazonSocial,
		State:       identity.State,
		Condition:   identity.Condition,
		Address:     identity.Address,
		Found:       true,
	}, nil
}
