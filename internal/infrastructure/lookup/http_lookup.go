package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/Tributo-api/internal/application/ports"
	"github.com/jhoicas/Tributo-api/internal/domain"
	"github.com/jhoicas/Tributo-api/pkg/config"
)

var _ ports.IdentityLookup = (*HTTPLookup)(nil)

const cacheTTL = 24 * time.Hour

// HTTPLookup consulta padrones externos (RENIEC vía API de DNI, SUNAT vía API
// de RUC) sobre HTTP con token Bearer. Los aciertos se cachean en memoria:
// los padrones cambian con poca frecuencia y las APIs cobran por consulta.
// Cualquier fallo de red o del proveedor degrada a domain.ErrLookupUnavailable.
type HTTPLookup struct {
	cfg    config.LookupConfig
	client *http.Client

	mu       sync.RWMutex
	dniCache map[string]cachedDNI
	rucCache map[string]cachedRUC
}

type cachedDNI struct {
	identity ports.DNIIdentity
	expires  time.Time
}

type cachedRUC struct {
	identity ports.RUCIdentity
	expires  time.Time
}

// NewHTTPLookup construye el cliente con el timeout configurado.
func NewHTTPLookup(cfg config.LookupConfig) *HTTPLookup {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPLookup{
		cfg:      cfg,
		client:   &http.Client{Timeout: timeout},
		dniCache: map[string]cachedDNI{},
		rucCache: map[string]cachedRUC{},
	}
}

type dniAPIResponse struct {
	DNI             string `json:"numeroDocumento"`
	Nombres         string `json:"nombres"`
	ApellidoPaterno string `json:"apellidoPaterno"`
	ApellidoMaterno string `json:"apellidoMaterno"`
}

type rucAPIResponse struct {
	RUC         string `json:"numeroDocumento"`
	RazonSocial string `json:"razonSocial"`
	Estado      string `json:"estado"`
	Condicion   string `json:"condicion"`
	Direccion   string `json:"direccion"`
}

// LookupDNI busca una persona natural por DNI.
func (l *HTTPLookup) LookupDNI(ctx context.Context, dni string) (*ports.DNIIdentity, error) {
	if l.cfg.DNIApiURL == "" || l.cfg.DNIApiToken == "" {
		return nil, domain.ErrLookupUnavailable
	}
	l.mu.RLock()
	if hit, ok := l.dniCache[dni]; ok && time.Now().Before(hit.expires) {
		l.mu.RUnlock()
		identity := hit.identity
		return &identity, nil
	}
	l.mu.RUnlock()

	var body dniAPIResponse
	if err := l.get(ctx, l.cfg.DNIApiURL+"/"+dni, l.cfg.DNIApiToken, &body); err != nil {
		return nil, err
	}
	identity := ports.DNIIdentity{
		DNI:      body.DNI,
		FullName: strings.TrimSpace(body.Nombres + " " + body.ApellidoPaterno + " " + body.ApellidoMaterno),
	}
	if identity.DNI == "" {
		identity.DNI = dni
	}
	l.mu.Lock()
	l.dniCache[dni] = cachedDNI{identity: identity, expires: time.Now().Add(cacheTTL)}
	l.mu.Unlock()
	return &identity, nil
}

// LookupRUC busca un contribuyente por RUC.
func (l *HTTPLookup) LookupRUC(ctx context.Context, ruc string) (*ports.RUCIdentity, error) {
	if l.cfg.RUCApiURL == "" || l.cfg.RUCApiToken == "" {
		return nil, domain.ErrLookupUnavailable
	}
	l.mu.RLock()
	if hit, ok := l.rucCache[ruc]; ok && time.Now().Before(hit.expires) {
		l.mu.RUnlock()
		identity := hit.identity
		return &identity, nil
	}
	l.mu.RUnlock()

	var body rucAPIResponse
	if err := l.get(ctx, l.cfg.RUCApiURL+"/"+ruc, l.cfg.RUCApiToken, &body); err != nil {
		return nil, err
	}
	identity := ports.RUCIdentity{
		RUC:         body.RUC,
		RazonSocial: body.RazonSocial,
		State:       body.Estado,
		Condition:   body.Condicion,
		Address:     body.Direccion,
	}
	if identity.RUC == "" {
		identity.RUC = ruc
	}
	l.mu.Lock()
	l.rucCache[ruc] = cachedRUC{identity: identity, expires: time.Now().Add(cacheTTL)}
	l.mu.Unlock()
	return &identity, nil
}

func (l *HTTPLookup) get(ctx context.Context, url, token string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("armar consulta: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return domain.ErrLookupUnavailable
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return domain.ErrLookupUnavailable
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.ErrLookupUnavailable
	}
	return nil
}
