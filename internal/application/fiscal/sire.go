package fiscal

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Tributo-api/internal/domain/entity"
)

// Registros SIRE exportables.
const (
	RegisterRVIE = "RVIE" // registro de ventas e ingresos
	RegisterRCE  = "RCE"  // registro de compras
)

const sireHeader = "PERIODO|TIPO|SERIE|NUMERO|FECHA|DOC_ENTIDAD|RAZON_SOCIAL|BASE|IGV|TOTAL|MONEDA"

// sireDocCode devuelve el código de Tabla 10 SUNAT del comprobante.
func sireDocCode(docType string) string {
	if docType == entity.DocTypeFactura {
		return "01"
	}
	return "03"
}

// splitDocNumber separa SERIE-NUMERO en el primer guion. Sin guion, la serie
// queda vacía y todo va al número.
func splitDocNumber(docNumber string) (serie, numero string) {
	idx := strings.Index(docNumber, "-")
	if idx < 0 {
		return "", docNumber
	}
	return docNumber[:idx], docNumber[idx+1:]
}

// BuildSireTxt genera el contenido TXT plano del registro SIRE para el
// período dado: cabecera fija, una línea por comprobante ACEPTADO (los
// anulados y los pendientes de documentos no se declaran), separador pipe y
// fin de línea CRLF. Montos con dos decimales y moneda constante PEN.
func BuildSireTxt(period string, trxs []*entity.Transaction) string {
	sirePeriod := strings.ReplaceAll(period, "-", "")
	lines := []string{sireHeader}
	for _, t := range trxs {
		if t.Voided() || t.Pending() {
			continue
		}
		serie, numero := splitDocNumber(t.DocumentNumber)
		lines = append(lines, strings.Join([]string{
			sirePeriod,
			sireDocCode(t.DocumentType),
			serie,
			numero,
			t.Date.Format("02/01/2006"),
			t.EntityDocNumber,
			t.EntityName,
			t.BaseAmount.StringFixed(2),
			t.IgvAmount.StringFixed(2),
			t.TotalAmount.StringFixed(2),
			"PEN",
		}, "|"))
	}
	return strings.Join(lines, "\r\n") + "\r\n"
}

// SireFilename nombre convencional del archivo: SIRE_<REGISTRO>_<YYYYMM>.txt.
func SireFilename(register, period string) string {
	return fmt.Sprintf("SIRE_%s_%s.txt", register, strings.ReplaceAll(period, "-", ""))
}
