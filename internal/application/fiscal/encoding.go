package fiscal

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// EncodeWindows1252 re-codifica el TXT SIRE de UTF-8 a Windows-1252, la
// codificación que acepta el portal de SUNAT al importar archivos planos.
// Las razones sociales con tildes o eñes llegan intactas al portal.
func EncodeWindows1252(content string) ([]byte, error) {
	out, _, err := transform.Bytes(charmap.Windows1252.NewEncoder(), []byte(content))
	if err != nil {
		return nil, fmt.Errorf("codificando TXT a windows-1252: %w", err)
	}
	return out, nil
}
