package fiscal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Tributo-api/internal/application/fiscal"
)

// Los archivos SIRE se importan al portal de SUNAT en Windows-1252: las
// tildes y eñes de las razones sociales deben quedar en un solo byte.
func TestEncodeWindows1252_TildesYEnieEnUnByte(t *testing.T) {
	out, err := fiscal.EncodeWindows1252("PÉREZ ÑAÑA MARÍA")
	require.NoError(t, err)

	assert.Equal(t, 16, len(out), "cada carácter debe ocupar un byte")
	assert.Equal(t, byte(0xC9), out[1], "É debe codificarse como 0xC9")
	assert.Equal(t, byte(0xD1), out[6], "Ñ debe codificarse como 0xD1")
	assert.Equal(t, byte(0xCD), out[14], "Í debe codificarse como 0xCD")
}

func TestEncodeWindows1252_ASCIIPasaIntacto(t *testing.T) {
	in := "20260101|01|F001|00000012|850.00|153.00|1003.00\r\n"
	out, err := fiscal.EncodeWindows1252(in)
	require.NoError(t, err)
	assert.Equal(t, []byte(in), out)
}
