package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

func TestParseProducts_CabeceraYComaDecimal(t *testing.T) {
	csv := "code;name;cost\nDESK-001;Escritorio;120,50\nCHAIR-01;Silla;\n"
	got, err := parseProducts(strings.NewReader(csv), ';')
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "DESK-001", got[0].Code)
	assert.Equal(t, "120.5", got[0].Cost.String())
	assert.True(t, got[1].Cost.IsZero(), "costo vacío queda en cero")
	assert.NotEmpty(t, got[0].ID)
}

func TestParseProducts_CodigoRepetidoGanaUltimo(t *testing.T) {
	csv := "A1;Primero;1\na1;Segundo;2\n"
	got, err := parseProducts(strings.NewReader(csv), ';')
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Segundo", got[0].Name)
}

func TestParseProducts_Errores(t *testing.T) {
	_, err := parseProducts(strings.NewReader("A1\n"), ';')
	assert.Error(t, err, "falta name")

	_, err = parseProducts(strings.NewReader("A1;Mesa;abc\n"), ';')
	assert.Error(t, err, "costo no numérico")

	_, err = parseProducts(strings.NewReader("A1;Mesa;-3\n"), ';')
	assert.Error(t, err, "costo negativo")
}

func TestParseProducts_Latin1(t *testing.T) {
	encoded, err := charmap.ISO8859_1.NewEncoder().String("P-1;Cañón;10\n")
	require.NoError(t, err)

	r := transform.NewReader(strings.NewReader(encoded), charmap.ISO8859_1.NewDecoder())
	got, err := parseProducts(r, ';')
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Cañón", got[0].Name)
}

func TestWriteSQL_EscapaComillas(t *testing.T) {
	got, err := parseProducts(strings.NewReader("T-1;Tornillo 1/4' acero;0,25\n"), ';')
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeSQL(&buf, got))
	sql := buf.String()
	assert.Contains(t, sql, "'Tornillo 1/4'' acero'")
	assert.Contains(t, sql, "0.2500")
	assert.Contains(t, sql, "ON CONFLICT ((LOWER(code)))")
}
