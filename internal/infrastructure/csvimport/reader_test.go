package csvimport_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-generator/internal/domain"
	"github.com/jhoicas/invoice-generator/internal/infrastructure/csvimport"
)

func newReader(t *testing.T, opts csvimport.Options) *csvimport.Reader {
	t.Helper()
	r, err := csvimport.NewReader(opts)
	require.NoError(t, err)
	return r
}

func TestReadLineItems_ConCabecera(t *testing.T) {
	in := "name,price,quantity\nWidget,9.99,3\nQueso,18000,0.35\n"

	items, err := newReader(t, csvimport.Options{}).ReadLineItems(strings.NewReader(in))
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, "Widget", items[0].Name)
	assert.Equal(t, "9.99", items[0].Price.String())
	assert.Equal(t, "3", items[0].Quantity.String())
	assert.Equal(t, "0.35", items[1].Quantity.String())
}

func TestReadLineItems_SinCabeceraYFilasVacias(t *testing.T) {
	in := "Widget,9.99,3\n\n , , \nTornillo,-0.5,\n"

	items, err := newReader(t, csvimport.Options{}).ReadLineItems(strings.NewReader(in))
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, "Tornillo", items[1].Name)
	assert.Equal(t, "-0.5", items[1].Price.String())
	assert.True(t, items[1].Quantity.IsZero(), "cantidad vacía cuenta como cero")
}

func TestReadLineItems_PuntoYComaLatin1(t *testing.T) {
	// "Jamón" en ISO-8859-1: ó = 0xF3
	in := []byte("nombre;precio;cantidad\nJam\xf3n;25000;1.5\n")

	items, err := newReader(t, csvimport.Options{Charset: "ISO-8859-1", Comma: ';'}).
		ReadLineItems(bytes.NewReader(in))
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "Jamón", items[0].Name)
	assert.Equal(t, "1.5", items[0].Quantity.String())
}

func TestReadLineItems_PrecioInvalido(t *testing.T) {
	in := "Widget,9.99,3\nGadget,nueve,1\n"

	_, err := newReader(t, csvimport.Options{}).ReadLineItems(strings.NewReader(in))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "línea 2")
}

func TestReadLineItems_ColumnasIncorrectas(t *testing.T) {
	_, err := newReader(t, csvimport.Options{}).ReadLineItems(strings.NewReader("Widget,9.99\n"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewReader_OpcionesNoSoportadas(t *testing.T) {
	_, err := csvimport.NewReader(csvimport.Options{Comma: '|'})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = csvimport.NewReader(csvimport.Options{Charset: "shift-jis"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReadLineItems_QuitaBOMUTF8(t *testing.T) {
	items, err := newReader(t, csvimport.Options{}).ReadLineItems(strings.NewReader("\ufeffWidget,9.99,3\n"))
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "Widget", items[0].Name)
}

func TestReadLineItems_BOMConCabecera(t *testing.T) {
	in := "\ufeffname,price,quantity\nWidget,9.99,3\n"

	items, err := newReader(t, csvimport.Options{}).ReadLineItems(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Widget", items[0].Name)
}

// Una primera fila con cantidad decimal es un dato, aunque el precio esté malformado.
func TestReadLineItems_PrimeraFilaMalformadaNoEsCabecera(t *testing.T) {
	_, err := newReader(t, csvimport.Options{}).ReadLineItems(strings.NewReader("Widget,nueve,3\nGadget,1,1\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "línea 1")
}

func TestReadLineItems_LineaRealConFilasVacias(t *testing.T) {
	_, err := newReader(t, csvimport.Options{}).ReadLineItems(strings.NewReader("Widget,1,1\n\n\n\nGadget,x,1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "línea 5")
}

func TestReadLineItems_ExponenteFueraDeRango(t *testing.T) {
	_, err := newReader(t, csvimport.Options{}).ReadLineItems(strings.NewReader("Widget,1e20000000,1\n"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// fuera de rango en ambas columnas: sigue siendo dato, no cabecera
	_, err = newReader(t, csvimport.Options{}).ReadLineItems(strings.NewReader("x,1e999,1e999\n"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
