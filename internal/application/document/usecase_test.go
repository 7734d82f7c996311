package document_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-generator/internal/application/document"
	"github.com/jhoicas/invoice-generator/internal/application/dto"
	"github.com/jhoicas/invoice-generator/internal/domain"
)

// fakeGenerator guarda el último documento recibido.
type fakeGenerator struct {
	last document.LineItemDocument
	err  error
}

func (f *fakeGenerator) GenerateLineItemsPDF(_ context.Context, doc document.LineItemDocument) ([]byte, error) {
	f.last = doc
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-fake"), nil
}

func widgetRequest() dto.LineItemDocumentRequest {
	return dto.LineItemDocumentRequest{
		Reference: "FAC-001",
		Items: []dto.LineItemDTO{
			{Name: "Widget", Price: decimal.RequireFromString("9.99"), Quantity: decimal.NewFromInt(3)},
			{Name: "Queso", Price: decimal.RequireFromString("18000"), Quantity: decimal.RequireFromString("0.35")},
		},
	}
}

func TestRenderPDF_OK(t *testing.T) {
	gen := &fakeGenerator{}
	uc := document.NewDocumentUseCase(gen, document.Config{Author: "tienda"})

	pdf, filename, err := uc.RenderPDF(context.Background(), widgetRequest())
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-fake"), pdf)
	assert.Equal(t, "items_FAC-001.pdf", filename)
	assert.Equal(t, "FAC-001", gen.last.ID)
	assert.Equal(t, "Detalle de ítems", gen.last.Title, "sin título se usa el de la configuración")
	assert.Equal(t, "tienda", gen.last.Author)
	assert.False(t, gen.last.Date.IsZero())
	require.Len(t, gen.last.Items, 2)
	assert.Equal(t, "Widget", gen.last.Items[0].Name)
	assert.Equal(t, "0.35", gen.last.Items[1].Quantity.String())
}

func TestRenderPDF_SinReferenciaGeneraID(t *testing.T) {
	gen := &fakeGenerator{}
	uc := document.NewDocumentUseCase(gen, document.Config{})
	req := widgetRequest()
	req.Reference = "  "

	_, filename, err := uc.RenderPDF(context.Background(), req)
	require.NoError(t, err)

	_, parseErr := uuid.Parse(gen.last.ID)
	assert.NoError(t, parseErr, "la referencia generada debe ser un UUID")
	assert.Equal(t, "items_"+gen.last.ID+".pdf", filename)
}

func TestRenderPDF_SinLineas(t *testing.T) {
	uc := document.NewDocumentUseCase(&fakeGenerator{}, document.Config{})

	_, _, err := uc.RenderPDF(context.Background(), dto.LineItemDocumentRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRenderPDF_ErrorDelGenerador(t *testing.T) {
	boom := errors.New("fuente no encontrada")
	uc := document.NewDocumentUseCase(&fakeGenerator{err: boom}, document.Config{})

	_, _, err := uc.RenderPDF(context.Background(), widgetRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "pdf:")
}

func TestNormalize_NoRechazaValores(t *testing.T) {
	uc := document.NewDocumentUseCase(&fakeGenerator{}, document.Config{})
	req := dto.LineItemDocumentRequest{Items: []dto.LineItemDTO{
		{Name: "", Price: decimal.RequireFromString("-1.50"), Quantity: decimal.Zero},
	}}

	resp, err := uc.Normalize(context.Background(), req)
	require.NoError(t, err)

	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "-1.5", resp.Items[0].Price.String())
	assert.True(t, resp.Items[0].Quantity.IsZero())
}

func TestFilename_Sanitiza(t *testing.T) {
	assert.Equal(t, "items_FAC_2024_01.pdf", document.Filename("FAC/2024 01"))
	assert.Equal(t, "items_a_b.pdf", document.Filename("a.b"))
	assert.Equal(t, "items_SETP-99_x.pdf", document.Filename("SETP-99_x"))
}

func TestNormalize_ExponenteFueraDeRango(t *testing.T) {
	uc := document.NewDocumentUseCase(&fakeGenerator{}, document.Config{})
	req := dto.LineItemDocumentRequest{Items: []dto.LineItemDTO{
		{Name: "x", Price: decimal.RequireFromString("1e20000000"), Quantity: decimal.NewFromInt(1)},
	}}

	_, err := uc.Normalize(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "items[0].price")
}

func TestRenderPDF_ExponenteFueraDeRangoNoLlegaAlGenerador(t *testing.T) {
	gen := &fakeGenerator{}
	uc := document.NewDocumentUseCase(gen, document.Config{})
	req := widgetRequest()
	req.Items[1].Quantity = decimal.RequireFromString("1e-100")

	_, _, err := uc.RenderPDF(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, gen.last.Items, "el generador no debe invocarse")
}
