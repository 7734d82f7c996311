package document

import (
	"context"
	"time"

	"github.com/jhoicas/invoice-generator/internal/domain/entity"
)

// LineItemDocument datos que necesita el generador para dibujar un listado de líneas.
type LineItemDocument struct {
	ID     string
	Title  string
	Author string
	Date   time.Time
	Items  []entity.LineItem
}

// LineItemPDFGenerator puerto de salida para generar el PDF (lo implementa infrastructure/pdf).
type LineItemPDFGenerator interface {
	GenerateLineItemsPDF(ctx context.Context, doc LineItemDocument) ([]byte, error)
}
