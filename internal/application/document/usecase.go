package document

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/invoice-generator/internal/application/dto"
	"github.com/jhoicas/invoice-generator/internal/domain"
	"github.com/jhoicas/invoice-generator/internal/domain/entity"
)

// Config valores por defecto del documento.
type Config struct {
	Title  string
	Author string
}

// DocumentUseCase normaliza líneas y genera su representación en PDF.
// No calcula totales ni valida precios o cantidades.
type DocumentUseCase struct {
	generator LineItemPDFGenerator
	cfg       Config
	now       func() time.Time
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(generator LineItemPDFGenerator, cfg Config) *DocumentUseCase {
	if cfg.Title == "" {
		cfg.Title = "Detalle de ítems"
	}
	return &DocumentUseCase{generator: generator, cfg: cfg, now: time.Now}
}

// Normalize devuelve las líneas del request en forma canónica.
// Solo rechaza decimales con exponente fuera de rango (domain.ErrInvalidInput).
func (uc *DocumentUseCase) Normalize(_ context.Context, in dto.LineItemDocumentRequest) (dto.LineItemListResponse, error) {
	if err := in.Validate(); err != nil {
		return dto.LineItemListResponse{}, err
	}
	return dto.NewLineItemListResponse(in.Entities()), nil
}

// RenderPDF genera el PDF de las líneas del request.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrInvalidInput    si no hay líneas o algún decimal está fuera de rango.
func (uc *DocumentUseCase) RenderPDF(ctx context.Context, in dto.LineItemDocumentRequest) (pdfBytes []byte, filename string, err error) {
	if err := in.Validate(); err != nil {
		return nil, "", err
	}
	return uc.Render(ctx, in.Title, in.Reference, in.Entities())
}

// Render genera el PDF a partir de entidades ya construidas (lo usa también cmd/render).
func (uc *DocumentUseCase) Render(ctx context.Context, title, reference string, items []entity.LineItem) ([]byte, string, error) {
	if len(items) == 0 {
		return nil, "", fmt.Errorf("%w: el documento necesita al menos una línea", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(title) == "" {
		title = uc.cfg.Title
	}
	reference = strings.TrimSpace(reference)
	if reference == "" {
		reference = uuid.New().String()
	}

	doc := LineItemDocument{
		ID:     reference,
		Title:  title,
		Author: uc.cfg.Author,
		Date:   uc.now(),
		Items:  items,
	}
	pdfBytes, err := uc.generator.GenerateLineItemsPDF(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, Filename(reference), nil
}

// Filename arma el nombre del archivo descargable: items_<referencia>.pdf.
// Cualquier carácter fuera de [A-Za-z0-9_-] se reemplaza por '_'.
func Filename(reference string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, reference)
	return "items_" + safe + ".pdf"
}
