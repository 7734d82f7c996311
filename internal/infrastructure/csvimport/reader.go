// Package csvimport carga líneas de factura desde archivos CSV (name,price,quantity).
package csvimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jhoicas/invoice-generator/internal/application/dto"
	"github.com/jhoicas/invoice-generator/internal/domain"
	"github.com/jhoicas/invoice-generator/internal/domain/entity"
)

// Charsets soportados.
const (
	CharsetUTF8   = "utf-8"
	CharsetLatin1 = "iso-8859-1"
)

// Options configuración de lectura.
type Options struct {
	Charset string // utf-8 (defecto) o iso-8859-1 (exportaciones de Excel en español)
	Comma   rune   // ',' (defecto) o ';'
}

// Reader lee líneas desde CSV.
type Reader struct {
	opts Options
}

// NewReader construye el lector aplicando valores por defecto.
func NewReader(opts Options) (*Reader, error) {
	if opts.Comma == 0 {
		opts.Comma = ','
	}
	if opts.Comma != ',' && opts.Comma != ';' {
		return nil, fmt.Errorf("%w: separador %q no soportado", domain.ErrInvalidInput, opts.Comma)
	}
	switch strings.ToLower(opts.Charset) {
	case "", "utf8", CharsetUTF8:
		opts.Charset = CharsetUTF8
	case "latin1", "iso8859-1", CharsetLatin1:
		opts.Charset = CharsetLatin1
	default:
		return nil, fmt.Errorf("%w: charset %q no soportado", domain.ErrInvalidInput, opts.Charset)
	}
	return &Reader{opts: opts}, nil
}

// ReadLineItems lee todas las filas. La primera fila no vacía es cabecera si ni su precio ni su cantidad son decimales.
// Las filas vacías se ignoran; precio o cantidad vacíos cuentan como cero.
// Los errores indican la línea del archivo.
func (r *Reader) ReadLineItems(in io.Reader) ([]entity.LineItem, error) {
	if r.opts.Charset == CharsetLatin1 {
		in = transform.NewReader(in, charmap.ISO8859_1.NewDecoder())
	} else {
		// Excel ("CSV UTF-8") antepone un BOM
		in = transform.NewReader(in, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	}
	cr := csv.NewReader(in)
	cr.Comma = r.opts.Comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var items []entity.LineItem
	headerChecked := false
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// csv.ParseError ya incluye la línea
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		line, _ := cr.FieldPos(0)
		if isBlank(rec) {
			continue
		}
		if len(rec) != 3 {
			return nil, fmt.Errorf("%w: línea %d: se esperaban 3 columnas (name,price,quantity), hay %d",
				domain.ErrInvalidInput, line, len(rec))
		}
		if !headerChecked {
			headerChecked = true
			if isHeader(rec) {
				continue
			}
		}
		price, err := parseDecimal(rec[1])
		if err != nil {
			return nil, fmt.Errorf("%w: línea %d: precio %q inválido", domain.ErrInvalidInput, line, rec[1])
		}
		qty, err := parseDecimal(rec[2])
		if err != nil {
			return nil, fmt.Errorf("%w: línea %d: cantidad %q inválida", domain.ErrInvalidInput, line, rec[2])
		}
		items = append(items, entity.NewLineItem(strings.TrimSpace(rec[0]), price, qty))
	}
	return items, nil
}

// isHeader: precio y cantidad no decimales (ej. "price,quantity" o "precio;cantidad").
// Con una sola columna no decimal la fila es un dato malformado, no una cabecera.
func isHeader(rec []string) bool {
	return !isDecimal(rec[1]) && !isDecimal(rec[2])
}

// isDecimal revisa solo la sintaxis; el rango lo valida parseDecimal.
func isDecimal(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	_, err := decimal.NewFromString(s)
	return err == nil
}

func isBlank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func parseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if err := dto.CheckDecimal("valor", d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}
