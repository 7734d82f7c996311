package dto

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoice-generator/internal/domain"
	"github.com/jhoicas/invoice-generator/internal/domain/entity"
)

// MaxExponent límite del exponente decimal aceptado en la entrada.
// "1e20000000" ocupa 10 bytes pero al serializarse escribe veinte millones de dígitos.
const MaxExponent = 64

// CheckDecimal rechaza valores con exponente fuera de ±MaxExponent.
func CheckDecimal(field string, d decimal.Decimal) error {
	if exp := d.Exponent(); exp > MaxExponent || exp < -MaxExponent {
		return fmt.Errorf("%w: %s fuera de rango (exponente %d, máximo ±%d)", domain.ErrInvalidInput, field, exp, MaxExponent)
	}
	return nil
}

// LineItemDTO forma de intercambio de una línea: {name, price, quantity}.
// price y quantity se serializan como string decimal; al leer se aceptan string o número JSON.
type LineItemDTO struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity decimal.Decimal `json:"quantity"`
}

// ToEntity convierte el DTO en entidad sin tocar los valores.
func (d LineItemDTO) ToEntity() entity.LineItem {
	return entity.NewLineItem(d.Name, d.Price, d.Quantity)
}

// FromLineItem construye el DTO desde la entidad.
func FromLineItem(item entity.LineItem) LineItemDTO {
	return LineItemDTO{Name: item.Name, Price: item.Price, Quantity: item.Quantity}
}

// LineItemDocumentRequest body para POST /api/line-items/normalize y /api/line-items/pdf.
// Reference es opcional; si va vacío se genera un ID de documento.
type LineItemDocumentRequest struct {
	Title     string        `json:"title,omitempty"`
	Reference string        `json:"reference,omitempty"`
	Items     []LineItemDTO `json:"items"`
}

// Validate acota el exponente de price y quantity en cada línea. No revisa signo ni nombre.
func (r LineItemDocumentRequest) Validate() error {
	for i, it := range r.Items {
		if err := CheckDecimal(fmt.Sprintf("items[%d].price", i), it.Price); err != nil {
			return err
		}
		if err := CheckDecimal(fmt.Sprintf("items[%d].quantity", i), it.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// Entities devuelve las líneas del request como entidades, en el mismo orden.
func (r LineItemDocumentRequest) Entities() []entity.LineItem {
	out := make([]entity.LineItem, 0, len(r.Items))
	for _, it := range r.Items {
		out = append(out, it.ToEntity())
	}
	return out
}

// LineItemListResponse líneas en forma canónica.
type LineItemListResponse struct {
	Items []LineItemDTO `json:"items"`
	Count int           `json:"count"`
}

// NewLineItemListResponse arma la respuesta a partir de entidades.
func NewLineItemListResponse(items []entity.LineItem) LineItemListResponse {
	resp := LineItemListResponse{Items: make([]LineItemDTO, 0, len(items)), Count: len(items)}
	for _, it := range items {
		resp.Items = append(resp.Items, FromLineItem(it))
	}
	return resp
}
