package entity

import "github.com/shopspring/decimal"

// LineItem representa una línea de factura: un producto o servicio con su precio unitario y cantidad.
// No valida nada: nombre vacío, precio negativo o cantidad fraccionaria son valores válidos.
type LineItem struct {
	Name     string
	Price    decimal.Decimal // precio por unidad (punto fijo, nunca float)
	Quantity decimal.Decimal // admite fracciones (ej. productos por peso)
}

// NewLineItem construye una línea con los valores tal cual.
func NewLineItem(name string, price, quantity decimal.Decimal) LineItem {
	return LineItem{Name: name, Price: price, Quantity: quantity}
}
