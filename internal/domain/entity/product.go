package entity

import "github.com/shopspring/decimal"

// Product representa un producto del inventario.
// El ID lo asigna el store al crear (entero, monótono, nunca reutilizado);
// Name, Stock y Price son obligatorios para que el registro exista.
type Product struct {
	ID    int64
	Name  string
	Stock int64           // cantidad, no negativa
	Price decimal.Decimal // precio unitario, no negativo
}
