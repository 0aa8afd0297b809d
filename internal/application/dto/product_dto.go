package dto

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// FormValue es un escalar JSON que puede llegar como string o como número.
// El cliente de referencia envía el estado del formulario tal cual, donde
// stock y price son strings ("10", "2.5"); otros clientes mandan números.
// Se conserva el texto crudo: la coerción numérica es política del use case.
type FormValue string

// UnmarshalJSON acepta string, número, bool o null. null queda como vacío.
func (v *FormValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		*v = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FormValue(s)
		return nil
	}
	*v = FormValue(data)
	return nil
}

func (v FormValue) String() string { return string(v) }

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name  string    `json:"name"`
	Stock FormValue `json:"stock"`
	Price FormValue `json:"price"`
}

// UpdateProductRequest entrada para actualizar un producto (reemplazo
// completo de los tres campos; el ID viaja en la ruta).
type UpdateProductRequest struct {
	Name  string    `json:"name"`
	Stock FormValue `json:"stock"`
	Price FormValue `json:"price"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID    int64           `json:"id"`
	Name  string          `json:"name"`
	Stock int64           `json:"stock"`
	Price decimal.Decimal `json:"price"`
}
