package usecase

import (
	"context"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventario-lite/internal/application/dto"
	"github.com/tu-usuario/inventario-lite/internal/domain"
	"github.com/tu-usuario/inventario-lite/internal/domain/entity"
	"github.com/tu-usuario/inventario-lite/internal/domain/inventory"
	"github.com/tu-usuario/inventario-lite/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Es la única superficie de
// mutación del store: toda escritura pasa por su política de coerción.
//
// Política de coerción: stock se parsea como entero y price como decimal.
// Entrada vacía, ausente o no numérica falla con ValidationError antes de
// tocar el store, idéntico en create y update. Un valor 0 en stock o price
// se rechaza como si faltara el campo.
// TODO: confirmar con producto si stock 0 (agotado) y precio 0 (gratis)
// deben pasar a ser estados válidos; los clientes actuales esperan el rechazo.
type ProductUseCase struct {
	store repository.ProductStore
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(store repository.ProductStore) *ProductUseCase {
	return &ProductUseCase{store: store}
}

// List devuelve el snapshot completo ascendente por ID.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Get devuelve un producto por ID. ErrNotFound si no existe.
func (uc *ProductUseCase) Get(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	p, err := uc.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	out := toProductResponse(p)
	return &out, nil
}

// Search aplica el filtrado puro (texto + banda de stock) sobre un snapshot
// fresco. Mismas semánticas que el filtrado del cliente sobre su copia local.
func (uc *ProductUseCase) Search(ctx context.Context, search string, band inventory.StockBand) ([]dto.ProductResponse, error) {
	list, err := uc.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(inventory.Filter(list, search, band)), nil
}

// Create valida, coerciona y persiste un producto nuevo. El store asigna el ID.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name, stock, price, err := coerceFields(in.Name, in.Stock, in.Price)
	if err != nil {
		return nil, err
	}
	p, err := uc.store.Insert(ctx, name, stock, price)
	if err != nil {
		return nil, err
	}
	out := toProductResponse(p)
	return &out, nil
}

// Update reemplaza los tres campos del producto indicado. Misma validación
// que Create; ErrNotFound si el ID no existe.
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	name, stock, price, err := coerceFields(in.Name, in.Stock, in.Price)
	if err != nil {
		return nil, err
	}
	p, err := uc.store.Replace(ctx, id, name, stock, price)
	if err != nil {
		return nil, err
	}
	out := toProductResponse(p)
	return &out, nil
}

// Delete elimina el producto por ID. ErrNotFound si no existe.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	return uc.store.Remove(ctx, id)
}

// coerceFields aplica la política de validación compartida por Create y Update.
func coerceFields(name string, rawStock, rawPrice dto.FormValue) (string, int64, decimal.Decimal, error) {
	if name == "" {
		return "", 0, decimal.Decimal{}, domain.NewValidationError("name")
	}
	stock, err := coerceStock(rawStock)
	if err != nil {
		return "", 0, decimal.Decimal{}, err
	}
	price, err := coercePrice(rawPrice)
	if err != nil {
		return "", 0, decimal.Decimal{}, err
	}
	return name, stock, price, nil
}

func coerceStock(v dto.FormValue) (int64, error) {
	s := strings.TrimSpace(v.String())
	if s == "" {
		return 0, domain.NewValidationError("stock")
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError("stock")
	}
	// 0 se rechaza como campo ausente; negativo viola el invariante de cantidad.
	if n <= 0 {
		return 0, domain.NewValidationError("stock")
	}
	return n, nil
}

func coercePrice(v dto.FormValue) (decimal.Decimal, error) {
	s := strings.TrimSpace(v.String())
	if s == "" {
		return decimal.Decimal{}, domain.NewValidationError("price")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, domain.NewValidationError("price")
	}
	if d.IsZero() || d.IsNegative() {
		return decimal.Decimal{}, domain.NewValidationError("price")
	}
	return d, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{ID: p.ID, Name: p.Name, Stock: p.Stock, Price: p.Price}
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductResponse(p))
	}
	return items
}
