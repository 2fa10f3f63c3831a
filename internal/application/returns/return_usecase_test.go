package returns_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/returns"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/memory"
)

func newReturnUC() *returns.ReturnUseCase {
	store := memory.NewStore()
	return returns.NewReturnUseCase(memory.NewTxRunner(store), memory.NewReturnRepository(store))
}

func returnReq(saleID string) dto.CreateReturnRequest {
	return dto.CreateReturnRequest{
		SaleID:     saleID,
		ProductID:  "prod-1",
		CustomerID: "cliente-1",
		Reason:     "pantalla rota",
	}
}

func TestCreateReturn_NaceEnPending(t *testing.T) {
	uc := newReturnUC()

	out, err := uc.Create(returnReq("venta-1"))
	require.NoError(t, err)
	assert.Equal(t, "pending", out.Status)
	assert.Nil(t, out.ResolvedAt)
	assert.False(t, out.ReturnDate.IsZero())
}

func TestCreateReturn_ReferenciasColgantesSeToleran(t *testing.T) {
	uc := newReturnUC()

	// Ninguno de los IDs existe; la devolución se registra igual y las
	// lecturas no fallan por ella.
	out, err := uc.Create(returnReq("venta-fantasma"))
	require.NoError(t, err)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, out.ID, list[0].ID)
}

func TestCreateReturn_CamposRequeridos(t *testing.T) {
	uc := newReturnUC()

	casos := []dto.CreateReturnRequest{
		{ProductID: "p", CustomerID: "c", Reason: "r"},
		{SaleID: "s", CustomerID: "c", Reason: "r"},
		{SaleID: "s", ProductID: "p", Reason: "r"},
		{SaleID: "s", ProductID: "p", CustomerID: "c"},
	}
	for _, in := range casos {
		_, err := uc.Create(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// TestCreateReturn_NoTocaStockNiMovimientos documenta el contrato de append
// puro: registrar la devolución no reingresa mercancía; eso es una llamada
// explícita y separada al registro de movimientos.
func TestCreateReturn_NoTocaStockNiMovimientos(t *testing.T) {
	store := memory.NewStore()
	tx := memory.NewTxRunner(store)
	products := memory.NewProductRepository(store)
	movements := memory.NewStockMovementRepository(store)
	productUC := usecase.NewProductUseCase(tx, products)
	uc := returns.NewReturnUseCase(tx, memory.NewReturnRepository(store))

	product, err := productUC.Create(context.Background(), "", dto.CreateProductRequest{
		StockCode: "DEV",
		Name:      "Producto devuelto",
		Quantity:  3,
	})
	require.NoError(t, err)

	in := returnReq("venta-1")
	in.ProductID = product.ID
	_, err = uc.Create(in)
	require.NoError(t, err)

	after, _ := products.GetByID(product.ID)
	assert.Equal(t, 3, after.Quantity, "la devolución no reingresa stock")
	movs, _ := movements.ListByProduct(product.ID)
	assert.Len(t, movs, 1, "solo la entrada inicial: la devolución no emite movimientos")
}

func TestUpdateReturnStatus_FijaResolvedAtUnaVez(t *testing.T) {
	uc := newReturnUC()
	ctx := context.Background()

	out, err := uc.Create(returnReq("venta-1"))
	require.NoError(t, err)

	aprobada, err := uc.UpdateStatus(ctx, out.ID, dto.UpdateReturnStatusRequest{Status: "approved"})
	require.NoError(t, err)
	require.NotNil(t, aprobada.ResolvedAt, "salir de pending fija ResolvedAt")
	primera := *aprobada.ResolvedAt

	time.Sleep(5 * time.Millisecond)
	resuelta, err := uc.UpdateStatus(ctx, out.ID, dto.UpdateReturnStatusRequest{Status: "resolved"})
	require.NoError(t, err)
	require.NotNil(t, resuelta.ResolvedAt)
	assert.True(t, resuelta.ResolvedAt.Equal(primera),
		"ResolvedAt marca la primera resolución y no se reescribe")
}

// TestUpdateReturnStatus_ConcurrenciaNoPierdeNotas verifica que dos
// resoluciones simultáneas de la misma devolución quedan serializadas: la
// que no trae notas re-lee la copia fresca y no pisa las notas de la otra,
// y ResolvedAt queda asignado exactamente una vez.
func TestUpdateReturnStatus_ConcurrenciaNoPierdeNotas(t *testing.T) {
	uc := newReturnUC()
	ctx := context.Background()

	for i := 0; i < 200; i++ {
		out, err := uc.Create(returnReq("venta-carrera"))
		require.NoError(t, err)

		notas := "inspección ok"
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = uc.UpdateStatus(ctx, out.ID, dto.UpdateReturnStatusRequest{Status: "approved", Notes: &notas})
		}()
		go func() {
			defer wg.Done()
			_, _ = uc.UpdateStatus(ctx, out.ID, dto.UpdateReturnStatusRequest{Status: "approved"})
		}()
		wg.Wait()

		final, err := uc.GetByID(out.ID)
		require.NoError(t, err)
		require.Equal(t, "approved", final.Status)
		require.Equal(t, "inspección ok", final.Notes,
			"iteración %d: las notas se perdieron frente a la otra resolución", i)
		require.NotNil(t, final.ResolvedAt, "iteración %d: falta ResolvedAt", i)
	}
}

func TestUpdateReturnStatus_EstadoInvalido(t *testing.T) {
	uc := newReturnUC()
	out, err := uc.Create(returnReq("venta-1"))
	require.NoError(t, err)

	_, err = uc.UpdateStatus(context.Background(), out.ID, dto.UpdateReturnStatusRequest{Status: "quemada"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateReturnStatus_InexistenteDevuelveNil(t *testing.T) {
	uc := newReturnUC()

	out, err := uc.UpdateStatus(context.Background(), "no-existe", dto.UpdateReturnStatusRequest{Status: "approved"})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestListReturns_MasRecientesPrimero(t *testing.T) {
	uc := newReturnUC()

	primera, err := uc.Create(returnReq("venta-1"))
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	segunda, err := uc.Create(returnReq("venta-2"))
	require.NoError(t, err)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, segunda.ID, list[0].ID, "el listado va de más reciente a más antigua")
	assert.Equal(t, primera.ID, list[1].ID)
}

func TestListReturns_PorCliente(t *testing.T) {
	uc := newReturnUC()

	in := returnReq("venta-1")
	_, err := uc.Create(in)
	require.NoError(t, err)

	otro := returnReq("venta-2")
	otro.CustomerID = "cliente-2"
	_, err = uc.Create(otro)
	require.NoError(t, err)

	list, err := uc.ListByCustomer("cliente-2")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "cliente-2", list[0].CustomerID)
}
