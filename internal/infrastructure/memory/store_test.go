package memory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/memory"
)

func seedProduct(t *testing.T, repo *memory.ProductRepository, id, code string, qty int) {
	t.Helper()
	require.NoError(t, repo.Create(&entity.Product{
		ID:        id,
		StockCode: code,
		Name:      "Producto " + code,
		Quantity:  qty,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}))
}

// TestProductRepository_DevuelveCopias verifica que el store guarda valores:
// mutar el puntero devuelto por una lectura no altera el estado almacenado.
func TestProductRepository_DevuelveCopias(t *testing.T) {
	repo := memory.NewProductRepository(memory.NewStore())
	seedProduct(t, repo, "p1", "COPIA", 5)

	leido, err := repo.GetByID("p1")
	require.NoError(t, err)
	leido.Quantity = 999

	otraVez, err := repo.GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, 5, otraVez.Quantity,
		"mutar una copia leída no debe tocar el store; los cambios pasan por Update")
}

func TestProductRepository_ListConservaOrdenDeInsercion(t *testing.T) {
	repo := memory.NewProductRepository(memory.NewStore())
	seedProduct(t, repo, "p1", "PRIMERO", 1)
	seedProduct(t, repo, "p2", "SEGUNDO", 1)
	seedProduct(t, repo, "p3", "TERCERO", 1)

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"p1", "p2", "p3"},
		[]string{list[0].ID, list[1].ID, list[2].ID})
}

func TestProductRepository_UpdateYDeleteDeInexistenteFallan(t *testing.T) {
	repo := memory.NewProductRepository(memory.NewStore())

	err := repo.Update(&entity.Product{ID: "nada"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = repo.Delete("nada")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSerialNumberRepository_ValorUnicoGlobal(t *testing.T) {
	repo := memory.NewSerialNumberRepository(memory.NewStore())

	require.NoError(t, repo.Create(&entity.SerialNumber{
		ID: "s1", ProductID: "p1", Serial: "SN-1", Status: entity.SerialStatusAvailable,
	}))

	// Mismo valor en otro producto: también se rechaza.
	err := repo.Create(&entity.SerialNumber{
		ID: "s2", ProductID: "p2", Serial: "SN-1", Status: entity.SerialStatusAvailable,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestSerialNumberRepository_ListAvailableFiltraPorEstado(t *testing.T) {
	repo := memory.NewSerialNumberRepository(memory.NewStore())

	require.NoError(t, repo.Create(&entity.SerialNumber{
		ID: "s1", ProductID: "p1", Serial: "SN-1", Status: entity.SerialStatusAvailable,
	}))
	require.NoError(t, repo.Create(&entity.SerialNumber{
		ID: "s2", ProductID: "p1", Serial: "SN-2", Status: entity.SerialStatusSold,
	}))
	require.NoError(t, repo.Create(&entity.SerialNumber{
		ID: "s3", ProductID: "p2", Serial: "SN-3", Status: entity.SerialStatusAvailable,
	}))

	list, err := repo.ListAvailableByProduct("p1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "s1", list[0].ID)
}

func TestSaleRepository_ListByDayFiltraPorDiaCalendario(t *testing.T) {
	repo := memory.NewSaleRepository(memory.NewStore())
	hoy := time.Now()

	require.NoError(t, repo.Create(&entity.Sale{ID: "v1", ProductID: "p1", SaleDate: hoy}))
	require.NoError(t, repo.Create(&entity.Sale{ID: "v2", ProductID: "p1", SaleDate: hoy.AddDate(0, 0, -1)}))
	// Límite de día: hoy a las 00:00 sigue siendo hoy.
	medianoche := time.Date(hoy.Year(), hoy.Month(), hoy.Day(), 0, 0, 0, 0, hoy.Location())
	require.NoError(t, repo.Create(&entity.Sale{ID: "v3", ProductID: "p1", SaleDate: medianoche}))

	list, err := repo.ListByDay(hoy)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "v1", list[0].ID)
	assert.Equal(t, "v3", list[1].ID)
}
