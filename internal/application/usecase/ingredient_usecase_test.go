package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/never130/isidro-gourmet/internal/application/dto"
	"github.com/never130/isidro-gourmet/internal/application/usecase"
	"github.com/never130/isidro-gourmet/internal/domain"
	"github.com/never130/isidro-gourmet/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func buildIngredientUC(ings ...*entity.Ingredient) (*usecase.IngredientUseCase, *fakeIngredientRepo, *fakeMovementRepo) {
	ingRepo := newFakeIngredientRepo(ings...)
	movRepo := &fakeMovementRepo{}
	tx := &fakeTxRunner{ing: ingRepo, mov: movRepo}
	uc := usecase.NewIngredientUseCase(ingRepo, newFakeUnitRepo(), movRepo, tx)
	return uc, ingRepo, movRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// AdjustStock — ajuste transaccional con auditoría
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustStock_AddSumaYAudita(t *testing.T) {
	harina := &entity.Ingredient{ID: "ing-1", Name: "Harina", Stock: dec("10")}
	uc, repo, mov := buildIngredientUC(harina)

	out, err := uc.AdjustStock(context.Background(), "ing-1", "user-1", dto.AdjustStockRequest{
		Mode: "ADD", Amount: dec("2.5"), Reason: "compra semanal",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, out.Delta.Equal(dec("2.5")), "delta debe ser +2.5")
	assert.True(t, out.PreviousStock.Equal(dec("10")))
	assert.True(t, out.NewStock.Equal(dec("12.5")))
	assert.True(t, repo.ingredients["ing-1"].Stock.Equal(dec("12.5")),
		"el stock persistido debe ser el nuevo")

	require.Len(t, mov.movements, 1, "debe registrarse un movimiento de auditoría")
	m := mov.movements[0]
	assert.Equal(t, "ing-1", m.IngredientID)
	assert.Equal(t, "user-1", m.CreatedBy)
	assert.Equal(t, "compra semanal", m.Reason)
	assert.True(t, m.PreviousStock.Equal(dec("10")))
	assert.True(t, m.NewStock.Equal(dec("12.5")))
}

func TestAdjustStock_SetTotalCalculaDeltaEnServidor(t *testing.T) {
	uc, _, mov := buildIngredientUC(&entity.Ingredient{ID: "ing-1", Stock: dec("8")})

	out, err := uc.AdjustStock(context.Background(), "ing-1", "user-1", dto.AdjustStockRequest{
		Mode: "SET_TOTAL", Amount: dec("5"),
	})
	require.NoError(t, err)

	assert.True(t, out.Delta.Equal(dec("-3")), "el delta lo calcula el servidor: 5 - 8 = -3")
	assert.True(t, out.NewStock.Equal(dec("5")))
	require.Len(t, mov.movements, 1)
	assert.True(t, mov.movements[0].Delta.Equal(dec("-3")))
}

func TestAdjustStock_SubtractQueDejaNegativo_Falla(t *testing.T) {
	uc, repo, mov := buildIngredientUC(&entity.Ingredient{ID: "ing-1", Stock: dec("2")})

	out, err := uc.AdjustStock(context.Background(), "ing-1", "user-1", dto.AdjustStockRequest{
		Mode: "SUBTRACT", Amount: dec("5"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidAdjustment)
	assert.Nil(t, out)
	assert.True(t, repo.ingredients["ing-1"].Stock.Equal(dec("2")),
		"el stock no debe cambiar si el ajuste falla")
	assert.Empty(t, mov.movements, "no debe auditarse un ajuste rechazado")
}

func TestAdjustStock_SubtractHastaCero_EsValido(t *testing.T) {
	uc, _, _ := buildIngredientUC(&entity.Ingredient{ID: "ing-1", Stock: dec("5")})

	out, err := uc.AdjustStock(context.Background(), "ing-1", "user-1", dto.AdjustStockRequest{
		Mode: "SUBTRACT", Amount: dec("5"),
	})
	require.NoError(t, err)
	assert.True(t, out.NewStock.IsZero(), "llegar exactamente a cero es válido")
}

func TestAdjustStock_ModoInvalido_Falla(t *testing.T) {
	uc, _, _ := buildIngredientUC(&entity.Ingredient{ID: "ing-1", Stock: dec("5")})

	_, err := uc.AdjustStock(context.Background(), "ing-1", "user-1", dto.AdjustStockRequest{
		Mode: "MULTIPLY", Amount: dec("2"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjustStock_AmountNoPositivo_Falla(t *testing.T) {
	uc, _, _ := buildIngredientUC(&entity.Ingredient{ID: "ing-1", Stock: dec("5")})

	for _, amount := range []string{"0", "-1"} {
		_, err := uc.AdjustStock(context.Background(), "ing-1", "user-1", dto.AdjustStockRequest{
			Mode: "ADD", Amount: dec(amount),
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "amount %s debe rechazarse", amount)
	}
}

func TestAdjustStock_MasDeTresDecimales_Falla(t *testing.T) {
	uc, _, _ := buildIngredientUC(&entity.Ingredient{ID: "ing-1", Stock: dec("5")})

	_, err := uc.AdjustStock(context.Background(), "ing-1", "user-1", dto.AdjustStockRequest{
		Mode: "ADD", Amount: dec("0.1234"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjustStock_PreservaTresDecimales(t *testing.T) {
	uc, _, _ := buildIngredientUC(&entity.Ingredient{ID: "ing-1", Stock: dec("0.1")})

	out, err := uc.AdjustStock(context.Background(), "ing-1", "user-1", dto.AdjustStockRequest{
		Mode: "ADD", Amount: dec("0.125"),
	})
	require.NoError(t, err)
	assert.Equal(t, "0.225", out.NewStock.String(), "sin redondeo binario")
}

func TestAdjustStock_IngredienteInexistente_Falla(t *testing.T) {
	uc, _, _ := buildIngredientUC()

	_, err := uc.AdjustStock(context.Background(), "no-existe", "user-1", dto.AdjustStockRequest{
		Mode: "ADD", Amount: dec("1"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update — el costo distingue "sin registrar" de "cero"
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_ClearCostPriceDejaSinCosto(t *testing.T) {
	cost := dec("3.50")
	uc, repo, _ := buildIngredientUC(&entity.Ingredient{ID: "ing-1", Stock: dec("1"), CostPrice: &cost})

	out, err := uc.Update("ing-1", dto.UpdateIngredientRequest{ClearCostPrice: true})
	require.NoError(t, err)
	assert.Nil(t, out.CostPrice, "costo limpiado debe quedar sin registrar")
	assert.Nil(t, repo.ingredients["ing-1"].CostPrice)
}

func TestUpdate_CostoCeroNoEsSinCosto(t *testing.T) {
	uc, repo, _ := buildIngredientUC(&entity.Ingredient{ID: "ing-1", Stock: dec("1")})

	zero := decimal.Zero
	out, err := uc.Update("ing-1", dto.UpdateIngredientRequest{CostPrice: &zero})
	require.NoError(t, err)
	require.NotNil(t, out.CostPrice, "costo cero es un costo registrado")
	assert.True(t, out.CostPrice.IsZero())
	require.NotNil(t, repo.ingredients["ing-1"].CostPrice)
}
