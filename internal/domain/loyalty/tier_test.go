package loyalty_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/flowi-app/flowi-api/internal/domain/entity"
	"github.com/flowi-app/flowi-api/internal/domain/loyalty"
)

func TestPointsFor_UnPuntoPorUSDEntero(t *testing.T) {
	assert.Equal(t, 20, loyalty.PointsFor(decimal.NewFromFloat(20.99)), "los centavos no cuentan")
	assert.Equal(t, 0, loyalty.PointsFor(decimal.NewFromFloat(0.99)))
	assert.Equal(t, 0, loyalty.PointsFor(decimal.NewFromFloat(-10)), "montos negativos no restan")
}

func TestLevelFor_Umbrales(t *testing.T) {
	assert.Equal(t, entity.LevelBronze, loyalty.LevelFor(0))
	assert.Equal(t, entity.LevelBronze, loyalty.LevelFor(499))
	assert.Equal(t, entity.LevelSilver, loyalty.LevelFor(500))
	assert.Equal(t, entity.LevelSilver, loyalty.LevelFor(1499))
	assert.Equal(t, entity.LevelGold, loyalty.LevelFor(1500))
}

func TestAccrue_SumaYSubeDeNivel(t *testing.T) {
	c := &entity.Customer{TotalPoints: 480, CustomerLevel: entity.LevelBronze}
	loyalty.Accrue(c, decimal.NewFromFloat(25.50))

	assert.Equal(t, 505, c.TotalPoints)
	assert.Equal(t, entity.LevelSilver, c.CustomerLevel)
}

func TestAccrue_ElNivelNuncaBaja(t *testing.T) {
	// Cliente con nivel gold asignado aunque sus puntos deriven silver
	c := &entity.Customer{TotalPoints: 600, CustomerLevel: entity.LevelGold}
	loyalty.Accrue(c, decimal.NewFromInt(10))

	assert.Equal(t, 610, c.TotalPoints)
	assert.Equal(t, entity.LevelGold, c.CustomerLevel, "el nivel es monótono")
}
