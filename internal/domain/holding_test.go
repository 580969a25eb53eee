package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHoldingValidate(t *testing.T) {
	valid := Holding{
		AccountID: uuid.New(),
		Symbol:    "STCK",
		Quantity:  10,
	}
	assert.NoError(t, valid.Validate())

	zeroQuantity := valid
	zeroQuantity.Quantity = 0
	assert.NoError(t, zeroQuantity.Validate(), "zero quantity is a valid holding")

	negative := valid
	negative.Quantity = -1
	assert.Error(t, negative.Validate())

	noSymbol := valid
	noSymbol.Symbol = ""
	assert.Error(t, noSymbol.Validate())

	noAccount := valid
	noAccount.AccountID = uuid.Nil
	assert.Error(t, noAccount.Validate())
}

func TestAccountValidate(t *testing.T) {
	valid := Account{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Description: "main brokerage account",
	}
	assert.NoError(t, valid.Validate())

	noDescription := valid
	noDescription.Description = ""
	assert.Error(t, noDescription.Validate())

	noUser := valid
	noUser.UserID = uuid.Nil
	assert.Error(t, noUser.Validate())
}

func TestStockValidate(t *testing.T) {
	valid := Stock{Symbol: "STCK", Description: "some stock"}
	assert.NoError(t, valid.Validate())

	noSymbol := Stock{Description: "no symbol"}
	assert.Error(t, noSymbol.Validate())
}
