package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/clarityrx/clarity-server/internal/errors"
)

type doseRequest struct {
	ProductSKU  string `json:"product_sku" validate:"required"`
	QuickRating int    `json:"quick_rating" validate:"gte=1,lte=5"`
	TimeOfDay   string `json:"time_of_day" validate:"oneof=morning afternoon evening night"`
}

func TestValidate_Success(t *testing.T) {
	v := New()

	err := v.Validate(doseRequest{
		ProductSKU:  "CRX-DR-5",
		QuickRating: 4,
		TimeOfDay:   "evening",
	})
	assert.NoError(t, err)
}

func TestValidate_FieldErrors(t *testing.T) {
	v := New()

	err := v.Validate(doseRequest{
		QuickRating: 9,
		TimeOfDay:   "midnight",
	})
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domainerrors.CodeValidation, domainErr.Code)

	details, ok := domainErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "is required", details["product_sku"])
	assert.Equal(t, "must be less than or equal to 5", details["quick_rating"])
	assert.Contains(t, details["time_of_day"], "must be one of:")
}

func TestValidate_UsesJSONTagNames(t *testing.T) {
	v := New()

	err := v.Validate(doseRequest{ProductSKU: "", QuickRating: 3, TimeOfDay: "morning"})
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)

	details, ok := domainErr.Details.(map[string]string)
	require.True(t, ok)
	_, hasJSONName := details["product_sku"]
	assert.True(t, hasJSONName, "details should be keyed by json tag name")
}
