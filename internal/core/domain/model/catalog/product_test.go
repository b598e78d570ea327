package catalog_test

import (
	"testing"

	"trading/internal/core/domain/model/catalog"
	"trading/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_Validate(t *testing.T) {
	require.NoError(t, catalog.Product{ID: 1}.Validate())
	require.ErrorIs(t, catalog.Product{}.Validate(), errs.ErrValueIsInvalid)
}

func TestIndex(t *testing.T) {
	a := &catalog.Product{ID: 1, Code: "A"}
	b := &catalog.Product{ID: 2, Code: "B"}

	byID := catalog.Index([]*catalog.Product{a, nil, b})

	assert.Len(t, byID, 2)
	assert.Same(t, a, byID[1])
	assert.Same(t, b, byID[2])
}
