package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/distrito-diamante/crm-api/internal/application/dto"
)

func TestPageRequest_Defaults(t *testing.T) {
	var p dto.PageRequest
	p.DefaultPage()

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 25, p.Limit)
	assert.Equal(t, 0, p.Offset())
}

func TestPageRequest_Offset(t *testing.T) {
	p := dto.PageRequest{Page: 3, Limit: 25}
	assert.Equal(t, 50, p.Offset(), "offset = (page-1)*limit")
}

func TestPageRequest_ValoresNegativosSeNormalizan(t *testing.T) {
	p := dto.PageRequest{Page: -2, Limit: 0}
	p.DefaultPage()

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 25, p.Limit)
}

func TestNewPaginacion_TotalPagesEsCeil(t *testing.T) {
	casos := []struct {
		total, limit, esperado int
	}{
		{0, 25, 0},  // sin filas, 0 páginas (no 1)
		{1, 25, 1},
		{25, 25, 1},
		{26, 25, 2},
		{30, 25, 2},
		{50, 25, 2},
		{51, 25, 3},
	}
	for _, c := range casos {
		pag := dto.NewPaginacion(1, c.limit, c.total)
		assert.Equal(t, c.esperado, pag.TotalPages,
			"total=%d limit=%d", c.total, c.limit)
		assert.Equal(t, c.total, pag.Total)
	}
}
