package normalizar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/distrito-diamante/crm-api/pkg/normalizar"
)

func TestSinDiacriticos(t *testing.T) {
	casos := []struct {
		entrada, esperado string
	}{
		{"José", "Jose"},
		{"Muñoz", "Munoz"},
		{"Ñoño", "Nono"},
		{"Düsseldorf", "Dusseldorf"},
		{"sin tildes", "sin tildes"},
		{"", ""},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, normalizar.SinDiacriticos(c.entrada), "entrada: %q", c.entrada)
	}
}

func TestHandle(t *testing.T) {
	casos := []struct {
		nombre, apellido, esperado string
	}{
		{"José", "Muñoz Díaz", "jmunozdiaz"},
		{"María", "Pérez", "mperez"},
		{"Ana", "De La Cruz", "adelacruz"},
		{"Pedro", "Gómez", "pgomez"},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, normalizar.Handle(c.nombre, c.apellido),
			"nombre: %q apellido: %q", c.nombre, c.apellido)
	}
}

func TestHandle_NombreVacio(t *testing.T) {
	assert.Equal(t, "perez", normalizar.Handle("", "Pérez"),
		"sin primer nombre el handle queda solo con el apellido")
}
