package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_List(t *testing.T) {
	service := NewService()

	assert.Len(t, service.List(""), service.Count())

	data := service.List("DATA")
	require.Len(t, data, 2)
	assert.Equal(t, "data-enrichment", data[0].ID)
	assert.Equal(t, "account-research", data[1].ID)

	assert.Empty(t, service.List("inexistente"))
}

func TestService_Get(t *testing.T) {
	service := NewService()

	found, err := service.Get("meeting-booking")
	require.NoError(t, err)
	assert.Equal(t, "Meeting Booking", found.Name)

	// Alterar o retorno não muda o catálogo
	found.Name = "Outro"
	again, _ := service.Get("meeting-booking")
	assert.Equal(t, "Meeting Booking", again.Name)

	_, err = service.Get("nada")
	assert.ErrorIs(t, err, ErrServiceNotFound)
}
