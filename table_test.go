package keycase

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNewTable(t *testing.T) {
	table, err := NewTable(map[string]string{
		"idpEntityId": "idp_entity_id",
		"spACSUrl":    "sp_acs_url",
	})
	assert.Nil(t, err)
	assert.EqualValues(t, 2, table.Size())

	snake, ok := table.Snake("spACSUrl")
	assert.True(t, ok)
	assert.EqualValues(t, "sp_acs_url", snake)

	camel, ok := table.Camel("idp_entity_id")
	assert.True(t, ok)
	assert.EqualValues(t, "idpEntityId", camel)

	_, ok = table.Snake("unknown")
	assert.False(t, ok)
}

func TestNewTable_Ambiguous(t *testing.T) {
	_, err := NewTable(map[string]string{
		"userId": "user_id",
		"userID": "user_id",
	})
	assert.NotNil(t, err)
}

func TestDefaultTable_MutualInverse(t *testing.T) {
	transformer := New()
	table := DefaultTable()
	for camel, snake := range table.camelToSnake {
		assert.EqualValues(t, snake, transformer.SnakeName(camel), camel)
		assert.EqualValues(t, camel, transformer.CamelName(snake), snake)
	}
}
