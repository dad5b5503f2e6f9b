package draft

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateWire_Accepts(t *testing.T) {
	d := New(CoverLetter)
	d, err := d.Set("full_name", String("Jane"))
	require.NoError(t, err)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.NoError(t, ValidateWire(CoverLetter, data))
}

func TestValidateWire_RejectsMissingField(t *testing.T) {
	err := ValidateWire(CoverLetter, []byte(`{"full_name":"Jane"}`))
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "cover-letter", ve.Shape)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateWire_RejectsExtraField(t *testing.T) {
	m := New(CV).Map()
	m["surprise"] = "x"
	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Error(t, ValidateWire(CV, data))
}

func TestValidateWire_RejectsWrongType(t *testing.T) {
	m := New(CV).Map()
	m["skills"] = "not an array"
	data, err := json.Marshal(m)
	require.NoError(t, err)

	err = ValidateWire(CV, data)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Error(), "skills")
}
