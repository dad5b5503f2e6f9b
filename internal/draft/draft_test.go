package draft

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_AllEmpty(t *testing.T) {
	d := New(CV)
	for _, f := range CV.Fields {
		v, ok := d.Value(f.Name)
		require.True(t, ok, f.Name)
		assert.False(t, v.Filled(), f.Name)
		assert.Equal(t, f.Kind, v.Kind(), f.Name)
	}
}

func TestSet_ReturnsCopy(t *testing.T) {
	d1 := New(CV)
	d2, err := d1.Set("full_name", String("Jane"))
	require.NoError(t, err)

	// The receiver is untouched.
	v, _ := d1.Value("full_name")
	assert.Equal(t, "", v.Str())

	v, _ = d2.Value("full_name")
	assert.Equal(t, "Jane", v.Str())

	// Every other field carried over.
	for _, f := range CV.Fields {
		if f.Name == "full_name" {
			continue
		}
		a, _ := d1.Value(f.Name)
		b, _ := d2.Value(f.Name)
		assert.True(t, a.Equal(b), f.Name)
	}
}

func TestSet_UnknownField(t *testing.T) {
	_, err := New(CV).Set("nonexistent", String("x"))
	assert.Error(t, err)
}

func TestSet_KindMismatch(t *testing.T) {
	_, err := New(CV).Set("skills", String("go"))
	assert.Error(t, err)

	_, err = New(CV).Set("full_name", List("Jane"))
	assert.Error(t, err)
}

func TestValue_Truthiness(t *testing.T) {
	assert.False(t, String("").Filled())
	assert.True(t, String("   ").Filled(), "whitespace counts as filled, no trimming")
	assert.True(t, String("x").Filled())
	assert.False(t, List().Filled())
	assert.True(t, List("a").Filled())
}

func TestList_CopiesItems(t *testing.T) {
	src := []string{"a", "b"}
	v := List(src...)
	src[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, v.Items())

	items := v.Items()
	items[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, v.Items())
}

func TestJSONRoundTrip(t *testing.T) {
	d := New(CV)
	d, err := d.Set("full_name", String("Jane Doe"))
	require.NoError(t, err)
	d, err = d.Set("skills", List("Go", "SQL"))
	require.NoError(t, err)

	data, err := json.Marshal(d)
	require.NoError(t, err)

	back, err := FromJSON(CV, data)
	require.NoError(t, err)
	assert.True(t, d.Equal(back))
}

func TestFromJSON_Corrupt(t *testing.T) {
	_, err := FromJSON(CV, []byte("{not json"))
	assert.Error(t, err)
}

func TestFromJSON_DropsUnknownKeys(t *testing.T) {
	d, err := FromJSON(CV, []byte(`{"full_name":"Jane","legacy_field":"x"}`))
	require.NoError(t, err)
	v, _ := d.Value("full_name")
	assert.Equal(t, "Jane", v.Str())
	_, ok := d.Value("legacy_field")
	assert.False(t, ok)
}

func TestOverlay_Precedence(t *testing.T) {
	// Stored values win over remote profile values key by key.
	d := New(CV).
		Overlay(map[string]any{"full_name": "Remote Name", "email": "remote@example.com"}).
		Overlay(map[string]any{"full_name": "Stored Name"})

	v, _ := d.Value("full_name")
	assert.Equal(t, "Stored Name", v.Str())
	v, _ = d.Value("email")
	assert.Equal(t, "remote@example.com", v.Str())
}

func TestOverlay_IgnoresWrongTypes(t *testing.T) {
	d := New(CV).Overlay(map[string]any{
		"full_name": 42,
		"skills":    "not a list",
		"email":     "ok@example.com",
	})
	v, _ := d.Value("full_name")
	assert.Equal(t, "", v.Str())
	v, _ = d.Value("skills")
	assert.Empty(t, v.Items())
	v, _ = d.Value("email")
	assert.Equal(t, "ok@example.com", v.Str())
}

func TestMap_ListNeverNil(t *testing.T) {
	m := New(CV).Map()
	assert.Equal(t, []string{}, m["skills"])
}
