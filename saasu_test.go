package saasu_test

import (
	"testing"

	"github.com/saasukit/saasu"
	"github.com/saasukit/saasu/catalog"
	"github.com/saasukit/saasu/internal/testutil"
	"github.com/saasukit/saasu/internal/testutil/assert"
	"github.com/saasukit/saasu/schema"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	e, err := saasu.New("Contact")
	assert.NoError(t, err)
	require.Same(t, catalog.Contact, e.Descriptor())

	_, err = saasu.New("unknown")
	assert.ErrorIs(t, err, schema.ErrUnknownType)
}

func TestMarshalUnmarshal(t *testing.T) {
	c, err := saasu.New("contact")
	assert.NoError(t, err)

	err = saasu.Unmarshal([]byte(`<contact uid="1">
    <contactGivenName>x</contactGivenName>
    <givenName>John</givenName>
    <familyName>Smith</familyName>
    <postalAddress>
        <street>1 Main St</street>
        <city>Sydney</city>
    </postalAddress>
</contact>`), c)
	assert.NoError(t, err)

	testutil.RequireText(t, c, "givenName", "John")
	v, _ := c.GetExtra("uid")
	require.Equal(t, "1", v)

	data, err := saasu.Marshal(c)
	assert.NoError(t, err)
	testutil.RequireXMLEqual(t, `<contact>
    <givenName>John</givenName>
    <familyName>Smith</familyName>
    <postalAddress>
        <street>1 Main St</street>
        <city>Sydney</city>
    </postalAddress>
</contact>`, string(data))
}

func TestRegistry(t *testing.T) {
	require.Same(t, catalog.Default(), saasu.Registry())
	require.Contains(t, saasu.Registry().Names(), "buildComboItem")
}
