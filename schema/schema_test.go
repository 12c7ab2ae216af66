package schema_test

import (
	"testing"

	"github.com/saasukit/saasu/internal/testutil/assert"
	"github.com/saasukit/saasu/schema"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	line := schema.MustNew("Line", schema.PlacementElement, schema.Scalar("amount"))

	d, err := schema.New("Invoice", schema.PlacementAttribute,
		schema.Scalar("date"),
		schema.Entity("terms", nil),
		schema.List("lines", line),
		schema.OpaqueList("tags"),
		schema.Internal(schema.Scalar("cache")),
	)
	assert.NoError(t, err)

	require.Equal(t, "Invoice", d.TypeName())
	require.Equal(t, "invoice", d.Name())
	require.Equal(t, "Invoice", d.String())
	require.Equal(t, schema.PlacementAttribute, d.Placement())
	require.Equal(t, []string{"id", "lastModifiedById", "date", "terms", "lines", "tags", "cache", "utcLastModified"}, d.FieldNames())
	require.Equal(t, 8, d.NumField())

	require.True(t, d.Has("date"))
	require.False(t, d.Has("nope"))
	require.Equal(t, 2, d.Index("date"))
	require.Equal(t, -1, d.Index("nope"))

	f, ok := d.Field("cache")
	require.True(t, ok)
	require.True(t, f.Internal)
	require.Equal(t, schema.KindScalar, f.Kind)

	f, ok = d.Field("terms")
	require.True(t, ok)
	require.Equal(t, schema.KindEntity, f.Kind)

	require.Same(t, line, d.ElementType("lines"))
	require.Nil(t, d.ElementType("tags"))
	require.Nil(t, d.ElementType("date"))
	require.Nil(t, d.ElementType("nope"))

	t.Run("lowercase type name", func(t *testing.T) {
		d := schema.MustNew("serviceInvoiceItem", schema.PlacementAttribute)
		require.Equal(t, "ServiceInvoiceItem", d.TypeName())
		require.Equal(t, "serviceInvoiceItem", d.Name())
	})

	t.Run("explicit common fields", func(t *testing.T) {
		d := schema.MustNew("Contact", schema.PlacementElement,
			schema.Scalar("name"),
			schema.Scalar("utcLastModified"),
			schema.Scalar("id"),
		)
		require.Equal(t, []string{"lastModifiedById", "name", "utcLastModified", "id"}, d.FieldNames())
	})

	t.Run("duplicate field", func(t *testing.T) {
		_, err := schema.New("Contact", schema.PlacementElement, schema.Scalar("name"), schema.Scalar("name"))
		assert.ErrorIs(t, err, schema.ErrDuplicateField)
	})

	t.Run("empty names", func(t *testing.T) {
		_, err := schema.New("", schema.PlacementElement)
		assert.Error(t, err)

		_, err = schema.New("Contact", schema.PlacementElement, schema.Scalar(""))
		assert.Error(t, err)
	})

	t.Run("save operation", func(t *testing.T) {
		d := schema.MustNew("BuildComboItem", schema.PlacementElement).SetSaveOperation("build")
		require.Equal(t, "build", d.SaveOperation())
		require.Equal(t, "", line.SaveOperation())
	})
}

func TestPlacementAndKindString(t *testing.T) {
	require.Equal(t, "attribute", schema.PlacementAttribute.String())
	require.Equal(t, "element", schema.PlacementElement.String())
	require.Equal(t, "scalar", schema.KindScalar.String())
	require.Equal(t, "entity", schema.KindEntity.String())
	require.Equal(t, "list", schema.KindList.String())
}

func TestRegistry(t *testing.T) {
	r := schema.NewRegistry()

	invoice := schema.MustNew("Invoice", schema.PlacementAttribute,
		schema.ListRef("lines", "line"),
		schema.EntityRef("terms", "TradingTerms"),
	)
	line := schema.MustNew("Line", schema.PlacementElement, schema.Scalar("amount"))
	terms := schema.MustNew("TradingTerms", schema.PlacementElement, schema.Scalar("type"))

	// references are resolved within the group regardless of order
	err := r.Register(invoice, line, terms)
	assert.NoError(t, err)

	require.Same(t, line, invoice.ElementType("lines"))
	f, _ := invoice.Field("terms")
	require.Same(t, terms, f.Type)

	require.Equal(t, []string{"invoice", "line", "tradingTerms"}, r.Names())
	require.Equal(t, []*schema.Descriptor{invoice, line, terms}, r.Descriptors())

	for _, name := range []string{"invoice", "Invoice"} {
		d, err := r.Lookup(name)
		assert.NoError(t, err)
		require.Same(t, invoice, d)
	}

	_, err = r.Lookup("payment")
	assert.ErrorIs(t, err, schema.ErrUnknownType)

	t.Run("duplicate", func(t *testing.T) {
		err := r.Register(schema.MustNew("invoice", schema.PlacementAttribute))
		assert.ErrorIs(t, err, schema.ErrDuplicateType)

		a := schema.MustNew("A", schema.PlacementAttribute)
		err = r.Register(a, schema.MustNew("a", schema.PlacementAttribute))
		assert.ErrorIs(t, err, schema.ErrDuplicateType)

		_, err = r.Lookup("a")
		assert.ErrorIs(t, err, schema.ErrUnknownType)
	})

	t.Run("unknown reference leaves the registry untouched", func(t *testing.T) {
		d := schema.MustNew("Payment", schema.PlacementAttribute, schema.ListRef("items", "paymentItem"))
		err := r.Register(d)
		assert.ErrorIs(t, err, schema.ErrUnknownType)

		_, err = r.Lookup("payment")
		assert.ErrorIs(t, err, schema.ErrUnknownType)
	})

	t.Run("reference to a registered type", func(t *testing.T) {
		credit := schema.MustNew("CreditNote", schema.PlacementAttribute, schema.ListRef("lines", "Line"))
		r.MustRegister(credit)
		require.Same(t, line, credit.ElementType("lines"))
	})

	require.Panics(t, func() {
		r.MustRegister(schema.MustNew("Line", schema.PlacementElement))
	})
}

func TestListAlternatives(t *testing.T) {
	service := schema.MustNew("ServiceItem", schema.PlacementElement, schema.Scalar("description"))
	item := schema.MustNew("ItemItem", schema.PlacementElement, schema.Scalar("quantity"))

	f := schema.List("items", service, item)
	require.Equal(t, []*schema.Descriptor{service, item}, f.ItemTypes())
	require.Same(t, item, f.ItemType("itemItem"))
	require.Same(t, service, f.ItemType("serviceItem"))
	require.Same(t, service, f.ItemType("other"))

	require.Nil(t, schema.OpaqueList("tags").ItemTypes())
	require.Equal(t, []*schema.Descriptor{service}, schema.List("items", service).ItemTypes())

	t.Run("references", func(t *testing.T) {
		r := schema.NewRegistry()
		sale := schema.MustNew("Sale", schema.PlacementAttribute, schema.ListRef("items", "serviceItem", "ItemItem"))
		r.MustRegister(sale, service, item)

		f, ok := sale.Field("items")
		require.True(t, ok)
		require.Same(t, service, f.Type)
		require.Equal(t, []*schema.Descriptor{item}, f.Alternatives)
	})

	t.Run("unknown alternative", func(t *testing.T) {
		r := schema.NewRegistry()
		sale := schema.MustNew("Sale", schema.PlacementAttribute, schema.ListRef("items", "serviceItem", "nope"))
		err := r.Register(sale, service)
		assert.ErrorIs(t, err, schema.ErrUnknownType)

		require.Nil(t, sale.ElementType("items"))
		require.Empty(t, r.Names())
	})
}
