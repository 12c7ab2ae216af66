package xmlcodec_test

import (
	"bytes"
	"testing"

	"github.com/saasukit/saasu/entity"
	"github.com/saasukit/saasu/internal/testutil"
	"github.com/saasukit/saasu/internal/testutil/assert"
	"github.com/saasukit/saasu/schema"
	"github.com/saasukit/saasu/types"
	"github.com/saasukit/saasu/xmlcodec"
	"github.com/saasukit/saasu/xmltree"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMarshal(t *testing.T) {
	e := testutil.MakeEntity(t, invoiceType, `{
		"id": "12",
		"lastModifiedById": "",
		"date": "2024-01-01",
		"terms": {"type": "1", "interval": ""},
		"lines": [{"description": "Stuff", "amount": "5"}, {}]
	}`)
	assert.NoError(t, e.SetText("cache", "never written"))

	tag, err := xmltree.Parse([]byte(`<tag>x</tag>`))
	assert.NoError(t, err)
	assert.NoError(t, e.Set("tags", types.NewListValue(types.NewRawValue(tag))))

	got, err := xmlcodec.Marshal(e)
	assert.NoError(t, err)

	testutil.RequireXMLEqual(t, `<invoice id="12">
    <date>2024-01-01</date>
    <terms>
        <type>1</type>
    </terms>
    <lines>
        <line>
            <description>Stuff</description>
            <amount>5</amount>
        </line>
    </lines>
</invoice>`, string(got))
	testutil.RequireNoEmptyElements(t, string(got))
}

func TestMarshalIdentifiers(t *testing.T) {
	t.Run("attribute placement", func(t *testing.T) {
		e := testutil.MakeEntity(t, invoiceType, `{"date": "d", "lastModifiedById": "7", "id": "12"}`)

		got, err := xmlcodec.Marshal(e)
		assert.NoError(t, err)
		testutil.RequireXMLEqual(t, `<invoice id="12" lastModifiedById="7">
    <date>d</date>
</invoice>`, string(got))
	})

	t.Run("element placement", func(t *testing.T) {
		e := testutil.MakeEntity(t, lineType, `{"amount": "5", "lastModifiedById": "7", "id": "12"}`)

		got, err := xmlcodec.Marshal(e)
		assert.NoError(t, err)
		testutil.RequireXMLEqual(t, `<line>
    <id>12</id>
    <lastModifiedById>7</lastModifiedById>
    <amount>5</amount>
</line>`, string(got))
	})

	t.Run("empty identifiers are dropped", func(t *testing.T) {
		for _, e := range []*entity.Entity{
			testutil.MakeEntity(t, invoiceType, `{"id": "", "date": "d"}`),
			testutil.MakeEntity(t, lineType, `{"id": "", "amount": "5"}`),
		} {
			got, err := xmlcodec.Marshal(e)
			assert.NoError(t, err)
			require.NotContains(t, string(got), "id")
			require.Contains(t, string(got), "<"+e.Name()+">")
		}
	})

	t.Run("only an identifier", func(t *testing.T) {
		for _, doc := range []string{`{"id": "12"}`, `{"id": "12", "lastModifiedById": "3", "lines": [{}]}`} {
			got, err := xmlcodec.Marshal(testutil.MakeEntity(t, invoiceType, doc))
			assert.NoError(t, err)
			require.Empty(t, string(got), doc)
		}
	})

	t.Run("nested entity with only an identifier", func(t *testing.T) {
		refType := schema.MustNew("Ref", schema.PlacementAttribute, schema.Scalar("code"))
		outerType := schema.MustNew("Outer", schema.PlacementElement,
			schema.Scalar("a"),
			schema.Entity("ref", refType),
			schema.List("refs", refType),
		)

		e := testutil.MakeEntity(t, outerType, `{"a": "1", "ref": {"id": "5"}, "refs": [{"id": "6"}, {"id": "7", "code": "x"}]}`)
		got, err := xmlcodec.Marshal(e)
		assert.NoError(t, err)
		testutil.RequireXMLEqual(t, `<outer>
    <a>1</a>
    <refs>
        <ref id="7">
            <code>x</code>
        </ref>
    </refs>
</outer>`, string(got))
		testutil.RequireNoEmptyElements(t, string(got))
	})
}

func TestMarshalEmpty(t *testing.T) {
	tests := []struct {
		name string
		e    *entity.Entity
	}{
		{"no fields", entity.New(invoiceType)},
		{"empty strings", testutil.MakeEntity(t, invoiceType, `{"date": "", "summary": "   "}`)},
		{"empty list", testutil.MakeEntity(t, invoiceType, `{"lines": []}`)},
		{"list of empty items", testutil.MakeEntity(t, invoiceType, `{"lines": [{}, {"amount": ""}]}`)},
		{"empty nested entity", testutil.MakeEntity(t, invoiceType, `{"terms": {}}`)},
		{"raw items only", testutil.MakeEntity(t, invoiceType, `{"tags": ["<tag>x</tag>"]}`)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := xmlcodec.Marshal(test.e)
			assert.NoError(t, err)
			require.Empty(t, string(got))
		})
	}
}

func TestMarshalNoEmptyElements(t *testing.T) {
	docs := []string{
		`{"id": "1", "summary": "s", "lines": []}`,
		`{"summary": "s", "terms": {"type": ""}}`,
		`{"date": "d", "lines": [{"amount": ""}, {"description": "x"}], "terms": {"interval": "   "}}`,
		`{"summary": "s", "lines": [{}, {}, {}]}`,
	}

	for _, doc := range docs {
		t.Run(doc, func(t *testing.T) {
			got, err := xmlcodec.Marshal(testutil.MakeEntity(t, invoiceType, doc))
			assert.NoError(t, err)
			require.NotEmpty(t, got)
			testutil.RequireNoEmptyElements(t, string(got))
			require.NotContains(t, string(got), "\n\n")

			// the output must stay a well-formed document
			_, err = xmltree.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestMarshalEscaping(t *testing.T) {
	e := testutil.MakeEntity(t, invoiceType, `{"id": "a&b", "summary": "A & B <c>"}`)

	got, err := xmlcodec.Marshal(e)
	assert.NoError(t, err)
	testutil.RequireXMLEqual(t, `<invoice id="a&amp;b">
    <summary>A &amp; B &lt;c&gt;</summary>
</invoice>`, string(got))
}

func TestMarshalDoesNotModifyEntity(t *testing.T) {
	e := testutil.MakeEntity(t, invoiceType, `{"id": "1", "summary": "", "lines": [{}]}`)
	before, err := e.MarshalJSON()
	assert.NoError(t, err)

	_, err = xmlcodec.Marshal(e)
	assert.NoError(t, err)

	testutil.RequireJSONEq(t, e, string(before))
}

func TestEncoderOptions(t *testing.T) {
	e := testutil.MakeEntity(t, invoiceType, `{"date": "d", "terms": {"type": "1"}}`)

	var buf bytes.Buffer
	err := xmlcodec.NewEncoder(xmlcodec.WithIndent("\t")).Encode(&buf, e)
	assert.NoError(t, err)

	testutil.RequireXMLEqual(t, "<invoice>\n\t<date>d</date>\n\t<terms>\n\t\t<type>1</type>\n\t</terms>\n</invoice>", buf.String())
}

func TestMarshalIdentifierOrder(t *testing.T) {
	d := lineType
	e := entity.New(d)
	assert.NoError(t, e.SetText("amount", "5"))
	assert.NoError(t, e.SetText("lastModifiedById", "2"))
	assert.NoError(t, e.SetText("utcLastModified", "2024-01-01T00:00:00"))
	assert.NoError(t, e.SetText("id", "1"))

	got, err := xmlcodec.Marshal(e)
	assert.NoError(t, err)

	n, err := xmltree.Parse(got)
	assert.NoError(t, err)

	var names []string
	for _, c := range n.Children {
		names = append(names, c.Name)
	}
	require.Equal(t, []string{"id", "lastModifiedById", "amount", "utcLastModified"}, names)
}

func TestEncoderLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	enc := xmlcodec.NewEncoder(xmlcodec.WithLogger(zap.New(core)))

	e := testutil.MakeEntity(t, invoiceType, `{"date": "d", "tags": ["<tag>x</tag>", "<tag>y</tag>"], "lines": [{"amount": "1"}]}`)
	got, err := enc.Marshal(e)
	assert.NoError(t, err)
	require.NotContains(t, string(got), "tag")

	entries := logs.FilterMessage("skipping list item that is not an entity").All()
	require.Len(t, entries, 2)
	require.Equal(t, "invoice", entries[0].ContextMap()["entity"])
	require.Equal(t, "tags", entries[0].ContextMap()["field"])
	require.Equal(t, "raw", entries[0].ContextMap()["type"])
}
