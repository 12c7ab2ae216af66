package xmlcodec_test

import "github.com/saasukit/saasu/schema"

var (
	lineType = schema.MustNew("Line", schema.PlacementElement,
		schema.Scalar("description"),
		schema.Scalar("amount"),
	)
	termsType = schema.MustNew("TradingTerms", schema.PlacementElement,
		schema.Scalar("type"),
		schema.Scalar("interval"),
	)
	invoiceType = schema.MustNew("Invoice", schema.PlacementAttribute,
		schema.Scalar("date"),
		schema.Scalar("summary"),
		schema.Entity("terms", termsType),
		schema.List("lines", lineType),
		schema.OpaqueList("tags"),
		schema.Internal(schema.Scalar("cache")),
	)
	entityNameType = schema.MustNew("EntityName", schema.PlacementElement,
		schema.Scalar("code"),
	)
)
