package catalog

// Invoice types available for Australian files.
// The list of types depends on the zone of the file.
const (
	InvoiceTypePreQuoteOpportunity = "Pre-Quote Opportunity"
	InvoiceTypeQuote               = "Quote"
	InvoiceTypePurchaseOrder       = "Purchase Order"
	InvoiceTypeSaleOrder           = "Sale Order"
	InvoiceTypeTaxInvoice          = "Tax Invoice"
	InvoiceTypeAdjustmentNote      = "Adjustment Note"
	InvoiceTypeRCTInvoice          = "RCT Invoice"
	InvoiceTypeMoneyIn             = "Money In (Income)"
	InvoiceTypeMoneyOut            = "Money Out (Expense)"
)

// InvoiceTypesAU returns the invoice types available for Australian files.
func InvoiceTypesAU() []string {
	return []string{
		InvoiceTypePreQuoteOpportunity,
		InvoiceTypeQuote,
		InvoiceTypePurchaseOrder,
		InvoiceTypeSaleOrder,
		InvoiceTypeTaxInvoice,
		InvoiceTypeAdjustmentNote,
		InvoiceTypeRCTInvoice,
		InvoiceTypeMoneyIn,
		InvoiceTypeMoneyOut,
	}
}
