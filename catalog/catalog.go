// Package catalog declares the entity types exposed by the accounting web service.
//
// Types reference each other by name and are resolved when the catalog is
// registered, so the declaration order does not matter.
package catalog

import "github.com/saasukit/saasu/schema"

// Save operations that don't follow the insert/update convention.
const (
	OperationBuildComboItem = "buildComboItem"
)

var (
	PostalAddress = schema.MustNew("PostalAddress", schema.PlacementElement,
		schema.Scalar("street"),
		schema.Scalar("city"),
		schema.Scalar("postCode"),
		schema.Scalar("state"),
		schema.Scalar("country"),
	)

	Contact = schema.MustNew("Contact", schema.PlacementAttribute,
		schema.Scalar("salutation"),
		schema.Scalar("givenName"),
		schema.Scalar("middleInitials"),
		schema.Scalar("familyName"),
		schema.Scalar("organisationName"),
		schema.Scalar("organisationAbn"),
		schema.Scalar("organisationWebsite"),
		schema.Scalar("organisationPosition"),
		schema.Scalar("contactID"),
		schema.Scalar("websiteUrl"),
		schema.Scalar("email"),
		schema.Scalar("mainPhone"),
		schema.Scalar("homePhone"),
		schema.Scalar("fax"),
		schema.Scalar("mobilePhone"),
		schema.Scalar("otherPhone"),
		schema.Scalar("tags"),
		schema.EntityRef("postalAddress", "postalAddress"),
		schema.EntityRef("otherAddress", "postalAddress"),
		schema.Scalar("isActive"),
		schema.Scalar("acceptDirectDeposit"),
		schema.Scalar("directDepositAccountName"),
		schema.Scalar("directDepositBsb"),
		schema.Scalar("directDepositAccountNumber"),
		schema.Scalar("acceptCheque"),
		schema.Scalar("customField1"),
		schema.Scalar("customField2"),
		schema.EntityRef("saleTradingTerms", "tradingTerms"),
		schema.EntityRef("purchaseTradingTerms", "tradingTerms"),
	)

	BankAccount = schema.MustNew("BankAccount", schema.PlacementAttribute,
		schema.Scalar("type"),
		schema.Scalar("name"),
		schema.Scalar("isActive"),
		schema.Scalar("ledgerCode"),
		schema.Scalar("displayName"),
		schema.Scalar("bsb"),
		schema.Scalar("accountNumber"),
	)

	TransactionCategory = schema.MustNew("TransactionCategory", schema.PlacementAttribute,
		schema.Scalar("type"),
		schema.Scalar("name"),
		schema.Scalar("isActive"),
		schema.Scalar("ledgerCode"),
		schema.Scalar("defaultTaxCode"),
	)

	TradingTerms = schema.MustNew("TradingTerms", schema.PlacementElement,
		schema.Scalar("type"),
		schema.Scalar("interval"),
		schema.Scalar("intervalType"),
	)

	QuickPayment = schema.MustNew("QuickPayment", schema.PlacementElement,
		schema.Scalar("datePaid"),
		schema.Scalar("dateCleared"),
		schema.Scalar("bankedToAccountUid"),
		schema.Scalar("amount"),
		schema.Scalar("reference"),
		schema.Scalar("summary"),
	)

	Invoice = schema.MustNew("Invoice", schema.PlacementAttribute,
		schema.Scalar("transactionType"),
		schema.Scalar("date"),
		schema.Scalar("contactUid"),
		schema.Scalar("shipToContactUid"),
		schema.Scalar("folderUid"),
		schema.Scalar("tags"),
		schema.Scalar("reference"),
		schema.Scalar("summary"),
		schema.Scalar("notes"),
		schema.Scalar("requiresFollowUp"),
		schema.Scalar("dueOrExpiryDate"),
		schema.Scalar("layout"),
		schema.Scalar("status"),
		schema.Scalar("invoiceNumber"),
		schema.Scalar("purchaseOrderNumber"),
		// items are tagged serviceInvoiceItem or itemInvoiceItem depending on the layout
		schema.ListRef("invoiceItems", "serviceInvoiceItem", "itemInvoiceItem"),
		schema.EntityRef("tradingTerms", "tradingTerms"),
		schema.EntityRef("quickPayment", "quickPayment"),
		schema.Scalar("isSent"),
		schema.Internal(schema.Scalar("emailToContact")),
	)

	ServiceInvoiceItem = schema.MustNew("ServiceInvoiceItem", schema.PlacementElement,
		schema.Scalar("description"),
		schema.Scalar("accountUid"),
		schema.Scalar("taxCode"),
		schema.Scalar("totalAmountInclTax"),
		schema.Scalar("totalAmountExclTax"),
		schema.Scalar("totalTaxAmount"),
	)

	ItemInvoiceItem = schema.MustNew("ItemInvoiceItem", schema.PlacementElement,
		schema.Scalar("quantity"),
		schema.Scalar("inventoryItemUid"),
		schema.Scalar("description"),
		schema.Scalar("taxCode"),
		schema.Scalar("unitPriceInclTax"),
		schema.Scalar("totalAmountInclTax"),
		schema.Scalar("percentageDiscount"),
	)

	InvoicePayment = schema.MustNew("InvoicePayment", schema.PlacementAttribute,
		schema.Scalar("transactionType"),
		schema.Scalar("date"),
		schema.Scalar("reference"),
		schema.Scalar("summary"),
		schema.Scalar("notes"),
		schema.Scalar("requiresFollowUp"),
		schema.Scalar("paymentAccountUid"),
		schema.Scalar("dateCleared"),
		schema.Scalar("fee"),
		schema.ListRef("invoicePaymentItems", "invoicePaymentItem"),
	)

	InvoicePaymentItem = schema.MustNew("InvoicePaymentItem", schema.PlacementElement,
		schema.Scalar("invoiceUid"),
		schema.Scalar("amount"),
	)

	InventoryItem = schema.MustNew("InventoryItem", schema.PlacementAttribute,
		inventoryFields()...,
	)

	ComboItemLineItem = schema.MustNew("ComboItemLineItem", schema.PlacementElement,
		schema.Scalar("uid"),
		schema.Scalar("code"),
		schema.Scalar("quantity"),
	)

	ComboItem = schema.MustNew("ComboItem", schema.PlacementAttribute,
		append(inventoryFields(), schema.ListRef("items", "comboItemLineItem"))...,
	)

	BuildComboItem = schema.MustNew("BuildComboItem", schema.PlacementElement,
		schema.Scalar("comboItemUid"),
		schema.Scalar("quantity"),
	).SetSaveOperation(OperationBuildComboItem)
)

// inventory items and combo items share most of their fields.
func inventoryFields() []schema.Field {
	return []schema.Field{
		schema.Scalar("code"),
		schema.Scalar("description"),
		schema.Scalar("isActive"),
		schema.Scalar("notes"),
		schema.Scalar("isInventoried"),
		schema.Scalar("assetAccountUid"),
		schema.Scalar("stockOnHand"),
		schema.Scalar("currentValue"),
		schema.Scalar("isBought"),
		schema.Scalar("purchaseExpenseAccountUid"),
		schema.Scalar("purchaseTaxCode"),
		schema.Scalar("minimumStockLevel"),
		schema.Scalar("primarySupplierContactUid"),
		schema.Scalar("primarySupplierItemCode"),
		schema.Scalar("defaultReOrderQuantity"),
		schema.Scalar("isSold"),
		schema.Scalar("saleIncomeAccountUid"),
		schema.Scalar("saleTaxCode"),
		schema.Scalar("saleCoSAccountUid"),
		schema.Scalar("sellingPrice"),
		schema.Scalar("isSellingPriceIncTax"),
		schema.Scalar("isVirtual"),
	}
}

// All returns every descriptor of the catalog.
func All() []*schema.Descriptor {
	return []*schema.Descriptor{
		PostalAddress,
		Contact,
		BankAccount,
		TransactionCategory,
		TradingTerms,
		QuickPayment,
		Invoice,
		ServiceInvoiceItem,
		ItemInvoiceItem,
		InvoicePayment,
		InvoicePaymentItem,
		InventoryItem,
		ComboItemLineItem,
		ComboItem,
		BuildComboItem,
	}
}

// the catalog is registered when the package is initialized,
// which resolves the references between its types.
var defaultRegistry = newDefault()

func newDefault() *schema.Registry {
	r := schema.NewRegistry()
	r.MustRegister(All()...)
	return r
}

// Default returns a registry holding the whole catalog.
func Default() *schema.Registry {
	return defaultRegistry
}
