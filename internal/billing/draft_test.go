package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testDraft() *Draft {
	return &Draft{
		ClientID: 1,
		Date:     time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		DueDate:  time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestAddItemDerivesAmounts(t *testing.T) {
	d := testDraft()
	line, err := d.AddItem(CatalogItem{ItemID: 7, ItemName: "Jute Bag", SellingPrice: 100, TaxRate: 18, RemainingQty: 50}, 2)
	require.NoError(t, err)
	require.Equal(t, 200.00, line.Amount)
	require.Equal(t, 36.00, line.TaxAmount)
	require.False(t, line.QuantityExceedsStock)
	require.Len(t, d.Items, 1)
}

func TestAddItemRejectsDuplicate(t *testing.T) {
	d := testDraft()
	_, err := d.AddItem(CatalogItem{ItemID: 7, SellingPrice: 100, RemainingQty: 50}, 2)
	require.NoError(t, err)

	_, err = d.AddItem(CatalogItem{ItemID: 7, SellingPrice: 100, RemainingQty: 50}, 1)
	require.ErrorIs(t, err, ErrDuplicateLineItem)
	require.Len(t, d.Items, 1, "failed add must leave the draft unchanged")
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	d := testDraft()
	for _, qty := range []float64{0, -1} {
		_, err := d.AddItem(CatalogItem{ItemID: 1, SellingPrice: 10, RemainingQty: 5}, qty)
		require.ErrorIs(t, err, ErrInvalidQuantity)
	}
}

func TestAddItemFlagsStockExceeded(t *testing.T) {
	d := testDraft()
	line, err := d.AddItem(CatalogItem{ItemID: 3, SellingPrice: 10, RemainingQty: 5}, 8)
	require.NoError(t, err, "stock exceed is advisory at add time")
	require.True(t, line.QuantityExceedsStock)

	// ...but blocks submission.
	require.ErrorIs(t, d.Validate(), ErrInsufficientStock)
}

func TestRemoveItemIsNoOpWhenAbsent(t *testing.T) {
	d := testDraft()
	_, err := d.AddItem(CatalogItem{ItemID: 1, SellingPrice: 10, RemainingQty: 5}, 1)
	require.NoError(t, err)

	d.RemoveItem(99)
	require.Len(t, d.Items, 1)

	d.RemoveItem(1)
	require.Empty(t, d.Items)
}

func TestComputeTotalsDiscountedDocument(t *testing.T) {
	d := testDraft()
	_, err := d.AddItem(CatalogItem{ItemID: 1, SellingPrice: 100, TaxRate: 18, RemainingQty: 10}, 2)
	require.NoError(t, err)
	_, err = d.AddItem(CatalogItem{ItemID: 2, SellingPrice: 50, TaxRate: 5, RemainingQty: 10}, 1)
	require.NoError(t, err)
	d.SetDiscount(10)

	got := d.Totals()
	require.Equal(t, Totals{SubTotal: 250.00, DiscountAmount: 25.00, Total: 225.00}, got)

	// Pure function: identical inputs, identical output.
	require.Equal(t, got, d.Totals())
}

func TestComputeTotalsEmptyDraft(t *testing.T) {
	require.Equal(t, Totals{}, ComputeTotals(nil, 10))
}

func TestComputeTotalsDiscountBounds(t *testing.T) {
	items := []LineItem{{Amount: 99.99}, {Amount: 0.01}}
	for _, discount := range []float64{0, 25, 50, 100} {
		tt := ComputeTotals(items, discount)
		require.GreaterOrEqual(t, tt.Total, 0.0)
		require.LessOrEqual(t, tt.Total, tt.SubTotal)
	}
	require.Equal(t, 0.0, ComputeTotals(items, 100).Total)
}

func TestValidate(t *testing.T) {
	base := func() *Draft {
		d := testDraft()
		_, err := d.AddItem(CatalogItem{ItemID: 1, SellingPrice: 10, RemainingQty: 5}, 1)
		require.NoError(t, err)
		return d
	}

	tests := []struct {
		name    string
		mutate  func(*Draft)
		wantErr error
	}{
		{"valid", func(d *Draft) {}, nil},
		{"empty items", func(d *Draft) { d.Items = nil }, ErrEmptyDocument},
		{"discount below range", func(d *Draft) { d.DiscountPercent = -1 }, ErrInvalidDiscount},
		{"discount above range", func(d *Draft) { d.DiscountPercent = 100.5 }, ErrInvalidDiscount},
		{"missing client", func(d *Draft) { d.ClientID = 0 }, ErrMissingRequiredField},
		{"missing date", func(d *Draft) { d.Date = time.Time{} }, ErrMissingRequiredField},
		{"due date before date", func(d *Draft) { d.DueDate = d.Date.AddDate(0, 0, -1) }, ErrInvalidDueDate},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := base()
			tc.mutate(d)
			err := d.Validate()
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestFormatDocumentNumber(t *testing.T) {
	march2025 := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	require.Equal(t, "INV-42/3/25", FormatDocumentNumber(PrefixInvoice, 42, march2025))
	require.Equal(t, "QTN-7/12/99", FormatDocumentNumber(PrefixQuotation, 7, time.Date(1999, 12, 1, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, "EXP-1/1/05", FormatDocumentNumber(PrefixExpense, 1, time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC)))
}
