package statements

import (
	"strings"
	"unicode"

	"github.com/odyssey-erp/finflow/internal/flow"
)

// Row is one line of a statement. Group rows carry the recursive sum of their children.
type Row struct {
	ID          string     `json:"id"`
	Label       string     `json:"label"`
	Value       flow.Money `json:"value"`
	Description string     `json:"description,omitempty"`
	Children    []Row      `json:"children,omitempty"`
}

// IsGroup reports whether the row has children.
func (r Row) IsGroup() bool {
	return len(r.Children) > 0
}

// Total is a named figure shown beneath a statement.
type Total struct {
	Label string     `json:"label"`
	Value flow.Money `json:"value"`
}

// Statement is a titled list of sections.
type Statement struct {
	Title    string  `json:"title"`
	Sections []Row   `json:"sections"`
	Totals   []Total `json:"totals,omitempty"`
}

// Set bundles the three statements derived from one snapshot.
type Set struct {
	CashFlow                  Statement  `json:"cashFlow"`
	Income                    Statement  `json:"income"`
	Balance                   Statement  `json:"balance"`
	NetIncome                 flow.Money `json:"netIncome"`
	TotalAssets               flow.Money `json:"totalAssets"`
	TotalLiabilitiesAndEquity flow.Money `json:"totalLiabilitiesAndEquity"`
}

// Build derives all statements from a snapshot.
func Build(s flow.Snapshot) Set {
	cash := CashSection(s)
	revenue := RevenueSection(s)
	expenses := ExpenseSection(s)
	assets := AssetSection(s)
	liabilities := LiabilitySection(s)
	equity := EquitySection(s)

	net := revenue.Value - expenses.Value
	liabEq := liabilities.Value + equity.Value

	return Set{
		CashFlow: Statement{
			Title:    "Cash Flow Statement",
			Sections: []Row{cash},
			Totals:   []Total{{Label: "Total Cash", Value: cash.Value}},
		},
		Income: Statement{
			Title:    "Income Statement",
			Sections: []Row{revenue, expenses},
			Totals: []Total{
				{Label: "Total Revenue", Value: revenue.Value},
				{Label: "Total Expenses", Value: expenses.Value},
				{Label: "Net Income", Value: net},
			},
		},
		Balance: Statement{
			Title:    "Balance Sheet",
			Sections: []Row{assets, liabilities, equity},
			Totals: []Total{
				{Label: "Total Assets", Value: assets.Value},
				{Label: "Total Liabilities & Equity", Value: liabEq},
			},
		},
		NetIncome:                 net,
		TotalAssets:               assets.Value,
		TotalLiabilitiesAndEquity: liabEq,
	}
}

// CashSection lists the cash leaves.
func CashSection(s flow.Snapshot) Row {
	return group("cashBalance", "Cash Balance",
		leaf(s, flow.CheckingAccounts),
		leaf(s, flow.SavingsAccounts),
		leaf(s, flow.PettyCash),
		leaf(s, flow.RestrictedCash),
	)
}

// RevenueSection covers operating and non-operating revenue.
func RevenueSection(s flow.Snapshot) Row {
	return group("revenue", "Revenue",
		group("productSales", "Product Sales",
			leaf(s, flow.DirectSales),
			leaf(s, flow.ChannelSales),
			leaf(s, flow.OnlineSalesRevenue),
		),
		group("serviceSales", "Service Sales",
			leaf(s, flow.ConsultingIncome),
			leaf(s, flow.MaintenanceIncome),
			leaf(s, flow.SubscriptionRevenue),
			leaf(s, flow.TrainingIncome),
		),
		group("nonOperatingRevenue", "Non-Operating Revenue",
			leaf(s, flow.InterestIncome),
			leaf(s, flow.InvestmentGains),
			leaf(s, flow.OtherIncome),
		),
	)
}

// ExpenseSection covers operating and non-operating expenses.
func ExpenseSection(s flow.Snapshot) Row {
	return group("expenses", "Expenses",
		group("operatingExpenses", "Operating Expenses",
			group("directCosts", "Direct Costs",
				leaf(s, flow.MaterialsCost),
				leaf(s, flow.LaborCost),
				leaf(s, flow.ManufacturingOverhead),
			),
			group("sellingExpenses", "Selling Expenses",
				leaf(s, flow.SalesCommissionCost),
				leaf(s, flow.AdvertisingCost),
				leaf(s, flow.MarketingExpense),
			),
			group("administrativeExpenses", "Administrative Expenses",
				leaf(s, flow.SalariesAndWages),
				leaf(s, flow.OfficeRentCost),
				leaf(s, flow.Utilities),
				leaf(s, flow.OfficeSuppliesCost),
				leaf(s, flow.Insurance),
				leaf(s, flow.ProfessionalFees),
				leaf(s, flow.TechnologyExpense),
				leaf(s, flow.TravelAndEntertainment),
				leaf(s, flow.TrainingCost),
			),
		),
		group("nonOperatingExpenses", "Non-Operating Expenses",
			leaf(s, flow.InterestExpense),
			leaf(s, flow.TaxExpense),
			leaf(s, flow.DepreciationExpense),
			leaf(s, flow.AmortizationExpense),
		),
	)
}

// AssetSection covers current and non-current assets.
func AssetSection(s flow.Snapshot) Row {
	return group("assets", "Assets",
		group("currentAssets", "Current Assets",
			leaf(s, flow.Inventory),
			leaf(s, flow.AccountsReceivable),
			leaf(s, flow.ShortTermInvestments),
			leaf(s, flow.PrepaidExpenses),
		),
		group("nonCurrentAssets", "Non-Current Assets",
			leaf(s, flow.Property),
			leaf(s, flow.Equipment),
			leaf(s, flow.AccumulatedDepreciation),
			leaf(s, flow.LongTermInvestments),
			leaf(s, flow.IntangibleAssets),
		),
	)
}

// LiabilitySection covers current and long-term liabilities.
func LiabilitySection(s flow.Snapshot) Row {
	return group("liabilities", "Liabilities",
		group("currentLiabilities", "Current Liabilities",
			leaf(s, flow.AccountsPayable),
			leaf(s, flow.ShortTermLoans),
			leaf(s, flow.AccruedExpenses),
			leaf(s, flow.DeferredRevenue),
			leaf(s, flow.TaxesPayable),
		),
		group("longTermLiabilities", "Long-Term Liabilities",
			leaf(s, flow.LongTermDebt),
			leaf(s, flow.BondPayable),
			leaf(s, flow.LeaseLiabilities),
			leaf(s, flow.PensionLiabilities),
		),
	)
}

// EquitySection covers ownership equity and the remaining equity leaves.
func EquitySection(s flow.Snapshot) Row {
	return group("equity", "Equity",
		group("ownershipEquity", "Ownership Equity",
			leaf(s, flow.CommonStock),
			leaf(s, flow.PreferredStock),
			leaf(s, flow.TreasuryStock),
		),
		leaf(s, flow.RetainedEarnings),
		leaf(s, flow.AdditionalPaidInCapital),
		leaf(s, flow.AccumulatedOtherComprehensiveIncome),
	)
}

func leaf(s flow.Snapshot, acc flow.Account) Row {
	id := acc.ID()
	return Row{ID: id, Label: Humanize(id), Value: s.Balance(acc), Description: flow.DescribeField(id)}
}

func group(id, label string, children ...Row) Row {
	row := Row{ID: id, Label: label, Description: flow.DescribeField(id), Children: children}
	for _, c := range children {
		row.Value += c.Value
	}
	return row
}

// Humanize turns a camelCase field id into words: "accountsReceivable" -> "Accounts Receivable".
func Humanize(id string) string {
	var b strings.Builder
	for i, r := range id {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Walk visits rows depth first with their nesting depth.
func Walk(rows []Row, fn func(r Row, depth int)) {
	var visit func(rows []Row, depth int)
	visit = func(rows []Row, depth int) {
		for _, r := range rows {
			fn(r, depth)
			visit(r.Children, depth+1)
		}
	}
	visit(rows, 0)
}
