package flow

import "strings"

// Account addresses a leaf balance with its dotted JSON path.
type Account string

const (
	CheckingAccounts Account = "cashBalance.checkingAccounts"
	SavingsAccounts  Account = "cashBalance.savingsAccounts"
	PettyCash        Account = "cashBalance.pettyCash"
	RestrictedCash   Account = "cashBalance.restrictedCash"

	Inventory               Account = "assets.currentAssets.inventory"
	AccountsReceivable      Account = "assets.currentAssets.accountsReceivable"
	ShortTermInvestments    Account = "assets.currentAssets.shortTermInvestments"
	PrepaidExpenses         Account = "assets.currentAssets.prepaidExpenses"
	Property                Account = "assets.nonCurrentAssets.property"
	Equipment               Account = "assets.nonCurrentAssets.equipment"
	AccumulatedDepreciation Account = "assets.nonCurrentAssets.accumulatedDepreciation"
	LongTermInvestments     Account = "assets.nonCurrentAssets.longTermInvestments"
	IntangibleAssets        Account = "assets.nonCurrentAssets.intangibleAssets"

	AccountsPayable    Account = "liabilities.currentLiabilities.accountsPayable"
	ShortTermLoans     Account = "liabilities.currentLiabilities.shortTermLoans"
	AccruedExpenses    Account = "liabilities.currentLiabilities.accruedExpenses"
	DeferredRevenue    Account = "liabilities.currentLiabilities.deferredRevenue"
	TaxesPayable       Account = "liabilities.currentLiabilities.taxesPayable"
	LongTermDebt       Account = "liabilities.longTermLiabilities.longTermDebt"
	BondPayable        Account = "liabilities.longTermLiabilities.bondPayable"
	LeaseLiabilities   Account = "liabilities.longTermLiabilities.leaseLiabilities"
	PensionLiabilities Account = "liabilities.longTermLiabilities.pensionLiabilities"

	CommonStock                         Account = "equity.ownershipEquity.commonStock"
	PreferredStock                      Account = "equity.ownershipEquity.preferredStock"
	TreasuryStock                       Account = "equity.ownershipEquity.treasuryStock"
	RetainedEarnings                    Account = "equity.retainedEarnings"
	AdditionalPaidInCapital             Account = "equity.additionalPaidInCapital"
	AccumulatedOtherComprehensiveIncome Account = "equity.accumulatedOtherComprehensiveIncome"

	DirectSales         Account = "revenue.operatingRevenue.productSales.directSales"
	ChannelSales        Account = "revenue.operatingRevenue.productSales.channelSales"
	OnlineSalesRevenue  Account = "revenue.operatingRevenue.productSales.onlineSales"
	ConsultingIncome    Account = "revenue.operatingRevenue.serviceSales.consultingRevenue"
	MaintenanceIncome   Account = "revenue.operatingRevenue.serviceSales.maintenanceRevenue"
	SubscriptionRevenue Account = "revenue.operatingRevenue.serviceSales.subscriptionRevenue"
	TrainingIncome      Account = "revenue.operatingRevenue.serviceSales.trainingRevenue"
	InterestIncome      Account = "revenue.nonOperatingRevenue.interestIncome"
	InvestmentGains     Account = "revenue.nonOperatingRevenue.investmentGains"
	OtherIncome         Account = "revenue.nonOperatingRevenue.otherIncome"

	MaterialsCost          Account = "expenses.operatingExpenses.directCosts.materialsCost"
	LaborCost              Account = "expenses.operatingExpenses.directCosts.laborCost"
	ManufacturingOverhead  Account = "expenses.operatingExpenses.directCosts.manufacturingOverhead"
	SalesCommissionCost    Account = "expenses.operatingExpenses.sellingExpenses.salesCommission"
	AdvertisingCost        Account = "expenses.operatingExpenses.sellingExpenses.advertisingCost"
	MarketingExpense       Account = "expenses.operatingExpenses.sellingExpenses.marketingExpense"
	SalariesAndWages       Account = "expenses.operatingExpenses.administrativeExpenses.salariesAndWages"
	OfficeRentCost         Account = "expenses.operatingExpenses.administrativeExpenses.officeRent"
	Utilities              Account = "expenses.operatingExpenses.administrativeExpenses.utilities"
	OfficeSuppliesCost     Account = "expenses.operatingExpenses.administrativeExpenses.officeSupplies"
	Insurance              Account = "expenses.operatingExpenses.administrativeExpenses.insurance"
	ProfessionalFees       Account = "expenses.operatingExpenses.administrativeExpenses.professionalFees"
	TechnologyExpense      Account = "expenses.operatingExpenses.administrativeExpenses.technologyExpense"
	TravelAndEntertainment Account = "expenses.operatingExpenses.administrativeExpenses.travelAndEntertainment"
	TrainingCost           Account = "expenses.operatingExpenses.administrativeExpenses.trainingExpense"
	InterestExpense        Account = "expenses.nonOperatingExpenses.interestExpense"
	TaxExpense             Account = "expenses.nonOperatingExpenses.taxExpense"
	DepreciationExpense    Account = "expenses.nonOperatingExpenses.depreciationExpense"
	AmortizationExpense    Account = "expenses.nonOperatingExpenses.amortizationExpense"
)

var accountOrder = []Account{
	CheckingAccounts, SavingsAccounts, PettyCash, RestrictedCash,
	Inventory, AccountsReceivable, ShortTermInvestments, PrepaidExpenses,
	Property, Equipment, AccumulatedDepreciation, LongTermInvestments, IntangibleAssets,
	AccountsPayable, ShortTermLoans, AccruedExpenses, DeferredRevenue, TaxesPayable,
	LongTermDebt, BondPayable, LeaseLiabilities, PensionLiabilities,
	CommonStock, PreferredStock, TreasuryStock, RetainedEarnings, AdditionalPaidInCapital, AccumulatedOtherComprehensiveIncome,
	DirectSales, ChannelSales, OnlineSalesRevenue,
	ConsultingIncome, MaintenanceIncome, SubscriptionRevenue, TrainingIncome,
	InterestIncome, InvestmentGains, OtherIncome,
	MaterialsCost, LaborCost, ManufacturingOverhead,
	SalesCommissionCost, AdvertisingCost, MarketingExpense,
	SalariesAndWages, OfficeRentCost, Utilities, OfficeSuppliesCost, Insurance,
	ProfessionalFees, TechnologyExpense, TravelAndEntertainment, TrainingCost,
	InterestExpense, TaxExpense, DepreciationExpense, AmortizationExpense,
}

// Accounts lists every leaf account in statement order.
func Accounts() []Account {
	out := make([]Account, len(accountOrder))
	copy(out, accountOrder)
	return out
}

// ID returns the field id of the leaf, e.g. "checkingAccounts".
func (a Account) ID() string {
	s := string(a)
	if idx := strings.LastIndex(s, "."); idx >= 0 {
		return s[idx+1:]
	}
	return s
}

// Section returns the top-level bucket, e.g. "cashBalance".
func (a Account) Section() string {
	s := string(a)
	if idx := strings.Index(s, "."); idx >= 0 {
		return s[:idx]
	}
	return s
}

// IsCash reports whether the account belongs to the cash balance.
func (a Account) IsCash() bool {
	return a.Section() == "cashBalance"
}

func (s *Snapshot) leaf(a Account) *Money {
	cb := &s.CashBalance
	ca := &s.Assets.CurrentAssets
	nca := &s.Assets.NonCurrentAssets
	cl := &s.Liabilities.CurrentLiabilities
	ltl := &s.Liabilities.LongTermLiabilities
	eq := &s.Equity
	ps := &s.Revenue.OperatingRevenue.ProductSales
	ss := &s.Revenue.OperatingRevenue.ServiceSales
	nor := &s.Revenue.NonOperatingRevenue
	dc := &s.Expenses.OperatingExpenses.DirectCosts
	se := &s.Expenses.OperatingExpenses.SellingExpenses
	ae := &s.Expenses.OperatingExpenses.AdministrativeExpenses
	noe := &s.Expenses.NonOperatingExpenses

	switch a {
	case CheckingAccounts:
		return &cb.CheckingAccounts
	case SavingsAccounts:
		return &cb.SavingsAccounts
	case PettyCash:
		return &cb.PettyCash
	case RestrictedCash:
		return &cb.RestrictedCash
	case Inventory:
		return &ca.Inventory
	case AccountsReceivable:
		return &ca.AccountsReceivable
	case ShortTermInvestments:
		return &ca.ShortTermInvestments
	case PrepaidExpenses:
		return &ca.PrepaidExpenses
	case Property:
		return &nca.Property
	case Equipment:
		return &nca.Equipment
	case AccumulatedDepreciation:
		return &nca.AccumulatedDepreciation
	case LongTermInvestments:
		return &nca.LongTermInvestments
	case IntangibleAssets:
		return &nca.IntangibleAssets
	case AccountsPayable:
		return &cl.AccountsPayable
	case ShortTermLoans:
		return &cl.ShortTermLoans
	case AccruedExpenses:
		return &cl.AccruedExpenses
	case DeferredRevenue:
		return &cl.DeferredRevenue
	case TaxesPayable:
		return &cl.TaxesPayable
	case LongTermDebt:
		return &ltl.LongTermDebt
	case BondPayable:
		return &ltl.BondPayable
	case LeaseLiabilities:
		return &ltl.LeaseLiabilities
	case PensionLiabilities:
		return &ltl.PensionLiabilities
	case CommonStock:
		return &eq.OwnershipEquity.CommonStock
	case PreferredStock:
		return &eq.OwnershipEquity.PreferredStock
	case TreasuryStock:
		return &eq.OwnershipEquity.TreasuryStock
	case RetainedEarnings:
		return &eq.RetainedEarnings
	case AdditionalPaidInCapital:
		return &eq.AdditionalPaidInCapital
	case AccumulatedOtherComprehensiveIncome:
		return &eq.AccumulatedOtherComprehensiveIncome
	case DirectSales:
		return &ps.DirectSales
	case ChannelSales:
		return &ps.ChannelSales
	case OnlineSalesRevenue:
		return &ps.OnlineSales
	case ConsultingIncome:
		return &ss.ConsultingRevenue
	case MaintenanceIncome:
		return &ss.MaintenanceRevenue
	case SubscriptionRevenue:
		return &ss.SubscriptionRevenue
	case TrainingIncome:
		return &ss.TrainingRevenue
	case InterestIncome:
		return &nor.InterestIncome
	case InvestmentGains:
		return &nor.InvestmentGains
	case OtherIncome:
		return &nor.OtherIncome
	case MaterialsCost:
		return &dc.MaterialsCost
	case LaborCost:
		return &dc.LaborCost
	case ManufacturingOverhead:
		return &dc.ManufacturingOverhead
	case SalesCommissionCost:
		return &se.SalesCommission
	case AdvertisingCost:
		return &se.AdvertisingCost
	case MarketingExpense:
		return &se.MarketingExpense
	case SalariesAndWages:
		return &ae.SalariesAndWages
	case OfficeRentCost:
		return &ae.OfficeRent
	case Utilities:
		return &ae.Utilities
	case OfficeSuppliesCost:
		return &ae.OfficeSupplies
	case Insurance:
		return &ae.Insurance
	case ProfessionalFees:
		return &ae.ProfessionalFees
	case TechnologyExpense:
		return &ae.TechnologyExpense
	case TravelAndEntertainment:
		return &ae.TravelAndEntertainment
	case TrainingCost:
		return &ae.TrainingExpense
	case InterestExpense:
		return &noe.InterestExpense
	case TaxExpense:
		return &noe.TaxExpense
	case DepreciationExpense:
		return &noe.DepreciationExpense
	case AmortizationExpense:
		return &noe.AmortizationExpense
	}
	return nil
}
