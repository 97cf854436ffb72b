package flow

import "strings"

// Activity tags a transaction type and selects the rule applied to it.
type Activity string

// Group classifies an activity by statement section.
type Group string

const (
	GroupOperatingExpense Group = "operating_expense"
	GroupRevenue          Group = "revenue"
	GroupInvesting        Group = "investing"
	GroupFinancing        Group = "financing"
)

// Operating expenses.
const (
	WagesExpense         Activity = "WAGES_EXPENSE"
	EmployeeBenefits     Activity = "EMPLOYEE_BENEFITS"
	SalesCommission      Activity = "SALES_COMMISSION"
	AdvertisingExpense   Activity = "ADVERTISING_EXPENSE"
	PromotionExpense     Activity = "PROMOTION_EXPENSE"
	EventExpense         Activity = "EVENT_EXPENSE"
	DigitalMarketing     Activity = "DIGITAL_MARKETING"
	OfficeRent           Activity = "OFFICE_RENT"
	UtilitiesExpense     Activity = "UTILITIES_EXPENSE"
	OfficeSupplies       Activity = "OFFICE_SUPPLIES"
	MaintenanceExpense   Activity = "MAINTENANCE_EXPENSE"
	LegalFees            Activity = "LEGAL_FEES"
	AccountingFees       Activity = "ACCOUNTING_FEES"
	ConsultingFees       Activity = "CONSULTING_FEES"
	SoftwareExpense      Activity = "SOFTWARE_EXPENSE"
	HardwareExpense      Activity = "HARDWARE_EXPENSE"
	HostingExpense       Activity = "HOSTING_EXPENSE"
	TravelExpense        Activity = "TRAVEL_EXPENSE"
	EntertainmentExpense Activity = "ENTERTAINMENT_EXPENSE"
	InsuranceExpense     Activity = "INSURANCE_EXPENSE"
	TrainingExpense      Activity = "TRAINING_EXPENSE"
)

// Revenue streams.
const (
	RetailSales            Activity = "RETAIL_SALES"
	WholesaleSales         Activity = "WHOLESALE_SALES"
	OnlineSales            Activity = "ONLINE_SALES"
	ConsultingRevenue      Activity = "CONSULTING_REVENUE"
	MaintenanceRevenue     Activity = "MAINTENANCE_REVENUE"
	TrainingRevenue        Activity = "TRAINING_REVENUE"
	MonthlySubscription    Activity = "MONTHLY_SUBSCRIPTION"
	AnnualSubscription     Activity = "ANNUAL_SUBSCRIPTION"
	EnterpriseSubscription Activity = "ENTERPRISE_SUBSCRIPTION"
	LicensingFees          Activity = "LICENSING_FEES"
	CommissionIncome       Activity = "COMMISSION_INCOME"
	RentalIncome           Activity = "RENTAL_INCOME"
)

// Investing activities.
const (
	LandPurchase           Activity = "LAND_PURCHASE"
	BuildingPurchase       Activity = "BUILDING_PURCHASE"
	BuildingImprovement    Activity = "BUILDING_IMPROVEMENT"
	ManufacturingEquipment Activity = "MANUFACTURING_EQUIPMENT"
	OfficeEquipment        Activity = "OFFICE_EQUIPMENT"
	VehiclePurchase        Activity = "VEHICLE_PURCHASE"
	ITInfrastructure       Activity = "IT_INFRASTRUCTURE"
	PatentPurchase         Activity = "PATENT_PURCHASE"
	SoftwareDevelopment    Activity = "SOFTWARE_DEVELOPMENT"
	MarketableSecurities   Activity = "MARKETABLE_SECURITIES"
	LongTermInvestment     Activity = "LONG_TERM_INVESTMENT"
	BusinessAcquisition    Activity = "BUSINESS_ACQUISITION"
	ResearchDevelopment    Activity = "RESEARCH_DEVELOPMENT"
)

// Financing activities.
const (
	BankLoanReceipt        Activity = "BANK_LOAN_RECEIPT"
	BankLoanPayment        Activity = "BANK_LOAN_PAYMENT"
	BondIssuance           Activity = "BOND_ISSUANCE"
	BondPayment            Activity = "BOND_PAYMENT"
	CreditLineDraw         Activity = "CREDIT_LINE_DRAW"
	CreditLinePayment      Activity = "CREDIT_LINE_PAYMENT"
	LeasePayment           Activity = "LEASE_PAYMENT"
	CommonStockIssuance    Activity = "COMMON_STOCK_ISSUANCE"
	PreferredStockIssuance Activity = "PREFERRED_STOCK_ISSUANCE"
	StockBuyback           Activity = "STOCK_BUYBACK"
	DividendPayment        Activity = "DIVIDEND_PAYMENT"
)

// Category is a named cluster of activities inside a group, used to build option groups.
type Category struct {
	Group      Group
	Label      string
	Activities []Activity
}

var categories = []Category{
	{GroupOperatingExpense, "Payroll Related", []Activity{WagesExpense, EmployeeBenefits, SalesCommission}},
	{GroupOperatingExpense, "Marketing Related", []Activity{AdvertisingExpense, PromotionExpense, EventExpense, DigitalMarketing}},
	{GroupOperatingExpense, "Office Related", []Activity{OfficeRent, UtilitiesExpense, OfficeSupplies, MaintenanceExpense}},
	{GroupOperatingExpense, "Professional Services", []Activity{LegalFees, AccountingFees, ConsultingFees}},
	{GroupOperatingExpense, "Technology", []Activity{SoftwareExpense, HardwareExpense, HostingExpense}},
	{GroupOperatingExpense, "Other Expenses", []Activity{TravelExpense, EntertainmentExpense, InsuranceExpense, TrainingExpense}},
	{GroupRevenue, "Product Sales", []Activity{RetailSales, WholesaleSales, OnlineSales}},
	{GroupRevenue, "Service Revenue", []Activity{ConsultingRevenue, MaintenanceRevenue, TrainingRevenue}},
	{GroupRevenue, "Subscription Revenue", []Activity{MonthlySubscription, AnnualSubscription, EnterpriseSubscription}},
	{GroupRevenue, "Other Revenue", []Activity{LicensingFees, CommissionIncome, RentalIncome}},
	{GroupInvesting, "Property & Equipment", []Activity{LandPurchase, BuildingPurchase, BuildingImprovement, ManufacturingEquipment, OfficeEquipment, VehiclePurchase}},
	{GroupInvesting, "Technology & IP", []Activity{ITInfrastructure, PatentPurchase, SoftwareDevelopment}},
	{GroupInvesting, "Financial", []Activity{MarketableSecurities, LongTermInvestment, BusinessAcquisition, ResearchDevelopment}},
	{GroupFinancing, "Debt Related", []Activity{BankLoanReceipt, BankLoanPayment, BondIssuance, BondPayment, CreditLineDraw, CreditLinePayment, LeasePayment}},
	{GroupFinancing, "Equity Related", []Activity{CommonStockIssuance, PreferredStockIssuance, StockBuyback, DividendPayment}},
}

var (
	allActivities   []Activity
	activityGroup   = make(map[Activity]Group)
	activityCluster = make(map[Activity]string)
)

func init() {
	for _, c := range categories {
		for _, a := range c.Activities {
			allActivities = append(allActivities, a)
			activityGroup[a] = c.Group
			activityCluster[a] = c.Label
		}
	}
}

// Activities returns every known activity in display order.
func Activities() []Activity {
	out := make([]Activity, len(allActivities))
	copy(out, allActivities)
	return out
}

// Categories returns the activity clusters in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		out[i] = Category{Group: c.Group, Label: c.Label, Activities: append([]Activity(nil), c.Activities...)}
	}
	return out
}

// ParseActivity normalises user input into an Activity. The second value is
// false when the tag is not known.
func ParseActivity(s string) (Activity, bool) {
	a := Activity(strings.ToUpper(strings.TrimSpace(s)))
	return a, a.Valid()
}

// Valid reports whether the activity has a rule.
func (a Activity) Valid() bool {
	_, ok := rules[a]
	return ok
}

// Group returns the statement group of the activity, or "" if unknown.
func (a Activity) Group() Group {
	return activityGroup[a]
}

// Category returns the cluster label of the activity.
func (a Activity) Category() string {
	return activityCluster[a]
}

// Label turns RETAIL_SALES into "Retail Sales".
func (a Activity) Label() string {
	parts := strings.Split(strings.ToLower(string(a)), "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		switch p {
		case "it":
			parts[i] = "IT"
		default:
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}

// IsInflow reports whether applying the activity increases cash.
func (a Activity) IsInflow() bool {
	var net int64
	for _, e := range rules[a] {
		if e.Account.IsCash() {
			net += e.Percent
		}
	}
	return net > 0
}

// Label returns the human readable name of a group.
func (g Group) Label() string {
	switch g {
	case GroupOperatingExpense:
		return "Operating Expenses"
	case GroupRevenue:
		return "Revenue Streams"
	case GroupInvesting:
		return "Investment Activities"
	case GroupFinancing:
		return "Financing Activities"
	default:
		return string(g)
	}
}
