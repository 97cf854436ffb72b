package flow

var activityDescriptions = map[Activity]string{
	WagesExpense:         "Regular salary and wage payments to employees",
	EmployeeBenefits:     "Health insurance, retirement plans, and other employee benefits",
	SalesCommission:      "Commission payments to sales staff based on their sales performance",
	AdvertisingExpense:   "Costs for promoting products/services through paid advertising channels",
	PromotionExpense:     "Costs for sales promotions, discounts, and special offers",
	EventExpense:         "Costs for organizing and participating in business events",
	DigitalMarketing:     "Online marketing costs including social media and SEO",
	OfficeRent:           "Monthly or annual office space rental payments",
	UtilitiesExpense:     "Electricity, water, heating, and other utility costs",
	OfficeSupplies:       "General office supplies and materials",
	MaintenanceExpense:   "Building and equipment maintenance costs",
	LegalFees:            "Payments for legal services and consultation",
	AccountingFees:       "Payments for accounting and auditing services",
	ConsultingFees:       "Payments for business consulting services",
	SoftwareExpense:      "Software licenses and subscription fees",
	HardwareExpense:      "Computer hardware and equipment purchases",
	HostingExpense:       "Server hosting and cloud service fees",
	TravelExpense:        "Business travel costs including transportation and accommodation",
	EntertainmentExpense: "Client entertainment and business relationship building costs",
	InsuranceExpense:     "Business insurance premiums and related costs",
	TrainingExpense:      "Employee training and development costs",

	RetailSales:            "Direct sales to consumers through retail channels",
	WholesaleSales:         "Bulk sales to retailers or distributors",
	OnlineSales:            "Sales through e-commerce platforms",
	ConsultingRevenue:      "Income from providing consulting services",
	MaintenanceRevenue:     "Income from maintenance and support services",
	TrainingRevenue:        "Income from providing training services",
	MonthlySubscription:    "Revenue from monthly subscription plans",
	AnnualSubscription:     "Revenue from annual subscription plans",
	EnterpriseSubscription: "Revenue from enterprise-level subscription plans",
	LicensingFees:          "Income from licensing intellectual property",
	CommissionIncome:       "Income earned from commission-based activities",
	RentalIncome:           "Income from renting out property or equipment",

	LandPurchase:           "Investment in land acquisition",
	BuildingPurchase:       "Investment in building acquisition",
	BuildingImprovement:    "Costs for building upgrades and improvements",
	ManufacturingEquipment: "Investment in manufacturing machinery and equipment",
	OfficeEquipment:        "Investment in office furniture and equipment",
	VehiclePurchase:        "Investment in company vehicles",
	ITInfrastructure:       "Investment in IT systems and infrastructure",
	PatentPurchase:         "Acquisition of patents and intellectual property",
	SoftwareDevelopment:    "Investment in custom software development",
	MarketableSecurities:   "Investment in short-term marketable securities",
	LongTermInvestment:     "Investment in long-term financial instruments",
	BusinessAcquisition:    "Investment in acquiring other businesses",
	ResearchDevelopment:    "Investment in research and development activities",

	BankLoanReceipt:        "Funds received from bank loans",
	BankLoanPayment:        "Repayment of bank loan principal and interest",
	BondIssuance:           "Funds received from issuing corporate bonds",
	BondPayment:            "Repayment of bond principal and interest",
	CreditLineDraw:         "Funds drawn from credit line facility",
	CreditLinePayment:      "Repayment of credit line balance",
	LeasePayment:           "Payment for leased assets",
	CommonStockIssuance:    "Funds received from issuing common stock",
	PreferredStockIssuance: "Funds received from issuing preferred stock",
	StockBuyback:           "Repurchase of company stock from shareholders",
	DividendPayment:        "Distribution of profits to shareholders",
}

var fieldDescriptions = map[string]string{
	"cashBalance":      "Immediately available funds in business checking accounts",
	"checkingAccounts": "Immediately available funds in business checking accounts",
	"savingsAccounts":  "Cash reserves held in interest-bearing savings accounts",
	"pettyCash":        "Small amount of cash kept on hand for minor expenses",
	"restrictedCash":   "Cash that is reserved for specific purposes or cannot be immediately accessed",

	"assets":               "Resources owned by the business",
	"currentAssets":        "Assets that are expected to be converted to cash within one year",
	"inventory":            "Value of goods available for sale or materials for production",
	"accountsReceivable":   "Money owed to the business by customers for goods or services",
	"shortTermInvestments": "Investments expected to be converted to cash within one year",
	"prepaidExpenses":      "Expenses paid in advance that have not yet been used or expired",

	"nonCurrentAssets":        "Assets that are not expected to be converted to cash within one year",
	"property":                "Value of land and buildings owned by the business",
	"equipment":               "Value of machinery, vehicles, and other business equipment",
	"accumulatedDepreciation": "Total depreciation recorded for long-term assets over time",
	"longTermInvestments":     "Investments held for more than one year",
	"intangibleAssets":        "Non-physical assets like patents, trademarks, and goodwill",

	"liabilities":        "Obligations the business owes to outside parties",
	"currentLiabilities": "Liabilities that are expected to be paid within one year",
	"accountsPayable":    "Money owed to suppliers for goods or services received",
	"shortTermLoans":     "Debt that must be repaid within one year",
	"accruedExpenses":    "Expenses that have been incurred but not yet paid",
	"deferredRevenue":    "Payments received for goods or services that have not yet been delivered",
	"taxesPayable":       "Taxes owed but not yet paid to government authorities",

	"longTermLiabilities": "Liabilities that are not expected to be paid within one year",
	"longTermDebt":        "Loans and other debt obligations due after one year",
	"bondPayable":         "Money owed to bondholders",
	"leaseLiabilities":    "Long-term obligations under lease agreements",
	"pensionLiabilities":  "Future obligations to pay employee retirement benefits",

	"equity":                              "Owners' residual claim on the business",
	"ownershipEquity":                     "Total value of the company's assets minus its liabilities",
	"commonStock":                         "Value of issued common shares representing basic ownership in the company",
	"preferredStock":                      "Value of issued preferred shares with priority dividend rights",
	"treasuryStock":                       "Company shares that have been repurchased from shareholders",
	"retainedEarnings":                    "Accumulated profits that have been reinvested in the business",
	"additionalPaidInCapital":             "Amount paid by investors above the par value of issued shares",
	"accumulatedOtherComprehensiveIncome": "Gains and losses not shown in the main income statement",

	"revenue":             "Income earned during the period",
	"operatingRevenue":    "Revenue generated from the company's primary operations",
	"productSales":        "Revenue from selling products",
	"directSales":         "Revenue from products sold directly to customers",
	"channelSales":        "Revenue from products sold through distributors or retailers",
	"onlineSales":         "Revenue from products sold through e-commerce platforms",
	"serviceSales":        "Revenue from providing services",
	"consultingRevenue":   "Income from providing professional advice and expertise",
	"maintenanceRevenue":  "Income from maintaining or servicing products",
	"subscriptionRevenue": "Recurring revenue from subscription-based services",
	"trainingRevenue":     "Income from delivering training programs",

	"nonOperatingRevenue": "Revenue from sources not part of normal business operations",
	"interestIncome":      "Income earned from investments and bank deposits",
	"investmentGains":     "Profits from the sale of investments",
	"otherIncome":         "Revenue from sources not part of normal business operations",

	"expenses":               "Costs incurred during the period",
	"operatingExpenses":      "Expenses incurred in the normal course of business operations",
	"directCosts":            "Costs directly tied to producing goods or services",
	"materialsCost":          "Cost of raw materials used in production",
	"laborCost":              "Wages and benefits paid to production workers",
	"manufacturingOverhead":  "Indirect costs of production like utilities and maintenance",
	"sellingExpenses":        "Costs of selling and marketing products",
	"salesCommission":        "Payments to sales staff based on their sales performance",
	"advertisingCost":        "Expenses for promoting products and services",
	"marketingExpense":       "Costs related to marketing campaigns and brand development",
	"administrativeExpenses": "General costs of running the business",
	"salariesAndWages":       "Regular pay for non-production employees",
	"officeRent":             "Cost of leasing office space",
	"utilities":              "Expenses for electricity, water, and other utilities",
	"officeSupplies":         "Cost of consumable office materials",
	"insurance":              "Premiums paid for business insurance coverage",
	"professionalFees":       "Legal, accounting, and consulting service fees",
	"technologyExpense":      "Software, hardware, and hosting costs",
	"travelAndEntertainment": "Business travel and client entertainment costs",
	"trainingExpense":        "Employee training and development costs",

	"nonOperatingExpenses": "Expenses incurred in non-operating activities",
	"interestExpense":      "Cost of borrowing money",
	"taxExpense":           "Income taxes and other tax obligations",
	"depreciationExpense":  "Allocation of asset costs over their useful life",
	"amortizationExpense":  "Gradual write-off of intangible asset costs",
}

// DescribeActivity returns tooltip text for an activity, or "" when unknown.
func DescribeActivity(a Activity) string {
	return activityDescriptions[a]
}

// DescribeField returns tooltip text for a snapshot field id such as
// "checkingAccounts" or "currentAssets".
func DescribeField(id string) string {
	return fieldDescriptions[id]
}

// Label is shorthand for a.Label().
func Label(a Activity) string {
	return a.Label()
}
