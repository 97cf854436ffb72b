package flow

// Effect moves Percent of a transaction amount into Account. A negative
// percent decreases the balance.
type Effect struct {
	Account Account
	Percent int64
}

func inc(a Account, pct int64) Effect { return Effect{Account: a, Percent: pct} }
func dec(a Account, pct int64) Effect { return Effect{Account: a, Percent: -pct} }

// rules is the fixed classification table. Splits such as 70/30 are domain
// content; nothing checks that the effects balance.
var rules = map[Activity][]Effect{
	WagesExpense:         {dec(CheckingAccounts, 100), inc(SalariesAndWages, 100)},
	EmployeeBenefits:     {dec(CheckingAccounts, 80), inc(AccruedExpenses, 20), inc(SalariesAndWages, 100)},
	SalesCommission:      {dec(CheckingAccounts, 100), inc(SalesCommissionCost, 100)},
	AdvertisingExpense:   {dec(CheckingAccounts, 100), inc(AdvertisingCost, 100)},
	PromotionExpense:     {dec(CheckingAccounts, 100), inc(MarketingExpense, 100)},
	EventExpense:         {dec(CheckingAccounts, 100), inc(MarketingExpense, 100)},
	DigitalMarketing:     {dec(CheckingAccounts, 100), inc(AdvertisingCost, 100)},
	OfficeRent:           {dec(CheckingAccounts, 100), inc(OfficeRentCost, 100)},
	UtilitiesExpense:     {dec(CheckingAccounts, 100), inc(Utilities, 100)},
	OfficeSupplies:       {dec(CheckingAccounts, 100), inc(OfficeSuppliesCost, 100)},
	MaintenanceExpense:   {dec(CheckingAccounts, 100), inc(ManufacturingOverhead, 100)},
	LegalFees:            {dec(CheckingAccounts, 100), inc(ProfessionalFees, 100)},
	AccountingFees:       {dec(CheckingAccounts, 100), inc(ProfessionalFees, 100)},
	ConsultingFees:       {dec(CheckingAccounts, 70), inc(AccountsPayable, 30), inc(ProfessionalFees, 100)},
	SoftwareExpense:      {dec(CheckingAccounts, 100), inc(TechnologyExpense, 100)},
	HardwareExpense:      {dec(CheckingAccounts, 100), inc(TechnologyExpense, 100)},
	HostingExpense:       {dec(CheckingAccounts, 100), inc(TechnologyExpense, 100)},
	TravelExpense:        {dec(CheckingAccounts, 90), dec(PettyCash, 10), inc(TravelAndEntertainment, 100)},
	EntertainmentExpense: {dec(CheckingAccounts, 100), inc(TravelAndEntertainment, 100)},
	InsuranceExpense:     {dec(CheckingAccounts, 100), inc(Insurance, 100)},
	TrainingExpense:      {dec(CheckingAccounts, 100), inc(TrainingCost, 100)},

	RetailSales:            {inc(CheckingAccounts, 100), inc(DirectSales, 100)},
	WholesaleSales:         {inc(CheckingAccounts, 60), inc(AccountsReceivable, 40), inc(ChannelSales, 100)},
	OnlineSales:            {inc(CheckingAccounts, 70), inc(AccountsReceivable, 30), inc(OnlineSalesRevenue, 100)},
	ConsultingRevenue:      {inc(CheckingAccounts, 100), inc(ConsultingIncome, 100)},
	MaintenanceRevenue:     {inc(CheckingAccounts, 100), inc(MaintenanceIncome, 100)},
	TrainingRevenue:        {inc(CheckingAccounts, 100), inc(TrainingIncome, 100)},
	MonthlySubscription:    {inc(CheckingAccounts, 100), inc(SubscriptionRevenue, 100)},
	AnnualSubscription:     {inc(CheckingAccounts, 100), inc(DeferredRevenue, 90), inc(SubscriptionRevenue, 10)},
	EnterpriseSubscription: {inc(CheckingAccounts, 80), inc(AccountsReceivable, 20), inc(SubscriptionRevenue, 100)},
	LicensingFees:          {inc(CheckingAccounts, 100), inc(OtherIncome, 100)},
	CommissionIncome:       {inc(CheckingAccounts, 100), inc(OtherIncome, 100)},
	RentalIncome:           {inc(CheckingAccounts, 100), inc(OtherIncome, 100)},

	LandPurchase:           {dec(CheckingAccounts, 100), inc(Property, 100)},
	BuildingPurchase:       {dec(CheckingAccounts, 30), inc(LongTermDebt, 70), inc(Property, 100)},
	BuildingImprovement:    {dec(CheckingAccounts, 100), inc(Property, 100)},
	ManufacturingEquipment: {dec(CheckingAccounts, 100), inc(Equipment, 100)},
	OfficeEquipment:        {dec(CheckingAccounts, 100), inc(Equipment, 100)},
	VehiclePurchase:        {dec(CheckingAccounts, 20), inc(LongTermDebt, 80), inc(Equipment, 100)},
	ITInfrastructure:       {dec(CheckingAccounts, 100), inc(Equipment, 100)},
	PatentPurchase:         {dec(CheckingAccounts, 100), inc(IntangibleAssets, 100)},
	SoftwareDevelopment:    {dec(CheckingAccounts, 100), inc(IntangibleAssets, 100)},
	MarketableSecurities:   {dec(CheckingAccounts, 100), inc(ShortTermInvestments, 100)},
	LongTermInvestment:     {dec(CheckingAccounts, 100), inc(LongTermInvestments, 100)},
	BusinessAcquisition:    {dec(CheckingAccounts, 100), inc(LongTermInvestments, 60), inc(IntangibleAssets, 40)},
	ResearchDevelopment:    {dec(CheckingAccounts, 100), inc(IntangibleAssets, 100)},

	BankLoanReceipt:        {inc(CheckingAccounts, 100), inc(LongTermDebt, 100)},
	BankLoanPayment:        {dec(CheckingAccounts, 100), dec(LongTermDebt, 90), inc(InterestExpense, 10)},
	BondIssuance:           {inc(CheckingAccounts, 100), inc(BondPayable, 100)},
	BondPayment:            {dec(CheckingAccounts, 100), dec(BondPayable, 90), inc(InterestExpense, 10)},
	CreditLineDraw:         {inc(CheckingAccounts, 100), inc(ShortTermLoans, 100)},
	CreditLinePayment:      {dec(CheckingAccounts, 100), dec(ShortTermLoans, 100)},
	LeasePayment:           {dec(CheckingAccounts, 100), dec(LeaseLiabilities, 80), inc(InterestExpense, 20)},
	CommonStockIssuance:    {inc(CheckingAccounts, 100), inc(CommonStock, 10), inc(AdditionalPaidInCapital, 90)},
	PreferredStockIssuance: {inc(CheckingAccounts, 100), inc(PreferredStock, 100)},
	StockBuyback:           {dec(CheckingAccounts, 100), dec(TreasuryStock, 100)},
	DividendPayment:        {dec(CheckingAccounts, 100), dec(RetainedEarnings, 100)},
}

// Rule returns a copy of the effects for an activity; ok is false for unknown tags.
func Rule(a Activity) ([]Effect, bool) {
	effects, ok := rules[a]
	if !ok {
		return nil, false
	}
	return append([]Effect(nil), effects...), true
}

// Effects previews the balance changes an amount would cause, keyed by account.
func Effects(a Activity, amount Money) map[Account]Money {
	out := make(map[Account]Money)
	for _, e := range rules[a] {
		out[e.Account] += share(amount, e.Percent)
	}
	return out
}

// apply adds the rule's effects for amount to s in place. Unknown tags are a no-op.
func apply(s *Snapshot, a Activity, amount Money) bool {
	effects, ok := rules[a]
	if !ok {
		return false
	}
	for _, e := range effects {
		if p := s.leaf(e.Account); p != nil {
			*p += share(amount, e.Percent)
		}
	}
	return true
}
