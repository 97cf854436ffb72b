package flow

// CashBalance holds the cash leaves.
type CashBalance struct {
	CheckingAccounts Money `json:"checkingAccounts"`
	SavingsAccounts  Money `json:"savingsAccounts"`
	PettyCash        Money `json:"pettyCash"`
	RestrictedCash   Money `json:"restrictedCash"`
}

type CurrentAssets struct {
	Inventory            Money `json:"inventory"`
	AccountsReceivable   Money `json:"accountsReceivable"`
	ShortTermInvestments Money `json:"shortTermInvestments"`
	PrepaidExpenses      Money `json:"prepaidExpenses"`
}

type NonCurrentAssets struct {
	Property                Money `json:"property"`
	Equipment               Money `json:"equipment"`
	AccumulatedDepreciation Money `json:"accumulatedDepreciation"`
	LongTermInvestments     Money `json:"longTermInvestments"`
	IntangibleAssets        Money `json:"intangibleAssets"`
}

type Assets struct {
	CurrentAssets    CurrentAssets    `json:"currentAssets"`
	NonCurrentAssets NonCurrentAssets `json:"nonCurrentAssets"`
}

type CurrentLiabilities struct {
	AccountsPayable Money `json:"accountsPayable"`
	ShortTermLoans  Money `json:"shortTermLoans"`
	AccruedExpenses Money `json:"accruedExpenses"`
	DeferredRevenue Money `json:"deferredRevenue"`
	TaxesPayable    Money `json:"taxesPayable"`
}

type LongTermLiabilities struct {
	LongTermDebt       Money `json:"longTermDebt"`
	BondPayable        Money `json:"bondPayable"`
	LeaseLiabilities   Money `json:"leaseLiabilities"`
	PensionLiabilities Money `json:"pensionLiabilities"`
}

type Liabilities struct {
	CurrentLiabilities  CurrentLiabilities  `json:"currentLiabilities"`
	LongTermLiabilities LongTermLiabilities `json:"longTermLiabilities"`
}

type OwnershipEquity struct {
	CommonStock    Money `json:"commonStock"`
	PreferredStock Money `json:"preferredStock"`
	TreasuryStock  Money `json:"treasuryStock"`
}

type Equity struct {
	OwnershipEquity                     OwnershipEquity `json:"ownershipEquity"`
	RetainedEarnings                    Money           `json:"retainedEarnings"`
	AdditionalPaidInCapital             Money           `json:"additionalPaidInCapital"`
	AccumulatedOtherComprehensiveIncome Money           `json:"accumulatedOtherComprehensiveIncome"`
}

type ProductSales struct {
	DirectSales  Money `json:"directSales"`
	ChannelSales Money `json:"channelSales"`
	OnlineSales  Money `json:"onlineSales"`
}

type ServiceSales struct {
	ConsultingRevenue   Money `json:"consultingRevenue"`
	MaintenanceRevenue  Money `json:"maintenanceRevenue"`
	SubscriptionRevenue Money `json:"subscriptionRevenue"`
	TrainingRevenue     Money `json:"trainingRevenue"`
}

type OperatingRevenue struct {
	ProductSales ProductSales `json:"productSales"`
	ServiceSales ServiceSales `json:"serviceSales"`
}

type NonOperatingRevenue struct {
	InterestIncome  Money `json:"interestIncome"`
	InvestmentGains Money `json:"investmentGains"`
	OtherIncome     Money `json:"otherIncome"`
}

type Revenue struct {
	OperatingRevenue    OperatingRevenue    `json:"operatingRevenue"`
	NonOperatingRevenue NonOperatingRevenue `json:"nonOperatingRevenue"`
}

type DirectCosts struct {
	MaterialsCost         Money `json:"materialsCost"`
	LaborCost             Money `json:"laborCost"`
	ManufacturingOverhead Money `json:"manufacturingOverhead"`
}

type SellingExpenses struct {
	SalesCommission  Money `json:"salesCommission"`
	AdvertisingCost  Money `json:"advertisingCost"`
	MarketingExpense Money `json:"marketingExpense"`
}

type AdministrativeExpenses struct {
	SalariesAndWages       Money `json:"salariesAndWages"`
	OfficeRent             Money `json:"officeRent"`
	Utilities              Money `json:"utilities"`
	OfficeSupplies         Money `json:"officeSupplies"`
	Insurance              Money `json:"insurance"`
	ProfessionalFees       Money `json:"professionalFees"`
	TechnologyExpense      Money `json:"technologyExpense"`
	TravelAndEntertainment Money `json:"travelAndEntertainment"`
	TrainingExpense        Money `json:"trainingExpense"`
}

type OperatingExpenses struct {
	DirectCosts            DirectCosts            `json:"directCosts"`
	SellingExpenses        SellingExpenses        `json:"sellingExpenses"`
	AdministrativeExpenses AdministrativeExpenses `json:"administrativeExpenses"`
}

type NonOperatingExpenses struct {
	InterestExpense     Money `json:"interestExpense"`
	TaxExpense          Money `json:"taxExpense"`
	DepreciationExpense Money `json:"depreciationExpense"`
	AmortizationExpense Money `json:"amortizationExpense"`
}

type Expenses struct {
	OperatingExpenses    OperatingExpenses    `json:"operatingExpenses"`
	NonOperatingExpenses NonOperatingExpenses `json:"nonOperatingExpenses"`
}

// Transaction is a recorded activity. Timestamp doubles as its identity.
type Transaction struct {
	Activity  Activity `json:"activity"`
	Amount    Money    `json:"amount"`
	Timestamp string   `json:"timestamp"`
}

// Snapshot is the full financial position plus the transaction log and undo slot.
type Snapshot struct {
	CashBalance            CashBalance   `json:"cashBalance"`
	Assets                 Assets        `json:"assets"`
	Liabilities            Liabilities   `json:"liabilities"`
	Equity                 Equity        `json:"equity"`
	Revenue                Revenue       `json:"revenue"`
	Expenses               Expenses      `json:"expenses"`
	Transactions           []Transaction `json:"transactions"`
	LastRemovedTransaction *Transaction  `json:"lastRemovedTransaction"`
}

// Initial returns the zero-balance snapshot every session starts from.
func Initial() Snapshot {
	return Snapshot{Transactions: []Transaction{}}
}

// Clone returns a deep copy.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Transactions = make([]Transaction, len(s.Transactions))
	copy(out.Transactions, s.Transactions)
	if s.LastRemovedTransaction != nil {
		tx := *s.LastRemovedTransaction
		out.LastRemovedTransaction = &tx
	}
	return out
}

// Balance returns the value of a leaf account. Unknown accounts read as zero.
func (s *Snapshot) Balance(a Account) Money {
	if p := s.leaf(a); p != nil {
		return *p
	}
	return 0
}

// CanUndo reports whether the undo slot is filled.
func (s *Snapshot) CanUndo() bool {
	return s.LastRemovedTransaction != nil
}

// FindTransaction returns the index of the first logged transaction with the timestamp.
func (s *Snapshot) FindTransaction(timestamp string) int {
	for i, tx := range s.Transactions {
		if tx.Timestamp == timestamp {
			return i
		}
	}
	return -1
}
