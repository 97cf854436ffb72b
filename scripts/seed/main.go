package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/odyssey-erp/finflow/internal/app"
	"github.com/odyssey-erp/finflow/internal/flow"
)

type entry struct {
	activity flow.Activity
	amount   float64
}

// demoLedger replays a small company's first quarter, oldest first.
var demoLedger = []entry{
	{flow.CommonStockIssuance, 250000},
	{flow.BankLoanReceipt, 120000},
	{flow.OfficeEquipment, 18500},
	{flow.SoftwareDevelopment, 42000},
	{flow.OfficeRent, 9000},
	{flow.RetailSales, 31250.75},
	{flow.OnlineSales, 22800},
	{flow.WholesaleSales, 48000},
	{flow.AnnualSubscription, 12000},
	{flow.WagesExpense, 38400},
	{flow.EmployeeBenefits, 7200},
	{flow.ConsultingFees, 5600},
	{flow.DigitalMarketing, 4300},
	{flow.TravelExpense, 1850.40},
	{flow.BankLoanPayment, 6000},
	{flow.DividendPayment, 5000},
}

func main() {
	_ = godotenv.Load()
	ctx := context.Background()

	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg)

	res, err := app.OpenResources(ctx, cfg, logger, false)
	if err != nil {
		log.Fatalf("open resources: %v", err)
	}
	defer res.Close()

	fmt.Printf("→ Seeding %d transactions into %s store...\n", len(demoLedger), cfg.Backend())
	snap := flow.Initial()
	at := time.Now().UTC().Add(-time.Duration(len(demoLedger)) * time.Minute)
	for _, e := range demoLedger {
		at = at.Add(time.Minute)
		snap = flow.Reduce(snap, flow.SubmitEvent{Activity: e.activity, Amount: flow.FromFloat(e.amount)}, at)
	}
	if err := res.Store.Save(ctx, snap); err != nil {
		log.Fatalf("save snapshot: %v", err)
	}

	fmt.Printf("✓ Seed complete at %s (cash %s)\n", time.Now().Format(time.RFC3339), snap.Balance(flow.CheckingAccounts))
}
