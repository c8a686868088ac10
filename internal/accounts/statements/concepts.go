package statements

// Concept identifiers drawn from the UK FRS taxonomy vocabulary. The
// statement generators are the only callers that bind values to
// concepts; the tag primitives never invent them. The entity header
// concepts are exported for the document cover page.
const (
	conceptFixedAssets            = "uk-core:FixedAssets"
	conceptCurrentAssets          = "uk-core:CurrentAssets"
	conceptDebtors                = "uk-core:Debtors"
	conceptCashBankOnHand         = "uk-core:CashBankOnHand"
	conceptCreditorsWithinOneYear = "uk-core:Creditors-DueWithinOneYear"
	conceptCreditorsAfterOneYear  = "uk-core:Creditors-DueAfterOneYear"
	conceptNetCurrentAssets       = "uk-core:NetCurrentAssetsLiabilities"
	conceptNetAssets              = "uk-core:NetAssetsLiabilities"
	conceptShareCapital           = "uk-core:EquityShareCapital"
	conceptRetainedEarnings       = "uk-core:RetainedEarningsAccumulatedLosses"
	conceptTotalEquity            = "uk-core:Equity"

	conceptTurnover             = "uk-core:TurnoverRevenue"
	conceptCostOfSales          = "uk-core:CostSales"
	conceptGrossProfit          = "uk-core:GrossProfitLoss"
	conceptAdminExpenses        = "uk-core:AdministrativeExpenses"
	conceptOtherOperatingIncome = "uk-core:OtherOperatingIncomeFormat1"
	conceptOperatingProfit      = "uk-core:OperatingProfitLoss"
	conceptInterestReceivable   = "uk-core:OtherInterestReceivableSimilarIncomeFinanceIncome"
	conceptInterestPayable      = "uk-core:InterestPayableSimilarChargesFinanceCosts"
	conceptProfitBeforeTax      = "uk-core:ProfitLossOnOrdinaryActivitiesBeforeTax"
	conceptTaxOnProfit          = "uk-core:TaxTaxCreditOnProfitOrLossOnOrdinaryActivities"
	conceptProfitForYear        = "uk-core:ProfitLoss"

	conceptCashFromOperating = "uk-core:NetCashGeneratedFromOperations"
	conceptCashFromInvesting = "uk-core:NetCashFlowsFromUsedInInvestingActivities"
	conceptCashFromFinancing = "uk-core:NetCashFlowsFromUsedInFinancingActivities"
	conceptNetCashChange     = "uk-core:IncreaseDecreaseInCashCashEquivalents"
	conceptCashAtStart       = "uk-core:CashCashEquivalents"
	conceptCashAtEnd         = "uk-core:CashCashEquivalents"

	ConceptCompanyName        = "uk-bus:EntityCurrentLegalOrRegisteredName"
	ConceptRegistrationNumber = "uk-bus:UKCompaniesHouseRegisteredNumber"
	conceptPeriodStart        = "uk-bus:StartDateForPeriodCoveredByReport"
	conceptPeriodEnd          = "uk-bus:EndDateForPeriodCoveredByReport"
	conceptBalanceSheetDate   = "uk-bus:BalanceSheetDate"

	conceptDirectorName      = "uk-bus:NameEntityOfficer"
	conceptPrincipalActivity = "uk-bus:DescriptionPrincipalActivities"
	conceptApprovalDate      = "uk-core:DateAuthorisationFinancialStatementsForIssue"
	conceptApprovingDirector = "uk-core:DirectorSigningFinancialStatements"
	conceptDividendsPaid     = "uk-core:DividendsPaid"
	conceptDividendsProposed = "uk-core:DividendsProposed"

	conceptAccountingFramework   = "uk-bus:AccountingStandardsApplied"
	conceptGoingConcern          = "uk-core:StatementOnGoingConcern"
	conceptAverageEmployees      = "uk-core:AverageNumberEmployeesDuringPeriod"
	conceptWagesSalaries         = "uk-core:WagesSalaries"
	conceptSocialSecurityCosts   = "uk-core:SocialSecurityCosts"
	conceptPensionCosts          = "uk-core:PensionOtherPostEmploymentBenefitCostsOtherPensionCosts"
	conceptDirectorsRemuneration = "uk-core:DirectorRemuneration"
	conceptControllingParty      = "uk-core:NameUltimateParentEntity"
)
