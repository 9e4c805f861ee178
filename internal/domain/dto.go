package domain

type BucketType string

const (
	BucketMain     BucketType = "main"
	BucketProfit   BucketType = "profit"
	BucketReferral BucketType = "referral"
	BucketBonus    BucketType = "bonus"
)

type InvestmentStatusType string

const (
	InvestmentStatusActive   InvestmentStatusType = "active"
	InvestmentStatusCanceled InvestmentStatusType = "canceled"
)

type TransactionType string

const (
	TransactionDeposit           TransactionType = "deposit"
	TransactionWithdraw          TransactionType = "withdraw"
	TransactionInvestment        TransactionType = "investment"
	TransactionInvestmentUpgrade TransactionType = "investment-upgrade"
	TransactionInvestmentError   TransactionType = "investment-error"
	TransactionProfit            TransactionType = "profit"
	TransactionReferralProfit    TransactionType = "referral-profit"
	TransactionRefund            TransactionType = "refund"
	TransactionBonus             TransactionType = "bonus"
	TransactionTransfer          TransactionType = "transfer"
)

type TransactionStatusType string

const (
	TransactionStatusPending   TransactionStatusType = "pending"
	TransactionStatusCompleted TransactionStatusType = "completed"
	TransactionStatusFailed    TransactionStatusType = "failed"
)

const DefaultCurrency = "USD"
