package repoargs

type RepositoryName string

const (
	UserRepoName        RepositoryName = "user"
	InvestmentRepoName  RepositoryName = "investment"
	TransactionRepoName RepositoryName = "transaction"
	ReferralRepoName    RepositoryName = "referral"
)
