package repoargs

type CreateReferralLink struct {
	ReferrerID     int64
	ReferredUserID int64
}
