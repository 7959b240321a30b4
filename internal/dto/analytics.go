package dto

// AnalyticsQuery carries the optional reporting date shared by every report endpoint
type AnalyticsQuery struct {
	AsOf string `query:"asOf" validate:"omitempty,datetime=2006-01-02"`
}

// AccountSummaryRequest identifies the account of a single-account summary
type AccountSummaryRequest struct {
	AccountID string `param:"accountId" validate:"required,uuid"`
	AsOf      string `query:"asOf" validate:"omitempty,datetime=2006-01-02"`
}
