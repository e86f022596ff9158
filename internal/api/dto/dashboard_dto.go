package dto

// AdminSummaryResponse carries the admin dashboard totals.
type AdminSummaryResponse struct {
	TotalUsers   int64 `json:"totalUsers"`
	TotalStores  int64 `json:"totalStores"`
	TotalRatings int64 `json:"totalRatings"`
}
