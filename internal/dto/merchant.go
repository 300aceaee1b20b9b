package dto

// ListMerchantsRequest holds the filter, sort and paging parameters of the merchant listing
type ListMerchantsRequest struct {
	MerchantName  string `query:"merchantName" validate:"omitempty,max=255"`
	MerchantID    string `query:"merchantId" validate:"omitempty,max=20"`
	Page          int    `query:"page" validate:"min=0"`
	Size          int    `query:"size" validate:"min=1,max=100"`
	SortBy        string `query:"sortBy"`
	SortDirection string `query:"sortDirection" validate:"sort_direction"`
}
