package dto

// TransactionReportRequest bounds a report window. Either date may be omitted.
type TransactionReportRequest struct {
	StartDate string `query:"startDate" validate:"iso_date"`
	EndDate   string `query:"endDate" validate:"iso_date"`
}
