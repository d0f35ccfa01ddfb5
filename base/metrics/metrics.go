package metrics

const (
	ReportSampleCountH = "The number of samples in the last report"
	ReportSampleCountN = "statservice_report_sample_count"
	ReportRangeMinH    = "The smallest sample in the last report"
	ReportRangeMinN    = "statservice_report_range_min"
	ReportRangeMaxH    = "The largest sample in the last report"
	ReportRangeMaxN    = "statservice_report_range_max"
	ReportMeanH        = "The sample mean of the last report"
	ReportMeanN        = "statservice_report_mean"
	ReportMedianH      = "The sample median of the last report"
	ReportMedianN      = "statservice_report_median"
	ReportCovarianceH  = "The sample covariance of the last paired report"
	ReportCovarianceN  = "statservice_report_covariance"

	ReportCovariancePopulationH = "The population covariance of the last paired report"
	ReportCovariancePopulationN = "statservice_report_covariance_population"

	ReportDurationH    = "The time spent computing the last report, in seconds"
	ReportDurationN    = "statservice_report_duration_seconds"
)
