package models

// AnalyzeResponse merges the scoring report and the advice payload into the
// single object returned by POST /analyze.
type AnalyzeResponse struct {
	ID string `json:"id"`
	ATSReport
	AdvicePayload
}
