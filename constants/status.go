package constants

// JobStatus is the canonical status for rows in ocr_jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusProcessing JobStatus = "processing" // job created, pages being worked
	JobStatusComplete   JobStatus = "complete"   // terminal: at least one page succeeded (or nothing failed)
	JobStatusFailed     JobStatus = "failed"     // terminal: every processed page failed
)

// JobStatuses holds the allowed values for the status field in OcrJob.
var JobStatuses = []string{
	string(JobStatusProcessing),
	string(JobStatusComplete),
	string(JobStatusFailed),
}
