package pipeline

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/voyagedesk/passport-tracker/constants"
	"github.com/voyagedesk/passport-tracker/internal/entity"
	"github.com/voyagedesk/passport-tracker/internal/mrz"
	"github.com/voyagedesk/passport-tracker/internal/recognize"
	"github.com/voyagedesk/passport-tracker/internal/repository"
)

type fakeJobs struct {
	progress  []progressUpdate
	finalized bool
	status    constants.JobStatus
	successes json.RawMessage
	failures  json.RawMessage
}

func (f *fakeJobs) Create(context.Context, uuid.UUID, string) (*entity.OcrJob, error) {
	return nil, nil
}
func (f *fakeJobs) GetByID(context.Context, uuid.UUID) (*entity.OcrJob, error) { return nil, nil }
func (f *fakeJobs) ListByUser(context.Context, uuid.UUID, int, int) ([]*entity.OcrJob, error) {
	return nil, nil
}
func (f *fakeJobs) SetProgress(ctx context.Context, _ uuid.UUID, percent int, status constants.JobStatus) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.progress = append(f.progress, progressUpdate{percent, status})
	return nil
}
func (f *fakeJobs) Finalize(ctx context.Context, _ uuid.UUID, status constants.JobStatus, successes, failures json.RawMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.finalized = true
	f.status = status
	f.successes = successes
	f.failures = failures
	return nil
}
func (f *fakeJobs) Delete(context.Context, uuid.UUID) error { return nil }

type fakePassports struct {
	created   int
	createErr error
}

func (f *fakePassports) CreateForOwner(_ context.Context, ownerID uuid.UUID, _ string, params repository.CreatePassportParams) (*entity.Passport, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created++
	return &entity.Passport{
		ID:              uuid.New(),
		OwnerID:         ownerID,
		FirstName:       params.FirstName,
		LastName:        params.LastName,
		BirthDate:       params.BirthDate,
		ExpirationDate:  params.ExpirationDate,
		Nationality:     params.Nationality,
		PassportNumber:  params.PassportNumber,
		ConfidenceScore: params.ConfidenceScore,
	}, nil
}
func (f *fakePassports) GetByID(context.Context, uuid.UUID) (*entity.Passport, error) {
	return nil, nil
}
func (f *fakePassports) List(context.Context, repository.PassportFilter) ([]*entity.Passport, error) {
	return nil, nil
}
func (f *fakePassports) Update(context.Context, uuid.UUID, repository.UpdatePassportParams) (*entity.Passport, error) {
	return nil, nil
}
func (f *fakePassports) Delete(context.Context, uuid.UUID) error { return nil }
func (f *fakePassports) DeleteMany(context.Context, []uuid.UUID) (int, error) { return 0, nil }

type fakeUsers struct {
	addedPages int
}

func (f *fakeUsers) Create(context.Context, repository.CreateUserParams) (*entity.User, error) {
	return nil, nil
}
func (f *fakeUsers) GetByID(context.Context, uuid.UUID) (*entity.User, error) { return nil, nil }
func (f *fakeUsers) GetByUsername(context.Context, string) (*entity.User, error) { return nil, nil }
func (f *fakeUsers) GetByEmail(context.Context, string) (*entity.User, error) { return nil, nil }
func (f *fakeUsers) List(context.Context, string, int, int) ([]*entity.User, error) { return nil, nil }
func (f *fakeUsers) Update(context.Context, uuid.UUID, repository.UpdateUserParams) (*entity.User, error) {
	return nil, nil
}
func (f *fakeUsers) Delete(context.Context, uuid.UUID) error { return nil }
func (f *fakeUsers) AddUploadedPages(ctx context.Context, _ uuid.UUID, pages int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.addedPages += pages
	return nil
}

func newTestProcessor(rec recognize.Recognizer, jobs *fakeJobs, passports *fakePassports, users *fakeUsers) *Processor {
	orc := NewOrchestrator(rec, mrz.NewExtractor(testDates()), nil)
	return NewProcessor(orc, jobs, passports, users, TrackerConfig{}, nil)
}

func documentJob(pages int) DocumentJob {
	images := make([][]byte, pages)
	for i := range images {
		images[i] = []byte{byte(i + 1)}
	}
	return DocumentJob{
		JobID:       uuid.New(),
		UserID:      uuid.New(),
		Destination: "Portugal",
		FileName:    "scans.pdf",
		Pages:       images,
	}
}

func TestProcessorRunPartialSuccess(t *testing.T) {
	rec := &scriptedRecognizer{
		pages: []recognize.RawPage{
			{Text: testLine1 + "\n" + testLine2, SymbolConfidences: []float64{0.95}},
			{Text: "no zone on this page"},
		},
		errs: []error{nil, nil},
	}
	jobs := &fakeJobs{}
	passports := &fakePassports{}
	users := &fakeUsers{}
	p := newTestProcessor(rec, jobs, passports, users)

	require.NoError(t, p.Run(context.Background(), documentJob(2)))

	require.True(t, jobs.finalized)
	require.Equal(t, constants.JobStatusComplete, jobs.status)
	require.Equal(t, 1, passports.created)
	require.Equal(t, 2, users.addedPages)

	var successes []entity.PageSuccess
	require.NoError(t, json.Unmarshal(jobs.successes, &successes))
	require.Len(t, successes, 1)
	require.Equal(t, 1, successes[0].PageNumber)
	require.Equal(t, "DUPONT", successes[0].Data.LastName)

	var failures []entity.PageFailure
	require.NoError(t, json.Unmarshal(jobs.failures, &failures))
	require.Len(t, failures, 1)
	require.Equal(t, 2, failures[0].PageNumber)

	// Progress only ever moves forward and ends at 100.
	prev := 0
	for _, u := range jobs.progress {
		require.Greater(t, u.percent, prev)
		prev = u.percent
	}
	require.Equal(t, 100, prev)
}

func TestProcessorRunAllPagesFailed(t *testing.T) {
	rec := &scriptedRecognizer{
		pages: []recognize.RawPage{{Text: "nothing"}, {Text: "still nothing"}},
		errs:  []error{nil, nil},
	}
	jobs := &fakeJobs{}
	p := newTestProcessor(rec, jobs, &fakePassports{}, &fakeUsers{})

	require.NoError(t, p.Run(context.Background(), documentJob(2)))

	require.Equal(t, constants.JobStatusFailed, jobs.status)
	var failures []entity.PageFailure
	require.NoError(t, json.Unmarshal(jobs.failures, &failures))
	require.Len(t, failures, 2)
}

func TestProcessorRunPersistenceFailureBecomesPageFailure(t *testing.T) {
	rec := &scriptedRecognizer{
		pages: []recognize.RawPage{{Text: testLine1 + "\n" + testLine2}},
		errs:  []error{nil},
	}
	jobs := &fakeJobs{}
	passports := &fakePassports{createErr: repository.ErrDuplicateForDestination}
	p := newTestProcessor(rec, jobs, passports, &fakeUsers{})

	require.NoError(t, p.Run(context.Background(), documentJob(1)))

	// The only page decoded but could not be stored: the job is failed and
	// the page shows up in failures with the storage error.
	require.Equal(t, constants.JobStatusFailed, jobs.status)
	var failures []entity.PageFailure
	require.NoError(t, json.Unmarshal(jobs.failures, &failures))
	require.Len(t, failures, 1)
	require.Equal(t, 1, failures[0].PageNumber)
	require.Contains(t, failures[0].Detail, "already recorded")
}

func TestProcessorRunCancelledContext(t *testing.T) {
	rec := &scriptedRecognizer{
		pages: []recognize.RawPage{{Text: testLine1 + "\n" + testLine2}},
		errs:  []error{nil},
	}
	jobs := &fakeJobs{}
	users := &fakeUsers{}
	p := newTestProcessor(rec, jobs, &fakePassports{}, users)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, p.Run(ctx, documentJob(1)))

	// No page ran; the abort is recorded as a document-level failure.
	require.True(t, jobs.finalized)
	require.Equal(t, constants.JobStatusFailed, jobs.status)
	var failures []entity.PageFailure
	require.NoError(t, json.Unmarshal(jobs.failures, &failures))
	require.Len(t, failures, 1)
	require.Equal(t, 0, failures[0].PageNumber)
}

func TestProcessorRunWorkerTimeoutStillFinalizes(t *testing.T) {
	// The repositories here refuse writes on a dead context, the way ent
	// does. A job whose context expires mid-document must still end up
	// terminal, with the page count booked and progress at 100.
	rec := &scriptedRecognizer{
		pages: []recognize.RawPage{{Text: testLine1 + "\n" + testLine2}},
		errs:  []error{nil},
	}
	jobs := &fakeJobs{}
	users := &fakeUsers{}
	p := newTestProcessor(rec, jobs, &fakePassports{}, users)

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()
	require.NoError(t, p.Run(ctx, documentJob(2)))

	require.True(t, jobs.finalized)
	require.Equal(t, constants.JobStatusFailed, jobs.status)
	require.Equal(t, 2, users.addedPages)
	require.NotEmpty(t, jobs.progress)
	require.Equal(t, 100, jobs.progress[len(jobs.progress)-1].percent)
}
