package jobs

import (
	"github.com/gcertilab/certilab-api/internal/repository"
	"github.com/gcertilab/certilab-api/internal/service"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// certificateRetrySchedule re-renders missing certificates every five
// minutes. A render failure during grading leaves the approved attempt
// without a certificate reference; this job closes that gap.
const certificateRetrySchedule = "*/5 * * * *"

type CertificateRetryJob struct {
	attemptRepo repository.ExamAttemptRepository
	issuer      service.CertificateIssuer
	clock       service.Clock
	cron        *cron.Cron
}

func NewCertificateRetryJob(attemptRepo repository.ExamAttemptRepository, issuer service.CertificateIssuer, clock service.Clock) *CertificateRetryJob {
	return &CertificateRetryJob{
		attemptRepo: attemptRepo,
		issuer:      issuer,
		clock:       clock,
		cron:        cron.New(),
	}
}

func (j *CertificateRetryJob) Start() error {
	if _, err := j.cron.AddFunc(certificateRetrySchedule, j.Run); err != nil {
		return err
	}
	j.cron.Start()
	log.Info().Str("schedule", certificateRetrySchedule).Msg("Certificate retry job scheduled")
	return nil
}

func (j *CertificateRetryJob) Stop() {
	j.cron.Stop()
}

// Run renders a certificate for every approved attempt that is still missing
// one. Failures are logged and retried on the next tick.
func (j *CertificateRetryJob) Run() {
	attempts, err := j.attemptRepo.FindApprovedWithoutCertificate()
	if err != nil {
		log.Error().Err(err).Msg("Certificate retry: failed to list pending attempts")
		return
	}
	if len(attempts) == 0 {
		return
	}
	log.Info().Int("count", len(attempts)).Msg("Certificate retry: rendering missing certificates")

	for i := range attempts {
		attempt := &attempts[i]
		worker := attempt.Enrollment.Worker
		class := attempt.Enrollment.Class

		url, err := j.issuer.Render(worker.FullName(), worker.DNI, class.Title, class.ID, j.clock.Now())
		if err != nil {
			log.Error().Err(err).Uint("attemptID", attempt.ID).Msg("Certificate retry: rendering failed")
			continue
		}

		attempt.CertificateURL = &url
		if err := j.attemptRepo.Update(attempt); err != nil {
			log.Error().Err(err).Uint("attemptID", attempt.ID).Msg("Certificate retry: failed to record certificate reference")
		}
	}
}
