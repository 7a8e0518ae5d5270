package service_test

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/gcertilab/certilab-api/internal/model"
	"gorm.io/gorm"
)

// In-memory fakes for the repository interfaces. They return
// gorm.ErrRecordNotFound for misses so the services' errors.Is checks behave
// exactly as against a real database.

type fakeCompanyRepo struct {
	companies map[uint]*model.Company
	nextID    uint
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: map[uint]*model.Company{}, nextID: 1}
}

func (r *fakeCompanyRepo) Create(company *model.Company) error {
	company.ID = r.nextID
	r.nextID++
	r.companies[company.ID] = company
	return nil
}

func (r *fakeCompanyRepo) FindByID(id uint) (*model.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *fakeCompanyRepo) FindAll() ([]model.Company, error) {
	var out []model.Company
	for _, c := range r.companies {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCompanyRepo) Update(company *model.Company) error {
	r.companies[company.ID] = company
	return nil
}

func (r *fakeCompanyRepo) Delete(id uint) error {
	delete(r.companies, id)
	return nil
}

type fakePeriodRepo struct {
	periods map[uint]*model.Period
	nextID  uint
}

func newFakePeriodRepo() *fakePeriodRepo {
	return &fakePeriodRepo{periods: map[uint]*model.Period{}, nextID: 1}
}

func (r *fakePeriodRepo) Create(period *model.Period) error {
	period.ID = r.nextID
	r.nextID++
	r.periods[period.ID] = period
	return nil
}

func (r *fakePeriodRepo) FindByID(id uint) (*model.Period, error) {
	p, ok := r.periods[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *fakePeriodRepo) FindAll() ([]model.Period, error) {
	var out []model.Period
	for _, p := range r.periods {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePeriodRepo) FindByCompanyID(companyID uint) ([]model.Period, error) {
	var out []model.Period
	for _, p := range r.periods {
		if p.CompanyID == companyID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakePeriodRepo) Update(period *model.Period) error {
	r.periods[period.ID] = period
	return nil
}

func (r *fakePeriodRepo) Delete(id uint) error {
	delete(r.periods, id)
	return nil
}

type fakeClassRepo struct {
	classes map[uint]*model.Class
	nextID  uint
}

func newFakeClassRepo() *fakeClassRepo {
	return &fakeClassRepo{classes: map[uint]*model.Class{}, nextID: 1}
}

func (r *fakeClassRepo) Create(class *model.Class) error {
	class.ID = r.nextID
	r.nextID++
	r.classes[class.ID] = class
	return nil
}

func (r *fakeClassRepo) FindByID(id uint) (*model.Class, error) {
	c, ok := r.classes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *fakeClassRepo) FindByIDWithPeriod(id uint) (*model.Class, error) {
	return r.FindByID(id)
}

func (r *fakeClassRepo) FindAll() ([]model.Class, error) {
	var out []model.Class
	for _, c := range r.classes {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeClassRepo) FindByPeriodID(periodID uint) ([]model.Class, error) {
	var out []model.Class
	for _, c := range r.classes {
		if c.PeriodID == periodID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeClassRepo) FindByPeriodIDAndType(periodID uint, classType string) ([]model.Class, error) {
	var out []model.Class
	for _, c := range r.classes {
		if c.PeriodID == periodID && c.Type == classType {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeClassRepo) Update(class *model.Class) error {
	r.classes[class.ID] = class
	return nil
}

func (r *fakeClassRepo) Delete(id uint) error {
	delete(r.classes, id)
	return nil
}

type fakeWorkerRepo struct {
	workers map[uint]*model.Worker
	nextID  uint
}

func newFakeWorkerRepo() *fakeWorkerRepo {
	return &fakeWorkerRepo{workers: map[uint]*model.Worker{}, nextID: 1}
}

func (r *fakeWorkerRepo) Create(worker *model.Worker) error {
	worker.ID = r.nextID
	r.nextID++
	r.workers[worker.ID] = worker
	return nil
}

func (r *fakeWorkerRepo) FindByID(id uint) (*model.Worker, error) {
	w, ok := r.workers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return w, nil
}

func (r *fakeWorkerRepo) FindByDNI(dni string) (*model.Worker, error) {
	for _, w := range r.workers {
		if w.DNI == dni {
			return w, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeWorkerRepo) FindByCompanyID(companyID uint) ([]model.Worker, error) {
	var out []model.Worker
	for _, w := range r.workers {
		if w.CompanyID == companyID {
			out = append(out, *w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeWorkerRepo) Update(worker *model.Worker) error {
	r.workers[worker.ID] = worker
	return nil
}

func (r *fakeWorkerRepo) Delete(id uint) error {
	delete(r.workers, id)
	return nil
}

type fakeUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*model.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(user *model.User) error {
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(id uint) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByUsername(username string) (*model.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(user *model.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(id uint) error {
	delete(r.users, id)
	return nil
}

type fakeEnrollmentRepo struct {
	enrollments map[uint]*model.Enrollment
	active      map[uint]bool // workerID -> has active enrollment
	nextID      uint
}

func newFakeEnrollmentRepo() *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{
		enrollments: map[uint]*model.Enrollment{},
		active:      map[uint]bool{},
		nextID:      1,
	}
}

func (r *fakeEnrollmentRepo) Create(enrollment *model.Enrollment) error {
	enrollment.ID = r.nextID
	r.nextID++
	r.enrollments[enrollment.ID] = enrollment
	return nil
}

func (r *fakeEnrollmentRepo) FindByID(id uint) (*model.Enrollment, error) {
	e, ok := r.enrollments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (r *fakeEnrollmentRepo) FindByIDWithClassAndWorker(id uint) (*model.Enrollment, error) {
	return r.FindByID(id)
}

func (r *fakeEnrollmentRepo) FindByClassID(classID uint) ([]model.Enrollment, error) {
	var out []model.Enrollment
	for _, e := range r.enrollments {
		if e.ClassID == classID {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeEnrollmentRepo) FindByWorkerID(workerID uint) ([]model.Enrollment, error) {
	var out []model.Enrollment
	for _, e := range r.enrollments {
		if e.WorkerID == workerID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeEnrollmentRepo) HasActiveEnrollment(workerID uint) (bool, error) {
	return r.active[workerID], nil
}

func (r *fakeEnrollmentRepo) Update(enrollment *model.Enrollment) error {
	r.enrollments[enrollment.ID] = enrollment
	return nil
}

func (r *fakeEnrollmentRepo) Delete(id uint) error {
	delete(r.enrollments, id)
	return nil
}

type fakeBankRepo struct {
	banks  map[uint]*model.QuestionBank
	nextID uint
}

func newFakeBankRepo() *fakeBankRepo {
	return &fakeBankRepo{banks: map[uint]*model.QuestionBank{}, nextID: 1}
}

func (r *fakeBankRepo) Create(bank *model.QuestionBank) error {
	bank.ID = r.nextID
	r.nextID++
	r.banks[bank.ID] = bank
	return nil
}

func (r *fakeBankRepo) FindByID(id uint) (*model.QuestionBank, error) {
	b, ok := r.banks[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return b, nil
}

func (r *fakeBankRepo) FindByClassID(classID uint) (*model.QuestionBank, error) {
	for _, b := range r.banks {
		if b.ClassID == classID {
			return b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeBankRepo) FindByClassIDWithQuestions(classID uint) (*model.QuestionBank, error) {
	return r.FindByClassID(classID)
}

func (r *fakeBankRepo) FindAll() ([]model.QuestionBank, error) {
	var out []model.QuestionBank
	for _, b := range r.banks {
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeBankRepo) Update(bank *model.QuestionBank) error {
	r.banks[bank.ID] = bank
	return nil
}

func (r *fakeBankRepo) Delete(id uint) error {
	delete(r.banks, id)
	return nil
}

type fakeQuestionRepo struct {
	questions map[uint]model.Question
	nextID    uint
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{questions: map[uint]model.Question{}, nextID: 1}
}

func (r *fakeQuestionRepo) Create(question *model.Question) error {
	question.ID = r.nextID
	r.nextID++
	for i := range question.Answers {
		question.Answers[i].ID = question.ID*10 + uint(i) + 1
		question.Answers[i].QuestionID = question.ID
	}
	r.questions[question.ID] = *question
	return nil
}

func (r *fakeQuestionRepo) FindByID(id uint) (*model.Question, error) {
	q, ok := r.questions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &q, nil
}

func (r *fakeQuestionRepo) FindByIDs(ids []uint) ([]model.Question, error) {
	var out []model.Question
	for _, id := range ids {
		if q, ok := r.questions[id]; ok {
			out = append(out, q)
		}
	}
	return out, nil
}

func (r *fakeQuestionRepo) FindByBankID(bankID uint) ([]model.Question, error) {
	var out []model.Question
	for _, q := range r.questions {
		if q.QuestionBankID == bankID {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeQuestionRepo) Update(question *model.Question) error {
	r.questions[question.ID] = *question
	return nil
}

func (r *fakeQuestionRepo) Delete(id uint) error {
	delete(r.questions, id)
	return nil
}

type fakeAnswerRepo struct {
	answers map[uint]model.Answer
}

func newFakeAnswerRepo() *fakeAnswerRepo {
	return &fakeAnswerRepo{answers: map[uint]model.Answer{}}
}

func (r *fakeAnswerRepo) FindByID(id uint) (*model.Answer, error) {
	a, ok := r.answers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &a, nil
}

func (r *fakeAnswerRepo) FindByQuestionID(questionID uint) ([]model.Answer, error) {
	var out []model.Answer
	for _, a := range r.answers {
		if a.QuestionID == questionID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeAnswerRepo) Update(answer *model.Answer) error {
	r.answers[answer.ID] = *answer
	return nil
}

type fakeAttemptRepo struct {
	attempts map[uint]*model.ExamAttempt
	nextID   uint
}

func newFakeAttemptRepo() *fakeAttemptRepo {
	return &fakeAttemptRepo{attempts: map[uint]*model.ExamAttempt{}, nextID: 1}
}

func (r *fakeAttemptRepo) Create(attempt *model.ExamAttempt) error {
	attempt.ID = r.nextID
	r.nextID++
	for i := range attempt.Questions {
		attempt.Questions[i].ID = attempt.ID*100 + uint(i) + 1
		attempt.Questions[i].ExamAttemptID = attempt.ID
	}
	stored := *attempt
	storedQuestions := make([]model.ExamAttemptQuestion, len(attempt.Questions))
	copy(storedQuestions, attempt.Questions)
	stored.Questions = storedQuestions
	r.attempts[attempt.ID] = &stored
	return nil
}

func (r *fakeAttemptRepo) Update(attempt *model.ExamAttempt) error {
	if _, ok := r.attempts[attempt.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *attempt
	r.attempts[attempt.ID] = &stored
	return nil
}

func (r *fakeAttemptRepo) SaveQuestion(question *model.ExamAttemptQuestion) error {
	attempt, ok := r.attempts[question.ExamAttemptID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for i := range attempt.Questions {
		if attempt.Questions[i].ID == question.ID {
			attempt.Questions[i] = *question
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeAttemptRepo) FindByID(id uint) (*model.ExamAttempt, error) {
	a, ok := r.attempts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *fakeAttemptRepo) FindByIDWithQuestions(id uint) (*model.ExamAttempt, error) {
	a, ok := r.attempts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *a
	questions := make([]model.ExamAttemptQuestion, len(a.Questions))
	copy(questions, a.Questions)
	clone.Questions = questions
	return &clone, nil
}

func (r *fakeAttemptRepo) FindLatestByEnrollment(enrollmentID uint) (*model.ExamAttempt, error) {
	var latest *model.ExamAttempt
	for _, a := range r.attempts {
		if a.EnrollmentID != enrollmentID {
			continue
		}
		if latest == nil || a.AttemptNumber > latest.AttemptNumber {
			latest = a
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *latest
	return &clone, nil
}

func (r *fakeAttemptRepo) CountByEnrollment(enrollmentID uint) (int, error) {
	count := 0
	for _, a := range r.attempts {
		if a.EnrollmentID == enrollmentID {
			count++
		}
	}
	return count, nil
}

func (r *fakeAttemptRepo) FindAll() ([]model.ExamAttempt, error) {
	var out []model.ExamAttempt
	for _, a := range r.attempts {
		out = append(out, *a)
	}
	return out, nil
}

func (r *fakeAttemptRepo) FindApprovedWithoutCertificate() ([]model.ExamAttempt, error) {
	var out []model.ExamAttempt
	for _, a := range r.attempts {
		if a.Outcome == model.OutcomeApproved && a.CertificateURL == nil {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAttemptRepo) Delete(id uint) error {
	delete(r.attempts, id)
	return nil
}

type fakeClassFileRepo struct {
	files  map[uint]*model.ClassFile
	nextID uint
}

func newFakeClassFileRepo() *fakeClassFileRepo {
	return &fakeClassFileRepo{files: map[uint]*model.ClassFile{}, nextID: 1}
}

func (r *fakeClassFileRepo) Create(file *model.ClassFile) error {
	file.ID = r.nextID
	r.nextID++
	r.files[file.ID] = file
	return nil
}

func (r *fakeClassFileRepo) FindByID(id uint) (*model.ClassFile, error) {
	f, ok := r.files[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return f, nil
}

func (r *fakeClassFileRepo) FindByClassID(classID uint) ([]model.ClassFile, error) {
	var out []model.ClassFile
	for _, f := range r.files {
		if f.ClassID == classID {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (r *fakeClassFileRepo) Update(file *model.ClassFile) error {
	r.files[file.ID] = file
	return nil
}

func (r *fakeClassFileRepo) Delete(id uint) error {
	delete(r.files, id)
	return nil
}

type fakeDeliveryRepo struct {
	deliveries map[uint]*model.FileDelivery
	nextID     uint
}

func newFakeDeliveryRepo() *fakeDeliveryRepo {
	return &fakeDeliveryRepo{deliveries: map[uint]*model.FileDelivery{}, nextID: 1}
}

func (r *fakeDeliveryRepo) Create(delivery *model.FileDelivery) error {
	delivery.ID = r.nextID
	r.nextID++
	r.deliveries[delivery.ID] = delivery
	return nil
}

func (r *fakeDeliveryRepo) FindByID(id uint) (*model.FileDelivery, error) {
	d, ok := r.deliveries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (r *fakeDeliveryRepo) FindByFileID(fileID uint) ([]model.FileDelivery, error) {
	var out []model.FileDelivery
	for _, d := range r.deliveries {
		if d.ClassFileID == fileID {
			out = append(out, *d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeDeliveryRepo) FindByWorkerID(workerID uint) ([]model.FileDelivery, error) {
	var out []model.FileDelivery
	for _, d := range r.deliveries {
		if d.WorkerID == workerID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeDeliveryRepo) Update(delivery *model.FileDelivery) error {
	r.deliveries[delivery.ID] = delivery
	return nil
}

func (r *fakeDeliveryRepo) Delete(id uint) error {
	delete(r.deliveries, id)
	return nil
}

// fixedClock always returns the same instant.
type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

// firstKSampler returns positions 0..k-1, making selection deterministic.
type firstKSampler struct{}

func (firstKSampler) Sample(n, k int) []int {
	if k > n {
		k = n
	}
	out := make([]int, k)
	for i := range out {
		out[i] = i
	}
	return out
}

// fakeIssuer records render calls and can be told to fail.
type fakeIssuer struct {
	url   string
	err   error
	calls int
}

func (f *fakeIssuer) Render(workerFullName, workerDNI, classTitle string, classID uint, issueDate time.Time) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

// fakePDFRenderer returns canned bytes without a browser.
type fakePDFRenderer struct {
	lastHTML string
	err      error
}

func (f *fakePDFRenderer) RenderHTML(_ context.Context, html string) ([]byte, error) {
	f.lastHTML = html
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.4 fake"), nil
}

var errRenderFailed = errors.New("render failed")
