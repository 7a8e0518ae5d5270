package controller

import (
	"github.com/gcertilab/certilab-api/config"
	"github.com/gin-gonic/gin"
)

// Router wires every controller into the gin engine and exposes the stored
// artifacts (certificates, uploads) as static routes.
type Router struct {
	cfg        *config.Config
	auth       *AuthController
	company    *CompanyController
	period     *PeriodController
	class      *ClassController
	worker     *WorkerController
	user       *UserController
	enrollment *EnrollmentController
	bank       *BankController
	exam       *ExamController
	file       *FileController
	upload     *UploadController
}

func NewRouter(
	cfg *config.Config,
	auth *AuthController,
	company *CompanyController,
	period *PeriodController,
	class *ClassController,
	worker *WorkerController,
	user *UserController,
	enrollment *EnrollmentController,
	bank *BankController,
	exam *ExamController,
	file *FileController,
	upload *UploadController,
) *Router {
	return &Router{
		cfg:        cfg,
		auth:       auth,
		company:    company,
		period:     period,
		class:      class,
		worker:     worker,
		user:       user,
		enrollment: enrollment,
		bank:       bank,
		exam:       exam,
		file:       file,
		upload:     upload,
	}
}

func (r *Router) Register(engine *gin.Engine) {
	engine.Static("/certificates", r.cfg.Storage.CertificateDir)
	engine.Static("/files", r.cfg.Storage.UploadDir)
	engine.Static("/signatures", r.cfg.Storage.SignatureDir)
	engine.Static("/logos", r.cfg.Storage.LogoDir)

	apiV1 := engine.Group("/api/v1")
	{
		auth := apiV1.Group("/auth")
		auth.POST("/login", r.auth.Login)

		companies := apiV1.Group("/companies")
		companies.POST("", r.company.Create)
		companies.GET("", r.company.List)
		companies.GET("/:id", r.company.Get)
		companies.PUT("/:id", r.company.Update)
		companies.DELETE("/:id", r.company.Delete)
		companies.GET("/:id/periods", r.company.ListPeriods)
		companies.GET("/:id/workers", r.company.ListWorkers)
		companies.POST("/:id/workers/import", r.company.ImportWorkers)
		companies.GET("/:id/reports/induction", r.company.InductionReport)

		periods := apiV1.Group("/periods")
		periods.POST("", r.period.Create)
		periods.GET("", r.period.List)
		periods.GET("/:id", r.period.Get)
		periods.PUT("/:id", r.period.Update)
		periods.DELETE("/:id", r.period.Delete)
		periods.GET("/:id/classes", r.period.ListClasses)

		classes := apiV1.Group("/classes")
		classes.POST("", r.class.Create)
		classes.GET("", r.class.List)
		classes.GET("/:id", r.class.Get)
		classes.PUT("/:id", r.class.Update)
		classes.DELETE("/:id", r.class.Delete)
		classes.GET("/:id/bank", r.class.GetBank)
		classes.GET("/:id/files", r.class.ListFiles)
		classes.GET("/:id/enrollments", r.enrollment.ListByClass)
		classes.GET("/:id/report", r.class.Report)
		classes.GET("/:id/report.xlsx", r.class.ReportXLSX)

		workers := apiV1.Group("/workers")
		workers.POST("", r.worker.Create)
		workers.GET("/:id", r.worker.Get)
		workers.GET("/dni/:dni", r.worker.GetByDNI)
		workers.PUT("/:id", r.worker.Update)
		workers.DELETE("/:id", r.worker.Delete)
		workers.GET("/:id/enrollments", r.worker.ListEnrollments)
		workers.GET("/:id/deliveries", r.worker.ListDeliveries)

		users := apiV1.Group("/users")
		users.POST("", r.user.Create)
		users.GET("/:id", r.user.Get)
		users.PUT("/:id", r.user.Update)
		users.PUT("/:id/password", r.user.ChangePassword)
		users.DELETE("/:id", r.user.Delete)

		enrollments := apiV1.Group("/enrollments")
		enrollments.POST("", r.enrollment.Create)
		enrollments.GET("/:id", r.enrollment.Get)
		enrollments.PUT("/:id", r.enrollment.Update)
		enrollments.DELETE("/:id", r.enrollment.Delete)

		banks := apiV1.Group("/banks")
		banks.POST("", r.bank.CreateBank)
		banks.GET("/:id", r.bank.GetBank)
		banks.DELETE("/:id", r.bank.DeleteBank)
		banks.POST("/:id/import", r.bank.ImportQuestions)

		questions := apiV1.Group("/questions")
		questions.POST("", r.bank.CreateQuestion)
		questions.PUT("/:id", r.bank.UpdateQuestion)
		questions.DELETE("/:id", r.bank.DeleteQuestion)

		exams := apiV1.Group("/exams")
		exams.POST("/start", r.exam.Start)
		exams.POST("/solve", r.exam.Solve)
		exams.GET("/enrollments/:id/latest", r.exam.Latest)
		exams.PATCH("/attempts/:id/certificate-downloaded", r.exam.MarkCertificateDownloaded)

		files := apiV1.Group("/files")
		files.POST("", r.file.Create)
		files.GET("/:id", r.file.Get)
		files.PUT("/:id", r.file.Update)
		files.DELETE("/:id", r.file.Delete)
		files.GET("/:id/report", r.file.Report)

		deliveries := apiV1.Group("/deliveries")
		deliveries.POST("", r.file.Assign)
		deliveries.PATCH("/:id", r.file.SetFlags)

		uploads := apiV1.Group("/uploads")
		uploads.POST("/:kind", r.upload.Upload)
	}
}
