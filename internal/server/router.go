package server

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yukikurage/task-invoice-manager/internal/config"
	"github.com/yukikurage/task-invoice-manager/internal/handlers"
	"github.com/yukikurage/task-invoice-manager/internal/logger"
	"github.com/yukikurage/task-invoice-manager/internal/middleware"
	"github.com/yukikurage/task-invoice-manager/internal/pdf"
	"github.com/yukikurage/task-invoice-manager/internal/repository"
	"github.com/yukikurage/task-invoice-manager/internal/services"
)

// NewRouter wires repositories, services and handlers onto a gin engine
func NewRouter(db *gorm.DB, cfg *config.Config, log *logger.Logger) *gin.Engine {
	// Repositories
	companyRepo := repository.NewCompanyRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	timeEntryRepo := repository.NewTimeEntryRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)

	renderer := pdf.NewRenderer(pdf.Options{
		CurrencySymbol:   cfg.CurrencySymbol,
		CurrencyDecimals: cfg.CurrencyDecimals,
		FontPath:         cfg.PDFFontPath,
	})

	// Services
	companyService := services.NewCompanyService(companyRepo, log)
	projectService := services.NewProjectService(projectRepo, companyRepo, log)
	taskService := services.NewTaskService(taskRepo, projectRepo, companyRepo, log)
	timeEntryService := services.NewTimeEntryService(timeEntryRepo, taskRepo, log)
	invoiceService := services.NewInvoiceService(invoiceRepo, projectRepo, taskRepo, renderer, log)

	// Handlers
	companyHandler := handlers.NewCompanyHandler(companyService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService)
	timeEntryHandler := handlers.NewTimeEntryHandler(timeEntryService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.CORS(),
		middleware.ErrorHandler(log),
	)

	requireID := middleware.RequireID("id")

	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health)

		companies := api.Group("/companies")
		{
			companies.GET("", companyHandler.ListCompanies)
			companies.POST("", companyHandler.CreateCompany)
			companies.GET("/:id", requireID, companyHandler.GetCompany)
			companies.PUT("/:id", requireID, companyHandler.UpdateCompany)
			companies.DELETE("/:id", requireID, companyHandler.DeleteCompany)
		}

		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", requireID, projectHandler.GetProject)
			projects.PUT("/:id", requireID, projectHandler.UpdateProject)
			projects.DELETE("/:id", requireID, projectHandler.DeleteProject)
		}

		tasks := api.Group("/tasks")
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/:id", requireID, taskHandler.GetTask)
			tasks.PUT("/:id", requireID, taskHandler.UpdateTask)
			tasks.DELETE("/:id", requireID, taskHandler.DeleteTask)
		}

		timeEntries := api.Group("/time-entries")
		{
			timeEntries.GET("", timeEntryHandler.ListTimeEntries)
			timeEntries.POST("", timeEntryHandler.CreateTimeEntry)
			timeEntries.GET("/:id", requireID, timeEntryHandler.GetTimeEntry)
			timeEntries.PUT("/:id", requireID, timeEntryHandler.UpdateTimeEntry)
			timeEntries.DELETE("/:id", requireID, timeEntryHandler.DeleteTimeEntry)
		}

		invoices := api.Group("/invoices")
		{
			invoices.GET("", invoiceHandler.ListInvoices)
			invoices.POST("", invoiceHandler.CreateInvoice)
			invoices.GET("/:id", requireID, invoiceHandler.GetInvoice)
			invoices.GET("/:id/pdf", requireID, invoiceHandler.DownloadInvoicePDF)
			invoices.PUT("/:id", requireID, invoiceHandler.UpdateInvoice)
			invoices.DELETE("/:id", requireID, invoiceHandler.DeleteInvoice)
		}
	}

	return r
}
