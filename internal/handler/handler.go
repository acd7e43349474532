package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sysu-ecnc-dev/roster-scheduler/backend/internal/config"
	"github.com/sysu-ecnc-dev/roster-scheduler/backend/internal/domain"
	"github.com/sysu-ecnc-dev/roster-scheduler/backend/internal/repository"
	"github.com/sysu-ecnc-dev/roster-scheduler/backend/internal/roster"
)

type Handler struct {
	validate     *validator.Validate
	config       *config.Config
	repository   *repository.Repository
	orchestrator *roster.Orchestrator
	translator   ut.Translator
	mailChannel  *amqp.Channel
	redisClient  *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	cal, err := roster.NewCalendar(cfg.Roster.WeekStart)
	if err != nil {
		return nil, err
	}

	return &Handler{
		validate:     validate,
		config:       cfg,
		repository:   repo,
		orchestrator: roster.NewOrchestrator(repo, cal),
		translator:   trans,
		mailChannel:  mailCh,
		redisClient:  rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 认证相关
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// 以下 API 必须要在登录后才允许调用
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Get("/roster", h.GetMyRoster)
			r.Patch("/password", h.UpdateMyPassword)
			r.Route("/update-email", func(r chi.Router) {
				r.Post("/require", h.RequireUpdateEmail)
				r.Post("/confirm", h.ConfirmUpdateEmail)
			})
		})

		r.Route("/staff", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/", h.CreateStaff)
			r.Get("/", h.GetAllStaffInfo) // 所有员工都可以查看同事的基本信息
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.staffInfo)
				r.Get("/", h.GetStaffInfo)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/", h.UpdateStaff)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteStaff)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/password", h.UpdateStaffPassword)
			})
		})

		r.Route("/shifts", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleScheduler, domain.RoleAdmin})).Post("/", h.CreateShift)
			r.Get("/", h.GetAllShifts)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.shiftInfo)
				r.Get("/", h.GetShift)
				r.With(h.RequiredRole([]domain.Role{domain.RoleScheduler, domain.RoleAdmin})).Patch("/", h.UpdateShift)
				r.With(h.RequiredRole([]domain.Role{domain.RoleScheduler, domain.RoleAdmin})).Delete("/", h.DeleteShift)
			})
		})

		r.Route("/roster", func(r chi.Router) {
			r.Get("/", h.GetRoster) // 所有员工都可以查看排班表
			r.Route("/assignments", func(r chi.Router) {
				r.Use(h.RequiredRole([]domain.Role{domain.RoleScheduler, domain.RoleAdmin}))
				r.Post("/", h.CreateAssignments)
				r.Delete("/{id}", h.DeleteAssignment)
			})
		})
	})
}
