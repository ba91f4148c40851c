package routes

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/nkalgutkar/sports-management/handlers"
)

type Handlers struct {
	Manager    *handlers.ManagerHandler
	Team       *handlers.TeamHandler
	Sport      *handlers.SportHandler
	Student    *handlers.StudentHandler
	Coach      *handlers.CoachHandler
	Selection  *handlers.SelectionHandler
	EventImage *handlers.EventImageHandler
	Notice     *handlers.NoticeHandler
	Link       *handlers.LinkHandler
	Dashboard  *handlers.DashboardHandler
}

// SetupRoutes wires middlewares, the /api surface, static upload serving
// and the /api catch-all.
func SetupRoutes(router *chi.Mux, h Handlers, uploadDir string, allowedOrigins []string) {
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)

	// Uploaded files are served read-only straight from the upload dir.
	router.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))

	api := chi.NewRouter()
	api.NotFound(func(w http.ResponseWriter, r *http.Request) {
		body, _ := json.Marshal(map[string]string{
			"error": fmt.Sprintf("cannot %s %s", r.Method, r.URL.Path),
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write(body)
	})

	api.Get("/health", handlers.Health)
	api.Get("/stats", h.Dashboard.GetStats)

	api.Route("/managers", func(r chi.Router) {
		r.Get("/", h.Manager.GetAllManagers)
		r.Post("/", h.Manager.CreateManager)
		r.Post("/login", h.Manager.Login)
		r.Get("/{managerID}", h.Manager.GetManagerByID)
		r.Put("/{managerID}", h.Manager.UpdateManager)
		r.Delete("/{managerID}", h.Manager.DeleteManager)
	})

	api.Route("/teams", func(r chi.Router) {
		r.Get("/", h.Team.GetAllTeams)
		r.Post("/", h.Team.CreateTeam)
		r.Get("/{teamID}", h.Team.GetTeamByID)
		r.Put("/{teamID}", h.Team.UpdateTeam)
		r.Delete("/{teamID}", h.Team.DeleteTeam)
	})

	api.Route("/sports", func(r chi.Router) {
		r.Get("/", h.Sport.GetAllSports)
		r.Post("/", h.Sport.CreateSport)
		r.Get("/{sportID}", h.Sport.GetSportByID)
		r.Put("/{sportID}", h.Sport.UpdateSport)
		r.Delete("/{sportID}", h.Sport.DeleteSport)
	})

	api.Route("/students", func(r chi.Router) {
		r.Get("/", h.Student.GetAllStudents)
		r.Post("/", h.Student.CreateStudent)
		r.Get("/{studentID}", h.Student.GetStudentByID)
		r.Put("/{studentID}", h.Student.UpdateStudent)
		r.Delete("/{studentID}", h.Student.DeleteStudent)
	})

	api.Route("/coaches", func(r chi.Router) {
		r.Get("/", h.Coach.GetAllCoaches)
		r.Post("/", h.Coach.CreateCoach)
		r.Get("/{coachID}", h.Coach.GetCoachByID)
		r.Put("/{coachID}", h.Coach.UpdateCoach)
		r.Delete("/{coachID}", h.Coach.DeleteCoach)
	})

	api.Route("/selections", func(r chi.Router) {
		r.Get("/", h.Selection.ListSelections)
		r.Post("/toggle", h.Selection.ToggleSelection)
	})

	api.Route("/event-images", func(r chi.Router) {
		r.Get("/", h.EventImage.GetAllEventImages)
		r.Post("/", h.EventImage.CreateEventImage)
		r.Get("/{imageID}", h.EventImage.GetEventImageByID)
		r.Put("/{imageID}", h.EventImage.UpdateEventImage)
		r.Delete("/{imageID}", h.EventImage.DeleteEventImage)
	})

	api.Route("/notices", func(r chi.Router) {
		r.Get("/", h.Notice.GetAllNotices)
		r.Post("/", h.Notice.CreateNotice)
		r.Get("/{noticeID}", h.Notice.GetNoticeByID)
		r.Put("/{noticeID}", h.Notice.UpdateNotice)
		r.Delete("/{noticeID}", h.Notice.DeleteNotice)
	})

	api.Route("/student-links", func(r chi.Router) {
		r.Get("/", h.Link.GetAllLinks)
		r.Post("/", h.Link.CreateLink)
		r.Get("/token/{token}", h.Link.GetLinkByToken)
		r.Post("/submit", h.Link.SubmitStudent)
		r.Put("/{linkID}", h.Link.SetLinkActive)
		r.Delete("/{linkID}", h.Link.DeleteLink)
	})

	router.Mount("/api", api)
}
