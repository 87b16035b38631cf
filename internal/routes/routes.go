package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chapterly/api/internal/shared"
)

type Server struct {
	*shared.Server
}

func NewServer(server *shared.Server) *Server {
	return &Server{Server: server}
}

func (s *Server) RegisterRoutes() {
	s.Server.Router.Group(func(r chi.Router) {
		r.Use(s.LoggingMiddleware)

		r.Get("/", s.HandleHealth)

		r.Post("/api/auth/firebase-login", s.HandleFirebaseLogin)

		r.Get("/members", s.HandleGetMembers)
		// /members/{id} resolves by firebase uid; /local-members/{id} by
		// generated id. The two deliberately stay separate routes.
		r.Get("/members/{id}", s.HandleGetMemberByFirebaseUid)
		r.Get("/local-members/{id}", s.HandleGetMemberById)
		r.Post("/members", s.HandleCreateMember)

		r.Get("/books", s.HandleGetBooks)
		r.Get("/books/{id}", s.HandleGetBook)
		r.Post("/books", s.HandleCreateBook)

		r.Get("/member_books/{id}", s.HandleGetCurrentlyReading)
		r.Post("/member_books", s.HandleStartReading)
		r.Get("/member_books_history/{id}", s.HandleGetHistory)
		r.Get("/member_reported_books/{id}", s.HandleGetReportedBooks)
		r.Post("/move-to-read", s.HandleMoveToRead)

		r.Get("/book_reports", s.HandleGetReports)
		r.Get("/book_reports/{id}", s.HandleGetReportsByBook)
		r.Post("/book_reports", s.HandleSubmitReport)

		r.Get("/api/books", s.HandleSearchBooks)
		r.Get("/api/books/works/{id}", s.HandleGetWork)
		r.Get("/api/books/works/{id}/editions.json", s.HandleGetEditions)
	})
}

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Backend connected!"))
}
